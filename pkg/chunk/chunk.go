package chunk

import (
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// Chunk bundles the column vectors of one batch of rows.
type Chunk struct {
	_data []*Vector
	_card int
}

func (c *Chunk) Init(typs []common.LType, cap int) {
	c._data = make([]*Vector, len(typs))
	for i, typ := range typs {
		c._data[i] = NewFlatVector(typ, cap)
	}
	c._card = 0
}

func (c *Chunk) Data(colIdx int) *Vector {
	util.AssertFunc(colIdx < len(c._data))
	return c._data[colIdx]
}

func (c *Chunk) ColumnCount() int {
	return len(c._data)
}

func (c *Chunk) Card() int {
	return c._card
}

func (c *Chunk) SetCard(card int) {
	c._card = card
}
