package chunk

import (
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// ListVector is the array typed output column of an aggregation.
// Row boundaries follow the offsets scheme of columnar engines:
// _offsets[row] is the exclusive end of the row's element range in
// the shared element area.
type ListVector struct {
	_childTyp common.LType
	_offsets  []uint64
	_values   []*Value
}

func NewListVector(child common.LType) *ListVector {
	return &ListVector{
		_childTyp: child,
	}
}

func (lv *ListVector) Typ() common.LType {
	return common.ListType(lv._childTyp)
}

func (lv *ListVector) ChildTyp() common.LType {
	return lv._childTyp
}

func (lv *ListVector) Card() int {
	return len(lv._offsets)
}

func (lv *ListVector) AppendArray(vals []*Value) {
	for _, val := range vals {
		util.AssertFunc(val != nil)
		util.AssertFunc(val.IsNull || val.Typ.Equal(lv._childTyp))
		lv._values = append(lv._values, val)
	}
	lv._offsets = append(lv._offsets, uint64(len(lv._values)))
}

func (lv *ListVector) GetArray(row int) []*Value {
	util.AssertFunc(row < len(lv._offsets))
	start := uint64(0)
	if row > 0 {
		start = lv._offsets[row-1]
	}
	return lv._values[start:lv._offsets[row]]
}
