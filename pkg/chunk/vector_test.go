package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colfold/colfold/pkg/common"
)

func Test_flatVector(t *testing.T) {
	vec := NewFlatVector(common.BigintType(), 8)
	for i := 0; i < 8; i++ {
		vec.SetValue(i, &Value{Typ: common.BigintType(), I64: int64(i * 10)})
	}
	vec.SetValue(3, NullValue(common.BigintType()))

	for i := 0; i < 8; i++ {
		got := vec.GetValue(i)
		if i == 3 {
			assert.True(t, got.IsNull)
			continue
		}
		assert.Equal(t, int64(i*10), got.I64)
	}
}

func Test_varcharVector(t *testing.T) {
	vec := NewFlatVector(common.VarcharType(), 4)
	vec.SetValue(0, &Value{Typ: common.VarcharType(), Str: "aa"})
	vec.SetValue(1, &Value{Typ: common.VarcharType(), Str: ""})
	vec.SetValue(2, NullValue(common.VarcharType()))
	vec.SetValue(3, &Value{Typ: common.VarcharType(), Str: "dd"})

	assert.Equal(t, "aa", vec.GetValue(0).Str)
	assert.Equal(t, "", vec.GetValue(1).Str)
	assert.True(t, vec.GetValue(2).IsNull)
	assert.Equal(t, "dd", vec.GetValue(3).Str)
}

func Test_unsignedVector(t *testing.T) {
	vec := NewFlatVector(common.UbigintType(), 4)
	vec.SetValue(0, &Value{Typ: common.UbigintType(), U64: 0})
	vec.SetValue(1, &Value{Typ: common.UbigintType(), U64: 1 << 40})

	assert.Equal(t, uint64(0), vec.GetValue(0).GetUint64())
	assert.Equal(t, uint64(1<<40), vec.GetValue(1).GetUint64())
}

func Test_dateVector(t *testing.T) {
	vec := NewFlatVector(common.DateType(), 2)
	vec.SetValue(0, &Value{Typ: common.DateType(), I64: 2024, I64_1: 9, I64_2: 8})
	got := vec.GetValue(0)
	assert.Equal(t, "2024-09-08", got.String())
}

func Test_listVector(t *testing.T) {
	lv := NewListVector(common.BigintType())
	assert.True(t, lv.Typ().Equal(common.ListType(common.BigintType())))
	assert.Equal(t, 0, lv.Card())

	lv.AppendArray([]*Value{
		{Typ: common.BigintType(), I64: 1},
		{Typ: common.BigintType(), I64: 2},
	})
	lv.AppendArray(nil)
	lv.AppendArray([]*Value{
		NullValue(common.BigintType()),
	})

	assert.Equal(t, 3, lv.Card())
	first := lv.GetArray(0)
	assert.Len(t, first, 2)
	assert.Equal(t, int64(1), first[0].I64)
	assert.Equal(t, int64(2), first[1].I64)
	assert.Len(t, lv.GetArray(1), 0)
	third := lv.GetArray(2)
	assert.Len(t, third, 1)
	assert.True(t, third[0].IsNull)
}

func Test_chunk(t *testing.T) {
	c := &Chunk{}
	c.Init([]common.LType{common.VarcharType(), common.BigintType()}, 4)
	assert.Equal(t, 2, c.ColumnCount())
	c.Data(0).SetValue(0, &Value{Typ: common.VarcharType(), Str: "g"})
	c.Data(1).SetValue(0, &Value{Typ: common.BigintType(), I64: 5})
	c.SetCard(1)
	assert.Equal(t, 1, c.Card())
	assert.Equal(t, "g", c.Data(0).GetValue(0).Str)
	assert.Equal(t, int64(5), c.Data(1).GetValue(0).I64)
}
