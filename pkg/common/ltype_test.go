package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colfold/colfold/pkg/util"
)

func Test_ltypeSerialize(t *testing.T) {
	kases := []LType{
		BooleanType(),
		TinyintType(),
		IntegerType(),
		BigintType(),
		UtinyintType(),
		UbigintType(),
		FloatType(),
		DoubleType(),
		VarcharType(),
		DateType(),
		HugeintType(),
		DecimalType(DecimalMaxWidthInt64, 2),
		ListType(BigintType()),
		ListType(DecimalType(10, 3)),
	}
	serial := util.NewBufferSerialize(&bytes.Buffer{})
	for _, kase := range kases {
		err := kase.Serialize(serial)
		assert.NoError(t, err)
	}
	for _, kase := range kases {
		got, err := DeserializeLType(serial)
		assert.NoError(t, err)
		assert.True(t, kase.Equal(got), kase.String())
		assert.Equal(t, kase.PTyp, got.PTyp)
	}
}

func Test_ltypeEqual(t *testing.T) {
	assert.True(t, BigintType().Equal(BigintType()))
	assert.False(t, BigintType().Equal(IntegerType()))
	assert.True(t, DecimalType(10, 2).Equal(DecimalType(10, 2)))
	assert.False(t, DecimalType(10, 2).Equal(DecimalType(10, 3)))
	assert.True(t, ListType(BigintType()).Equal(ListType(BigintType())))
	assert.False(t, ListType(BigintType()).Equal(ListType(VarcharType())))
}

func Test_ltypePredicates(t *testing.T) {
	assert.True(t, UbigintType().IsUnsigned())
	assert.True(t, UtinyintType().IsUnsigned())
	assert.False(t, BigintType().IsUnsigned())
	assert.False(t, VarcharType().IsUnsigned())

	assert.True(t, BigintType().IsIntegral())
	assert.True(t, HugeintType().IsIntegral())
	assert.False(t, DoubleType().IsIntegral())

	assert.True(t, DecimalType(10, 2).IsNumeric())
	assert.False(t, VarcharType().IsNumeric())
}

func Test_phyTypeSize(t *testing.T) {
	assert.Equal(t, 1, INT8.Size())
	assert.Equal(t, 2, INT16.Size())
	assert.Equal(t, 4, INT32.Size())
	assert.Equal(t, 8, INT64.Size())
	assert.Equal(t, 8, UINT64.Size())
	assert.Equal(t, 16, INT128.Size())
	assert.Equal(t, 4, FLOAT.Size())
	assert.Equal(t, 8, DOUBLE.Size())

	assert.True(t, INT64.IsConstant())
	assert.True(t, DATE.IsConstant())
	assert.False(t, VARCHAR.IsConstant())
	assert.True(t, VARCHAR.IsVarchar())
}

func Test_decimal(t *testing.T) {
	d, err := NewDecimal(1, 99, 2)
	assert.NoError(t, err)
	assert.Equal(t, "1.99", d.String())

	p, err := ParseDecimal("1.99", 2)
	assert.NoError(t, err)
	assert.True(t, d.Equal(&p))

	_, err = ParseDecimal("not a number", 2)
	assert.Error(t, err)
}

func Test_date(t *testing.T) {
	d := Date{Year: 2024, Month: 9, Day: 8}
	assert.Equal(t, "2024-09-08", d.String())
	assert.True(t, d.Equal(&Date{Year: 2024, Month: 9, Day: 8}))
	assert.False(t, d.Equal(&Date{Year: 2024, Month: 9, Day: 9}))
}
