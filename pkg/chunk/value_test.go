package chunk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

func Test_valueEqual(t *testing.T) {
	a := &Value{Typ: common.BigintType(), I64: 42}
	assert.True(t, a.Equal(&Value{Typ: common.BigintType(), I64: 42}))
	assert.False(t, a.Equal(&Value{Typ: common.BigintType(), I64: 43}))
	assert.False(t, a.Equal(&Value{Typ: common.IntegerType(), I64: 42}))
	assert.False(t, a.Equal(NullValue(common.BigintType())))
	assert.False(t, a.Equal(nil))

	n := NullValue(common.BigintType())
	assert.True(t, n.Equal(NullValue(common.BigintType())))

	s := &Value{Typ: common.VarcharType(), Str: "abc"}
	assert.True(t, s.Equal(&Value{Typ: common.VarcharType(), Str: "abc"}))
	assert.False(t, s.Equal(&Value{Typ: common.VarcharType(), Str: "abd"}))
}

func Test_valueCopy(t *testing.T) {
	a := &Value{Typ: common.VarcharType(), Str: "abc"}
	b := a.Copy()
	assert.True(t, a.Equal(b))
	b.Str = "xyz"
	assert.Equal(t, "abc", a.Str)
}

func Test_defaultValue(t *testing.T) {
	d := DefaultValue(common.BigintType())
	assert.False(t, d.IsNull)
	assert.Equal(t, int64(0), d.I64)

	s := DefaultValue(common.VarcharType())
	assert.Equal(t, "", s.Str)

	date := DefaultValue(common.DateType())
	assert.Equal(t, "1970-01-01", date.String())
}

func Test_convertValue(t *testing.T) {
	// widening int
	got, err := ConvertValue(
		&Value{Typ: common.IntegerType(), I64: 7},
		common.BigintType())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.I64)

	// narrowing in range
	got, err = ConvertValue(
		&Value{Typ: common.BigintType(), I64: 127},
		common.TinyintType())
	assert.NoError(t, err)
	assert.Equal(t, int64(127), got.I64)

	// narrowing out of range
	_, err = ConvertValue(
		&Value{Typ: common.BigintType(), I64: 128},
		common.TinyintType())
	assert.Error(t, err)

	// signed to unsigned, negative
	_, err = ConvertValue(
		&Value{Typ: common.BigintType(), I64: -1},
		common.UbigintType())
	assert.Error(t, err)

	// varchar number to bigint
	got, err = ConvertValue(
		&Value{Typ: common.VarcharType(), Str: "12345"},
		common.BigintType())
	assert.NoError(t, err)
	assert.Equal(t, int64(12345), got.I64)

	// varchar garbage to bigint
	_, err = ConvertValue(
		&Value{Typ: common.VarcharType(), Str: "zzz"},
		common.BigintType())
	assert.Error(t, err)

	// int to varchar
	got, err = ConvertValue(
		&Value{Typ: common.BigintType(), I64: 99},
		common.VarcharType())
	assert.NoError(t, err)
	assert.Equal(t, "99", got.Str)

	// int to decimal
	got, err = ConvertValue(
		&Value{Typ: common.BigintType(), I64: 5},
		common.DecimalType(10, 2))
	assert.NoError(t, err)
	assert.Equal(t, "5.00", got.String())

	// varchar to date
	got, err = ConvertValue(
		&Value{Typ: common.VarcharType(), Str: "2024-09-08"},
		common.DateType())
	assert.NoError(t, err)
	assert.Equal(t, int64(2024), got.I64)
	assert.Equal(t, int64(9), got.I64_1)
	assert.Equal(t, int64(8), got.I64_2)

	// NULL converts to NULL of the target type
	got, err = ConvertValue(NullValue(common.IntegerType()), common.BigintType())
	assert.NoError(t, err)
	assert.True(t, got.IsNull)
	assert.True(t, got.Typ.Equal(common.BigintType()))
}

func Test_valueCodec(t *testing.T) {
	kases := []*Value{
		{Typ: common.BooleanType(), Bool: true},
		{Typ: common.TinyintType(), I64: -8},
		{Typ: common.SmallintType(), I64: -1234},
		{Typ: common.IntegerType(), I64: 56789},
		{Typ: common.BigintType(), I64: -987654321},
		{Typ: common.UtinyintType(), U64: 200},
		{Typ: common.UbigintType(), U64: 1 << 60},
		{Typ: common.FloatType(), F64: 1.5},
		{Typ: common.DoubleType(), F64: -2.25},
		{Typ: common.VarcharType(), Str: "hello"},
		{Typ: common.VarcharType(), Str: ""},
		{Typ: common.DateType(), I64: 2024, I64_1: 9, I64_2: 8},
		{Typ: common.DecimalType(10, 2), I64: 1, I64_1: 99},
		{Typ: common.HugeintType(), I64: 3, U64: 7},
	}
	serial := util.NewBufferSerialize(&bytes.Buffer{})
	for _, kase := range kases {
		err := kase.Serialize(serial)
		assert.NoError(t, err)
	}
	for _, kase := range kases {
		got, err := DeserializeValue(kase.Typ, serial)
		assert.NoError(t, err)
		assert.True(t, kase.Equal(got), kase.String())
	}
}
