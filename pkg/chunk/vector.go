package chunk

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// Vector is a flat column of fixed width cells plus a validity mask.
// Varchar cells live in the buffer's string area instead of the raw
// data bytes.
type Vector struct {
	_Typ common.LType
	Data []byte
	Mask *util.Bitmap
	Buf  *VecBuffer
	_Cap int
}

func NewFlatVector(typ common.LType, cap int) *Vector {
	vec := &Vector{
		_Typ: typ,
		Mask: &util.Bitmap{},
		_Cap: cap,
	}
	vec.Buf = NewStandardBuffer(typ, cap)
	vec.Data = vec.Buf.Data
	return vec
}

func (vec *Vector) Typ() common.LType {
	return vec._Typ
}

func (vec *Vector) Cap() int {
	return vec._Cap
}

func GetSlice[T any](vec *Vector) []T {
	pSize := vec.Typ().GetInternalType().Size()
	return util.ToSlice[T](vec.Data, pSize)
}

func (vec *Vector) GetValue(idx int) *Value {
	util.AssertFunc(idx < vec._Cap)
	if !vec.Mask.RowIsValid(uint64(idx)) {
		return NullValue(vec.Typ())
	}
	switch vec.Typ().Id {
	case common.LTID_BOOLEAN:
		data := GetSlice[bool](vec)
		return &Value{Typ: vec.Typ(), Bool: data[idx]}
	case common.LTID_TINYINT:
		data := GetSlice[int8](vec)
		return &Value{Typ: vec.Typ(), I64: int64(data[idx])}
	case common.LTID_SMALLINT:
		data := GetSlice[int16](vec)
		return &Value{Typ: vec.Typ(), I64: int64(data[idx])}
	case common.LTID_INTEGER:
		data := GetSlice[int32](vec)
		return &Value{Typ: vec.Typ(), I64: int64(data[idx])}
	case common.LTID_BIGINT:
		data := GetSlice[int64](vec)
		return &Value{Typ: vec.Typ(), I64: data[idx]}
	case common.LTID_UTINYINT:
		data := GetSlice[uint8](vec)
		return &Value{Typ: vec.Typ(), U64: uint64(data[idx])}
	case common.LTID_USMALLINT:
		data := GetSlice[uint16](vec)
		return &Value{Typ: vec.Typ(), U64: uint64(data[idx])}
	case common.LTID_UINTEGER:
		data := GetSlice[uint32](vec)
		return &Value{Typ: vec.Typ(), U64: uint64(data[idx])}
	case common.LTID_UBIGINT:
		data := GetSlice[uint64](vec)
		return &Value{Typ: vec.Typ(), U64: data[idx]}
	case common.LTID_FLOAT:
		data := GetSlice[float32](vec)
		return &Value{Typ: vec.Typ(), F64: float64(data[idx])}
	case common.LTID_DOUBLE:
		data := GetSlice[float64](vec)
		return &Value{Typ: vec.Typ(), F64: data[idx]}
	case common.LTID_VARCHAR:
		return &Value{Typ: vec.Typ(), Str: vec.Buf.Strs[idx]}
	case common.LTID_DATE:
		data := GetSlice[common.Date](vec)
		return &Value{
			Typ:   vec.Typ(),
			I64:   int64(data[idx].Year),
			I64_1: int64(data[idx].Month),
			I64_2: int64(data[idx].Day),
		}
	case common.LTID_DECIMAL:
		data := GetSlice[common.Decimal](vec)
		d := data[idx]
		w, f, ok := d.Int64(vec.Typ().Scale)
		if !ok {
			return &Value{Typ: vec.Typ(), Str: d.String()}
		}
		return &Value{Typ: vec.Typ(), I64: w, I64_1: f}
	case common.LTID_HUGEINT:
		data := GetSlice[common.Hugeint](vec)
		return &Value{Typ: vec.Typ(), I64: data[idx].Upper, U64: data[idx].Lower}
	default:
		panic("usp")
	}
}

func (vec *Vector) SetValue(idx int, val *Value) {
	util.AssertFunc(idx < vec._Cap)
	util.AssertFunc(val.Typ.Equal(vec.Typ()))
	vec.Mask.Set(uint64(idx), !val.IsNull)
	if val.IsNull {
		return
	}
	switch vec.Typ().GetInternalType() {
	case common.BOOL:
		GetSlice[bool](vec)[idx] = val.Bool
	case common.INT8:
		GetSlice[int8](vec)[idx] = int8(val.I64)
	case common.INT16:
		GetSlice[int16](vec)[idx] = int16(val.I64)
	case common.INT32:
		GetSlice[int32](vec)[idx] = int32(val.I64)
	case common.INT64:
		GetSlice[int64](vec)[idx] = val.I64
	case common.UINT8:
		GetSlice[uint8](vec)[idx] = uint8(val.U64)
	case common.UINT16:
		GetSlice[uint16](vec)[idx] = uint16(val.U64)
	case common.UINT32:
		GetSlice[uint32](vec)[idx] = uint32(val.U64)
	case common.UINT64:
		GetSlice[uint64](vec)[idx] = val.U64
	case common.FLOAT:
		GetSlice[float32](vec)[idx] = float32(val.F64)
	case common.DOUBLE:
		GetSlice[float64](vec)[idx] = val.F64
	case common.VARCHAR:
		vec.Buf.Strs[idx] = val.Str
	case common.DATE:
		GetSlice[common.Date](vec)[idx] = common.Date{
			Year:  int32(val.I64),
			Month: int32(val.I64_1),
			Day:   int32(val.I64_2),
		}
	case common.DECIMAL:
		var d common.Decimal
		var err error
		if len(val.Str) != 0 {
			d, err = common.ParseDecimal(val.Str, vec.Typ().Scale)
		} else {
			d, err = common.NewDecimal(val.I64, val.I64_1, vec.Typ().Scale)
		}
		if err != nil {
			panic(err)
		}
		GetSlice[common.Decimal](vec)[idx] = d
	case common.INT128:
		GetSlice[common.Hugeint](vec)[idx] = common.Hugeint{
			Upper: val.I64,
			Lower: val.U64,
		}
	default:
		panic("usp")
	}
}

func (vec *Vector) Print(prefix string, rowCount int) {
	fields := make([]zap.Field, 0)
	for j := 0; j < rowCount; j++ {
		val := vec.GetValue(j)
		fields = append(fields, zap.String(fmt.Sprintf("%d", j), val.String()))
	}
	util.Info(prefix, fields...)
}
