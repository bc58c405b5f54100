package chunk

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"

	"github.com/colfold/colfold/pkg/common"
)

var signedRanges = map[common.LTypeId][2]int64{
	common.LTID_TINYINT:  {math.MinInt8, math.MaxInt8},
	common.LTID_SMALLINT: {math.MinInt16, math.MaxInt16},
	common.LTID_INTEGER:  {math.MinInt32, math.MaxInt32},
	common.LTID_BIGINT:   {math.MinInt64, math.MaxInt64},
}

var unsignedMaxes = map[common.LTypeId]uint64{
	common.LTID_UTINYINT:  math.MaxUint8,
	common.LTID_USMALLINT: math.MaxUint16,
	common.LTID_UINTEGER:  math.MaxUint32,
	common.LTID_UBIGINT:   math.MaxUint64,
}

func (val *Value) native() any {
	switch val.Typ.Id {
	case common.LTID_BOOLEAN:
		return val.Bool
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT:
		return val.I64
	case common.LTID_UTINYINT, common.LTID_USMALLINT,
		common.LTID_UINTEGER, common.LTID_UBIGINT:
		return val.U64
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		return val.F64
	case common.LTID_VARCHAR, common.LTID_DECIMAL,
		common.LTID_DATE, common.LTID_HUGEINT:
		return val.String()
	default:
		panic("usp")
	}
}

// ConvertValue coerces val into typ. A NULL converts to a NULL of the
// target type; anything lossy or out of range fails.
func ConvertValue(val *Value, typ common.LType) (*Value, error) {
	if val == nil || val.IsNull {
		return NullValue(typ), nil
	}
	if val.Typ.Equal(typ) {
		ret := val.Copy()
		ret.Typ = typ
		return ret, nil
	}

	src := val.native()
	ret := &Value{Typ: typ}
	switch typ.Id {
	case common.LTID_BOOLEAN:
		b, err := cast.ToBoolE(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		ret.Bool = b
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT:
		i, err := cast.ToInt64E(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		rng := signedRanges[typ.Id]
		if i < rng[0] || i > rng[1] {
			return nil, convErr(val, typ)
		}
		ret.I64 = i
	case common.LTID_UTINYINT, common.LTID_USMALLINT,
		common.LTID_UINTEGER, common.LTID_UBIGINT:
		u, err := cast.ToUint64E(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		if u > unsignedMaxes[typ.Id] {
			return nil, convErr(val, typ)
		}
		ret.U64 = u
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		f, err := cast.ToFloat64E(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		ret.F64 = f
	case common.LTID_VARCHAR:
		s, err := cast.ToStringE(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		ret.Str = s
	case common.LTID_DECIMAL:
		s, err := cast.ToStringE(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		d, err := common.ParseDecimal(s, typ.Scale)
		if err != nil {
			return nil, convErr(val, typ)
		}
		w, f, ok := d.Int64(typ.Scale)
		if ok {
			ret.I64 = w
			ret.I64_1 = f
		} else {
			ret.Str = d.String()
		}
	case common.LTID_DATE:
		s, err := cast.ToStringE(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, convErr(val, typ)
		}
		y, m, d := t.Date()
		ret.I64 = int64(y)
		ret.I64_1 = int64(m)
		ret.I64_2 = int64(d)
	case common.LTID_HUGEINT:
		i, err := cast.ToInt64E(src)
		if err != nil {
			return nil, convErr(val, typ)
		}
		ret.U64 = uint64(i)
		if i < 0 {
			ret.I64 = -1
		}
	default:
		return nil, convErr(val, typ)
	}
	return ret, nil
}

func convErr(val *Value, typ common.LType) error {
	return fmt.Errorf("cannot convert %v (%v) to %v", val, val.Typ, typ)
}
