package chunk

import (
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// Per type binary encoding of a single non NULL value. Every encoding
// is self delimiting; the only length prefix is the one varchar
// carries itself. Nullability is the caller's concern.

func (val *Value) Serialize(serial util.Serialize) error {
	switch val.Typ.Id {
	case common.LTID_BOOLEAN:
		return util.Write[bool](val.Bool, serial)
	case common.LTID_TINYINT:
		return util.Write[int8](int8(val.I64), serial)
	case common.LTID_SMALLINT:
		return util.Write[int16](int16(val.I64), serial)
	case common.LTID_INTEGER:
		return util.Write[int32](int32(val.I64), serial)
	case common.LTID_BIGINT:
		return util.Write[int64](val.I64, serial)
	case common.LTID_UTINYINT:
		return util.Write[uint8](uint8(val.U64), serial)
	case common.LTID_USMALLINT:
		return util.Write[uint16](uint16(val.U64), serial)
	case common.LTID_UINTEGER:
		return util.Write[uint32](uint32(val.U64), serial)
	case common.LTID_UBIGINT:
		return util.Write[uint64](val.U64, serial)
	case common.LTID_FLOAT:
		return util.Write[float32](float32(val.F64), serial)
	case common.LTID_DOUBLE:
		return util.Write[float64](val.F64, serial)
	case common.LTID_VARCHAR:
		return util.WriteString(val.Str, serial)
	case common.LTID_DATE:
		date := common.Date{
			Year:  int32(val.I64),
			Month: int32(val.I64_1),
			Day:   int32(val.I64_2),
		}
		return util.Write[common.Date](date, serial)
	case common.LTID_DECIMAL:
		return util.WriteString(val.String(), serial)
	case common.LTID_HUGEINT:
		err := util.Write[int64](val.I64, serial)
		if err != nil {
			return err
		}
		return util.Write[uint64](val.U64, serial)
	default:
		panic("usp")
	}
}

func DeserializeValue(typ common.LType, deserial util.Deserialize) (*Value, error) {
	ret := &Value{Typ: typ}
	switch typ.Id {
	case common.LTID_BOOLEAN:
		err := util.Read[bool](&ret.Bool, deserial)
		if err != nil {
			return nil, err
		}
	case common.LTID_TINYINT:
		var v int8
		err := util.Read[int8](&v, deserial)
		if err != nil {
			return nil, err
		}
		ret.I64 = int64(v)
	case common.LTID_SMALLINT:
		var v int16
		err := util.Read[int16](&v, deserial)
		if err != nil {
			return nil, err
		}
		ret.I64 = int64(v)
	case common.LTID_INTEGER:
		var v int32
		err := util.Read[int32](&v, deserial)
		if err != nil {
			return nil, err
		}
		ret.I64 = int64(v)
	case common.LTID_BIGINT:
		err := util.Read[int64](&ret.I64, deserial)
		if err != nil {
			return nil, err
		}
	case common.LTID_UTINYINT:
		var v uint8
		err := util.Read[uint8](&v, deserial)
		if err != nil {
			return nil, err
		}
		ret.U64 = uint64(v)
	case common.LTID_USMALLINT:
		var v uint16
		err := util.Read[uint16](&v, deserial)
		if err != nil {
			return nil, err
		}
		ret.U64 = uint64(v)
	case common.LTID_UINTEGER:
		var v uint32
		err := util.Read[uint32](&v, deserial)
		if err != nil {
			return nil, err
		}
		ret.U64 = uint64(v)
	case common.LTID_UBIGINT:
		err := util.Read[uint64](&ret.U64, deserial)
		if err != nil {
			return nil, err
		}
	case common.LTID_FLOAT:
		var v float32
		err := util.Read[float32](&v, deserial)
		if err != nil {
			return nil, err
		}
		ret.F64 = float64(v)
	case common.LTID_DOUBLE:
		err := util.Read[float64](&ret.F64, deserial)
		if err != nil {
			return nil, err
		}
	case common.LTID_VARCHAR:
		s, err := util.ReadString(deserial)
		if err != nil {
			return nil, err
		}
		ret.Str = s
	case common.LTID_DATE:
		var date common.Date
		err := util.Read[common.Date](&date, deserial)
		if err != nil {
			return nil, err
		}
		ret.I64 = int64(date.Year)
		ret.I64_1 = int64(date.Month)
		ret.I64_2 = int64(date.Day)
	case common.LTID_DECIMAL:
		s, err := util.ReadString(deserial)
		if err != nil {
			return nil, err
		}
		d, err := common.ParseDecimal(s, typ.Scale)
		if err != nil {
			return nil, err
		}
		w, f, ok := d.Int64(typ.Scale)
		if ok {
			ret.I64 = w
			ret.I64_1 = f
		} else {
			ret.Str = d.String()
		}
	case common.LTID_HUGEINT:
		err := util.Read[int64](&ret.I64, deserial)
		if err != nil {
			return nil, err
		}
		err = util.Read[uint64](&ret.U64, deserial)
		if err != nil {
			return nil, err
		}
	default:
		panic("usp")
	}
	return ret, nil
}
