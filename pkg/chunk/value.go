package chunk

import (
	"fmt"

	"github.com/huandu/go-clone"

	"github.com/colfold/colfold/pkg/common"
)

// Value is the runtime typed holder for a single cell. Which fields
// are meaningful depends on Typ:
//
//	signed integrals        I64
//	unsigned integrals      U64
//	floats                  F64
//	varchar                 Str
//	date                    I64(year) I64_1(month) I64_2(day)
//	decimal                 I64(whole) I64_1(frac), Str when the
//	                        coefficient does not fit an int64 pair
//	hugeint                 I64(upper) U64(lower)
type Value struct {
	Typ    common.LType
	IsNull bool
	Bool   bool
	I64    int64
	I64_1  int64
	I64_2  int64
	U64    uint64
	F64    float64
	Str    string
}

func (val *Value) String() string {
	if val.IsNull {
		return "NULL"
	}
	switch val.Typ.Id {
	case common.LTID_BOOLEAN:
		return fmt.Sprintf("%v", val.Bool)
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT:
		return fmt.Sprintf("%d", val.I64)
	case common.LTID_UTINYINT, common.LTID_USMALLINT,
		common.LTID_UINTEGER, common.LTID_UBIGINT:
		return fmt.Sprintf("%d", val.U64)
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		return fmt.Sprintf("%v", val.F64)
	case common.LTID_VARCHAR:
		return val.Str
	case common.LTID_DECIMAL:
		if len(val.Str) != 0 {
			return val.Str
		}
		d, err := common.NewDecimal(val.I64, val.I64_1, val.Typ.Scale)
		if err != nil {
			panic(err)
		}
		return d.String()
	case common.LTID_DATE:
		d := common.Date{
			Year:  int32(val.I64),
			Month: int32(val.I64_1),
			Day:   int32(val.I64_2),
		}
		return d.String()
	case common.LTID_HUGEINT:
		h := common.Hugeint{Upper: val.I64, Lower: val.U64}
		return h.String()
	default:
		panic("usp")
	}
}

func (val *Value) Equal(o *Value) bool {
	if o == nil {
		return false
	}
	if !val.Typ.Equal(o.Typ) {
		return false
	}
	if val.IsNull || o.IsNull {
		return val.IsNull == o.IsNull
	}
	switch val.Typ.Id {
	case common.LTID_BOOLEAN:
		return val.Bool == o.Bool
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT:
		return val.I64 == o.I64
	case common.LTID_UTINYINT, common.LTID_USMALLINT,
		common.LTID_UINTEGER, common.LTID_UBIGINT:
		return val.U64 == o.U64
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		return val.F64 == o.F64
	case common.LTID_VARCHAR:
		return val.Str == o.Str
	case common.LTID_DECIMAL:
		return val.String() == o.String()
	case common.LTID_DATE:
		return val.I64 == o.I64 && val.I64_1 == o.I64_1 && val.I64_2 == o.I64_2
	case common.LTID_HUGEINT:
		return val.I64 == o.I64 && val.U64 == o.U64
	default:
		panic("usp")
	}
}

// Copy deep copies the value. Stored aggregation slots own their
// values, so copying decouples them from reused input buffers.
func (val *Value) Copy() *Value {
	return clone.Clone(val).(*Value)
}

func NullValue(typ common.LType) *Value {
	return &Value{
		Typ:    typ,
		IsNull: true,
	}
}

// DefaultValue is the zero value of a type, substituted for slots
// never written when the result array materializes.
func DefaultValue(typ common.LType) *Value {
	ret := &Value{
		Typ: typ,
	}
	switch typ.Id {
	case common.LTID_BOOLEAN,
		common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT,
		common.LTID_UTINYINT, common.LTID_USMALLINT,
		common.LTID_UINTEGER, common.LTID_UBIGINT,
		common.LTID_FLOAT, common.LTID_DOUBLE,
		common.LTID_VARCHAR, common.LTID_DECIMAL,
		common.LTID_HUGEINT:
	case common.LTID_DATE:
		ret.I64 = 1970
		ret.I64_1 = 1
		ret.I64_2 = 1
	default:
		panic(fmt.Sprintf("usp default for %v", typ))
	}
	return ret
}

// GetUint64 reads the value of an unsigned integral.
func (val *Value) GetUint64() uint64 {
	switch val.Typ.Id {
	case common.LTID_UTINYINT, common.LTID_USMALLINT,
		common.LTID_UINTEGER, common.LTID_UBIGINT:
		return val.U64
	default:
		panic(fmt.Sprintf("usp uint of %v", val.Typ))
	}
}
