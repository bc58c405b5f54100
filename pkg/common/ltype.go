package common

import (
	"fmt"

	"github.com/colfold/colfold/pkg/util"
)

type LType struct {
	Id    LTypeId
	PTyp  PhyType
	Width int
	Scale int
	// element type of a LIST; nil otherwise
	Child *LType
}

func MakeLType(id LTypeId) LType {
	ret := LType{Id: id}
	ret.PTyp = ret.GetInternalType()
	return ret
}

func Null() LType {
	return MakeLType(LTID_NULL)
}

func BooleanType() LType {
	return MakeLType(LTID_BOOLEAN)
}

func TinyintType() LType {
	return MakeLType(LTID_TINYINT)
}

func SmallintType() LType {
	return MakeLType(LTID_SMALLINT)
}

func IntegerType() LType {
	return MakeLType(LTID_INTEGER)
}

func BigintType() LType {
	return MakeLType(LTID_BIGINT)
}

func UtinyintType() LType {
	return MakeLType(LTID_UTINYINT)
}

func UsmallintType() LType {
	return MakeLType(LTID_USMALLINT)
}

func UintegerType() LType {
	return MakeLType(LTID_UINTEGER)
}

func UbigintType() LType {
	return MakeLType(LTID_UBIGINT)
}

func HugeintType() LType {
	return MakeLType(LTID_HUGEINT)
}

func FloatType() LType {
	return MakeLType(LTID_FLOAT)
}

func DoubleType() LType {
	return MakeLType(LTID_DOUBLE)
}

func VarcharType() LType {
	return MakeLType(LTID_VARCHAR)
}

func DateType() LType {
	return MakeLType(LTID_DATE)
}

func DecimalType(width, scale int) LType {
	ret := MakeLType(LTID_DECIMAL)
	ret.Width = width
	ret.Scale = scale
	return ret
}

func AnyType() LType {
	return MakeLType(LTID_ANY)
}

func ListType(child LType) LType {
	ret := MakeLType(LTID_LIST)
	ret.Child = &child
	return ret
}

var Unsigneds = map[LTypeId]int{
	LTID_UTINYINT:  0,
	LTID_USMALLINT: 0,
	LTID_UINTEGER:  0,
	LTID_UBIGINT:   0,
}

func (lt LType) IsUnsigned() bool {
	_, has := Unsigneds[lt.Id]
	return has
}

var Integrals = map[LTypeId]int{
	LTID_TINYINT:   0,
	LTID_SMALLINT:  0,
	LTID_INTEGER:   0,
	LTID_BIGINT:    0,
	LTID_UTINYINT:  0,
	LTID_USMALLINT: 0,
	LTID_UINTEGER:  0,
	LTID_UBIGINT:   0,
	LTID_HUGEINT:   0,
}

func (lt LType) IsIntegral() bool {
	_, has := Integrals[lt.Id]
	return has
}

var Numerics = map[LTypeId]int{
	LTID_TINYINT:   0,
	LTID_SMALLINT:  0,
	LTID_INTEGER:   0,
	LTID_BIGINT:    0,
	LTID_HUGEINT:   0,
	LTID_FLOAT:     0,
	LTID_DOUBLE:    0,
	LTID_DECIMAL:   0,
	LTID_UTINYINT:  0,
	LTID_USMALLINT: 0,
	LTID_UINTEGER:  0,
	LTID_UBIGINT:   0,
}

func (lt LType) IsNumeric() bool {
	_, has := Numerics[lt.Id]
	return has
}

func (lt LType) Equal(o LType) bool {
	if lt.Id != o.Id {
		return false
	}
	switch lt.Id {
	case LTID_DECIMAL:
		return lt.Width == o.Width && lt.Scale == o.Scale
	case LTID_LIST:
		if lt.Child == nil || o.Child == nil {
			return lt.Child == o.Child
		}
		return lt.Child.Equal(*o.Child)
	default:
	}
	return true
}

func (lt LType) GetInternalType() PhyType {
	switch lt.Id {
	case LTID_BOOLEAN:
		return BOOL
	case LTID_TINYINT:
		return INT8
	case LTID_UTINYINT:
		return UINT8
	case LTID_SMALLINT:
		return INT16
	case LTID_USMALLINT:
		return UINT16
	case LTID_NULL, LTID_INTEGER:
		return INT32
	case LTID_UINTEGER:
		return UINT32
	case LTID_BIGINT:
		return INT64
	case LTID_UBIGINT:
		return UINT64
	case LTID_HUGEINT:
		return INT128
	case LTID_FLOAT:
		return FLOAT
	case LTID_DOUBLE:
		return DOUBLE
	case LTID_DECIMAL:
		return DECIMAL
	case LTID_VARCHAR:
		return VARCHAR
	case LTID_DATE:
		return DATE
	case LTID_LIST:
		return LIST
	case LTID_ANY, LTID_INVALID:
		return INVALID
	default:
		panic(fmt.Sprintf("usp logical type %d", int(lt.Id)))
	}
}

func (lt LType) String() string {
	switch lt.Id {
	case LTID_DECIMAL:
		return fmt.Sprintf("%v(%d,%d)", lt.PTyp, lt.Width, lt.Scale)
	case LTID_LIST:
		if lt.Child != nil {
			return fmt.Sprintf("LIST(%v)", *lt.Child)
		}
		return "LIST"
	default:
		return fmt.Sprintf("%v", lt.PTyp)
	}
}

func (lt LType) Serialize(serial util.Serialize) error {
	err := util.Write[int](int(lt.Id), serial)
	if err != nil {
		return err
	}
	err = util.Write[int](lt.Width, serial)
	if err != nil {
		return err
	}
	err = util.Write[int](lt.Scale, serial)
	if err != nil {
		return err
	}
	return util.WriteOptional(
		func() bool { return lt.Child != nil },
		func(serial util.Serialize) error {
			return lt.Child.Serialize(serial)
		},
		serial)
}

func DeserializeLType(deserial util.Deserialize) (LType, error) {
	id := 0
	width := 0
	scale := 0
	err := util.Read[int](&id, deserial)
	if err != nil {
		return LType{}, err
	}
	err = util.Read[int](&width, deserial)
	if err != nil {
		return LType{}, err
	}
	err = util.Read[int](&scale, deserial)
	if err != nil {
		return LType{}, err
	}
	ret := LType{
		Id:    LTypeId(id),
		Width: width,
		Scale: scale,
	}
	err = util.ReadOptional(
		func(deserial util.Deserialize) error {
			child, cerr := DeserializeLType(deserial)
			if cerr != nil {
				return cerr
			}
			ret.Child = &child
			return nil
		},
		deserial)
	if err != nil {
		return LType{}, err
	}
	ret.PTyp = ret.GetInternalType()
	return ret, nil
}
