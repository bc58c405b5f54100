package common

import (
	"fmt"
	"unsafe"
)

type PhyType int

const (
	NA      PhyType = 0
	BOOL    PhyType = 1
	UINT8   PhyType = 2
	INT8    PhyType = 3
	UINT16  PhyType = 4
	INT16   PhyType = 5
	UINT32  PhyType = 6
	INT32   PhyType = 7
	UINT64  PhyType = 8
	INT64   PhyType = 9
	FLOAT   PhyType = 11
	DOUBLE  PhyType = 12
	LIST    PhyType = 23
	VARCHAR PhyType = 200
	INT128  PhyType = 204
	UNKNOWN PhyType = 205
	DATE    PhyType = 207
	DECIMAL PhyType = 209

	INVALID PhyType = 255
)

var pTypeToStr = map[PhyType]string{
	NA:      "NA",
	BOOL:    "BOOL",
	UINT8:   "UINT8",
	INT8:    "INT8",
	UINT16:  "UINT16",
	INT16:   "INT16",
	UINT32:  "UINT32",
	INT32:   "INT32",
	UINT64:  "UINT64",
	INT64:   "INT64",
	FLOAT:   "FLOAT",
	DOUBLE:  "DOUBLE",
	LIST:    "LIST",
	VARCHAR: "VARCHAR",
	INT128:  "INT128",
	UNKNOWN: "UNKNOWN",
	DATE:    "DATE",
	DECIMAL: "DECIMAL",
	INVALID: "INVALID",
}

func (pt PhyType) String() string {
	if s, has := pTypeToStr[pt]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", int(pt)))
}

var (
	BoolSize    int
	Int8Size    int
	Int16Size   int
	Int32Size   int
	Int64Size   int
	Int128Size  int
	DateSize    int
	DecimalSize int
	Float32Size int
)

func init() {
	b := false
	var i int8
	var f float32
	BoolSize = int(unsafe.Sizeof(b))
	Int8Size = int(unsafe.Sizeof(i))
	Int16Size = Int8Size * 2
	Int32Size = Int8Size * 4
	Int64Size = Int8Size * 8
	Int128Size = int(unsafe.Sizeof(Hugeint{}))
	DateSize = int(unsafe.Sizeof(Date{}))
	DecimalSize = int(unsafe.Sizeof(Decimal{}))
	Float32Size = int(unsafe.Sizeof(f))
}

func (pt PhyType) Size() int {
	switch pt {
	case BOOL:
		return BoolSize
	case INT8, UINT8:
		return Int8Size
	case INT16, UINT16:
		return Int16Size
	case INT32, UINT32:
		return Int32Size
	case INT64, UINT64, DOUBLE:
		return Int64Size
	case INT128:
		return Int128Size
	case FLOAT:
		return Float32Size
	case DATE:
		return DateSize
	case DECIMAL:
		return DecimalSize
	default:
		panic("usp")
	}
}

// IsConstant reports whether the physical representation has a fixed
// byte width and can live directly in a vector's data area.
func (pt PhyType) IsConstant() bool {
	return pt >= BOOL && pt <= DOUBLE ||
		pt == INT128 ||
		pt == DATE ||
		pt == DECIMAL
}

func (pt PhyType) IsVarchar() bool {
	return pt == VARCHAR
}
