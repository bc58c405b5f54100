package common

import (
	dec "github.com/govalues/decimal"
)

const (
	DecimalMaxWidthInt64 = 18
	DecimalMaxWidth      = 38
)

type Decimal struct {
	dec.Decimal
}

func (d *Decimal) Equal(o *Decimal) bool {
	return d.Decimal.Cmp(o.Decimal) == 0
}

func (d *Decimal) String() string {
	return d.Decimal.String()
}

func NewDecimal(whole, frac int64, scale int) (Decimal, error) {
	val, err := dec.NewFromInt64(whole, frac, scale)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{val}, nil
}

func ParseDecimal(s string, scale int) (Decimal, error) {
	val, err := dec.ParseExact(s, scale)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{val}, nil
}
