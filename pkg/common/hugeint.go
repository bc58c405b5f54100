package common

import (
	"fmt"
	"math/big"
)

type Hugeint struct {
	Lower uint64
	Upper int64
}

func (h *Hugeint) Equal(o *Hugeint) bool {
	return h.Lower == o.Lower && h.Upper == o.Upper
}

func (h Hugeint) String() string {
	b := big.NewInt(h.Upper)
	b.Lsh(b, 64)
	b.Add(b, new(big.Int).SetUint64(h.Lower))
	return fmt.Sprintf("%v", b.String())
}
