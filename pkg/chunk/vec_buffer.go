package chunk

import (
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

type VecBuffer struct {
	Data []byte
	Strs []string
}

func NewStandardBuffer(lt common.LType, cap int) *VecBuffer {
	pTyp := lt.GetInternalType()
	if pTyp.IsVarchar() {
		return &VecBuffer{
			Strs: make([]string, cap),
		}
	}
	return &VecBuffer{
		Data: util.GAlloc.Alloc(pTyp.Size() * cap),
	}
}
