// Copyright 2024-2025 the colfold authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compute

import (
	"fmt"

	"github.com/colfold/colfold/pkg/chunk"
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// MaxArraySize caps the positions a single group may address. A
// position at or beyond it is a hard error, not a silent drop.
const MaxArraySize = 0xFFFFFF

const ArrayInsertAtName = "group_array_insert_at"

func init() {
	RegisterAggrFunc(ArrayInsertAtName, NewArrayInsertAt)
}

// ArrayInsertAt places each value at an explicit position of the
// group's result array. The first write to a position wins. Positions
// never written materialize as the default value.
//
// Parameters:
//
//	params[0]  default value for unwritten positions. NULL or absent
//	           means the zero value of the element type.
//	params[1]  fixed result length. Positions at or beyond it are
//	           dropped and the result is padded up to it. 0 or absent
//	           means the result length follows the highest position
//	           written.
//
// Arguments: (value ELEM, position UNSIGNED).
type ArrayInsertAt struct {
	_name           string
	_argTypes       []common.LType
	_retType        common.LType
	_typ            common.LType
	_default        *chunk.Value
	_lengthToResize uint64
}

type ArrayInsertState struct {
	// nil slot = never written
	_slots []*chunk.Value
}

func NewArrayInsertAt(
	params []*chunk.Value,
	argTypes []common.LType) (AggrFunc, error) {
	if len(argTypes) != 2 {
		return nil, fmt.Errorf("%w: %s needs (value, position), got %d arguments",
			ErrInvalidArgumentCount, ArrayInsertAtName, len(argTypes))
	}
	if len(params) > 2 {
		return nil, fmt.Errorf("%w: %s takes at most 2 parameters",
			ErrTooManyParameters, ArrayInsertAtName)
	}
	if !argTypes[1].IsUnsigned() {
		return nil, fmt.Errorf("%w: position must be an unsigned integer, got %v",
			ErrIllegalArgumentType, argTypes[1])
	}
	elemTyp := argTypes[0]
	fun := &ArrayInsertAt{
		_name:     ArrayInsertAtName,
		_argTypes: argTypes,
		_retType:  common.ListType(elemTyp),
		_typ:      elemTyp,
	}
	if len(params) >= 1 && !params[0].IsNull {
		def, err := chunk.ConvertValue(params[0], elemTyp)
		if err != nil {
			return nil, fmt.Errorf("%w: default value %s to %v: %v",
				ErrTypeConversion, params[0].String(), elemTyp, err)
		}
		fun._default = def
	}
	if len(params) == 2 {
		if !params[1].Typ.IsUnsigned() {
			return nil, fmt.Errorf("%w: array length must be an unsigned integer, got %v",
				ErrIllegalArgumentType, params[1].Typ)
		}
		l := params[1].GetUint64()
		if l > MaxArraySize {
			return nil, fmt.Errorf("%w: array length %d exceeds %d",
				ErrResourceLimitExceeded, l, MaxArraySize)
		}
		fun._lengthToResize = l
	}
	return fun, nil
}

func (fun *ArrayInsertAt) Name() string {
	return fun._name
}

func (fun *ArrayInsertAt) ArgTypes() []common.LType {
	return fun._argTypes
}

func (fun *ArrayInsertAt) RetType() common.LType {
	return fun._retType
}

func (fun *ArrayInsertAt) NewState() AggrState {
	return &ArrayInsertState{}
}

func (fun *ArrayInsertAt) defaultValue() *chunk.Value {
	if fun._default != nil {
		return fun._default.Copy()
	}
	return chunk.DefaultValue(fun._typ)
}

// insert grows the slot area up to pos even for a NULL value, so the
// result length tracks the highest position seen. Only a non NULL
// value occupies the slot; an occupied slot never changes.
func (fun *ArrayInsertAt) insert(
	state *ArrayInsertState,
	val *chunk.Value,
	pos uint64) error {
	if fun._lengthToResize != 0 && pos >= fun._lengthToResize {
		return nil
	}
	if pos >= MaxArraySize {
		return fmt.Errorf("%w: position %d at or beyond %d",
			ErrResourceLimitExceeded, pos, uint64(MaxArraySize))
	}
	for uint64(len(state._slots)) <= pos {
		state._slots = append(state._slots, nil)
	}
	if state._slots[pos] == nil && !val.IsNull {
		state._slots[pos] = val.Copy()
	}
	return nil
}

func (fun *ArrayInsertAt) Update(
	state AggrState,
	args []*chunk.Vector,
	rowCount int) error {
	util.AssertFunc(len(args) == 2)
	st := state.(*ArrayInsertState)
	valVec, posVec := args[0], args[1]
	for row := 0; row < rowCount; row++ {
		// NULL position carries no placement, the row is skipped
		if !posVec.Mask.RowIsValid(uint64(row)) {
			continue
		}
		pos := posVec.GetValue(row).GetUint64()
		err := fun.insert(st, valVec.GetValue(row), pos)
		if err != nil {
			return err
		}
	}
	return nil
}

func (fun *ArrayInsertAt) UpdateRow(state AggrState, row []*chunk.Value) error {
	util.AssertFunc(len(row) == 2)
	st := state.(*ArrayInsertState)
	if row[1].IsNull {
		return nil
	}
	return fun.insert(st, row[0], row[1].GetUint64())
}

func (fun *ArrayInsertAt) Combine(dst AggrState, src AggrState) error {
	dstSt := dst.(*ArrayInsertState)
	srcSt := src.(*ArrayInsertState)
	for len(dstSt._slots) < len(srcSt._slots) {
		dstSt._slots = append(dstSt._slots, nil)
	}
	for i, slot := range srcSt._slots {
		if slot != nil && dstSt._slots[i] == nil {
			dstSt._slots[i] = slot.Copy()
		}
	}
	return nil
}

// Wire layout of a state: varuint slot count, then per slot one flag
// byte (1 = empty, 0 = occupied) followed by the element encoding for
// occupied slots.
func (fun *ArrayInsertAt) Serialize(state AggrState, serial util.Serialize) error {
	st := state.(*ArrayInsertState)
	err := util.WriteVarUint(uint64(len(st._slots)), serial)
	if err != nil {
		return err
	}
	for _, slot := range st._slots {
		if slot == nil {
			err = util.Write[uint8](1, serial)
			if err != nil {
				return err
			}
			continue
		}
		err = util.Write[uint8](0, serial)
		if err != nil {
			return err
		}
		err = slot.Serialize(serial)
		if err != nil {
			return err
		}
	}
	return nil
}

func (fun *ArrayInsertAt) Deserialize(state AggrState, deserial util.Deserialize) error {
	st := state.(*ArrayInsertState)
	size, err := util.ReadVarUint(deserial)
	if err != nil {
		return err
	}
	// checked before any allocation happens
	if size > MaxArraySize {
		return fmt.Errorf("%w: serialized state claims %d slots, limit %d",
			ErrResourceLimitExceeded, size, uint64(MaxArraySize))
	}
	slots := make([]*chunk.Value, size)
	for i := uint64(0); i < size; i++ {
		var empty uint8
		err = util.Read[uint8](&empty, deserial)
		if err != nil {
			return err
		}
		switch empty {
		case 1:
		case 0:
			slots[i], err = chunk.DeserializeValue(fun._typ, deserial)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: bad slot flag %d", ErrCorruptedState, empty)
		}
	}
	st._slots = slots
	return nil
}

func (fun *ArrayInsertAt) Finalize(state AggrState, out *chunk.ListVector) error {
	st := state.(*ArrayInsertState)
	n := len(st._slots)
	if fun._lengthToResize != 0 {
		n = int(fun._lengthToResize)
	}
	vals := make([]*chunk.Value, n)
	for i := 0; i < n; i++ {
		if i < len(st._slots) && st._slots[i] != nil {
			vals[i] = st._slots[i].Copy()
		} else {
			vals[i] = fun.defaultValue()
		}
	}
	out.AppendArray(vals)
	return nil
}
