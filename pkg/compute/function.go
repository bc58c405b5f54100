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

	"github.com/tidwall/btree"

	"github.com/colfold/colfold/pkg/chunk"
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// AggrState is the per group accumulator. Its concrete layout belongs
// to the function that created it.
type AggrState interface{}

// AggrFunc is an incremental aggregate. One instance is immutable
// after construction and shared by any number of states.
type AggrFunc interface {
	Name() string
	ArgTypes() []common.LType
	RetType() common.LType

	NewState() AggrState
	// Update folds rowCount rows of the argument vectors into state.
	Update(state AggrState, args []*chunk.Vector, rowCount int) error
	// UpdateRow folds a single row given as values.
	UpdateRow(state AggrState, row []*chunk.Value) error
	// Combine folds src into dst. src stays usable afterwards.
	Combine(dst AggrState, src AggrState) error

	Serialize(state AggrState, serial util.Serialize) error
	Deserialize(state AggrState, deserial util.Deserialize) error

	// Finalize appends the result row of state to out.
	Finalize(state AggrState, out *chunk.ListVector) error
}

// AggrFuncBuilder constructs a function instance for concrete
// parameters and argument types, validating both.
type AggrFuncBuilder func(
	params []*chunk.Value,
	argTypes []common.LType) (AggrFunc, error)

var aggrFuncs btree.Map[string, AggrFuncBuilder]

func RegisterAggrFunc(name string, builder AggrFuncBuilder) {
	_, has := aggrFuncs.Get(name)
	util.AssertFunc(!has)
	aggrFuncs.Set(name, builder)
}

func GetAggrFunc(
	name string,
	params []*chunk.Value,
	argTypes []common.LType) (AggrFunc, error) {
	builder, has := aggrFuncs.Get(name)
	if !has {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return builder(params, argTypes)
}

func AggrFuncNames() []string {
	return aggrFuncs.Keys()
}
