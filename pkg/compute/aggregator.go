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
	"strings"

	treemap "github.com/liyue201/gostl/ds/map"

	"github.com/colfold/colfold/pkg/chunk"
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// GroupedAggregator runs one aggregate over keyed groups. Groups are
// kept sorted by key so Finalize emits rows in a stable order.
type GroupedAggregator struct {
	_fun    AggrFunc
	_groups *treemap.Map[string, AggrState]
}

func NewGroupedAggregator(fun AggrFunc) *GroupedAggregator {
	cmp := func(a, b string) int {
		return strings.Compare(a, b)
	}
	return &GroupedAggregator{
		_fun:    fun,
		_groups: treemap.New[string, AggrState](cmp),
	}
}

func (aggr *GroupedAggregator) Fun() AggrFunc {
	return aggr._fun
}

func (aggr *GroupedAggregator) GroupCount() int {
	return aggr._groups.Size()
}

func (aggr *GroupedAggregator) state(group string) AggrState {
	st, err := aggr._groups.Get(group)
	if err != nil {
		st = aggr._fun.NewState()
		aggr._groups.Insert(group, st)
	}
	return st
}

// Feed folds rowCount rows into their groups. groups is the varchar
// key column; a NULL key forms its own group.
func (aggr *GroupedAggregator) Feed(
	groups *chunk.Vector,
	args []*chunk.Vector,
	rowCount int) error {
	for row := 0; row < rowCount; row++ {
		key := aggr.Key(groups.GetValue(row))
		vals := make([]*chunk.Value, len(args))
		for i, arg := range args {
			vals[i] = arg.GetValue(row)
		}
		err := aggr._fun.UpdateRow(aggr.state(key), vals)
		if err != nil {
			return err
		}
	}
	return nil
}

func (aggr *GroupedAggregator) FeedRow(group string, row []*chunk.Value) error {
	return aggr._fun.UpdateRow(aggr.state(group), row)
}

func (aggr *GroupedAggregator) Key(val *chunk.Value) string {
	return val.String()
}

// MergeWith folds every group of o into aggr. o stays usable.
func (aggr *GroupedAggregator) MergeWith(o *GroupedAggregator) error {
	if aggr._fun.Name() != o._fun.Name() {
		return fmt.Errorf("%w: merging %s into %s",
			ErrStateMismatch, o._fun.Name(), aggr._fun.Name())
	}
	for iter := o._groups.Begin(); iter.IsValid(); iter.Next() {
		err := aggr._fun.Combine(aggr.state(iter.Key()), iter.Value())
		if err != nil {
			return err
		}
	}
	return nil
}

// Envelope layout: function name, element type, varuint group count,
// then per group the key and the state bytes. The header lets the
// receiver refuse bytes produced by a different function shape.
func (aggr *GroupedAggregator) Serialize(serial util.Serialize) error {
	err := util.WriteString(aggr._fun.Name(), serial)
	if err != nil {
		return err
	}
	err = aggr._fun.ArgTypes()[0].Serialize(serial)
	if err != nil {
		return err
	}
	err = util.WriteVarUint(uint64(aggr._groups.Size()), serial)
	if err != nil {
		return err
	}
	for iter := aggr._groups.Begin(); iter.IsValid(); iter.Next() {
		err = util.WriteString(iter.Key(), serial)
		if err != nil {
			return err
		}
		err = aggr._fun.Serialize(iter.Value(), serial)
		if err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads an envelope and folds its groups into aggr, so a
// partial arriving from another shard merges in one pass.
func (aggr *GroupedAggregator) Deserialize(deserial util.Deserialize) error {
	name, err := util.ReadString(deserial)
	if err != nil {
		return err
	}
	if name != aggr._fun.Name() {
		return fmt.Errorf("%w: envelope of %s fed to %s",
			ErrStateMismatch, name, aggr._fun.Name())
	}
	elemTyp, err := common.DeserializeLType(deserial)
	if err != nil {
		return err
	}
	if !elemTyp.Equal(aggr._fun.ArgTypes()[0]) {
		return fmt.Errorf("%w: envelope element type %v, want %v",
			ErrStateMismatch, elemTyp, aggr._fun.ArgTypes()[0])
	}
	cnt, err := util.ReadVarUint(deserial)
	if err != nil {
		return err
	}
	for i := uint64(0); i < cnt; i++ {
		key, err := util.ReadString(deserial)
		if err != nil {
			return err
		}
		incoming := aggr._fun.NewState()
		err = aggr._fun.Deserialize(incoming, deserial)
		if err != nil {
			return err
		}
		err = aggr._fun.Combine(aggr.state(key), incoming)
		if err != nil {
			return err
		}
	}
	return nil
}

// Finalize materializes one result row per group in key order.
func (aggr *GroupedAggregator) Finalize() ([]string, *chunk.ListVector, error) {
	keys := make([]string, 0, aggr._groups.Size())
	out := chunk.NewListVector(*aggr._fun.RetType().Child)
	for iter := aggr._groups.Begin(); iter.IsValid(); iter.Next() {
		err := aggr._fun.Finalize(iter.Value(), out)
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, iter.Key())
	}
	return keys, out, nil
}
