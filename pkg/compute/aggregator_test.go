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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colfold/colfold/pkg/chunk"
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

func mkAggr(t *testing.T) *GroupedAggregator {
	return NewGroupedAggregator(mkInsertAt(t))
}

func feedOne(t *testing.T, aggr *GroupedAggregator, group string, val int64, pos uint64) {
	err := aggr.FeedRow(group, []*chunk.Value{bigint(val), ubigint(pos)})
	assert.NoError(t, err)
}

func Test_groupedAggregator(t *testing.T) {
	aggr := mkAggr(t)
	feedOne(t, aggr, "b", 20, 1)
	feedOne(t, aggr, "a", 10, 0)
	feedOne(t, aggr, "b", 21, 0)
	assert.Equal(t, 2, aggr.GroupCount())

	keys, out, err := aggr.Finalize()
	assert.NoError(t, err)
	// key order is stable
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, 2, out.Card())

	aVals := out.GetArray(0)
	assert.Len(t, aVals, 1)
	assert.Equal(t, int64(10), aVals[0].I64)

	bVals := out.GetArray(1)
	assert.Len(t, bVals, 2)
	assert.Equal(t, int64(21), bVals[0].I64)
	assert.Equal(t, int64(20), bVals[1].I64)
}

func Test_groupedAggregatorFeed(t *testing.T) {
	aggr := mkAggr(t)
	rows := 10
	groupVec := chunk.NewFlatVector(common.VarcharType(), rows)
	valVec := chunk.NewFlatVector(common.BigintType(), rows)
	posVec := chunk.NewFlatVector(common.UbigintType(), rows)
	for i := 0; i < rows; i++ {
		groupVec.SetValue(i, &chunk.Value{
			Typ: common.VarcharType(),
			Str: []string{"x", "y"}[i%2],
		})
		valVec.SetValue(i, bigint(int64(i)))
		posVec.SetValue(i, ubigint(uint64(i/2)))
	}
	err := aggr.Feed(groupVec, []*chunk.Vector{valVec, posVec}, rows)
	assert.NoError(t, err)

	keys, out, err := aggr.Finalize()
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, keys)
	xVals := out.GetArray(0)
	assert.Len(t, xVals, 5)
	for i, val := range xVals {
		assert.Equal(t, int64(i*2), val.I64)
	}
}

func Test_groupedAggregatorMerge(t *testing.T) {
	a := mkAggr(t)
	feedOne(t, a, "g", 1, 0)

	b := mkAggr(t)
	feedOne(t, b, "g", 2, 1)
	feedOne(t, b, "h", 3, 0)

	err := a.MergeWith(b)
	assert.NoError(t, err)
	assert.Equal(t, 2, a.GroupCount())

	keys, out, err := a.Finalize()
	assert.NoError(t, err)
	assert.Equal(t, []string{"g", "h"}, keys)
	gVals := out.GetArray(0)
	assert.Len(t, gVals, 2)
	assert.Equal(t, int64(1), gVals[0].I64)
	assert.Equal(t, int64(2), gVals[1].I64)
}

func Test_aggregatorEnvelope(t *testing.T) {
	src := mkAggr(t)
	feedOne(t, src, "k1", 11, 0)
	feedOne(t, src, "k2", 22, 2)

	serial := util.NewBufferSerialize(&bytes.Buffer{})
	err := src.Serialize(serial)
	assert.NoError(t, err)

	dst := mkAggr(t)
	feedOne(t, dst, "k1", 99, 1)
	err = dst.Deserialize(serial)
	assert.NoError(t, err)

	keys, out, err := dst.Finalize()
	assert.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, keys)

	k1 := out.GetArray(0)
	assert.Len(t, k1, 2)
	assert.Equal(t, int64(11), k1[0].I64)
	assert.Equal(t, int64(99), k1[1].I64)

	k2 := out.GetArray(1)
	assert.Len(t, k2, 3)
	assert.Equal(t, int64(22), k2[2].I64)
}

func Test_aggregatorEnvelopeMismatch(t *testing.T) {
	src := mkAggr(t)
	feedOne(t, src, "k", 1, 0)
	serial := util.NewBufferSerialize(&bytes.Buffer{})
	err := src.Serialize(serial)
	assert.NoError(t, err)

	// same function, different element type
	fun, err := NewArrayInsertAt(nil,
		[]common.LType{common.VarcharType(), common.UbigintType()})
	assert.NoError(t, err)
	dst := NewGroupedAggregator(fun)
	err = dst.Deserialize(serial)
	assert.ErrorIs(t, err, ErrStateMismatch)
}
