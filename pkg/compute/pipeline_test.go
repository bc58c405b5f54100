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
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colfold/colfold/pkg/chunk"
)

func runSharded(t *testing.T, shardCount int, rows int, groups int) ([]string, *chunk.ListVector) {
	pipe := NewPipeline(shardCount, func() (*GroupedAggregator, error) {
		return mkAggr(t), nil
	})
	final, err := pipe.Run(context.Background(),
		func(ctx context.Context, shard int, aggr *GroupedAggregator) error {
			for r := shard; r < rows; r += shardCount {
				err := aggr.FeedRow(
					fmt.Sprintf("g%02d", r%groups),
					[]*chunk.Value{bigint(int64(r)), ubigint(uint64(r / groups))})
				if err != nil {
					return err
				}
			}
			return nil
		})
	assert.NoError(t, err)

	keys, out, err := final.Finalize()
	assert.NoError(t, err)
	return keys, out
}

func Test_pipelineMatchesSingleShard(t *testing.T) {
	rows, groups := 1000, 7
	oneKeys, oneOut := runSharded(t, 1, rows, groups)
	fourKeys, fourOut := runSharded(t, 4, rows, groups)

	assert.Equal(t, oneKeys, fourKeys)
	assert.Equal(t, oneOut.Card(), fourOut.Card())
	for i := 0; i < oneOut.Card(); i++ {
		a := oneOut.GetArray(i)
		b := fourOut.GetArray(i)
		assert.Equal(t, len(a), len(b), oneKeys[i])
		for j := range a {
			assert.True(t, a[j].Equal(b[j]),
				"group %s position %d", oneKeys[i], j)
		}
	}
}

func Test_pipelineFeedError(t *testing.T) {
	pipe := NewPipeline(2, func() (*GroupedAggregator, error) {
		return mkAggr(t), nil
	})
	_, err := pipe.Run(context.Background(),
		func(ctx context.Context, shard int, aggr *GroupedAggregator) error {
			if shard == 1 {
				return fmt.Errorf("shard blew up")
			}
			return nil
		})
	assert.Error(t, err)
}
