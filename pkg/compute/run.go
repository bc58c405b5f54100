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

	"go.uber.org/zap"

	"github.com/colfold/colfold/pkg/chunk"
	"github.com/colfold/colfold/pkg/common"
	"github.com/colfold/colfold/pkg/util"
)

// Run drives the synthetic workload described by cfg: rows are dealt
// round robin over the shards, aggregated shard locally, then the
// partials are folded into the final result.
func Run(cfg *util.Config) error {
	shardCount := cfg.Shard.Count
	if shardCount <= 0 {
		shardCount = 1
	}
	vecSize := cfg.Shard.VectorSize
	if vecSize <= 0 {
		vecSize = util.DefaultVectorSize
	}
	groups := cfg.Workload.Groups
	if groups <= 0 {
		groups = 1
	}

	newAggr := func() (*GroupedAggregator, error) {
		params := []*chunk.Value{
			{Typ: common.BigintType(), I64: cfg.Workload.DefaultVal},
			{Typ: common.UbigintType(), U64: uint64(cfg.Workload.FixedLen)},
		}
		if cfg.Workload.FixedLen <= 0 {
			params = params[:1]
		}
		fun, err := GetAggrFunc(
			cfg.Workload.Function,
			params,
			[]common.LType{common.BigintType(), common.UbigintType()})
		if err != nil {
			return nil, err
		}
		return NewGroupedAggregator(fun), nil
	}

	pipe := NewPipeline(shardCount, newAggr)
	final, err := pipe.Run(context.Background(),
		func(ctx context.Context, shard int, aggr *GroupedAggregator) error {
			return feedShard(ctx, cfg, shard, shardCount, vecSize, groups, aggr)
		})
	if err != nil {
		return err
	}

	keys, out, err := final.Finalize()
	if err != nil {
		return err
	}
	util.Info("workload done",
		zap.Int("shards", shardCount),
		zap.Int("groups", len(keys)),
		zap.Int("rows", cfg.Workload.Rows))
	if cfg.Debug.PrintResult {
		printResult(cfg, keys, out)
	}
	return nil
}

// feedShard generates the shard's slice of the workload. Row r holds
// (value r, position r / groups) and belongs to group r % groups, so
// every group ends up with a dense run of positions and the expected
// result is easy to eyeball.
func feedShard(
	ctx context.Context,
	cfg *util.Config,
	shard int,
	shardCount int,
	vecSize int,
	groups int,
	aggr *GroupedAggregator) error {
	batch := &chunk.Chunk{}
	batch.Init([]common.LType{
		common.VarcharType(),
		common.BigintType(),
		common.UbigintType(),
	}, vecSize)
	cnt := 0
	flush := func() error {
		if cnt == 0 {
			return nil
		}
		batch.SetCard(cnt)
		err := aggr.Feed(batch.Data(0),
			[]*chunk.Vector{batch.Data(1), batch.Data(2)},
			batch.Card())
		cnt = 0
		return err
	}
	for r := shard; r < cfg.Workload.Rows; r += shardCount {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		batch.Data(0).SetValue(cnt, &chunk.Value{
			Typ: common.VarcharType(),
			Str: fmt.Sprintf("g%04d", r%groups),
		})
		batch.Data(1).SetValue(cnt, &chunk.Value{
			Typ: common.BigintType(),
			I64: int64(r),
		})
		batch.Data(2).SetValue(cnt, &chunk.Value{
			Typ: common.UbigintType(),
			U64: uint64(r / groups),
		})
		cnt++
		if cnt == vecSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

func printResult(cfg *util.Config, keys []string, out *chunk.ListVector) {
	limit := cfg.Debug.MaxOutputRowCount
	if limit <= 0 || limit > len(keys) {
		limit = len(keys)
	}
	for i := 0; i < limit; i++ {
		vals := out.GetArray(i)
		fields := make([]zap.Field, 0, len(vals)+1)
		fields = append(fields, zap.String("group", keys[i]))
		for j, val := range vals {
			fields = append(fields, zap.String(fmt.Sprintf("%d", j), val.String()))
		}
		util.Info("result", fields...)
	}
}
