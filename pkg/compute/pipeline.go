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
	"context"

	"github.com/petermattis/goid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/colfold/colfold/pkg/util"
)

// ShardFeed folds the rows of one shard into aggr. It runs on its own
// goroutine and must not touch another shard's aggregator.
type ShardFeed func(ctx context.Context, shard int, aggr *GroupedAggregator) error

// Pipeline fans the input out over shard local aggregators and folds
// the partial results back into one. Partials cross shard boundaries
// as serialized bytes, the same envelope a remote node would send.
type Pipeline struct {
	_shardCount int
	_newAggr    func() (*GroupedAggregator, error)
}

func NewPipeline(
	shardCount int,
	newAggr func() (*GroupedAggregator, error)) *Pipeline {
	util.AssertFunc(shardCount > 0)
	return &Pipeline{
		_shardCount: shardCount,
		_newAggr:    newAggr,
	}
}

func (pipe *Pipeline) Run(ctx context.Context, feed ShardFeed) (*GroupedAggregator, error) {
	partials := make([][]byte, pipe._shardCount)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < pipe._shardCount; i++ {
		shard := i
		g.Go(func() error {
			util.Info("shard start",
				zap.Int("shard", shard),
				zap.Int64("goid", goid.Get()))
			aggr, err := pipe._newAggr()
			if err != nil {
				return err
			}
			err = feed(gctx, shard, aggr)
			if err != nil {
				return err
			}
			serial := util.NewBufferSerialize(&bytes.Buffer{})
			err = aggr.Serialize(serial)
			if err != nil {
				return err
			}
			partials[shard] = serial.Bytes()
			util.Info("shard done",
				zap.Int("shard", shard),
				zap.Int("groups", aggr.GroupCount()),
				zap.Int("partialBytes", len(partials[shard])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	final, err := pipe._newAggr()
	if err != nil {
		return nil, err
	}
	for _, part := range partials {
		deserial := util.NewBufferSerialize(bytes.NewBuffer(part))
		err = final.Deserialize(deserial)
		if err != nil {
			return nil, err
		}
	}
	return final, nil
}
