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

package util

type ShardOptions struct {
	Count      int `toml:"count"`
	VectorSize int `toml:"vectorSize"`
}

type WorkloadOptions struct {
	Function   string `toml:"function"`
	Groups     int    `toml:"groups"`
	Rows       int    `toml:"rows"`
	FixedLen   int    `toml:"fixedLen"`
	DefaultVal int64  `toml:"defaultVal"`
}

type DebugOptions struct {
	PrintResult       bool `toml:"printResult"`
	MaxOutputRowCount int  `toml:"maxOutputRowCount"`
}

type Config struct {
	Shard    ShardOptions    `toml:"shard"`
	Workload WorkloadOptions `toml:"workload"`
	Debug    DebugOptions    `toml:"debug"`
}
