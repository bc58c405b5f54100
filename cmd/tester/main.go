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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.uber.org/zap"

	"github.com/colfold/colfold/pkg/compute"
	"github.com/colfold/colfold/pkg/util"
)

func init() {
	cobra.OnInitialize(loadConfig)
	initDemoCmd()
}

var testerCfg = &util.Config{}

///root cmd

var info = "tester"
var RootCmd = &cobra.Command{
	Use:          "tester",
	Short:        info,
	Long:         info,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("use tester --help or -h")
	},
}

func initDebugOptions() {
	testerCfg.Debug.PrintResult = viper.GetBool("debug.printResult")
	testerCfg.Debug.MaxOutputRowCount = viper.GetInt("debug.maxOutputRowCount")
}

//demo cmd

var demoInfo = "run a sharded aggregation workload"
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: demoInfo,
	Long:  demoInfo,
	RunE: func(cmd *cobra.Command, args []string) error {
		initDemoCfg()
		return compute.Run(testerCfg)
	},
}

func initDemoCfg() {
	initDebugOptions()
	testerCfg.Shard.Count = viper.GetInt("shard.count")
	testerCfg.Shard.VectorSize = viper.GetInt("shard.vectorSize")
	testerCfg.Workload.Function = viper.GetString("workload.function")
	testerCfg.Workload.Groups = viper.GetInt("workload.groups")
	testerCfg.Workload.Rows = viper.GetInt("workload.rows")
	testerCfg.Workload.FixedLen = viper.GetInt("workload.fixedLen")
	testerCfg.Workload.DefaultVal = viper.GetInt64("workload.defaultVal")
}

func initDemoCmd() {
	RootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVar(&testerCfg.Shard.Count, "shard_count", 4, "parallel shards")
	demoCmd.Flags().IntVar(&testerCfg.Workload.Groups, "groups", 16, "distinct group keys")
	demoCmd.Flags().IntVar(&testerCfg.Workload.Rows, "rows", 100000, "input rows")
	demoCmd.Flags().IntVar(&testerCfg.Workload.FixedLen, "fixed_len", 0, "fixed result length. 0 keeps it dynamic")
	demoCmd.Flags().Int64Var(&testerCfg.Workload.DefaultVal, "default_val", 0, "filler for unwritten positions")

	viper.BindPFlag("shard.count", demoCmd.Flags().Lookup("shard_count"))
	viper.BindPFlag("workload.groups", demoCmd.Flags().Lookup("groups"))
	viper.BindPFlag("workload.rows", demoCmd.Flags().Lookup("rows"))
	viper.BindPFlag("workload.fixedLen", demoCmd.Flags().Lookup("fixed_len"))
	viper.BindPFlag("workload.defaultVal", demoCmd.Flags().Lookup("default_val"))
}

var defCfgFilePaths = []string{".", "etc"}
var cfgFileName = "tester.toml"

func loadConfig() {
	has := false
	for _, dirPath := range defCfgFilePaths {
		fpath := filepath.Join(dirPath, cfgFileName)
		if util.FileIsValid(fpath) {
			viper.SetConfigFile(fpath)
			err := viper.ReadInConfig()
			if err != nil {
				util.Error("viper load config file failed",
					zap.String("fpath", fpath),
					zap.Error(err))
				continue
			}
			has = true
			break
		}
	}
	if !has {
		util.Error("tester.toml does not exist")
		os.Exit(1)
	}
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
