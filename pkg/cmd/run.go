// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/consensys/go-epistemic/pkg/config"
	"github.com/consensys/go-epistemic/pkg/script"
	"github.com/consensys/go-epistemic/pkg/util/file"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] script_file(s)",
	Short: "run one or more script files.",
	Long: `Run one or more script files.  Files are run concurrently, each in its own
	 environment, though their output is reported in the order given.  With --watch,
	 files are run again whenever they change.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		//
		defer stop()
		//
		failed := runScripts(ctx, cfg, args)
		//
		if !GetFlag(cmd, "watch") {
			if failed {
				stop()
				os.Exit(1)
			}
			//
			return
		}
		//
		if err := watchScripts(ctx, cfg, args); err != nil {
			fmt.Println(err)
			stop()
			os.Exit(2)
		}
	},
}

// Run the given scripts once, reporting their output and errors.  The return
// indicates whether any script failed.
func runScripts(ctx context.Context, cfg config.Config, filenames []string) bool {
	var (
		failed = false
		opts   = script.Options{Policy: cfg.Policy, Colour: cfg.Colour.Enabled(os.Stdout), Jobs: cfg.Jobs}
	)
	//
	results, err := script.RunFiles(ctx, readSourceFiles(filenames), opts)
	if err != nil {
		log.Warnf("run interrupted: %s", err)
		return true
	}
	//
	for _, r := range results {
		if len(results) > 1 {
			fmt.Printf("==> %s <==\n", r.File.Filename())
		}
		//
		fmt.Print(r.Output)
		printSyntaxErrors(r.Errors)
		//
		failed = failed || r.Failed()
	}
	//
	return failed
}

// Watch the given scripts, running each again whenever it changes.  This
// continues until interrupted.
func watchScripts(ctx context.Context, cfg config.Config, filenames []string) error {
	watcher, err := file.NewWatcher(cfg.Debounce, filenames...)
	if err != nil {
		return err
	}
	//
	defer watcher.Close()
	//
	log.Infof("watching %d file(s)", len(filenames))
	//
	return watcher.Run(ctx, func(changed []string) {
		log.Infof("%d file(s) changed", len(changed))
		runScripts(ctx, cfg, changed)
	})
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("watch", false, "run scripts again whenever they change")
}
