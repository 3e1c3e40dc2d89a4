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
	"os"
	"strings"

	"github.com/consensys/go-epistemic/pkg/script"
	"github.com/consensys/go-epistemic/pkg/util/source"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr(s)",
	Short: "evaluate expressions given on the command line.",
	Long: `Evaluate one or more expressions given on the command line, printing the result
	 of each.  For example, "epistemic eval '(+ 2 [8 16])'" prints [10..18].`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		file := source.NewSourceFile("<eval>", []byte(strings.Join(args, "\n")))
		interpreter := script.NewInterpreter(os.Stdout, cfg.Policy, cfg.Colour.Enabled(os.Stdout))
		//
		if errs := interpreter.Execute(file); len(errs) > 0 {
			printSyntaxErrors(errs)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
