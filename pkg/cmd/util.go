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
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-epistemic/pkg/config"
	"github.com/consensys/go-epistemic/pkg/util/source"
	"github.com/consensys/go-epistemic/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// loadConfig determines the configuration for a command, by reading the
// configuration file (if given) and then applying any overrides given on the
// command line.  The logging level is also set accordingly.
func loadConfig(cmd *cobra.Command) config.Config {
	var (
		cfg = config.Default()
		err error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		if cfg, err = config.Load(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if cmd.Flags().Changed("policy") {
		err = cfg.Policy.Set(GetString(cmd, "policy"))
	}
	//
	if err == nil && cmd.Flags().Changed("ansi-escapes") {
		cfg.Colour, err = termio.ParseColourMode(GetString(cmd, "ansi-escapes"))
	}
	//
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = GetInt(cmd, "jobs")
	}
	// Configure log level
	if GetFlag(cmd, "debug") {
		cfg.LogLevel = log.DebugLevel.String()
	} else if GetFlag(cmd, "verbose") {
		cfg.LogLevel = log.InfoLevel.String()
	}
	//
	if err == nil {
		err = cfg.Validate()
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	level, _ := cfg.Level()
	log.SetLevel(level)
	log.Debugf("configuration: policy=%s colour=%s jobs=%d", cfg.Policy, cfg.Colour, cfg.Jobs)
	//
	return cfg
}

// Read the given script files, or exit if any cannot be read.
func readSourceFiles(filenames []string) []*source.File {
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return files
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

func printSyntaxErrors(errs []source.SyntaxError) {
	for i := range errs {
		printSyntaxError(&errs[i])
	}
}
