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
package script

import (
	"bytes"
	"context"

	"github.com/consensys/go-epistemic/pkg/conditional"
	"github.com/consensys/go-epistemic/pkg/util/source"
	"github.com/consensys/go-epistemic/pkg/util/stats"
	"golang.org/x/sync/errgroup"
)

// Options configures how a batch of scripts is run.
type Options struct {
	// Default policy for conditionals.
	Policy conditional.Policy
	// Whether to colour printed values.
	Colour bool
	// Maximum number of scripts executed concurrently (where a value below one
	// means unlimited).
	Jobs int
}

// Result captures the outcome of running a single script.
type Result struct {
	File   *source.File
	Output string
	Errors []source.SyntaxError
}

// Failed checks whether the script encountered any errors.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// RunFiles executes a number of scripts concurrently, each with its own
// interpreter.  Results are returned in the same order as the files.  An error
// is returned only if the context is cancelled before all scripts have run.
func RunFiles(ctx context.Context, files []*source.File, opts Options) ([]Result, error) {
	var (
		results = make([]Result, len(files))
		group   errgroup.Group
	)
	//
	if opts.Jobs > 0 {
		group.SetLimit(opts.Jobs)
	}
	//
	for i, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			//
			results[i] = runFile(file, opts)
			//
			return nil
		})
	}
	//
	if err := group.Wait(); err != nil {
		return nil, err
	}
	//
	return results, nil
}

func runFile(file *source.File, opts Options) Result {
	var (
		out  bytes.Buffer
		perf = stats.NewPerfStats()
	)
	//
	errs := NewInterpreter(&out, opts.Policy, opts.Colour).Execute(file)
	//
	perf.Log(file.Filename())
	//
	return Result{file, out.String(), errs}
}
