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
package function

import (
	"errors"
	"fmt"

	"github.com/consensys/go-epistemic/pkg/epistemic"
)

// ErrArgumentCountMismatch is reported when a function is called with the wrong
// number of arguments.
var ErrArgumentCountMismatch = errors.New("argument count mismatch")

// ErrDuplicateParameter is reported when a function declares the same
// parameter more than once.
var ErrDuplicateParameter = errors.New("duplicate parameter")

// Body computes the result of a function, given its arguments by name.
type Body func(args map[string]epistemic.Term) (epistemic.Term, error)

// Function binds an ordered list of parameter names to a body.  Since the body
// is built from epistemic operators, unknown, interval and symbolic arguments
// propagate through it naturally.
type Function struct {
	params []string
	body   Body
}

// New constructs a function with the given parameters and body.
func New(params []string, body Body) (*Function, error) {
	seen := make(map[string]bool, len(params))
	//
	for _, p := range params {
		if seen[p] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateParameter, p)
		}
		//
		seen[p] = true
	}
	//
	return &Function{append([]string(nil), params...), body}, nil
}

// Parameters returns the parameter names of this function.
func (f *Function) Parameters() []string {
	return append([]string(nil), f.params...)
}

// Arity returns the number of parameters of this function.
func (f *Function) Arity() int {
	return len(f.params)
}

// Call this function on some arguments.
func (f *Function) Call(args ...epistemic.Term) (epistemic.Term, error) {
	if len(args) != len(f.params) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrArgumentCountMismatch, len(f.params), len(args))
	}
	//
	env := make(map[string]epistemic.Term, len(args))
	//
	for i, p := range f.params {
		env[p] = args[i]
	}
	//
	return f.body(env)
}
