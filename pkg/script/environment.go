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
	"fmt"

	"github.com/consensys/go-epistemic/pkg/epistemic"
	"github.com/consensys/go-epistemic/pkg/function"
)

// Environment holds the variables and functions visible at some point during
// execution.  Environments are nested, such that a function body can see the
// bindings of its enclosing scope.
type Environment struct {
	parent *Environment
	vars   map[string]epistemic.Term
	funcs  map[string]*function.Function
}

// NewEnvironment constructs an empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{
		vars:  make(map[string]epistemic.Term),
		funcs: make(map[string]*function.Function),
	}
}

// Child constructs a nested environment whose lookups fall back to this one.
func (e *Environment) Child() *Environment {
	child := NewEnvironment()
	child.parent = e
	//
	return child
}

// Define binds (or rebinds) a variable in this scope.
func (e *Environment) Define(name string, term epistemic.Term) {
	e.vars[name] = term
}

// Lookup a variable, searching enclosing scopes as necessary.
func (e *Environment) Lookup(name string) (epistemic.Term, error) {
	for env := e; env != nil; env = env.parent {
		if term, ok := env.vars[name]; ok {
			return term, nil
		}
	}
	//
	return nil, fmt.Errorf("unknown variable %q", name)
}

// DefineFunction binds (or rebinds) a function in this scope.
func (e *Environment) DefineFunction(name string, fn *function.Function) {
	e.funcs[name] = fn
}

// LookupFunction finds a function, searching enclosing scopes as necessary.
func (e *Environment) LookupFunction(name string) (*function.Function, error) {
	for env := e; env != nil; env = env.parent {
		if fn, ok := env.funcs[name]; ok {
			return fn, nil
		}
	}
	//
	return nil, fmt.Errorf("unknown function %q", name)
}
