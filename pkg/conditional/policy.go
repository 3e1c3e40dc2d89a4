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
package conditional

import (
	"errors"
	"fmt"
	"strings"
)

// Policy determines what happens when the condition of an epistemic
// conditional is neither certainly true nor certainly false.
type Policy uint8

const (
	// RunBoth executes both branches, true branch first.
	RunBoth Policy = iota
	// Strict executes neither branch.
	Strict
	// FailOnPartial reports a PartialConditionError.
	FailOnPartial
)

// ErrUnknownPolicy is reported when parsing an unrecognised policy name.
var ErrUnknownPolicy = errors.New("unknown policy")

// ParsePolicy parses a policy from its name.  Matching is case insensitive, and
// underscores are treated as hyphens.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "_", "-") {
	case "run-both", "runboth", "both", "merge":
		return RunBoth, nil
	case "strict", "none":
		return Strict, nil
	case "fail", "fail-on-partial", "failonpartial", "panic":
		return FailOnPartial, nil
	}
	//
	return RunBoth, fmt.Errorf("%w %q (expected run-both, strict or fail)", ErrUnknownPolicy, name)
}

func (p Policy) String() string {
	switch p {
	case RunBoth:
		return "run-both"
	case Strict:
		return "strict"
	case FailOnPartial:
		return "fail"
	}
	//
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, such that a policy can be
// read directly from a configuration file.
func (p *Policy) UnmarshalText(text []byte) error {
	policy, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	//
	*p = policy
	//
	return nil
}

// Set implements pflag.Value, such that a policy can be given as a command-line
// flag.
func (p *Policy) Set(name string) error {
	return p.UnmarshalText([]byte(name))
}

// Type implements pflag.Value.
func (p *Policy) Type() string {
	return "policy"
}
