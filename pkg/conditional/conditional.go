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

	"github.com/consensys/go-epistemic/pkg/epistemic"
	log "github.com/sirupsen/logrus"
)

// Outcome records which branches of a conditional were executed.
type Outcome uint8

const (
	// NoBranch indicates neither branch was executed.
	NoBranch Outcome = iota
	// TrueBranch indicates only the true branch was executed.
	TrueBranch
	// FalseBranch indicates only the false branch was executed.
	FalseBranch
	// BothBranches indicates both branches were executed (true branch first).
	BothBranches
)

func (o Outcome) String() string {
	switch o {
	case TrueBranch:
		return "true"
	case FalseBranch:
		return "false"
	case BothBranches:
		return "both"
	}
	//
	return "none"
}

// ErrPartialCondition is matched (via errors.Is) by every PartialConditionError.
var ErrPartialCondition = errors.New("partial or unknown condition")

// PartialConditionError is reported under the FailOnPartial policy when the
// condition is neither certainly true nor certainly false.
type PartialConditionError struct {
	// Bound is the rendered form of the condition (e.g. "[0..1]").
	Bound string
	// Kind of the resolved condition.
	Kind epistemic.Kind
}

func (e *PartialConditionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPartialCondition.Error(), e.Bound)
}

// Is allows errors.Is(err, ErrPartialCondition).
func (e *PartialConditionError) Is(target error) bool {
	return target == ErrPartialCondition
}

// If executes one, both or neither of two actions depending on what is known
// about a condition.  A certainly true condition executes onTrue, and a
// certainly false one onFalse.  Otherwise, the policy decides.  Either action
// may be nil.
func If(cond epistemic.Term, onTrue func(), onFalse func(), policy Policy) (Outcome, error) {
	_, outcome, err := Evaluate(cond, lift(onTrue), lift(onFalse), policy)
	//
	return outcome, err
}

// Evaluate is like If, except that actions return a result.  When exactly one
// action is executed, its result is returned.  When both are executed, their
// results are discarded and the zero value returned.  An error returned by an
// action is propagated immediately.
func Evaluate[T any](cond epistemic.Term, onTrue func() (T, error), onFalse func() (T, error),
	policy Policy) (T, Outcome, error) {
	var zero T
	//
	value, err := epistemic.Collapse(cond)
	if err != nil {
		return zero, NoBranch, err
	}
	//
	switch epistemic.Classify(value) {
	case epistemic.CERTAINLY_TRUE:
		r, err := run(onTrue)
		return r, TrueBranch, err
	case epistemic.CERTAINLY_FALSE:
		r, err := run(onFalse)
		return r, FalseBranch, err
	}
	//
	log.Debugf("condition %s is not certain, applying %s policy", value.String(), policy)
	//
	switch policy {
	case RunBoth:
		if _, err := run(onTrue); err != nil {
			return zero, BothBranches, err
		} else if _, err := run(onFalse); err != nil {
			return zero, BothBranches, err
		}
		//
		return zero, BothBranches, nil
	case Strict:
		return zero, NoBranch, nil
	case FailOnPartial:
		return zero, NoBranch, &PartialConditionError{value.String(), value.Kind()}
	}
	//
	return zero, NoBranch, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
}

// Choose is like Evaluate for branches producing epistemic terms, except that
// when both branches are executed the result is the hull of their (collapsed)
// results.  Thus, choosing between 1 and 5 on a partial condition gives [1..5].
// Under the Strict policy an uncertain condition gives an unknown value.
func Choose(cond epistemic.Term, onTrue func() (epistemic.Term, error), onFalse func() (epistemic.Term, error),
	policy Policy) (epistemic.Term, Outcome, error) {
	//
	var results [2]*epistemic.Value
	// Collapse each branch's result as it runs
	collapse := func(i int, action func() (epistemic.Term, error)) func() (epistemic.Term, error) {
		return func() (epistemic.Term, error) {
			r, err := run(action)
			//
			if err != nil {
				return nil, err
			} else if r == nil {
				r = epistemic.Unknown()
			}
			//
			if results[i], err = epistemic.Collapse(r); err != nil {
				return nil, err
			}
			//
			return r, nil
		}
	}
	//
	r, outcome, err := Evaluate(cond, collapse(0, onTrue), collapse(1, onFalse), policy)
	//
	switch {
	case err != nil:
		return nil, outcome, err
	case outcome == BothBranches:
		return epistemic.Hull(results[0], results[1]), outcome, nil
	case outcome == NoBranch:
		return epistemic.Unknown(), outcome, nil
	}
	//
	return r, outcome, nil
}

func run[T any](action func() (T, error)) (T, error) {
	var zero T
	//
	if action == nil {
		return zero, nil
	}
	//
	return action()
}

func lift(action func()) func() (struct{}, error) {
	if action == nil {
		return nil
	}
	//
	return func() (struct{}, error) {
		action()
		return struct{}{}, nil
	}
}
