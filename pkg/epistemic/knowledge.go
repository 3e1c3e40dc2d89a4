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
package epistemic

// Certainty buckets a boolean-shaped value according to how much is known about
// it.
type Certainty uint8

// UNDETERMINED indicates nothing is known about the condition.
const UNDETERMINED Certainty = 0

// CERTAINLY_TRUE indicates the condition certainly holds.
const CERTAINLY_TRUE Certainty = 1

// CERTAINLY_FALSE indicates the condition certainly does not hold.
const CERTAINLY_FALSE Certainty = 2

// PARTIALLY_TRUE indicates the condition holds for some, but not all, of the
// possible values.
const PARTIALLY_TRUE Certainty = 3

func (c Certainty) String() string {
	switch c {
	case CERTAINLY_TRUE:
		return "certain"
	case CERTAINLY_FALSE:
		return "impossible"
	case PARTIALLY_TRUE:
		return "partial"
	}
	//
	return "undetermined"
}

// Classify a boolean-shaped value.  A known zero is certainly false and any
// other known value certainly true.  Intervals are partial and unknown values
// undetermined.
func Classify(cond *Value) Certainty {
	switch cond.kind {
	case KNOWN:
		if cond.lower == 0 {
			return CERTAINLY_FALSE
		}
		//
		return CERTAINLY_TRUE
	case INTERVAL:
		return PARTIALLY_TRUE
	}
	//
	return UNDETERMINED
}

// Certain returns True() if the condition certainly holds, and False()
// otherwise.
func Certain(cond *Value) *Value {
	return truth(Classify(cond) == CERTAINLY_TRUE)
}

// Impossible returns True() if the condition certainly does not hold, Partial()
// if it may or may not hold, and False() otherwise.
func Impossible(cond *Value) *Value {
	switch Classify(cond) {
	case CERTAINLY_FALSE:
		return True()
	case PARTIALLY_TRUE:
		return Partial()
	}
	//
	return False()
}

// Possible returns False() if the condition certainly does not hold, and True()
// otherwise (i.e. it could hold, even partially).
func Possible(cond *Value) *Value {
	return truth(Classify(cond) != CERTAINLY_FALSE)
}

// Definite returns True() if the condition is known exactly (i.e. is either
// certainly true or certainly false), and False() otherwise.
func Definite(cond *Value) *Value {
	return truth(cond.kind == KNOWN)
}
