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

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"weak"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Value represents what is known about a given number.  A value may be entirely
// unknown, known exactly, or bounded within an interval.  Values are mutable in
// place, and may be shared between any number of symbolic nodes.  Each node
// which holds a value as a direct operand registers itself as a dependent of
// that value, such that mutating the value invalidates the node's cache.  The
// zero value is an unknown value.
//
// The following invariants hold at all times: an UNKNOWN value has no bounds;
// a KNOWN value holds its scalar in lower; an INTERVAL value has lower <
// higher.
type Value struct {
	kind   Kind
	lower  float64
	higher float64
	// Guards the dependents registry only.
	mu sync.Mutex
	// Nodes to invalidate when this value changes.  These are held weakly, such
	// that a value never keeps a node alive.
	dependents map[uuid.UUID]weak.Pointer[Node]
}

// Unknown constructs a value about which nothing is known.
func Unknown() *Value {
	return &Value{kind: UNKNOWN}
}

// Known constructs a value which is known exactly.  NaN carries no
// information, hence gives an unknown value.
func Known(val float64) *Value {
	if math.IsNaN(val) {
		return Unknown()
	}
	//
	return &Value{kind: KNOWN, lower: val}
}

// True constructs the certainly true boolean (i.e. 1).
func True() *Value {
	return Known(1)
}

// False constructs the certainly false boolean (i.e. 0).
func False() *Value {
	return Known(0)
}

// Partial constructs the boolean which is possibly true and possibly false
// (i.e. [0..1]).
func Partial() *Value {
	return &Value{kind: INTERVAL, lower: 0, higher: 1}
}

// NewInterval constructs a value bounded by a given range.  If both bounds are
// equal, the result is a known value.  An error is returned if the lower bound
// exceeds the upper bound.
func NewInterval(lower float64, higher float64) (*Value, error) {
	var v Value
	//
	if err := v.assign(lower, higher); err != nil {
		return nil, err
	}
	//
	return &v, nil
}

// MustInterval constructs a value bounded by a given range, or panics if the
// range is invalid.
func MustInterval(lower float64, higher float64) *Value {
	v, err := NewInterval(lower, higher)
	if err != nil {
		panic(err.Error())
	}
	//
	return v
}

// NewValue constructs a value from zero, one or two bounds.  No bounds gives an
// unknown value, one bound a known value and two bounds an interval (or a known
// value, if they are equal).
func NewValue(bounds ...float64) (*Value, error) {
	switch len(bounds) {
	case 0:
		return Unknown(), nil
	case 1:
		return Known(bounds[0]), nil
	case 2:
		return NewInterval(bounds[0], bounds[1])
	}
	//
	return nil, fmt.Errorf("%w: expected at most two bounds, got %d", ErrInvalidInterval, len(bounds))
}

// fromBounds constructs a value from bounds already known to be ordered.  A NaN
// bound (e.g. from adding opposite infinities) carries no information, hence
// gives an unknown value.
func fromBounds(lower float64, higher float64) *Value {
	switch {
	case math.IsNaN(lower) || math.IsNaN(higher):
		return Unknown()
	case lower == higher:
		return Known(lower)
	}
	//
	return &Value{kind: INTERVAL, lower: lower, higher: higher}
}

// hullOf constructs the smallest value enclosing all of the given scalars.
func hullOf(vals ...float64) *Value {
	lower, higher := vals[0], vals[0]
	//
	for _, v := range vals[1:] {
		lower = math.Min(lower, v)
		higher = math.Max(higher, v)
	}
	//
	return fromBounds(lower, higher)
}

// Kind returns the kind of this value.
func (v *Value) Kind() Kind {
	return v.kind
}

// Resolve a value, which is always the value itself.
func (v *Value) Resolve() (Term, error) {
	return v, nil
}

// Bounds returns the smallest and largest scalar this value could be.  For a
// known value these coincide.  An error is returned for an unknown value.
func (v *Value) Bounds() (float64, float64, error) {
	switch v.kind {
	case KNOWN:
		return v.lower, v.lower, nil
	case INTERVAL:
		return v.lower, v.higher, nil
	}
	//
	return 0, 0, ErrUndefinedBounds
}

// span returns the bounds of a value known to be evaluable.
func (v *Value) span() (float64, float64) {
	if v.kind == KNOWN {
		return v.lower, v.lower
	}
	//
	return v.lower, v.higher
}

// Scalar returns the value held by a known value, and false otherwise.
func (v *Value) Scalar() (float64, bool) {
	return v.lower, v.kind == KNOWN
}

// IsKnownZero checks whether this value is known to be exactly zero.
func (v *Value) IsKnownZero() bool {
	return v.kind == KNOWN && v.lower == 0
}

// IsKnownOne checks whether this value is known to be exactly one.
func (v *Value) IsKnownOne() bool {
	return v.kind == KNOWN && v.lower == 1
}

// Negate returns a fresh value holding the negation of this value.  Negating an
// interval swaps (and negates) its bounds, whilst negating an unknown value
// gives an unknown value.
func (v *Value) Negate() *Value {
	switch v.kind {
	case KNOWN:
		return Known(-v.lower)
	case INTERVAL:
		return &Value{kind: INTERVAL, lower: -v.higher, higher: -v.lower}
	}
	//
	return Unknown()
}

// Clone returns a fresh value of the same kind and bounds as this value, but
// without any dependents.
func (v *Value) Clone() *Value {
	return &Value{kind: v.kind, lower: v.lower, higher: v.higher}
}

// StructurallyEqual checks whether two values have the same kind and bounds.
// This differs from Eq, which compares values numerically and produces an
// epistemic boolean.
func (v *Value) StructurallyEqual(other *Value) bool {
	if other == nil || v.kind != other.kind {
		return false
	}
	//
	switch v.kind {
	case KNOWN:
		return v.lower == other.lower
	case INTERVAL:
		return v.lower == other.lower && v.higher == other.higher
	}
	//
	return true
}

// Bool coerces this value into a native truth value.  This succeeds only for
// known values, where zero is false and anything else true.  Intervals and
// unknown values cannot be coerced, since doing so would silently discard
// what is not known.
func (v *Value) Bool() (bool, error) {
	if v.kind != KNOWN {
		return false, fmt.Errorf("%w (%s)", ErrAmbiguousTruthValue, v.String())
	}
	//
	return v.lower != 0, nil
}

func (v *Value) String() string {
	switch v.kind {
	case KNOWN:
		return formatScalar(v.lower)
	case INTERVAL:
		return fmt.Sprintf("[%s..%s]", formatScalar(v.lower), formatScalar(v.higher))
	}
	//
	return "unknown"
}

func formatScalar(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// ============================================================================
// Mutation
// ============================================================================

// SetKnown updates this value in place to be known exactly, and invalidates
// all dependent nodes.  As for Known, NaN gives an unknown value.
func (v *Value) SetKnown(val float64) {
	v.Set(Known(val))
}

// SetUnknown updates this value in place to be unknown, and invalidates all
// dependent nodes.
func (v *Value) SetUnknown() {
	v.kind, v.lower, v.higher = UNKNOWN, 0, 0
	v.notifyDependents()
}

// SetInterval updates this value in place to lie within a given range, and
// invalidates all dependent nodes.  Equal bounds give a known value.  If the
// range is invalid, an error is returned and the value is left unchanged.
func (v *Value) SetInterval(lower float64, higher float64) error {
	if err := v.assign(lower, higher); err != nil {
		return err
	}
	//
	v.notifyDependents()
	//
	return nil
}

// Set updates this value in place to match another, and invalidates all
// dependent nodes.
func (v *Value) Set(other *Value) {
	v.kind, v.lower, v.higher = other.kind, other.lower, other.higher
	v.notifyDependents()
}

func (v *Value) assign(lower float64, higher float64) error {
	switch {
	case math.IsNaN(lower) || math.IsNaN(higher):
		return fmt.Errorf("%w: bounds must be numbers", ErrInvalidInterval)
	case lower > higher:
		return fmt.Errorf("%w: lower (%s) cannot be greater than higher (%s)", ErrInvalidInterval,
			formatScalar(lower), formatScalar(higher))
	case lower == higher:
		v.kind, v.lower, v.higher = KNOWN, lower, 0
	default:
		v.kind, v.lower, v.higher = INTERVAL, lower, higher
	}
	//
	return nil
}

// ============================================================================
// Dependents
// ============================================================================

// DependentCount returns the number of live nodes currently registered as
// dependents of this value.
func (v *Value) DependentCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	//
	count := 0
	//
	for id, ptr := range v.dependents {
		if ptr.Value() == nil {
			delete(v.dependents, id)
		} else {
			count++
		}
	}
	//
	return count
}

func (v *Value) addDependent(node *Node) {
	v.mu.Lock()
	defer v.mu.Unlock()
	//
	if v.dependents == nil {
		v.dependents = make(map[uuid.UUID]weak.Pointer[Node])
	}
	//
	v.dependents[node.id] = weak.Make(node)
}

func (v *Value) removeDependent(id uuid.UUID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	//
	delete(v.dependents, id)
}

// Invalidate every live dependent, pruning those which have since been
// collected.  Nodes are invalidated outside the lock, since a node being
// constructed concurrently may need to register itself.
func (v *Value) notifyDependents() {
	var live []*Node
	//
	v.mu.Lock()
	//
	for id, ptr := range v.dependents {
		if node := ptr.Value(); node != nil {
			live = append(live, node)
		} else {
			delete(v.dependents, id)
		}
	}
	//
	v.mu.Unlock()
	//
	if len(live) > 0 {
		log.Debugf("value changed to %s, invalidating %d dependent(s)", v.String(), len(live))
	}
	//
	for _, node := range live {
		node.Invalidate()
	}
}
