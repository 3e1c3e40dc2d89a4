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
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Node is a lazily evaluated expression over some number of operands, each of
// which is either a value or another node.  A node is resolved on demand, and
// its result is cached until one of its direct value operands is mutated.
//
// Nodes come in two flavours.  A loud node which cannot be fully evaluated
// resolves to a residual node, whilst a quiet node collapses to an unknown
// value instead.  Independently, a locked node rejects any attempt to change
// its operands after construction.
//
// Only direct value operands invalidate a node.  A node whose cache is valid is
// not refreshed when a value held by one of its sub-expressions changes.
type Node struct {
	id       uuid.UUID
	op       Operator
	quiet    bool
	locked   bool
	mu       sync.Mutex
	operands []Term
	// Cached result, which is meaningful only when valid holds.
	cached *Value
	valid  bool
	// Incremented on every invalidation, such that a result computed against
	// stale operands is never cached.
	generation uint64
	// Number of times a result has been computed (rather than read from the
	// cache).
	evaluations uint64
	// Values with which this node is registered as a dependent.
	reg *registration
}

// registration records the values with which a node is registered.  This is
// kept apart from the node itself, since it must remain reachable from the
// node's cleanup after the node has been collected.
type registration struct {
	id     uuid.UUID
	mu     sync.Mutex
	values []*Value
}

// Symbolic constructs a loud node applying a given operator to some operands.
func Symbolic(op Operator, operands ...Term) (*Node, error) {
	return NewNode(op, operands, false, false)
}

// Quiet constructs a quiet node applying a given operator to some operands.
func Quiet(op Operator, operands ...Term) (*Node, error) {
	return NewNode(op, operands, true, false)
}

// Const constructs a loud node whose operands cannot be changed.
func Const(op Operator, operands ...Term) (*Node, error) {
	return NewNode(op, operands, false, true)
}

// ConstQuiet constructs a quiet node whose operands cannot be changed.
func ConstQuiet(op Operator, operands ...Term) (*Node, error) {
	return NewNode(op, operands, true, true)
}

// NewNode constructs a node with the given flavour, and registers it as a
// dependent of each of its direct value operands.  An error is returned if the
// number of operands is not accepted by the operator.
func NewNode(op Operator, operands []Term, quiet bool, locked bool) (*Node, error) {
	if err := op.checkArity(len(operands)); err != nil {
		return nil, err
	}
	//
	node := &Node{
		id:       uuid.New(),
		op:       op,
		quiet:    quiet,
		locked:   locked,
		operands: append([]Term(nil), operands...),
	}
	node.reg = &registration{id: node.id}
	node.register(node.operands)
	// Drop registrations once the node is collected.  The registration does not
	// refer back to the node, hence does not keep it alive.
	runtime.AddCleanup(node, func(reg *registration) { reg.release() }, node.reg)
	//
	return node, nil
}

// ID returns the unique identifier of this node.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Operator returns the operator applied by this node.
func (n *Node) Operator() Operator {
	return n.op
}

// Operands returns a copy of the operands of this node.
func (n *Node) Operands() []Term {
	n.mu.Lock()
	defer n.mu.Unlock()
	//
	return append([]Term(nil), n.operands...)
}

// IsQuiet checks whether this node collapses to an unknown value when it cannot
// be fully evaluated.
func (n *Node) IsQuiet() bool {
	return n.quiet
}

// IsLocked checks whether the operands of this node are fixed.
func (n *Node) IsLocked() bool {
	return n.locked
}

// Evaluations returns the number of times a result has been computed for this
// node, as opposed to being read from its cache.
func (n *Node) Evaluations() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	//
	return n.evaluations
}

// IsCached checks whether this node currently holds a valid cached result.
func (n *Node) IsCached() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	//
	return n.valid
}

// SetOperands replaces the operands of this node, and invalidates its cache.
// This fails with ErrImmutableOperands for a locked node.
func (n *Node) SetOperands(operands ...Term) error {
	if n.locked {
		return fmt.Errorf("%w: %s", ErrImmutableOperands, n.op)
	} else if err := n.op.checkArity(len(operands)); err != nil {
		return err
	}
	//
	n.mu.Lock()
	n.operands = append([]Term(nil), operands...)
	n.mu.Unlock()
	//
	n.reg.release()
	n.register(operands)
	n.Invalidate()
	//
	return nil
}

// Invalidate drops the cached result (if any) of this node.
func (n *Node) Invalidate() {
	n.mu.Lock()
	defer n.mu.Unlock()
	//
	n.valid = false
	n.cached = nil
	n.generation++
}

// Kind returns the kind of the value this node resolves to or, if it cannot be
// fully evaluated, SYMBOLIC.
func (n *Node) Kind() Kind {
	r, err := n.Resolve()
	//
	if err != nil {
		return SYMBOLIC
	} else if v, ok := asValue(r); ok && v.kind.IsEvaluable() {
		return v.kind
	}
	//
	return SYMBOLIC
}

// Resolve this node.  If the cache is valid, the cached result is returned.
// Otherwise, operands are resolved recursively and simplified.  When all
// remaining operands are evaluable the operator is applied, and the result is
// cached.  Otherwise, a loud node returns a residual node (which is this node
// if nothing changed) and a quiet node returns an unknown value.
func (n *Node) Resolve() (Term, error) {
	n.mu.Lock()
	//
	if n.valid {
		r := n.cached.Clone()
		n.mu.Unlock()
		//
		return r, nil
	}
	//
	gen := n.generation
	operands := append([]Term(nil), n.operands...)
	n.mu.Unlock()
	//
	resolved := make([]Term, len(operands))
	changed := false
	//
	for i, operand := range operands {
		r, err := operand.Resolve()
		if err != nil {
			return nil, err
		}
		//
		resolved[i] = r
		changed = changed || r != operand
	}
	//
	result, remaining := simplify(n.op, resolved)
	//
	if isNumeric(result) {
		v, _ := asValue(result)
		//
		return n.store(gen, v.Clone()), nil
	} else if _, ok := result.(*Node); ok {
		// Simplified to a residual node
		return n.residual(result), nil
	} else if result != nil {
		// Simplified to an unknown leaf, which is kept in place such that
		// later assignments to it are seen.
		remaining = resolved
	}
	//
	if values, ok := evaluable(remaining); ok {
		v, err := n.op.apply(values)
		if err != nil {
			return nil, err
		}
		//
		return n.store(gen, v), nil
	}
	//
	if !changed && len(remaining) == len(operands) {
		return n.residual(n), nil
	}
	//
	residual, err := Symbolic(n.op, remaining...)
	if err != nil {
		return nil, err
	}
	//
	return n.residual(residual), nil
}

func (n *Node) String() string {
	if n.quiet {
		r, err := n.Resolve()
		if err != nil {
			return fmt.Sprintf("error(%s)", err.Error())
		}
		//
		return r.String()
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(n.op.String())
	builder.WriteString("(")
	//
	for i, operand := range n.Operands() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(operand.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// store a computed result in the cache, unless this node was invalidated
// whilst the result was being computed.
func (n *Node) store(gen uint64, v *Value) *Value {
	n.mu.Lock()
	defer n.mu.Unlock()
	//
	n.evaluations++
	//
	if n.generation == gen {
		n.cached = v
		n.valid = true
	} else {
		log.Debugf("discarding stale result %s for %s node %s", v.String(), n.op, n.id)
	}
	//
	return v.Clone()
}

func (n *Node) residual(term Term) Term {
	if n.quiet {
		return Unknown()
	}
	//
	return term
}

func (n *Node) register(operands []Term) {
	for _, operand := range operands {
		if v, ok := asValue(operand); ok {
			v.addDependent(n)
			n.reg.add(v)
		}
	}
}

func (r *registration) add(v *Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	//
	r.values = append(r.values, v)
}

// release removes the node from every value it is registered with.
func (r *registration) release() {
	r.mu.Lock()
	values := r.values
	r.values = nil
	r.mu.Unlock()
	//
	for _, v := range values {
		v.removeDependent(r.id)
	}
}

// evaluable extracts the values from a list of terms, provided every term is a
// value which can be evaluated numerically.
func evaluable(terms []Term) ([]*Value, bool) {
	values := make([]*Value, len(terms))
	//
	for i, t := range terms {
		if !isNumeric(t) {
			return nil, false
		}
		//
		values[i], _ = asValue(t)
	}
	//
	return values, true
}
