// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

import "fmt"

// Elementwise is the reference comparison-chain result: an aggregate of
// per-element comparison outcomes. Test is always false, so an
// Elementwise step never short-circuits a chain on its own; adjacent
// steps are merged by [Elementwise.Continue] with elementwise AND
// instead of a truthiness coercion that would be ambiguous for an
// aggregate.
//
// The short-circuit and inversion branches are unreachable for a chain
// result and report [ErrUnreachableBranch] so misuse is detected
// rather than producing a nonsensical value.
type Elementwise []bool

// Test implements [Breaker]; a chain aggregate never short-circuits.
func (Elementwise) Test() bool { return false }

// ShortCircuit implements [Breaker] as a declared-unreachable branch.
func (Elementwise) ShortCircuit() (Value, error) {
	return nil, fmt.Errorf("elementwise short-circuit: %w", ErrUnreachableBranch)
}

// Continue implements [Breaker] by elementwise AND with the next step.
// An Elementwise rhs merges pairwise and must match in length; any
// other rhs is broadcast through [Truth].
func (e Elementwise) Continue(rhs Value) (Value, error) {
	if other, ok := rhs.(Elementwise); ok {
		if len(other) != len(e) {
			return nil, fmt.Errorf("ckt: elementwise length mismatch: %d != %d", len(e), len(other))
		}
		out := make(Elementwise, len(e))
		for i := range e {
			out[i] = e[i] && other[i]
		}
		return out, nil
	}
	t := Truth(rhs)
	out := make(Elementwise, len(e))
	for i := range e {
		out[i] = e[i] && t
	}
	return out, nil
}

// Invert implements [Inverter] as a declared-unreachable branch.
func (Elementwise) Invert() (Value, error) {
	return nil, fmt.Errorf("elementwise invert: %w", ErrUnreachableBranch)
}
