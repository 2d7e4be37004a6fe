// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/ckt"
)

// TestPropertyNegationDuality proves that for arbitrarily generated
// operands, protocol negation of every reference variant commutes with
// generic truthiness: Truth(Not(b)) == !Truth(b).
func TestPropertyNegationDuality(t *testing.T) {
	duality := func(n int, s string, flag bool) bool {
		for _, b := range []*ckt.Wrapper{
			ckt.Exists(n), ckt.Missing(n),
			ckt.Truthy(n), ckt.Falsy(n),
			ckt.Truthy(s), ckt.Falsy(s),
			ckt.Truthy(flag), ckt.Falsy(flag),
		} {
			inv, err := ckt.Not(b)
			if err != nil {
				return false
			}
			if ckt.Truth(inv) != !ckt.Truth(b) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(duality, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyDoubleInversion proves double inversion returns a wrapper
// equal by semantics: same wrapped value, same decision.
func TestPropertyDoubleInversion(t *testing.T) {
	roundTrip := func(n int) bool {
		for _, b := range []*ckt.Wrapper{
			ckt.Exists(n), ckt.Missing(n), ckt.Truthy(n), ckt.Falsy(n),
		} {
			once, err := ckt.Not(b)
			if err != nil {
				return false
			}
			twice, err := ckt.Not(once)
			if err != nil {
				return false
			}
			w, ok := twice.(*ckt.Wrapper)
			if !ok || w.Test() != b.Test() || w.Wrapped() != b.Wrapped() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyChainMatchesConjunction proves that for arbitrary int
// chains with plain-bool steps, Chain agrees with ordinary
// left-to-right conjunction with short-circuit.
func TestPropertyChainMatchesConjunction(t *testing.T) {
	agrees := func(xs []int) bool {
		if len(xs) < 3 {
			return true
		}
		operands := make([]ckt.Thunk, len(xs))
		for i, x := range xs {
			operands[i] = val(x)
		}
		comparators := make([]ckt.Comparator, len(xs)-1)
		for i := range comparators {
			comparators[i] = less
		}
		got, err := ckt.Chain(operands, comparators)
		if err != nil {
			return false
		}

		// Reference semantics: pairwise < joined by &&.
		want := true
		for i := 0; i+1 < len(xs) && want; i++ {
			want = xs[i] < xs[i+1]
		}
		return got == want
	}
	if err := quick.Check(agrees, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyElseCoalesceChain proves that folding arbitrary operand
// sequences with `exists(x) else ...` yields the first non-nil value,
// the generalized ?? reduction.
func TestPropertyElseCoalesceChain(t *testing.T) {
	coalesce := func(present []bool) bool {
		// Build operands: present[i] selects a value or nil.
		values := make([]ckt.Value, len(present))
		var want ckt.Value
		for i, p := range present {
			if p {
				values[i] = i + 1
				if want == nil {
					want = i + 1
				}
			}
		}

		var got ckt.Value
		var err error
		got = nil
		for i := len(values) - 1; i >= 0; i-- {
			rhs := got
			got, err = ckt.Else(val(ckt.Exists(values[i])), val(rhs))
			if err != nil {
				return false
			}
		}
		return got == want
	}
	if err := quick.Check(coalesce, nil); err != nil {
		t.Error(err)
	}
}
