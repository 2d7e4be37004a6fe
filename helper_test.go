// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt_test

import (
	"testing"

	"code.hybscloud.com/ckt"
)

// val returns a Thunk producing v. Operand thunks in tests are built
// from already-known values; laziness is what the tests observe.
func val(v ckt.Value) ckt.Thunk {
	return func() ckt.Value { return v }
}

// failThunk returns a Thunk that fails the test if invoked.
// Used as the right operand on short-circuit paths, per the guarantee
// that side effects of skipped operands never occur.
func failThunk(t *testing.T) ckt.Thunk {
	return func() ckt.Value {
		t.Fatalf("thunk invoked on a skipped operand")
		return nil
	}
}

// less is the plain relational comparator over int operands.
func less(a, b ckt.Value) ckt.Value {
	return a.(int) < b.(int)
}

// lessEach is a consumer comparator producing Elementwise aggregates
// when either side is a vector, and a plain bool otherwise.
func lessEach(a, b ckt.Value) ckt.Value {
	av, aok := a.([]int)
	bv, bok := b.([]int)
	switch {
	case aok && bok:
		out := make(ckt.Elementwise, len(av))
		for i := range av {
			out[i] = av[i] < bv[i]
		}
		return out
	case aok:
		out := make(ckt.Elementwise, len(av))
		for i := range av {
			out[i] = av[i] < b.(int)
		}
		return out
	case bok:
		out := make(ckt.Elementwise, len(bv))
		for i := range bv {
			out[i] = a.(int) < bv[i]
		}
		return out
	default:
		return a.(int) < b.(int)
	}
}

// testerOnly opts into the protocol decision without implementing the
// dispatch branches. Reaching a dispatch point with it is a malformed
// implementer, reported as ErrMethodMissing.
type testerOnly struct{}

func (testerOnly) Test() bool { return true }
