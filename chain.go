// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

// Comparator computes one relational step from a pair of adjacent
// chain operands. The result may be a plain value, combined by ordinary
// conjunction, or a [Breaker], routed through protocol dispatch.
type Comparator func(a, b Value) Value

// Chain evaluates the chained relational expression
//
//	operands[0] comparators[0] operands[1] ... operands[n-1]
//
// left to right. Each shared operand thunk runs exactly once, as the
// right side of one step and the left side of the next. After each
// merge the accumulated result decides whether evaluation stops: a
// [Breaker] whose Test is true short-circuits through the protocol, a
// falsy plain value short-circuits by ordinary conjunction, and in both
// cases no further operand thunks or comparators run.
//
// A single-comparison chain is the bypass case: the plain comparator
// result is returned without any merge.
//
// The operand/comparator shape is the host front end's obligation;
// a mismatched call panics rather than returning an error.
func Chain(operands []Thunk, comparators []Comparator) (Value, error) {
	checkShape(len(operands), len(comparators))
	left := operands[0]()
	right := operands[1]()
	acc := comparators[0](left, right)
	left = right
	for i := 1; i < len(comparators); i++ {
		if br, ok := acc.(Breaker); ok {
			if br.Test() {
				return br.ShortCircuit()
			}
			right = operands[i+1]()
			v, err := br.Continue(comparators[i](left, right))
			if err != nil {
				return nil, err
			}
			acc = v
		} else {
			if !Truth(acc) {
				return acc, nil
			}
			right = operands[i+1]()
			acc = comparators[i](left, right)
		}
		left = right
	}
	return acc, nil
}

// checkShape validates chain arity: n operands need n-1 comparators,
// and a chain needs at least one comparison.
func checkShape(operands, comparators int) {
	if comparators == 0 || operands != comparators+1 {
		panic("ckt: chain shape mismatch")
	}
}
