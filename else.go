// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

// Else evaluates the circuit-breaking conditional `lhs else rhs`.
//
// The left thunk is invoked exactly once and bound before any branch is
// taken; the right thunk is invoked at most once and only on the
// continue path, so side effects of a skipped right operand never
// occur. A left operand outside the protocol is a usage error
// ([ErrNonParticipant] or [ErrMethodMissing]), never a silent fallback.
func Else(lhs, rhs Thunk) (Value, error) {
	l := lhs()
	br, err := participant(l)
	if err != nil {
		return nil, err
	}
	if br.Test() {
		return br.ShortCircuit()
	}
	return br.Continue(rhs())
}
