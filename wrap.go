// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

// Wrapper is the reference [Breaker] variant: a wrapped value, a fixed
// short-circuit decision, and the constructor of the inverse variant.
//
// Wrappers are ephemeral. Both dispatch branches unwrap, so a Wrapper
// produced inside an expression is never observable as the final
// result: `x else y` yields the wrapped value or the right operand,
// and `b else b` yields the wrapped value via the reflexive identity
// check in [Wrapper.Continue].
type Wrapper struct {
	value    Value
	decision bool
	inverse  func(Value) *Wrapper
}

// Exists wraps v with presence as the short-circuit decision:
// Test is true unless v is nil, the absent marker.
func Exists(v Value) *Wrapper {
	return &Wrapper{value: v, decision: v != nil, inverse: Missing}
}

// Missing wraps v with absence as the short-circuit decision:
// Test is true only when v is nil, the absent marker.
// Missing is the exact inverse of [Exists].
func Missing(v Value) *Wrapper {
	return &Wrapper{value: v, decision: v == nil, inverse: Exists}
}

// Truthy wraps v with generic truthiness as the short-circuit decision,
// re-expressing logical OR through the protocol: `truthy(x) else y`.
func Truthy(v Value) *Wrapper {
	return &Wrapper{value: v, decision: Truth(v), inverse: Falsy}
}

// Falsy wraps v with generic falsiness as the short-circuit decision,
// re-expressing logical AND through the protocol: `falsy(x) else y`.
// Falsy is the exact inverse of [Truthy].
func Falsy(v Value) *Wrapper {
	return &Wrapper{value: v, decision: !Truth(v), inverse: Truthy}
}

// Wrapped returns the wrapped value without dispatching.
func (w *Wrapper) Wrapped() Value { return w.value }

// Test implements [Breaker] with the decision fixed at construction.
func (w *Wrapper) Test() bool { return w.decision }

// ShortCircuit implements [Breaker] by unwrapping. The right operand is
// never touched.
func (w *Wrapper) ShortCircuit() (Value, error) { return w.value, nil }

// Continue implements [Breaker]. The reflexive check is reference
// identity: only this exact instance passed back as rhs unwraps, an
// equal-looking wrapper does not.
func (w *Wrapper) Continue(rhs Value) (Value, error) {
	if same, ok := rhs.(*Wrapper); ok && same == w {
		return w.value, nil
	}
	return rhs, nil
}

// Invert implements [Inverter] over the same wrapped value.
// Inverting twice yields a wrapper equal in decision and wrapped value
// to the original.
func (w *Wrapper) Invert() (Value, error) { return w.inverse(w.value), nil }
