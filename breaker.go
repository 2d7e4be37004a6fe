// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

import "reflect"

// Value is the type of operands and results flowing through the engine.
// Mirrors [code.hybscloud.com/kont.Resumed].
type Value = any

// Thunk is a deferred operand computation. Evaluators invoke a thunk
// at most once; [Else] invokes its left thunk exactly once.
type Thunk func() Value

// Tester is the short-circuit decision capability on its own.
// A value implementing Tester but not the full [Breaker] protocol is
// malformed and reported via [ErrMethodMissing] at dispatch points.
type Tester interface {
	// Test reports whether this value short-circuits its operator.
	// Must be pure and idempotent for the life of the instance.
	Test() bool
}

// Breaker is the circuit-breaking capability contract. A value
// implementing Breaker controls short-circuit evaluation of the [Else]
// and [Chain] evaluators instead of generic boolean coercion.
//
// Implementations must keep Test pure, must not touch any right operand
// in ShortCircuit, and are consumed as immutable values: evaluators
// never mutate or retain a Breaker past the evaluation that received it.
type Breaker interface {
	Tester

	// ShortCircuit produces the expression result when Test is true.
	// The right operand has not been evaluated and never will be.
	ShortCircuit() (Value, error)

	// Continue produces the expression result when Test is false, given
	// the already-evaluated right operand. Implementations may detect
	// that rhs is this exact instance (reference identity, not value
	// equality) and substitute the wrapped value.
	Continue(rhs Value) (Value, error)
}

// Inverter is the optional inversion capability. [Not] consults it
// before falling back to plain boolean negation.
//
// Contract obligation, verified by testing rather than at runtime:
// Truth(inverted) == !Truth(original) and both sides wrap the same
// value. Implementations whose inverse is meaningless signal
// [ErrUnreachableBranch] instead of guessing.
type Inverter interface {
	Invert() (Value, error)
}

// Truth is the generic boolean coercion used by the [Not] fallback,
// the [Chain] conjunction fallback, and the [Truthy]/[Falsy] variants.
//
// A [Tester] decides its own truth. nil, false, zero numbers, empty
// strings, and empty containers are false; everything else is true.
func Truth(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case Tester:
		return x.Test()
	case bool:
		return x
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case uintptr:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case complex64:
		return x != 0
	case complex128:
		return x != 0
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}
