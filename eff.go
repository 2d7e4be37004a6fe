// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

import (
	"code.hybscloud.com/kont"
)

// Cont-world evaluators. An operand is a deferred effectful computation
// kont.Eff[Value]; skipping an operand means its computation is never
// applied, so its effects never run. Protocol errors are raised through
// the kont Error effect and arrive as the Left branch of [Eval].

// lift converts a dispatch result into an effectful computation,
// raising the error through the Error effect.
func lift(v Value, err error) kont.Eff[Value] {
	if err != nil {
		return kont.ThrowError[error, Value](err)
	}
	return kont.Pure(v)
}

// ElseEff is the Cont-world form of [Else]. The left computation runs
// exactly once; the right computation runs only on the continue path.
func ElseEff(lhs, rhs kont.Eff[Value]) kont.Eff[Value] {
	return kont.Bind(lhs, func(l Value) kont.Eff[Value] {
		br, err := participant(l)
		if err != nil {
			return kont.ThrowError[error, Value](err)
		}
		if br.Test() {
			return lift(br.ShortCircuit())
		}
		return kont.Bind(rhs, func(r Value) kont.Eff[Value] {
			return lift(br.Continue(r))
		})
	})
}

// NotEff is the Cont-world form of [Not].
func NotEff(m kont.Eff[Value]) kont.Eff[Value] {
	return kont.Bind(m, func(v Value) kont.Eff[Value] {
		return lift(Not(v))
	})
}

// ChainEff is the Cont-world form of [Chain]. Operand computations past
// a protocol or conjunction short-circuit are never applied.
func ChainEff(operands []kont.Eff[Value], comparators []Comparator) kont.Eff[Value] {
	checkShape(len(operands), len(comparators))
	return kont.Bind(operands[0], func(a Value) kont.Eff[Value] {
		return kont.Bind(operands[1], func(b Value) kont.Eff[Value] {
			return chainEffLoop(comparators[0](a, b), b, operands, comparators, 1)
		})
	})
}

// chainEffLoop merges remaining steps into acc. left is the already
// evaluated shared operand; step i consumes operand i+1.
func chainEffLoop(acc, left Value, operands []kont.Eff[Value], comparators []Comparator, i int) kont.Eff[Value] {
	if i == len(comparators) {
		return kont.Pure(acc)
	}
	if br, ok := acc.(Breaker); ok {
		if br.Test() {
			return lift(br.ShortCircuit())
		}
		return kont.Bind(operands[i+1], func(right Value) kont.Eff[Value] {
			v, err := br.Continue(comparators[i](left, right))
			if err != nil {
				return kont.ThrowError[error, Value](err)
			}
			return chainEffLoop(v, right, operands, comparators, i+1)
		})
	}
	if !Truth(acc) {
		return kont.Pure(acc)
	}
	return kont.Bind(operands[i+1], func(right Value) kont.Eff[Value] {
		return chainEffLoop(comparators[i](left, right), right, operands, comparators, i+1)
	})
}

// Eval runs a Cont-world evaluation. Returns Right on success, or Left
// carrying the protocol error raised by a dispatch point.
func Eval(m kont.Eff[Value]) kont.Either[error, Value] {
	return kont.RunError[error, Value](m)
}
