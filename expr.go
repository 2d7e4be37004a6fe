// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

import (
	"code.hybscloud.com/kont"
)

// Expr-world evaluators: defunctionalized counterparts of the Eff
// combinators. Skipping an operand skips its pending effect frames;
// pure Go evaluation spent constructing an Expr has already happened
// at construction time, as everywhere in the Expr world.

// exprLift converts a dispatch result into an Expr, raising the error
// through the Error effect.
func exprLift(v Value, err error) kont.Expr[Value] {
	if err != nil {
		return kont.ExprThrowError[error, Value](err)
	}
	return kont.ExprReturn(v)
}

// ExprElse is the Expr-world form of [Else].
func ExprElse(lhs, rhs kont.Expr[Value]) kont.Expr[Value] {
	return kont.ExprBind(lhs, func(l Value) kont.Expr[Value] {
		br, err := participant(l)
		if err != nil {
			return kont.ExprThrowError[error, Value](err)
		}
		if br.Test() {
			return exprLift(br.ShortCircuit())
		}
		return kont.ExprBind(rhs, func(r Value) kont.Expr[Value] {
			return exprLift(br.Continue(r))
		})
	})
}

// ExprNot is the Expr-world form of [Not].
func ExprNot(m kont.Expr[Value]) kont.Expr[Value] {
	return kont.ExprBind(m, func(v Value) kont.Expr[Value] {
		return exprLift(Not(v))
	})
}

// ExprChain is the Expr-world form of [Chain].
func ExprChain(operands []kont.Expr[Value], comparators []Comparator) kont.Expr[Value] {
	checkShape(len(operands), len(comparators))
	return kont.ExprBind(operands[0], func(a Value) kont.Expr[Value] {
		return kont.ExprBind(operands[1], func(b Value) kont.Expr[Value] {
			return chainExprLoop(comparators[0](a, b), b, operands, comparators, 1)
		})
	})
}

// chainExprLoop mirrors chainEffLoop in the Expr world.
func chainExprLoop(acc, left Value, operands []kont.Expr[Value], comparators []Comparator, i int) kont.Expr[Value] {
	if i == len(comparators) {
		return kont.ExprReturn(acc)
	}
	if br, ok := acc.(Breaker); ok {
		if br.Test() {
			return exprLift(br.ShortCircuit())
		}
		return kont.ExprBind(operands[i+1], func(right Value) kont.Expr[Value] {
			v, err := br.Continue(comparators[i](left, right))
			if err != nil {
				return kont.ExprThrowError[error, Value](err)
			}
			return chainExprLoop(v, right, operands, comparators, i+1)
		})
	}
	if !Truth(acc) {
		return kont.ExprReturn(acc)
	}
	return kont.ExprBind(operands[i+1], func(right Value) kont.Expr[Value] {
		return chainExprLoop(comparators[i](left, right), right, operands, comparators, i+1)
	})
}

// EvalExpr runs an Expr-world evaluation. Returns Right on success, or
// Left carrying the protocol error raised by a dispatch point.
func EvalExpr(m kont.Expr[Value]) kont.Either[error, Value] {
	return kont.RunErrorExpr[error, Value](m)
}
