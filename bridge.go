// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world operand computation to Expr-world.
// The resulting Expr can be composed with [ExprElse], [ExprNot], and
// [ExprChain], and evaluated with [EvalExpr].
func Reify(m kont.Eff[Value]) kont.Expr[Value] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world operand computation to Cont-world.
// The resulting Eff can be composed with [ElseEff], [NotEff], and
// [ChainEff], and evaluated with [Eval].
func Reflect(m kont.Expr[Value]) kont.Eff[Value] {
	return kont.Reflect(m)
}
