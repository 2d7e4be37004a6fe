// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ckt evaluates circuit-breaking conditional and chained
// comparison expressions through a capability protocol implemented by
// the operands themselves, rather than by fixed boolean coercion.
//
// A [Breaker] decides short-circuiting for the binary form `lhs else
// rhs`: the left operand is evaluated exactly once, then exactly one of
// [Breaker.ShortCircuit] (right operand never evaluated) or
// [Breaker.Continue] (right operand evaluated once) produces the
// result. [Chain] generalizes the same dispatch to chained relational
// expressions, falling back to plain conjunction for steps outside the
// protocol.
//
// # Architecture
//
//   - Protocol: [Breaker] with the optional [Inverter] capability.
//     Routing is on presence of capability, never on concrete type.
//   - Reference variants: [Exists]/[Missing] (presence of a non-nil
//     value) and [Truthy]/[Falsy] (generic coercion via [Truth]); each
//     pair is mutually inverse and always unwraps, so a [Wrapper] never
//     escapes as a final result.
//   - Chain results: [Elementwise] merges comparison aggregates by
//     elementwise AND and reports [ErrUnreachableBranch] on branches a
//     chain cannot reach.
//   - Errors: usage errors ([ErrNonParticipant], [ErrMethodMissing],
//     [ErrUnreachableBranch]) propagate to the caller unchanged;
//     evaluation is pure, so nothing is retried.
//
// # API Topologies
//
//   - Direct: [Else], [Not], [Chain] over [Thunk] operands.
//   - Cont-world: [ElseEff], [NotEff], [ChainEff] over
//     [code.hybscloud.com/kont.Eff] operands, run with [Eval]; protocol
//     errors short-circuit returning [code.hybscloud.com/kont.Either].
//   - Expr-world: [ExprElse], [ExprNot], [ExprChain] over
//     defunctionalized operands, run with [EvalExpr]. Bridge via
//     [Reify] and [Reflect].
//   - Instrumentation: [Counted] wraps a [Thunk] with an atomic [Probe]
//     for asserting the exactly-once and at-most-once guarantees.
//
// # Example
//
//	v, err := ckt.Else(
//		func() ckt.Value { return ckt.Exists(cached) },
//		func() ckt.Value { return recompute() },
//	)
//
// With a non-nil cached value the result is cached and recompute never
// runs; with a nil cached value the result is recompute().
package ckt
