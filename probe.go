// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

import "code.hybscloud.com/atomix"

// Probe observes thunk invocations. The evaluation-order guarantees of
// [Else] and [Chain] (left thunk exactly once, skipped thunks never)
// are stated per call, not enforced at runtime; a Probe lets hosts and
// tests assert them against instrumented operands.
//
// The counter is atomic so independent evaluations on separate
// goroutines can share one instrumented operand set.
type Probe struct {
	calls atomix.Uint32
}

// Counted wraps t so that every invocation is counted through the
// returned probe.
func Counted(t Thunk) (Thunk, *Probe) {
	p := &Probe{}
	return func() Value {
		p.calls.Add(1)
		return t()
	}, p
}

// Calls returns the number of invocations observed so far.
func (p *Probe) Calls() uint32 {
	// Add(0) is an atomic read of the current count.
	return p.calls.Add(0)
}
