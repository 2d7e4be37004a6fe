// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

import (
	"errors"
	"fmt"
)

// Protocol usage errors. Evaluation is deterministic and pure, so none
// of these is retryable: they propagate to the evaluator's caller
// unchanged, and a failed dispatch fails atomically before any further
// operand is evaluated.
var (
	// ErrNonParticipant reports a left operand that reached [Else]
	// without implementing the [Breaker] protocol at all. Erroring here
	// instead of guessing a plain-conditional fallback keeps operand
	// bugs visible.
	ErrNonParticipant = errors.New("ckt: operand does not implement the breaker protocol")

	// ErrMethodMissing reports a value that reached a dispatch point
	// required by the taken branch without the capability for it, e.g.
	// a [Tester] lacking the rest of the [Breaker] protocol.
	ErrMethodMissing = errors.New("ckt: breaker capability missing on taken branch")

	// ErrUnreachableBranch reports a dispatch onto a branch the
	// implementation declares unreachable, e.g. [Elementwise.ShortCircuit].
	ErrUnreachableBranch = errors.New("ckt: unreachable breaker branch invoked")
)

// participant classifies a left operand for else dispatch.
// A bare Tester is distinguished from a non-participant: it clearly
// opted into the protocol but cannot complete either branch.
func participant(v Value) (Breaker, error) {
	if br, ok := v.(Breaker); ok {
		return br, nil
	}
	if _, ok := v.(Tester); ok {
		return nil, fmt.Errorf("else: left operand %T: %w", v, ErrMethodMissing)
	}
	return nil, fmt.Errorf("else: left operand %T: %w", v, ErrNonParticipant)
}
