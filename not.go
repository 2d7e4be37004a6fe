// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ckt

// Not evaluates protocol negation.
//
// A value carrying the [Inverter] capability produces its own inverse
// breaker over the same wrapped value; anything else falls back to
// plain boolean negation of [Truth]. The duality obligation
// Truth(Not(v)) == !Truth(v) holds for the reference variants and must
// hold for every conforming Inverter.
func Not(v Value) (Value, error) {
	if inv, ok := v.(Inverter); ok {
		return inv.Invert()
	}
	return !Truth(v), nil
}
