/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package decimal64

import "github.com/ericlagergren/decimal"

// This file implements the extended accumulator spec section 4.8 calls
// for: "a sign-magnitude number with a 9-digit (base-10) integer limb and
// a 36-digit fractional limb... used only inside pow to preserve
// precision across repeated squarings". Rather than hand-rolling a
// second fixed-width bignum type alongside UInt128, it's backed by
// *decimal.Big at a guard precision comfortably beyond the spec's
// 9+36=45 digits — the same arbitrary-precision collaborator convert.go
// already uses for FromBigDecimal/ToBigDecimal, reused here for the same
// reason: Pow's repeated squaring needs more digits than the target
// scale, not unbounded ones, and decimal.Big already gives us that at a
// chosen precision without introducing an untested bignum path.

// accumulatorPrecision is the extended accumulator's working precision:
// the spec's 45 digits (9 integer + 36 fraction) plus guard digits, so
// the handful of squarings a binary exponentiation chain needs (at most
// ~30, for the largest permitted exponent) never lose a digit that could
// still influence the single final rounding back to the caller's scale.
const accumulatorPrecision = 50

// newAccumulator promotes an unscaled decimal value (at scale) to the
// extended accumulator, as its exact true value.
func newAccumulator(u int64, scale Scale) *decimal.Big {
	acc := new(decimal.Big).SetMantScale(u, int(scale))
	acc.Context.Precision = accumulatorPrecision
	return acc
}

// accMul multiplies two accumulator values, rounding only to the
// accumulator's own guard precision — never to the caller's scale. This
// is what lets pow defer every intermediate squaring/multiply step's
// rounding to the single reduction performed once the exponentiation
// loop finishes.
func accMul(x, y *decimal.Big) *decimal.Big {
	z := new(decimal.Big)
	z.Context.Precision = accumulatorPrecision
	return z.Mul(x, y)
}
