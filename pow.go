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

// This file implements spec section 4.8: decimal Pow, an integer-exponent
// power raised by binary exponentiation entirely inside the extended
// accumulator (accumulator.go), so that rounding to the caller's scale
// happens exactly once — after the whole exponentiation chain — rather
// than at every squaring/multiply step. Squaring a rounded intermediate
// result repeatedly would drift away from the arbitrary-precision answer
// with each step; deferring to one final round is what spec sections
// 3/4.8 require the extended accumulator for.

// MinPowExponent and MaxPowExponent bound the integer exponent Pow
// accepts, per spec section 4.8.
const (
	MinPowExponent = -999999999
	MaxPowExponent = 999999999
)

// pow computes round(u^exponent) at the given scale, exponent in
// [MinPowExponent, MaxPowExponent]. Negative exponents compute the
// positive power first and invert it inside the accumulator, so the
// result is still rounded to the caller's scale exactly once.
func pow(op string, u int64, exponent int, scale Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	st := scaleTableFor(scale)

	if exponent == 0 {
		return st.factor, nil
	}
	if u == 0 {
		if exponent < 0 {
			return 0, divByZeroErr(op, u)
		}
		return 0, nil
	}
	if exponent < MinPowExponent || exponent > MaxPowExponent {
		return 0, &RangeError{Op: op, Msg: "exponent out of range"}
	}

	negative := exponent < 0
	e := exponent
	if negative {
		e = -e
	}

	base := newAccumulator(u, scale)
	result := newAccumulator(st.factor, scale)
	for e > 0 {
		if e&1 == 1 {
			result = accMul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = accMul(base, base)
		}
	}

	if negative {
		// Invert inside the accumulator, so the caller's scale is still
		// reached by the single reduction below.
		inv := new(decimal.Big)
		inv.Context.Precision = accumulatorPrecision
		result = inv.Quo(newAccumulator(1, 0), result)
	}

	return fromBigDecimal(op, result, scale, rounding, overflow)
}
