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

// This file implements spec section 4.1/4.9's power-of-ten multiply/divide
// with rounding and overflow options, used both by the Arithmetic facade's
// MultiplyByPowerOf10/DivideByPowerOf10 operations and internally by
// unscaledToUnscaled (convert.go) to carry a value from one scale to
// another.

// pow10u64 extends the int64 pow10 table (scale.go) by one entry: 10^19
// fits in a uint64 (it's about 54% of the uint64 range) even though it
// doesn't fit in int64, which lets divideByPowerOf10 classify the n==19
// case exactly instead of falling back to the n>19 asymptotic argument.
var pow10u64 = [MaxScale + 2]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000,
	1_000_000_000, 10_000_000_000, 100_000_000_000, 1_000_000_000_000,
	10_000_000_000_000, 100_000_000_000_000, 1_000_000_000_000_000,
	10_000_000_000_000_000, 100_000_000_000_000_000, 1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// absU64 returns |u| as a uint64, correctly handling math.MinInt64 (whose
// magnitude, 2^63, doesn't fit in int64 but does fit in uint64).
func absU64(u int64) uint64 {
	if u == minInt64 {
		return 1 << 63
	}
	if u < 0 {
		return uint64(-u)
	}
	return uint64(u)
}

// pow10Mod64 returns 10^n mod 2^64 via binary exponentiation, relying on
// Go's wraparound unsigned multiplication. Used only for the UNCHECKED,
// n>=19 path of multiplyByPowerOf10, where the exact mathematical result
// doesn't fit in any fixed-width integer and wrapping is the contract.
func pow10Mod64(n int) uint64 {
	result := uint64(1)
	base := uint64(10)
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return result
}

// multiplyByPowerOf10 returns round(u * 10^n). n may be negative, in which
// case this delegates to divideByPowerOf10(u, -n, ...).
func multiplyByPowerOf10(op string, u int64, n int, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if n < 0 {
		return divideByPowerOf10(op, u, -n, rounding, overflow)
	}
	if n == 0 || u == 0 {
		return u, nil
	}

	if n <= int(MaxScale) {
		if overflow == OverflowChecked {
			return checkedMul(op, u, pow10[n])
		}
		return u * pow10[n], nil
	}

	// n > 18: the exact product has more than 19 significant digits, which
	// always overflows int64 for any non-zero u (since |u| >= 1 and
	// 10^19 > MaxInt64).
	if overflow == OverflowChecked {
		return 0, overflowErr(op, u)
	}

	sign := int64(1)
	if u < 0 {
		sign = -1
	}
	wrapped := absU64(u) * pow10Mod64(n)
	return sign * int64(wrapped), nil
}

// divideByPowerOf10 returns round(u / 10^n) under the given rounding mode.
// n may be negative, in which case this delegates to
// multiplyByPowerOf10(u, -n, ...). For n >= 0 the magnitude only shrinks,
// so overflow cannot occur.
func divideByPowerOf10(op string, u int64, n int, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if n < 0 {
		return multiplyByPowerOf10(op, u, -n, rounding, overflow)
	}
	if n == 0 || u == 0 {
		return u, nil
	}

	sign := signOf(u)
	mag := absU64(u)

	var quo, rem uint64
	var divisor uint64

	if n <= int(MaxScale)+1 {
		divisor = pow10u64[n]
		quo = mag / divisor
		rem = mag % divisor
	} else {
		// For n > 19, 10^n exceeds the uint64 range. Since |u| < 10^19 and
		// 10^n >= 10^20 here, the quotient is always 0 and 2|u| < 10^n/10 <
		// 10^n, so the truncated part is always strictly less than half —
		// there is no case left to classify against an explicit divisor.
		quo = 0
		if rounding == RoundUnnecessary {
			return 0, roundingNecessaryErr(op, u)
		}
		inc, err := roundingIncrement(rounding, sign, quo%2 == 1, PartLessThanHalf)
		if err != nil {
			return 0, roundingNecessaryErr(op, u)
		}
		return inc, nil
	}

	part := classifyU64(rem, divisor)
	inc, err := roundingIncrement(rounding, sign, quo%2 == 1, part)
	if err != nil {
		return 0, roundingNecessaryErr(op, u)
	}

	result := int64(quo)*sign + inc
	return result, nil
}

// classifyU64 is the unsigned, non-overflowing analogue of
// truncatedPartFor, used when remainder/divisor are already known
// unsigned.
func classifyU64(remainder, divisor uint64) TruncatedPart {
	if remainder == 0 {
		return PartZero
	}
	half := divisor - remainder
	switch {
	case remainder < half:
		return PartLessThanHalf
	case remainder == half:
		return PartEqualToHalf
	default:
		return PartGreaterThanHalf
	}
}
