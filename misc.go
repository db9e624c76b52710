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

// This file implements the remaining operations of spec section 4.10:
// Negate, Abs, Avg, ShiftLeft/ShiftRight, and Round-to-precision.

// negate returns -u, or an OverflowError for u == MinInt64.
func negate(op string, u int64, overflow OverflowMode) (int64, error) {
	if overflow == OverflowChecked {
		return checkedNegate(op, u)
	}
	return -u, nil
}

// abs returns |u|, or an OverflowError for u == MinInt64.
func abs(op string, u int64, overflow OverflowMode) (int64, error) {
	if overflow == OverflowChecked {
		return checkedAbs(op, u)
	}
	if u < 0 {
		return -u, nil
	}
	return u, nil
}

// avg returns round((u1+u2)/2) without the intermediate sum ever
// overflowing int64, via the standard bitwise floor-average identity
// (u1&u2) + ((u1^u2)>>1) (the arithmetic right shift rounds the XOR term
// toward negative infinity, giving floor((u1+u2)/2) directly). When u1
// and u2 differ in parity the true average lands exactly halfway between
// two integers, and the rounding mode decides which one wins.
func avg(op string, u1, u2 int64, rounding RoundingMode) (int64, error) {
	floor := (u1 & u2) + ((u1 ^ u2) >> 1)

	if (u1^u2)&1 == 0 {
		return floor, nil
	}

	sign := int64(1)
	if floor < 0 {
		sign = -1
	}

	truncated := floor
	if sign < 0 {
		truncated = floor + 1
	}

	inc, err := roundingIncrement(rounding, sign, truncated%2 != 0, PartEqualToHalf)
	if err != nil {
		return 0, roundingNecessaryErr(op, u1, u2)
	}

	return truncated + inc, nil
}

// shiftLeft returns round(u * 2^n), the power-of-two scaling spec section
// 4.10 calls out separately from MultiplyByPowerOf10's power-of-ten
// scaling. Exact for any n >= 0 that doesn't overflow; rounding is used
// only for negative n, which delegates to shiftRight, the same way
// MultiplyByPowerOf10 in pow10.go uses it only for negative n. Grounded on
// uint128.go's shiftLeft (itself adapted from the teacher's raw128.go
// shiftLeft128).
func shiftLeft(op string, u int64, n int, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if n < 0 {
		return shiftRight(op, u, -n, rounding, overflow)
	}
	if n == 0 || u == 0 {
		return u, nil
	}

	sign := signOf(u)
	mag := absU64(u)

	if n >= 64 {
		// Every bit of a 64-bit magnitude is shifted out at n>=64: the
		// exact mathematical result is always a multiple of 2^64, i.e.
		// it wraps to zero under OverflowUnchecked.
		if overflow == OverflowChecked {
			return 0, overflowErr(op, u)
		}
		return 0, nil
	}

	shifted := UInt128{Lo: mag}.shiftLeft(uint(n))
	if shifted.Hi != 0 && overflow == OverflowChecked {
		return 0, overflowErr(op, u)
	}
	return applyMagnitudeSign(op, shifted.Lo, sign, overflow)
}

// shiftRight returns round(u / 2^n), the power-of-two analogue of
// DivideByPowerOf10. Can never overflow (magnitude only shrinks), but the
// discarded low bits need the same half/less-than-half/greater-than-half
// classification DivideByPowerOf10 gives its base-10 remainder.
func shiftRight(op string, u int64, n int, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if n < 0 {
		return shiftLeft(op, u, -n, rounding, overflow)
	}
	if n == 0 || u == 0 {
		return u, nil
	}

	sign := signOf(u)
	mag := absU64(u)

	var quo uint64
	var part TruncatedPart

	switch {
	case n < 64:
		divisor := uint64(1) << uint(n)
		quo = mag >> uint(n)
		part = classifyU64(mag&(divisor-1), divisor)
	case n == 64:
		// 2^64 doesn't fit in a uint64 divisor; mag (at most 1<<63, from
		// MinInt64) is always less than it, and hits exactly half only
		// when mag == 1<<63.
		if mag == 1<<63 {
			part = PartEqualToHalf
		} else {
			part = PartLessThanHalf
		}
	default:
		// n > 64: mag < 2^64 <= 2^(n-1), so the discarded fraction is
		// always strictly less than half; there's no divisor left to
		// classify against.
		part = PartLessThanHalf
	}

	inc, err := roundingIncrement(rounding, sign, quo%2 == 1, part)
	if err != nil {
		return 0, roundingNecessaryErr(op, u)
	}

	return int64(quo)*sign + inc, nil
}

// roundToPrecision rounds u (at the given scale) to the nearest multiple
// of 10^(scale-precision), keeping the result expressed at the original
// scale (i.e. zeroing out the digits beyond precision rather than
// changing the value's scale) — "Round" in spec section 4.10.
func roundToPrecision(op string, u int64, scale, precision Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if precision < 0 || precision > scale {
		return 0, &RangeError{Op: op, Msg: "precision out of range"}
	}
	if precision == scale {
		return u, nil
	}

	n := int(scale - precision)
	truncated, err := divideByPowerOf10(op, u, n, rounding, overflow)
	if err != nil {
		return 0, err
	}
	return multiplyByPowerOf10(op, truncated, n, RoundUnnecessary, overflow)
}
