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

// Package decimal64 implements fixed-point decimal arithmetic on a single
// 64-bit signed storage word. A value is an unscaled int64 u paired with a
// scale s in [0, 18]; its mathematical value is u * 10^-s. All arithmetic
// is exact integer arithmetic, with 128-bit intermediates synthesized from
// 32/64-bit halves where a single int64 can't hold the product.
package decimal64

// Scale is the number of digits following the decimal point. Every
// operation in this package is parameterized by a Scale in [0, MaxScale].
type Scale int

// MaxScale is the largest Scale this package supports. 10^18 < 2^63 < 10^19,
// so 18 is the largest scale for which 10^s still fits in a positive int64.
const MaxScale Scale = 18

// RoundingMode selects how a truncated result is adjusted based on the
// discarded remainder. UNNECESSARY asserts the remainder is exactly zero.
type RoundingMode uint8

const (
	RoundUp RoundingMode = iota
	RoundDown
	RoundCeiling
	RoundFloor
	RoundHalfUp
	RoundHalfDown
	RoundHalfEven
	RoundUnnecessary
)

func (r RoundingMode) String() string {
	switch r {
	case RoundUp:
		return "UP"
	case RoundDown:
		return "DOWN"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfDown:
		return "HALF_DOWN"
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundUnnecessary:
		return "UNNECESSARY"
	default:
		return "INVALID"
	}
}

// reciprocal swaps a rounding mode for the direction that yields the correct
// result when the operation it was chosen for is inverted: UP<->DOWN, CEILING<->FLOOR,
// the HALF_* modes and UNNECESSARY are unchanged.
func (r RoundingMode) reciprocal() RoundingMode {
	switch r {
	case RoundUp:
		return RoundDown
	case RoundDown:
		return RoundUp
	case RoundCeiling:
		return RoundFloor
	case RoundFloor:
		return RoundCeiling
	default:
		return r
	}
}

// OverflowMode selects whether an operation wraps on overflow (matching
// native two's-complement int64 semantics) or raises an OverflowError.
type OverflowMode uint8

const (
	OverflowUnchecked OverflowMode = iota
	OverflowChecked
)

func (o OverflowMode) String() string {
	if o == OverflowChecked {
		return "CHECKED"
	}
	return "UNCHECKED"
}

// TruncatedPart classifies a discarded remainder against the divisor (or
// scale factor) it was truncated from, for consumption by a RoundingMode.
type TruncatedPart uint8

const (
	PartZero TruncatedPart = iota
	PartLessThanHalf
	PartEqualToHalf
	PartGreaterThanHalf
)

// truncatedPartFor classifies |remainder| against |divisor| without
// overflowing: rather than comparing 2|remainder| to |divisor| directly
// (which can overflow when |remainder| is near math.MaxInt64), it compares
// |remainder| to |divisor| - |remainder|, which is equivalent and always
// representable because 0 <= |remainder| < |divisor|.
func truncatedPartFor(remainder, divisor int64) TruncatedPart {
	if remainder == 0 {
		return PartZero
	}

	absRem := remainder
	if absRem < 0 {
		absRem = -absRem
	}
	absDiv := divisor
	if absDiv < 0 {
		absDiv = -absDiv
	}

	half := absDiv - absRem
	switch {
	case absRem < half:
		return PartLessThanHalf
	case absRem == half:
		return PartEqualToHalf
	default:
		return PartGreaterThanHalf
	}
}

// truncatedPartFor128 is the UInt128 analogue of truncatedPartFor, used when
// the remainder/divisor pair involved a 128-bit intermediate (Div's slow
// path, Sqrt's residual check).
func truncatedPartFor128(remainder, divisor UInt128) TruncatedPart {
	if remainder.isZero() {
		return PartZero
	}

	half := divisor.sub(remainder)
	switch remainder.cmp(half) {
	case -1:
		return PartLessThanHalf
	case 0:
		return PartEqualToHalf
	default:
		return PartGreaterThanHalf
	}
}

// roundingIncrement implements the table in spec section 4.2:
// calculateRoundingIncrement(sign, truncatedIsOdd, part) -> {0, sign}.
// sign must be +1 or -1 (the sign of the untruncated mathematical result).
// truncatedIsOdd is whether the truncated magnitude's least significant
// digit is odd, needed only for HALF_EVEN.
func roundingIncrement(mode RoundingMode, sign int64, truncatedIsOdd bool, part TruncatedPart) (int64, error) {
	if part == PartZero {
		return 0, nil
	}

	switch mode {
	case RoundUp:
		return sign, nil
	case RoundDown:
		return 0, nil
	case RoundCeiling:
		if sign > 0 {
			return sign, nil
		}
		return 0, nil
	case RoundFloor:
		if sign < 0 {
			return sign, nil
		}
		return 0, nil
	case RoundHalfUp:
		if part == PartEqualToHalf || part == PartGreaterThanHalf {
			return sign, nil
		}
		return 0, nil
	case RoundHalfDown:
		if part == PartGreaterThanHalf {
			return sign, nil
		}
		return 0, nil
	case RoundHalfEven:
		switch part {
		case PartGreaterThanHalf:
			return sign, nil
		case PartEqualToHalf:
			if truncatedIsOdd {
				return sign, nil
			}
			return 0, nil
		default:
			return 0, nil
		}
	case RoundUnnecessary:
		return 0, roundingNecessaryErr("round", int64(sign))
	default:
		return 0, roundingNecessaryErr("round", int64(sign))
	}
}

// signOf returns +1 for non-negative values and -1 for negative ones,
// matching the "sign" parameter expected by roundingIncrement (zero is
// treated as positive, consistent with CEILING/FLOOR never firing on an
// exact zero remainder in the first place).
func signOf(v int64) int64 {
	if v < 0 {
		return -1
	}
	return 1
}
