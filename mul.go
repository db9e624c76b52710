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

import "math/bits"

// This file implements spec section 4.4: decimal multiplication and
// squaring. The overall shape — reduce to unsigned magnitudes, compute,
// reapply sign, checking for the one unrepresentable magnitude at the
// boundary — is the teacher's Fix64.FMD / Fix64.Abs / UFix64.ApplySign
// pattern in fix64.go, generalized from the teacher's fixed 8-decimal
// scale to an arbitrary runtime scale and the full scale-9 split.

const split09 = 1_000_000_000

// mulU64Checked multiplies two uint64 magnitudes, reporting whether the
// product overflowed 64 bits (detected directly off bits.Mul64's high
// word, the native 64x64->128 multiply instruction on most platforms —
// cheaper than synthesizing a UInt128 when all we need is a single
// overflow bit).
func mulU64Checked(a, b uint64) (product uint64, overflowed bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

// mul computes round(u1*u2/10^scale), the decimal product, per spec
// section 4.4.
func mul(op string, u1, u2 int64, scale Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	st := scaleTableFor(scale)

	if u1 == 0 || u2 == 0 {
		return 0, nil
	}

	sign := signOf(u1) * signOf(u2)
	a := absU64(u1)
	b := absU64(u2)
	factor := uint64(st.factor)

	// Special case: either factor fits exactly as a power of ten already
	// present in one operand (multiplying by "one" = 10^scale).
	if a == factor {
		return applyMagnitudeSign(op, b, sign, overflow)
	}
	if b == factor {
		return applyMagnitudeSign(op, a, sign, overflow)
	}

	magQuo, truncatedIsOdd, part, err := mulMagnitude(a, b, factor, scale, overflow)
	if err != nil {
		return 0, err
	}

	inc, err := roundingIncrement(rounding, sign, truncatedIsOdd, part)
	if err != nil {
		return 0, roundingNecessaryErr(op, u1, u2)
	}

	return finishMagnitude(op, magQuo, sign, inc, overflow)
}

// sqr computes round(u*u/10^scale) by calling mul with both operands equal;
// it has no squaring-specific fast path of its own.
func sqr(op string, u int64, scale Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	return mul(op, u, u, scale, rounding, overflow)
}

// mulMagnitude computes the unsigned quotient magnitude of a*b/factor,
// along with the rounding inputs (oddness of the truncated result's last
// digit, and the classified truncated part). Under OverflowChecked, any
// intermediate 64-bit overflow raises immediately; under OverflowUnchecked
// every intermediate wraps modulo 2^64 instead, per spec section 4.12/7 —
// an UNCHECKED operation never raises for overflow.
func mulMagnitude(a, b, factor uint64, scale Scale, overflow OverflowMode) (quo uint64, truncatedIsOdd bool, part TruncatedPart, err error) {
	if scale <= 9 {
		return mulMagnitudeSmallScale(a, b, factor, overflow)
	}
	return mulMagnitudeLargeScale(a, b, factor, overflow)
}

// mulMagnitudeSmallScale implements spec 4.4's scale<=9 path: split each
// operand into integer/fractional halves at the scale factor, where the
// fractional*fractional cross term (both < factor <= 10^9) is guaranteed
// to fit in a uint64 product without a 128-bit intermediate.
func mulMagnitudeSmallScale(a, b, factor uint64, overflow OverflowMode) (quo uint64, truncatedIsOdd bool, part TruncatedPart, err error) {
	i1, f1 := a/factor, a%factor
	i2, f2 := b/factor, b%factor

	ii, overflowed := mulU64Checked(i1, i2)
	if overflowed && overflow == OverflowChecked {
		return 0, false, PartZero, overflowErr("multiply", int64(a), int64(b))
	}
	term1, overflowed := mulU64Checked(ii, factor)
	if overflowed && overflow == OverflowChecked {
		return 0, false, PartZero, overflowErr("multiply", int64(a), int64(b))
	}

	term2 := i1 * f2 // i1 < MaxInt64/factor, f2 < factor <= 1e9: can't overflow
	term3 := i2 * f1

	ff := f1 * f2 // both < 1e9, product < 1e18: fits comfortably in uint64
	ffQuo := ff / factor
	ffRem := ff % factor

	sum := term1
	for _, term := range []uint64{term2, term3, ffQuo} {
		var c uint64
		sum, c = bits.Add64(sum, term, 0)
		if c != 0 && overflow == OverflowChecked {
			return 0, false, PartZero, overflowErr("multiply", int64(a), int64(b))
		}
	}

	return sum, sum%2 == 1, classifyU64(ffRem, factor), nil
}

// mulMagnitudeLargeScale implements spec 4.4's scale>9 path: split each
// fractional half again at 10^9, forming the cross-term expansion
// f1*f2 = 10^18*(hf1*hf2) + 10^9*(hf1*lf2 + hf2*lf1) + lf1*lf2 and scaling
// it by 10^-scale via a full 128-bit intermediate (UInt128), since at
// these scales the combined magnitude genuinely exceeds 64 bits.
func mulMagnitudeLargeScale(a, b, factor uint64, overflow OverflowMode) (quo uint64, truncatedIsOdd bool, part TruncatedPart, err error) {
	i1, f1 := a/factor, a%factor
	i2, f2 := b/factor, b%factor

	ii, overflowed := mulU64Checked(i1, i2)
	if overflowed && overflow == OverflowChecked {
		return 0, false, PartZero, overflowErr("multiply", int64(a), int64(b))
	}
	term1, overflowed := mulU64Checked(ii, factor)
	if overflowed && overflow == OverflowChecked {
		return 0, false, PartZero, overflowErr("multiply", int64(a), int64(b))
	}
	term2 := i1 * f2
	term3 := i2 * f1

	hf1, lf1 := f1/split09, f1%split09
	hf2, lf2 := f2/split09, f2%split09

	// f1*f2, assembled as a UInt128 from its three base-10^9 digits so the
	// 10^18 coefficient on hf1*hf2 can't silently truncate.
	ffHi := hf1 * hf2                // < 10^18, fits
	ffMid := hf1*lf2 + hf2*lf1       // < 2e18, fits
	ffLo := lf1 * lf2                // < 1e18, fits
	ff := mul64To128(ffHi, 1_000_000_000_000_000_000) // ffHi * 10^18
	ffMidScaled := mul64To128(ffMid, split09)
	ff, carry := ff.add(ffMidScaled)
	_ = carry // ffHi*1e18 + ffMid*1e9 is bounded by f1*f2 < factor^2 <= 1e36, which fits in 128 bits
	ff, carry = ff.add(UInt128{Lo: ffLo})
	_ = carry

	ffQuo64, ffRem64 := div128By64(ff, factor)

	sum := term1
	for _, term := range []uint64{term2, term3, ffQuo64} {
		var c uint64
		sum, c = bits.Add64(sum, term, 0)
		if c != 0 && overflow == OverflowChecked {
			return 0, false, PartZero, overflowErr("multiply", int64(a), int64(b))
		}
	}

	return sum, sum%2 == 1, classifyU64(ffRem64, factor), nil
}

// applyMagnitudeSign applies the given sign (+1/-1) to an unsigned
// magnitude that is known to require no rounding, reporting an
// OverflowError in Checked mode if the magnitude doesn't fit the signed
// range in that direction (mag >= 2^63 for sign +1, mag > 2^63 for sign
// -1; 2^63 itself is math.MinInt64's magnitude and fits only as a
// negative value). In Unchecked mode such a magnitude wraps.
func applyMagnitudeSign(op string, mag uint64, sign int64, overflow OverflowMode) (int64, error) {
	if sign < 0 {
		if mag == 1<<63 {
			return minInt64, nil
		}
		if mag > 1<<63 {
			if overflow == OverflowChecked {
				return 0, overflowErr(op)
			}
			return -int64(mag), nil // wraps
		}
		return -int64(mag), nil
	}

	if mag >= 1<<63 {
		if overflow == OverflowChecked {
			return 0, overflowErr(op)
		}
		return int64(mag), nil // wraps into negative territory
	}
	return int64(mag), nil
}

// finishMagnitude applies the rounding increment and sign to a computed
// magnitude, with the same MinInt64 boundary handling as
// applyMagnitudeSign.
func finishMagnitude(op string, mag uint64, sign int64, inc int64, overflow OverflowMode) (int64, error) {
	if inc != 0 {
		mag++
		if mag == 0 && overflow == OverflowChecked {
			return 0, overflowErr(op) // the increment carried out of 64 bits
		}
	}
	return applyMagnitudeSign(op, mag, sign, overflow)
}
