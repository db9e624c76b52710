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

import (
	"math"
	"math/big"

	"github.com/ericlagergren/decimal"
)

// This file implements spec section 4.9's conversions: FromDouble (IEEE-754
// to decimal, via raw mantissa-bit decomposition rather than a text or
// big.Float round trip, per DESIGN.md's standard-library justification),
// ToDouble (a big.Float division rounded to the nearest float64; the
// rounding mode is not consulted), and FromBigDecimal/ToBigDecimal (against
// github.com/ericlagergren/decimal, the external arbitrary-precision
// collaborator this package is tested against, grounded on the teacher's
// own use of *decimal.Big as its test-vector type in fix64_testdata.go).

// pow5 holds 5^0..5^18 — the odd factor of 10^scale, used to rescale an
// IEEE-754 mantissa exactly without ever forming 10^scale as a
// freestanding multiplier (5^scale alone already exceeds the precision of
// a plain float multiply).
var pow5 = [MaxScale + 1]uint64{
	1, 5, 25, 125, 625, 3_125, 15_625, 78_125, 390_625, 1_953_125,
	9_765_625, 48_828_125, 244_140_625, 1_220_703_125, 6_103_515_625,
	30_517_578_125, 152_587_890_625, 762_939_453_125, 3_814_697_265_625,
}

// fromDouble computes round(f * 10^scale) directly from f's IEEE-754 bit
// pattern: f = sign * mantissa * 2^e exactly (mantissa an integer,
// including the implicit leading bit for normal numbers), so
// f*10^scale = sign * (mantissa*5^scale) * 2^(e+scale) exactly; the only
// rounding needed is for the 2^(e+scale) factor when its exponent is
// negative.
func fromDouble(op string, f float64, scale Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &RangeError{Op: op, Msg: "value is not finite"}
	}
	if f == 0 {
		return 0, nil
	}

	bits := math.Float64bits(f)
	sign := int64(1)
	if bits>>63 == 1 {
		sign = -1
	}
	biasedExp := int((bits >> 52) & 0x7FF)
	frac := bits & (1<<52 - 1)

	var mantissa uint64
	var e int
	if biasedExp == 0 {
		mantissa = frac
		e = -1074
	} else {
		mantissa = frac | (1 << 52)
		e = biasedExp - 1023 - 52
	}

	m128 := mul64To128(mantissa, pow5[scale])
	shift := e + int(scale)

	if shift >= 0 {
		if shift >= 128 {
			if overflow == OverflowChecked {
				return 0, overflowErr(op)
			}
			return 0, nil
		}
		shifted := m128.shiftLeft(uint(shift))
		if overflow == OverflowChecked && shifted.Hi != 0 {
			return 0, overflowErr(op)
		}
		return applyMagnitudeSign(op, shifted.Lo, sign, overflow)
	}

	k := -shift
	var quoMag uint64
	var part TruncatedPart
	if k > 100 {
		// m128 < 2^95 always (mantissa < 2^53, 5^scale < 2^42 for
		// scale<=18), so for k>100 the quotient is unconditionally zero
		// and the discarded fraction unconditionally less than half.
		quoMag = 0
		part = PartLessThanHalf
	} else {
		shifted := m128.shiftRight(uint(k))
		back := shifted.shiftLeft(uint(k))
		rem := m128.sub(back)
		divisor := UInt128{Lo: 1}.shiftLeft(uint(k))
		part = truncatedPartFor128(rem, divisor)
		quoMag = shifted.Lo
	}

	inc, err := roundingIncrement(rounding, sign, quoMag%2 == 1, part)
	if err != nil {
		return 0, roundingNecessaryErr(op, int64(math.Float64bits(f)))
	}
	if inc != 0 {
		quoMag++
	}
	return applyMagnitudeSign(op, quoMag, sign, overflow)
}

// toDouble converts u (at the given scale) to the nearest representable
// float64, via a correctly-rounded big.Float division — math/big is
// stdlib, but no library in the pack performs correctly-rounded
// arbitrary-ratio to IEEE-754 conversion either, so this shares
// convert.go's standard-library justification alongside fromDouble's bit
// decomposition.
func toDouble(u int64, scale Scale) float64 {
	st := scaleTableFor(scale)
	num := new(big.Float).SetPrec(128).SetInt64(u)
	den := new(big.Float).SetPrec(128).SetInt64(st.factor)
	result, _ := new(big.Float).SetPrec(128).Quo(num, den).Float64()
	return result
}

// toBigDecimal returns u (at the given scale) as an arbitrary-precision
// *decimal.Big, exactly.
func toBigDecimal(u int64, scale Scale) *decimal.Big {
	return new(decimal.Big).SetMantScale(u, int(scale))
}

// bigDecimalRoundingModes maps this package's RoundingMode to its
// equivalent in ericlagergren/decimal's Context.RoundingMode. RoundUnnecessary
// has no entry: fromBigDecimal checks it separately.
var bigDecimalRoundingModes = map[RoundingMode]decimal.RoundingMode{
	RoundUp:       decimal.AwayFromZero,
	RoundDown:     decimal.ToZero,
	RoundCeiling:  decimal.ToPositiveInf,
	RoundFloor:    decimal.ToNegativeInf,
	RoundHalfUp:   decimal.ToNearestAway,
	RoundHalfDown: decimal.ToNearestTowardZero,
	RoundHalfEven: decimal.ToNearestEven,
}

// fromBigDecimal converts an arbitrary-precision *decimal.Big to this
// package's unscaled representation at the given scale, rounding per
// spec section 4.9.
func fromBigDecimal(op string, bd *decimal.Big, scale Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if !bd.IsFinite() {
		return 0, &RangeError{Op: op, Msg: "value is not finite"}
	}

	scaleFactor := new(decimal.Big).SetMantScale(1, -int(scale))
	scaled := new(decimal.Big).Mul(bd, scaleFactor)

	if rounding == RoundUnnecessary {
		if !scaled.IsInt() {
			return 0, roundingNecessaryErr(op)
		}
	} else {
		mode, ok := bigDecimalRoundingModes[rounding]
		if !ok {
			mode = decimal.ToNearestEven
		}
		scaled.Context.RoundingMode = mode
		scaled.Quantize(0)
	}

	u, ok := scaled.Int64()
	if !ok && overflow == OverflowChecked {
		return 0, overflowErr(op)
	}
	return u, nil
}

// unscaledToUnscaled converts an unscaled value from one scale to
// another, rounding when the target scale is smaller.
func unscaledToUnscaled(op string, u int64, from, to Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if from == to {
		return u, nil
	}
	if to > from {
		return multiplyByPowerOf10(op, u, int(to-from), rounding, overflow)
	}
	return divideByPowerOf10(op, u, int(from-to), rounding, overflow)
}
