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
	"math/rand"

	"github.com/ericlagergren/decimal"
)

// This file is the fuzz/equivalence-oracle harness spec section 8 calls
// for: random operands plus boundary values, run through every operation
// across the full (scale, rounding, overflow) space, each checked against
// an arbitrary-precision reference rather than a hand-computed literal.
// mul_test.go/div_test.go/pow_test.go/sqrt_test.go each wire one
// operation's TestXxxAgainstOracle into this shared machinery.
//
// The reference for mul/div/pow is github.com/ericlagergren/decimal's
// *decimal.Big — the same external collaborator convert.go already uses
// for FromBigDecimal/ToBigDecimal and accumulator.go uses for Pow. sqrt's
// reference uses math/big.Float instead, for the same reason toDouble
// does (DESIGN.md's standard-library justification): a correctly-rounded
// square root is what's needed to classify the discarded fraction, and no
// pack library offers one over *decimal.Big.

// oracleOperationSeed fixes every fuzz test's PRNG so failures reproduce
// and runs are deterministic, while still drawing from the full int64
// operand space rather than a handful of hand-picked literals.
const oracleOperationSeed = 20260730

var oracleScales = []Scale{0, 1, 2, 6, 9, 12, 18}

var oracleRoundingModes = []RoundingMode{
	RoundUp, RoundDown, RoundCeiling, RoundFloor,
	RoundHalfUp, RoundHalfDown, RoundHalfEven,
}

var oracleOverflowModes = []OverflowMode{OverflowChecked, OverflowUnchecked}

// oracleOperands returns boundary values (zero, unit magnitudes, the
// scale's "one" and "maxInteger", the int64 extremes) plus a fixed-seed
// sample of uniformly random int64s, for a given scale.
func oracleOperands(rng *rand.Rand, scale Scale) []int64 {
	st := scaleTableFor(scale)
	vals := []int64{
		0, 1, -1, st.factor, -st.factor, st.maxInteger, -st.maxInteger,
		math.MaxInt64, math.MinInt64, math.MaxInt64 / 2, math.MinInt64 / 2,
	}
	for i := 0; i < 10; i++ {
		vals = append(vals, int64(rng.Uint64()))
	}
	return vals
}

// oracleSmallExponents bounds the exponents the Pow fuzz test tries:
// exponent magnitudes near MinPowExponent/MaxPowExponent are already
// covered by pow_test.go's literal range/overflow tests, and looping an
// independent reference implementation out to exponent ~1e9 per fuzz case
// isn't practical. A handful of small magnitudes (including negative and
// zero) is enough to exercise the accumulator's squaring loop against an
// independent computation.
var oracleSmallExponents = []int{-5, -3, -2, -1, 0, 1, 2, 3, 5, 8}

// oracleQuantize rounds bd — an exact arbitrary-precision value — to an
// integer per mode, reporting whether it fits an int64 and whether the
// rounding itself succeeded (false only for RoundUnnecessary on an
// inexact value). Deliberately reimplemented rather than calling this
// package's own fromBigDecimal, so it does not share that function's code
// path; it does share convert.go's bigDecimalRoundingModes table.
func oracleQuantize(bd *decimal.Big, rounding RoundingMode) (val int64, fits bool, rounded bool) {
	if rounding == RoundUnnecessary {
		if !bd.IsInt() {
			return 0, false, false
		}
		v, ok := bd.Int64()
		return v, ok, true
	}

	mode, ok := bigDecimalRoundingModes[rounding]
	if !ok {
		mode = decimal.ToNearestEven
	}

	result := new(decimal.Big).Copy(bd)
	result.Context.RoundingMode = mode
	result.Quantize(0)

	v, fitsInt64 := result.Int64()
	return v, fitsInt64, true
}

// oracleMulWant computes the arbitrary-precision expected result of
// mul(a, b, scale, ...): the exact true-value product of a and b,
// rescaled back up by 10^scale (mirroring mul's own round(a*b/10^scale)
// contract) and quantized per rounding.
func oracleMulWant(a, b int64, scale Scale, rounding RoundingMode) (val int64, fits bool) {
	product := new(decimal.Big).Mul(toBigDecimal(a, scale), toBigDecimal(b, scale))
	scaleFactor := new(decimal.Big).SetMantScale(1, -int(scale))
	scaled := new(decimal.Big).Mul(product, scaleFactor)
	val, fits, _ = oracleQuantize(scaled, rounding)
	return val, fits
}

// oracleDivWant computes the arbitrary-precision expected result of
// div(a, b, scale, ...): the exact ratio a/b (the scale cancels between
// the two operands' true values) scaled up by 10^scale and quantized per
// rounding. b == 0 is handled by the caller (div's own zero-divisor path
// is already covered by TestDivByZero without an oracle).
func oracleDivWant(a, b int64, scale Scale, rounding RoundingMode) (val int64, fits bool) {
	ratio := new(decimal.Big)
	ratio.Context.Precision = 60
	ratio.Quo(new(decimal.Big).SetMantScale(a, 0), new(decimal.Big).SetMantScale(b, 0))

	scaleFactor := new(decimal.Big).SetMantScale(1, -int(scale))
	scaled := new(decimal.Big).Mul(ratio, scaleFactor)
	val, fits, _ = oracleQuantize(scaled, rounding)
	return val, fits
}

// oraclePowWant computes the arbitrary-precision expected result of
// pow(u, exponent, scale, ...) via plain repeated big-decimal
// multiplication (not squaring — a structurally different loop from
// accumulator.go's, so it doesn't just reproduce whatever bug the
// production code might have) at a guard precision well beyond
// accumulator.go's own, then a single quantization per rounding.
// Negative exponents invert the accumulated positive power.
func oraclePowWant(u int64, exponent int, scale Scale, rounding RoundingMode) (val int64, fits bool, divByZero bool) {
	negative := exponent < 0
	e := exponent
	if negative {
		e = -e
	}

	const guardPrecision = 120
	base := toBigDecimal(u, scale)
	acc := new(decimal.Big).SetMantScale(1, 0)
	acc.Context.Precision = guardPrecision
	for i := 0; i < e; i++ {
		next := new(decimal.Big)
		next.Context.Precision = guardPrecision
		next.Mul(acc, base)
		acc = next
	}

	if negative {
		if acc.Sign() == 0 {
			return 0, false, true
		}
		inv := new(decimal.Big)
		inv.Context.Precision = guardPrecision
		inv.Quo(new(decimal.Big).SetMantScale(1, 0), acc)
		acc = inv
	}

	scaleFactor := new(decimal.Big).SetMantScale(1, -int(scale))
	scaled := new(decimal.Big).Mul(acc, scaleFactor)
	val, fits, _ = oracleQuantize(scaled, rounding)
	return val, fits, false
}

// oracleBigFloatPrecision is the working precision (in bits) the sqrt
// oracle below computes at — comfortably enough to distinguish a true
// half-way tie from a near-tie for any operand this harness generates.
const oracleBigFloatPrecision = 200

// classifyBigFloatFraction classifies frac (already known to be in
// [0,1)) against one half, the same three/four-way split classifyU64
// gives an integer remainder.
func classifyBigFloatFraction(frac *big.Float) TruncatedPart {
	if frac.Sign() == 0 {
		return PartZero
	}
	half := new(big.Float).SetPrec(frac.Prec()).SetFloat64(0.5)
	switch frac.Cmp(half) {
	case -1:
		return PartLessThanHalf
	case 1:
		return PartGreaterThanHalf
	default:
		return PartEqualToHalf
	}
}

// oracleSqrtWant computes the arbitrary-precision expected result of
// sqrtDecimal(u, scale, ...) via math/big.Float's correctly-rounded
// Sqrt, classifying the discarded fraction the same way sqrt.go's own
// classifySqrtPart does for its 128-bit remainder.
func oracleSqrtWant(u int64, scale Scale, rounding RoundingMode) (val int64, err error) {
	st := scaleTableFor(scale)
	prec := uint(oracleBigFloatPrecision)

	num := new(big.Float).SetPrec(prec).SetInt64(u)
	den := new(big.Float).SetPrec(prec).SetInt64(st.factor)
	trueVal := new(big.Float).SetPrec(prec).Quo(num, den)

	root := new(big.Float).SetPrec(prec).Sqrt(trueVal)
	scaled := new(big.Float).SetPrec(prec).Mul(root, new(big.Float).SetPrec(prec).SetInt64(st.factor))

	floorInt, _ := scaled.Int(nil)
	floorVal := floorInt.Int64()
	frac := new(big.Float).SetPrec(prec).Sub(scaled, new(big.Float).SetPrec(prec).SetInt64(floorVal))
	part := classifyBigFloatFraction(frac)

	// u/10^scale is inexact in binary, so an exact root can come out with a
	// tiny spurious residue on either side; settle exact roots in integers.
	target := new(big.Int).Mul(big.NewInt(u), big.NewInt(st.factor))
	for _, cand := range []int64{floorVal, floorVal + 1} {
		c := big.NewInt(cand)
		if c.Mul(c, c).Cmp(target) == 0 {
			floorVal, part = cand, PartZero
		}
	}

	if rounding == RoundUnnecessary {
		if part != PartZero {
			return 0, roundingNecessaryErr("sqrt", u)
		}
		return floorVal, nil
	}

	inc, rerr := roundingIncrement(rounding, 1, floorVal%2 == 1, part)
	if rerr != nil {
		return 0, roundingNecessaryErr("sqrt", u)
	}
	return floorVal + inc, nil
}
