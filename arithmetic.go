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

// This file implements spec section 4.10/6's Arithmetic facade: a small
// immutable object carrying (scale, rounding, overflow) that offers every
// kernel operation over raw unscaled int64 values. Grounded on the
// teacher's package-level Fix64Scale/Fix128Scale dispatch tables (fix64.go,
// fix128.go), generalized from the teacher's compile-time-fixed scale and
// single rounding behavior to a runtime (scale, rounding, overflow) triple
// selected out of an eagerly built registry, per spec section 4.10's
// "4 x 9 x 19" sizing (here 2 overflow modes x 8 rounding modes x 19
// scales = 304 instances).

// Arithmetic is an immutable (scale, rounding, overflow) configuration
// offering the full decimal operation surface over unscaled int64 values.
// The zero value is not valid; obtain instances via Get.
type Arithmetic struct {
	scale    Scale
	rounding RoundingMode
	overflow OverflowMode
	st       *scaleTable
}

// arithmeticRegistry is the eagerly built [overflow][rounding][scale]
// registry of Arithmetic instances, memoizing every valid configuration at
// package init the way the teacher's scale dispatch tables are package-level
// vars built once.
var arithmeticRegistry = buildArithmeticRegistry()

func buildArithmeticRegistry() [2][8][MaxScale + 1]Arithmetic {
	var reg [2][8][MaxScale + 1]Arithmetic
	for o := OverflowMode(0); o <= OverflowChecked; o++ {
		for r := RoundingMode(0); r <= RoundUnnecessary; r++ {
			for s := Scale(0); s <= MaxScale; s++ {
				reg[o][r][s] = Arithmetic{
					scale:    s,
					rounding: r,
					overflow: o,
					st:       scaleTableFor(s),
				}
			}
		}
	}
	return reg
}

// Get returns the memoized Arithmetic instance for the given configuration.
// Panics if scale is out of [0, MaxScale] — an internal precondition
// violation, not a runtime input failure.
func Get(scale Scale, rounding RoundingMode, overflow OverflowMode) *Arithmetic {
	if scale < 0 || scale > MaxScale {
		panic("decimal64: scale out of range [0,18]")
	}
	return &arithmeticRegistry[overflow][rounding][scale]
}

// Scale returns this instance's scale.
func (a *Arithmetic) Scale() Scale { return a.scale }

// Rounding returns this instance's rounding mode.
func (a *Arithmetic) Rounding() RoundingMode { return a.rounding }

// Overflow returns this instance's overflow mode.
func (a *Arithmetic) Overflow() OverflowMode { return a.overflow }

// with returns the sibling instance sharing this one's scale and overflow
// mode but a different rounding mode — used by the *WithRounding operation
// variants that override the instance's configured policy per call, per
// spec section 6.
func (a *Arithmetic) with(rounding RoundingMode) *Arithmetic {
	return &arithmeticRegistry[a.overflow][rounding][a.scale]
}

// Add returns u1 + u2, both already at this instance's scale.
func (a *Arithmetic) Add(u1, u2 int64) (int64, error) {
	if a.overflow == OverflowChecked {
		return checkedAdd("add", u1, u2)
	}
	return u1 + u2, nil
}

// Subtract returns u1 - u2, both already at this instance's scale.
func (a *Arithmetic) Subtract(u1, u2 int64) (int64, error) {
	if a.overflow == OverflowChecked {
		return checkedSub("subtract", u1, u2)
	}
	return u1 - u2, nil
}

// Multiply returns round(u1*u2/10^scale).
func (a *Arithmetic) Multiply(u1, u2 int64) (int64, error) {
	return mul("multiply", u1, u2, a.scale, a.rounding, a.overflow)
}

// Square returns round(u*u/10^scale).
func (a *Arithmetic) Square(u int64) (int64, error) {
	return sqr("square", u, a.scale, a.rounding, a.overflow)
}

// Divide returns round(u1*10^scale/u2).
func (a *Arithmetic) Divide(u1, u2 int64) (int64, error) {
	return div("divide", u1, u2, a.scale, a.rounding, a.overflow)
}

// Invert returns round(10^scale/u), the reciprocal of u as a decimal at
// this instance's scale.
func (a *Arithmetic) Invert(u int64) (int64, error) {
	return invert("invert", u, a.scale, a.rounding, a.overflow)
}

// Sqrt returns round(sqrt(u)) at this instance's scale, or a DomainError
// if u is negative.
func (a *Arithmetic) Sqrt(u int64) (int64, error) {
	return sqrtDecimal("sqrt", u, a.scale, a.rounding, a.overflow)
}

// Pow returns round(u^exponent) at this instance's scale, exponent in
// [MinPowExponent, MaxPowExponent].
func (a *Arithmetic) Pow(u int64, exponent int) (int64, error) {
	return pow("pow", u, exponent, a.scale, a.rounding, a.overflow)
}

// Avg returns round((u1+u2)/2) without intermediate overflow.
func (a *Arithmetic) Avg(u1, u2 int64) (int64, error) {
	return avg("avg", u1, u2, a.rounding)
}

// Negate returns -u.
func (a *Arithmetic) Negate(u int64) (int64, error) {
	return negate("negate", u, a.overflow)
}

// Abs returns |u|.
func (a *Arithmetic) Abs(u int64) (int64, error) {
	return abs("abs", u, a.overflow)
}

// Round rounds u to the given precision (a scale <= this instance's scale),
// keeping the result expressed at this instance's scale.
func (a *Arithmetic) Round(u int64, precision Scale) (int64, error) {
	return roundToPrecision("round", u, a.scale, precision, a.rounding, a.overflow)
}

// ShiftLeft returns round(u * 2^n), the binary (power-of-two) scaling
// operation — distinct from MultiplyByPowerOf10's decimal scaling.
func (a *Arithmetic) ShiftLeft(u int64, n int) (int64, error) {
	return shiftLeft("shiftLeft", u, n, a.rounding, a.overflow)
}

// ShiftRight returns round(u / 2^n), the binary analogue of DivideByPowerOf10.
func (a *Arithmetic) ShiftRight(u int64, n int) (int64, error) {
	return shiftRight("shiftRight", u, n, a.rounding, a.overflow)
}

// MultiplyByPowerOf10 returns round(u * 10^n); n may be negative.
func (a *Arithmetic) MultiplyByPowerOf10(u int64, n int) (int64, error) {
	return multiplyByPowerOf10("multiplyByPowerOf10", u, n, a.rounding, a.overflow)
}

// DivideByPowerOf10 returns round(u / 10^n); n may be negative.
func (a *Arithmetic) DivideByPowerOf10(u int64, n int) (int64, error) {
	return divideByPowerOf10("divideByPowerOf10", u, n, a.rounding, a.overflow)
}

// Compare returns -1, 0, or 1 as u1 is less than, equal to, or greater
// than u2 (both already at this instance's scale — a plain signed integer
// compare, since two values at the same scale order exactly as their
// unscaled representations).
func (a *Arithmetic) Compare(u1, u2 int64) int {
	switch {
	case u1 < u2:
		return -1
	case u1 > u2:
		return 1
	default:
		return 0
	}
}

// FromLong returns round(value * 10^scale), converting a plain integer to
// this instance's unscaled representation.
func (a *Arithmetic) FromLong(value int64) (int64, error) {
	return multiplyByPowerOf10("fromLong", value, int(a.scale), a.rounding, a.overflow)
}

// ToLong returns round(u / 10^scale), converting back to a plain integer.
func (a *Arithmetic) ToLong(u int64) (int64, error) {
	return divideByPowerOf10("toLong", u, int(a.scale), a.rounding, a.overflow)
}

// FromDouble converts f to this instance's unscaled representation.
func (a *Arithmetic) FromDouble(f float64) (int64, error) {
	return fromDouble("fromDouble", f, a.scale, a.rounding, a.overflow)
}

// ToDouble converts u (at this instance's scale) to the nearest
// representable float64.
func (a *Arithmetic) ToDouble(u int64) float64 {
	return toDouble(u, a.scale)
}

// FromUnscaled converts an unscaled value already expressed at srcScale to
// this instance's scale.
func (a *Arithmetic) FromUnscaled(unscaled int64, srcScale Scale) (int64, error) {
	return unscaledToUnscaled("fromUnscaled", unscaled, srcScale, a.scale, a.rounding, a.overflow)
}

// ToUnscaled converts u (at this instance's scale) to an unscaled value at
// dstScale.
func (a *Arithmetic) ToUnscaled(u int64, dstScale Scale) (int64, error) {
	return unscaledToUnscaled("toUnscaled", u, a.scale, dstScale, a.rounding, a.overflow)
}

// FromBigDecimal converts an arbitrary-precision *decimal.Big to this
// instance's unscaled representation.
func (a *Arithmetic) FromBigDecimal(bd *decimal.Big) (int64, error) {
	return fromBigDecimal("fromBigDecimal", bd, a.scale, a.rounding, a.overflow)
}

// ToBigDecimal converts u (at this instance's scale) to an exact
// arbitrary-precision *decimal.Big.
func (a *Arithmetic) ToBigDecimal(u int64) *decimal.Big {
	return toBigDecimal(u, a.scale)
}

// Parse parses s into this instance's unscaled representation.
func (a *Arithmetic) Parse(s string) (int64, error) {
	return parseDecimal("parse", s, a.scale, a.rounding, a.overflow)
}

// ToString renders u (at this instance's scale) in canonical decimal text.
func (a *Arithmetic) ToString(u int64) string {
	return formatDecimal(u, a.scale)
}

// MultiplyWithRounding is Multiply using an explicit rounding mode instead
// of this instance's configured one, per spec section 6's
// roundingMode-override variants.
func (a *Arithmetic) MultiplyWithRounding(u1, u2 int64, rounding RoundingMode) (int64, error) {
	return a.with(rounding).Multiply(u1, u2)
}

// DivideWithRounding is Divide using an explicit rounding mode.
func (a *Arithmetic) DivideWithRounding(u1, u2 int64, rounding RoundingMode) (int64, error) {
	return a.with(rounding).Divide(u1, u2)
}

// RoundWithRounding is Round using an explicit rounding mode.
func (a *Arithmetic) RoundWithRounding(u int64, precision Scale, rounding RoundingMode) (int64, error) {
	return a.with(rounding).Round(u, precision)
}
