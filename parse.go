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
	"regexp"
	"strconv"
	"strings"
)

// This file implements spec section 4.9's parse/toString: base-10 text with
// an optional sign, optional integer part, and optional fractional part,
// grounded on bantling-micro's math/decimal.go decimalRegex/StringToDecimal/
// String() — generalized from that teacher's single implicit truncation (no
// rounding mode, no scale parameter beyond what the string itself implies)
// to a target Scale and full RoundingMode/OverflowMode policy for fractional
// digits beyond the target scale.

// decimalLiteral matches an optional leading sign, zero or more integer
// digits, and an optional decimal point followed by zero or more fraction
// digits — the same shape as the teacher's decimalRegex, with the sign
// widened to accept a leading '+' as well as '-'.
var decimalLiteral = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]*))?$`)

// parseDecimal parses s into an unscaled int64 at the given scale. An empty
// integer part (e.g. "-.25") is accepted as zero; a fraction shorter than
// scale digits is zero-extended; a fraction longer than scale digits is
// rounded per the given RoundingMode. Mirrors the teacher's rejection of a
// string that matches the regex but contributes no digits at all.
func parseDecimal(op string, s string, scale Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	parts := decimalLiteral.FindStringSubmatch(s)
	if parts == nil {
		return 0, &ParseError{Input: s, Reason: "not a valid decimal literal"}
	}

	signText, intDigits, fracDigits := parts[1], parts[2], parts[3]
	if intDigits == "" && fracDigits == "" {
		return 0, &ParseError{Input: s, Reason: "no digits present"}
	}

	negative := signText == "-"

	st := scaleTableFor(scale)

	intMag, err := parseDigitsInt64(intDigits)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "integer part out of range"}
	}

	whole, err := checkedMul("parse", intMag, st.factor)
	if err != nil {
		if overflow == OverflowChecked {
			return 0, overflowErr(op, intMag)
		}
		whole = intMag * st.factor
	}

	keep, discard := fracDigits, ""
	if len(fracDigits) > int(scale) {
		keep, discard = fracDigits[:scale], fracDigits[scale:]
	}

	fracMag, err := parseDigitsInt64(keep)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "fraction part out of range"}
	}
	if len(keep) < int(scale) {
		padding := int(scale) - len(keep)
		factor := pow10[padding]
		fracMag *= factor
	}

	mag, err := checkedAdd("parse", whole, fracMag)
	if err != nil {
		if overflow == OverflowChecked {
			return 0, overflowErr(op, whole, fracMag)
		}
		mag = whole + fracMag
	}

	sign := int64(1)
	if negative {
		sign = -1
	}

	if discard != "" {
		part, truncatedIsOdd := classifyDiscardedDigits(discard, mag)
		inc, rErr := roundingIncrement(rounding, sign, truncatedIsOdd, part)
		if rErr != nil {
			return 0, roundingNecessaryErr(op, mag)
		}
		if inc != 0 {
			mag++ // inc carries the sign; mag is a magnitude
		}
	}

	return applyMagnitudeSign(op, uint64(mag), sign, overflow)
}

// parseDigitsInt64 converts a (possibly empty) run of ASCII digits to an
// int64, treating the empty string as zero, per spec section 4.9's
// empty-integer-part rule.
func parseDigitsInt64(digits string) (int64, error) {
	if digits == "" {
		return 0, nil
	}
	return strconv.ParseInt(digits, 10, 64)
}

// classifyDiscardedDigits classifies a run of fraction digits beyond the
// target scale against the halfway point, the textual analogue of
// truncatedPartFor: the first discarded digit alone tells us <5/=5/>5 unless
// it's exactly "5" followed by nothing but zeros.
func classifyDiscardedDigits(discard string, truncatedMag int64) (TruncatedPart, bool) {
	truncatedIsOdd := truncatedMag%2 != 0

	trimmed := strings.TrimRight(discard, "0")
	if trimmed == "" {
		return PartZero, truncatedIsOdd
	}

	first := trimmed[0]
	switch {
	case first < '5':
		return PartLessThanHalf, truncatedIsOdd
	case first > '5':
		return PartGreaterThanHalf, truncatedIsOdd
	default:
		if len(trimmed) == 1 {
			return PartEqualToHalf, truncatedIsOdd
		}
		return PartGreaterThanHalf, truncatedIsOdd
	}
}

// formatDecimal renders u (at the given scale) in canonical form: an
// optional leading "-", then the integer part, then (for scale > 0) a "."
// and exactly scale fraction digits — never trailing-zero-truncated, per
// spec section 6's text format. Grounded on the teacher's Decimal.String(),
// generalized from the teacher's fixed internal scale field to an explicit
// scale argument.
func formatDecimal(u int64, scale Scale) string {
	neg := u < 0
	mag := uint64(u)
	if neg {
		mag = uint64(-u)
	}

	digits := strconv.FormatUint(mag, 10)

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}

	if scale == 0 {
		out.WriteString(digits)
		return out.String()
	}

	numSig := len(digits)
	if numSig <= int(scale) {
		out.WriteString("0.")
		out.WriteString(strings.Repeat("0", int(scale)-numSig))
		out.WriteString(digits)
	} else {
		splitAt := numSig - int(scale)
		out.WriteString(digits[:splitAt])
		out.WriteByte('.')
		out.WriteString(digits[splitAt:])
	}

	return out.String()
}
