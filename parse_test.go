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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimalBasic(t *testing.T) {
	r, err := parseDecimal("parse", "100", 0, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), r)

	r, err = parseDecimal("parse", "-1.001", 3, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(-1001), r)
}

func TestParseDecimalEmptyIntegerPart(t *testing.T) {
	// "-.25" is accepted as a negative fraction with zero integer part.
	r, err := parseDecimal("parse", "-.25", 2, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(-25), r)

	r, err = parseDecimal("parse", ".5", 1, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), r)
}

func TestParseDecimalZeroExtendsShortFraction(t *testing.T) {
	r, err := parseDecimal("parse", "1.5", 4, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), r)
}

func TestParseDecimalRoundsLongFraction(t *testing.T) {
	// "1.005" at scale 2: the third digit rounds the kept ".00" up under
	// HALF_UP, since the discarded "5" is an exact half.
	r, err := parseDecimal("parse", "1.005", 2, RoundHalfUp, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(101), r)

	r, err = parseDecimal("parse", "1.004", 2, RoundHalfUp, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), r)
}

func TestParseDecimalNoDigitsIsError(t *testing.T) {
	_, err := parseDecimal("parse", "-", 2, RoundHalfEven, OverflowChecked)
	assert.Error(t, err)

	_, err = parseDecimal("parse", "", 2, RoundHalfEven, OverflowChecked)
	assert.Error(t, err)
}

func TestParseDecimalMalformedIsError(t *testing.T) {
	_, err := parseDecimal("parse", "1.2.3", 2, RoundHalfEven, OverflowChecked)
	assert.Error(t, err)

	_, err = parseDecimal("parse", "12a", 2, RoundHalfEven, OverflowChecked)
	assert.Error(t, err)
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "123", formatDecimal(123, 0))
	assert.Equal(t, "-123", formatDecimal(-123, 0))
	assert.Equal(t, "1.23", formatDecimal(123, 2))
	assert.Equal(t, "0.123", formatDecimal(123, 3))
	assert.Equal(t, "0.0123", formatDecimal(123, 4))
	assert.Equal(t, "-0.0123", formatDecimal(-123, 4))
	assert.Equal(t, "0.00", formatDecimal(0, 2))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "1.23", "-1.23", "100.00", "0.01"} {
		u, err := parseDecimal("parse", s, 2, RoundUnnecessary, OverflowChecked)
		assert.NoError(t, err)
		assert.Equal(t, s, formatDecimal(u, 2))
	}
}
