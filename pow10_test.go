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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsU64(t *testing.T) {
	assert.Equal(t, uint64(5), absU64(5))
	assert.Equal(t, uint64(5), absU64(-5))
	assert.Equal(t, uint64(1)<<63, absU64(math.MinInt64))
}

func TestMultiplyByPowerOf10Basic(t *testing.T) {
	r, err := multiplyByPowerOf10("mul", 5, 2, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(500), r)

	// n == 0 or u == 0 are no-ops.
	r, err = multiplyByPowerOf10("mul", 5, 0, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), r)

	r, err = multiplyByPowerOf10("mul", 0, 4, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), r)
}

func TestMultiplyByPowerOf10NegativeDelegatesToDivide(t *testing.T) {
	// 1230 / 10^2 = 12.30, truncated part is less than half -> 12.
	r, err := multiplyByPowerOf10("mul", 1230, -2, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), r)
}

func TestMultiplyByPowerOf10OverflowChecked(t *testing.T) {
	_, err := multiplyByPowerOf10("mul", 1, 19, RoundHalfEven, OverflowChecked)
	assert.Error(t, err)
}

func TestMultiplyByPowerOf10OverflowUnchecked(t *testing.T) {
	// 1 * 10^19 wraps modulo 2^64, then reinterprets as a signed int64.
	r, err := multiplyByPowerOf10("mul", 1, 19, RoundHalfEven, OverflowUnchecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(-8446744073709551616), r)
}

func TestDivideByPowerOf10Basic(t *testing.T) {
	r, err := divideByPowerOf10("div", 123, 1, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), r)

	r, err = divideByPowerOf10("div", 0, 3, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), r)

	r, err = divideByPowerOf10("div", 42, 0, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), r)
}

func TestDivideByPowerOf10HalfEvenTiesToEven(t *testing.T) {
	// 550 / 10^2 = 5.50, an exact half; 5 is odd, so it rounds up to 6.
	r, err := divideByPowerOf10("div", 550, 2, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), r)

	// 450 / 10^2 = 4.50, an exact half; 4 is even, so it stays 4.
	r, err = divideByPowerOf10("div", 450, 2, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), r)
}

func TestDivideByPowerOf10BeyondUint64Range(t *testing.T) {
	// n > 19: the quotient is always 0 and the truncated part always less
	// than half (|u| < 10^19 << 10^20), so the result is always 0 under
	// every rounding mode except UP/CEILING-on-positive/FLOOR-on-negative.
	r, err := divideByPowerOf10("div", 5, 20, RoundHalfEven, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), r)

	r, err = divideByPowerOf10("div", 5, 20, RoundUp, OverflowChecked)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), r)

	_, err = divideByPowerOf10("div", 5, 20, RoundUnnecessary, OverflowChecked)
	assert.Error(t, err)
}

func TestClassifyU64(t *testing.T) {
	assert.Equal(t, PartZero, classifyU64(0, 100))
	assert.Equal(t, PartLessThanHalf, classifyU64(30, 100))
	assert.Equal(t, PartEqualToHalf, classifyU64(50, 100))
	assert.Equal(t, PartGreaterThanHalf, classifyU64(70, 100))
}

func TestPow10Mod64(t *testing.T) {
	assert.Equal(t, uint64(1), pow10Mod64(0))
	assert.Equal(t, uint64(1000), pow10Mod64(3))
	assert.Equal(t, uint64(10000000000000000000), pow10Mod64(19))
}
