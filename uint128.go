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

// UInt128 is an unsigned 128-bit value assembled from two 64-bit limbs, per
// spec section 4.6. It is used internally wherever a product or a scaled
// dividend would overflow a single int64; callers are responsible for
// tracking sign separately (the kernel always reduces signed inputs to
// their magnitude before reaching into UInt128, exactly as the teacher's
// Fix64.Abs()/ApplySign() pair does in fix64.go).
type UInt128 struct {
	Hi, Lo uint64
}

var uint128Zero = UInt128{}

func (u UInt128) isZero() bool { return u.Hi == 0 && u.Lo == 0 }

// mul64To128 computes a*b as an unsigned 128-bit product from two 64-bit
// unsigned limbs, directly via math/bits.Mul64 the way the teacher's
// raw64.go mul64 wraps it.
func mul64To128(a, b uint64) UInt128 {
	hi, lo := bits.Mul64(a, b)
	return UInt128{Hi: hi, Lo: lo}
}

// add adds two UInt128 values, returning the sum and a carry-out bit.
func (u UInt128) add(v UInt128) (sum UInt128, carry uint64) {
	sum.Lo, carry = bits.Add64(u.Lo, v.Lo, 0)
	sum.Hi, carry = bits.Add64(u.Hi, v.Hi, carry)
	return
}

// sub subtracts v from u, assuming u >= v (the only case the kernel needs:
// classifying a remainder against a divisor it is known to be less than).
func (u UInt128) sub(v UInt128) UInt128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return UInt128{Hi: hi, Lo: lo}
}

// cmp returns -1, 0, or +1 as u is less than, equal to, or greater than v.
func (u UInt128) cmp(v UInt128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (u UInt128) shiftLeft(n uint) UInt128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return UInt128{}
	case n >= 64:
		return UInt128{Hi: u.Lo << (n - 64), Lo: 0}
	default:
		return UInt128{Hi: (u.Hi << n) | (u.Lo >> (64 - n)), Lo: u.Lo << n}
	}
}

func (u UInt128) shiftRight(n uint) UInt128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return UInt128{}
	case n >= 64:
		return UInt128{Hi: 0, Lo: u.Hi >> (n - 64)}
	default:
		return UInt128{Hi: u.Hi >> n, Lo: (u.Lo >> n) | (u.Hi << (64 - n))}
	}
}

// div128By64 divides the 128-bit value u by a 64-bit divisor, returning a
// 64-bit quotient and 64-bit remainder. Preconditions (enforced by every
// caller in this package): divisor != 0, and the true quotient fits in 64
// bits (u.Hi < divisor). Grounded on the teacher's raw128.go div128, but
// narrowed to the single 128-by-64 case this package's Div/Mul paths
// actually need — the teacher's full 128-by-128 div192by128 is overkill
// here since spec section 4.6 only requires the 128-by-64 form.
func div128By64(u UInt128, divisor uint64) (quo, rem uint64) {
	if u.Hi == 0 {
		return u.Lo / divisor, u.Lo % divisor
	}
	// bits.Div64 panics if the quotient would overflow 64 bits; the
	// precondition u.Hi < divisor guarantees it won't.
	return bits.Div64(u.Hi, u.Lo, divisor)
}

// mulDiv128By64 computes floor(u * multiplier / divisor) along with an
// exact remainder, where u fits in 64 bits. It first forms the full
// 128-bit product so that the division never loses precision — the
// pattern spec section 4.6 calls "UInt128 helpers ... used for full
// precision scale compensation", grounded on the teacher's
// mul128/div128 pairing in raw128.go.
func mulDiv128By64(u, multiplier, divisor uint64) (quo, rem uint64) {
	product := mul64To128(u, multiplier)
	return div128By64(product, divisor)
}

// divFull128By64 divides the 128-bit value u by a 64-bit divisor without
// assuming the quotient fits in 64 bits, via plain bit-at-a-time
// shift-and-subtract restoring division. Used only on Div's overflow
// boundary (spec section 4.5's "128-bit fallback division path"), where
// the quotient may legitimately need all 128 bits before the caller
// decides whether to report an OverflowError or wrap to the low 64 bits.
func divFull128By64(u UInt128, divisor uint64) (quoHi, quoLo uint64, rem uint64) {
	var quo UInt128
	var r uint64
	for i := 127; i >= 0; i-- {
		r <<= 1
		if bitAt(u, i) {
			r |= 1
		}
		if r >= divisor {
			r -= divisor
			quo = setBitAt(quo, i)
		}
	}
	return quo.Hi, quo.Lo, r
}

func bitAt(u UInt128, i int) bool {
	if i >= 64 {
		return (u.Hi>>(i-64))&1 == 1
	}
	return (u.Lo>>i)&1 == 1
}

func setBitAt(u UInt128, i int) UInt128 {
	if i >= 64 {
		u.Hi |= 1 << (i - 64)
	} else {
		u.Lo |= 1 << i
	}
	return u
}
