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

// This file implements spec section 4.7: decimal square root. sqrtDecimal
// computes round(sqrt(u * 10^scale)), since for v = u*10^-s,
// sqrt(v) * 10^s = sqrt(u * 10^-s) * 10^s = sqrt(u * 10^s).
//
// sqrtBitwise128 is the canonical integer-sqrt kernel: the classic
// bit-by-bit (non-restoring) binary square root algorithm, which needs
// only shifts, adds and compares — no multiply or divide in its inner
// loop. sqrtNewton128 is kept alongside it as an alternate, grounded on
// the teacher's UFix128.SqrtTest (fixTrans.go), exercised only by
// sqrt_bench_test.go and sqrt_test.go's cross-check: the teacher itself ships both a Newton-Raphson
// Sqrt and a from-scratch SqrtTest side by side, so this package keeps
// the same pairing rather than picking one and discarding the other.

// sqrtDecimal returns round(sqrt(u) at the given scale), or a DomainError
// if u is negative.
func sqrtDecimal(op string, u int64, scale Scale, rounding RoundingMode, overflow OverflowMode) (int64, error) {
	if u < 0 {
		return 0, domainErr(op, u)
	}
	if u == 0 {
		return 0, nil
	}

	st := scaleTableFor(scale)
	radicand := mul64To128(uint64(u), uint64(st.factor))

	root, remainder := sqrtBitwise128(radicand)

	part := classifySqrtPart(root, remainder)
	truncatedIsOdd := root%2 == 1
	inc, err := roundingIncrement(rounding, 1, truncatedIsOdd, part)
	if err != nil {
		return 0, roundingNecessaryErr(op, u)
	}

	result := root
	if inc != 0 {
		result++
	}
	if result > 1<<63-1 {
		if overflow == OverflowChecked {
			return 0, overflowErr(op, u)
		}
		return int64(result), nil // wraps
	}
	return int64(result), nil
}

// sqrtBitwise128 computes floor(sqrt(x)) and the exact remainder
// x - floor(sqrt(x))^2 for a 128-bit unsigned x whose square root is
// known to fit in 64 bits (always true here: the radicand is at most
// (2^63-1)*10^18 < 2^127). Processes one result bit per iteration,
// starting from the highest power of 4 not exceeding x.
func sqrtBitwise128(x UInt128) (root uint64, remainder UInt128) {
	var bit UInt128
	if x.Hi != 0 {
		bit = UInt128{Hi: 1 << ((bits.Len64(x.Hi) - 1) &^ 1)}
	} else if x.Lo != 0 {
		n := bits.Len64(x.Lo) - 1
		bit = UInt128{Lo: 1 << (n &^ 1)}
	}
	for bit.cmp(x) > 0 {
		bit = bit.shiftRight(2)
	}

	var res UInt128
	num := x
	for !bit.isZero() {
		trial, _ := res.add(bit)
		if num.cmp(trial) >= 0 {
			num = num.sub(trial)
			res, _ = res.shiftRight(1).add(bit)
		} else {
			res = res.shiftRight(1)
		}
		bit = bit.shiftRight(2)
	}

	return res.Lo, num
}

// classifySqrtPart classifies the rounding residue of an integer square
// root: the true root lies in [root, root+1), and y - root >= 0.5 (where
// y = sqrt(x)) iff x >= (root+0.5)^2, i.e. iff 4*remainder >= 4*root+1.
func classifySqrtPart(root uint64, remainder UInt128) TruncatedPart {
	if remainder.isZero() {
		return PartZero
	}

	fourRem := remainder.shiftLeft(2)
	threshold, _ := mul64To128(root, 4).add(UInt128{Lo: 1})

	switch fourRem.cmp(threshold) {
	case -1:
		return PartLessThanHalf
	case 0:
		return PartEqualToHalf
	default:
		return PartGreaterThanHalf
	}
}

// sqrtNewton128 computes floor(sqrt(x)) via Newton-Raphson, starting from
// a bit-length estimate exactly as the teacher's UFix128.SqrtTest does.
// Unexported and used only by sqrt_bench_test.go and sqrt_test.go to
// compare against sqrtBitwise128; the bitwise version is canonical because it has no
// data-dependent iteration count in the common case and needs no
// division in its inner loop.
func sqrtNewton128(x UInt128) uint64 {
	if x.isZero() {
		return 0
	}

	n := bits.Len64(x.Hi)
	if n == 0 {
		n = bits.Len64(x.Lo)
	} else {
		n += 64
	}
	// floor(sqrt(x)) always fits in 63 bits given this package's domain
	// (x < 2^127), so the estimate's bit length is clamped there too.
	rootBits := (n + 1) / 2
	if rootBits >= 63 {
		rootBits = 63
	}
	est := uint64(1) << rootBits

	for {
		quoHi, quoLo, _ := divFull128By64(x, est)
		quo := UInt128{Hi: quoHi, Lo: quoLo}
		estW := UInt128{Lo: est}
		if estW.cmp(quo) > 0 {
			quo, estW = estW, quo
		}
		diff := quo.sub(estW)
		diff = diff.shiftRight(1)
		if diff.isZero() {
			break
		}
		next, _ := estW.add(diff)
		est = next.Lo
	}

	// The loop can stop one above the root (x=8 stops at 3).
	for mul64To128(est, est).cmp(x) > 0 {
		est--
	}
	return est
}
