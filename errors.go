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
	"fmt"
	"strings"
)

// OverflowError indicates that an operation's exact mathematical result does
// not fit in the int64 unscaled range at the operation's scale. Only ever
// raised under OverflowChecked; OverflowUnchecked wraps instead.
type OverflowError struct {
	Op       string
	Operands []string
}

var _ error = (*OverflowError)(nil)

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s(%s): overflow", e.Op, strings.Join(e.Operands, ", "))
}

// DivisionByZeroError indicates a division or inversion whose divisor is
// zero, including Pow of a zero base to a negative exponent.
type DivisionByZeroError struct {
	Op       string
	Operands []string
}

var _ error = (*DivisionByZeroError)(nil)

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s(%s): division by zero", e.Op, strings.Join(e.Operands, ", "))
}

// RoundingNecessaryError indicates RoundingUnnecessary was requested but the
// exact result has a non-zero discarded remainder.
type RoundingNecessaryError struct {
	Op       string
	Operands []string
}

var _ error = (*RoundingNecessaryError)(nil)

func (e *RoundingNecessaryError) Error() string {
	return fmt.Sprintf("%s(%s): rounding necessary", e.Op, strings.Join(e.Operands, ", "))
}

// DomainError indicates an operation (currently only Sqrt) was given an
// argument outside its mathematical domain.
type DomainError struct {
	Op       string
	Operands []string
}

var _ error = (*DomainError)(nil)

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%s): argument out of domain", e.Op, strings.Join(e.Operands, ", "))
}

// RangeError indicates an input outside what the operation accepts: a
// non-finite double or *decimal.Big, a Pow exponent outside
// [MinPowExponent, MaxPowExponent], or a Round precision outside
// [0, scale]. A scale outside [0, MaxScale] panics instead, and a finite
// double too large for the scale raises an OverflowError.
type RangeError struct {
	Op  string
	Msg string
}

var _ error = (*RangeError)(nil)

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// ParseError indicates a string passed to Parse is not a well-formed decimal
// literal.
type ParseError struct {
	Input  string
	Reason string
}

var _ error = (*ParseError)(nil)

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as decimal: %s", e.Input, e.Reason)
}

func operandStrings(operands ...int64) []string {
	out := make([]string, len(operands))
	for i, o := range operands {
		out[i] = fmt.Sprintf("%d", o)
	}
	return out
}

func overflowErr(op string, operands ...int64) error {
	return &OverflowError{Op: op, Operands: operandStrings(operands...)}
}

func divByZeroErr(op string, operands ...int64) error {
	return &DivisionByZeroError{Op: op, Operands: operandStrings(operands...)}
}

func roundingNecessaryErr(op string, operands ...int64) error {
	return &RoundingNecessaryError{Op: op, Operands: operandStrings(operands...)}
}

func domainErr(op string, operands ...int64) error {
	return &DomainError{Op: op, Operands: operandStrings(operands...)}
}
