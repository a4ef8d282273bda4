// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bigint is the long-arithmetic core: an arbitrary-precision
// signed integer with digits in a caller-chosen radix (2..36). A value
// does not remember the radix it was built under; every operation takes
// the radix as a parameter, and all values threaded through one call
// chain must share the same radix. See the package's operations for the
// sign and normalization rules each one preserves.
package bigint

// Int is an arbitrary-precision signed integer. digits holds one digit
// per element, least-significant first, each in [0, radix) for whatever
// radix the value was produced under. The zero value of Int is not a
// valid number; use Zero() or Parse().
type Int struct {
	neg    bool
	digits []byte
}

// Zero returns the additive identity.
func Zero() Int {
	return Int{neg: false, digits: []byte{0}}
}

// IsZero reports whether n is exactly zero.
func (n Int) IsZero() bool {
	return len(n.digits) == 1 && n.digits[0] == 0
}

// Sign returns -1, 0 or 1.
func (n Int) Sign() int {
	if n.IsZero() {
		return 0
	}
	if n.neg {
		return -1
	}
	return 1
}

// Negate flips the sign, except zero stays non-negative.
func (n Int) Negate() Int {
	if n.IsZero() {
		return n
	}
	return Int{neg: !n.neg, digits: n.digits}
}

// Abs returns the magnitude, forced non-negative.
func (n Int) Abs() Int {
	return Int{neg: false, digits: n.digits}
}

// NumDigits returns the number of digits in n's current radix
// representation (always >= 1; a single "0" digit for zero).
func (n Int) NumDigits() int {
	return len(n.digits)
}

// normalize strips trailing zero digits (keeping at least one) and
// forces a zero value to be non-negative. It is applied by every
// operation before returning a result.
func normalize(neg bool, digits []byte) Int {
	end := len(digits)
	for end > 1 && digits[end-1] == 0 {
		end--
	}
	digits = digits[:end]
	if len(digits) == 1 && digits[0] == 0 {
		neg = false
	}
	return Int{neg: neg, digits: digits}
}

// cmpAbs compares |a| and |b|: -1, 0 or 1.
func cmpAbs(a, b Int) int {
	if len(a.digits) != len(b.digits) {
		if len(a.digits) < len(b.digits) {
			return -1
		}
		return 1
	}
	for i := len(a.digits) - 1; i >= 0; i-- {
		if a.digits[i] != b.digits[i] {
			if a.digits[i] < b.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpAbs compares |a| and |b|: -1, 0 or 1.
func CmpAbs(a, b Int) int {
	return cmpAbs(a, b)
}

// Cmp compares a and b as signed values: -1, 0 or 1.
func Cmp(a, b Int) int {
	sa, sb := a.Sign(), b.Sign()
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	if sa == 0 {
		return 0
	}
	c := cmpAbs(a, b)
	if sa < 0 {
		return -c
	}
	return c
}
