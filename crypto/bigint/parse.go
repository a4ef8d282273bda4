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

package bigint

import "strings"

func validRadix(radix int) bool {
	return radix >= 2 && radix <= 36
}

// charToDigit maps a case-insensitive '0'-'9'/'a'-'z' character to its
// numeral value, or reports ok=false for anything else.
func charToDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// digitToChar maps a numeral value in [0, 36) to its upper-case character.
func digitToChar(d byte) byte {
	if d < 10 {
		return '0' + d
	}
	return 'A' + d - 10
}

// Parse reads a signed string of digits in the given radix. An optional
// leading '-' is consumed into the sign; the remaining characters are
// mapped case-insensitively. A bare "-" or an empty string, a character
// outside the alphabet, or a digit that is not smaller than radix, is
// an error.
func Parse(s string, radix int) (Int, error) {
	if !validRadix(radix) {
		return Int{}, ErrInvalidRadix
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return Int{}, ErrEmptyAfterSign
	}

	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		// s is consumed most-significant-first; digits is filled
		// least-significant-first.
		c := s[len(s)-1-i]
		d, ok := charToDigit(c)
		if !ok {
			return Int{}, ErrInvalidChar
		}
		if int(d) >= radix {
			return Int{}, ErrDigitOutOfRange
		}
		digits[i] = d
	}

	return normalize(neg, digits), nil
}

// Format renders n in the given radix, upper-case, with a leading '-'
// for negative non-zero values.
func Format(n Int, radix int) string {
	if !validRadix(radix) {
		return ""
	}
	var b strings.Builder
	if n.neg && !n.IsZero() {
		b.WriteByte('-')
	}
	for i := len(n.digits) - 1; i >= 0; i-- {
		b.WriteByte(digitToChar(n.digits[i]))
	}
	return b.String()
}

// String renders n in base 10, the radix L2/L3 of this module use
// internally. It satisfies fmt.Stringer for debugging and logging.
func (n Int) String() string {
	return Format(n, 10)
}
