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

// FromInt64 builds an Int from a native int64, in the given radix. This
// is native-arithmetic only (no Int operations involved), meant for
// small fixed constants such as 0, 1, 2, 3 that callers need without
// going through Parse.
func FromInt64(v int64, radix int) Int {
	neg := v < 0
	if neg {
		v = -v
	}
	if v == 0 {
		return Zero()
	}
	var digits []byte
	for v > 0 {
		digits = append(digits, byte(v%int64(radix)))
		v /= int64(radix)
	}
	return normalize(neg, digits)
}

// ToInt64 extracts a native int64 from n, reporting ok=false if n does
// not fit (used by TrialDivision's fast path, which only ever applies
// to numbers already known to be small).
func (n Int) ToInt64(radix int) (v int64, ok bool) {
	var total int64
	for i := len(n.digits) - 1; i >= 0; i-- {
		d := int64(n.digits[i])
		if total > (int64(1<<63-1)-d)/int64(radix) {
			return 0, false
		}
		total = total*int64(radix) + d
	}
	if n.neg {
		total = -total
	}
	return total, true
}

// IsEven reports whether n is divisible by two, read directly off the
// parity of n's lowest digit when radix is even; for odd radices it
// falls back to a division.
func (n Int) IsEven(radix int) bool {
	if radix%2 == 0 {
		return n.digits[0]%2 == 0
	}
	_, r, _ := Divide(n, FromInt64(2, radix), radix)
	return r.IsZero()
}

// ConvertRadix re-expresses n, currently in fromRadix, as the same value
// in toRadix. It walks n's digits most-significant first and folds them
// in with the target radix's own Add/Mul (Horner's method), so the
// conversion never depends on any representation but the package's own.
func ConvertRadix(n Int, fromRadix, toRadix int) Int {
	result := Zero()
	base := FromInt64(int64(fromRadix), toRadix)
	for i := len(n.digits) - 1; i >= 0; i-- {
		result = Mul(result, base, toRadix)
		result = Add(result, FromInt64(int64(n.digits[i]), toRadix), toRadix)
	}
	result.neg = n.neg && !result.IsZero()
	return result
}

// Pow returns base^exp in the given radix, exp must be a non-negative
// native exponent (exponents this module ever raises to, such as
// (p-1)/2 in an Euler-criterion check or m-2 in a Fermat inverse, are
// themselves reduced through ModPow; Pow is for small fixed powers like
// squaring).
func Pow(base Int, exp int64, radix int) Int {
	result := FromInt64(1, radix)
	for ; exp > 0; exp-- {
		result = Mul(result, base, radix)
	}
	return result
}

// CeilDivide returns ceil(a/b) for positive a, b.
func CeilDivide(a, b Int, radix int) Int {
	q, r, _ := Divide(a, b, radix)
	if !r.IsZero() {
		q = Add(q, FromInt64(1, radix), radix)
	}
	return q
}

// BitLength returns the number of base-2 digits n's magnitude needs,
// via ConvertRadix — used by the GOST generator's descending bit-length
// cascade.
func (n Int) BitLength(radix int) int {
	if n.IsZero() {
		return 0
	}
	return ConvertRadix(n.Abs(), radix, 2).NumDigits()
}
