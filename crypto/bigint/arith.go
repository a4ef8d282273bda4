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

// addAbs adds magnitudes digit-by-digit with carry, in the given radix.
func addAbs(a, b Int, radix int) Int {
	n := len(a.digits)
	if len(b.digits) > n {
		n = len(b.digits)
	}
	result := make([]byte, n+1)
	carry := 0
	for i := 0; i < n; i++ {
		total := carry
		if i < len(a.digits) {
			total += int(a.digits[i])
		}
		if i < len(b.digits) {
			total += int(b.digits[i])
		}
		result[i] = byte(total % radix)
		carry = total / radix
	}
	result[n] = byte(carry)
	return normalize(false, result)
}

// subAbs subtracts magnitudes digit-by-digit with borrow, in the given
// radix. Requires |a| >= |b|; callers (add/sub below) always satisfy
// this before calling it.
func subAbs(a, b Int, radix int) Int {
	result := make([]byte, len(a.digits))
	borrow := 0
	for i := 0; i < len(a.digits); i++ {
		da := int(a.digits[i])
		db := 0
		if i < len(b.digits) {
			db = int(b.digits[i])
		}
		diff := da - db - borrow
		if diff < 0 {
			diff += radix
			borrow = 1
		} else {
			borrow = 0
		}
		result[i] = byte(diff)
	}
	return normalize(false, result)
}

// Add returns a + b in the given radix.
func Add(a, b Int, radix int) Int {
	if a.neg == b.neg {
		r := addAbs(a, b, radix)
		r.neg = a.neg
		if r.IsZero() {
			r.neg = false
		}
		return r
	}
	if cmpAbs(a, b) >= 0 {
		r := subAbs(a, b, radix)
		r.neg = a.neg
		if r.IsZero() {
			r.neg = false
		}
		return r
	}
	r := subAbs(b, a, radix)
	r.neg = b.neg
	if r.IsZero() {
		r.neg = false
	}
	return r
}

// Sub returns a - b in the given radix.
func Sub(a, b Int, radix int) Int {
	return Add(a, b.Negate(), radix)
}
