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

// Gcd returns the greatest common divisor of a and b via the Euclidean
// algorithm. Callers are expected to pass non-negative operands.
func Gcd(a, b Int, radix int) Int {
	for !b.IsZero() {
		_, r, _ := Divide(a, b, radix)
		a, b = b, r
	}
	return a
}

// ExtendedGcd returns (d, x, y) with d = gcd(a, b) = a*x + b*y, using
// the iterative two-register Bezout-coefficient form.
func ExtendedGcd(a, b Int, radix int) (d, x, y Int) {
	zero, one := Zero(), fromSmall(1)

	if b.IsZero() {
		return a, one, zero
	}

	x0, x1 := one, zero
	y0, y1 := zero, one

	for !b.IsZero() {
		q, r, _ := Divide(a, b, radix)
		a, b = b, r

		xNew := Sub(x0, Mul(q, x1, radix), radix)
		x0, x1 = x1, xNew

		yNew := Sub(y0, Mul(q, y1, radix), radix)
		y0, y1 = y1, yNew
	}

	return a, x0, y0
}
