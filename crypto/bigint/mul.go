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

// Mul returns a * b in the given radix via schoolbook O(n*m) long
// multiplication.
func Mul(a, b Int, radix int) Int {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}

	result := make([]byte, len(a.digits)+len(b.digits))
	for i := 0; i < len(b.digits); i++ {
		carry := 0
		for j := 0; j < len(a.digits); j++ {
			total := int(result[i+j]) + int(a.digits[j])*int(b.digits[i]) + carry
			result[i+j] = byte(total % radix)
			carry = total / radix
		}
		if carry > 0 {
			result[i+len(a.digits)] += byte(carry)
		}
	}

	r := normalize(a.neg != b.neg, result)
	if r.IsZero() {
		r.neg = false
	}
	return r
}
