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

package modarith

import "github.com/amislabs/numeric/crypto/bigint"

// FastModMul computes a*b mod p for a Mersenne-like modulus of the form
// p = 2^n + c (plus=true) or p = 2^n - c (plus=false) by splitting the
// product at the 2^n boundary and folding the high part back in as
// c*A, so that only the folded value, not the full product, is reduced
// mod p. Returns the product mod p and p itself.
func FastModMul(a, b bigint.Int, n int, c bigint.Int, plus bool) (bigint.Int, bigint.Int, error) {
	twoN := bigint.Pow(fromInt(2), int64(n), radix)

	var p bigint.Int
	if plus {
		p = add(twoN, c)
	} else {
		p = sub(twoN, c)
	}

	prod := mul(a, b)
	A, B, err := divmod(prod, twoN)
	if err != nil {
		return bigint.Int{}, bigint.Int{}, err
	}
	cA := mul(c, A)

	var temp bigint.Int
	if plus {
		if cmp(B, cA) >= 0 {
			temp = sub(B, cA)
		} else {
			diff := sub(cA, B)
			diffModP, err := mod(diff, p)
			if err != nil {
				return bigint.Int{}, bigint.Int{}, err
			}
			if diffModP.Sign() == 0 {
				temp = fromInt(0)
			} else {
				temp = sub(p, diffModP)
			}
		}
	} else {
		temp = add(B, cA)
	}

	final, err := mod(temp, p)
	if err != nil {
		return bigint.Int{}, bigint.Int{}, err
	}
	return final, p, nil
}
