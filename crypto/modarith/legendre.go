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

// Legendre returns the Legendre symbol (a/p) via Euler's criterion:
// a^((p-1)/2) mod p. p must be an odd prime; callers get 0 whenever a is
// a multiple of p, otherwise 1 or -1.
func Legendre(a, p bigint.Int) (int, error) {
	rem, err := mod(a, p)
	if err != nil {
		return 0, err
	}
	if rem.Sign() == 0 {
		return 0, nil
	}

	pMinus1 := sub(p, fromInt(1))
	exponent, _, err := divmod(pMinus1, fromInt(2))
	if err != nil {
		return 0, err
	}

	result, err := ModPow(a, exponent, p)
	if err != nil {
		return 0, err
	}
	if cmp(result, fromInt(1)) == 0 {
		return 1, nil
	}
	return -1, nil
}
