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

package primality

import (
	"github.com/amislabs/numeric/crypto/bigint"
	"github.com/amislabs/numeric/internal/entropy"
)

// SolovayStrassen runs the Solovay-Strassen probabilistic primality
// test on p for k rounds, checking both that b^((p-1)/2) collapses to
// +-1 mod p and that it agrees in sign with the Legendre symbol (b/p).
func SolovayStrassen(p bigint.Int, k int, src entropy.Source) (bool, error) {
	pMinus1 := sub(p, fromInt(1))
	exponent, _, err := divmod(pMinus1, fromInt(2))
	if err != nil {
		return false, err
	}

	for i := 0; i < k; i++ {
		if cmp(pMinus1, fromInt(2)) < 0 {
			return true, nil
		}

		b, err := entropy.RandomRange(fromInt(2), pMinus1, radix, src)
		if err != nil {
			return false, err
		}

		r, err := modPow(b, exponent, p)
		if err != nil {
			return false, err
		}
		if cmp(r, fromInt(1)) != 0 && cmp(r, pMinus1) != 0 {
			return false, nil
		}

		s, err := legendre(b, p)
		if err != nil {
			return false, err
		}
		sLarge := fromInt(1)
		if s != 1 {
			sLarge = pMinus1
		}
		if cmp(r, sLarge) != 0 {
			return false, nil
		}
	}
	return true, nil
}
