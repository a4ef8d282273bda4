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

// Fermat runs Fermat's probabilistic primality test on p for k rounds,
// drawing each witness from src. A false result is a certificate of
// compositeness; true only means p passed every round.
func Fermat(p bigint.Int, k int, src entropy.Source) (bool, error) {
	pMinus1 := sub(p, fromInt(1))

	for i := 0; i < k; i++ {
		pMinus2 := sub(p, fromInt(2))
		if cmp(pMinus2, fromInt(2)) < 0 {
			return true, nil
		}

		b, err := entropy.RandomRange(fromInt(2), pMinus2, radix, src)
		if err != nil {
			return false, err
		}

		r, err := modPow(b, pMinus1, p)
		if err != nil {
			return false, err
		}
		if cmp(r, fromInt(1)) != 0 {
			return false, nil
		}
	}
	return true, nil
}
