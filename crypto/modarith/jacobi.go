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

// Jacobi returns the Jacobi symbol (a/n) via the usual law-of-quadratic-
// reciprocity reduction, generalizing Legendre to an odd positive
// (not necessarily prime) n.
func Jacobi(a, n bigint.Int) (int, error) {
	two := fromInt(2)
	if cmp(n, fromInt(1)) < 0 {
		return 0, ErrNonPositiveJacobiModulus
	}
	if _, nRem2, err := divmod(n, two); err != nil {
		return 0, err
	} else if nRem2.Sign() == 0 {
		return 0, ErrEvenModulus
	}

	aVal, err := mod(a, n)
	if err != nil {
		return 0, err
	}
	nVal := n
	t := 1

	for aVal.Sign() != 0 {
		for {
			_, aRem2, err := divmod(aVal, two)
			if err != nil {
				return 0, err
			}
			if aRem2.Sign() != 0 {
				break
			}
			aVal, _, err = divmod(aVal, two)
			if err != nil {
				return 0, err
			}
			_, nRem8, err := divmod(nVal, fromInt(8))
			if err != nil {
				return 0, err
			}
			if cmp(nRem8, fromInt(3)) == 0 || cmp(nRem8, fromInt(5)) == 0 {
				t = -t
			}
		}

		aVal, nVal = nVal, aVal

		_, aRem4, err := divmod(aVal, fromInt(4))
		if err != nil {
			return 0, err
		}
		_, nRem4, err := divmod(nVal, fromInt(4))
		if err != nil {
			return 0, err
		}
		if cmp(aRem4, fromInt(3)) == 0 && cmp(nRem4, fromInt(3)) == 0 {
			t = -t
		}

		aVal, err = mod(aVal, nVal)
		if err != nil {
			return 0, err
		}
	}

	if cmp(nVal, fromInt(1)) == 0 {
		return t, nil
	}
	return 0, nil
}
