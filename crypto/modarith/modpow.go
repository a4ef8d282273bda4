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

// ModPow returns base^exp mod m via right-to-left binary exponentiation.
func ModPow(base, exp, m bigint.Int) (bigint.Int, error) {
	if m.Sign() <= 0 {
		return bigint.Int{}, ErrModulusNotPositive
	}

	two := fromInt(2)
	result := fromInt(1)

	b, err := mod(base, m)
	if err != nil {
		return bigint.Int{}, err
	}
	e := exp

	for cmp(e, fromInt(0)) > 0 {
		_, rem, err := divmod(e, two)
		if err != nil {
			return bigint.Int{}, err
		}
		if rem.Sign() != 0 {
			result, err = mod(mul(result, b), m)
			if err != nil {
				return bigint.Int{}, err
			}
		}
		e, _, err = divmod(e, two)
		if err != nil {
			return bigint.Int{}, err
		}
		b, err = mod(mul(b, b), m)
		if err != nil {
			return bigint.Int{}, err
		}
	}
	return result, nil
}
