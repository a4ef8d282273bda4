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
	"math"

	"github.com/amislabs/numeric/crypto/bigint"
)

// TrialDivision deterministically tests n for primality by trial
// division up to sqrt(n). It is only valid for non-negative n up to 18
// decimal digits, the range that fits a native int64 without overflow;
// larger inputs belong to Fermat/SolovayStrassen instead.
func TrialDivision(n bigint.Int) (bool, error) {
	if n.Sign() < 0 || n.NumDigits() > 18 {
		return false, ErrTooLarge
	}

	v, ok := n.ToInt64(radix)
	if !ok {
		return false, ErrTooLarge
	}

	if v < 2 {
		return false, nil
	}
	if v == 2 || v == 3 {
		return true, nil
	}
	if v%2 == 0 || v%3 == 0 {
		return false, nil
	}

	limit := int64(math.Sqrt(float64(v)))
	for limit*limit > v {
		limit--
	}
	for (limit+1)*(limit+1) <= v {
		limit++
	}

	for i := int64(5); i <= limit; i += 6 {
		if v%i == 0 || v%(i+2) == 0 {
			return false, nil
		}
	}
	return true, nil
}
