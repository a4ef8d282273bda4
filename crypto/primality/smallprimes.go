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

// GenerateSmallPrimes draws count primes of exactly bitLength bits,
// verified deterministically by TrialDivision, by resampling candidates
// until count of them pass.
func GenerateSmallPrimes(count, bitLength int, src entropy.Source) ([]bigint.Int, error) {
	primes := make([]bigint.Int, 0, count)
	for len(primes) < count {
		candidate, err := entropy.RandomBits(bitLength, radix, src)
		if err != nil {
			return nil, err
		}
		if candidate.IsEven(radix) {
			candidate = add(candidate, fromInt(1))
		}
		ok, err := TrialDivision(candidate)
		if err != nil {
			return nil, err
		}
		if ok {
			primes = append(primes, candidate)
		}
	}
	return primes, nil
}
