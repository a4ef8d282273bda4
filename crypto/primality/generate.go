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

// fermatRoundsForGeneration mirrors the fixed round count the reference
// generator always ran before layering on the caller's own k rounds of
// Solovay-Strassen.
const fermatRoundsForGeneration = 5

// GeneratePrime draws a candidate of exactly bitLength bits, resampling
// until one survives fermatRoundsForGeneration rounds of Fermat and k
// rounds of Solovay-Strassen.
func GeneratePrime(bitLength, k int, src entropy.Source) (bigint.Int, error) {
	if bitLength < 2 {
		return bigint.Int{}, ErrBitLengthTooLow
	}

	for {
		p, err := entropy.RandomBits(bitLength, radix, src)
		if err != nil {
			return bigint.Int{}, err
		}
		if p.IsEven(radix) {
			p = add(p, fromInt(1))
		}

		fermatOK, err := Fermat(p, fermatRoundsForGeneration, src)
		if err != nil {
			return bigint.Int{}, err
		}
		if !fermatOK {
			continue
		}

		ssOK, err := SolovayStrassen(p, k, src)
		if err != nil {
			return bigint.Int{}, err
		}
		if ssOK {
			return p, nil
		}
	}
}
