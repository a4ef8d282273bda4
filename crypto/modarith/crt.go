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

// CongruencePair is one x = a (mod n) constraint fed to CRT.
type CongruencePair struct {
	A bigint.Int
	N bigint.Int
}

// CRT solves a system of pairwise-coprime congruences via the Chinese
// Remainder Theorem, returning the unique solution mod the product of
// the moduli and that product itself. Every modulus must be prime for
// ModInverse's Fermat-based inverse to apply; see ModInverse.
func CRT(congruences []CongruencePair) (bigint.Int, bigint.Int, error) {
	if len(congruences) == 0 {
		return bigint.Int{}, bigint.Int{}, ErrEmptyCongruences
	}

	N := fromInt(1)
	for _, c := range congruences {
		N = mul(N, c.N)
	}

	total := fromInt(0)
	for _, c := range congruences {
		Ni, _, err := divmod(N, c.N)
		if err != nil {
			return bigint.Int{}, bigint.Int{}, err
		}
		yi, err := ModInverse(Ni, c.N)
		if err != nil {
			return bigint.Int{}, bigint.Int{}, err
		}
		term := mul(mul(c.A, Ni), yi)
		total = add(total, term)
	}

	solution, err := mod(total, N)
	if err != nil {
		return bigint.Int{}, bigint.Int{}, err
	}
	return solution, N, nil
}
