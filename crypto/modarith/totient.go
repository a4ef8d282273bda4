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

import (
	"github.com/amislabs/numeric/crypto/bigint"
	"golang.org/x/exp/slices"
)

// PrimeFactors returns the distinct prime factors of n, ascending, found
// by trial division: 2 first, then odd candidates up to sqrt(remaining).
func PrimeFactors(n bigint.Int) []bigint.Int {
	var factors []bigint.Int
	two := fromInt(2)
	tempN := n

	for {
		q, r, _ := divmod(tempN, two)
		if r.Sign() != 0 {
			break
		}
		factors = append(factors, two)
		tempN = q
	}

	d := fromInt(3)
	for cmp(tempN, mul(d, d)) >= 0 {
		q, r, _ := divmod(tempN, d)
		if r.Sign() == 0 {
			factors = append(factors, d)
			tempN = q
		} else {
			d = add(d, two)
		}
	}

	if cmp(tempN, fromInt(1)) != 0 {
		factors = append(factors, tempN)
	}

	slices.SortFunc(factors, func(a, b bigint.Int) bool { return cmp(a, b) < 0 })
	return dedupSorted(factors)
}

func dedupSorted(xs []bigint.Int) []bigint.Int {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || cmp(x, out[len(out)-1]) != 0 {
			out = append(out, x)
		}
	}
	return out
}

// EulerTotient computes phi(m) via the product formula over m's distinct
// prime factors: phi(m) = m * prod((p-1)/p).
func EulerTotient(m bigint.Int) bigint.Int {
	if cmp(m, fromInt(1)) == 0 {
		return fromInt(1)
	}

	factors := PrimeFactors(m)
	result := m
	for _, p := range factors {
		result = mul(result, sub(p, fromInt(1)))
		result, _, _ = divmod(result, p)
	}
	return result
}
