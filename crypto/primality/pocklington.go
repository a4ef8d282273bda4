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
	"github.com/amislabs/numeric/logger"
)

// Certificate is a Pocklington primality certificate for P: a known
// subset Factors of P-1's factorization (sufficient to prove primality
// given Pocklington's theorem) and Pool, the full small-prime set
// Factors was drawn from.
type Certificate struct {
	P       bigint.Int
	Factors []bigint.Int
	Pool    []bigint.Int
}

// pocklingtonTest checks p for primality given a known set of factors of
// p-1, trying up to numWitnesses random bases.
func pocklingtonTest(p bigint.Int, factors []bigint.Int, numWitnesses int, src entropy.Source) (bool, error) {
	pMinus1 := sub(p, fromInt(1))

	for i := 0; i < numWitnesses; i++ {
		b, err := entropy.RandomRange(fromInt(2), sub(p, fromInt(2)), radix, src)
		if err != nil {
			return false, err
		}

		r, err := modPow(b, pMinus1, p)
		if err != nil {
			return false, err
		}
		if cmp(r, fromInt(1)) != 0 {
			continue
		}

		allPass := true
		for _, factor := range factors {
			exponent, _, err := divmod(pMinus1, factor)
			if err != nil {
				return false, err
			}
			term, err := modPow(b, exponent, p)
			if err != nil {
				return false, err
			}
			termMinus1 := sub(term, fromInt(1))
			if cmp(bigint.Gcd(termMinus1.Abs(), p, radix), fromInt(1)) != 0 {
				allPass = false
				break
			}
		}
		if allPass {
			return true, nil
		}
	}
	return false, nil
}

// GenerateWithFactorization generates a prime P whose P-1 factorization
// is partly known: it draws smallPrimesCount primes of smallPrimesBits
// bits each, repeatedly samples h of them as factors, forms
// P = 2*(product of factors)+1, and accepts the first candidate that
// passes the Pocklington test.
func GenerateWithFactorization(smallPrimesCount, smallPrimesBits, h, numWitnesses int, src entropy.Source) (Certificate, error) {
	pool, err := GenerateSmallPrimes(smallPrimesCount, smallPrimesBits, src)
	if err != nil {
		return Certificate{}, err
	}
	if h > len(pool) {
		return Certificate{}, ErrTooFewSmallPrimes
	}

	for {
		factors, err := sampleWithoutReplacement(pool, h, src)
		if err != nil {
			return Certificate{}, err
		}

		pMinus1Div2 := fromInt(1)
		for _, m := range factors {
			pMinus1Div2 = mul(pMinus1Div2, m)
		}
		p := add(mul(fromInt(2), pMinus1Div2), fromInt(1))

		logger.Logger().Debug("pocklington candidate", "witnesses", numWitnesses, "h", h)
		ok, err := pocklingtonTest(p, factors, numWitnesses, src)
		if err != nil {
			return Certificate{}, err
		}
		if ok {
			logger.Logger().Info("pocklington certificate accepted", "bits", p.BitLength(radix))
			return Certificate{P: p, Factors: factors, Pool: pool}, nil
		}
	}
}

// sampleWithoutReplacement draws h distinct elements from pool, via a
// partial Fisher-Yates shuffle so every subset of size h is equally
// likely.
func sampleWithoutReplacement(pool []bigint.Int, h int, src entropy.Source) ([]bigint.Int, error) {
	shuffled := make([]bigint.Int, len(pool))
	copy(shuffled, pool)

	for i := 0; i < h; i++ {
		j, err := entropy.RandomRange(fromInt(int64(i)), fromInt(int64(len(shuffled)-1)), radix, src)
		if err != nil {
			return nil, err
		}
		jIdx, _ := j.ToInt64(radix)
		shuffled[i], shuffled[jIdx] = shuffled[jIdx], shuffled[i]
	}
	return shuffled[:h], nil
}
