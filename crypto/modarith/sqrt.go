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

// ModularSqrt returns the four square roots of c modulo n = p*q, where p
// and q are both primes congruent to 3 mod 4 (ModularSqrt does not check
// this precondition; callers must). It combines the
// two roots mod p and the two roots mod q with the Chinese Remainder
// Theorem.
func ModularSqrt(c, p, q bigint.Int) ([4]bigint.Int, error) {
	var out [4]bigint.Int
	one := fromInt(1)
	four := fromInt(4)

	n := mul(p, q)

	expPNum := add(p, one)
	expP, _, err := divmod(expPNum, four)
	if err != nil {
		return out, err
	}
	mp1, err := ModPow(c, expP, p)
	if err != nil {
		return out, err
	}
	mp2 := sub(p, mp1)

	expQNum := add(q, one)
	expQ, _, err := divmod(expQNum, four)
	if err != nil {
		return out, err
	}
	mq1, err := ModPow(c, expQ, q)
	if err != nil {
		return out, err
	}
	mq2 := sub(q, mq1)

	qInvP, err := ModInverse(q, p)
	if err != nil {
		return out, err
	}
	pInvQ, err := ModInverse(p, q)
	if err != nil {
		return out, err
	}

	termA := mul(q, qInvP)
	termB := mul(p, pInvQ)

	combine := func(mp, mq bigint.Int) (bigint.Int, error) {
		sum := add(mul(mp, termA), mul(mq, termB))
		_, r, err := divmod(sum, n)
		return r, err
	}

	if out[0], err = combine(mp1, mq1); err != nil {
		return out, err
	}
	if out[1], err = combine(mp1, mq2); err != nil {
		return out, err
	}
	if out[2], err = combine(mp2, mq1); err != nil {
		return out, err
	}
	if out[3], err = combine(mp2, mq2); err != nil {
		return out, err
	}
	return out, nil
}
