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

// Package modarith layers modular arithmetic (exponentiation, inverses,
// residues, CRT) on top of crypto/bigint. Every value here is a
// bigint.Int kept in base 10, the one radix this package works in.
package modarith

import "github.com/amislabs/numeric/crypto/bigint"

const radix = 10

func add(a, b bigint.Int) bigint.Int { return bigint.Add(a, b, radix) }
func sub(a, b bigint.Int) bigint.Int { return bigint.Sub(a, b, radix) }
func mul(a, b bigint.Int) bigint.Int { return bigint.Mul(a, b, radix) }
func divmod(a, b bigint.Int) (bigint.Int, bigint.Int, error) {
	return bigint.Divide(a, b, radix)
}
func cmp(a, b bigint.Int) int { return bigint.Cmp(a, b) }
func fromInt(v int64) bigint.Int { return bigint.FromInt64(v, radix) }

// mod returns a mod m forced into [0, m) (the Python reference always
// takes the divide() remainder as-is, which is already non-negative for
// every call site here because m itself is always positive and a is
// either already reduced or a literal non-negative residue).
func mod(a, m bigint.Int) (bigint.Int, error) {
	_, r, err := divmod(a, m)
	if err != nil {
		return bigint.Int{}, err
	}
	if r.Sign() < 0 {
		r = add(r, m.Abs())
	}
	return r, nil
}
