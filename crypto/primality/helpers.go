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
	"github.com/amislabs/numeric/crypto/modarith"
)

const radix = 10

func add(a, b bigint.Int) bigint.Int { return bigint.Add(a, b, radix) }
func sub(a, b bigint.Int) bigint.Int { return bigint.Sub(a, b, radix) }
func mul(a, b bigint.Int) bigint.Int { return bigint.Mul(a, b, radix) }
func cmp(a, b bigint.Int) int        { return bigint.Cmp(a, b) }
func fromInt(v int64) bigint.Int     { return bigint.FromInt64(v, radix) }
func divmod(a, b bigint.Int) (bigint.Int, bigint.Int, error) {
	return bigint.Divide(a, b, radix)
}

// legendre re-exposes modarith.Legendre so this package's probabilistic
// tests never import modarith's Jacobi/CRT surface they don't need.
func legendre(a, p bigint.Int) (int, error) { return modarith.Legendre(a, p) }

// modPow re-exposes modarith.ModPow under this package's local radix
// convention.
func modPow(base, exp, m bigint.Int) (bigint.Int, error) { return modarith.ModPow(base, exp, m) }
