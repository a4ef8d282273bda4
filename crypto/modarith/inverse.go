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

// ModInverse returns num^-1 mod m via Fermat's little theorem
// (num^(m-2) mod m). This requires m to be prime; callers that need an
// inverse under a composite modulus should use bigint.ExtendedGcd
// directly instead.
func ModInverse(num, m bigint.Int) (bigint.Int, error) {
	exponent := sub(m, fromInt(2))
	return ModPow(num, exponent, m)
}
