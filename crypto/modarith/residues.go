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

// QuadraticResidues returns the sorted, deduplicated set {i^2 mod n :
// 1 <= i <= n-1}.
func QuadraticResidues(n bigint.Int) ([]bigint.Int, error) {
	return residuePowers(n, 2)
}

// CubicResidues returns the sorted, deduplicated set {i^3 mod n :
// 1 <= i <= n-1}.
func CubicResidues(n bigint.Int) ([]bigint.Int, error) {
	return residuePowers(n, 3)
}

func residuePowers(n bigint.Int, power int64) ([]bigint.Int, error) {
	var residues []bigint.Int
	one := fromInt(1)
	i := fromInt(1)

	for cmp(sub(n, one), i) >= 0 {
		p := bigint.Pow(i, power, radix)
		residue, err := mod(p, n)
		if err != nil {
			return nil, err
		}
		residues = append(residues, residue)
		i = add(i, one)
	}

	slices.SortFunc(residues, func(a, b bigint.Int) bool { return cmp(a, b) < 0 })
	return dedupSorted(residues), nil
}
