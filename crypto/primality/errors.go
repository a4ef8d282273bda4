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

// Package primality builds primality tests and prime generators on top
// of crypto/bigint and crypto/modarith: Fermat and Solovay-Strassen
// probabilistic tests, a deterministic trial-division test bounded to
// 18-digit inputs, small-prime sampling, Pocklington-certified
// generation with a known factorization of p-1, and the descending
// cascade generator from GOST R 34.10-94.
package primality

import "errors"

var (
	ErrTooLarge        = errors.New("trial division is only valid for numbers up to 18 decimal digits")
	ErrBitLengthTooLow = errors.New("bit length must be >= 2")
	ErrGostBitLengthTooLow = errors.New("gost target bit length must be >= 17")
	ErrTooFewSmallPrimes = errors.New("h cannot exceed the number of generated small primes")
)
