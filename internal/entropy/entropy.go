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

// Package entropy is the one randomness seam the rest of this module
// draws from: small-prime candidate generation, Fermat/Solovay-Strassen
// witness selection, and the GOST cascade all go through here rather
// than touching crypto/rand directly, so a caller that needs
// determinism can supply its own Source.
package entropy

import (
	"crypto/rand"
	"io"

	"github.com/amislabs/numeric/crypto/bigint"
	"golang.org/x/crypto/blake2b"
)

// Source supplies random bytes. The zero value of this package uses
// crypto/rand, whitened through blake2b; tests substitute a
// deterministic Source built from math/rand or a fixed byte sequence.
type Source interface {
	io.Reader
}

// cryptoSource whitens crypto/rand output through blake2b so a single
// partially-predictable byte never leaks directly into a candidate.
type cryptoSource struct{}

func (cryptoSource) Read(p []byte) (int, error) {
	raw := make([]byte, len(p))
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return 0, err
	}
	whitened := whiten(raw)
	n := copy(p, whitened)
	return n, nil
}

// whiten stretches/condenses raw bytes into exactly len(raw) whitened
// bytes by hashing raw in blake2b-256 blocks with an incrementing
// counter, then truncating to length.
func whiten(raw []byte) []byte {
	out := make([]byte, 0, len(raw)+blake2b.Size256)
	var counter byte
	for len(out) < len(raw) {
		h, _ := blake2b.New256(nil)
		h.Write(raw)
		h.Write([]byte{counter})
		out = h.Sum(out)
		counter++
	}
	return out[:len(raw)]
}

// Default is the package-wide Source used when callers don't inject
// their own.
var Default Source = cryptoSource{}

// RandomBits returns a uniformly random non-negative bigint.Int with
// exactly bitLength bits (the top bit set), expressed in the given
// radix. It reads raw bytes from src, treats them as base-256 digits,
// and folds them into the target radix with the bigint package's own
// Add/Mul (see bigint.ConvertRadix) — this module never represents
// randomness through anything but its own arithmetic.
func RandomBits(bitLength int, radix int, src Source) (bigint.Int, error) {
	if bitLength <= 0 {
		return bigint.Zero(), nil
	}
	numBytes := (bitLength + 7) / 8
	raw := make([]byte, numBytes)
	if _, err := io.ReadFull(src, raw); err != nil {
		return bigint.Int{}, err
	}

	topBits := bitLength % 8
	if topBits == 0 {
		topBits = 8
	}
	raw[0] &= byte(1<<topBits - 1)
	raw[0] |= byte(1 << (topBits - 1))

	return bytesToInt(raw, radix), nil
}

// randomBelow returns a uniformly random value in [0, 2^bitLength), with
// no bit forced — unlike RandomBits, which always sets the top bit to
// guarantee an exact bit length. Used by RandomRange, which needs every
// value in the span reachable, not just the top half.
func randomBelow(bitLength int, radix int, src Source) (bigint.Int, error) {
	if bitLength <= 0 {
		return bigint.Zero(), nil
	}
	numBytes := (bitLength + 7) / 8
	raw := make([]byte, numBytes)
	if _, err := io.ReadFull(src, raw); err != nil {
		return bigint.Int{}, err
	}

	topBits := bitLength % 8
	if topBits == 0 {
		topBits = 8
	}
	raw[0] &= byte(1<<topBits - 1)

	return bytesToInt(raw, radix), nil
}

// bytesToInt folds a big-endian byte slice into an Int via Horner's
// method in the given radix: result = result*256 + byte, for each byte
// from most to least significant.
func bytesToInt(raw []byte, radix int) bigint.Int {
	result := bigint.Zero()
	base256 := bigint.FromInt64(256, radix)
	for _, b := range raw {
		result = bigint.Mul(result, base256, radix)
		result = bigint.Add(result, bigint.FromInt64(int64(b), radix), radix)
	}
	return result
}

// RandomRange returns a uniformly random value in [lo, hi] (inclusive),
// via rejection sampling against the bit length of hi-lo.
func RandomRange(lo, hi bigint.Int, radix int, src Source) (bigint.Int, error) {
	span := bigint.Sub(hi, lo, radix)
	if span.Sign() < 0 {
		return bigint.Int{}, ErrEmptyRange
	}
	bits := span.BitLength(radix)
	if bits == 0 {
		bits = 1
	}

	for {
		candidate, err := randomBelow(bits, radix, src)
		if err != nil {
			return bigint.Int{}, err
		}
		if bigint.Cmp(candidate, span) <= 0 {
			return bigint.Add(lo, candidate, radix), nil
		}
	}
}
