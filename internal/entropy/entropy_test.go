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

package entropy

import (
	"math/rand"
	"testing"

	"github.com/amislabs/numeric/crypto/bigint"
	"github.com/stretchr/testify/assert"
)

// fakeSource is a deterministic, seeded Source for tests that need
// reproducible candidates.
type fakeSource struct{ r *rand.Rand }

func newFakeSource(seed int64) *fakeSource {
	return &fakeSource{r: rand.New(rand.NewSource(seed))}
}

func (f *fakeSource) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

func TestRandomBitsHasExactBitLength(t *testing.T) {
	src := newFakeSource(1)
	for _, bits := range []int{8, 16, 17, 64, 100} {
		v, err := RandomBits(bits, 10, src)
		assert.NoError(t, err)
		assert.Equal(t, bits, v.BitLength(10))
	}
}

func TestRandomBitsDeterministicWithSameSeed(t *testing.T) {
	a, err := RandomBits(64, 10, newFakeSource(42))
	assert.NoError(t, err)
	b, err := RandomBits(64, 10, newFakeSource(42))
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandomRangeStaysInBounds(t *testing.T) {
	src := newFakeSource(7)
	lo := bigint.FromInt64(10, 10)
	hi := bigint.FromInt64(1000, 10)
	for i := 0; i < 50; i++ {
		v, err := RandomRange(lo, hi, 10, src)
		assert.NoError(t, err)
		assert.True(t, bigint.Cmp(v, lo) >= 0)
		assert.True(t, bigint.Cmp(v, hi) <= 0)
	}
}

func TestRandomRangeRejectsEmptyRange(t *testing.T) {
	src := newFakeSource(1)
	_, err := RandomRange(bigint.FromInt64(100, 10), bigint.FromInt64(1, 10), 10, src)
	assert.Equal(t, ErrEmptyRange, err)
}
