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
	"testing"

	"github.com/amislabs/numeric/crypto/bigint"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func n(v int64) bigint.Int { return bigint.FromInt64(v, 10) }

func TestModPow(t *testing.T) {
	cases := []struct {
		base, exp, mod, want int64
	}{
		{4, 13, 497, 445},
		{2, 10, 1000, 24},
		{5, 0, 7, 1},
	}
	for _, c := range cases {
		got, err := ModPow(n(c.base), n(c.exp), n(c.mod))
		assert.NoError(t, err)
		assert.Equal(t, n(c.want), got)
	}
}

func TestModPowRejectsNonPositiveModulus(t *testing.T) {
	_, err := ModPow(n(2), n(3), n(0))
	assert.Equal(t, ErrModulusNotPositive, err)
}

func TestFastModMulMersennePrime(t *testing.T) {
	// p = 2^13 - 1 = 8191, a Mersenne prime.
	a, b := n(123), n(456)
	got, p, err := FastModMul(a, b, 13, n(1), false)
	assert.NoError(t, err)
	assert.Equal(t, n(8191), p)

	want, err := mod(mul(a, b), p)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestFastModMulAgreesWithPlainReduction sweeps a handful of moduli of
// shape 2^n +- c and operand pairs, comparing the single-pass reduction
// against a plain multiply-then-divide reference, per the completeness
// concern noted for the single-pass reduction.
func TestFastModMulAgreesWithPlainReduction(t *testing.T) {
	cases := []struct {
		a, b int64
		n    int
		c    int64
		plus bool
	}{
		{123, 456, 13, 1, false},
		{1, 1, 5, 1, false},
		{31, 31, 5, 1, false},
		{999, 888, 10, 3, true},
		{0, 500, 8, 5, false},
		{777, 1, 7, 1, true},
	}
	for _, c := range cases {
		got, p, err := FastModMul(n(c.a), n(c.b), c.n, n(c.c), c.plus)
		assert.NoError(t, err)

		want, err := mod(mul(n(c.a), n(c.b)), p)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestModInverse(t *testing.T) {
	// 3 * 4 = 12 = 1 mod 11
	inv, err := ModInverse(n(3), n(11))
	assert.NoError(t, err)
	assert.Equal(t, n(4), inv)
}

func TestCRT(t *testing.T) {
	solution, modulus, err := CRT([]CongruencePair{
		{A: n(2), N: n(3)},
		{A: n(3), N: n(5)},
		{A: n(2), N: n(7)},
	})
	assert.NoError(t, err)
	assert.Equal(t, n(105), modulus)
	assert.Equal(t, n(23), solution)
}

func TestCRTRejectsEmptyInput(t *testing.T) {
	_, _, err := CRT(nil)
	assert.Equal(t, ErrEmptyCongruences, err)
}

func TestPrimeFactors(t *testing.T) {
	got := PrimeFactors(n(360)) // 2^3 * 3^2 * 5
	want := []bigint.Int{n(2), n(3), n(5)}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(bigint.Int{})); diff != "" {
		t.Errorf("PrimeFactors mismatch (-want +got):\n%s", diff)
	}
}

func TestEulerTotient(t *testing.T) {
	cases := []struct{ m, want int64 }{
		{1, 1}, {9, 6}, {36, 12}, {17, 16},
	}
	for _, c := range cases {
		got := EulerTotient(n(c.m))
		assert.Equal(t, n(c.want), got)
	}
}

func TestLegendre(t *testing.T) {
	cases := []struct {
		a, p int64
		want int
	}{
		{4, 7, 1}, {5, 7, -1}, {14, 7, 0},
	}
	for _, c := range cases {
		got, err := Legendre(n(c.a), n(c.p))
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestJacobi(t *testing.T) {
	cases := []struct {
		a, m int64
		want int
	}{
		{1001, 9907, -1}, {19, 45, 1}, {0, 9, 0},
	}
	for _, c := range cases {
		got, err := Jacobi(n(c.a), n(c.m))
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestJacobiRejectsEvenModulus(t *testing.T) {
	_, err := Jacobi(n(3), n(8))
	assert.Equal(t, ErrEvenModulus, err)
}

func TestQuadraticResidues(t *testing.T) {
	got, err := QuadraticResidues(n(5))
	assert.NoError(t, err)
	want := []bigint.Int{n(1), n(4)}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(bigint.Int{})); diff != "" {
		t.Errorf("QuadraticResidues mismatch (-want +got):\n%s", diff)
	}
}

func TestModularSqrt(t *testing.T) {
	// p=7, q=11 are both 3 mod 4; n = 77.
	p, q := n(7), n(11)
	// 4^2 = 16 mod 77
	c, err := mod(n(16), mul(p, q))
	assert.NoError(t, err)

	roots, err := ModularSqrt(c, p, q)
	assert.NoError(t, err)

	found := false
	for _, r := range roots {
		sq, err := mod(mul(r, r), mul(p, q))
		assert.NoError(t, err)
		if cmp.Equal(sq, c, cmp.AllowUnexported(bigint.Int{})) {
			found = true
		}
	}
	assert.True(t, found)
}
