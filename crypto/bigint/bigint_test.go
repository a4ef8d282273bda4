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

package bigint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormatRoundTrip(t *testing.T) {
	cases := []struct {
		s     string
		radix int
	}{
		{"0", 10},
		{"123", 10},
		{"-123", 10},
		{"ZZ", 36},
		{"-1010101", 2},
		{"deadbeef", 16},
	}
	for _, c := range cases {
		n, err := Parse(c.s, c.radix)
		assert.NoError(t, err)
		assert.Equal(t, strings.ToUpper(c.s), Format(n, c.radix))
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("", 10)
	assert.Equal(t, ErrEmptyAfterSign, err)

	_, err = Parse("-", 10)
	assert.Equal(t, ErrEmptyAfterSign, err)

	_, err = Parse("12a", 10)
	assert.Equal(t, ErrDigitOutOfRange, err)

	_, err = Parse("1#2", 10)
	assert.Equal(t, ErrInvalidChar, err)

	_, err = Parse("10", 1)
	assert.Equal(t, ErrInvalidRadix, err)
}

func TestZeroIsNeverNegative(t *testing.T) {
	n, err := Parse("-0", 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, n.Sign())
	assert.False(t, n.neg)
}

func TestCmp(t *testing.T) {
	a, _ := Parse("100", 10)
	b, _ := Parse("-100", 10)
	c, _ := Parse("99", 10)

	assert.Equal(t, 1, Cmp(a, b))
	assert.Equal(t, -1, Cmp(b, a))
	assert.Equal(t, 1, Cmp(a, c))
	assert.Equal(t, 0, Cmp(a, a))
}

func TestAddSubRing(t *testing.T) {
	cases := []struct{ x, y int64 }{
		{123, 456}, {-123, 456}, {123, -456}, {-123, -456}, {0, 5}, {5, 0}, {7, 7}, {-7, 7},
	}
	for _, c := range cases {
		x := FromInt64(c.x, 10)
		y := FromInt64(c.y, 10)
		sum := Add(x, y, 10)
		assert.Equal(t, FromInt64(c.x+c.y, 10), sum)

		diff := Sub(x, y, 10)
		assert.Equal(t, FromInt64(c.x-c.y, 10), diff)
	}
}

func TestMul(t *testing.T) {
	cases := []struct{ x, y int64 }{
		{123, 456}, {-123, 456}, {123, -456}, {-123, -456}, {0, 999}, {17, 1},
	}
	for _, c := range cases {
		got := Mul(FromInt64(c.x, 10), FromInt64(c.y, 10), 10)
		assert.Equal(t, FromInt64(c.x*c.y, 10), got)
	}
}

func TestDivideIdentity(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{123, 10}, {-123, 10}, {123, -10}, {-123, -10},
		{7, 7}, {0, 5}, {5, 100}, {1000000, 3},
	}
	for _, c := range cases {
		a := FromInt64(c.a, 10)
		b := FromInt64(c.b, 10)
		q, r, err := Divide(a, b, 10)
		assert.NoError(t, err)

		// a = q*b + r
		assert.Equal(t, a, Add(Mul(q, b, 10), r, 10))
		// |r| < |b|
		assert.True(t, CmpAbs(r, b) < 0)
		// sign(r) = sign(a), unless r is zero
		if !r.IsZero() {
			assert.Equal(t, a.Sign(), r.Sign())
		}
	}
}

func TestDivideByZero(t *testing.T) {
	a := FromInt64(5, 10)
	_, _, err := Divide(a, Zero(), 10)
	assert.Equal(t, ErrDivisionByZero, err)
}

func TestGcd(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{48, 18, 6}, {17, 5, 1}, {0, 7, 7}, {7, 0, 7}, {100, 75, 25},
	}
	for _, c := range cases {
		got := Gcd(FromInt64(c.a, 10), FromInt64(c.b, 10), 10)
		assert.Equal(t, FromInt64(c.want, 10), got)
	}
}

func TestExtendedGcdBezout(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{48, 18}, {17, 5}, {240, 46}, {1, 1}, {999, 1},
	}
	for _, c := range cases {
		a := FromInt64(c.a, 10)
		b := FromInt64(c.b, 10)
		d, x, y := ExtendedGcd(a, b, 10)

		want := Gcd(a, b, 10)
		assert.Equal(t, want, d)

		// d == a*x + b*y
		rebuilt := Add(Mul(a, x, 10), Mul(b, y, 10), 10)
		assert.Equal(t, d, rebuilt)
	}
}

func TestConvertRadixRoundTrip(t *testing.T) {
	values := []string{"0", "1", "255", "123456789", "-987654321"}
	for _, v := range values {
		n, err := Parse(v, 10)
		assert.NoError(t, err)

		asBinary := ConvertRadix(n, 10, 2)
		back := ConvertRadix(asBinary, 2, 10)
		assert.Equal(t, n, back)
	}
}

func TestToInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 123456789, -42} {
		n := FromInt64(v, 10)
		got, ok := n.ToInt64(10)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestBitLength(t *testing.T) {
	cases := []struct {
		v    int64
		bits int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {255, 8}, {256, 9},
	}
	for _, c := range cases {
		n := FromInt64(c.v, 10)
		assert.Equal(t, c.bits, n.BitLength(10))
	}
}
