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
	"math/rand"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/amislabs/numeric/crypto/bigint"
)

func TestPrimality(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Primality Suite")
}

type detSource struct{ r *rand.Rand }

func (d detSource) Read(p []byte) (int, error) { return d.r.Read(p) }

func newDetSource(seed int64) detSource {
	return detSource{r: rand.New(rand.NewSource(seed))}
}

var _ = Describe("TrialDivision", func() {
	DescribeTable("classifies small numbers correctly", func(v int64, want bool) {
		got, err := TrialDivision(fromInt(v))
		Expect(err).Should(BeNil())
		Expect(got).Should(Equal(want))
	},
		Entry("0 is not prime", int64(0), false),
		Entry("1 is not prime", int64(1), false),
		Entry("2 is prime", int64(2), true),
		Entry("3 is prime", int64(3), true),
		Entry("4 is not prime", int64(4), false),
		Entry("17 is prime", int64(17), true),
		Entry("97 is prime", int64(97), true),
		Entry("100 is not prime", int64(100), false),
		Entry("7919 is prime", int64(7919), true),
	)

	It("rejects numbers over 18 decimal digits", func() {
		huge, err := bigint.Parse("1234567890123456789", 10)
		Expect(err).Should(BeNil())
		_, err = TrialDivision(huge)
		Expect(err).Should(Equal(ErrTooLarge))
	})
})

var _ = Describe("Fermat", func() {
	DescribeTable("agrees with trial division on small primes", func(v int64, want bool) {
		src := newDetSource(int64(v) + 1)
		got, err := Fermat(fromInt(v), 8, src)
		Expect(err).Should(BeNil())
		Expect(got).Should(Equal(want))
	},
		Entry("97 passes", int64(97), true),
		Entry("91 = 7*13 fails", int64(91), false),
		Entry("221 = 13*17 fails", int64(221), false),
	)
})

var _ = Describe("SolovayStrassen", func() {
	It("accepts a known prime", func() {
		src := newDetSource(5)
		got, err := SolovayStrassen(fromInt(101), 10, src)
		Expect(err).Should(BeNil())
		Expect(got).Should(BeTrue())
	})

	It("rejects a known composite", func() {
		src := newDetSource(9)
		got, err := SolovayStrassen(fromInt(221), 10, src)
		Expect(err).Should(BeNil())
		Expect(got).Should(BeFalse())
	})
})

var _ = Describe("GenerateSmallPrimes", func() {
	It("returns the requested count, each passing trial division", func() {
		src := newDetSource(3)
		primes, err := GenerateSmallPrimes(4, 10, src)
		Expect(err).Should(BeNil())
		Expect(primes).Should(HaveLen(4))
		for _, p := range primes {
			ok, err := TrialDivision(p)
			Expect(err).Should(BeNil())
			Expect(ok).Should(BeTrue())
		}
	})
})

var _ = Describe("GenerateWithFactorization", func() {
	It("produces a certificate whose P satisfies P-1 = 2*product(factors)", func() {
		src := newDetSource(11)
		cert, err := GenerateWithFactorization(6, 8, 3, 10, src)
		Expect(err).Should(BeNil())

		product := fromInt(1)
		for _, f := range cert.Factors {
			product = mul(product, f)
		}
		reconstructed := add(mul(fromInt(2), product), fromInt(1))
		Expect(cmp(reconstructed, cert.P)).Should(Equal(0))

		fermatOK, err := Fermat(cert.P, 8, src)
		Expect(err).Should(BeNil())
		Expect(fermatOK).Should(BeTrue())
	})
})

var _ = Describe("GenerateGost", func() {
	It("produces a prime of the target bit length", func() {
		src := newDetSource(17)
		var messages []string
		p, err := GenerateGost(20, func(msg string, sub bool) { messages = append(messages, msg) }, src)
		Expect(err).Should(BeNil())
		Expect(p.BitLength(radix)).Should(Equal(20))
		Expect(len(messages)).Should(BeNumerically(">", 0))
	})

	It("rejects targets below 17 bits", func() {
		src := newDetSource(1)
		_, err := GenerateGost(10, nil, src)
		Expect(err).Should(Equal(ErrGostBitLengthTooLow))
	})
})
