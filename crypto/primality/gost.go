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
	"github.com/amislabs/numeric/internal/entropy"
	"github.com/amislabs/numeric/logger"
)

// ProgressFunc reports GOST cascade progress. isSubStep distinguishes a
// per-candidate probe from a per-level milestone message. It must be
// safe to call synchronously and repeatedly; GenerateGost calls it
// inline on the generating goroutine.
type ProgressFunc func(message string, isSubStep bool)

// gostTest checks the two GOST R 34.10-94 conditions for p = N*prev+1:
// 2^(p-1) === 1 (mod p), and 2^N !== 1 (mod p).
func gostTest(p, nCandidate bigint.Int) (bool, error) {
	two := fromInt(2)
	pMinus1 := sub(p, fromInt(1))

	cond1, err := modPow(two, pMinus1, p)
	if err != nil {
		return false, err
	}
	if cmp(cond1, fromInt(1)) != 0 {
		return false, nil
	}

	cond2, err := modPow(two, nCandidate, p)
	if err != nil {
		return false, err
	}
	if cmp(cond2, fromInt(1)) == 0 {
		return false, nil
	}
	return true, nil
}

// GenerateGost builds a prime of targetBitLength bits via the GOST
// R 34.10-94 descending-then-ascending cascade: a small seed prime is
// generated by trial division, then repeatedly promoted to roughly
// double the bit length until it reaches the target, at each step
// searching N so that p_next = p_current*N + 1 passes gostTest.
func GenerateGost(targetBitLength int, progress ProgressFunc, src entropy.Source) (bigint.Int, error) {
	if targetBitLength < 17 {
		return bigint.Int{}, ErrGostBitLengthTooLow
	}

	tList := []int{targetBitLength}
	for tList[len(tList)-1] >= 34 {
		tList = append(tList, tList[len(tList)-1]/2)
	}
	for i, j := 0, len(tList)-1; i < j; i, j = i+1, j-1 {
		tList[i], tList[j] = tList[j], tList[i]
	}

	ts := tList[0]
	report(progress, "generating seed prime", false)
	seeds, err := GenerateSmallPrimes(1, ts, src)
	if err != nil {
		return bigint.Int{}, err
	}
	pCurrent := seeds[0]
	report(progress, "seed prime found", false)

	two := fromInt(2)
	for i := 0; i < len(tList)-1; i++ {
		pi := pCurrent
		tNext := tList[i+1]
		report(progress, "promoting to next bit length", false)

		minPNext := bigint.Pow(two, int64(tNext-1), radix)
		N := bigint.CeilDivide(minPNext, pi, radix)
		if !N.IsEven(radix) {
			N = add(N, fromInt(1))
		}

		for {
			pNext := add(mul(pi, N), fromInt(1))

			if pNext.BitLength(radix) > tNext {
				N = add(N, two)
				continue
			}

			report(progress, "testing candidate", true)
			logger.Logger().Debug("gost candidate", "bits", tNext)
			ok, err := gostTest(pNext, N)
			if err != nil {
				return bigint.Int{}, err
			}
			if ok {
				pCurrent = pNext
				logger.Logger().Info("gost intermediate prime accepted", "bits", tNext)
				report(progress, "intermediate prime found", false)
				break
			}
			N = add(N, two)
		}
	}

	report(progress, "generation complete", false)
	return pCurrent, nil
}

func report(progress ProgressFunc, message string, isSubStep bool) {
	if progress != nil {
		progress(message, isSubStep)
	}
}
