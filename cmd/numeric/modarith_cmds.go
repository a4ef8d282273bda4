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

package main

import (
	"fmt"
	"strconv"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"

	"github.com/amislabs/numeric/crypto/bigint"
	"github.com/amislabs/numeric/crypto/modarith"
)

var modpowCmd = &cobra.Command{
	Use:   "modpow <base> <exp> <mod>",
	Short: "base^exp mod m",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		base := toBase10(mustParse(args[0], radix), radix)
		exp := toBase10(mustParse(args[1], radix), radix)
		m := toBase10(mustParse(args[2], radix), radix)

		result, err := modarith.ModPow(base, exp, m)
		if err != nil {
			log.Crit("modpow failed", "err", err)
		}
		fmt.Println(bigint.Format(fromBase10(result, radix), radix))
	},
}

var fastmodmulCmd = &cobra.Command{
	Use:   "fastmodmul <a> <b> <n> <c> <+|->",
	Short: "a*b mod (2^n +- c)",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a := toBase10(mustParse(args[0], radix), radix)
		b := toBase10(mustParse(args[1], radix), radix)
		n, err := strconv.Atoi(args[2])
		if err != nil {
			log.Crit("invalid n", "value", args[2], "err", err)
		}
		c := toBase10(mustParse(args[3], radix), radix)
		plus := args[4] == "+"

		result, p, err := modarith.FastModMul(a, b, n, c, plus)
		if err != nil {
			log.Crit("fastmodmul failed", "err", err)
		}
		fmt.Printf("%s %s\n", bigint.Format(fromBase10(result, radix), radix), bigint.Format(fromBase10(p, radix), radix))
	},
}

var crtCmd = &cobra.Command{
	Use:   "crt <a1> <n1> [<a2> <n2> ...]",
	Short: "solve x = a_i (mod n_i) via the Chinese Remainder Theorem",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("crt requires pairs of <a> <n> arguments")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		var pairs []modarith.CongruencePair
		for i := 0; i < len(args); i += 2 {
			a := toBase10(mustParse(args[i], radix), radix)
			nMod := toBase10(mustParse(args[i+1], radix), radix)
			pairs = append(pairs, modarith.CongruencePair{A: a, N: nMod})
		}

		solution, modulus, err := modarith.CRT(pairs)
		if err != nil {
			log.Crit("crt failed", "err", err)
		}
		fmt.Printf("%s %s\n", bigint.Format(fromBase10(solution, radix), radix), bigint.Format(fromBase10(modulus, radix), radix))
	},
}

var totientCmd = &cobra.Command{
	Use:   "totient <m>",
	Short: "Euler's totient phi(m)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		m := toBase10(mustParse(args[0], radix), radix)
		fmt.Println(bigint.Format(fromBase10(modarith.EulerTotient(m), radix), radix))
	},
}

var legendreCmd = &cobra.Command{
	Use:   "legendre <a> <p>",
	Short: "Legendre symbol (a/p), p an odd prime",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a := toBase10(mustParse(args[0], radix), radix)
		p := toBase10(mustParse(args[1], radix), radix)
		result, err := modarith.Legendre(a, p)
		if err != nil {
			log.Crit("legendre failed", "err", err)
		}
		fmt.Println(result)
	},
}

var jacobiCmd = &cobra.Command{
	Use:   "jacobi <a> <n>",
	Short: "Jacobi symbol (a/n), n an odd positive integer",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a := toBase10(mustParse(args[0], radix), radix)
		nMod := toBase10(mustParse(args[1], radix), radix)
		result, err := modarith.Jacobi(a, nMod)
		if err != nil {
			log.Crit("jacobi failed", "err", err)
		}
		fmt.Println(result)
	},
}

var qresCmd = &cobra.Command{
	Use:   "qres <n>",
	Short: "quadratic residues mod n",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		nMod := toBase10(mustParse(args[0], radix), radix)
		residues, err := modarith.QuadraticResidues(nMod)
		if err != nil {
			log.Crit("qres failed", "err", err)
		}
		printResidues(residues, radix)
	},
}

var cresCmd = &cobra.Command{
	Use:   "cres <n>",
	Short: "cubic residues mod n",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		nMod := toBase10(mustParse(args[0], radix), radix)
		residues, err := modarith.CubicResidues(nMod)
		if err != nil {
			log.Crit("cres failed", "err", err)
		}
		printResidues(residues, radix)
	},
}

func printResidues(residues []bigint.Int, radix int) {
	for i, r := range residues {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(bigint.Format(fromBase10(r, radix), radix))
	}
	fmt.Println()
}
