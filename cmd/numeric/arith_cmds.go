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

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"

	"github.com/amislabs/numeric/crypto/bigint"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "a + b",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a, b := mustParse(args[0], radix), mustParse(args[1], radix)
		fmt.Println(bigint.Format(bigint.Add(a, b, radix), radix))
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <a> <b>",
	Short: "a - b",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a, b := mustParse(args[0], radix), mustParse(args[1], radix)
		fmt.Println(bigint.Format(bigint.Sub(a, b, radix), radix))
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul <a> <b>",
	Short: "a * b",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a, b := mustParse(args[0], radix), mustParse(args[1], radix)
		fmt.Println(bigint.Format(bigint.Mul(a, b, radix), radix))
	},
}

var divCmd = &cobra.Command{
	Use:   "div <a> <b>",
	Short: "quotient and remainder of a / b",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a, b := mustParse(args[0], radix), mustParse(args[1], radix)
		q, r, err := bigint.Divide(a, b, radix)
		if err != nil {
			log.Crit("division failed", "err", err)
		}
		fmt.Printf("%s %s\n", bigint.Format(q, radix), bigint.Format(r, radix))
	},
}

var gcdCmd = &cobra.Command{
	Use:   "gcd <a> <b>",
	Short: "greatest common divisor of a and b",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a, b := mustParse(args[0], radix), mustParse(args[1], radix)
		fmt.Println(bigint.Format(bigint.Gcd(a, b, radix), radix))
	},
}

var extgcdCmd = &cobra.Command{
	Use:   "extgcd <a> <b>",
	Short: "d, x, y such that d = gcd(a, b) = a*x + b*y",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		a, b := mustParse(args[0], radix), mustParse(args[1], radix)
		d, x, y := bigint.ExtendedGcd(a, b, radix)
		fmt.Printf("%s %s %s\n", bigint.Format(d, radix), bigint.Format(x, radix), bigint.Format(y, radix))
	},
}
