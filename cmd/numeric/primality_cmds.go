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
	"github.com/amislabs/numeric/crypto/primality"
)

func init() {
	fermatCmd.Flags().Int("rounds", 0, "override the configured Fermat round count")
	ssCmd.Flags().Int("rounds", 0, "override the configured Solovay-Strassen round count")
	genprimeCmd.Flags().Int("rounds", 0, "override the configured Solovay-Strassen round count")
	genpockCmd.Flags().Int("witnesses", 0, "override the configured Pocklington witness count")
}

func roundsOrDefault(cmd *cobra.Command, cfgDefault int) int {
	if v, _ := cmd.Flags().GetInt("rounds"); v > 0 {
		return v
	}
	return cfgDefault
}

var fermatCmd = &cobra.Command{
	Use:   "fermat <p>",
	Short: "Fermat probabilistic primality test",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		cfg := loadConfig(cmd)
		p := toBase10(mustParse(args[0], radix), radix)

		ok, err := primality.Fermat(p, roundsOrDefault(cmd, cfg.FermatRounds), randomSource())
		if err != nil {
			log.Crit("fermat failed", "err", err)
		}
		fmt.Println(ok)
	},
}

var ssCmd = &cobra.Command{
	Use:   "ss <p>",
	Short: "Solovay-Strassen probabilistic primality test",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		cfg := loadConfig(cmd)
		p := toBase10(mustParse(args[0], radix), radix)

		ok, err := primality.SolovayStrassen(p, roundsOrDefault(cmd, cfg.SSRounds), randomSource())
		if err != nil {
			log.Crit("solovay-strassen failed", "err", err)
		}
		fmt.Println(ok)
	},
}

var trialCmd = &cobra.Command{
	Use:   "trial <n>",
	Short: "deterministic trial-division primality test (n up to 18 decimal digits)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		nVal := toBase10(mustParse(args[0], radix), radix)

		ok, err := primality.TrialDivision(nVal)
		if err != nil {
			log.Crit("trial division failed", "err", err)
		}
		fmt.Println(ok)
	},
}

var genprimeCmd = &cobra.Command{
	Use:   "genprime <bits>",
	Short: "generate a pseudoprime of the given bit length",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		cfg := loadConfig(cmd)
		bits, err := strconv.Atoi(args[0])
		if err != nil {
			log.Crit("invalid bit length", "value", args[0], "err", err)
		}

		p, err := primality.GeneratePrime(bits, roundsOrDefault(cmd, cfg.SSRounds), randomSource())
		if err != nil {
			log.Crit("genprime failed", "err", err)
		}
		fmt.Println(bigint.Format(fromBase10(p, radix), radix))
	},
}

var genpockCmd = &cobra.Command{
	Use:   "genpock <small-primes-count> <small-primes-bits> <h>",
	Short: "generate a prime with a Pocklington certificate of a known P-1 factorization",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		cfg := loadConfig(cmd)

		count, err := strconv.Atoi(args[0])
		if err != nil {
			log.Crit("invalid small-primes-count", "value", args[0], "err", err)
		}
		bits, err := strconv.Atoi(args[1])
		if err != nil {
			log.Crit("invalid small-primes-bits", "value", args[1], "err", err)
		}
		h, err := strconv.Atoi(args[2])
		if err != nil {
			log.Crit("invalid h", "value", args[2], "err", err)
		}

		witnesses := cfg.PocklingtonWitnesses
		if v, _ := cmd.Flags().GetInt("witnesses"); v > 0 {
			witnesses = v
		}

		cert, err := primality.GenerateWithFactorization(count, bits, h, witnesses, randomSource())
		if err != nil {
			log.Crit("genpock failed", "err", err)
		}

		fmt.Println(bigint.Format(fromBase10(cert.P, radix), radix))
		for _, f := range cert.Factors {
			fmt.Printf(" factor %s\n", bigint.Format(fromBase10(f, radix), radix))
		}
	},
}

var gengostCmd = &cobra.Command{
	Use:   "gengost <bits>",
	Short: "generate a prime via the GOST R 34.10-94 descending cascade",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		radix := radixFromCmd(cmd)
		bits, err := strconv.Atoi(args[0])
		if err != nil {
			log.Crit("invalid bit length", "value", args[0], "err", err)
		}

		p, err := primality.GenerateGost(bits, func(message string, isSubStep bool) {
			log.Debug("gengost progress", "message", message, "subStep", isSubStep)
		}, randomSource())
		if err != nil {
			log.Crit("gengost failed", "err", err)
		}
		fmt.Println(bigint.Format(fromBase10(p, radix), radix))
	},
}
