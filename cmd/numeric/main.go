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

// Command numeric is the command-line front end for the long-arithmetic,
// modular-arithmetic, and primality layers: one subcommand per core
// operation, driving the core with decimal (or base-R) strings the way
// a GUI's input tabs would.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "numeric",
	Short: "Arbitrary-precision arithmetic, modular arithmetic, and primality toolkit",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path")
	rootCmd.PersistentFlags().Int("radix", 10, "positional radix in [2, 36] for operand parsing and output")

	rootCmd.AddCommand(addCmd, subCmd, mulCmd, divCmd, gcdCmd, extgcdCmd)
	rootCmd.AddCommand(modpowCmd, fastmodmulCmd, crtCmd, totientCmd, legendreCmd, jacobiCmd, qresCmd, cresCmd)
	rootCmd.AddCommand(fermatCmd, ssCmd, trialCmd, genprimeCmd, genpockCmd, gengostCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
