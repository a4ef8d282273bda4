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
	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amislabs/numeric/crypto/bigint"
	"github.com/amislabs/numeric/internal/entropy"
)

// Config holds the defaults a config file (--config) can override:
// the default radix and the default round counts the probabilistic
// tests and generators fall back to when a subcommand's own flag is
// left unset.
type Config struct {
	Radix         int `mapstructure:"radix" yaml:"radix"`
	FermatRounds  int `mapstructure:"fermat_rounds" yaml:"fermat_rounds"`
	SSRounds      int `mapstructure:"ss_rounds" yaml:"ss_rounds"`
	PocklingtonWitnesses int `mapstructure:"pocklington_witnesses" yaml:"pocklington_witnesses"`
}

func defaultConfig() Config {
	return Config{
		Radix:                10,
		FermatRounds:         10,
		SSRounds:             10,
		PocklingtonWitnesses: 10,
	}
}

// loadConfig reads the config file named by --config, if any, layering
// it over defaultConfig's values via viper.
func loadConfig(cmd *cobra.Command) Config {
	cfg := defaultConfig()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return cfg
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		log.Crit("failed to read config file", "configFile", path, "err", err)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Crit("failed to parse config file", "configFile", path, "err", err)
	}
	return cfg
}

// radixFromCmd resolves the effective radix: the --radix flag if the
// caller set it explicitly, else the config file's radix, else 10.
func radixFromCmd(cmd *cobra.Command) int {
	radix := loadConfig(cmd).Radix
	if cmd.Flags().Changed("radix") {
		radix, _ = cmd.Flags().GetInt("radix")
	}
	if radix < 2 || radix > 36 {
		log.Crit("radix out of range", "radix", radix)
	}
	return radix
}

// mustParse parses s in the given radix or exits fatally via log.Crit,
// matching the teacher's convention of treating bad CLI input as a
// fatal edge condition rather than a returned error.
func mustParse(s string, radix int) bigint.Int {
	n, err := bigint.Parse(s, radix)
	if err != nil {
		log.Crit("invalid operand", "value", s, "radix", radix, "err", err)
	}
	return n
}

func randomSource() entropy.Source {
	return entropy.Default
}

// toBase10/fromBase10 bridge between the CLI's caller-chosen radix and
// modarith/primality, which work internally in base 10 (§3's "the core
// consistently uses base 10 internally for L2/L3 work").
func toBase10(n bigint.Int, radix int) bigint.Int {
	if radix == 10 {
		return n
	}
	return bigint.ConvertRadix(n, radix, 10)
}

func fromBase10(n bigint.Int, radix int) bigint.Int {
	if radix == 10 {
		return n
	}
	return bigint.ConvertRadix(n, 10, radix)
}
