// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/nakanishi-coder/gofea/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// global options
var (
	cfgFile  string      // configuration file
	logLevel string      // overrides configuration
	cfg      *inp.Config // configuration
	logger   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gofea",
	Short: "Linear static analysis of 3D frames",
	Long: `gofea computes displacements, reactions, internal forces and stresses of 3D frames
made of Euler-Bernoulli beams.

Configuration is read from an optional JSON or YAML file and from GOFEA_* environment
variables; e.g. GOFEA_ANALYSIS_LINSOL=cholesky or GOFEA_LOGLEVEL=debug.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// setup loads the configuration and builds the logger
func setup(cmd *cobra.Command, args []string) (err error) {
	cfg, err = inp.LoadConfig(cfgFile)
	if err != nil {
		return
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return chk.Err("invalid log level %q", cfg.LogLevel)
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(2)
		}
	}()

	// run command
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
