// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/spf13/viper"
)

// Settings holds analysis settings. Only the linear "static" analysis is implemented;
// the nonlinear flags, tolerance and number of iterations are accepted and ignored
type Settings struct {
	Type                  string  `json:"type" mapstructure:"type"`                                                 // "static", "dynamic" or "modal"
	Tolerance             float64 `json:"tolerance" mapstructure:"tolerance"`                                       // convergence tolerance
	MaxIterations         int     `json:"maxIterations" mapstructure:"maxIterations"`                               // max number of iterations
	GeometricNonlinearity bool    `json:"includeGeometricNonlinearity" mapstructure:"includeGeometricNonlinearity"` // large displacements
	MaterialNonlinearity  bool    `json:"includeMaterialNonlinearity" mapstructure:"includeMaterialNonlinearity"`   // plasticity
	LinSol                string  `json:"linSol" mapstructure:"linSol"`                                             // linear solver: "lu", "cholesky" or "inverse"
}

// DefaultSettings returns the default (linear static) settings
func DefaultSettings() *Settings {
	return &Settings{
		Type:          "static",
		Tolerance:     1e-6,
		MaxIterations: 100,
		LinSol:        "lu",
	}
}

// SetDefault fills empty fields with default values
func (o *Settings) SetDefault() {
	d := DefaultSettings()
	if o.Type == "" {
		o.Type = d.Type
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.LinSol == "" {
		o.LinSol = d.LinSol
	}
}

// ArchiveConfig holds the database used to archive results
type ArchiveConfig struct {
	Driver string `json:"driver" mapstructure:"driver"` // "sqlite" or "postgres"; empty disables archiving
	DSN    string `json:"dsn" mapstructure:"dsn"`       // file path (sqlite) or connection string (postgres)
}

// ReportConfig holds options for reports
type ReportConfig struct {
	Colormap string `json:"colormap" mapstructure:"colormap"` // "rainbow", "heat", "viridis" or "grayscale"
}

// Config holds the configuration of the command line tool
type Config struct {
	LogLevel string        `json:"logLevel" mapstructure:"logLevel"`
	Settings Settings      `json:"analysis" mapstructure:"analysis"`
	Archive  ArchiveConfig `json:"archive" mapstructure:"archive"`
	Report   ReportConfig  `json:"report" mapstructure:"report"`
}

// LoadConfig reads configuration from file (if fn != "") and from GOFEA_* environment variables
//  Example: GOFEA_ANALYSIS_LINSOL=cholesky
func LoadConfig(fn string) (cfg *Config, err error) {
	v := viper.New()
	d := DefaultSettings()
	v.SetDefault("logLevel", "info")
	v.SetDefault("analysis.type", d.Type)
	v.SetDefault("analysis.tolerance", d.Tolerance)
	v.SetDefault("analysis.maxIterations", d.MaxIterations)
	v.SetDefault("analysis.includeGeometricNonlinearity", false)
	v.SetDefault("analysis.includeMaterialNonlinearity", false)
	v.SetDefault("analysis.linSol", d.LinSol)
	v.SetDefault("archive.driver", "")
	v.SetDefault("archive.dsn", "")
	v.SetDefault("report.colormap", "rainbow")

	v.SetEnvPrefix("gofea")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fn != "" {
		v.SetConfigFile(fn)
		if err = v.ReadInConfig(); err != nil {
			return nil, chk.Err("cannot read config file %q:\n%v", fn, err)
		}
	}

	cfg = new(Config)
	if err = v.Unmarshal(cfg); err != nil {
		return nil, chk.Err("cannot decode configuration:\n%v", err)
	}
	cfg.Settings.SetDefault()
	return
}
