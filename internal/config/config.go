// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides environment configuration for the toobig command.
//
// Configuration is loaded from environment variables with sensible defaults.
// Command line flags override environment variables.
//
// Environment Variables:
//   - TOOBIG_LOG_LEVEL: debug, info, warn or error (default info)
//   - TOOBIG_LOG_DEV: development logging (default false)
//   - TOOBIG_OUTPUT: text or json (default text)
//   - TOOBIG_FORMAT: g or e (default g)
//   - TOOBIG_PREC: mantissa digits after the decimal point, -1 for the
//     shortest representation (default -1)
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/zeebo/errs"
)

// Error is the error class of configuration errors.
var Error = errs.Class("config")

// Config holds the command configuration.
type Config struct {
	Logging LogConfig
	Output  OutputConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level       string `envconfig:"TOOBIG_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"TOOBIG_LOG_DEV" default:"false"`
}

// OutputConfig holds the settings used to print results.
type OutputConfig struct {
	Encoding string `envconfig:"TOOBIG_OUTPUT" default:"text"`
	Format   string `envconfig:"TOOBIG_FORMAT" default:"g"`
	Prec     int    `envconfig:"TOOBIG_PREC" default:"-1"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, Error.Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Encoding: "text",
			Format:   "g",
			Prec:     -1,
		},
	}
}

// Validate checks the output settings.
func (c *Config) Validate() error {
	switch c.Output.Encoding {
	case "text", "json":
	default:
		return Error.New("invalid output encoding %q", c.Output.Encoding)
	}
	switch c.Output.Format {
	case "g", "e":
	default:
		return Error.New("invalid number format %q", c.Output.Format)
	}
	if c.Output.Prec < -1 {
		return Error.New("invalid precision %d", c.Output.Prec)
	}
	return nil
}
