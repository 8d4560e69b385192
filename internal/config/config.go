// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the YAML configuration shared by the batch and
// serve subcommands of cmd/schubfach.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level document read from a --config file.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel"`

	// Workers bounds the number of goroutines batch uses to format
	// values concurrently. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Batch *BatchConfig `yaml:"batch,omitempty"`
	Serve *ServeConfig `yaml:"serve,omitempty"`
}

// BatchConfig configures the batch subcommand.
type BatchConfig struct {
	// Input is the path to a newline-delimited list of values, or "-"
	// for stdin.
	Input string `yaml:"input"`
	// Output is the path to write "value,formatted" pairs, or "-" for
	// stdout.
	Output string `yaml:"output"`
	// Float32 formats every value as binary32 instead of binary64.
	Float32 bool `yaml:"float32"`
}

// ServeConfig configures the serve subcommand.
type ServeConfig struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no --config file is given.
func Default() *Config {
	cfg := &Config{
		LogLevel: "info",
		Batch: &BatchConfig{
			Input:  "-",
			Output: "-",
		},
		Serve: &ServeConfig{
			Addr: ":8080",
		},
	}
	applyEnv(cfg)
	return cfg
}

// Load reads and decodes the YAML document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides cfg's fields from environment variables named
// SCHUBFACH_<STRUCT TAG PATH>, uppercased with underscores in place of
// dots and between camelCase words, e.g. SCHUBFACH_LOG_LEVEL for the "logLevel" tag and
// SCHUBFACH_BATCH_FLOAT32 for "batch.float32". An override is applied
// only when the variable is set; malformed bool/int values are ignored.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("SCHUBFACH_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("SCHUBFACH_WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v, ok := os.LookupEnv("SCHUBFACH_BATCH_INPUT"); ok {
		cfg.Batch.Input = v
	}
	if v, ok := os.LookupEnv("SCHUBFACH_BATCH_OUTPUT"); ok {
		cfg.Batch.Output = v
	}
	if v, ok := os.LookupEnv("SCHUBFACH_BATCH_FLOAT32"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Batch.Float32 = b
		}
	}
	if v, ok := os.LookupEnv("SCHUBFACH_SERVE_ADDR"); ok {
		cfg.Serve.Addr = v
	}
}
