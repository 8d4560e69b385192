// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `
logLevel: debug
workers: 4
batch:
  input: in.txt
  output: out.csv
  float32: true
serve:
  addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "in.txt", cfg.Batch.Input)
	assert.Equal(t, "out.csv", cfg.Batch.Output)
	assert.True(t, cfg.Batch.Float32)
	assert.Equal(t, ":9090", cfg.Serve.Addr)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "-", cfg.Batch.Input)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("SCHUBFACH_LOG_LEVEL", "debug")
	t.Setenv("SCHUBFACH_WORKERS", "8")
	t.Setenv("SCHUBFACH_SERVE_ADDR", ":1234")

	cfg := Default()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, ":1234", cfg.Serve.Addr)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := "logLevel: warn\nbatch:\n  float32: false\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	t.Setenv("SCHUBFACH_LOG_LEVEL", "error")
	t.Setenv("SCHUBFACH_BATCH_FLOAT32", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Batch.Float32)
}
