// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCmd(t *testing.T) {
	cmd := newFormatCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"0.1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0.1\n", out.String())
}

func TestFormatCmdFloat32(t *testing.T) {
	cmd := newFormatCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--float32", "1.0"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.0\n", out.String())
}

func TestFormatCmdBadValue(t *testing.T) {
	cmd := newFormatCmd()
	cmd.SetArgs([]string{"not-a-number"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	assert.Error(t, cmd.Execute())
}

func TestFormatCmdBits(t *testing.T) {
	cmd := newFormatCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--bits", "3ff0000000000000"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.0\n", out.String())
}

func TestFormatCmdBitsFloat32(t *testing.T) {
	cmd := newFormatCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--float32", "--bits", "0x3f800000"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.0\n", out.String())
}

func TestFormatCmdBitsAndValueConflict(t *testing.T) {
	cmd := newFormatCmd()
	cmd.SetArgs([]string{"--bits", "3ff0000000000000", "0.1"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	assert.Error(t, cmd.Execute())
}
