// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBatchInputFlatText(t *testing.T) {
	lines, err := readBatchInput(strings.NewReader("1.0\n0.1\n\n1e23\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0", "0.1", "1e23"}, lines)
}

func TestReadBatchInputYAMLList(t *testing.T) {
	doc := "- 1.0\n- 0.1\n- 1e23\n"
	lines, err := readBatchInput(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0", "0.1", "1e23"}, lines)
}

func TestReadBatchInputSingleFlatValue(t *testing.T) {
	lines, err := readBatchInput(strings.NewReader("0.1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"0.1"}, lines)
}
