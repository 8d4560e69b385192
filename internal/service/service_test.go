// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	v, err := ParseValue("0x3ff0000000000000")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = ParseValue("1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = ParseValue("nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = ParseValue("-inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	_, err = ParseValue("not a number")
	assert.Error(t, err)
}

func TestFormatAndClassify(t *testing.T) {
	s, shape := Format(0.1, false)
	assert.Equal(t, "0.1", s)
	assert.Equal(t, ShapePlainLeadingZeros, shape)

	s, shape = Format(1200.0, false)
	assert.Equal(t, "1200.0", s)
	assert.Equal(t, ShapePlainNoLeadingZeros, shape)

	s, shape = Format(1e23, false)
	assert.Equal(t, "1.0E23", s)
	assert.Equal(t, ShapeScientific, shape)

	s, shape = Format(0, false)
	assert.Equal(t, "0.0", s)
	assert.Equal(t, ShapeLiteral, shape)
}

func TestFormatAll(t *testing.T) {
	inputs := []string{"1.0", "0.1", "1e23", "not a number"}
	counts := &Counts{}
	results, err := FormatAll(context.Background(), inputs, false, 2, counts)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "1.0", results[0].Formatted)
	assert.Equal(t, "0.1", results[1].Formatted)
	assert.Equal(t, "1.0E23", results[2].Formatted)
	assert.Error(t, results[3].Err)

	snap := counts.Snapshot()
	assert.Equal(t, int64(1), snap[ShapePlainNoLeadingZeros.String()])
	assert.Equal(t, int64(1), snap[ShapePlainLeadingZeros.String()])
	assert.Equal(t, int64(1), snap[ShapeScientific.String()])
}
