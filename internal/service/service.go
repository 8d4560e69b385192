// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package service holds the logic shared by the batch and serve
// subcommands of cmd/schubfach: parsing an input value, dispatching to
// the schubfach package, and counting results by output shape.
package service

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/go-schubfach/schubfach/schubfach"
)

// Shape classifies a formatted string by its output form — plain with
// leading zeros, plain without leading zeros, scientific notation, or
// a literal (NaN, Infinity, -Infinity, zero) — for metrics purposes.
type Shape int

const (
	ShapePlainLeadingZeros Shape = iota
	ShapePlainNoLeadingZeros
	ShapeScientific
	ShapeLiteral // NaN, Infinity, -Infinity, 0.0, -0.0
)

func (s Shape) String() string {
	switch s {
	case ShapePlainLeadingZeros:
		return "plain_lz"
	case ShapePlainNoLeadingZeros:
		return "plain_nolz"
	case ShapeScientific:
		return "scientific"
	case ShapeLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// ParseValue parses s as a bit pattern ("0x..."), a literal
// "nan"/"inf"/"-inf", or a decimal number, returning the binary64
// value it denotes.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan":
		return math.NaN(), nil
	case "inf", "+inf", "infinity":
		return math.Inf(1), nil
	case "-inf", "-infinity":
		return math.Inf(-1), nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		bits, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing bit pattern %q: %w", s, err)
		}
		return math.Float64frombits(bits), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing value %q: %w", s, err)
	}
	return v, nil
}

// ParseBits parses s as a raw hexadecimal IEEE 754 bit pattern, without
// requiring a "0x" prefix, at the width asFloat32 selects (32 bits for
// binary32, 64 for binary64). This is the exact-reproduction path for
// seed values given as bit patterns rather than decimal literals.
func ParseBits(s string, asFloat32 bool) (float64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	width := 64
	if asFloat32 {
		width = 32
	}
	bits, err := strconv.ParseUint(s, 16, width)
	if err != nil {
		return 0, fmt.Errorf("parsing bit pattern %q: %w", s, err)
	}
	if asFloat32 {
		return float64(math.Float32frombits(uint32(bits))), nil
	}
	return math.Float64frombits(bits), nil
}

// Format runs the binary64 or binary32 formatter over v and classifies
// the resulting shape.
func Format(v float64, asFloat32 bool) (string, Shape) {
	var s string
	if asFloat32 {
		s = schubfach.FormatFloat(float32(v))
	} else {
		s = schubfach.FormatDouble(v)
	}
	return s, classify(s)
}

func classify(s string) Shape {
	switch s {
	case "NaN", "Infinity", "-Infinity", "0.0", "-0.0":
		return ShapeLiteral
	}
	body := s
	if strings.HasPrefix(body, "-") {
		body = body[1:]
	}
	if strings.Contains(body, "E") {
		return ShapeScientific
	}
	if strings.HasPrefix(body, "0.") {
		return ShapePlainLeadingZeros
	}
	return ShapePlainNoLeadingZeros
}

// Counts tallies formatted results by shape; safe for concurrent use.
type Counts struct {
	literal, plainLZ, plainNoLZ, scientific atomic.Int64
}

func (c *Counts) add(sh Shape) {
	switch sh {
	case ShapeLiteral:
		c.literal.Add(1)
	case ShapePlainLeadingZeros:
		c.plainLZ.Add(1)
	case ShapePlainNoLeadingZeros:
		c.plainNoLZ.Add(1)
	case ShapeScientific:
		c.scientific.Add(1)
	}
}

// Snapshot returns the current counts by shape name.
func (c *Counts) Snapshot() map[string]int64 {
	return map[string]int64{
		ShapeLiteral.String():             c.literal.Load(),
		ShapePlainLeadingZeros.String():   c.plainLZ.Load(),
		ShapePlainNoLeadingZeros.String(): c.plainNoLZ.Load(),
		ShapeScientific.String():          c.scientific.Load(),
	}
}

// Result pairs an input line with its formatted output, preserving the
// caller's original index so ordered output can be reconstructed after
// concurrent processing.
type Result struct {
	Index     int
	Input     string
	Formatted string
	Err       error
}

// FormatAll formats every value in inputs concurrently across workers
// goroutines (GOMAXPROCS if workers <= 0), tallying shape counts into
// counts if non-nil, and returns one Result per input in input order.
func FormatAll(ctx context.Context, inputs []string, asFloat32 bool, workers int, counts *Counts) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, line := range inputs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		g.Go(func() error {
			defer func() { <-sem }()
			v, err := ParseValue(line)
			if err != nil {
				results[i] = Result{Index: i, Input: line, Err: err}
				return nil
			}
			s, shape := Format(v, asFloat32)
			if counts != nil {
				counts.add(shape)
			}
			results[i] = Result{Index: i, Input: line, Formatted: s}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
