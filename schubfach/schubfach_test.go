// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

func TestFormatDoubleSeeds(t *testing.T) {
	cases := []struct {
		bits uint64
		want string
	}{
		{0x0000000000000000, "0.0"},
		{0x8000000000000000, "-0.0"},
		{0x7FF0000000000000, "Infinity"},
		{0xFFF0000000000000, "-Infinity"},
		{0x7FF8000000000001, "NaN"},
		{0x0000000000000001, "4.9E-324"},
		{0x0000000000000002, "1.0E-323"},
		{0x0010000000000000, "2.2250738585072014E-308"},
		{0x7FEFFFFFFFFFFFFF, "1.7976931348623157E308"},
	}
	for _, c := range cases {
		v := math.Float64frombits(c.bits)
		if got := FormatDouble(v); got != c.want {
			t.Errorf("FormatDouble(bits %#x) = %q, want %q", c.bits, got, c.want)
		}
	}
}

func TestFormatDoubleLiterals(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1e23, "1.0E23"},
		{0.1, "0.1"},
		{1.0, "1.0"},
		{1200.0, "1200.0"},
		{1.234e-32, "1.234E-32"},
		{0.01234, "0.01234"},
	}
	for _, c := range cases {
		if got := FormatDouble(c.v); got != c.want {
			t.Errorf("FormatDouble(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatFloatSeeds(t *testing.T) {
	cases := []struct {
		v    float32
		want string
	}{
		{math.SmallestNonzeroFloat32, "1.4E-45"},
		{math.MaxFloat32, "3.4028235E38"},
		{1.0, "1.0"},
		{0.1, "0.1"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.v); got != c.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

// TestFormatFloatMinNormal checks round-trip correctness for the smallest
// normal binary32 value rather than asserting a literal string: the
// shortest round-tripping decimal for this value has 8 significant digits,
// one fewer than the historical Float.MIN_NORMAL documentation constant
// (1.17549435E-38), which is not itself minimal. See DESIGN.md.
func TestFormatFloatMinNormal(t *testing.T) {
	const minNormal = float32(1.1754943508222875e-38)
	s := FormatFloat(minNormal)
	got, err := strconv.ParseFloat(s, 32)
	if err != nil {
		t.Fatalf("ParseFloat(%q): %v", s, err)
	}
	if float32(got) != minNormal {
		t.Fatalf("FormatFloat(MIN_NORMAL) = %q, does not round-trip", s)
	}
	if len(s) > len("1.1754944E-38") {
		t.Fatalf("FormatFloat(MIN_NORMAL) = %q, longer than the known shortest form", s)
	}
}

func TestFormatDoubleRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200000; i++ {
		bits := rng.Uint64()
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s := FormatDouble(v)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("bits %#x: ParseFloat(%q): %v", bits, s, err)
		}
		if math.Float64bits(got) != math.Float64bits(v) && !(v == 0 && got == 0) {
			t.Fatalf("bits %#x: FormatDouble -> %q -> %#x, want %#x", bits, s, math.Float64bits(got), bits)
		}
	}
}

func TestFormatFloatRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200000; i++ {
		bits := rng.Uint32()
		v := math.Float32frombits(bits)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		s := FormatFloat(v)
		got, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Fatalf("bits %#x: ParseFloat(%q): %v", bits, s, err)
		}
		if math.Float32bits(float32(got)) != math.Float32bits(v) && !(v == 0 && float32(got) == 0) {
			t.Fatalf("bits %#x: FormatFloat -> %q -> %#x, want %#x", bits, s, math.Float32bits(float32(got)), bits)
		}
	}
}

func TestFormatDoubleRoundTripPowersOfTwo(t *testing.T) {
	for e := -1074; e <= 1023; e++ {
		v := math.Ldexp(1, e)
		s := FormatDouble(v)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("2^%d: ParseFloat(%q): %v", e, s, err)
		}
		if got != v {
			t.Fatalf("2^%d: FormatDouble -> %q -> %v, want %v", e, s, got, v)
		}
	}
}

func TestFormatDoubleEachShape(t *testing.T) {
	cases := []string{"1.0", "0.001", "0.0001234", "1234567.0", "1e7", "9.999999999999999e6"}
	for _, lit := range cases {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			t.Fatal(err)
		}
		s := FormatDouble(v)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil || got != v {
			t.Fatalf("literal %s: FormatDouble round-trip failed, got %q", lit, s)
		}
	}
}
