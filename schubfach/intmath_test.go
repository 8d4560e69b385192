// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import (
	"math"
	"testing"
)

// flog10pow2 is documented correct for |e| <= 300000.
func TestFlog10pow2(t *testing.T) {
	for e := -300000; e <= 300000; e++ {
		want := int(math.Floor(float64(e) * math.Log10(2)))
		if got := flog10pow2(e); got != want {
			t.Errorf("flog10pow2(%d) = %d, want %d", e, got, want)
		}
	}
}

// flog2pow10 is documented correct for |e| <= 100000.
func TestFlog2pow10(t *testing.T) {
	for e := -100000; e <= 100000; e++ {
		want := int(math.Floor(float64(e) * math.Log2(10)))
		if got := flog2pow10(e); got != want {
			t.Errorf("flog2pow10(%d) = %d, want %d", e, got, want)
		}
	}
}

// flog10ThreeQuartersPow2 is documented correct for |e| <= 300000.
func TestFlog10ThreeQuartersPow2(t *testing.T) {
	for e := -300000; e <= 300000; e++ {
		want := int(math.Floor(math.Log10(0.75) + float64(e)*math.Log10(2)))
		if got := flog10ThreeQuartersPow2(e); got != want {
			t.Errorf("flog10ThreeQuartersPow2(%d) = %d, want %d", e, got, want)
		}
	}
}
