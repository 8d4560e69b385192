// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Translated from DoubleToDecimal.java / FloatToDecimal.java.

package schubfach

import "math/bits"

const mask63 = 1<<63 - 1

// rop computes rop(cp * g * 2^-127), where g = g1*2^63 + g0, the top 64
// bits of the 126-bit by 63-bit product with a rounding flag ORed into the
// low bit to carry sticky-bit information forward. See section 9.10 and
// figure 5 of [1]. This is the hot loop of the whole kernel.
func rop(g1, g0, cp uint64) uint64 {
	x1, _ := bits.Mul64(g0, cp)
	y0 := g1 * cp
	y1, _ := bits.Mul64(g1, cp)
	z := (y0 >> 1) + x1
	vbp := y1 + (z >> 63)
	return vbp | ((z&mask63)+mask63)>>63
}
