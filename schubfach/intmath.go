// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Translated from DoubleToDecimal.java / FloatToDecimal.java.

package schubfach

// These three functions replace calls to math.Log10/math.Log2 with a single
// signed 64-bit multiply by a fixed-point constant followed by a floor
// (sign-correct) shift. Section 9.1 of [1] derives the constants and the
// correctness ranges; they are exact far beyond any exponent a finite
// float can ever produce.

const (
	// floor(log10(2^e)) = floor(e * log10(2)), correct for |e| <= 300000.
	_log10_2_num = 661971961083
	_log10_2_den = 41

	// floor(log2(10^e)) = floor(e * log2(10)), correct for |e| <= 100000.
	_log2_10_num = 456562320870
	_log2_10_den = 37

	// floor(log10(3/4 * 2^e)) subtracts log10(4/3), scaled to the same
	// denominator as _log10_2_num, before the shift. Correct for |e| <= 300000.
	_log10_3q_adj = 274743187321
)

// flog10pow2 returns floor(log10(2^e)).
func flog10pow2(e int) int {
	return floorShift(int64(e)*_log10_2_num, _log10_2_den)
}

// flog2pow10 returns floor(log2(10^e)).
func flog2pow10(e int) int {
	return floorShift(int64(e)*_log2_10_num, _log2_10_den)
}

// flog10ThreeQuartersPow2 returns floor(log10((3/4) 2^e)).
func flog10ThreeQuartersPow2(e int) int {
	return floorShift(int64(e)*_log10_2_num-_log10_3q_adj, _log10_2_den)
}

// floorShift computes prod / 2^s rounded toward negative infinity.
func floorShift(prod int64, s int) int {
	if prod >= 0 {
		return int(prod >> uint(s))
	}
	return -int((-prod + 1<<uint(s) - 1) >> uint(s))
}
