// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Translated from DoubleToDecimal.java / FloatToDecimal.java.

package schubfach

import (
	"bytes"
	"math/bits"
)

// The formatter turns a (digits, k) pair from the kernel into the
// canonical ASCII text, using the division-free digit splits and the
// Bouvier & Zimmermann eight-digit emission from section 10 of [1] and
// reference [3], instead of repeated div-by-10.

const (
	split17c = 48357032784585167
	split9c  = 1441151881
	emit8c   = 193_428_131_138_340_668
)

// split17 normalizes a 17-digit value d' into its leading digit h and two
// 8-digit groups m, l, computed without division: hm =
// mulhi(d', 48357032784585167) >> 18, per [1].
func split17(dp uint64) (h, m, l uint64) {
	hi, _ := bits.Mul64(dp, split17c)
	hm := hi >> 18
	l = dp - 100_000_000*hm
	h = (hm * split9c) >> 57
	m = hm - 100_000_000*h
	return h, m, l
}

// split9 is the binary32 analogue: a 9-digit value d' splits into a
// leading digit h and a single 8-digit group l.
func split9(dp uint64) (h, l uint64) {
	h = (dp * split9c) >> 57
	l = dp - 100_000_000*h
	return h, l
}

// emit8 appends the 8 decimal digits of a (0 <= a < 1e8) to dst,
// left-to-right, using the division-free algorithm of [3]: y =
// floor((a+1)*2^28/10^8) - 1, computed via a single 64x64 multiply-high,
// then eight iterations of (y' = 10y; digit = y'>>28; y = y' & (2^28-1)).
func emit8(dst []byte, a uint64) {
	hi, _ := bits.Mul64((a+1)<<28, emit8c)
	y := (hi >> 20) - 1
	const mask28 = 1<<28 - 1
	for i := range 8 {
		y *= 10
		dst[i] = byte('0' + y>>28)
		y &= mask28
	}
}

// numDigits returns the number of decimal digits in d, 1 <= d < 1e18.
func numDigits(d uint64) int {
	n := 1
	for d >= 10 {
		d /= 10
		n++
	}
	return n
}

// layout64 fills buf with the H-digit left-to-right decimal expansion of d
// after padding it up to H digits (the "Normalization" step: multiply by
// 10^(H-n)), and returns n, the digit count before padding.
func layout64(buf *[h64]byte, d uint64) int {
	n := numDigits(d)
	dp := d
	for range h64 - n {
		dp *= 10
	}
	h, m, l := split17(dp)
	buf[0] = byte('0' + h)
	emit8(buf[1:9], m)
	emit8(buf[9:17], l)
	return n
}

func layout32(buf *[h32]byte, d uint64) int {
	n := numDigits(d)
	dp := d
	for range h32 - n {
		dp *= 10
	}
	h, l := split9(dp)
	buf[0] = byte('0' + h)
	emit8(buf[1:9], l)
	return n
}

// assemble lays out the canonical text given the full H-digit expansion
// `digits`, the true digit count n (<=H) before padding, the decimal
// exponent k from the kernel, and the sign. It chooses between plain
// and scientific notation and strips redundant trailing zeros while
// always leaving at least one digit after the decimal point.
func assemble(digits []byte, n, k int, sign bool) string {
	e := k + n - 1

	var buf [24]byte
	w := 0
	if sign {
		buf[w] = '-'
		w++
	}

	switch {
	case -3 <= e && e < 0:
		buf[w] = '0'
		w++
		buf[w] = '.'
		w++
		for range -e - 1 {
			buf[w] = '0'
			w++
		}
		w += copy(buf[w:], digits)

	case 0 <= e && e < 7:
		if n >= e+2 {
			w += copy(buf[w:], digits[:e+1])
			buf[w] = '.'
			w++
			w += copy(buf[w:], digits[e+1:n])
		} else {
			w += copy(buf[w:], digits[:n])
			for range e + 2 - n - 1 {
				buf[w] = '0'
				w++
			}
			buf[w] = '.'
			w++
			buf[w] = '0'
			w++
		}

	default:
		buf[w] = digits[0]
		w++
		buf[w] = '.'
		w++
		if n == 1 {
			buf[w] = '0'
			w++
		} else {
			w += copy(buf[w:], digits[1:n])
		}
		buf[w] = 'E'
		w++
		w += appendInt(buf[w:], e)
	}

	return stripTrailingZeros(buf[:w])
}

// appendInt writes the signed decimal form of e into dst and returns the
// number of bytes written. e is always small (|e| < 1000 for both formats).
func appendInt(dst []byte, e int) int {
	w := 0
	if e < 0 {
		dst[0] = '-'
		w = 1
		e = -e
	}
	var tmp [4]byte
	t := 0
	if e == 0 {
		tmp[0] = '0'
		t = 1
	}
	for e > 0 {
		tmp[t] = byte('0' + e%10)
		t++
		e /= 10
	}
	for i := t - 1; i >= 0; i-- {
		dst[w] = tmp[i]
		w++
	}
	return w
}

// stripTrailingZeros removes trailing '0' bytes from the fractional part of
// the mantissa, re-appending a single '0' if that would otherwise leave a
// bare '.', and never touching the integer part or an exponent suffix.
func stripTrailingZeros(s []byte) string {
	mantissa, suffix := s, ""
	if i := bytes.IndexByte(s, 'E'); i >= 0 {
		mantissa, suffix = s[:i], string(s[i:])
	}

	end := len(mantissa)
	for end > 0 && mantissa[end-1] == '0' {
		end--
	}
	if end > 0 && mantissa[end-1] == '.' {
		end++
	}
	return string(mantissa[:end]) + suffix
}
