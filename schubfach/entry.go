// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Translated from DoubleToDecimal.java / FloatToDecimal.java.

// Package schubfach renders IEEE 754 binary64 and binary32 floating-point
// values as the shortest decimal string that reads back to the same value,
// using the Schubfach algorithm described in Giulietti, "The Schubfach way
// to render doubles" (see kernel_double.go for the full reference list).
package schubfach

import "math"

// FormatDouble returns the shortest decimal string s such that parsing s as
// a binary64 yields exactly v, using the ASCII grammar of FormatFloat.
func FormatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	sign := math.Signbit(v)
	if v == 0 {
		return signedZero(sign)
	}

	digits, k := ftoa64(math.Abs(v))
	var buf [h64]byte
	n := layout64(&buf, digits)
	return assemble(buf[:n], n, k, sign)
}

// FormatFloat returns the shortest decimal string s such that parsing s as
// a binary32 yields exactly v.
//
// The output grammar has three shapes, chosen from the decimal exponent
// e = k+n-1 of the n significant digits selected by the kernel:
//
//	-3 <= e < 0:  "0." followed by -e-1 zeros and the digits      (0.001234)
//	 0 <= e < 7:  digits split around the decimal point, zero-padded as needed (1234.5, 1200.0)
//	 otherwise:   "d.dddE" followed by the signed exponent e      (1.234E23)
//
// A trailing ".0" is always present when the fractional part would
// otherwise be empty.
func FormatFloat(v float32) string {
	switch {
	case math.IsNaN(float64(v)):
		return "NaN"
	case math.IsInf(float64(v), 1):
		return "Infinity"
	case math.IsInf(float64(v), -1):
		return "-Infinity"
	}

	sign := math.Signbit(float64(v))
	if v == 0 {
		return signedZero(sign)
	}

	digits, k := ftoa32(float32(math.Abs(float64(v))))
	var buf [h32]byte
	n := layout32(&buf, digits)
	return assemble(buf[:n], n, k, sign)
}

func signedZero(sign bool) string {
	if sign {
		return "-0.0"
	}
	return "0.0"
}
