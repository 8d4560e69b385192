// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Translated from DoubleToDecimal.java.

/*
For full details about this code see the following references:

[1] Giulietti, "The Schubfach way to render doubles",
    https://drive.google.com/open?id=1luHhyQF9zKlM8yJ1nebU0OgVYhfC6CBN

[2] IEEE Computer Society, "IEEE Standard for Floating-Point Arithmetic"

[3] Bouvier & Zimmermann, "Division-Free Binary-to-Decimal Conversion"

Divisions are avoided altogether for the benefit of those architectures
that do not provide specific machine instructions or where they are slow.
This is discussed in section 10 of [1].
*/

package schubfach

import (
	"math"
	"math/bits"
)

const (
	// The precision in bits.
	p64 = 53

	// Exponent width in bits.
	w64 = (64 - 1) - (p64 - 1)

	// Minimum value of the exponent: -(2^(W-1)) - P + 3.
	qMin64 = -(1 << (w64 - 1)) - p64 + 3

	// Maximum value of the exponent: 2^(W-1) - P.
	qMax64 = (1 << (w64 - 1)) - p64

	// Threshold to detect tiny values, as in section 8.1.1 of [1].
	cTiny64 = 3

	// H is as in section 8 of [1]: the maximum number of decimal digits
	// a shortest binary64 decimal ever needs.
	h64 = 17

	// Minimum value of the significand of a normal value: 2^(P-1).
	cMin64 = 1 << (p64 - 1)

	bqMask64 = (1 << w64) - 1
	tMask64  = (1 << (p64 - 1)) - 1
)

// ftoa64 classifies a finite non-zero, non-NaN, non-infinite float64 and
// dispatches to the digit-selection kernel. It returns the selected decimal
// as digits*10^exp.
//
// For finite v != 0, there exist integers c and q such that
//
//	|v| = c * 2^q    and
//	qMin64 <= q <= qMax64    and
//	    either    2^(P-1) <= c < 2^P                 (normal)
//	    or        0 < c < 2^(P-1)  and  q = qMin64    (subnormal)
func ftoa64(v float64) (digits uint64, exp int) {
	bits := math.Float64bits(v)
	t := bits & tMask64
	bq := int(bits>>(p64-1)) & bqMask64
	if bq != 0 {
		// normal value; here mq = -q
		mq := -qMin64 + 1 - bq
		c := cMin64 | t
		// The fast path discussed in section 8.2 of [1]: an integer value
		// below 2^53 (0 < mq < P and no bits of c set below position mq)
		// formats without consulting the kernel at all.
		if 0 < mq && mq < p64 {
			f := c >> uint(mq)
			if f<<uint(mq) == c {
				return f, 0
			}
		}
		return toDecimal64(-mq, c, 0)
	}

	// subnormal value
	if t < cTiny64 {
		return toDecimal64(qMin64, 10*t, -1)
	}
	return toDecimal64(qMin64, t, 0)
}

// toDecimal64 is the digit-selection kernel for binary64. The skeleton
// corresponds to figure 4 of [1]; the efficient computations are those
// summarized in figure 7.
//
// Naming follows [1]: cb = \bar{c}, cbl = \bar{c}_l, cbr = \bar{c}_r,
// vb = \bar{v}, vbl = \bar{v}_l, vbr = \bar{v}_r, rop = r_o'.
func toDecimal64(q int, c uint64, dk int) (digits uint64, exp int) {
	out := c & 1
	cb := c << 2
	cbr := cb + 2

	var cbl uint64
	var k int
	if c != cMin64 || q == qMin64 {
		// regular spacing
		cbl = cb - 2
		k = flog10pow2(q)
	} else {
		// irregular spacing: v is a power of two above MIN_NORMAL
		cbl = cb - 1
		k = flog10ThreeQuartersPow2(q)
	}
	h := q + flog2pow10(-k) + 2

	g1, g0 := pow10(k)
	vb := rop(g1, g0, cb<<uint(h))
	vbl := rop(g1, g0, cbl<<uint(h))
	vbr := rop(g1, g0, cbr<<uint(h))

	s := vb >> 2
	if s >= 100 {
		// For n = 17, m = 1 the table in section 10 of [1] gives
		//   s' = floor(s / 10) = floor(s * 115_292_150_460_684_698 / 2^60)
		sp, _ := bits.Mul64(s, 115_292_150_460_684_698<<4)
		sp10 := 10 * sp
		tp10 := sp10 + 10
		upin := vbl+out <= sp10<<2
		wpin := (tp10<<2)+out <= vbr
		if upin != wpin {
			if upin {
				return sp10, k
			}
			return tp10, k
		}
	}

	// Tiny special case: the result must be artificially lengthened to
	// satisfy "length >= 2" at the smallest subnormal of binary64. Since
	// ftoa64 prescales subnormals with t < cTiny64 by 10, s is never below
	// 10 here and this branch is not reached; see DESIGN.md.
	if s == 4 {
		return 49, -325
	}

	// 10 <= s < 100, or s >= 100 and u', w' not in Rv.
	t := s + 1
	uin := vbl+out <= s<<2
	win := (t<<2)+out <= vbr
	if uin != win {
		if uin {
			return s, k + dk
		}
		return t, k + dk
	}

	// Both u and w lie in Rv: pick the one closest to v, ties to even.
	// cmp = vb - 2*(s+t); deliberately written with the multiplication
	// spelled out rather than (s+t)<<1, see DESIGN.md.
	cmp := int64(vb) - 2*(int64(s)+int64(t))
	if cmp < 0 || cmp == 0 && s&1 == 0 {
		return s, k + dk
	}
	return t, k + dk
}
