// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Translated from FloatToDecimal.java. Mirrors kernel_double.go; see its
// comments and [1]-[3] there for the shared derivation. The float variant
// differs only in constants (P, W, Q_MIN, H, and the tiny-subnormal table).

package schubfach

import (
	"math"
	"math/bits"
)

const (
	p32 = 24
	w32 = (32 - 1) - (p32 - 1)

	qMin32 = -(1 << (w32 - 1)) - p32 + 3
	qMax32 = (1 << (w32 - 1)) - p32

	cTiny32 = 3
	h32     = 9

	cMin32 = 1 << (p32 - 1)

	bqMask32 = (1 << w32) - 1
	tMask32  = (1 << (p32 - 1)) - 1
)

// ftoa32 is the binary32 analogue of ftoa64.
func ftoa32(v float32) (digits uint64, exp int) {
	bits32 := math.Float32bits(v)
	t := uint64(bits32 & tMask32)
	bq := int(bits32>>(p32-1)) & bqMask32
	if bq != 0 {
		mq := -qMin32 + 1 - bq
		c := uint64(cMin32) | t
		if 0 < mq && mq < p32 {
			f := c >> uint(mq)
			if f<<uint(mq) == c {
				return f, 0
			}
		}
		return toDecimal32(-mq, c, 0)
	}

	if t < cTiny32 {
		return toDecimal32(qMin32, 10*t, -1)
	}
	return toDecimal32(qMin32, t, 0)
}

// toDecimal32 is the digit-selection kernel for binary32. It reuses the
// shared Pow10 table and MulHi primitive; only the format-specific
// constants above and the tiny-subnormal table below change.
func toDecimal32(q int, c uint64, dk int) (digits uint64, exp int) {
	out := c & 1
	cb := c << 2
	cbr := cb + 2

	var cbl uint64
	var k int
	if c != cMin32 || q == qMin32 {
		cbl = cb - 2
		k = flog10pow2(q)
	} else {
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

	// Tiny special cases for binary32: length-1 subnormals at the bottom
	// of the format need lengthening to 2 digits. s in {3, 6} never
	// arises from any binary32 subnormal, so there is no entry for them.
	if s < 10 {
		if d := tiny32[s]; d != 0 {
			return d, -46
		}
	}

	t := s + 1
	uin := vbl+out <= s<<2
	win := (t<<2)+out <= vbr
	if uin != win {
		if uin {
			return s, k + dk
		}
		return t, k + dk
	}

	cmp := int64(vb) - 2*(int64(s)+int64(t))
	if cmp < 0 || cmp == 0 && s&1 == 0 {
		return s, k + dk
	}
	return t, k + dk
}

var tiny32 = [10]uint64{
	1: 14,
	2: 28,
	4: 42,
	5: 56,
	7: 70,
	8: 84,
	9: 98,
}
