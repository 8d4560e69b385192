// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import (
	"math/big"
	"testing"
)

// TestPow10TableInvariant checks, for every table entry pow10(k), that
// (g-1)*2^r <= 10^(-k) < g*2^r where r = flog2pow10(-k) - 125 and
// g = g1*2^63 + g0, using exact big.Int arithmetic. pow10 is indexed by
// the kernel's own decimal-exponent variable k and yields an
// approximation of 10^(-k), folding the negation into the table's own
// indexing so pow10(k) corresponds directly to the kernel's k.
//
// This is the one place in the package that reaches for math/big instead
// of a third-party dependency: an exact boundary inequality like this
// one cannot safely be checked with a rounding decimal type, and the
// standard library's arbitrary-precision integer is the correct tool
// for an exactness oracle (see DESIGN.md).
func TestPow10TableInvariant(t *testing.T) {
	for k := pow10KMin; k <= pow10KMax; k++ {
		g1, g0 := pow10(k)
		g := new(big.Int).Lsh(new(big.Int).SetUint64(g1), 63)
		g.Add(g, new(big.Int).SetUint64(g0))

		r := flog2pow10(-k) - 125

		lo := new(big.Int).Sub(g, big.NewInt(1))
		hi := new(big.Int).Set(g)

		// 10^(-k) = num/den in lowest terms (den a power of 10 when k>0,
		// since 10^(-k) = 1/10^k); multiply through by den to clear
		// denominators entirely and compare integers.
		num := big.NewInt(10)
		var n, d *big.Int
		if k <= 0 {
			n = new(big.Int).Exp(num, big.NewInt(int64(-k)), nil)
			d = big.NewInt(1)
		} else {
			n = big.NewInt(1)
			d = new(big.Int).Exp(num, big.NewInt(int64(k)), nil)
		}

		// Check lo*2^r <= n/d < hi*2^r, i.e. lo*2^r*d <= n < hi*2^r*d,
		// with 2^r applied to whichever side keeps exponents non-negative.
		var loTerm, hiTerm, nTerm *big.Int
		if r >= 0 {
			loTerm = new(big.Int).Mul(new(big.Int).Lsh(lo, uint(r)), d)
			hiTerm = new(big.Int).Mul(new(big.Int).Lsh(hi, uint(r)), d)
			nTerm = n
		} else {
			loTerm = new(big.Int).Mul(lo, d)
			hiTerm = new(big.Int).Mul(hi, d)
			nTerm = new(big.Int).Lsh(n, uint(-r))
		}

		if loTerm.Cmp(nTerm) > 0 {
			t.Fatalf("k=%d: (g-1)*2^r > 10^(-k)", k)
		}
		if nTerm.Cmp(hiTerm) >= 0 {
			t.Fatalf("k=%d: 10^(-k) >= g*2^r", k)
		}

		const lowBit = uint64(1) << 62
		if g1 < lowBit {
			t.Fatalf("k=%d: g has fewer than 126 bits (g1=%#x)", k, g1)
		}
	}
}
