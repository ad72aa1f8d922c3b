package ec

import "math/big"

// windowSizeCutoffs are the scalar bit lengths at which the wNAF window
// grows by one, starting from width 2.
var windowSizeCutoffs = []int{13, 41, 121, 337, 897, 2305}

const maxWindowSize = 16

// WindowSize returns the wNAF window width for a scalar of the given bit
// length.
func WindowSize(bits int) int {
	w := 0
	for ; w < len(windowSizeCutoffs); w++ {
		if bits < windowSizeCutoffs[w] {
			break
		}
	}
	return min(w+2, maxWindowSize)
}

// WindowNAF returns the width-w non-adjacent form of the non-negative k: a
// slice L of odd digits in {±1, ±3, ..., ±(2^(w-1)-1)} or zero, with
// k = sum(L[i] * 2^i) and at most one non-zero digit in any w consecutive
// positions. The most significant digit is non-zero.
func WindowNAF(w uint, k *big.Int) []int32 {
	if k.Sign() < 0 {
		panic("ec: negative scalar")
	}
	if w < 2 || w > maxWindowSize {
		panic("ec: window width out of range")
	}

	digits := make([]int32, 0, k.BitLen()+1)
	var r, v big.Int
	r.Set(k)
	mask := big.NewInt(1<<w - 1)
	for r.Sign() > 0 {
		var d int32
		if r.Bit(0) == 1 {
			d = int32(v.And(&r, mask).Int64())
			if d >= 1<<(w-1) {
				d -= 1 << w
			}
			r.Sub(&r, v.SetInt64(int64(d)))
		}
		digits = append(digits, d)
		r.Rsh(&r, 1)
	}
	return digits
}

// JSF returns the joint sparse form of the non-negative g and h: digit
// pairs (u0, u1) in {-1, 0, 1}, least significant first, with
// g = sum(u0[i] * 2^i) and h = sum(u1[i] * 2^i).
func JSF(g, h *big.Int) [][2]int8 {
	if g.Sign() < 0 || h.Sign() < 0 {
		panic("ec: negative scalar")
	}
	digits := make([][2]int8, 0, max(g.BitLen(), h.BitLen())+1)

	window := func(k *big.Int, off int) int {
		return int(k.Bit(off) | k.Bit(off+1)<<1 | k.Bit(off+2)<<2)
	}

	var d0, d1 int
	for off := 0; d0|d1 != 0 || g.BitLen() > off || h.BitLen() > off; off++ {
		n0 := (window(g, off) + d0) & 7
		n1 := (window(h, off) + d1) & 7

		u0 := n0 & 1
		if u0 != 0 {
			u0 -= n0 & 2
			if n0+u0 == 4 && n1&3 == 2 {
				u0 = -u0
			}
		}
		u1 := n1 & 1
		if u1 != 0 {
			u1 -= n1 & 2
			if n1+u1 == 4 && n0&3 == 2 {
				u1 = -u1
			}
		}

		if d0<<1 == 1+u0 {
			d0 ^= 1
		}
		if d1<<1 == 1+u1 {
			d1 ^= 1
		}
		digits = append(digits, [2]int8{int8(u0), int8(u1)})
	}
	return digits
}
