// Package nat implements fixed-length unsigned multi-precision arithmetic over
// vectors of 32-bit words stored least-significant word first.
//
// Every routine takes the word count explicitly so that callers can reuse
// buffers and work on sub-ranges (x[off:]). Unless a routine says otherwise,
// the output may alias any of the inputs. Carries and borrows are returned,
// never stored.
package nat

import (
	"encoding/binary"
	"errors"
	"math/big"
)

const m32 = 0xFFFFFFFF

var (
	// ErrNegative is returned when a negative integer is converted to words.
	ErrNegative = errors.New("nat: negative value")
	// ErrTooLarge is returned when an integer does not fit the requested width.
	ErrTooLarge = errors.New("nat: value exceeds width")
)

// Create returns a zeroed vector of n words.
func Create(n int) []uint32 {
	return make([]uint32, n)
}

// Copy sets z = x over n words.
func Copy(n int, x, z []uint32) {
	copy(z[:n], x[:n])
}

// Zero clears the first n words of z.
func Zero(n int, z []uint32) {
	clear(z[:n])
}

// Add sets z = x + y and returns the carry (0 or 1).
func Add(n int, x, y, z []uint32) uint32 {
	var c uint64
	for i := 0; i < n; i++ {
		c += uint64(x[i]) + uint64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddTo sets z = z + x + cIn and returns the carry.
func AddTo(n int, x, z []uint32, cIn uint32) uint32 {
	c := uint64(cIn)
	for i := 0; i < n; i++ {
		c += uint64(x[i]) + uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddBothTo sets z = z + x + y and returns the carry (0, 1 or 2).
func AddBothTo(n int, x, y, z []uint32) uint32 {
	var c uint64
	for i := 0; i < n; i++ {
		c += uint64(x[i]) + uint64(y[i]) + uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// AddToEachOther sets both u and v to u + v and returns the carry.
func AddToEachOther(n int, u, v []uint32) uint32 {
	var c uint64
	for i := 0; i < n; i++ {
		c += uint64(u[i]) + uint64(v[i])
		u[i] = uint32(c)
		v[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// Sub sets z = x - y and returns the borrow, 0 or -1.
func Sub(n int, x, y, z []uint32) int32 {
	var c int64
	for i := 0; i < n; i++ {
		c += int64(x[i]) - int64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// SubFrom sets z = z - x and returns the borrow, 0 or -1.
func SubFrom(n int, x, z []uint32) int32 {
	var c int64
	for i := 0; i < n; i++ {
		c += int64(z[i]) - int64(x[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return int32(c)
}

// Diff sets z = |x - y| and reports whether the difference was negated,
// that is whether x < y.
func Diff(n int, x, y, z []uint32) bool {
	neg := !Gte(n, x, y)
	if neg {
		Sub(n, y, x, z)
	} else {
		Sub(n, x, y, z)
	}
	return neg
}

// MulWord sets z = x * y over n words and returns the high word.
func MulWord(n int, x uint32, y, z []uint32) uint32 {
	var c uint64
	xv := uint64(x)
	for i := 0; i < n; i++ {
		c += xv * uint64(y[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// MulWordAddTo sets z = z + x * y over n words and returns the high word.
func MulWordAddTo(n int, x uint32, y, z []uint32) uint32 {
	var c uint64
	xv := uint64(x)
	for i := 0; i < n; i++ {
		c += xv*uint64(y[i]) + uint64(z[i])
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// Mul sets the 2n-word zz = x * y. zz must not overlap x or y.
func Mul(n int, x, y, zz []uint32) {
	zz[n] = MulWord(n, x[0], y, zz)
	for i := 1; i < n; i++ {
		zz[i+n] = MulWordAddTo(n, x[i], y, zz[i:])
	}
}

// Square sets the 2n-word zz = x * x. zz must not overlap x.
func Square(n int, x, zz []uint32) {
	Zero(2*n, zz)
	for i := 0; i < n-1; i++ {
		zz[i+n] = MulWordAddTo(n-1-i, x[i], x[i+1:], zz[2*i+1:])
	}
	ShiftUpBit(2*n, zz, 0)
	addDiagonal(n, x, zz)
}

// addDiagonal adds the squares x[i]^2 at word offsets 2i of the doubled
// cross-product sum already held in zz.
func addDiagonal(n int, x, zz []uint32) {
	var c uint64
	for i := 0; i < n; i++ {
		p := uint64(x[i]) * uint64(x[i])
		c += uint64(zz[2*i]) + p&m32
		zz[2*i] = uint32(c)
		c >>= 32
		c += uint64(zz[2*i+1]) + p>>32
		zz[2*i+1] = uint32(c)
		c >>= 32
	}
}

// ShiftUpBit shifts z left by one bit in place, filling bit 0 with c, and
// returns the bit shifted out of the top.
func ShiftUpBit(n int, z []uint32, c uint32) uint32 {
	return ShiftUpBitTo(n, z, c, z)
}

// ShiftUpBitTo sets z = x<<1 | c and returns the bit shifted out.
func ShiftUpBitTo(n int, x []uint32, c uint32, z []uint32) uint32 {
	for i := 0; i < n; i++ {
		next := x[i]
		z[i] = next<<1 | c
		c = next >> 31
	}
	return c
}

// ShiftUpBits shifts z left by s bits (0 < s < 32) in place. The low s bits
// of c are shifted in and the s bits shifted out are returned.
func ShiftUpBits(n int, z []uint32, s uint, c uint32) uint32 {
	return ShiftUpBitsTo(n, z, s, c, z)
}

// ShiftUpBitsTo is ShiftUpBits writing to z.
func ShiftUpBitsTo(n int, x []uint32, s uint, c uint32, z []uint32) uint32 {
	for i := 0; i < n; i++ {
		next := x[i]
		z[i] = next<<s | c
		c = next >> (32 - s)
	}
	return c
}

// ShiftDownBit shifts z right by one bit in place, filling the top bit with
// c, and returns the bit shifted out of the bottom.
func ShiftDownBit(n int, z []uint32, c uint32) uint32 {
	return ShiftDownBitTo(n, z, c, z)
}

// ShiftDownBitTo sets z = c<<(32n-1) | x>>1 and returns the bit shifted out.
func ShiftDownBitTo(n int, x []uint32, c uint32, z []uint32) uint32 {
	for i := n - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>1 | c<<31
		c = next & 1
	}
	return c
}

// ShiftDownBits shifts z right by s bits (0 < s < 32) in place. The low s
// bits of c fill the top and the s bits shifted out are returned.
func ShiftDownBits(n int, z []uint32, s uint, c uint32) uint32 {
	return ShiftDownBitsTo(n, z, s, c, z)
}

// ShiftDownBitsTo is ShiftDownBits writing to z.
func ShiftDownBitsTo(n int, x []uint32, s uint, c uint32, z []uint32) uint32 {
	for i := n - 1; i >= 0; i-- {
		next := x[i]
		z[i] = next>>s | c<<(32-s)
		c = next & (1<<s - 1)
	}
	return c
}

// MaskFromBool returns 0xFFFFFFFF for true and 0 for false.
func MaskFromBool(b bool) uint32 {
	var v uint32
	if b {
		v = 1
	}
	return Mask(v)
}

// Mask sign-extends bit 0 of b into a full word mask.
func Mask(b uint32) uint32 {
	return -(b & 1)
}

// CMov sets z = x where mask is all ones and leaves z unchanged where mask
// is zero. mask must be 0 or 0xFFFFFFFF.
func CMov(n int, mask uint32, x, z []uint32) {
	for i := 0; i < n; i++ {
		z[i] ^= (z[i] ^ x[i]) & mask
	}
}

// CAdd sets z = x + (y & mask) and returns the carry. mask must be 0 or
// 0xFFFFFFFF.
func CAdd(n int, mask uint32, x, y, z []uint32) uint32 {
	var c uint64
	for i := 0; i < n; i++ {
		c += uint64(x[i]) + uint64(y[i]&mask)
		z[i] = uint32(c)
		c >>= 32
	}
	return uint32(c)
}

// Gte reports whether x >= y.
func Gte(n int, x, y []uint32) bool {
	for i := n - 1; i >= 0; i-- {
		if x[i] < y[i] {
			return false
		}
		if x[i] > y[i] {
			return true
		}
	}
	return true
}

// Eq reports whether x == y.
func Eq(n int, x, y []uint32) bool {
	var d uint32
	for i := 0; i < n; i++ {
		d |= x[i] ^ y[i]
	}
	return d == 0
}

// IsZero reports whether x == 0.
func IsZero(n int, x []uint32) bool {
	var d uint32
	for i := 0; i < n; i++ {
		d |= x[i]
	}
	return d == 0
}

// IsOne reports whether x == 1.
func IsOne(n int, x []uint32) bool {
	d := x[0] ^ 1
	for i := 1; i < n; i++ {
		d |= x[i]
	}
	return d == 0
}

// GetBit returns bit i of x, or 0 when i lies outside x.
func GetBit(x []uint32, i int) uint32 {
	w := i >> 5
	if i < 0 || w >= len(x) {
		return 0
	}
	return x[w] >> (uint(i) & 31) & 1
}

// IncAt increments z starting at word pos and returns the carry out of word n-1.
func IncAt(n int, z []uint32, pos int) uint32 {
	for i := pos; i < n; i++ {
		z[i]++
		if z[i] != 0 {
			return 0
		}
	}
	return 1
}

// DecAt decrements z starting at word pos and returns the borrow, 0 or -1.
func DecAt(n int, z []uint32, pos int) int32 {
	for i := pos; i < n; i++ {
		z[i]--
		if z[i] != m32 {
			return 0
		}
	}
	return -1
}

// AddWordAt adds x to z at word pos and propagates the carry up to word n-1.
func AddWordAt(n int, x uint32, z []uint32, pos int) uint32 {
	c := uint64(x) + uint64(z[pos])
	z[pos] = uint32(c)
	if c>>32 == 0 {
		return 0
	}
	return IncAt(n, z, pos+1)
}

// SubWordAt subtracts x from z at word pos and propagates the borrow up to
// word n-1.
func SubWordAt(n int, x uint32, z []uint32, pos int) int32 {
	c := int64(z[pos]) - int64(x)
	z[pos] = uint32(c)
	if c>>32 == 0 {
		return 0
	}
	return DecAt(n, z, pos+1)
}

// AddWordTo sets z = z + x and returns the carry.
func AddWordTo(n int, x uint32, z []uint32) uint32 {
	return AddWordAt(n, x, z, 0)
}

// FromBig converts a non-negative x of at most bits bits into a vector of
// ceil(bits/32) words.
func FromBig(bits int, x *big.Int) ([]uint32, error) {
	if x.Sign() < 0 {
		return nil, ErrNegative
	}
	if x.BitLen() > bits {
		return nil, ErrTooLarge
	}
	n := (bits + 31) >> 5
	buf := x.FillBytes(make([]byte, 4*n))
	z := Create(n)
	for i := 0; i < n; i++ {
		z[i] = binary.BigEndian.Uint32(buf[4*(n-1-i):])
	}
	return z, nil
}

// ToBig converts the n-word x to a big.Int.
func ToBig(n int, x []uint32) *big.Int {
	return new(big.Int).SetBytes(ToBytes(n, x))
}

// ToBytes returns the 4n-byte big-endian encoding of x.
func ToBytes(n int, x []uint32) []byte {
	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[4*(n-1-i):], x[i])
	}
	return buf
}
