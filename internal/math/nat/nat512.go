package nat

import "math/big"

// Create512 returns a zeroed 512-bit vector.
func Create512() []uint32 {
	return make([]uint32, 16)
}

// CreateExt512 returns a zeroed vector able to hold a 512x512-bit product.
func CreateExt512() []uint32 {
	return make([]uint32, 32)
}

// Add512 sets z = x + y and returns the carry. z may alias x or y.
func Add512(x, y, z []uint32) uint32 {
	return Add(16, x, y, z)
}

// Sub512 sets z = x - y and returns 0 or -1 for the borrow. z may alias x or y.
func Sub512(x, y, z []uint32) int32 {
	return Sub(16, x, y, z)
}

// Gte512 reports whether x >= y.
func Gte512(x, y []uint32) bool {
	return Gte(16, x, y)
}

// Eq512 reports whether x == y.
func Eq512(x, y []uint32) bool {
	return Eq(16, x, y)
}

// Mul512 sets the 32-word zz = x * y using one level of Karatsuba over
// 256-bit halves. zz must not overlap x or y.
func Mul512(x, y, zz []uint32) {
	Mul256(x, y, zz)
	Mul256(x[8:], y[8:], zz[16:])

	c24 := AddToEachOther256(zz[8:], zz[16:])
	c16 := c24 + AddTo256(zz, zz[8:], 0)
	c24 += AddTo256(zz[24:], zz[16:], c16)

	dx, dy := Create256(), Create256()
	neg := Diff256(x[8:], x, dx) != Diff256(y[8:], y, dy)

	tt := CreateExt256()
	Mul256(dx, dy, tt)

	c := int32(c24)
	if neg {
		c += int32(AddTo(16, tt, zz[8:], 0))
	} else {
		c += SubFrom(16, tt, zz[8:])
	}
	AddWordAt(32, uint32(c), zz, 24)
}

// Square512 sets the 32-word zz = x * x. zz must not overlap x.
func Square512(x, zz []uint32) {
	Square256(x, zz)
	Square256(x[8:], zz[16:])

	c24 := AddToEachOther256(zz[8:], zz[16:])
	c16 := c24 + AddTo256(zz, zz[8:], 0)
	c24 += AddTo256(zz[24:], zz[16:], c16)

	dx := Create256()
	Diff256(x[8:], x, dx)

	tt := CreateExt256()
	Square256(dx, tt)

	c := int32(c24) + SubFrom(16, tt, zz[8:])
	AddWordAt(32, uint32(c), zz, 24)
}

// FromBig512 converts x, which must fit in 512 bits.
func FromBig512(x *big.Int) ([]uint32, error) {
	return FromBig(512, x)
}

// ToBig512 converts x to a big.Int.
func ToBig512(x []uint32) *big.Int {
	return ToBig(16, x)
}
