package nat

import "math/big"

// Create384 returns a zeroed 384-bit vector.
func Create384() []uint32 {
	return make([]uint32, 12)
}

// CreateExt384 returns a zeroed vector able to hold a 384x384-bit product.
func CreateExt384() []uint32 {
	return make([]uint32, 24)
}

// Add384 sets z = x + y and returns the carry. z may alias x or y.
func Add384(x, y, z []uint32) uint32 {
	return Add(12, x, y, z)
}

// Sub384 sets z = x - y and returns 0 or -1 for the borrow. z may alias x or y.
func Sub384(x, y, z []uint32) int32 {
	return Sub(12, x, y, z)
}

// Gte384 reports whether x >= y.
func Gte384(x, y []uint32) bool {
	return Gte(12, x, y)
}

// Eq384 reports whether x == y.
func Eq384(x, y []uint32) bool {
	return Eq(12, x, y)
}

// Mul384 sets the 24-word zz = x * y using one level of Karatsuba over
// 192-bit halves. zz must not overlap x or y.
func Mul384(x, y, zz []uint32) {
	Mul192(x, y, zz)
	Mul192(x[6:], y[6:], zz[12:])

	c18 := AddToEachOther192(zz[6:], zz[12:])
	c12 := c18 + AddTo192(zz, zz[6:], 0)
	c18 += AddTo192(zz[18:], zz[12:], c12)

	dx, dy := Create192(), Create192()
	neg := Diff192(x[6:], x, dx) != Diff192(y[6:], y, dy)

	tt := CreateExt192()
	Mul192(dx, dy, tt)

	c := int32(c18)
	if neg {
		c += int32(AddTo(12, tt, zz[6:], 0))
	} else {
		c += SubFrom(12, tt, zz[6:])
	}
	AddWordAt(24, uint32(c), zz, 18)
}

// Square384 sets the 24-word zz = x * x. zz must not overlap x.
func Square384(x, zz []uint32) {
	Square192(x, zz)
	Square192(x[6:], zz[12:])

	c18 := AddToEachOther192(zz[6:], zz[12:])
	c12 := c18 + AddTo192(zz, zz[6:], 0)
	c18 += AddTo192(zz[18:], zz[12:], c12)

	dx := Create192()
	Diff192(x[6:], x, dx)

	tt := CreateExt192()
	Square192(dx, tt)

	c := int32(c18) + SubFrom(12, tt, zz[6:])
	AddWordAt(24, uint32(c), zz, 18)
}

// FromBig384 converts x, which must fit in 384 bits.
func FromBig384(x *big.Int) ([]uint32, error) {
	return FromBig(384, x)
}

// ToBig384 converts x to a big.Int.
func ToBig384(x []uint32) *big.Int {
	return ToBig(12, x)
}
