package nat

import "math/big"

// Create448 returns a zeroed 448-bit vector.
func Create448() []uint32 {
	return make([]uint32, 14)
}

// CreateExt448 returns a zeroed vector able to hold a 448x448-bit product.
func CreateExt448() []uint32 {
	return make([]uint32, 28)
}

// Add448 sets z = x + y and returns the carry. z may alias x or y.
func Add448(x, y, z []uint32) uint32 {
	return Add(14, x, y, z)
}

// Sub448 sets z = x - y and returns 0 or -1 for the borrow. z may alias x or y.
func Sub448(x, y, z []uint32) int32 {
	return Sub(14, x, y, z)
}

// Gte448 reports whether x >= y.
func Gte448(x, y []uint32) bool {
	return Gte(14, x, y)
}

// Eq448 reports whether x == y.
func Eq448(x, y []uint32) bool {
	return Eq(14, x, y)
}

// Mul448 sets the 28-word zz = x * y using one level of Karatsuba over
// 224-bit halves. zz must not overlap x or y.
func Mul448(x, y, zz []uint32) {
	Mul224(x, y, zz)
	Mul224(x[7:], y[7:], zz[14:])

	c21 := AddToEachOther224(zz[7:], zz[14:])
	c14 := c21 + AddTo224(zz, zz[7:], 0)
	c21 += AddTo224(zz[21:], zz[14:], c14)

	dx, dy := Create224(), Create224()
	neg := Diff224(x[7:], x, dx) != Diff224(y[7:], y, dy)

	tt := CreateExt224()
	Mul224(dx, dy, tt)

	c := int32(c21)
	if neg {
		c += int32(AddTo(14, tt, zz[7:], 0))
	} else {
		c += SubFrom(14, tt, zz[7:])
	}
	AddWordAt(28, uint32(c), zz, 21)
}

// Square448 sets the 28-word zz = x * x. zz must not overlap x.
func Square448(x, zz []uint32) {
	Square224(x, zz)
	Square224(x[7:], zz[14:])

	c21 := AddToEachOther224(zz[7:], zz[14:])
	c14 := c21 + AddTo224(zz, zz[7:], 0)
	c21 += AddTo224(zz[21:], zz[14:], c14)

	dx := Create224()
	Diff224(x[7:], x, dx)

	tt := CreateExt224()
	Square224(dx, tt)

	c := int32(c21) + SubFrom(14, tt, zz[7:])
	AddWordAt(28, uint32(c), zz, 21)
}

// FromBig448 converts x, which must fit in 448 bits.
func FromBig448(x *big.Int) ([]uint32, error) {
	return FromBig(448, x)
}

// ToBig448 converts x to a big.Int.
func ToBig448(x []uint32) *big.Int {
	return ToBig(14, x)
}
