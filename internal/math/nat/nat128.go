package nat

import "math/big"

// Create128 returns a zeroed 128-bit vector.
func Create128() []uint32 {
	return make([]uint32, 4)
}

// CreateExt128 returns a zeroed vector able to hold a 128x128-bit product.
func CreateExt128() []uint32 {
	return make([]uint32, 8)
}

// Copy128 copies x into z.
func Copy128(x, z []uint32) {
	copy(z[:4], x[:4])
}

// Add128 sets z = x + y and returns the carry. z may alias x or y.
func Add128(x, y, z []uint32) uint32 {
	var c uint64
	c += uint64(x[0]) + uint64(y[0])
	z[0] = uint32(c)
	c >>= 32
	c += uint64(x[1]) + uint64(y[1])
	z[1] = uint32(c)
	c >>= 32
	c += uint64(x[2]) + uint64(y[2])
	z[2] = uint32(c)
	c >>= 32
	c += uint64(x[3]) + uint64(y[3])
	z[3] = uint32(c)
	return uint32(c >> 32)
}

// AddTo128 sets z = z + x + cIn and returns the carry.
func AddTo128(x, z []uint32, cIn uint32) uint32 {
	c := uint64(cIn)
	c += uint64(x[0]) + uint64(z[0])
	z[0] = uint32(c)
	c >>= 32
	c += uint64(x[1]) + uint64(z[1])
	z[1] = uint32(c)
	c >>= 32
	c += uint64(x[2]) + uint64(z[2])
	z[2] = uint32(c)
	c >>= 32
	c += uint64(x[3]) + uint64(z[3])
	z[3] = uint32(c)
	return uint32(c >> 32)
}

// AddToEachOther128 sets u and v both to u + v and returns the carry.
func AddToEachOther128(u, v []uint32) uint32 {
	var c uint64
	c += uint64(u[0]) + uint64(v[0])
	u[0] = uint32(c)
	v[0] = uint32(c)
	c >>= 32
	c += uint64(u[1]) + uint64(v[1])
	u[1] = uint32(c)
	v[1] = uint32(c)
	c >>= 32
	c += uint64(u[2]) + uint64(v[2])
	u[2] = uint32(c)
	v[2] = uint32(c)
	c >>= 32
	c += uint64(u[3]) + uint64(v[3])
	u[3] = uint32(c)
	v[3] = uint32(c)
	return uint32(c >> 32)
}

// Sub128 sets z = x - y and returns 0 or -1 for the borrow. z may alias x or y.
func Sub128(x, y, z []uint32) int32 {
	var c int64
	c += int64(x[0]) - int64(y[0])
	z[0] = uint32(c)
	c >>= 32
	c += int64(x[1]) - int64(y[1])
	z[1] = uint32(c)
	c >>= 32
	c += int64(x[2]) - int64(y[2])
	z[2] = uint32(c)
	c >>= 32
	c += int64(x[3]) - int64(y[3])
	z[3] = uint32(c)
	return int32(c >> 32)
}

// SubFrom128 sets z = z - x and returns the borrow.
func SubFrom128(x, z []uint32) int32 {
	var c int64
	c += int64(z[0]) - int64(x[0])
	z[0] = uint32(c)
	c >>= 32
	c += int64(z[1]) - int64(x[1])
	z[1] = uint32(c)
	c >>= 32
	c += int64(z[2]) - int64(x[2])
	z[2] = uint32(c)
	c >>= 32
	c += int64(z[3]) - int64(x[3])
	z[3] = uint32(c)
	return int32(c >> 32)
}

// Diff128 sets z = |x - y| and reports whether x < y.
func Diff128(x, y, z []uint32) bool {
	neg := !Gte128(x, y)
	if neg {
		Sub128(y, x, z)
	} else {
		Sub128(x, y, z)
	}
	return neg
}

// Gte128 reports whether x >= y.
func Gte128(x, y []uint32) bool {
	for i := 3; i >= 0; i-- {
		if x[i] < y[i] {
			return false
		}
		if x[i] > y[i] {
			return true
		}
	}
	return true
}

// Eq128 reports whether x == y.
func Eq128(x, y []uint32) bool {
	return Eq(4, x, y)
}

// IsZero128 reports whether x is zero.
func IsZero128(x []uint32) bool {
	return IsZero(4, x)
}

// Mul128 sets the 8-word zz = x * y. zz must not overlap x or y.
func Mul128(x, y, zz []uint32) {
	_ = x[3]
	_ = zz[7]

	y0, y1, y2, y3 := uint64(y[0]), uint64(y[1]), uint64(y[2]), uint64(y[3])

	x0 := uint64(x[0])
	c := x0 * y0
	zz[0] = uint32(c)
	c >>= 32
	c += x0 * y1
	zz[1] = uint32(c)
	c >>= 32
	c += x0 * y2
	zz[2] = uint32(c)
	c >>= 32
	c += x0 * y3
	zz[3] = uint32(c)
	c >>= 32
	zz[4] = uint32(c)

	for i := 1; i < 4; i++ {
		xi := uint64(x[i])
		c = xi*y0 + uint64(zz[i])
		zz[i] = uint32(c)
		c >>= 32
		c += xi*y1 + uint64(zz[i+1])
		zz[i+1] = uint32(c)
		c >>= 32
		c += xi*y2 + uint64(zz[i+2])
		zz[i+2] = uint32(c)
		c >>= 32
		c += xi*y3 + uint64(zz[i+3])
		zz[i+3] = uint32(c)
		c >>= 32
		zz[i+4] = uint32(c)
	}
}

// Square128 sets the 8-word zz = x * x. zz must not overlap x.
func Square128(x, zz []uint32) {
	_ = zz[7]

	x0, x1, x2, x3 := uint64(x[0]), uint64(x[1]), uint64(x[2]), uint64(x[3])

	c := x0 * x1
	zz[1] = uint32(c)
	c >>= 32
	c += x0 * x2
	zz[2] = uint32(c)
	c >>= 32
	c += x0 * x3
	zz[3] = uint32(c)
	c >>= 32
	zz[4] = uint32(c)

	c = x1*x2 + uint64(zz[3])
	zz[3] = uint32(c)
	c >>= 32
	c += x1*x3 + uint64(zz[4])
	zz[4] = uint32(c)
	c >>= 32
	zz[5] = uint32(c)

	c = x2*x3 + uint64(zz[5])
	zz[5] = uint32(c)
	c >>= 32
	zz[6] = uint32(c)

	zz[0] = 0
	zz[7] = 0
	ShiftUpBit(8, zz, 0)
	addDiagonal(4, x, zz)
}

// FromBig128 converts x, which must fit in 128 bits.
func FromBig128(x *big.Int) ([]uint32, error) {
	return FromBig(128, x)
}

// ToBig128 converts x to a big.Int.
func ToBig128(x []uint32) *big.Int {
	return ToBig(4, x)
}
