package nat

import "math/big"

// Create192 returns a zeroed 192-bit vector.
func Create192() []uint32 {
	return make([]uint32, 6)
}

// CreateExt192 returns a zeroed vector able to hold a 192x192-bit product.
func CreateExt192() []uint32 {
	return make([]uint32, 12)
}

// Copy192 copies x into z.
func Copy192(x, z []uint32) {
	copy(z[:6], x[:6])
}

// Add192 sets z = x + y and returns the carry. z may alias x or y.
func Add192(x, y, z []uint32) uint32 {
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
	c >>= 32
	c += uint64(x[4]) + uint64(y[4])
	z[4] = uint32(c)
	c >>= 32
	c += uint64(x[5]) + uint64(y[5])
	z[5] = uint32(c)
	return uint32(c >> 32)
}

// AddTo192 sets z = z + x + cIn and returns the carry.
func AddTo192(x, z []uint32, cIn uint32) uint32 {
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
	c >>= 32
	c += uint64(x[4]) + uint64(z[4])
	z[4] = uint32(c)
	c >>= 32
	c += uint64(x[5]) + uint64(z[5])
	z[5] = uint32(c)
	return uint32(c >> 32)
}

// AddToEachOther192 sets u and v both to u + v and returns the carry.
func AddToEachOther192(u, v []uint32) uint32 {
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
	c >>= 32
	c += uint64(u[4]) + uint64(v[4])
	u[4] = uint32(c)
	v[4] = uint32(c)
	c >>= 32
	c += uint64(u[5]) + uint64(v[5])
	u[5] = uint32(c)
	v[5] = uint32(c)
	return uint32(c >> 32)
}

// Sub192 sets z = x - y and returns 0 or -1 for the borrow. z may alias x or y.
func Sub192(x, y, z []uint32) int32 {
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
	c >>= 32
	c += int64(x[4]) - int64(y[4])
	z[4] = uint32(c)
	c >>= 32
	c += int64(x[5]) - int64(y[5])
	z[5] = uint32(c)
	return int32(c >> 32)
}

// SubFrom192 sets z = z - x and returns the borrow.
func SubFrom192(x, z []uint32) int32 {
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
	c >>= 32
	c += int64(z[4]) - int64(x[4])
	z[4] = uint32(c)
	c >>= 32
	c += int64(z[5]) - int64(x[5])
	z[5] = uint32(c)
	return int32(c >> 32)
}

// Diff192 sets z = |x - y| and reports whether x < y.
func Diff192(x, y, z []uint32) bool {
	neg := !Gte192(x, y)
	if neg {
		Sub192(y, x, z)
	} else {
		Sub192(x, y, z)
	}
	return neg
}

// Gte192 reports whether x >= y.
func Gte192(x, y []uint32) bool {
	for i := 5; i >= 0; i-- {
		if x[i] < y[i] {
			return false
		}
		if x[i] > y[i] {
			return true
		}
	}
	return true
}

// Eq192 reports whether x == y.
func Eq192(x, y []uint32) bool {
	return Eq(6, x, y)
}

// IsZero192 reports whether x is zero.
func IsZero192(x []uint32) bool {
	return IsZero(6, x)
}

// Mul192 sets the 12-word zz = x * y. zz must not overlap x or y.
func Mul192(x, y, zz []uint32) {
	_ = x[5]
	_ = zz[11]

	y0, y1, y2, y3, y4, y5 := uint64(y[0]), uint64(y[1]), uint64(y[2]), uint64(y[3]), uint64(y[4]), uint64(y[5])

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
	c += x0 * y4
	zz[4] = uint32(c)
	c >>= 32
	c += x0 * y5
	zz[5] = uint32(c)
	c >>= 32
	zz[6] = uint32(c)

	for i := 1; i < 6; i++ {
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
		c += xi*y4 + uint64(zz[i+4])
		zz[i+4] = uint32(c)
		c >>= 32
		c += xi*y5 + uint64(zz[i+5])
		zz[i+5] = uint32(c)
		c >>= 32
		zz[i+6] = uint32(c)
	}
}

// Square192 sets the 12-word zz = x * x. zz must not overlap x.
func Square192(x, zz []uint32) {
	_ = zz[11]

	x0, x1, x2, x3, x4, x5 := uint64(x[0]), uint64(x[1]), uint64(x[2]), uint64(x[3]), uint64(x[4]), uint64(x[5])

	c := x0 * x1
	zz[1] = uint32(c)
	c >>= 32
	c += x0 * x2
	zz[2] = uint32(c)
	c >>= 32
	c += x0 * x3
	zz[3] = uint32(c)
	c >>= 32
	c += x0 * x4
	zz[4] = uint32(c)
	c >>= 32
	c += x0 * x5
	zz[5] = uint32(c)
	c >>= 32
	zz[6] = uint32(c)

	c = x1*x2 + uint64(zz[3])
	zz[3] = uint32(c)
	c >>= 32
	c += x1*x3 + uint64(zz[4])
	zz[4] = uint32(c)
	c >>= 32
	c += x1*x4 + uint64(zz[5])
	zz[5] = uint32(c)
	c >>= 32
	c += x1*x5 + uint64(zz[6])
	zz[6] = uint32(c)
	c >>= 32
	zz[7] = uint32(c)

	c = x2*x3 + uint64(zz[5])
	zz[5] = uint32(c)
	c >>= 32
	c += x2*x4 + uint64(zz[6])
	zz[6] = uint32(c)
	c >>= 32
	c += x2*x5 + uint64(zz[7])
	zz[7] = uint32(c)
	c >>= 32
	zz[8] = uint32(c)

	c = x3*x4 + uint64(zz[7])
	zz[7] = uint32(c)
	c >>= 32
	c += x3*x5 + uint64(zz[8])
	zz[8] = uint32(c)
	c >>= 32
	zz[9] = uint32(c)

	c = x4*x5 + uint64(zz[9])
	zz[9] = uint32(c)
	c >>= 32
	zz[10] = uint32(c)

	zz[0] = 0
	zz[11] = 0
	ShiftUpBit(12, zz, 0)
	addDiagonal(6, x, zz)
}

// FromBig192 converts x, which must fit in 192 bits.
func FromBig192(x *big.Int) ([]uint32, error) {
	return FromBig(192, x)
}

// ToBig192 converts x to a big.Int.
func ToBig192(x []uint32) *big.Int {
	return ToBig(6, x)
}
