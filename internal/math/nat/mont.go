package nat

// InverseWord32 returns d^-1 mod 2^32 for odd d.
func InverseWord32(d uint32) uint32 {
	x := d       // d*x == 1 mod 2^3
	x *= 2 - d*x // 2^6
	x *= 2 - d*x // 2^12
	x *= 2 - d*x // 2^24
	x *= 2 - d*x // 2^48
	return x
}

// MontReduce sets z = tt * R^-1 mod m where R = 2^(32n), tt holds 2n words
// and tt < m*R. m0inv must be -m^-1 mod 2^32. The result is fully reduced
// into [0, m). tt is clobbered.
func MontReduce(n int, tt, m []uint32, m0inv uint32, z []uint32) {
	var hi uint32
	for i := 0; i < n; i++ {
		u := tt[i] * m0inv
		c := MulWordAddTo(n, u, m, tt[i:])
		hi += AddWordAt(2*n, c, tt, i+n)
	}
	r := tt[n : 2*n]
	if hi != 0 || Gte(n, r, m) {
		Sub(n, r, m, z)
		return
	}
	Copy(n, r, z)
}

// MulFunc returns the multiplication routine for n-word operands, using a
// fixed-width specialization when one exists.
func MulFunc(n int) func(x, y, zz []uint32) {
	switch n {
	case 4:
		return Mul128
	case 6:
		return Mul192
	case 7:
		return Mul224
	case 8:
		return Mul256
	case 10:
		return Mul320
	case 12:
		return Mul384
	case 14:
		return Mul448
	case 16:
		return Mul512
	}
	return func(x, y, zz []uint32) { Mul(n, x, y, zz) }
}

// SquareFunc is the squaring counterpart of MulFunc.
func SquareFunc(n int) func(x, zz []uint32) {
	switch n {
	case 4:
		return Square128
	case 6:
		return Square192
	case 7:
		return Square224
	case 8:
		return Square256
	case 10:
		return Square320
	case 12:
		return Square384
	case 14:
		return Square448
	case 16:
		return Square512
	}
	return func(x, zz []uint32) { Square(n, x, zz) }
}
