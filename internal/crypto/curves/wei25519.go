package curves

import (
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

var (
	wei25519P = hexInt("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	wei25519N = hexInt("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")

	// wei25519Shift is A/3 for the Montgomery coefficient A = 486662.
	wei25519Shift = hexInt("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad2451")

	// wei25519C is sqrt(-486664), the scale between Edwards x and Montgomery v.
	wei25519C = hexInt("70d9120b9f5ff9442d84f723fc03b0813a5e2c2eb482e57d3391fb5500ba81e7")
)

// Wei25519 computes on curve25519 in short Weierstrass form by mapping
// points to and from the twisted Edwards model of edwards25519.
type Wei25519 struct{}

func (Wei25519) Name() string    { return "wei25519" }
func (Wei25519) Order() *big.Int { return new(big.Int).Set(wei25519N) }

func (Wei25519) NewScalar() (*big.Int, error) {
	return randScalar(wei25519N)
}

func (w Wei25519) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	p := new(edwards25519.Point).ScalarBaseMult(edScalar(k))
	return fromEdwards(p)
}

func (w Wei25519) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int) {
	p := new(edwards25519.Point).ScalarMult(edScalar(k), toEdwards(px, py))
	return fromEdwards(p)
}

func (w Wei25519) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p := new(edwards25519.Point).Add(toEdwards(x1, y1), toEdwards(x2, y2))
	return fromEdwards(p)
}

func edScalar(k *big.Int) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(leBytes(reduce(k, wei25519N)))
	if err != nil {
		panic(err)
	}
	return s
}

// toEdwards maps (X, Y) through the Montgomery point (X - A/3, Y).
func toEdwards(x, y *big.Int) *edwards25519.Point {
	if x == nil {
		return edwards25519.NewIdentityPoint()
	}
	p := wei25519P
	u := new(big.Int).Sub(x, wei25519Shift)
	u.Mod(u, p)

	var ex, ey *big.Int
	if y.Sign() == 0 {
		ex, ey = new(big.Int), new(big.Int).Sub(p, big.NewInt(1))
	} else {
		// x = c*u/v, y = (u-1)/(u+1)
		ex = new(big.Int).Mul(wei25519C, u)
		ex.Mul(ex, new(big.Int).ModInverse(y, p))
		ex.Mod(ex, p)
		ey = new(big.Int).Sub(u, big.NewInt(1))
		ey.Mul(ey, new(big.Int).ModInverse(new(big.Int).Add(u, big.NewInt(1)), p))
		ey.Mod(ey, p)
	}
	t := new(big.Int).Mul(ex, ey)
	t.Mod(t, p)

	one := new(field.Element).One()
	pt, err := new(edwards25519.Point).SetExtendedCoordinates(fieldElement(ex), fieldElement(ey), one, fieldElement(t))
	if err != nil {
		panic(err)
	}
	return pt
}

func fromEdwards(pt *edwards25519.Point) (*big.Int, *big.Int) {
	if pt.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, nil
	}
	X, Y, Z, _ := pt.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	ex := fromLE(new(field.Element).Multiply(X, zInv).Bytes())
	ey := fromLE(new(field.Element).Multiply(Y, zInv).Bytes())

	p := wei25519P
	if ex.Sign() == 0 {
		return new(big.Int).Set(wei25519Shift), new(big.Int)
	}
	// u = (1+y)/(1-y), v = c*u/x
	den := new(big.Int).Sub(big.NewInt(1), ey)
	den.Mod(den, p)
	u := new(big.Int).Add(ey, big.NewInt(1))
	u.Mul(u, den.ModInverse(den, p))
	u.Mod(u, p)
	v := new(big.Int).Mul(wei25519C, u)
	v.Mul(v, new(big.Int).ModInverse(ex, p))
	v.Mod(v, p)

	u.Add(u, wei25519Shift)
	return u.Mod(u, p), v
}

func fieldElement(n *big.Int) *field.Element {
	e, err := new(field.Element).SetBytes(leBytes(n))
	if err != nil {
		panic(err)
	}
	return e
}

// leBytes encodes 0 <= n < 2^256 as 32 little-endian bytes.
func leBytes(n *big.Int) []byte {
	var buf [32]byte
	n.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:]
}

func fromLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}
