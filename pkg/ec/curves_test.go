package ec

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex constant " + s)
	}
	return n
}

// testCurve is a curve with a generator used throughout the package tests.
type testCurve struct {
	name   string
	curve  *Curve
	gx, gy *big.Int
}

func (tc testCurve) generator(t testing.TB) *Point {
	t.Helper()
	g, err := tc.curve.ValidatePoint(tc.gx, tc.gy)
	require.NoError(t, err)
	return g
}

// withCoords returns tc on a copy of the curve using cs.
func (tc testCurve) withCoords(t testing.TB, cs CoordinateSystem) testCurve {
	t.Helper()
	c, err := tc.curve.Configure().SetCoordinateSystem(cs).Create()
	require.NoError(t, err)
	tc.curve = c
	return tc
}

// literatureCurve is y^2 = x^3 + 4x + 20 over F(29).
func literatureCurve(t testing.TB) testCurve {
	t.Helper()
	c, err := NewFpCurve(big.NewInt(29), big.NewInt(4), big.NewInt(20), big.NewInt(38), big.NewInt(1))
	require.NoError(t, err)
	return testCurve{"fp29", c, big.NewInt(5), big.NewInt(22)}
}

// tinyBinaryCurve is y^2 + xy = x^3 + 8x^2 + 9 over F(2^4) with
// x^4 + x + 1. It has 22 points; the generator spans the subgroup of
// order 11.
func tinyBinaryCurve(t testing.TB) testCurve {
	t.Helper()
	c, err := NewF2mCurve(4, []int{1}, big.NewInt(8), big.NewInt(9), big.NewInt(11), big.NewInt(2))
	require.NoError(t, err)
	return testCurve{"f2m4", c, big.NewInt(8), big.NewInt(1)}
}

func p256Curve(t testing.TB) testCurve {
	t.Helper()
	params := elliptic.P256().Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	c, err := NewFpCurve(params.P, a, params.B, params.N, big.NewInt(1))
	require.NoError(t, err)
	return testCurve{"p256", c, params.Gx, params.Gy}
}

// wei25519Curve is the short Weierstrass form of curve25519 (h = 8).
func wei25519Curve(t testing.TB) testCurve {
	t.Helper()
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	n := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 252), hexInt("14def9dea2f79cd65812631a5cf5d3ed"))
	c, err := NewFpCurve(p,
		hexInt("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144"),
		hexInt("7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864"),
		n, big.NewInt(8))
	require.NoError(t, err)
	return testCurve{"wei25519", c,
		hexInt("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad245a"),
		hexInt("20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9")}
}

func sect163r2Curve(t testing.TB) testCurve {
	t.Helper()
	c, err := NewF2mCurve(163, []int{3, 6, 7}, big.NewInt(1),
		hexInt("20A601907B8C953CA1481EB10512F78744A3205FD"),
		hexInt("40000000000000000000292FE77E70C12A4234C33"), big.NewInt(2))
	require.NoError(t, err)
	return testCurve{"sect163r2", c,
		hexInt("3F0EBA16286A2D57EA0991168D4994637E8343E36"),
		hexInt("0D51FBC6C71A0094FA2CDD545B11C5C0C797324F1")}
}

func sect233k1Curve(t testing.TB) testCurve {
	t.Helper()
	c, err := NewF2mCurve(233, []int{74}, big.NewInt(0), big.NewInt(1),
		hexInt("8000000000000000000000000000069D5BB915BCD46EFB1AD5F173ABDF"), big.NewInt(4))
	require.NoError(t, err)
	return testCurve{"sect233k1", c,
		hexInt("017232BA853A7E731AF129F22FF4149563A419C26BF50A4C9D6EEFAD6126"),
		hexInt("01DB537DECE819B7F70F555A67C427A8CD9BF18AEB9B56E0C11056FAE6A3")}
}

// allTestCurves returns every test curve in every coordinate system it
// supports.
func allTestCurves(t testing.TB) []testCurve {
	t.Helper()
	var out []testCurve
	for _, tc := range []testCurve{
		literatureCurve(t),
		tinyBinaryCurve(t),
		p256Curve(t),
		wei25519Curve(t),
		sect163r2Curve(t),
		sect233k1Curve(t),
	} {
		for _, cs := range tc.curve.SupportedCoordinateSystems() {
			c := tc.withCoords(t, cs)
			c.name = tc.name + "/" + cs.String()
			out = append(out, c)
		}
	}
	return out
}
