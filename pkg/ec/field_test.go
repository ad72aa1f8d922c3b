package ec

import (
	"crypto/elliptic"
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPrimes cover one-word moduli, the s == 1 square root path (p = 3 mod 4)
// and the Tonelli-Shanks path (P-224 has s = 96).
var testPrimes = map[string]*big.Int{
	"29":    big.NewInt(29),
	"65537": big.NewInt(65537),
	"p224":  elliptic.P224().Params().P,
	"p256":  elliptic.P256().Params().P,
	"p384":  elliptic.P384().Params().P,
	"p521":  elliptic.P521().Params().P,
	"25519": new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19)),
}

func randBelow(rng *rand.Rand, n *big.Int) *big.Int {
	return new(big.Int).Rand(rng, n)
}

func toSafe(x *big.Int) *safenum.Nat {
	return new(safenum.Nat).SetBig(x, max(x.BitLen(), 1))
}

func TestNewFpFieldRejects(t *testing.T) {
	for _, p := range []*big.Int{nil, big.NewInt(2), big.NewInt(15), big.NewInt(1 << 20)} {
		_, err := NewFpField(p)
		assert.True(t, errors.Is(err, ErrInvalidField), "modulus %v", p)
	}
}

func TestFpFromBigRange(t *testing.T) {
	f, err := NewFpField(big.NewInt(29))
	require.NoError(t, err)

	_, err = f.FromBig(big.NewInt(29))
	assert.True(t, errors.Is(err, ErrFieldValueOutOfRange))
	_, err = f.FromBig(big.NewInt(-1))
	assert.True(t, errors.Is(err, ErrFieldValueOutOfRange))

	e, err := f.FromBig(big.NewInt(28))
	require.NoError(t, err)
	assert.Equal(t, int64(28), e.ToBig().Int64())
	assert.Equal(t, []byte{28}, e.Bytes())
}

func TestFpArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, p := range testPrimes {
		t.Run(name, func(t *testing.T) {
			f, err := NewFpField(p)
			require.NoError(t, err)
			mod := safenum.ModulusFromNat(toSafe(p))

			for i := 0; i < 50; i++ {
				x, y := randBelow(rng, p), randBelow(rng, p)
				if i == 0 {
					x.Sub(p, big.NewInt(1))
					y.Sub(p, big.NewInt(1))
				}
				a, err := f.FromBig(x)
				require.NoError(t, err)
				b, err := f.FromBig(y)
				require.NoError(t, err)

				sum := new(big.Int).Add(x, y)
				assert.Equal(t, sum.Mod(sum, p), a.Add(b).ToBig())
				diff := new(big.Int).Sub(x, y)
				assert.Equal(t, diff.Mod(diff, p), a.Subtract(b).ToBig())
				neg := new(big.Int).Neg(x)
				assert.Equal(t, neg.Mod(neg, p), a.Negate().ToBig())
				one := new(big.Int).Add(x, big.NewInt(1))
				assert.Equal(t, one.Mod(one, p), a.AddOne().ToBig())

				prod := new(safenum.Nat).ModMul(toSafe(x), toSafe(y), mod)
				assert.Equal(t, prod.Big(), a.Multiply(b).ToBig())
				sq := new(safenum.Nat).ModMul(toSafe(x), toSafe(x), mod)
				assert.Equal(t, sq.Big(), a.Square().ToBig())

				if y.Sign() != 0 {
					inv := new(safenum.Nat).ModInverse(toSafe(y), mod)
					assert.Equal(t, inv.Big(), b.Invert().ToBig())
					assert.True(t, a.Divide(b).Multiply(b).Equal(a))
				}
			}
		})
	}
}

func TestFpSqrt(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for name, p := range testPrimes {
		t.Run(name, func(t *testing.T) {
			f, err := NewFpField(p)
			require.NoError(t, err)
			mod := safenum.ModulusFromNat(toSafe(p))

			for i := 0; i < 20; i++ {
				x, err := f.FromBig(randBelow(rng, p))
				require.NoError(t, err)
				sq := x.Square()
				r := sq.Sqrt()
				require.NotNil(t, r)
				assert.True(t, r.Square().Equal(sq))

				want := new(safenum.Nat).ModSqrt(toSafe(sq.ToBig()), mod).Big()
				got := r.ToBig()
				if got.Cmp(want) != 0 {
					assert.Equal(t, want, new(big.Int).Sub(p, got))
				}
			}

			nonResidues := 0
			for nonResidues < 10 {
				v := randBelow(rng, p)
				if big.Jacobi(v, p) != -1 {
					continue
				}
				x, err := f.FromBig(v)
				require.NoError(t, err)
				assert.Nil(t, x.Sqrt(), "sqrt of non-residue %v", v)
				nonResidues++
			}
		})
	}
}

func TestFpInvertZeroPanics(t *testing.T) {
	f, err := NewFpField(big.NewInt(29))
	require.NoError(t, err)
	assert.Panics(t, func() { f.zero().Invert() })
}

func TestFieldMismatchPanics(t *testing.T) {
	f29, err := NewFpField(big.NewInt(29))
	require.NoError(t, err)
	f31, err := NewFpField(big.NewInt(31))
	require.NoError(t, err)
	a, _ := f29.FromBig(big.NewInt(3))
	b, _ := f31.FromBig(big.NewInt(3))
	assert.Panics(t, func() { a.Add(b) })
	assert.False(t, a.Equal(b))
}

func TestNewF2mFieldRejects(t *testing.T) {
	for _, tc := range []struct {
		m  int
		ks []int
	}{
		{1, []int{1}},
		{8, []int{1, 2}},
		{8, []int{0}},
		{8, []int{8}},
		{8, []int{1, 1, 3}},
	} {
		_, err := NewF2mField(tc.m, tc.ks)
		assert.True(t, errors.Is(err, ErrInvalidField), "m=%d ks=%v", tc.m, tc.ks)
	}
}

// f2mMulRef multiplies polynomials bit by bit and reduces by poly.
func f2mMulRef(x, y *big.Int, m int, poly *big.Int) *big.Int {
	r := new(big.Int)
	for i := 0; i < y.BitLen(); i++ {
		if y.Bit(i) == 1 {
			r.Xor(r, new(big.Int).Lsh(x, uint(i)))
		}
	}
	for i := r.BitLen() - 1; i >= m; i-- {
		if r.Bit(i) == 1 {
			r.Xor(r, new(big.Int).Lsh(poly, uint(i-m)))
		}
	}
	return r
}

func TestF2mArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, tc := range []struct {
		m  int
		ks []int
	}{
		{4, []int{1}},
		{63, []int{1}},
		{64, []int{1, 3, 4}},
		{163, []int{3, 6, 7}},
		{233, []int{74}},
		{283, []int{5, 7, 12}},
	} {
		f, err := NewF2mField(tc.m, tc.ks)
		require.NoError(t, err)
		poly := new(big.Int).SetBit(big.NewInt(1), tc.m, 1)
		for _, k := range tc.ks {
			poly.SetBit(poly, k, 1)
		}
		bound := new(big.Int).Lsh(big.NewInt(1), uint(tc.m))

		for i := 0; i < 30; i++ {
			x, y := randBelow(rng, bound), randBelow(rng, bound)
			a, err := f.FromBig(x)
			require.NoError(t, err)
			b, err := f.FromBig(y)
			require.NoError(t, err)
			assert.Equal(t, x, a.ToBig())

			assert.Equal(t, new(big.Int).Xor(x, y), a.Add(b).ToBig())
			assert.True(t, a.Add(b).Equal(a.Subtract(b)))
			assert.True(t, a.Negate().Equal(a))
			assert.Equal(t, f2mMulRef(x, y, tc.m, poly), a.Multiply(b).ToBig())
			assert.Equal(t, f2mMulRef(x, x, tc.m, poly), a.Square().ToBig())

			// sqrt(x^2) == x
			assert.True(t, a.Square().Sqrt().Equal(a))
			if !a.IsZero() {
				assert.True(t, a.Multiply(a.Invert()).IsOne())
				assert.True(t, b.Divide(a).Multiply(a).Equal(b))
			}
		}
	}
}

func TestF2mSqrtRandom(t *testing.T) {
	f, err := NewF2mField(233, []int{74})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(4))
	bound := new(big.Int).Lsh(big.NewInt(1), 233)
	for i := 0; i < 100; i++ {
		x, err := f.FromBig(randBelow(rng, bound))
		require.NoError(t, err)
		assert.True(t, x.Square().Sqrt().Equal(x))
	}
}

func TestF2mTraceAndQuadratic(t *testing.T) {
	t.Run("odd degree", func(t *testing.T) {
		f, err := NewF2mField(163, []int{3, 6, 7})
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(5))
		bound := new(big.Int).Lsh(big.NewInt(1), 163)
		for i := 0; i < 30; i++ {
			beta, err := f.FromBig(randBelow(rng, bound))
			require.NoError(t, err)
			z := beta.SolveQuadratic()
			if beta.Trace() == 1 {
				assert.Nil(t, z)
				continue
			}
			require.NotNil(t, z)
			assert.True(t, z.Square().Add(z).Equal(beta))
		}
	})

	t.Run("even degree exhaustive", func(t *testing.T) {
		f, err := NewF2mField(4, []int{1})
		require.NoError(t, err)
		solvable := 0
		for v := int64(0); v < 16; v++ {
			beta, err := f.FromBig(big.NewInt(v))
			require.NoError(t, err)
			z := beta.SolveQuadratic()
			if beta.Trace() == 1 {
				assert.Nil(t, z, "beta=%d", v)
				continue
			}
			require.NotNil(t, z, "beta=%d", v)
			assert.True(t, z.Square().Add(z).Equal(beta), "beta=%d", v)
			solvable++
		}
		assert.Equal(t, 8, solvable)
	})

	t.Run("half trace needs odd degree", func(t *testing.T) {
		f, err := NewF2mField(4, []int{1})
		require.NoError(t, err)
		assert.Panics(t, func() { f.one().(*F2mElement).HalfTrace() })
	})
}
