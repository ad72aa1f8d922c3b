package ec

import (
	"errors"
	"math/big"
	"math/rand"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func multipliers() map[string]Multiplier {
	return map[string]Multiplier{
		"reference": NewReferenceMultiplier(),
		"wnaf":      NewWNafMultiplier(),
		"naf":       NewNafMultiplier(),
		"ladder":    NewMontgomeryLadderMultiplier(),
		"comb":      NewFixedPointCombMultiplier(),
	}
}

// testScalars returns edge-case scalars followed by random ones below n.
func testScalars(rng *rand.Rand, n *big.Int, count int) []*big.Int {
	one := big.NewInt(1)
	ks := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		new(big.Int).Sub(n, one),
		new(big.Int).Sub(n, big.NewInt(2)),
		new(big.Int).Rsh(n, 1),
	}
	for i := 0; i < count; i++ {
		ks = append(ks, randBelow(rng, n))
	}
	return ks
}

func TestMultipliersAgreeWithReference(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for _, tc := range allTestCurves(t) {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.generator(t)
			p := ReferenceMultiply(g, big.NewInt(7))
			ks := testScalars(rng, tc.curve.order, 2)

			for name, m := range multipliers() {
				for _, base := range []*Point{g, p} {
					for _, k := range ks {
						want := ReferenceMultiply(base, k)
						got := m.Multiply(base, k)
						assert.True(t, want.Equal(got), "%s: k=%v", name, k)

						neg := new(big.Int).Neg(k)
						assert.True(t, want.Negate().Equal(m.Multiply(base, neg)), "%s: k=%v", name, neg)
					}
					assert.True(t, m.Multiply(tc.curve.Infinity(), big.NewInt(5)).IsInfinity(), name)
				}
			}
		})
	}
}

func TestMultipliersExhaustiveSmall(t *testing.T) {
	for _, base := range []testCurve{literatureCurve(t), tinyBinaryCurve(t)} {
		for _, cs := range base.curve.SupportedCoordinateSystems() {
			tc := base.withCoords(t, cs)
			g := tc.generator(t)
			for name, m := range multipliers() {
				acc := tc.curve.Infinity()
				for k := int64(0); k < 80; k++ {
					got := m.Multiply(g, big.NewInt(k))
					assert.True(t, acc.Equal(got), "%s/%s/%s: k=%d", base.name, cs, name, k)
					acc = acc.Add(g)
				}
			}
		}
	}
}

func TestMultiplyNilScalarPanics(t *testing.T) {
	g := literatureCurve(t).generator(t)
	assert.Panics(t, func() { g.Multiply(nil) })
}

func TestCombFallsBackForLongScalars(t *testing.T) {
	tc := p256Curve(t)
	g := tc.generator(t)
	m := NewFixedPointCombMultiplier()

	k := new(big.Int).Lsh(tc.curve.order, 3)
	k.Add(k, big.NewInt(12345))
	assert.True(t, ReferenceMultiply(g, k).Equal(m.Multiply(g, k)))
	assert.True(t, ReferenceMultiply(g, big.NewInt(12345)).Equal(m.Multiply(g, k)))
}

func TestCombPrecomputeLogsOnce(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tc := sect163r2Curve(t)
	c, err := tc.curve.Configure().SetLogger(zap.New(core)).Create()
	require.NoError(t, err)
	tc.curve = c
	g := tc.generator(t)

	m := NewFixedPointCombMultiplier()
	m.Precompute(g)
	m.Precompute(g)
	m.Precompute(c.Infinity())

	var wg sync.WaitGroup
	rng := rand.New(rand.NewSource(21))
	ks := testScalars(rng, c.order, 4)
	results := make([]*Point, len(ks))
	for i, k := range ks {
		wg.Add(1)
		go func(i int, k *big.Int) {
			defer wg.Done()
			results[i] = m.Multiply(g, k)
		}(i, k)
	}
	wg.Wait()
	for i, k := range ks {
		assert.True(t, ReferenceMultiply(g, k).Equal(results[i]), "k=%v", k)
	}

	entries := logs.FilterMessage("precomputed comb table").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 5, fields["width"])
	assert.EqualValues(t, 33, fields["spacing"])
	assert.EqualValues(t, 32, fields["entries"])
}

func TestCombTablesBelongToTheirBase(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	base := literatureCurve(t)
	c, err := base.curve.Configure().
		SetMultiplier(NewFixedPointCombMultiplier()).
		SetLogger(zap.New(core)).
		Create()
	require.NoError(t, err)
	base.curve = c
	g := base.generator(t)

	k := big.NewInt(5)
	bases := make([]*Point, 30)
	for i := range bases {
		bases[i] = ReferenceMultiply(g, big.NewInt(int64(i+2)))
	}
	for round := 0; round < 2; round++ {
		for i, p := range bases {
			got := p.Multiply(k)
			assert.True(t, ReferenceMultiply(p, k).Equal(got), "base %d", i+1)
			assert.Nil(t, got.comb, "base %d", i+1)
		}
	}

	// One table per base, each built once and held by the base itself.
	assert.Len(t, logs.FilterMessage("precomputed comb table").All(), len(bases))
	for i, p := range bases {
		assert.NotNil(t, p.comb, "base %d", i+1)
	}
	assert.Zero(t, unsafe.Sizeof(FixedPointCombMultiplier{}))
	assert.Nil(t, g.comb)
}

func TestWindowSize(t *testing.T) {
	for _, tc := range []struct{ bits, want int }{
		{0, 2}, {12, 2}, {13, 3}, {40, 3}, {41, 4}, {120, 4}, {121, 5},
		{256, 5}, {337, 6}, {896, 6}, {897, 7}, {2305, 8}, {100000, 8},
	} {
		assert.Equal(t, tc.want, WindowSize(tc.bits), "bits=%d", tc.bits)
	}
}

func TestWindowNAF(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	bound := new(big.Int).Lsh(big.NewInt(1), 300)
	for w := uint(2); w <= 8; w++ {
		for i := 0; i < 20; i++ {
			k := randBelow(rng, bound)
			digits := WindowNAF(w, k)

			sum := new(big.Int)
			last := -int(w)
			for j := len(digits) - 1; j >= 0; j-- {
				d := digits[j]
				sum.Lsh(sum, 1)
				sum.Add(sum, big.NewInt(int64(d)))
				if d == 0 {
					continue
				}
				assert.Equal(t, int32(1), d&1, "digits must be odd")
				assert.Less(t, int64(d), int64(1)<<(w-1))
				assert.Greater(t, int64(d), -(int64(1) << (w - 1)))
				if last >= 0 {
					assert.GreaterOrEqual(t, last-j, int(w), "non-zero digits too close")
				}
				last = j
			}
			assert.Equal(t, k, sum, "w=%d", w)
			if len(digits) > 0 {
				assert.NotZero(t, digits[len(digits)-1])
			}
		}
	}
	assert.Empty(t, WindowNAF(4, big.NewInt(0)))
	assert.Panics(t, func() { WindowNAF(1, big.NewInt(3)) })
	assert.Panics(t, func() { WindowNAF(4, big.NewInt(-3)) })
}

func TestJSF(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	bound := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 50; i++ {
		g, h := randBelow(rng, bound), randBelow(rng, bound)
		if i == 0 {
			g.SetInt64(0)
		}
		digits := JSF(g, h)

		sg, sh := new(big.Int), new(big.Int)
		for j := len(digits) - 1; j >= 0; j-- {
			u := digits[j]
			assert.LessOrEqual(t, u[0]*u[0], int8(1))
			assert.LessOrEqual(t, u[1]*u[1], int8(1))
			sg.Lsh(sg, 1).Add(sg, big.NewInt(int64(u[0])))
			sh.Lsh(sh, 1).Add(sh, big.NewInt(int64(u[1])))
		}
		assert.Equal(t, g, sg)
		assert.Equal(t, h, sh)
	}
}

func TestSumOfMultiplies(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	for _, base := range []testCurve{literatureCurve(t), tinyBinaryCurve(t), p256Curve(t), sect163r2Curve(t)} {
		for _, cs := range base.curve.SupportedCoordinateSystems() {
			tc := base.withCoords(t, cs)
			t.Run(base.name+"/"+cs.String(), func(t *testing.T) {
				c := tc.curve
				g := tc.generator(t)
				p := ReferenceMultiply(g, randBelow(rng, c.order))
				q := ReferenceMultiply(g, randBelow(rng, c.order))

				for _, ab := range [][2]*big.Int{
					{randBelow(rng, c.order), randBelow(rng, c.order)},
					{big.NewInt(0), randBelow(rng, c.order)},
					{new(big.Int).Neg(randBelow(rng, c.order)), randBelow(rng, c.order)},
					{big.NewInt(1), big.NewInt(-1)},
				} {
					a, b := ab[0], ab[1]
					want := p.Multiply(a).Add(q.Multiply(b))

					got, err := SumOfTwoMultiplies(p, a, q, b)
					require.NoError(t, err)
					assert.True(t, want.Equal(got), "sum of two: a=%v b=%v", a, b)

					got, err = ShamirsTrick(p, a, q, b)
					require.NoError(t, err)
					assert.True(t, want.Equal(got), "shamir: a=%v b=%v", a, b)
				}

				// Same point on both sides.
				got, err := ShamirsTrick(p, big.NewInt(3), p, big.NewInt(-3))
				require.NoError(t, err)
				assert.True(t, got.IsInfinity())

				points := []*Point{g, p, q, p.Twice(), c.Infinity(), q.Negate()}
				scalars := make([]*big.Int, len(points))
				acc := c.Infinity()
				for k := range points {
					scalars[k] = randBelow(rng, c.order)
					if k%2 == 1 {
						scalars[k].Neg(scalars[k])
					}
					acc = acc.Add(points[k].Multiply(scalars[k]))
					got, err := SumOfMultiplies(points[:k+1], scalars[:k+1])
					require.NoError(t, err)
					assert.True(t, acc.Equal(got), "k=%d", k)
				}
			})
		}
	}
}

func TestSumOfMultipliesErrors(t *testing.T) {
	g := literatureCurve(t).generator(t)
	h := tinyBinaryCurve(t).generator(t)
	one := big.NewInt(1)

	_, err := SumOfMultiplies([]*Point{g}, []*big.Int{one, one})
	assert.True(t, errors.Is(err, ErrScalarCountMismatch))
	_, err = SumOfMultiplies(nil, nil)
	assert.True(t, errors.Is(err, ErrScalarCountMismatch))
	_, err = SumOfTwoMultiplies(g, one, h, one)
	assert.True(t, errors.Is(err, ErrCurveMismatch))
	_, err = ShamirsTrick(g, one, h, one)
	assert.True(t, errors.Is(err, ErrCurveMismatch))
	_, err = ShamirsTrick(g, nil, g, one)
	assert.True(t, errors.Is(err, ErrInvalidScalar))
	_, err = SumOfMultiplies([]*Point{g, g}, []*big.Int{one, nil})
	assert.True(t, errors.Is(err, ErrInvalidScalar))

	// Points from differently configured copies of one curve are accepted.
	affine := literatureCurve(t).withCoords(t, CoordAffine)
	ga := affine.generator(t)
	got, err := SumOfTwoMultiplies(g, big.NewInt(2), ga, big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, got.Equal(ReferenceMultiply(g, big.NewInt(5))))
}

func TestCheckResultPanicsOffCurve(t *testing.T) {
	c := literatureCurve(t).curve
	bad, err := c.CreatePoint(big.NewInt(1), big.NewInt(1))
	require.NoError(t, err)
	assert.Panics(t, func() { checkResult(bad) })
	assert.NotPanics(t, func() { checkResult(c.Infinity()) })
}
