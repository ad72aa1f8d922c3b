package nat

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randWords(rng *rand.Rand, n int) []uint32 {
	z := Create(n)
	for i := range z {
		z[i] = rng.Uint32()
	}
	return z
}

// edgeWords returns vectors that stress carry chains: all zero, all ones and
// a single high bit.
func edgeWords(n int) [][]uint32 {
	zero := Create(n)
	ones := Create(n)
	for i := range ones {
		ones[i] = m32
	}
	top := Create(n)
	top[n-1] = 0x80000000
	return [][]uint32{zero, ones, top}
}

func twoPow(bits int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(bits))
}

func TestFromBigRoundTrip(t *testing.T) {
	x, ok := new(big.Int).SetString("123456789abcdef0123456789abcdef", 16)
	require.True(t, ok)

	z, err := FromBig(128, x)
	require.NoError(t, err)
	assert.Len(t, z, 4)
	assert.Equal(t, x, ToBig(4, z))
	assert.Equal(t, uint32(0x89abcdef), z[0])

	buf := ToBytes(4, z)
	assert.Len(t, buf, 16)
	assert.Equal(t, byte(0x01), buf[0])
}

func TestFromBigErrors(t *testing.T) {
	tests := []struct {
		name string
		bits int
		x    *big.Int
		want error
	}{
		{"negative", 64, big.NewInt(-1), ErrNegative},
		{"too large", 64, twoPow(64), ErrTooLarge},
		{"odd width too large", 33, twoPow(33), ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBig(tt.bits, tt.x)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	z, err := FromBig(33, new(big.Int).Sub(twoPow(33), big.NewInt(1)))
	require.NoError(t, err)
	assert.Len(t, z, 2)
}

func TestAddSub(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 3, 8, 17} {
		mod := twoPow(32 * n)
		inputs := append(edgeWords(n), randWords(rng, n), randWords(rng, n))
		for _, x := range inputs {
			for _, y := range inputs {
				bx, by := ToBig(n, x), ToBig(n, y)

				z := Create(n)
				c := Add(n, x, y, z)
				sum := new(big.Int).Add(bx, by)
				assert.Equal(t, uint32(sum.Rsh(sum, uint(32*n)).Uint64()), c)
				assert.Equal(t, new(big.Int).Mod(new(big.Int).Add(bx, by), mod), ToBig(n, z))

				b := Sub(n, x, y, z)
				if bx.Cmp(by) < 0 {
					assert.Equal(t, int32(-1), b)
				} else {
					assert.Equal(t, int32(0), b)
				}
				assert.Equal(t, new(big.Int).Mod(new(big.Int).Sub(bx, by), mod), ToBig(n, z))

				neg := Diff(n, x, y, z)
				assert.Equal(t, bx.Cmp(by) < 0, neg)
				assert.Equal(t, new(big.Int).Abs(new(big.Int).Sub(bx, by)), ToBig(n, z))

				assert.Equal(t, bx.Cmp(by) >= 0, Gte(n, x, y))
				assert.Equal(t, bx.Cmp(by) == 0, Eq(n, x, y))
			}
		}
	}
}

func TestAddToVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n := 5
	mod := twoPow(32 * n)
	for i := 0; i < 50; i++ {
		x, y, z := randWords(rng, n), randWords(rng, n), randWords(rng, n)
		bx, by, bz := ToBig(n, x), ToBig(n, y), ToBig(n, z)

		z1 := append([]uint32(nil), z...)
		c := AddTo(n, x, z1, 1)
		want := new(big.Int).Add(bx, bz)
		want.Add(want, big.NewInt(1))
		assert.Equal(t, new(big.Int).Mod(want, mod), ToBig(n, z1))
		assert.Equal(t, want.Rsh(want, uint(32*n)).Uint64(), uint64(c))

		z2 := append([]uint32(nil), z...)
		c = AddBothTo(n, x, y, z2)
		want = new(big.Int).Add(bx, by)
		want.Add(want, bz)
		assert.Equal(t, new(big.Int).Mod(want, mod), ToBig(n, z2))
		assert.Equal(t, want.Rsh(want, uint(32*n)).Uint64(), uint64(c))

		u, v := append([]uint32(nil), x...), append([]uint32(nil), y...)
		AddToEachOther(n, u, v)
		assert.Equal(t, u, v)
		assert.Equal(t, new(big.Int).Mod(new(big.Int).Add(bx, by), mod), ToBig(n, u))

		z3 := append([]uint32(nil), z...)
		b := SubFrom(n, x, z3)
		assert.Equal(t, new(big.Int).Mod(new(big.Int).Sub(bz, bx), mod), ToBig(n, z3))
		assert.Equal(t, bz.Cmp(bx) < 0, b == -1)
	}
}

func clone(x []uint32) []uint32 {
	return append([]uint32(nil), x...)
}

func TestAliasedOutputs(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, n := range []int{1, 4, 8, 12, 16} {
		mod := twoPow(32 * n)
		inputs := append(edgeWords(n), randWords(rng, n), randWords(rng, n))
		for _, x := range inputs {
			for _, y := range inputs {
				bx, by := ToBig(n, x), ToBig(n, y)
				sum := new(big.Int).Add(bx, by)
				sumCarry := uint32(new(big.Int).Rsh(sum, uint(32*n)).Uint64())
				sum.Mod(sum, mod)
				diff := new(big.Int).Mod(new(big.Int).Sub(bx, by), mod)
				borrow := int32(0)
				if bx.Cmp(by) < 0 {
					borrow = -1
				}

				z := clone(x)
				assert.Equal(t, sumCarry, Add(n, z, y, z))
				assert.Equal(t, sum, ToBig(n, z), "Add(x, y, x): %s", spew.Sdump(x, y))
				z = clone(y)
				assert.Equal(t, sumCarry, Add(n, x, z, z))
				assert.Equal(t, sum, ToBig(n, z), "Add(x, y, y)")

				z = clone(x)
				assert.Equal(t, borrow, Sub(n, z, y, z))
				assert.Equal(t, diff, ToBig(n, z), "Sub(x, y, x)")
				z = clone(y)
				assert.Equal(t, borrow, Sub(n, x, z, z))
				assert.Equal(t, diff, ToBig(n, z), "Sub(x, y, y)")

				abs := new(big.Int).Abs(new(big.Int).Sub(bx, by))
				z = clone(y)
				assert.Equal(t, borrow == -1, Diff(n, x, z, z))
				assert.Equal(t, abs, ToBig(n, z), "Diff(x, y, y)")

				for _, mask := range []uint32{0, m32} {
					want, wantCarry := bx, uint32(0)
					if mask != 0 {
						want, wantCarry = sum, sumCarry
					}
					z = clone(x)
					assert.Equal(t, wantCarry, CAdd(n, mask, z, y, z))
					assert.Equal(t, want, ToBig(n, z), "CAdd(%x, x, y, x)", mask)
					z = clone(y)
					c := CAdd(n, mask, x, z, z)
					assert.Equal(t, wantCarry, c)
					assert.Equal(t, want, ToBig(n, z), "CAdd(%x, x, y, y)", mask)
				}

				z = clone(x)
				AddToEachOther(n, z, z)
				assert.Equal(t, new(big.Int).Mod(new(big.Int).Lsh(bx, 1), mod), ToBig(n, z))
			}

			// x + x and x - x with every operand the same slice.
			bx := ToBig(n, x)
			z := clone(x)
			Add(n, z, z, z)
			assert.Equal(t, new(big.Int).Mod(new(big.Int).Lsh(bx, 1), mod), ToBig(n, z))
			z = clone(x)
			assert.Equal(t, int32(0), Sub(n, z, z, z))
			assert.True(t, IsZero(n, z))

			z = clone(x)
			hi := MulWord(n, 0x9e3779b9, z, z)
			prod := new(big.Int).Mul(bx, big.NewInt(0x9e3779b9))
			assert.Equal(t, new(big.Int).Mod(prod, mod), ToBig(n, z))
			assert.Equal(t, new(big.Int).Rsh(prod, uint(32*n)).Uint64(), uint64(hi))

			z = clone(x)
			ShiftUpBitsTo(n, z, 7, 0, z)
			assert.Equal(t, new(big.Int).Mod(new(big.Int).Lsh(bx, 7), mod), ToBig(n, z))
			z = clone(x)
			ShiftDownBitsTo(n, z, 7, 0, z)
			assert.Equal(t, new(big.Int).Rsh(bx, 7), ToBig(n, z))
		}
	}
}

func TestMulSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 5, 9, 13} {
		inputs := append(edgeWords(n), randWords(rng, n), randWords(rng, n))
		for _, x := range inputs {
			for _, y := range inputs {
				zz := Create(2 * n)
				Mul(n, x, y, zz)
				want := new(big.Int).Mul(ToBig(n, x), ToBig(n, y))
				require.Equal(t, want, ToBig(2*n, zz), "x=%s y=%s", spew.Sdump(x), spew.Sdump(y))
			}
			zz := Create(2 * n)
			Square(n, x, zz)
			want := new(big.Int).Mul(ToBig(n, x), ToBig(n, x))
			require.Equal(t, want, ToBig(2*n, zz), "x=%s", spew.Sdump(x))
		}
	}
}

func TestMulWord(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	n := 6
	for i := 0; i < 30; i++ {
		w := rng.Uint32()
		y, z := randWords(rng, n), randWords(rng, n)
		want := new(big.Int).Mul(big.NewInt(int64(w)), ToBig(n, y))
		want.Add(want, ToBig(n, z))

		c := MulWordAddTo(n, w, y, z)
		got := ToBig(n, z)
		got.Add(got, new(big.Int).Lsh(big.NewInt(int64(c)), uint(32*n)))
		assert.Equal(t, want, got)
	}
}

func TestShifts(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 4
	mod := twoPow(32 * n)
	for i := 0; i < 20; i++ {
		x := randWords(rng, n)
		bx := ToBig(n, x)

		z := append([]uint32(nil), x...)
		c := ShiftUpBit(n, z, 1)
		want := new(big.Int).Lsh(bx, 1)
		want.Add(want, big.NewInt(1))
		assert.Equal(t, new(big.Int).Mod(want, mod), ToBig(n, z))
		assert.Equal(t, uint32(bx.Bit(32*n-1)), c)

		z = append([]uint32(nil), x...)
		c = ShiftUpBits(n, z, 7, 0x55)
		want = new(big.Int).Lsh(bx, 7)
		want.Add(want, big.NewInt(0x55))
		assert.Equal(t, new(big.Int).Mod(want, mod), ToBig(n, z))
		assert.Equal(t, uint32(new(big.Int).Rsh(bx, uint(32*n-7)).Uint64()), c)

		z = Create(n)
		c = ShiftDownBitTo(n, x, 1, z)
		want = new(big.Int).Rsh(bx, 1)
		want.SetBit(want, 32*n-1, 1)
		assert.Equal(t, want, ToBig(n, z))
		assert.Equal(t, uint32(bx.Bit(0)), c)

		z = append([]uint32(nil), x...)
		c = ShiftDownBits(n, z, 5, 0)
		assert.Equal(t, new(big.Int).Rsh(bx, 5), ToBig(n, z))
		assert.Equal(t, x[0]&31, c)
	}
}

func TestConditionalOps(t *testing.T) {
	x := []uint32{1, 2, 3}
	y := []uint32{m32, m32, 0}

	z := append([]uint32(nil), x...)
	CMov(3, MaskFromBool(false), y, z)
	assert.Equal(t, x, z)
	CMov(3, MaskFromBool(true), y, z)
	assert.Equal(t, y, z)

	c := CAdd(3, Mask(0), x, y, z)
	assert.Equal(t, x, z)
	assert.Zero(t, c)

	c = CAdd(3, Mask(1), x, y, z)
	assert.Equal(t, []uint32{0, 2, 4}, z)
	assert.Zero(t, c)
}

func TestWordAt(t *testing.T) {
	z := []uint32{m32, m32, 7, 0}
	assert.Zero(t, AddWordAt(4, 1, z, 0))
	assert.Equal(t, []uint32{0, 0, 8, 0}, z)

	z = []uint32{0, 0, 0, 0}
	assert.Equal(t, int32(-1), SubWordAt(4, 1, z, 1))
	assert.Equal(t, []uint32{0, m32, m32, m32}, z)

	z = []uint32{m32, m32}
	assert.Equal(t, uint32(1), IncAt(2, z, 0))
	assert.Equal(t, []uint32{0, 0}, z)
	assert.Equal(t, int32(-1), DecAt(2, z, 0))
	assert.Equal(t, uint32(1), AddWordTo(2, 1, z))

	assert.True(t, IsOne(3, []uint32{1, 0, 0}))
	assert.False(t, IsOne(3, []uint32{1, 0, 1}))
	assert.True(t, IsZero(2, []uint32{0, 0}))
	assert.Equal(t, uint32(1), GetBit([]uint32{0, 4}, 34))
	assert.Zero(t, GetBit([]uint32{0, 4}, 64))
}

func TestInverseWord32(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		d := rng.Uint32() | 1
		assert.Equal(t, uint32(1), d*InverseWord32(d))
	}
}

func TestMontReduce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 4, 7, 12} {
		m := randWords(rng, n)
		m[0] |= 1
		m[n-1] |= 0x80000000
		bm := ToBig(n, m)
		rInv := new(big.Int).ModInverse(twoPow(32*n), bm)
		m0inv := -InverseWord32(m[0])

		for i := 0; i < 20; i++ {
			a := new(big.Int).Rand(rng, bm)
			b := new(big.Int).Rand(rng, bm)
			aw, err := FromBig(32*n, a)
			require.NoError(t, err)
			bw, err := FromBig(32*n, b)
			require.NoError(t, err)

			tt := Create(2 * n)
			MulFunc(n)(aw, bw, tt)
			z := Create(n)
			MontReduce(n, tt, m, m0inv, z)

			want := new(big.Int).Mul(a, b)
			want.Mul(want, rInv)
			want.Mod(want, bm)
			require.Equal(t, want, ToBig(n, z), "n=%d", n)
		}
	}
}
