package benchmark

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/math/nat"
	"github.com/smallyu/go-ecmath/pkg/ec"
)

var widths = []int{128, 192, 224, 256, 320, 384, 448, 512}

func randomWords(rng *rand.Rand, bits int) []uint32 {
	x := nat.Create(bits / 32)
	for i := range x {
		x[i] = rng.Uint32()
	}
	return x
}

// BenchmarkNatMul compares the fixed-width product with the generic routine.
func BenchmarkNatMul(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, bits := range widths {
		n := bits / 32
		x, y := randomWords(rng, bits), randomWords(rng, bits)
		zz := nat.Create(2 * n)

		b.Run(fmt.Sprintf("fixed-%d", bits), func(b *testing.B) {
			mul := nat.MulFunc(n)
			for i := 0; i < b.N; i++ {
				mul(x, y, zz)
			}
		})
		b.Run(fmt.Sprintf("generic-%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				nat.Mul(n, x, y, zz)
			}
		})
	}
}

func BenchmarkNatSquare(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	for _, bits := range widths {
		n := bits / 32
		x := randomWords(rng, bits)
		zz := nat.Create(2 * n)

		b.Run(fmt.Sprintf("fixed-%d", bits), func(b *testing.B) {
			sq := nat.SquareFunc(n)
			for i := 0; i < b.N; i++ {
				sq(x, zz)
			}
		})
	}
}

func multipliers() map[string]ec.Multiplier {
	return map[string]ec.Multiplier{
		"reference": ec.NewReferenceMultiplier(),
		"wnaf":      ec.NewWNafMultiplier(),
		"naf":       ec.NewNafMultiplier(),
		"ladder":    ec.NewMontgomeryLadderMultiplier(),
		"comb":      ec.NewFixedPointCombMultiplier(),
	}
}

// BenchmarkMultipliers runs every multiplier on the generator of
// representative prime and binary curves.
func BenchmarkMultipliers(b *testing.B) {
	table, err := curves.NewTable(nil)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(3))
	for _, name := range []string{"secp256k1", "P-384", "P-521", "sect233k1", "sect283k1"} {
		nc, err := table.ByName(name)
		if err != nil {
			b.Fatal(err)
		}
		k := new(big.Int).Rand(rng, nc.Order())
		for mname, m := range multipliers() {
			if c, ok := m.(*ec.FixedPointCombMultiplier); ok {
				c.Precompute(nc.G)
			}
			b.Run(name+"/"+mname, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					m.Multiply(nc.G, k)
				}
			})
		}
	}
}

// BenchmarkCoordinateSystems compares the coordinate systems of one curve
// under the default multiplier.
func BenchmarkCoordinateSystems(b *testing.B) {
	table, err := curves.NewTable(nil)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(4))
	for _, name := range []string{"P-256", "sect233r1"} {
		nc, err := table.ByName(name)
		if err != nil {
			b.Fatal(err)
		}
		k := new(big.Int).Rand(rng, nc.Order())
		for _, cs := range nc.Curve.SupportedCoordinateSystems() {
			c, err := nc.Curve.Configure().SetCoordinateSystem(cs).Create()
			if err != nil {
				b.Fatal(err)
			}
			g, err := c.ImportPoint(nc.G)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(name+"/"+cs.String(), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					g.Multiply(k)
				}
			})
		}
	}
}

func BenchmarkSumOfTwoMultiplies(b *testing.B) {
	table, err := curves.NewTable(nil)
	if err != nil {
		b.Fatal(err)
	}
	nc, err := table.ByName("secp256k1")
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(5))
	p := nc.G.Multiply(new(big.Int).Rand(rng, nc.Order()))
	k, l := new(big.Int).Rand(rng, nc.Order()), new(big.Int).Rand(rng, nc.Order())

	b.Run("interleaved", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := ec.SumOfTwoMultiplies(nc.G, k, p, l); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("shamir", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := ec.ShamirsTrick(nc.G, k, p, l); err != nil {
				b.Fatal(err)
			}
		}
	})
}
