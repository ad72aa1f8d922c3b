package ec

import "math/big"

// Multiplier computes scalar multiples of points. Implementations must be
// safe for concurrent use.
type Multiplier interface {
	// Multiply returns k*p. A negative k multiplies by |k| and negates.
	Multiply(p *Point, k *big.Int) *Point
}

// multiply handles the sign of k and the trivial cases, runs positive on
// |k| and checks the result.
func multiply(p *Point, k *big.Int, positive func(p *Point, k *big.Int) *Point) *Point {
	if k == nil {
		panic("ec: nil scalar")
	}
	if k.Sign() == 0 || p.IsInfinity() {
		return p.curve.infinity
	}
	r := positive(p, new(big.Int).Abs(k))
	if k.Sign() < 0 {
		r = r.Negate()
	}
	return checkResult(r)
}

// ReferenceMultiplier is the plain double-and-add multiplier. It is slow and
// serves as the oracle the other multipliers are tested against.
type ReferenceMultiplier struct{}

func NewReferenceMultiplier() *ReferenceMultiplier {
	return &ReferenceMultiplier{}
}

func (*ReferenceMultiplier) Multiply(p *Point, k *big.Int) *Point {
	return multiply(p, k, doubleAndAdd)
}

// ReferenceMultiply returns k*p with the reference multiplier, whatever
// multiplier the curve is configured with.
func ReferenceMultiply(p *Point, k *big.Int) *Point {
	return referenceMultiply(p, k)
}

func referenceMultiply(p *Point, k *big.Int) *Point {
	return multiply(p, k, doubleAndAdd)
}

func doubleAndAdd(p *Point, k *big.Int) *Point {
	r := p.curve.infinity
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Twice()
		if k.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// WNafMultiplier multiplies with a width-w NAF of the scalar, picking w
// from the scalar length and precomputing the odd multiples of the base.
type WNafMultiplier struct{}

func NewWNafMultiplier() *WNafMultiplier {
	return &WNafMultiplier{}
}

func (*WNafMultiplier) Multiply(p *Point, k *big.Int) *Point {
	return multiply(p, k, wnafMultiply)
}

func wnafMultiply(p *Point, k *big.Int) *Point {
	w := WindowSize(k.BitLen())
	pos, neg := wnafTables(p, w)
	return evalNAF(p.curve, WindowNAF(uint(w), k), pos, neg)
}

// wnafTables returns the normalized odd multiples P, 3P, ...,
// (2^(w-1)-1)P and their negations.
func wnafTables(p *Point, w int) (pos, neg []*Point) {
	pos = make([]*Point, 1<<(w-2))
	pos[0] = p
	if len(pos) > 1 {
		twoP := p.Twice()
		for i := 1; i < len(pos); i++ {
			pos[i] = pos[i-1].Add(twoP)
		}
	}
	p.curve.NormalizeAll(pos)

	neg = make([]*Point, len(pos))
	for i, q := range pos {
		neg[i] = q.Negate()
	}
	return pos, neg
}

// evalNAF evaluates NAF digits, most significant first, against tables of
// odd multiples. Runs of zero digits are batched into TimesPow2.
func evalNAF(c *Curve, digits []int32, pos, neg []*Point) *Point {
	r := c.infinity
	zeroes := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if d == 0 {
			zeroes++
			continue
		}
		r = r.TimesPow2(zeroes)
		zeroes = 0
		if d > 0 {
			r = r.TwicePlus(pos[d>>1])
		} else {
			r = r.TwicePlus(neg[(-d)>>1])
		}
	}
	return r.TimesPow2(zeroes)
}

// NafMultiplier is the width-2 special case of the wNAF multiplier: no
// table beyond the base and its negation.
type NafMultiplier struct{}

func NewNafMultiplier() *NafMultiplier {
	return &NafMultiplier{}
}

func (*NafMultiplier) Multiply(p *Point, k *big.Int) *Point {
	return multiply(p, k, func(p *Point, k *big.Int) *Point {
		return evalNAF(p.curve, WindowNAF(2, k), []*Point{p}, []*Point{p.Negate()})
	})
}

// MontgomeryLadderMultiplier performs one addition and one doubling per
// scalar bit, keeping R1 - R0 = P throughout.
type MontgomeryLadderMultiplier struct{}

func NewMontgomeryLadderMultiplier() *MontgomeryLadderMultiplier {
	return &MontgomeryLadderMultiplier{}
}

func (*MontgomeryLadderMultiplier) Multiply(p *Point, k *big.Int) *Point {
	return multiply(p, k, func(p *Point, k *big.Int) *Point {
		r0, r1 := p.curve.infinity, p
		for i := k.BitLen() - 1; i >= 0; i-- {
			if k.Bit(i) == 1 {
				r0, r1 = r0.Add(r1), r1.Twice()
			} else {
				r0, r1 = r0.Twice(), r0.Add(r1)
			}
		}
		return r0
	})
}
