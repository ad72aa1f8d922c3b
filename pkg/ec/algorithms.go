package ec

import (
	"fmt"
	"math/big"
)

// importPoints brings every point onto the curve of the first one.
func importPoints(ps []*Point) ([]*Point, error) {
	c := ps[0].curve
	out := make([]*Point, len(ps))
	for i, p := range ps {
		q, err := c.ImportPoint(p)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

func checkScalars(ks []*big.Int) error {
	for i, k := range ks {
		if k == nil {
			return makeError(ErrInvalidScalar, fmt.Sprintf("scalar %d is nil", i))
		}
	}
	return nil
}

// SumOfTwoMultiplies returns a*p + b*q, interleaving the wNAF expansions of
// both scalars.
func SumOfTwoMultiplies(p *Point, a *big.Int, q *Point, b *big.Int) (*Point, error) {
	return SumOfMultiplies([]*Point{p, q}, []*big.Int{a, b})
}

// ShamirsTrick returns a*p + b*q using the joint sparse form of the scalars
// over the table {0, ±p, ±q, ±(p+q), ±(p-q)}.
func ShamirsTrick(p *Point, a *big.Int, q *Point, b *big.Int) (*Point, error) {
	ps, err := importPoints([]*Point{p, q})
	if err != nil {
		return nil, err
	}
	if err := checkScalars([]*big.Int{a, b}); err != nil {
		return nil, err
	}
	p, q = ps[0], ps[1]
	c := p.curve

	if a.Sign() < 0 {
		p, a = p.Negate(), new(big.Int).Neg(a)
	}
	if b.Sign() < 0 {
		q, b = q.Negate(), new(big.Int).Neg(b)
	}

	pq, pmq := p.Add(q), p.Subtract(q)
	pos := []*Point{q, pmq, p, pq}
	c.NormalizeAll(pos)
	q, pmq, p, pq = pos[0], pos[1], pos[2], pos[3]

	// Indexed by 4 + 3*u0 + u1 for JSF digits (u0, u1).
	table := [9]*Point{
		pq.Negate(), p.Negate(), pmq.Negate(),
		q.Negate(), c.infinity, q,
		pmq, p, pq,
	}

	digits := JSF(a, b)
	r := c.infinity
	zeroes := 0
	for i := len(digits) - 1; i >= 0; i-- {
		u := digits[i]
		idx := 4 + 3*int(u[0]) + int(u[1])
		if idx == 4 {
			zeroes++
			continue
		}
		r = r.TimesPow2(zeroes).TwicePlus(table[idx])
		zeroes = 0
	}
	return checkResult(r.TimesPow2(zeroes)), nil
}

// SumOfMultiplies returns the sum of ks[i]*ps[i]. All points must lie on
// the same curve; the result is on the curve of ps[0].
func SumOfMultiplies(ps []*Point, ks []*big.Int) (*Point, error) {
	if len(ps) != len(ks) || len(ps) == 0 {
		return nil, makeError(ErrScalarCountMismatch,
			fmt.Sprintf("need equal non-zero numbers of points and scalars, got %d and %d", len(ps), len(ks)))
	}
	ps, err := importPoints(ps)
	if err != nil {
		return nil, err
	}
	if err := checkScalars(ks); err != nil {
		return nil, err
	}
	c := ps[0].curve

	type term struct {
		digits   []int32
		pos, neg []*Point
	}
	terms := make([]term, 0, len(ps))
	length := 0
	for i, p := range ps {
		if p.IsInfinity() || ks[i].Sign() == 0 {
			continue
		}
		k := new(big.Int).Abs(ks[i])
		w := WindowSize(k.BitLen())
		pos, neg := wnafTables(p, w)
		if ks[i].Sign() < 0 {
			pos, neg = neg, pos
		}
		digits := WindowNAF(uint(w), k)
		terms = append(terms, term{digits, pos, neg})
		length = max(length, len(digits))
	}

	r := c.infinity
	zeroes := 0
	for i := length - 1; i >= 0; i-- {
		s := c.infinity
		for _, t := range terms {
			if i >= len(t.digits) {
				continue
			}
			if d := t.digits[i]; d > 0 {
				s = s.Add(t.pos[d>>1])
			} else if d < 0 {
				s = s.Add(t.neg[(-d)>>1])
			}
		}
		if s.IsInfinity() {
			zeroes++
			continue
		}
		r = r.TimesPow2(zeroes).TwicePlus(s)
		zeroes = 0
	}
	return checkResult(r.TimesPow2(zeroes)), nil
}
