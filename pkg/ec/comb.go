package ec

import (
	"math/big"

	"go.uber.org/zap"
)

// combTable is the precomputation for one base point. It is never modified
// after construction.
type combTable struct {
	width   int
	spacing int
	lookup  []*Point
	offset  *Point
}

// FixedPointCombMultiplier multiplies long-lived base points with a comb of
// 2^width precomputed entries. The table is built on the first
// multiplication of a base and is owned by that point, so it is released
// together with it. The multiplier itself holds no state.
type FixedPointCombMultiplier struct{}

func NewFixedPointCombMultiplier() *FixedPointCombMultiplier {
	return &FixedPointCombMultiplier{}
}

// combSize is the number of scalar bits the comb covers.
func combSize(c *Curve) int {
	return c.order.BitLen()
}

// combWidth is the comb width for a given comb size.
func combWidth(size int) int {
	if size > 250 {
		return 6
	}
	return 5
}

// Precompute builds the comb table of p if it has none yet.
func (m *FixedPointCombMultiplier) Precompute(p *Point) {
	if !p.IsInfinity() {
		p.combTable()
	}
}

// combTable returns the table of p, building it on first use.
func (p *Point) combTable() *combTable {
	p.combOnce.Do(func() {
		p.comb = newCombTable(p)
		p.curve.logger.Debug("precomputed comb table",
			zap.Int("width", p.comb.width),
			zap.Int("spacing", p.comb.spacing),
			zap.Int("entries", len(p.comb.lookup)))
	})
	return p.comb
}

func newCombTable(p *Point) *combTable {
	size := combSize(p.curve)
	width := combWidth(size)
	d := (size + width - 1) / width

	// pow2[i] = 2^(d*i) * p
	pow2 := make([]*Point, width)
	pow2[0] = p
	for i := 1; i < width; i++ {
		pow2[i] = pow2[i-1].TimesPow2(d)
	}

	n := 1 << width
	lookup := make([]*Point, n)
	lookup[0] = pow2[0]
	for bit := width - 1; bit >= 0; bit-- {
		step := 1 << bit
		for i := step; i < n; i += step << 1 {
			lookup[i] = lookup[i-step].Add(pow2[bit])
		}
	}
	p.curve.NormalizeAll(lookup)

	return &combTable{
		width:   width,
		spacing: d,
		lookup:  lookup,
		offset:  pow2[0].Subtract(pow2[1]).Normalize(),
	}
}

// Multiply returns k*p. Scalars longer than the comb are handed to the
// wNAF multiplier.
func (m *FixedPointCombMultiplier) Multiply(p *Point, k *big.Int) *Point {
	return multiply(p, k, func(p *Point, k *big.Int) *Point {
		if k.BitLen() > combSize(p.curve) {
			return wnafMultiply(p, k)
		}
		return p.combTable().multiply(p.curve, k)
	})
}

// multiply evaluates the comb. Every lookup entry carries an extra copy of
// the base, so the column sum is corrected by the offset at the end.
func (t *combTable) multiply(c *Curve, k *big.Int) *Point {
	full := t.width * t.spacing
	top := full - 1

	r := c.infinity
	for i := 0; i < t.spacing; i++ {
		idx := 0
		for j := top - i; j >= 0; j -= t.spacing {
			idx = idx<<1 | int(k.Bit(j))
		}
		r = r.TwicePlus(t.lookup[idx])
	}
	return r.Add(t.offset)
}
