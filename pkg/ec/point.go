package ec

import (
	"fmt"
	"math/big"
	"sync"
)

// Point is an immutable point on a Curve. The meaning of its coordinates
// depends on the curve's coordinate system; the point at infinity has none.
type Point struct {
	curve *Curve
	x, y  FieldElement
	zs    []FieldElement

	// comb is the fixed-base table, built once when p is used as a comb base.
	combOnce sync.Once
	comb     *combTable
}

// Curve returns the curve the point belongs to.
func (p *Point) Curve() *Curve {
	return p.curve
}

func (p *Point) IsInfinity() bool {
	return p.x == nil
}

// XCoord returns the raw x-coordinate, nil for infinity.
func (p *Point) XCoord() FieldElement {
	return p.x
}

// YCoord returns the raw y-coordinate, which holds the lambda value in the
// lambda coordinate systems. It is nil for infinity.
func (p *Point) YCoord() FieldElement {
	return p.y
}

// ZCoord returns the i-th Z-coordinate, or nil when the point has none.
func (p *Point) ZCoord(i int) FieldElement {
	if i < 0 || i >= len(p.zs) {
		return nil
	}
	return p.zs[i]
}

// IsNormalized reports whether the raw coordinates are the affine ones.
func (p *Point) IsNormalized() bool {
	return p.IsInfinity() || len(p.zs) == 0 || p.zs[0].IsOne()
}

// Normalize returns the equivalent point with Z = 1.
func (p *Point) Normalize() *Point {
	if p.IsNormalized() {
		return p
	}
	return p.curve.ops.normalize(p, p.zs[0].Invert())
}

// AffineX returns the affine x-coordinate, nil for infinity.
func (p *Point) AffineX() FieldElement {
	if p.IsInfinity() {
		return nil
	}
	return p.Normalize().x
}

// AffineY returns the affine y-coordinate, nil for infinity.
func (p *Point) AffineY() FieldElement {
	if p.IsInfinity() {
		return nil
	}
	q := p.Normalize()
	if !p.curve.coord.isLambda() || q.x.IsZero() {
		return q.y
	}
	// y = (lambda + x) * x
	return q.y.Add(q.x).Multiply(q.x)
}

func (p *Point) checkCurve(q *Point) {
	if p.curve != q.curve && !p.curve.Equal(q.curve) {
		panic("ec: points belong to different curves")
	}
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	p.checkCurve(q)
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if p.curve != q.curve {
		q = p.curve.ops.fromAffine(p.curve, q.AffineX(), q.AffineY())
	}
	return p.curve.ops.add(p, q)
}

// Subtract returns p - q.
func (p *Point) Subtract(q *Point) *Point {
	p.checkCurve(q)
	if q.IsInfinity() {
		return p
	}
	return p.Add(q.Negate())
}

// Twice returns 2p.
func (p *Point) Twice() *Point {
	if p.IsInfinity() {
		return p
	}
	return p.curve.ops.twice(p)
}

// TwicePlus returns 2p + q.
func (p *Point) TwicePlus(q *Point) *Point {
	p.checkCurve(q)
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p.Twice()
	}
	if o, ok := p.curve.ops.(twicePlusOps); ok && p.curve == q.curve {
		return o.twicePlus(p, q)
	}
	return p.Twice().Add(q)
}

// ThreeTimes returns 3p.
func (p *Point) ThreeTimes() *Point {
	if p.IsInfinity() {
		return p
	}
	if o, ok := p.curve.ops.(threeTimesOps); ok {
		return o.threeTimes(p)
	}
	return p.TwicePlus(p)
}

// TimesPow2 returns 2^e * p. e must not be negative.
func (p *Point) TimesPow2(e int) *Point {
	if e < 0 {
		panic("ec: negative exponent")
	}
	r := p
	for ; e > 0 && !r.IsInfinity(); e-- {
		r = r.Twice()
	}
	return r
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	if p.IsInfinity() {
		return p
	}
	return p.curve.ops.negate(p)
}

// Multiply returns k*p using the curve's multiplier.
func (p *Point) Multiply(k *big.Int) *Point {
	return p.curve.mult.Multiply(p, k)
}

// Equal reports whether p and q are the same point of the same curve,
// whatever coordinate systems produced them.
func (p *Point) Equal(q *Point) bool {
	if p == q {
		return true
	}
	if q == nil || !p.curve.Equal(q.curve) {
		return false
	}
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.AffineX().Equal(q.AffineX()) && p.AffineY().Equal(q.AffineY())
}

func (p *Point) String() string {
	if p.IsInfinity() {
		return "INF"
	}
	s := fmt.Sprintf("(%s,%s", p.x, p.y)
	for _, z := range p.zs {
		s += "," + z.String()
	}
	return s + ")"
}

// satisfiesCurveEquation checks the affine curve equation.
func (p *Point) satisfiesCurveEquation() bool {
	if p.IsInfinity() {
		return true
	}
	c := p.curve
	x, y := p.AffineX(), p.AffineY()
	if c.binary {
		// y^2 + xy = x^3 + ax^2 + b
		x2 := x.Square()
		lhs := y.Square().Add(x.Multiply(y))
		rhs := x2.Multiply(x).Add(c.a.Multiply(x2)).Add(c.b)
		return lhs.Equal(rhs)
	}
	// y^2 = x^3 + ax + b
	rhs := x.Square().Add(c.a).Multiply(x).Add(c.b)
	return y.Square().Equal(rhs)
}
