package ec

type f2mAffineOps struct{}

func (f2mAffineOps) fromAffine(c *Curve, x, y FieldElement) *Point {
	return c.newPoint(x, y)
}

func (f2mAffineOps) normalize(p *Point, _ FieldElement) *Point {
	return p
}

func (o f2mAffineOps) add(p, q *Point) *Point {
	dx, dy := p.x.Add(q.x), p.y.Add(q.y)
	if dx.IsZero() {
		if dy.IsZero() {
			return o.twice(p)
		}
		return p.curve.infinity
	}
	l := dy.Divide(dx)
	x3 := l.Square().Add(l).Add(dx).Add(p.curve.a)
	y3 := l.Multiply(p.x.Add(x3)).Add(x3).Add(p.y)
	return p.curve.newPoint(x3, y3)
}

func (f2mAffineOps) twice(p *Point) *Point {
	if p.x.IsZero() {
		return p.curve.infinity
	}
	l := p.y.Divide(p.x).Add(p.x)
	x3 := l.Square().Add(l).Add(p.curve.a)
	y3 := p.x.Square().Add(x3.Multiply(l.AddOne()))
	return p.curve.newPoint(x3, y3)
}

func (f2mAffineOps) negate(p *Point) *Point {
	return p.curve.newPoint(p.x, p.y.Add(p.x))
}

type f2mHomogeneousOps struct{}

func (f2mHomogeneousOps) fromAffine(c *Curve, x, y FieldElement) *Point {
	return c.newPoint(x, y, c.f.one())
}

func (f2mHomogeneousOps) normalize(p *Point, zInv FieldElement) *Point {
	return p.curve.newPoint(p.x.Multiply(zInv), p.y.Multiply(zInv), p.curve.f.one())
}

func (o f2mHomogeneousOps) add(p, q *Point) *Point {
	a := p.curve.a
	x1, y1, z1 := p.x, p.y, p.zs[0]
	x2, y2, z2 := q.x, q.y, q.zs[0]

	u := z1.Multiply(y2).Add(y1.Multiply(z2))
	v := z1.Multiply(x2).Add(x1.Multiply(z2))
	if v.IsZero() {
		if u.IsZero() {
			return o.twice(p)
		}
		return p.curve.infinity
	}

	vSq := v.Square()
	w := z1.Multiply(z2)
	uv := u.Add(v)
	cc := uv.Multiply(u).Add(vSq.Multiply(a)).Multiply(w).Add(v.Multiply(vSq))

	x3 := v.Multiply(cc)
	y3 := u.Multiply(x1).Add(v.Multiply(y1)).Multiply(vSq.Multiply(z2)).Add(uv.Multiply(cc))
	z3 := vSq.Multiply(v).Multiply(w)
	return p.curve.newPoint(x3, y3, z3)
}

func (f2mHomogeneousOps) twice(p *Point) *Point {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	if x1.IsZero() {
		return p.curve.infinity
	}

	x1z1 := x1.Multiply(z1)
	x1Sq := x1.Square()
	s := x1Sq.Add(y1.Multiply(z1))
	vSq := x1z1.Square()
	sv := s.Add(x1z1)
	h := sv.Multiply(s).Add(p.curve.a.Multiply(vSq))

	x3 := x1z1.Multiply(h)
	y3 := x1Sq.Square().Multiply(x1z1).Add(h.Multiply(sv))
	z3 := x1z1.Multiply(vSq)
	return p.curve.newPoint(x3, y3, z3)
}

func (f2mHomogeneousOps) negate(p *Point) *Point {
	return p.curve.newPoint(p.x, p.y.Add(p.x), p.zs...)
}

// lambdaPoint is a lambda-projective triple (X, L, Z) for the affine point
// x = X/Z, lambda = L/Z = x + y/x. The order-two point with x = 0 is stored
// as (0, y, 1). A nil x is infinity.
type lambdaPoint struct {
	x, l, z FieldElement
}

func (c *Curve) orderTwoPoint() lambdaPoint {
	return lambdaPoint{c.f.zero(), c.sqrtB, c.f.one()}
}

func lambdaFromAffine(x, y FieldElement) (FieldElement, FieldElement) {
	if x.IsZero() {
		return x, y
	}
	return x, y.Divide(x).Add(x)
}

func lambdaAdd(c *Curve, p, q lambdaPoint) lambdaPoint {
	if p.x.IsZero() {
		if q.x.IsZero() {
			return lambdaPoint{}
		}
		return lambdaAdd(c, q, p)
	}

	if q.x.IsZero() {
		// Adding the order-two point: fall back to affine formulas.
		zInv := p.z.Invert()
		x1 := p.x.Multiply(zInv)
		y1 := p.l.Multiply(zInv).Add(x1).Multiply(x1)
		l := y1.Add(q.l).Divide(x1)
		x3 := l.Square().Add(l).Add(x1).Add(c.a)
		if x3.IsZero() {
			return c.orderTwoPoint()
		}
		y3 := l.Multiply(x1.Add(x3)).Add(x3).Add(y1)
		return lambdaPoint{x3, y3.Divide(x3).Add(x3), c.f.one()}
	}

	u2, s2 := q.x.Multiply(p.z), q.l.Multiply(p.z)
	u1, s1 := p.x.Multiply(q.z), p.l.Multiply(q.z)
	a := s1.Add(s2)
	b := u1.Add(u2)
	if b.IsZero() {
		if a.IsZero() {
			return lambdaTwice(c, p)
		}
		return lambdaPoint{}
	}

	b = b.Square()
	au1, au2 := a.Multiply(u1), a.Multiply(u2)
	x3 := au1.Multiply(au2)
	if x3.IsZero() {
		return c.orderTwoPoint()
	}
	abz2 := a.Multiply(b).Multiply(q.z)
	l3 := au2.Add(b).Square().Add(abz2.Multiply(p.l.Add(p.z)))
	z3 := abz2.Multiply(p.z)
	return lambdaPoint{x3, l3, z3}
}

func lambdaTwice(c *Curve, p lambdaPoint) lambdaPoint {
	if p.x.IsZero() {
		return lambdaPoint{}
	}
	l1z1 := p.l.Multiply(p.z)
	z1Sq := p.z.Square()
	t := p.l.Square().Add(l1z1).Add(c.a.Multiply(z1Sq))
	if t.IsZero() {
		return c.orderTwoPoint()
	}
	x3 := t.Square()
	z3 := t.Multiply(z1Sq)
	l3 := p.x.Multiply(p.z).Square().Add(t.Multiply(l1z1)).Add(x3).Add(z3)
	return lambdaPoint{x3, l3, z3}
}

type f2mLambdaProjectiveOps struct{}

func (f2mLambdaProjectiveOps) fromAffine(c *Curve, x, y FieldElement) *Point {
	x, l := lambdaFromAffine(x, y)
	return c.newPoint(x, l, c.f.one())
}

func (f2mLambdaProjectiveOps) normalize(p *Point, zInv FieldElement) *Point {
	if p.x.IsZero() {
		return p
	}
	return p.curve.newPoint(p.x.Multiply(zInv), p.y.Multiply(zInv), p.curve.f.one())
}

func (f2mLambdaProjectiveOps) wrap(c *Curve, r lambdaPoint) *Point {
	if r.x == nil {
		return c.infinity
	}
	return c.newPoint(r.x, r.l, r.z)
}

func (o f2mLambdaProjectiveOps) add(p, q *Point) *Point {
	r := lambdaAdd(p.curve, lambdaPoint{p.x, p.y, p.zs[0]}, lambdaPoint{q.x, q.y, q.zs[0]})
	return o.wrap(p.curve, r)
}

func (o f2mLambdaProjectiveOps) twice(p *Point) *Point {
	return o.wrap(p.curve, lambdaTwice(p.curve, lambdaPoint{p.x, p.y, p.zs[0]}))
}

func (f2mLambdaProjectiveOps) negate(p *Point) *Point {
	if p.x.IsZero() {
		return p
	}
	return p.curve.newPoint(p.x, p.y.Add(p.zs[0]), p.zs[0])
}

// f2mLambdaAffineOps runs the lambda-projective formulas with Z = 1 and
// normalizes every result.
type f2mLambdaAffineOps struct{}

func (f2mLambdaAffineOps) fromAffine(c *Curve, x, y FieldElement) *Point {
	x, l := lambdaFromAffine(x, y)
	return c.newPoint(x, l)
}

func (f2mLambdaAffineOps) normalize(p *Point, _ FieldElement) *Point {
	return p
}

func (f2mLambdaAffineOps) lift(p *Point) lambdaPoint {
	return lambdaPoint{p.x, p.y, p.curve.f.one()}
}

func (f2mLambdaAffineOps) wrap(c *Curve, r lambdaPoint) *Point {
	if r.x == nil {
		return c.infinity
	}
	if r.x.IsZero() || r.z.IsOne() {
		return c.newPoint(r.x, r.l)
	}
	zInv := r.z.Invert()
	return c.newPoint(r.x.Multiply(zInv), r.l.Multiply(zInv))
}

func (o f2mLambdaAffineOps) add(p, q *Point) *Point {
	return o.wrap(p.curve, lambdaAdd(p.curve, o.lift(p), o.lift(q)))
}

func (o f2mLambdaAffineOps) twice(p *Point) *Point {
	return o.wrap(p.curve, lambdaTwice(p.curve, o.lift(p)))
}

func (f2mLambdaAffineOps) negate(p *Point) *Point {
	if p.x.IsZero() {
		return p
	}
	return p.curve.newPoint(p.x, p.y.AddOne())
}
