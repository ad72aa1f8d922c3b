package ec

type fpAffineOps struct{}

func (fpAffineOps) fromAffine(c *Curve, x, y FieldElement) *Point {
	return c.newPoint(x, y)
}

func (fpAffineOps) normalize(p *Point, _ FieldElement) *Point {
	return p
}

func (o fpAffineOps) add(p, q *Point) *Point {
	dx, dy := q.x.Subtract(p.x), q.y.Subtract(p.y)
	if dx.IsZero() {
		if dy.IsZero() {
			return o.twice(p)
		}
		return p.curve.infinity
	}
	g := dy.Divide(dx)
	x3 := g.Square().Subtract(p.x).Subtract(q.x)
	y3 := g.Multiply(p.x.Subtract(x3)).Subtract(p.y)
	return p.curve.newPoint(x3, y3)
}

func (fpAffineOps) twice(p *Point) *Point {
	if p.y.IsZero() {
		return p.curve.infinity
	}
	g := three(p.x.Square()).Add(p.curve.a).Divide(two(p.y))
	x3 := g.Square().Subtract(two(p.x))
	y3 := g.Multiply(p.x.Subtract(x3)).Subtract(p.y)
	return p.curve.newPoint(x3, y3)
}

// twicePlus computes 2p + q with a single inversion.
func (o fpAffineOps) twicePlus(p, q *Point) *Point {
	if p.y.IsZero() {
		return q
	}
	dx, dy := q.x.Subtract(p.x), q.y.Subtract(p.y)
	if dx.IsZero() {
		if dy.IsZero() {
			return o.threeTimes(p)
		}
		// q = -p
		return p
	}

	x, y := dx.Square(), dy.Square()
	d := x.Multiply(two(p.x).Add(q.x)).Subtract(y)
	if d.IsZero() {
		return p.curve.infinity
	}
	i := d.Multiply(dx).Invert()
	l1 := d.Multiply(i).Multiply(dy)
	l2 := two(p.y).Multiply(x).Multiply(dx).Multiply(i).Subtract(l1)
	x4 := l2.Subtract(l1).Multiply(l1.Add(l2)).Add(q.x)
	y4 := p.x.Subtract(x4).Multiply(l2).Subtract(p.y)
	return p.curve.newPoint(x4, y4)
}

func (fpAffineOps) threeTimes(p *Point) *Point {
	if p.y.IsZero() {
		return p
	}
	t := two(p.y)
	x := t.Square()
	z := three(p.x.Square()).Add(p.curve.a)
	y := z.Square()
	d := three(p.x).Multiply(x).Subtract(y)
	if d.IsZero() {
		return p.curve.infinity
	}
	i := d.Multiply(t).Invert()
	l1 := d.Multiply(i).Multiply(z)
	l2 := x.Square().Multiply(i).Subtract(l1)
	x4 := l2.Subtract(l1).Multiply(l1.Add(l2)).Add(p.x)
	y4 := p.x.Subtract(x4).Multiply(l2).Subtract(p.y)
	return p.curve.newPoint(x4, y4)
}

func (fpAffineOps) negate(p *Point) *Point {
	return p.curve.newPoint(p.x, p.y.Negate())
}

type fpHomogeneousOps struct{}

func (fpHomogeneousOps) fromAffine(c *Curve, x, y FieldElement) *Point {
	return c.newPoint(x, y, c.f.one())
}

func (fpHomogeneousOps) normalize(p *Point, zInv FieldElement) *Point {
	return p.curve.newPoint(p.x.Multiply(zInv), p.y.Multiply(zInv), p.curve.f.one())
}

func (o fpHomogeneousOps) add(p, q *Point) *Point {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	x2, y2, z2 := q.x, q.y, q.zs[0]

	u := y2.Multiply(z1).Subtract(y1.Multiply(z2))
	v2 := x1.Multiply(z2)
	v := x2.Multiply(z1).Subtract(v2)
	if v.IsZero() {
		if u.IsZero() {
			return o.twice(p)
		}
		return p.curve.infinity
	}

	u2 := y1.Multiply(z2)
	w := z1.Multiply(z2)
	vs := v.Square()
	vc := vs.Multiply(v)
	vsv2 := vs.Multiply(v2)
	a := u.Square().Multiply(w).Subtract(vc).Subtract(two(vsv2))

	x3 := v.Multiply(a)
	y3 := vsv2.Subtract(a).Multiply(u).Subtract(vc.Multiply(u2))
	z3 := vc.Multiply(w)
	return p.curve.newPoint(x3, y3, z3)
}

func (fpHomogeneousOps) twice(p *Point) *Point {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	if y1.IsZero() {
		return p.curve.infinity
	}

	w := three(x1.Square())
	if !p.curve.a.IsZero() {
		w = w.Add(p.curve.a.Multiply(z1.Square()))
	}
	s := y1.Multiply(z1)
	t := s.Multiply(y1)
	b := x1.Multiply(t)
	h := w.Square().Subtract(eight(b))

	x3 := two(h.Multiply(s))
	y3 := four(b).Subtract(h).Multiply(w).Subtract(eight(t.Square()))
	z3 := eight(s.Square().Multiply(s))
	return p.curve.newPoint(x3, y3, z3)
}

func (fpHomogeneousOps) negate(p *Point) *Point {
	return p.curve.newPoint(p.x, p.y.Negate(), p.zs...)
}

// fpJacobianOps covers plain Jacobian coordinates and the Chudnovsky and
// modified variants, which differ only in the cached values after Z.
type fpJacobianOps struct {
	kind CoordinateSystem
}

// point builds a result from (X, Y, Z), deriving the cached coordinates.
func (o fpJacobianOps) point(c *Curve, x, y, z FieldElement) *Point {
	switch o.kind {
	case CoordJacobianChudnovsky:
		z2 := z.Square()
		return c.newPoint(x, y, z, z2, z2.Multiply(z))
	case CoordJacobianModified:
		return c.newPoint(x, y, z, o.modifiedW(c, z))
	}
	return c.newPoint(x, y, z)
}

// modifiedW returns a*Z^4.
func (fpJacobianOps) modifiedW(c *Curve, z FieldElement) FieldElement {
	if c.a.IsZero() || z.IsOne() {
		return c.a
	}
	return c.a.Multiply(z.Square().Square())
}

// zPowers returns Z^2 and Z^3 for p, from the cache when there is one.
func (o fpJacobianOps) zPowers(p *Point) (z2, z3 FieldElement) {
	if o.kind == CoordJacobianChudnovsky {
		return p.zs[1], p.zs[2]
	}
	z2 = p.zs[0].Square()
	return z2, z2.Multiply(p.zs[0])
}

func (o fpJacobianOps) fromAffine(c *Curve, x, y FieldElement) *Point {
	return o.point(c, x, y, c.f.one())
}

func (o fpJacobianOps) normalize(p *Point, zInv FieldElement) *Point {
	zInv2 := zInv.Square()
	zInv3 := zInv2.Multiply(zInv)
	return o.point(p.curve, p.x.Multiply(zInv2), p.y.Multiply(zInv3), p.curve.f.one())
}

func (o fpJacobianOps) add(p, q *Point) *Point {
	c := p.curve
	x1, y1, z1 := p.x, p.y, p.zs[0]
	x2, y2, z2 := q.x, q.y, q.zs[0]

	if z1.Equal(z2) {
		// Shared Z: work directly on the projective values.
		dx, dy := x1.Subtract(x2), y1.Subtract(y2)
		if dx.IsZero() {
			if dy.IsZero() {
				return o.twice(p)
			}
			return c.infinity
		}
		cc := dx.Square()
		w1, w2 := x1.Multiply(cc), x2.Multiply(cc)
		a1 := w1.Subtract(w2).Multiply(y1)

		x3 := dy.Square().Subtract(w1).Subtract(w2)
		y3 := w1.Subtract(x3).Multiply(dy).Subtract(a1)
		z3 := dx
		if !z1.IsOne() {
			z3 = z3.Multiply(z1)
		}
		return o.point(c, x3, y3, z3)
	}

	u2, s2 := x2, y2
	if !z1.IsOne() {
		z1s, z1c := o.zPowers(p)
		u2, s2 = x2.Multiply(z1s), y2.Multiply(z1c)
	}
	u1, s1 := x1, y1
	if !z2.IsOne() {
		z2s, z2c := o.zPowers(q)
		u1, s1 = x1.Multiply(z2s), y1.Multiply(z2c)
	}

	h := u1.Subtract(u2)
	r := s1.Subtract(s2)
	if h.IsZero() {
		if r.IsZero() {
			return o.twice(p)
		}
		return c.infinity
	}

	hs := h.Square()
	g := hs.Multiply(h)
	v := hs.Multiply(u1)

	x3 := r.Square().Add(g).Subtract(two(v))
	y3 := v.Subtract(x3).Multiply(r).Subtract(g.Multiply(s1))
	z3 := h
	if !z1.IsOne() {
		z3 = z3.Multiply(z1)
	}
	if !z2.IsOne() {
		z3 = z3.Multiply(z2)
	}
	return o.point(c, x3, y3, z3)
}

func (o fpJacobianOps) twice(p *Point) *Point {
	c := p.curve
	x1, y1, z1 := p.x, p.y, p.zs[0]
	if y1.IsZero() {
		return c.infinity
	}

	if o.kind == CoordJacobianModified {
		w1 := p.zs[1]
		m := three(x1.Square()).Add(w1)
		t2 := two(y1)
		t2s := t2.Multiply(y1)
		s := two(x1.Multiply(t2s))
		x3 := m.Square().Subtract(two(s))
		t8 := two(t2s.Square())
		y3 := m.Multiply(s.Subtract(x3)).Subtract(t8)
		z3 := t2
		if !z1.IsOne() {
			z3 = z3.Multiply(z1)
		}
		w3 := c.a
		if !w1.IsZero() {
			w3 = two(t8).Multiply(w1)
		}
		return c.newPoint(x3, y3, z3, w3)
	}

	y1s := y1.Square()
	t := y1s.Square()
	m := three(x1.Square())
	if !c.a.IsZero() {
		if z1.IsOne() {
			m = m.Add(c.a)
		} else {
			z1s, _ := o.zPowers(p)
			m = m.Add(c.a.Multiply(z1s.Square()))
		}
	}
	s := four(x1.Multiply(y1s))
	x3 := m.Square().Subtract(two(s))
	y3 := s.Subtract(x3).Multiply(m).Subtract(eight(t))
	z3 := two(y1)
	if !z1.IsOne() {
		z3 = z3.Multiply(z1)
	}
	return o.point(c, x3, y3, z3)
}

func (o fpJacobianOps) negate(p *Point) *Point {
	return p.curve.newPoint(p.x, p.y.Negate(), p.zs...)
}
