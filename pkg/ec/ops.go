package ec

// pointOps holds the formulas of one coordinate system over one field kind.
// Callers handle infinity operands before dispatching, so every method
// receives finite points of the same curve.
type pointOps interface {
	// fromAffine projects the affine point (x, y) into the coordinate system.
	fromAffine(c *Curve, x, y FieldElement) *Point
	// normalize scales p to Z = 1 given zInv = 1/Z.
	normalize(p *Point, zInv FieldElement) *Point
	add(p, q *Point) *Point
	twice(p *Point) *Point
	negate(p *Point) *Point
}

// twicePlusOps is implemented by systems with a combined 2p + q formula.
type twicePlusOps interface {
	twicePlus(p, q *Point) *Point
}

// threeTimesOps is implemented by systems with a dedicated tripling formula.
type threeTimesOps interface {
	threeTimes(p *Point) *Point
}

// opsFor returns the formulas for cs, or nil when the field kind does not
// support it.
func opsFor(binary bool, cs CoordinateSystem) pointOps {
	if binary {
		switch cs {
		case CoordAffine:
			return f2mAffineOps{}
		case CoordHomogeneous:
			return f2mHomogeneousOps{}
		case CoordLambdaAffine:
			return f2mLambdaAffineOps{}
		case CoordLambdaProjective:
			return f2mLambdaProjectiveOps{}
		}
		return nil
	}
	switch cs {
	case CoordAffine:
		return fpAffineOps{}
	case CoordHomogeneous:
		return fpHomogeneousOps{}
	case CoordJacobian, CoordJacobianChudnovsky, CoordJacobianModified:
		return fpJacobianOps{kind: cs}
	}
	return nil
}

func two(x FieldElement) FieldElement {
	return x.Add(x)
}

func three(x FieldElement) FieldElement {
	return x.Add(x).Add(x)
}

func four(x FieldElement) FieldElement {
	return two(two(x))
}

func eight(x FieldElement) FieldElement {
	return four(two(x))
}
