package ec

import "math/big"

// IsValid reports whether p is on its curve and, when the cofactor exceeds
// one, in the base subgroup.
func (p *Point) IsValid() bool {
	return p.validate() == nil
}

func (p *Point) validate() error {
	if p.IsInfinity() {
		return nil
	}
	if !p.satisfiesCurveEquation() {
		return makeError(ErrPointNotOnCurve, "point is not on the curve")
	}
	if !p.satisfiesOrder() {
		return makeError(ErrPointNotInSubgroup, "point is not in the base subgroup")
	}
	return nil
}

func (p *Point) satisfiesOrder() bool {
	c := p.curve
	if c.cofactor.Cmp(big.NewInt(1)) == 0 {
		return true
	}
	if c.binary {
		switch c.cofactor.Int64() {
		case 2:
			return p.binaryHalvable()
		case 4:
			return p.binaryQuarterable()
		}
	}
	return referenceMultiply(p, c.order).IsInfinity()
}

// binaryHalvable reports whether p = 2Q for some Q, which for h = 2 is
// exactly subgroup membership: Tr(x + a) = 0.
func (p *Point) binaryHalvable() bool {
	x := p.AffineX()
	return x.Add(p.curve.a).(*F2mElement).Trace() == 0
}

// binaryQuarterable reports whether p = 4Q for some Q. A half of p exists
// when x + a = L^2 + L is solvable; that half can be halved again when the
// trace of T = xL + y, or of T + x, vanishes.
func (p *Point) binaryQuarterable() bool {
	x, y := p.AffineX(), p.AffineY()
	l := x.Add(p.curve.a).(*F2mElement).SolveQuadratic()
	if l == nil {
		return false
	}
	t := x.Multiply(l).Add(y).(*F2mElement)
	return t.Trace() == 0 || t.Add(x).(*F2mElement).Trace() == 0
}

// checkResult panics when a multiplication produced a point off the curve.
func checkResult(p *Point) *Point {
	if !p.satisfiesCurveEquation() {
		panic("ec: multiplication result is not on the curve")
	}
	return p
}
