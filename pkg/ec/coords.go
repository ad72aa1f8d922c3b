package ec

import "fmt"

// CoordinateSystem selects how a curve represents its points.
type CoordinateSystem int

const (
	// CoordAffine stores (x, y).
	CoordAffine CoordinateSystem = iota
	// CoordHomogeneous stores (X, Y, Z) for the affine point (X/Z, Y/Z).
	CoordHomogeneous
	// CoordJacobian stores (X, Y, Z) for the affine point (X/Z^2, Y/Z^3).
	CoordJacobian
	// CoordJacobianChudnovsky is Jacobian with Z^2 and Z^3 cached.
	CoordJacobianChudnovsky
	// CoordJacobianModified is Jacobian with W = a*Z^4 cached.
	CoordJacobianModified
	// CoordLambdaAffine stores (x, x + y/x) on binary curves.
	CoordLambdaAffine
	// CoordLambdaProjective stores (X, L, Z) for the lambda-affine point
	// (X/Z, L/Z) on binary curves.
	CoordLambdaProjective
	// CoordSkewed is recognized but not supported by any curve.
	CoordSkewed
)

var coordNames = map[CoordinateSystem]string{
	CoordAffine:             "affine",
	CoordHomogeneous:        "homogeneous",
	CoordJacobian:           "jacobian",
	CoordJacobianChudnovsky: "jacobian-chudnovsky",
	CoordJacobianModified:   "jacobian-modified",
	CoordLambdaAffine:       "lambda-affine",
	CoordLambdaProjective:   "lambda-projective",
	CoordSkewed:             "skewed",
}

func (c CoordinateSystem) String() string {
	if name, ok := coordNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CoordinateSystem(%d)", int(c))
}

// zCount returns the number of Z-coordinates a point carries.
func (c CoordinateSystem) zCount() int {
	switch c {
	case CoordHomogeneous, CoordJacobian, CoordLambdaProjective:
		return 1
	case CoordJacobianChudnovsky:
		return 3
	case CoordJacobianModified:
		return 2
	}
	return 0
}

// isLambda reports whether the y slot holds the lambda value.
func (c CoordinateSystem) isLambda() bool {
	return c == CoordLambdaAffine || c == CoordLambdaProjective
}

var (
	fpCoordinateSystems = []CoordinateSystem{
		CoordAffine, CoordHomogeneous, CoordJacobian, CoordJacobianChudnovsky, CoordJacobianModified,
	}
	f2mCoordinateSystems = []CoordinateSystem{
		CoordAffine, CoordHomogeneous, CoordLambdaAffine, CoordLambdaProjective,
	}
)
