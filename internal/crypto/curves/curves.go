package curves

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecmath/pkg/ec"
)

// Backend is a scalar-multiplication engine over affine big.Int
// coordinates. The point at infinity is reported as nil coordinates.
type Backend interface {
	// Name returns the curve name.
	Name() string

	// Order returns the order of the generator.
	Order() *big.Int

	// NewScalar generates a random scalar in [1, n).
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G.
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P.
	ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points.
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

// Native adapts a named curve of the native engine to Backend.
type Native struct {
	nc *NamedCurve
}

// NewNative returns the native backend for nc.
func NewNative(nc *NamedCurve) *Native {
	return &Native{nc: nc}
}

func (c *Native) Name() string    { return c.nc.Name }
func (c *Native) Order() *big.Int { return c.nc.Order() }

func (c *Native) NewScalar() (*big.Int, error) {
	return randScalar(c.nc.Order())
}

func (c *Native) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return affine(c.nc.G.Multiply(k))
}

func (c *Native) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int) {
	p, err := c.point(px, py)
	if err != nil {
		panic(err)
	}
	return affine(p.Multiply(k))
}

func (c *Native) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p, err := c.point(x1, y1)
	if err != nil {
		panic(err)
	}
	q, err := c.point(x2, y2)
	if err != nil {
		panic(err)
	}
	return affine(p.Add(q))
}

// Point validates (x, y) as a point of the curve's base subgroup.
func (c *Native) Point(x, y *big.Int) (*ec.Point, error) {
	return c.point(x, y)
}

func (c *Native) point(x, y *big.Int) (*ec.Point, error) {
	if x == nil && y == nil {
		return c.nc.Curve.Infinity(), nil
	}
	p, err := c.nc.Curve.ValidatePoint(x, y)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid point on %s", c.nc.Name)
	}
	return p, nil
}

func affine(p *ec.Point) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return nil, nil
	}
	return p.AffineX().ToBig(), p.AffineY().ToBig()
}

// randScalar returns a uniformly random integer in [1, n).
func randScalar(n *big.Int) (*big.Int, error) {
	max := new(big.Int).Sub(n, big.NewInt(1))
	k, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, errors.Wrap(err, "failed generating scalar")
	}
	return k.Add(k, big.NewInt(1)), nil
}
