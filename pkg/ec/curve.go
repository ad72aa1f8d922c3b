package ec

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// Curve is a short Weierstrass curve over a prime field, y^2 = x^3 + ax + b,
// or over a binary field, y^2 + xy = x^3 + ax^2 + b, together with the order
// n of its base subgroup, the cofactor h and the coordinate system used for
// its points. A Curve is immutable and safe for concurrent use.
type Curve struct {
	f        field
	binary   bool
	a, b     FieldElement
	order    *big.Int
	cofactor *big.Int

	coord    CoordinateSystem
	ops      pointOps
	mult     Multiplier
	logger   *zap.Logger
	infinity *Point

	// sqrtB is the y-coordinate of the order-two point (0, sqrt(b)) of a
	// binary curve.
	sqrtB FieldElement
}

// NewFpCurve returns the curve y^2 = x^3 + ax + b over the prime field of
// order p, with a subgroup of order n and cofactor h. Points use Jacobian
// modified coordinates and the wNAF multiplier until reconfigured.
func NewFpCurve(p, a, b, n, h *big.Int) (*Curve, error) {
	f, err := NewFpField(p)
	if err != nil {
		return nil, err
	}
	c, err := newCurve(f, a, b, n, h)
	if err != nil {
		return nil, err
	}

	// 4a^3 + 27b^2 != 0
	four, twentySeven := f.small(4), f.small(27)
	disc := four.Multiply(c.a.Square().Multiply(c.a)).Add(twentySeven.Multiply(c.b.Square()))
	if disc.IsZero() {
		return nil, makeError(ErrInvalidCurve, "curve is singular")
	}
	return c.withCoordinateSystem(CoordJacobianModified), nil
}

// NewF2mCurve returns the curve y^2 + xy = x^3 + ax^2 + b over F(2^m) with
// the reduction exponents ks, a subgroup of order n and cofactor h. Points
// use lambda-projective coordinates and the wNAF multiplier until
// reconfigured.
func NewF2mCurve(m int, ks []int, a, b, n, h *big.Int) (*Curve, error) {
	f, err := NewF2mField(m, ks)
	if err != nil {
		return nil, err
	}
	c, err := newCurve(f, a, b, n, h)
	if err != nil {
		return nil, err
	}
	if c.b.IsZero() {
		return nil, makeError(ErrInvalidCurve, "curve is singular")
	}
	c.binary = true
	c.sqrtB = c.b.Sqrt()
	return c.withCoordinateSystem(CoordLambdaProjective), nil
}

func newCurve(f field, a, b, n, h *big.Int) (*Curve, error) {
	if n == nil || n.Sign() <= 0 || h == nil || h.Sign() <= 0 {
		return nil, makeError(ErrInvalidCurve, "order and cofactor must be positive")
	}
	ae, err := f.element(a)
	if err != nil {
		return nil, err
	}
	be, err := f.element(b)
	if err != nil {
		return nil, err
	}
	return &Curve{
		f:        f,
		a:        ae,
		b:        be,
		order:    new(big.Int).Set(n),
		cofactor: new(big.Int).Set(h),
		mult:     NewWNafMultiplier(),
		logger:   zap.NewNop(),
	}, nil
}

// withCoordinateSystem returns a copy of c using cs, which must be supported.
func (c *Curve) withCoordinateSystem(cs CoordinateSystem) *Curve {
	cc := *c
	cc.coord = cs
	cc.ops = opsFor(cc.binary, cs)
	cc.infinity = &Point{curve: &cc}
	return &cc
}

// SupportedCoordinateSystems lists the coordinate systems the curve can be
// configured with.
func (c *Curve) SupportedCoordinateSystems() []CoordinateSystem {
	if c.binary {
		return append([]CoordinateSystem(nil), f2mCoordinateSystems...)
	}
	return append([]CoordinateSystem(nil), fpCoordinateSystems...)
}

// SupportsCoordinateSystem reports whether cs can represent points of c.
func (c *Curve) SupportsCoordinateSystem(cs CoordinateSystem) bool {
	return opsFor(c.binary, cs) != nil
}

func (c *Curve) CoordinateSystem() CoordinateSystem { return c.coord }
func (c *Curve) Multiplier() Multiplier             { return c.mult }
func (c *Curve) Logger() *zap.Logger                { return c.logger }
func (c *Curve) IsBinary() bool                     { return c.binary }
func (c *Curve) A() FieldElement                    { return c.a }
func (c *Curve) B() FieldElement                    { return c.b }
func (c *Curve) Order() *big.Int                    { return new(big.Int).Set(c.order) }
func (c *Curve) Cofactor() *big.Int                 { return new(big.Int).Set(c.cofactor) }

// FieldSize returns the bit length of the base field.
func (c *Curve) FieldSize() int {
	return c.f.bits()
}

// FromBig returns x as an element of the curve's base field.
func (c *Curve) FromBig(x *big.Int) (FieldElement, error) {
	return c.f.element(x)
}

// Equal reports whether c and o describe the same curve equation over the
// same field with the same order and cofactor. The coordinate system and
// multiplier are not compared.
func (c *Curve) Equal(o *Curve) bool {
	if c == o {
		return true
	}
	return o != nil && c.f.equal(o.f) && c.a.Equal(o.a) && c.b.Equal(o.b) &&
		c.order.Cmp(o.order) == 0 && c.cofactor.Cmp(o.cofactor) == 0
}

func (c *Curve) String() string {
	kind := "Fp"
	if c.binary {
		kind = "F2m"
	}
	return fmt.Sprintf("%s curve (%d bits, %s)", kind, c.f.bits(), c.coord)
}

// Config builds a reconfigured copy of a curve.
type Config struct {
	curve  *Curve
	coord  CoordinateSystem
	mult   Multiplier
	logger *zap.Logger
}

// Configure starts a reconfiguration of c. The receiver is never modified.
func (c *Curve) Configure() *Config {
	return &Config{curve: c, coord: c.coord, mult: c.mult, logger: c.logger}
}

func (cfg *Config) SetCoordinateSystem(cs CoordinateSystem) *Config {
	cfg.coord = cs
	return cfg
}

func (cfg *Config) SetMultiplier(m Multiplier) *Config {
	cfg.mult = m
	return cfg
}

func (cfg *Config) SetLogger(l *zap.Logger) *Config {
	cfg.logger = l
	return cfg
}

// Create returns the configured curve.
func (cfg *Config) Create() (*Curve, error) {
	if !cfg.curve.SupportsCoordinateSystem(cfg.coord) {
		return nil, makeError(ErrUnsupportedCoordinateSystem,
			fmt.Sprintf("coordinate system %s is not supported by %s", cfg.coord, cfg.curve))
	}
	c := cfg.curve.withCoordinateSystem(cfg.coord)
	if cfg.mult != nil {
		c.mult = cfg.mult
	}
	if cfg.logger != nil {
		c.logger = cfg.logger
	}
	c.logger.Debug("configured curve",
		zap.Stringer("coordinates", c.coord),
		zap.Int("fieldBits", c.FieldSize()),
		zap.String("multiplier", fmt.Sprintf("%T", c.mult)))
	return c, nil
}

// Infinity returns the point at infinity.
func (c *Curve) Infinity() *Point {
	return c.infinity
}

// CreatePoint returns the point with affine coordinates (x, y). The point
// is not validated; see ValidatePoint.
func (c *Curve) CreatePoint(x, y *big.Int) (*Point, error) {
	xe, err := c.f.element(x)
	if err != nil {
		return nil, err
	}
	ye, err := c.f.element(y)
	if err != nil {
		return nil, err
	}
	return c.ops.fromAffine(c, xe, ye), nil
}

// ValidatePoint returns the point (x, y) after checking that it is on the
// curve and in the base subgroup.
func (c *Curve) ValidatePoint(x, y *big.Int) (*Point, error) {
	p, err := c.CreatePoint(x, y)
	if err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPoint returns a point from raw coordinates in the curve's coordinate
// system: x, y (lambda in the lambda systems) and the Z-coordinates. Both x
// and y nil yields infinity; exactly one nil is an error.
func (c *Curve) NewPoint(x, y *big.Int, zs ...*big.Int) (*Point, error) {
	if x == nil && y == nil {
		return c.infinity, nil
	}
	if x == nil || y == nil {
		return nil, makeError(ErrIncompletePoint, "exactly one affine coordinate is nil")
	}
	if len(zs) != c.coord.zCount() {
		return nil, makeError(ErrIncompletePoint,
			fmt.Sprintf("%s points need %d z-coordinates, got %d", c.coord, c.coord.zCount(), len(zs)))
	}
	xe, err := c.f.element(x)
	if err != nil {
		return nil, err
	}
	ye, err := c.f.element(y)
	if err != nil {
		return nil, err
	}
	zes := make([]FieldElement, len(zs))
	for i, z := range zs {
		if zes[i], err = c.f.element(z); err != nil {
			return nil, err
		}
	}
	return c.newPoint(xe, ye, zes...), nil
}

func (c *Curve) newPoint(x, y FieldElement, zs ...FieldElement) *Point {
	return &Point{curve: c, x: x, y: y, zs: zs}
}

// ImportPoint re-derives p, which may come from a differently configured
// copy of the curve, in the coordinate system of c.
func (c *Curve) ImportPoint(p *Point) (*Point, error) {
	if p.curve == c {
		return p, nil
	}
	if !c.Equal(p.curve) {
		return nil, makeError(ErrCurveMismatch, "point belongs to a different curve")
	}
	if p.IsInfinity() {
		return c.infinity, nil
	}
	q := p.Normalize()
	return c.ops.fromAffine(c, q.AffineX(), q.AffineY()), nil
}

// NormalizeAll replaces every point in points with its normalized form,
// sharing a single field inversion across the batch. Nil entries and points
// that are already normalized are left unchanged.
func (c *Curve) NormalizeAll(points []*Point) {
	var idx []int
	for i, p := range points {
		if p == nil || p.IsNormalized() {
			continue
		}
		if p.curve != c {
			panic("ec: point belongs to a different curve")
		}
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return
	}

	// Running products z_0 * ... * z_i, inverted once and unwound.
	acc := make([]FieldElement, len(idx))
	acc[0] = points[idx[0]].zs[0]
	for j := 1; j < len(idx); j++ {
		acc[j] = acc[j-1].Multiply(points[idx[j]].zs[0])
	}
	inv := acc[len(idx)-1].Invert()
	for j := len(idx) - 1; j >= 0; j-- {
		p := points[idx[j]]
		zInv := inv
		if j > 0 {
			zInv = inv.Multiply(acc[j-1])
			inv = inv.Multiply(p.zs[0])
		}
		points[idx[j]] = c.ops.normalize(p, zInv)
	}
}
