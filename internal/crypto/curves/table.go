package curves

import (
	"crypto/elliptic"
	"math/big"
	"sort"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecmath/pkg/ec"
)

// NamedCurve is a standard curve with its generator.
type NamedCurve struct {
	Name  string
	Curve *ec.Curve
	G     *ec.Point
}

// Order returns the order of the generator.
func (nc *NamedCurve) Order() *big.Int {
	return nc.Curve.Order()
}

// Table holds the named curves. It is built once by NewTable and never
// modified afterwards, so it can be shared freely.
type Table struct {
	curves map[string]*NamedCurve
	names  []string
}

type fpDef struct {
	p, a, b, n, h, gx, gy *big.Int
}

type f2mDef struct {
	m          int
	ks         []int
	a, b, n, h *big.Int
	gx, gy     *big.Int
}

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: bad constant " + s)
	}
	return n
}

var one = big.NewInt(1)

// nistDef describes a NIST prime curve, for which a = -3.
func nistDef(c elliptic.Curve) fpDef {
	params := c.Params()
	return fpDef{
		p:  params.P,
		a:  new(big.Int).Sub(params.P, big.NewInt(3)),
		b:  params.B,
		n:  params.N,
		h:  one,
		gx: params.Gx,
		gy: params.Gy,
	}
}

func secp256k1Def() fpDef {
	params := secp256k1.S256().Params()
	return fpDef{p: params.P, a: new(big.Int), b: params.B, n: params.N, h: one, gx: params.Gx, gy: params.Gy}
}

func bn254Def() fpDef {
	_, _, g, _ := bn254.Generators()
	return fpDef{
		p:  ecc.BN254.BaseField(),
		a:  new(big.Int),
		b:  big.NewInt(3),
		n:  ecc.BN254.ScalarField(),
		h:  one,
		gx: g.X.BigInt(new(big.Int)),
		gy: g.Y.BigInt(new(big.Int)),
	}
}

func bls12381Def() fpDef {
	_, _, g, _ := bls12381.Generators()
	return fpDef{
		p:  ecc.BLS12_381.BaseField(),
		a:  new(big.Int),
		b:  big.NewInt(4),
		n:  ecc.BLS12_381.ScalarField(),
		h:  hexInt("396c8c005555e1568c00aaab0000aaab"),
		gx: g.X.BigInt(new(big.Int)),
		gy: g.Y.BigInt(new(big.Int)),
	}
}

// wei25519Def is curve25519 in short Weierstrass form.
func wei25519Def() fpDef {
	return fpDef{
		p:  wei25519P,
		a:  hexInt("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144"),
		b:  hexInt("7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864"),
		n:  wei25519N,
		h:  big.NewInt(8),
		gx: hexInt("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad245a"),
		gy: hexInt("20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9"),
	}
}

var f2mDefs = map[string]f2mDef{
	"sect163r2": {
		m:  163,
		ks: []int{3, 6, 7},
		a:  one,
		b:  hexInt("020a601907b8c953ca1481eb10512f78744a3205fd"),
		n:  hexInt("040000000000000000000292fe77e70c12a4234c33"),
		h:  big.NewInt(2),
		gx: hexInt("03f0eba16286a2d57ea0991168d4994637e8343e36"),
		gy: hexInt("00d51fbc6c71a0094fa2cdd545b11c5c0c797324f1"),
	},
	"sect233k1": {
		m:  233,
		ks: []int{74},
		a:  new(big.Int),
		b:  one,
		n:  hexInt("8000000000000000000000000000069d5bb915bcd46efb1ad5f173abdf"),
		h:  big.NewInt(4),
		gx: hexInt("017232ba853a7e731af129f22ff4149563a419c26bf50a4c9d6eefad6126"),
		gy: hexInt("01db537dece819b7f70f555a67c427a8cd9bf18aeb9b56e0c11056fae6a3"),
	},
	"sect233r1": {
		m:  233,
		ks: []int{74},
		a:  one,
		b:  hexInt("0066647ede6c332c7f8c0923bb58213b333b20e9ce4281fe115f7d8f90ad"),
		n:  hexInt("01000000000000000000000000000013e974e72f8a6922031d2603cfe0d7"),
		h:  big.NewInt(2),
		gx: hexInt("00fac9dfcbac8313bb2139f1bb755fef65bc391f8b36f8f8eb7371fd558b"),
		gy: hexInt("01006a08a41903350678e58528bebf8a0beff867a7ca36716f7e01f81052"),
	},
	"sect283k1": {
		m:  283,
		ks: []int{5, 7, 12},
		a:  new(big.Int),
		b:  one,
		n:  hexInt("01ffffffffffffffffffffffffffffffffffe9ae2ed07577265dff7f94451e061e163c61"),
		h:  big.NewInt(4),
		gx: hexInt("0503213f78ca44883f1a3b8162f188e553cd265f23c1567a16876913b0c2ac2458492836"),
		gy: hexInt("01ccda380f1c9e318d90f95d07e5426fe87e45c0e8184698e45962364e34116177dd2259"),
	},
}

// NewTable builds every named curve and validates its generator.
func NewTable(logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fpDefs := map[string]fpDef{
		"secp256k1": secp256k1Def(),
		"P-224":     nistDef(elliptic.P224()),
		"P-256":     nistDef(elliptic.P256()),
		"P-384":     nistDef(elliptic.P384()),
		"P-521":     nistDef(elliptic.P521()),
		"bn254":     bn254Def(),
		"bls12-381": bls12381Def(),
		"wei25519":  wei25519Def(),
	}

	t := &Table{curves: make(map[string]*NamedCurve, len(fpDefs)+len(f2mDefs))}
	for name, d := range fpDefs {
		c, err := ec.NewFpCurve(d.p, d.a, d.b, d.n, d.h)
		if err != nil {
			return nil, errors.Wrapf(err, "failed building curve %s", name)
		}
		if err := t.add(logger, name, c, d.gx, d.gy); err != nil {
			return nil, err
		}
	}
	for name, d := range f2mDefs {
		c, err := ec.NewF2mCurve(d.m, d.ks, d.a, d.b, d.n, d.h)
		if err != nil {
			return nil, errors.Wrapf(err, "failed building curve %s", name)
		}
		if err := t.add(logger, name, c, d.gx, d.gy); err != nil {
			return nil, err
		}
	}
	sort.Strings(t.names)
	return t, nil
}

func (t *Table) add(logger *zap.Logger, name string, c *ec.Curve, gx, gy *big.Int) error {
	c, err := c.Configure().SetLogger(logger.With(zap.String("curve", name))).Create()
	if err != nil {
		return errors.Wrapf(err, "failed configuring curve %s", name)
	}
	g, err := c.ValidatePoint(gx, gy)
	if err != nil {
		return errors.Wrapf(err, "invalid generator for curve %s", name)
	}
	t.curves[name] = &NamedCurve{Name: name, Curve: c, G: g}
	t.names = append(t.names, name)
	logger.Debug("registered curve",
		zap.String("name", name),
		zap.Int("fieldBits", c.FieldSize()),
		zap.Bool("binary", c.IsBinary()),
		zap.Stringer("coordinates", c.CoordinateSystem()))
	return nil
}

// ByName returns the curve registered under name.
func (t *Table) ByName(name string) (*NamedCurve, error) {
	nc, ok := t.curves[name]
	if !ok {
		return nil, errors.Errorf("unknown curve %q", name)
	}
	return nc, nil
}

// Names lists the registered curves in lexical order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}
