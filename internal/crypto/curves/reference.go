package curves

import (
	"crypto/elliptic"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// Reference returns an independent implementation of the named curve, used
// to cross-check the native engine. Binary curves have none.
func Reference(name string) (Backend, error) {
	switch name {
	case "secp256k1":
		return &stdBackend{name: name, curve: secp256k1.S256()}, nil
	case "P-224":
		return &stdBackend{name: name, curve: elliptic.P224()}, nil
	case "P-256":
		return &stdBackend{name: name, curve: elliptic.P256()}, nil
	case "P-384":
		return &stdBackend{name: name, curve: elliptic.P384()}, nil
	case "P-521":
		return &stdBackend{name: name, curve: elliptic.P521()}, nil
	case "bn254":
		return bn254Backend{}, nil
	case "bls12-381":
		return bls12381Backend{}, nil
	case "wei25519":
		return Wei25519{}, nil
	}
	return nil, errors.Errorf("no reference implementation for curve %q", name)
}

// stdBackend wraps an elliptic.Curve, which encodes infinity as (0, 0).
type stdBackend struct {
	name  string
	curve elliptic.Curve
}

func (c *stdBackend) Name() string    { return c.name }
func (c *stdBackend) Order() *big.Int { return c.curve.Params().N }

func (c *stdBackend) NewScalar() (*big.Int, error) {
	return randScalar(c.Order())
}

func (c *stdBackend) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return fromStd(c.curve.ScalarBaseMult(reduce(k, c.Order()).Bytes()))
}

func (c *stdBackend) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int) {
	if px == nil {
		return nil, nil
	}
	return fromStd(c.curve.ScalarMult(px, py, reduce(k, c.Order()).Bytes()))
}

func (c *stdBackend) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	x1, y1 = toStd(x1, y1)
	x2, y2 = toStd(x2, y2)
	return fromStd(c.curve.Add(x1, y1, x2, y2))
}

func toStd(x, y *big.Int) (*big.Int, *big.Int) {
	if x == nil {
		return new(big.Int), new(big.Int)
	}
	return x, y
}

func fromStd(x, y *big.Int) (*big.Int, *big.Int) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil
	}
	return x, y
}

func reduce(k, n *big.Int) *big.Int {
	return new(big.Int).Mod(k, n)
}

type bn254Backend struct{}

func (bn254Backend) Name() string    { return "bn254" }
func (bn254Backend) Order() *big.Int { return bn254.ID.ScalarField() }

func (c bn254Backend) NewScalar() (*big.Int, error) {
	return randScalar(c.Order())
}

func (c bn254Backend) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	_, _, g, _ := bn254.Generators()
	var r bn254.G1Affine
	r.ScalarMultiplication(&g, reduce(k, c.Order()))
	return c.affine(&r)
}

func (c bn254Backend) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int) {
	p := c.point(px, py)
	var r bn254.G1Affine
	r.ScalarMultiplication(&p, reduce(k, c.Order()))
	return c.affine(&r)
}

func (c bn254Backend) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p, q := c.point(x1, y1), c.point(x2, y2)
	var j bn254.G1Jac
	j.FromAffine(&p)
	j.AddMixed(&q)
	var r bn254.G1Affine
	r.FromJacobian(&j)
	return c.affine(&r)
}

func (bn254Backend) point(x, y *big.Int) bn254.G1Affine {
	var p bn254.G1Affine
	if x != nil {
		p.X.SetBigInt(x)
		p.Y.SetBigInt(y)
	}
	return p
}

func (bn254Backend) affine(p *bn254.G1Affine) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return nil, nil
	}
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int))
}

type bls12381Backend struct{}

func (bls12381Backend) Name() string    { return "bls12-381" }
func (bls12381Backend) Order() *big.Int { return bls12381.ID.ScalarField() }

func (c bls12381Backend) NewScalar() (*big.Int, error) {
	return randScalar(c.Order())
}

func (c bls12381Backend) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	_, _, g, _ := bls12381.Generators()
	var r bls12381.G1Affine
	r.ScalarMultiplication(&g, reduce(k, c.Order()))
	return c.affine(&r)
}

func (c bls12381Backend) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int) {
	p := c.point(px, py)
	var r bls12381.G1Affine
	r.ScalarMultiplication(&p, reduce(k, c.Order()))
	return c.affine(&r)
}

func (c bls12381Backend) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p, q := c.point(x1, y1), c.point(x2, y2)
	var j bls12381.G1Jac
	j.FromAffine(&p)
	j.AddMixed(&q)
	var r bls12381.G1Affine
	r.FromJacobian(&j)
	return c.affine(&r)
}

func (bls12381Backend) point(x, y *big.Int) bls12381.G1Affine {
	var p bls12381.G1Affine
	if x != nil {
		p.X.SetBigInt(x)
		p.Y.SetBigInt(y)
	}
	return p
}

func (bls12381Backend) affine(p *bls12381.G1Affine) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return nil, nil
	}
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int))
}
