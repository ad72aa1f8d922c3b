package polynomial

import (
	"errors"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ec"
)

var (
	ErrNegativeDegree = errors.New("polynomial: degree must be non-negative")
	ErrNoCommitments  = errors.New("polynomial: empty commitment vector")
)

var comb = ec.NewFixedPointCombMultiplier()

// Polynomial represents f(x) = a_0 + a_1*x + ... + a_t*x^t over the scalar
// field of a named curve.
type Polynomial struct {
	Coefficients []*big.Int
	Curve        *curves.NamedCurve
}

// New generates a random polynomial of the given degree with constant term
// secret. A nil secret is replaced by a random one.
func New(curve *curves.NamedCurve, degree int, secret *big.Int) (*Polynomial, error) {
	if degree < 0 {
		return nil, ErrNegativeDegree
	}
	backend := curves.NewNative(curve)
	coeffs := make([]*big.Int, degree+1)
	var err error

	if secret == nil {
		coeffs[0], err = backend.NewScalar()
		if err != nil {
			return nil, err
		}
	} else {
		coeffs[0] = new(big.Int).Mod(secret, curve.Order())
	}
	for i := 1; i <= degree; i++ {
		coeffs[i], err = backend.NewScalar()
		if err != nil {
			return nil, err
		}
	}
	return &Polynomial{Coefficients: coeffs, Curve: curve}, nil
}

// Evaluate calculates f(x) mod n by Horner's rule.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	n := p.Curve.Order()
	degree := len(p.Coefficients) - 1
	result := new(big.Int).Set(p.Coefficients[degree])
	for i := degree - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
		result.Mod(result, n)
	}
	return result
}

// EvaluateMulti calculates f(x) for every x in xs.
func (p *Polynomial) EvaluateMulti(xs []*big.Int) []*big.Int {
	results := make([]*big.Int, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// Commit returns the Feldman commitments a_i*G.
func (p *Polynomial) Commit() []*ec.Point {
	cs := make([]*ec.Point, len(p.Coefficients))
	for i, a := range p.Coefficients {
		cs[i] = comb.Multiply(p.Curve.G, a)
	}
	return cs
}

// VerifyShare reports whether share = f(x) for the polynomial committed to
// by commitments, by checking share*G = sum x^i * C_i.
func VerifyShare(curve *curves.NamedCurve, commitments []*ec.Point, x, share *big.Int) (bool, error) {
	if len(commitments) == 0 {
		return false, ErrNoCommitments
	}
	n := curve.Order()
	powers := make([]*big.Int, len(commitments))
	xi := big.NewInt(1)
	for i := range powers {
		powers[i] = new(big.Int).Set(xi)
		xi.Mul(xi, x).Mod(xi, n)
	}
	rhs, err := ec.SumOfMultiplies(commitments, powers)
	if err != nil {
		return false, err
	}
	return comb.Multiply(curve.G, share).Equal(rhs), nil
}

// Interpolate recovers f(0) from t+1 distinct points (xs[i], ys[i]).
func Interpolate(n *big.Int, xs, ys []*big.Int) *big.Int {
	secret := new(big.Int)
	for i := range xs {
		num, den := big.NewInt(1), big.NewInt(1)
		for j := range xs {
			if i == j {
				continue
			}
			num.Mul(num, xs[j]).Mod(num, n)
			d := new(big.Int).Sub(xs[j], xs[i])
			den.Mul(den, d).Mod(den, n)
		}
		term := num.Mul(num, den.ModInverse(den, n))
		term.Mul(term, ys[i])
		secret.Add(secret, term).Mod(secret, n)
	}
	return secret
}
