package schnorr

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/smallyu/go-ecmath/pkg/ec"
)

var (
	ErrNilInput       = errors.New("schnorr: inputs cannot be nil")
	ErrPublicMismatch = errors.New("schnorr: public point does not match secret")
)

// Fixed-base multiplications share precomputed comb tables per generator.
var comb = ec.NewFixedPointCombMultiplier()

// Proof is a non-interactive proof of knowledge of x such that X = x*G.
type Proof struct {
	R *ec.Point // Commitment R = k*G
	S *big.Int  // Response s = k + e*x mod n
}

// Prove generates a proof for the secret x of X = x*G.
func Prove(g *ec.Point, x *big.Int, X *ec.Point) (*Proof, error) {
	if g == nil || x == nil || X == nil {
		return nil, ErrNilInput
	}
	n := g.Curve().Order()
	if !comb.Multiply(g, x).Equal(X) {
		return nil, ErrPublicMismatch
	}

	k, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, err
	}
	R := comb.Multiply(g, k)
	e := challenge(n, g, X, R)

	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, n)
	return &Proof{R: R, S: s}, nil
}

// Verify checks s*G - e*X == R.
func (p *Proof) Verify(g, X *ec.Point) bool {
	if p == nil || p.R == nil || p.S == nil || g == nil || X == nil {
		return false
	}
	n := g.Curve().Order()
	if p.S.Sign() < 0 || p.S.Cmp(n) >= 0 {
		return false
	}
	if !X.IsValid() || !p.R.IsValid() {
		return false
	}

	e := challenge(n, g, X, p.R)
	R, err := g.Curve().ImportPoint(p.R)
	if err != nil {
		return false
	}
	lhs, err := ec.SumOfTwoMultiplies(g, p.S, X, e.Neg(e))
	if err != nil {
		return false
	}
	return lhs.Equal(R)
}

// challenge computes H(G, X, R) mod n over compressed encodings.
func challenge(n *big.Int, g, X, R *ec.Point) *big.Int {
	h := sha256.New()
	h.Write(g.Encoded(true))
	h.Write(X.Encoded(true))
	h.Write(R.Encoded(true))
	e := new(big.Int).SetBytes(h.Sum(nil))
	return e.Mod(e, n)
}
