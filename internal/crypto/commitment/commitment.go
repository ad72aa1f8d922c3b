package commitment

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ec"
)

var ErrNoGenerator = errors.New("commitment: could not derive second generator")

// maxAttempts bounds the search for H. Each candidate succeeds with
// probability about 1/(2h).
const maxAttempts = 1 << 12

// Params fixes the generators of a Pedersen commitment on a named curve.
// Nobody knows log_G(H) since H is derived by hashing.
type Params struct {
	Curve *curves.NamedCurve
	H     *ec.Point
}

// Commitment represents C = m*G + r*H with decommitment r.
type Commitment struct {
	C []byte   // Compressed encoding of the commitment point
	D *big.Int // The blinding factor r
}

// NewParams derives H from seed by hashing to candidate x-coordinates until
// one decodes to a point of the base subgroup.
func NewParams(curve *curves.NamedCurve, seed []byte) (*Params, error) {
	c := curve.Curve
	size := (c.FieldSize() + 7) / 8
	mask := new(big.Int).Lsh(big.NewInt(1), uint(c.FieldSize()))
	mask.Sub(mask, big.NewInt(1))

	enc := make([]byte, 1+size)
	for ctr := uint32(0); ctr < maxAttempts; ctr++ {
		x := new(big.Int).SetBytes(expand(seed, ctr, size))
		x.And(x, mask)
		enc[0] = 0x02
		x.FillBytes(enc[1:])
		h, err := c.DecodePoint(enc)
		if err != nil || h.IsInfinity() {
			continue
		}
		return &Params{Curve: curve, H: h}, nil
	}
	return nil, ErrNoGenerator
}

// expand stretches SHA-256(seed || ctr || i) to n bytes.
func expand(seed []byte, ctr uint32, n int) []byte {
	var out []byte
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[:4], ctr)
	for i := uint32(0); len(out) < n; i++ {
		binary.BigEndian.PutUint32(buf[4:], i)
		h := sha256.New()
		h.Write(seed)
		h.Write(buf[:])
		out = h.Sum(out)
	}
	return out[:n]
}

// New commits to m with a fresh random blinding factor.
func (p *Params) New(m *big.Int) (*Commitment, error) {
	r, err := curves.NewNative(p.Curve).NewScalar()
	if err != nil {
		return nil, err
	}
	pt, err := p.point(m, r)
	if err != nil {
		return nil, err
	}
	return &Commitment{C: pt.Encoded(true), D: r}, nil
}

// Verify checks if c opens to m under decommitment d.
func (p *Params) Verify(c []byte, d, m *big.Int) bool {
	if d == nil || m == nil {
		return false
	}
	got, err := p.Curve.Curve.DecodePoint(c)
	if err != nil {
		return false
	}
	want, err := p.point(m, d)
	if err != nil {
		return false
	}
	return got.Equal(want)
}

// Add combines two commitments homomorphically: the result opens to
// m1 + m2 under d1 + d2.
func (p *Params) Add(c1, c2 []byte) ([]byte, error) {
	a, err := p.Curve.Curve.DecodePoint(c1)
	if err != nil {
		return nil, err
	}
	b, err := p.Curve.Curve.DecodePoint(c2)
	if err != nil {
		return nil, err
	}
	return a.Add(b).Encoded(true), nil
}

func (p *Params) point(m, r *big.Int) (*ec.Point, error) {
	return ec.ShamirsTrick(p.Curve.G, m, p.H, r)
}
