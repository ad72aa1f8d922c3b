package ec

import (
	"fmt"
	"math/big"
)

const (
	prefixInfinity     = 0x00
	prefixCompressed   = 0x02
	prefixUncompressed = 0x04
	prefixHybrid       = 0x06
)

// Encoded returns the SEC1 encoding of p: 0x00 for infinity, 0x02|ybit || X
// when compressed and 0x04 || X || Y otherwise. Coordinates are big-endian
// and padded to the field byte length.
func (p *Point) Encoded(compressed bool) []byte {
	if p.IsInfinity() {
		return []byte{prefixInfinity}
	}
	q := p.Normalize()
	x := q.AffineX().Bytes()
	if compressed {
		prefix := byte(prefixCompressed)
		if q.compressionBit() {
			prefix |= 1
		}
		return append([]byte{prefix}, x...)
	}
	out := append([]byte{prefixUncompressed}, x...)
	return append(out, q.AffineY().Bytes()...)
}

// compressionBit returns the bit that selects y given x: the parity of y
// over a prime field and the low bit of y/x over a binary field.
func (p *Point) compressionBit() bool {
	c := p.curve
	if !c.binary {
		return p.AffineY().TestBitZero()
	}
	q := p.Normalize()
	if q.x.IsZero() {
		return false
	}
	if c.coord.isLambda() {
		// y/x = lambda + x
		return q.y.TestBitZero() != q.x.TestBitZero()
	}
	return q.y.Divide(q.x).TestBitZero()
}

// DecodePoint parses a SEC1 encoded point (compressed, uncompressed or
// hybrid) and checks that it lies in the base subgroup.
func (c *Curve) DecodePoint(b []byte) (*Point, error) {
	if len(b) == 0 {
		return nil, makeError(ErrInvalidEncodingLen, "empty point encoding")
	}
	size := byteLen(c.f)

	var p *Point
	switch prefix := b[0]; prefix {
	case prefixInfinity:
		if len(b) != 1 {
			return nil, makeError(ErrInvalidInfinityEncoding, "infinity encoding must be a single byte")
		}
		return c.infinity, nil

	case prefixCompressed, prefixCompressed | 1:
		if len(b) != 1+size {
			return nil, makeError(ErrInvalidEncodingLen,
				fmt.Sprintf("compressed encoding must be %d bytes, got %d", 1+size, len(b)))
		}
		x, err := c.f.element(new(big.Int).SetBytes(b[1:]))
		if err != nil {
			return nil, err
		}
		if p, err = c.decompress(x, prefix&1 == 1); err != nil {
			return nil, err
		}

	case prefixUncompressed, prefixHybrid, prefixHybrid | 1:
		if len(b) != 1+2*size {
			return nil, makeError(ErrInvalidEncodingLen,
				fmt.Sprintf("uncompressed encoding must be %d bytes, got %d", 1+2*size, len(b)))
		}
		var err error
		p, err = c.CreatePoint(new(big.Int).SetBytes(b[1:1+size]), new(big.Int).SetBytes(b[1+size:]))
		if err != nil {
			return nil, err
		}
		if prefix != prefixUncompressed && p.compressionBit() != (prefix&1 == 1) {
			return nil, makeError(ErrInconsistentHybrid, "hybrid prefix disagrees with the y-coordinate")
		}

	default:
		return nil, makeError(ErrInvalidEncoding, fmt.Sprintf("invalid point encoding prefix 0x%02x", prefix))
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// decompress recovers the point with x-coordinate x whose compression bit
// is yBit.
func (c *Curve) decompress(x FieldElement, yBit bool) (*Point, error) {
	if c.binary {
		return c.decompressBinary(x, yBit)
	}

	// y^2 = x^3 + ax + b
	alpha := x.Square().Add(c.a).Multiply(x).Add(c.b)
	beta := alpha.Sqrt()
	if beta == nil {
		return nil, makeError(ErrInvalidCompression, "x-coordinate is not on the curve")
	}
	if beta.TestBitZero() != yBit {
		beta = beta.Negate()
	}
	if beta.TestBitZero() != yBit {
		return nil, makeError(ErrInvalidCompression, "y-coordinate parity cannot be satisfied")
	}
	return c.ops.fromAffine(c, x, beta), nil
}

func (c *Curve) decompressBinary(x FieldElement, yBit bool) (*Point, error) {
	if x.IsZero() {
		if yBit {
			return nil, makeError(ErrInvalidCompression, "order-two point has no odd encoding")
		}
		return c.ops.fromAffine(c, x, c.sqrtB), nil
	}

	// With z = y/x the curve equation becomes z^2 + z = x + a + b/x^2.
	beta := x.Add(c.a).Add(c.b.Multiply(x.Square().Invert())).(*F2mElement)
	z := beta.SolveQuadratic()
	if z == nil {
		return nil, makeError(ErrInvalidCompression, "x-coordinate is not on the curve")
	}
	if z.TestBitZero() != yBit {
		z = z.AddOne().(*F2mElement)
	}
	return c.ops.fromAffine(c, x, z.Multiply(x)), nil
}
