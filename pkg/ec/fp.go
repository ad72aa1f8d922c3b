package ec

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/math/nat"
)

// FpField is the prime field of integers modulo an odd prime p. Elements are
// kept in Montgomery form with R = 2^(32n) for the n-word modulus.
type FpField struct {
	p     *big.Int
	n     int
	m     []uint32
	m0inv uint32
	r1    []uint32 // R mod p, the Montgomery form of one
	r2    []uint32 // R^2 mod p
	mul   func(x, y, zz []uint32)
	sqr   func(x, zz []uint32)

	invExp   []uint32 // p-2
	eulerExp []uint32 // (p-1)/2

	// p-1 = q*2^s. sqrtExp is (p+1)/4 when s == 1 and (q+1)/2 otherwise;
	// nonResidue is z^q for a quadratic non-residue z.
	s          int
	q          []uint32
	sqrtExp    []uint32
	nonResidue []uint32
}

// NewFpField returns the field of integers modulo the odd prime p.
func NewFpField(p *big.Int) (*FpField, error) {
	if p == nil || p.Cmp(big.NewInt(3)) < 0 || p.Bit(0) == 0 {
		return nil, makeError(ErrInvalidField, "field modulus must be an odd prime")
	}
	if !p.ProbablyPrime(20) {
		return nil, makeError(ErrInvalidField, fmt.Sprintf("field modulus %x is not prime", p))
	}

	n := (p.BitLen() + 31) >> 5
	f := &FpField{
		p:   new(big.Int).Set(p),
		n:   n,
		mul: nat.MulFunc(n),
		sqr: nat.SquareFunc(n),
	}
	f.m = f.words(p)
	f.m0inv = -nat.InverseWord32(f.m[0])

	r := new(big.Int).Lsh(big.NewInt(1), uint(32*n))
	f.r1 = f.words(new(big.Int).Mod(r, p))
	f.r2 = f.words(new(big.Int).Exp(r, big.NewInt(2), p))

	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	f.invExp = f.words(new(big.Int).Sub(p, big.NewInt(2)))
	f.eulerExp = f.words(new(big.Int).Rsh(pm1, 1))

	f.s = int(pm1.TrailingZeroBits())
	q := new(big.Int).Rsh(pm1, uint(f.s))
	f.q = f.words(q)
	if f.s == 1 {
		f.sqrtExp = f.words(new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2))
		return f, nil
	}
	f.sqrtExp = f.words(new(big.Int).Rsh(new(big.Int).Add(q, big.NewInt(1)), 1))

	z := big.NewInt(2)
	for big.Jacobi(z, p) != -1 {
		z.Add(z, big.NewInt(1))
	}
	f.nonResidue = f.exp(f.toMont(f.words(z)), f.q)
	return f, nil
}

// words converts x, known to be below 2^(32n), to n words.
func (f *FpField) words(x *big.Int) []uint32 {
	w, err := nat.FromBig(32*f.n, x)
	if err != nil {
		panic(err)
	}
	return w
}

func (f *FpField) montMul(x, y, z []uint32) {
	tt := nat.Create(2 * f.n)
	f.mul(x, y, tt)
	nat.MontReduce(f.n, tt, f.m, f.m0inv, z)
}

func (f *FpField) montSquare(x, z []uint32) {
	tt := nat.Create(2 * f.n)
	f.sqr(x, tt)
	nat.MontReduce(f.n, tt, f.m, f.m0inv, z)
}

func (f *FpField) toMont(x []uint32) []uint32 {
	z := nat.Create(f.n)
	f.montMul(x, f.r2, z)
	return z
}

func (f *FpField) fromMont(x []uint32) []uint32 {
	tt := nat.Create(2 * f.n)
	copy(tt, x)
	z := nat.Create(f.n)
	nat.MontReduce(f.n, tt, f.m, f.m0inv, z)
	return z
}

// exp returns x^e for x in Montgomery form and a plain exponent e.
func (f *FpField) exp(x, e []uint32) []uint32 {
	z := nat.Create(f.n)
	nat.Copy(f.n, f.r1, z)
	for i := 32*len(e) - 1; i >= 0; i-- {
		f.montSquare(z, z)
		if nat.GetBit(e, i) == 1 {
			f.montMul(z, x, z)
		}
	}
	return z
}

func (f *FpField) isOne(x []uint32) bool {
	return nat.Eq(f.n, x, f.r1)
}

// reduceOnce subtracts p from z when z, extended by the carry c, is at
// least p.
func (f *FpField) reduceOnce(c uint32, z []uint32) {
	t := nat.Create(f.n)
	borrow := nat.Sub(f.n, z, f.m, t)
	nat.CMov(f.n, nat.Mask(c|(uint32(borrow)+1)), t, z)
}

// Modulus returns a copy of p.
func (f *FpField) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// FromBig returns the element x. x must lie in [0, p).
func (f *FpField) FromBig(x *big.Int) (*FpElement, error) {
	if x == nil || x.Sign() < 0 || x.Cmp(f.p) >= 0 {
		return nil, makeError(ErrFieldValueOutOfRange, fmt.Sprintf("value %v is outside [0, p)", x))
	}
	return &FpElement{f: f, v: f.toMont(f.words(x))}, nil
}

// small returns v mod p.
func (f *FpField) small(v int64) *FpElement {
	x := new(big.Int).Mod(big.NewInt(v), f.p)
	return &FpElement{f: f, v: f.toMont(f.words(x))}
}

func (f *FpField) element(x *big.Int) (FieldElement, error) {
	e, err := f.FromBig(x)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (f *FpField) zero() FieldElement {
	return &FpElement{f: f, v: nat.Create(f.n)}
}

func (f *FpField) one() FieldElement {
	v := nat.Create(f.n)
	nat.Copy(f.n, f.r1, v)
	return &FpElement{f: f, v: v}
}

func (f *FpField) bits() int {
	return f.p.BitLen()
}

func (f *FpField) equal(other field) bool {
	o, ok := other.(*FpField)
	return ok && (o == f || o.p.Cmp(f.p) == 0)
}

// FpElement is an element of an FpField.
type FpElement struct {
	f *FpField
	v []uint32
}

func (e *FpElement) other(b FieldElement) *FpElement {
	o, ok := b.(*FpElement)
	if !ok || !e.f.equal(o.f) {
		panic("ec: field element type mismatch")
	}
	return o
}

func (e *FpElement) ToBig() *big.Int {
	return nat.ToBig(e.f.n, e.f.fromMont(e.v))
}

func (e *FpElement) Bytes() []byte {
	return e.ToBig().FillBytes(make([]byte, byteLen(e.f)))
}

func (e *FpElement) FieldSize() int {
	return e.f.bits()
}

func (e *FpElement) IsZero() bool {
	return nat.IsZero(e.f.n, e.v)
}

func (e *FpElement) IsOne() bool {
	return e.f.isOne(e.v)
}

func (e *FpElement) TestBitZero() bool {
	return e.f.fromMont(e.v)[0]&1 == 1
}

func (e *FpElement) Add(b FieldElement) FieldElement {
	o := e.other(b)
	z := nat.Create(e.f.n)
	c := nat.Add(e.f.n, e.v, o.v, z)
	e.f.reduceOnce(c, z)
	return &FpElement{f: e.f, v: z}
}

func (e *FpElement) AddOne() FieldElement {
	return e.Add(e.f.one())
}

func (e *FpElement) Subtract(b FieldElement) FieldElement {
	o := e.other(b)
	z := nat.Create(e.f.n)
	borrow := nat.Sub(e.f.n, e.v, o.v, z)
	nat.CAdd(e.f.n, uint32(borrow), z, e.f.m, z)
	return &FpElement{f: e.f, v: z}
}

func (e *FpElement) Multiply(b FieldElement) FieldElement {
	o := e.other(b)
	z := nat.Create(e.f.n)
	e.f.montMul(e.v, o.v, z)
	return &FpElement{f: e.f, v: z}
}

func (e *FpElement) Divide(b FieldElement) FieldElement {
	return e.Multiply(e.other(b).Invert())
}

func (e *FpElement) Negate() FieldElement {
	z := nat.Create(e.f.n)
	if !e.IsZero() {
		nat.Sub(e.f.n, e.f.m, e.v, z)
	}
	return &FpElement{f: e.f, v: z}
}

func (e *FpElement) Square() FieldElement {
	z := nat.Create(e.f.n)
	e.f.montSquare(e.v, z)
	return &FpElement{f: e.f, v: z}
}

// Invert computes x^(p-2).
func (e *FpElement) Invert() FieldElement {
	if e.IsZero() {
		panic("ec: inverse of zero")
	}
	return &FpElement{f: e.f, v: e.f.exp(e.v, e.f.invExp)}
}

// Sqrt uses a single exponentiation when p = 3 mod 4 and Tonelli-Shanks
// otherwise.
func (e *FpElement) Sqrt() FieldElement {
	f := e.f
	if e.IsZero() {
		return e
	}
	if !f.isOne(f.exp(e.v, f.eulerExp)) {
		return nil
	}

	x := f.exp(e.v, f.sqrtExp)
	if f.s > 1 {
		t := f.exp(e.v, f.q)
		c := nat.Create(f.n)
		nat.Copy(f.n, f.nonResidue, c)
		m := f.s
		for !f.isOne(t) {
			i := 0
			t2 := nat.Create(f.n)
			nat.Copy(f.n, t, t2)
			for !f.isOne(t2) {
				f.montSquare(t2, t2)
				i++
				if i == m {
					return nil
				}
			}
			b := c
			for j := 0; j < m-i-1; j++ {
				f.montSquare(b, b)
			}
			m = i
			c = nat.Create(f.n)
			f.montSquare(b, c)
			f.montMul(t, c, t)
			f.montMul(x, b, x)
		}
	}

	r := &FpElement{f: f, v: x}
	if !r.Square().Equal(e) {
		return nil
	}
	return r
}

func (e *FpElement) Equal(b FieldElement) bool {
	o, ok := b.(*FpElement)
	return ok && e.f.equal(o.f) && nat.Eq(e.f.n, e.v, o.v)
}

func (e *FpElement) String() string {
	return e.ToBig().Text(16)
}
