package ec

import (
	"fmt"
	"math/big"
	"math/bits"
	"sort"
)

// F2mField is the binary field F(2^m) with reduction polynomial
// x^m + x^k[n-1] + ... + x^k[0] + 1. Elements are polynomials packed into
// 64-bit words, least-significant word first.
type F2mField struct {
	m  int
	ks []int
	w  int
}

// NewF2mField returns F(2^m) reduced by the trinomial or pentanomial with
// middle exponents ks.
func NewF2mField(m int, ks []int) (*F2mField, error) {
	if m < 2 {
		return nil, makeError(ErrInvalidField, "field degree must be at least 2")
	}
	if len(ks) != 1 && len(ks) != 3 {
		return nil, makeError(ErrInvalidField, "reduction polynomial must be a trinomial or pentanomial")
	}
	sorted := append([]int(nil), ks...)
	sort.Ints(sorted)
	for i, k := range sorted {
		if k <= 0 || k >= m || (i > 0 && k == sorted[i-1]) {
			return nil, makeError(ErrInvalidField, fmt.Sprintf("invalid reduction exponents %v for degree %d", ks, m))
		}
	}
	return &F2mField{m: m, ks: sorted, w: (m + 63) >> 6}, nil
}

// Degree returns m.
func (f *F2mField) Degree() int {
	return f.m
}

// Exponents returns the middle exponents of the reduction polynomial in
// ascending order.
func (f *F2mField) Exponents() []int {
	return append([]int(nil), f.ks...)
}

// FromBig returns the element whose polynomial coefficients are the bits of
// x. x must be below 2^m.
func (f *F2mField) FromBig(x *big.Int) (*F2mElement, error) {
	if x == nil || x.Sign() < 0 || x.BitLen() > f.m {
		return nil, makeError(ErrFieldValueOutOfRange, fmt.Sprintf("value %v is outside [0, 2^%d)", x, f.m))
	}
	v := make([]uint64, f.w)
	for i, word := range x.Bits() {
		if bits.UintSize == 64 {
			v[i] = uint64(word)
			continue
		}
		v[i/2] |= uint64(word) << (32 * uint(i%2))
	}
	return &F2mElement{f: f, v: v}, nil
}

func (f *F2mField) element(x *big.Int) (FieldElement, error) {
	e, err := f.FromBig(x)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (f *F2mField) zero() FieldElement {
	return &F2mElement{f: f, v: make([]uint64, f.w)}
}

func (f *F2mField) one() FieldElement {
	v := make([]uint64, f.w)
	v[0] = 1
	return &F2mElement{f: f, v: v}
}

func (f *F2mField) bits() int {
	return f.m
}

func (f *F2mField) equal(other field) bool {
	o, ok := other.(*F2mField)
	if !ok || o.m != f.m || len(o.ks) != len(f.ks) {
		return false
	}
	for i := range f.ks {
		if o.ks[i] != f.ks[i] {
			return false
		}
	}
	return true
}

func flipBit(c []uint64, i int) {
	c[i>>6] ^= 1 << (uint(i) & 63)
}

// reduce folds the double-length polynomial c modulo the field polynomial.
// c is clobbered and its low words are returned.
func (f *F2mField) reduce(c []uint64) []uint64 {
	for i := 64*len(c) - 1; i >= f.m; i-- {
		if c[i>>6] == 0 {
			i &^= 63
			continue
		}
		if c[i>>6]>>(uint(i)&63)&1 == 0 {
			continue
		}
		flipBit(c, i)
		s := i - f.m
		flipBit(c, s)
		for _, k := range f.ks {
			flipBit(c, s+k)
		}
	}
	z := make([]uint64, f.w)
	copy(z, c)
	return z
}

// clmulTable holds u*b for every 4-bit polynomial u, as (hi, lo) pairs.
type clmulTable [16][2]uint64

func newClmulTable(b uint64) *clmulTable {
	var t clmulTable
	t[1][1] = b
	for u := 2; u < 16; u += 2 {
		h, l := t[u/2][0], t[u/2][1]
		t[u] = [2]uint64{h<<1 | l>>63, l << 1}
		t[u+1] = [2]uint64{t[u][0], t[u][1] ^ b}
	}
	return &t
}

// mul returns the 128-bit carry-less product a*b.
func (t *clmulTable) mul(a uint64) (hi, lo uint64) {
	for s := 60; s >= 0; s -= 4 {
		hi = hi<<4 | lo>>60
		lo <<= 4
		e := &t[(a>>uint(s))&15]
		hi ^= e[0]
		lo ^= e[1]
	}
	return hi, lo
}

func (f *F2mField) mul(a, b []uint64) []uint64 {
	c := make([]uint64, 2*f.w)
	for j := 0; j < f.w; j++ {
		if b[j] == 0 {
			continue
		}
		t := newClmulTable(b[j])
		for i := 0; i < f.w; i++ {
			hi, lo := t.mul(a[i])
			c[i+j] ^= lo
			c[i+j+1] ^= hi
		}
	}
	return f.reduce(c)
}

// spread interleaves the bits of x with zeros.
func spread(x uint32) uint64 {
	v := uint64(x)
	v = (v | v<<16) & 0x0000FFFF0000FFFF
	v = (v | v<<8) & 0x00FF00FF00FF00FF
	v = (v | v<<4) & 0x0F0F0F0F0F0F0F0F
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}

func (f *F2mField) square(a []uint64) []uint64 {
	c := make([]uint64, 2*f.w)
	for i := 0; i < f.w; i++ {
		c[2*i] = spread(uint32(a[i]))
		c[2*i+1] = spread(uint32(a[i] >> 32))
	}
	return f.reduce(c)
}

// F2mElement is an element of an F2mField.
type F2mElement struct {
	f *F2mField
	v []uint64
}

func (e *F2mElement) other(b FieldElement) *F2mElement {
	o, ok := b.(*F2mElement)
	if !ok || !e.f.equal(o.f) {
		panic("ec: field element type mismatch")
	}
	return o
}

func (e *F2mElement) with(v []uint64) *F2mElement {
	return &F2mElement{f: e.f, v: v}
}

func (e *F2mElement) ToBig() *big.Int {
	x := new(big.Int)
	for i := len(e.v) - 1; i >= 0; i-- {
		x.Lsh(x, 64)
		x.Or(x, new(big.Int).SetUint64(e.v[i]))
	}
	return x
}

func (e *F2mElement) Bytes() []byte {
	return e.ToBig().FillBytes(make([]byte, byteLen(e.f)))
}

func (e *F2mElement) FieldSize() int {
	return e.f.m
}

func (e *F2mElement) IsZero() bool {
	var d uint64
	for _, w := range e.v {
		d |= w
	}
	return d == 0
}

func (e *F2mElement) IsOne() bool {
	d := e.v[0] ^ 1
	for _, w := range e.v[1:] {
		d |= w
	}
	return d == 0
}

func (e *F2mElement) TestBitZero() bool {
	return e.v[0]&1 == 1
}

func (e *F2mElement) Add(b FieldElement) FieldElement {
	o := e.other(b)
	z := make([]uint64, len(e.v))
	for i := range z {
		z[i] = e.v[i] ^ o.v[i]
	}
	return e.with(z)
}

func (e *F2mElement) AddOne() FieldElement {
	z := append([]uint64(nil), e.v...)
	z[0] ^= 1
	return e.with(z)
}

// Subtract is addition in characteristic two.
func (e *F2mElement) Subtract(b FieldElement) FieldElement {
	return e.Add(b)
}

func (e *F2mElement) Multiply(b FieldElement) FieldElement {
	return e.with(e.f.mul(e.v, e.other(b).v))
}

func (e *F2mElement) Divide(b FieldElement) FieldElement {
	return e.Multiply(e.other(b).Invert())
}

func (e *F2mElement) Negate() FieldElement {
	return e
}

func (e *F2mElement) Square() FieldElement {
	return e.with(e.f.square(e.v))
}

// Invert computes x^(2^m - 2) with the chain r <- r^2 * x.
func (e *F2mElement) Invert() FieldElement {
	if e.IsZero() {
		panic("ec: inverse of zero")
	}
	r := e.v
	for i := 1; i <= e.f.m-2; i++ {
		r = e.f.mul(e.f.square(r), e.v)
	}
	return e.with(e.f.square(r))
}

// Sqrt computes x^(2^(m-1)). Every element of a binary field is a square.
func (e *F2mElement) Sqrt() FieldElement {
	r := e.v
	for i := 0; i < e.f.m-1; i++ {
		r = e.f.square(r)
	}
	return e.with(r)
}

// Trace returns x + x^2 + x^4 + ... + x^(2^(m-1)), which is 0 or 1.
func (e *F2mElement) Trace() int {
	t, s := e.v, append([]uint64(nil), e.v...)
	for i := 1; i < e.f.m; i++ {
		t = e.f.square(t)
		for j := range s {
			s[j] ^= t[j]
		}
	}
	return int(s[0] & 1)
}

// HalfTrace returns x + x^4 + x^16 + ... + x^(4^((m-1)/2)). m must be odd.
func (e *F2mElement) HalfTrace() *F2mElement {
	if e.f.m&1 == 0 {
		panic("ec: half-trace requires an odd field degree")
	}
	t, s := e.v, append([]uint64(nil), e.v...)
	for i := 1; i <= (e.f.m-1)/2; i++ {
		t = e.f.square(e.f.square(t))
		for j := range s {
			s[j] ^= t[j]
		}
	}
	return e.with(s)
}

// SolveQuadratic returns a z with z^2 + z = beta, or nil when there is none.
// The other solution is z + 1.
func (e *F2mElement) SolveQuadratic() *F2mElement {
	if e.IsZero() {
		return e
	}
	if e.f.m&1 == 1 {
		z := e.HalfTrace()
		if !z.Square().Add(z).Equal(e) {
			return nil
		}
		return z
	}

	// Even degree: z = sum over i of beta^(2^i) * (t + ... + t^(2^(i-1)))
	// for some t of trace one, tried in increasing order.
	f := e.f
	for c := int64(2); c < 1<<20; c++ {
		tv, err := f.FromBig(big.NewInt(c))
		if err != nil {
			break
		}
		z := f.zero().(*F2mElement)
		w := e
		for i := 1; i < f.m; i++ {
			w2 := w.Square().(*F2mElement)
			z = z.Square().Add(w2.Multiply(tv)).(*F2mElement)
			w = w2.Add(e).(*F2mElement)
		}
		if !w.IsZero() {
			return nil
		}
		if !z.Square().Add(z).IsZero() {
			return z
		}
	}
	return nil
}

func (e *F2mElement) Equal(b FieldElement) bool {
	o, ok := b.(*F2mElement)
	if !ok || !e.f.equal(o.f) {
		return false
	}
	for i := range e.v {
		if e.v[i] != o.v[i] {
			return false
		}
	}
	return true
}

func (e *F2mElement) String() string {
	return e.ToBig().Text(16)
}
