package ec

import "math/big"

// FieldElement is an element of the base field of a curve. Elements are
// immutable: every operation returns a new element. Combining elements of
// different fields panics.
type FieldElement interface {
	// ToBig returns the canonical integer value of the element.
	ToBig() *big.Int

	// Bytes returns the big-endian encoding, padded to the field byte length.
	Bytes() []byte

	// FieldSize returns the bit length of the field.
	FieldSize() int

	IsZero() bool
	IsOne() bool

	// TestBitZero reports whether bit 0 of the canonical value is set.
	TestBitZero() bool

	Add(b FieldElement) FieldElement
	AddOne() FieldElement
	Subtract(b FieldElement) FieldElement
	Multiply(b FieldElement) FieldElement
	Divide(b FieldElement) FieldElement
	Negate() FieldElement
	Square() FieldElement

	// Invert returns the multiplicative inverse. Inverting zero panics.
	Invert() FieldElement

	// Sqrt returns a square root, or nil when the element is not a square.
	Sqrt() FieldElement

	Equal(b FieldElement) bool
	String() string
}

// field is the factory side of a base field, used by curves to build
// elements and constants.
type field interface {
	element(x *big.Int) (FieldElement, error)
	zero() FieldElement
	one() FieldElement
	bits() int
	equal(other field) bool
}

// byteLen returns the encoded length in bytes of elements of f.
func byteLen(f field) int {
	return (f.bits() + 7) / 8
}
