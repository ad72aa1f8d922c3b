package ec

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidField indicates a field modulus or reduction polynomial that
	// cannot define a field.
	ErrInvalidField = ErrorKind("ErrInvalidField")

	// ErrInvalidCurve indicates curve parameters that do not describe a
	// usable curve, such as a zero order.
	ErrInvalidCurve = ErrorKind("ErrInvalidCurve")

	// ErrFieldValueOutOfRange indicates an integer that is negative or not
	// smaller than the field size.
	ErrFieldValueOutOfRange = ErrorKind("ErrFieldValueOutOfRange")

	// ErrIncompletePoint indicates a point constructed with exactly one of
	// its affine coordinates.
	ErrIncompletePoint = ErrorKind("ErrIncompletePoint")

	// ErrPointNotOnCurve indicates a point that does not satisfy the curve
	// equation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrPointNotInSubgroup indicates a point on the curve that lies outside
	// the prime-order subgroup.
	ErrPointNotInSubgroup = ErrorKind("ErrPointNotInSubgroup")

	// ErrInvalidEncoding indicates an encoded point with an unknown prefix
	// byte.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidEncodingLen indicates an encoded point whose length does not
	// match its prefix byte.
	ErrInvalidEncodingLen = ErrorKind("ErrInvalidEncodingLen")

	// ErrInvalidCompression indicates a compressed point whose x-coordinate
	// has no matching y-coordinate.
	ErrInvalidCompression = ErrorKind("ErrInvalidCompression")

	// ErrInvalidInfinityEncoding indicates an infinity encoding longer than
	// the single 0x00 byte.
	ErrInvalidInfinityEncoding = ErrorKind("ErrInvalidInfinityEncoding")

	// ErrInconsistentHybrid indicates a hybrid encoding whose prefix parity
	// disagrees with its y-coordinate.
	ErrInconsistentHybrid = ErrorKind("ErrInconsistentHybrid")

	// ErrCurveMismatch indicates points from different curves combined in a
	// single operation.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrUnsupportedCoordinateSystem indicates a coordinate system that the
	// curve's field kind cannot represent.
	ErrUnsupportedCoordinateSystem = ErrorKind("ErrUnsupportedCoordinateSystem")

	// ErrScalarCountMismatch indicates a different number of points and
	// scalars passed to a multi-scalar operation.
	ErrScalarCountMismatch = ErrorKind("ErrScalarCountMismatch")

	// ErrInvalidScalar indicates a nil scalar.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curves, field elements or points. It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
