package geometry

import "math"

const (
	Infinity = math.MaxFloat64
	Epsilon = 1.19209e-07 // defined by clang for x86
)

// Scalar is the default floating-point scalar used by consumers that do not
// care about the exact representation.
type Scalar float64

type (
	Int32  int32
	Int64  int64
	Uint32 uint32
	Uint64 uint64
)

// Integer covers every built-in integer kind, signed or not.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// Number is the capability set the tuple operators require: additive and
// multiplicative identities, the four arithmetic operators, and equality.
type Number interface {
	Integer | Float
}

// SignedNumber is the stricter capability needed for negation. Unsigned
// integers are deliberately excluded even though Go defines unary minus on
// them as wrapping.
type SignedNumber interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | Float
}
