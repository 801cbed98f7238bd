package geometry

import "fmt"

// Vec4 is a four-component tuple of one scalar type. It is a plain value:
// copy on assignment, no coordinate-space meaning attached to W.
type Vec4[T Number] struct {
	X, Y, Z, W T
}

func NewVec4[T Number]() Vec4[T] {
	return Vec4[T]{}
}

func Vec4From[T Number](x T, y T, z T, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

func Vec4Zero[T Number]() Vec4[T] {
	return Vec4[T]{}
}

func Vec4One[T Number]() Vec4[T] {
	return Vec4[T]{X: 1, Y: 1, Z: 1, W: 1}
}

func (v Vec4[T]) IsZero() bool {
	var zero T
	return (v.X == zero) && (v.Y == zero) && (v.Z == zero) && (v.W == zero)
}

func (v Vec4[T]) IsOne() bool {
	return (v.X == 1) && (v.Y == 1) && (v.Z == 1) && (v.W == 1)
}

func (v *Vec4[T]) SetZero() {
	var zero T
	v.X = zero
	v.Y = zero
	v.Z = zero
	v.W = zero
}

func (v *Vec4[T]) SetOne() {
	v.X = 1
	v.Y = 1
	v.Z = 1
	v.W = 1
}

func (v *Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X + b.X,
		Y: v.Y + b.Y,
		Z: v.Z + b.Z,
		W: v.W + b.W,
	}
}

func (v *Vec4[T]) AddAssign(b Vec4[T]) {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	v.W += b.W
}

func (v *Vec4[T]) Subtract(b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X - b.X,
		Y: v.Y - b.Y,
		Z: v.Z - b.Z,
		W: v.W - b.W,
	}
}

func (v *Vec4[T]) SubtractAssign(b Vec4[T]) {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	v.W -= b.W
}

// Multiply is elementwise (Hadamard); it never folds fields into a scalar.
func (v *Vec4[T]) Multiply(b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X * b.X,
		Y: v.Y * b.Y,
		Z: v.Z * b.Z,
		W: v.W * b.W,
	}
}

func (v *Vec4[T]) MultiplyAssign(b Vec4[T]) {
	v.X *= b.X
	v.Y *= b.Y
	v.Z *= b.Z
	v.W *= b.W
}

// Divide delegates zero divisors to T: floats carry Inf/NaN through, integers
// hit the runtime's division panic. Either way the tuple fails or succeeds as
// one unit.
func (v *Vec4[T]) Divide(b Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X / b.X,
		Y: v.Y / b.Y,
		Z: v.Z / b.Z,
		W: v.W / b.W,
	}
}

func (v *Vec4[T]) DivideAssign(b Vec4[T]) {
	v.X /= b.X
	v.Y /= b.Y
	v.Z /= b.Z
	v.W /= b.W
}

// DivideStrict refuses any zero divisor field up front, for callers on
// integer scalars that want an error instead of a panic.
func (v *Vec4[T]) DivideStrict(b Vec4[T]) (Vec4[T], error) {
	var zero T
	if (b.X == zero) || (b.Y == zero) || (b.Z == zero) || (b.W == zero) {
		return Vec4[T]{}, fmt.Errorf("vec4 divide %s by %s: %w", v, b, ErrZeroDivisor)
	}
	return v.Divide(b), nil
}

// Neg is a free function because it needs a narrower scalar bound than the
// Vec4 methods, and Go methods cannot tighten a type parameter.
func Neg[T SignedNumber](v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
		W: -v.W,
	}
}

// Equals uses T's own equality, so a NaN field makes a tuple unequal to
// itself.
func (v *Vec4[T]) Equals(b Vec4[T]) bool {
	return (v.X == b.X) && (v.Y == b.Y) && (v.Z == b.Z) && (v.W == b.W)
}

func (v *Vec4[T]) NotEquals(b Vec4[T]) bool {
	return (v.X != b.X) || (v.Y != b.Y) || (v.Z != b.Z) || (v.W != b.W)
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
