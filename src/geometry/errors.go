package geometry

import "errors"

// ErrZeroDivisor is reported by DivideStrict when any divisor field holds the
// scalar type's zero. Plain Divide never reports it; that one inherits the
// scalar's own division behavior.
var ErrZeroDivisor = errors.New("zero divisor")
