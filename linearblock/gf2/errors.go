package gf2

import "errors"

// ErrInvalidIndex is returned when a bit position is outside of [0, length).
var ErrInvalidIndex = errors.New("gf2: invalid index")

// ErrLengthMismatch is returned when operand lengths are incompatible with an operation.
var ErrLengthMismatch = errors.New("gf2: length mismatch")
