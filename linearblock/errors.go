package linearblock

import "errors"

// ErrDimensionMismatch is returned when the parity check and generator matrices have different block lengths.
var ErrDimensionMismatch = errors.New("linearblock: dimension mismatch")

// ErrInconsistentCode is returned when a requested consistency check finds G*H.T != 0.
var ErrInconsistentCode = errors.New("linearblock: inconsistent code")

// ErrEmptyCode is returned when the minimal distance of a code containing only the zero word is requested.
var ErrEmptyCode = errors.New("linearblock: no nonzero codeword")

// ErrTimeout is returned when the minimal distance search is stopped by its context.
var ErrTimeout = errors.New("linearblock: timeout")

// ErrInvalidLength is returned when a code of non-positive length is requested.
var ErrInvalidLength = errors.New("linearblock: invalid length")

// ErrMissingMatrix is returned when a code is constructed without any matrix.
var ErrMissingMatrix = errors.New("linearblock: parity check or generator matrix required")
