package header

import "errors"

// Sentinel errors for recoverable input problems. Contract violations such
// as out-of-range bit indices or narrowing to the wrong schema panic instead.
var (
	ErrInvalidSchema = errors.New("hdrkit: invalid schema")
	ErrSizeMismatch  = errors.New("hdrkit: size mismatch")
	ErrUnknownField  = errors.New("hdrkit: unknown field")
	ErrFieldTooWide  = errors.New("hdrkit: field wider than 64 bits")
	ErrUnknownSchema = errors.New("hdrkit: unknown schema")
)
