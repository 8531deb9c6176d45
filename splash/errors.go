package splash

import "errors"

// Errors returned by identifier calculation and parsing.
var (
	ErrInvalidInput       = errors.New("splash: invalid input")
	ErrDegenerateSpectrum = errors.New("splash: degenerate spectrum")
	ErrIndexOverflow      = errors.New("splash: histogram index out of range")
	ErrMalformedID        = errors.New("splash: malformed identifier")
)
