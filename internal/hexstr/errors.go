package hexstr

import "errors"

var (
	// ErrOddLength means the input has an odd number of hex digits.
	ErrOddLength = errors.New("hexstr: odd number of hex digits")

	// ErrInvalidDigit means a character outside [0-9A-Fa-f] was found.
	ErrInvalidDigit = errors.New("hexstr: invalid hex digit")
)
