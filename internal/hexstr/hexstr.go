// Package hexstr decodes strict hexadecimal payloads.
//
// Unlike encoding/hex, the input is taken as a mutable byte slice so that
// callers holding sensitive digits can zero them after decoding, and errors
// carry the offending position.
package hexstr

import "fmt"

// Decode converts pairs of hex digits into bytes, high nibble first.
// The input must consist solely of hex digits; no whitespace, separators,
// or 0x prefix. The returned slice is freshly allocated and len(src)/2 long.
func Decode(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(src)/2)
	for i := 0; i < len(out); i++ {
		hi, ok := nibble(src[i*2])
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidDigit, src[i*2], i*2)
		}
		lo, ok := nibble(src[i*2+1])
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidDigit, src[i*2+1], i*2+1)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// Encode renders b as lowercase hex digits.
func Encode(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = digits[v>>4]
		out[i*2+1] = digits[v&0x0f]
	}
	return string(out)
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
