// Package patch overwrites a bounded span of a byte buffer in place.
package patch

import "github.com/hexpatch/hexedit/internal/buf"

// Apply copies payload into dst starting at pos and returns the number of
// bytes written. Offsets outside [0, len(dst)) make the whole call a no-op;
// a payload running past the end of dst is truncated there. dst is never
// grown, and no byte outside the resolved span is touched.
func Apply(dst []byte, pos int64, payload []byte) int {
	start, end, ok := buf.ClampSpan(len(dst), pos, len(payload))
	if !ok {
		return 0
	}
	return copy(dst[start:end], payload)
}
