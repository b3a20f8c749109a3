// Package buf provides bounds arithmetic for byte-buffer mutation.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// ClampSpan resolves the writable span for placing n bytes at off within a
// buffer of bufLen bytes. The span must start in bounds: a negative off or
// one at/past bufLen yields ok = false, not a partial span. The end is
// clamped to bufLen, so end-start may be less than n.
func ClampSpan(bufLen int, off int64, n int) (start, end int, ok bool) {
	if off < 0 || off >= int64(bufLen) || n < 0 {
		return 0, 0, false
	}
	start = int(off)
	end, addOK := AddOverflowSafe(start, n)
	if !addOK || end > bufLen {
		end = bufLen
	}
	return start, end, true
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
