// Package scan locates byte patterns inside loaded file buffers.
package scan

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// Find returns the offset of every occurrence of needle in data, in order.
// Overlapping occurrences are all reported. An empty needle matches nothing.
func Find(data, needle []byte) []int64 {
	if len(needle) == 0 || len(needle) > len(data) {
		return nil
	}
	var offs []int64
	i := 0
	for {
		j := bytes.Index(data[i:], needle)
		if j < 0 {
			return offs
		}
		offs = append(offs, int64(i+j))
		i += j + 1
	}
}

// UTF16LE widens a UTF-8 needle to UTF-16 little endian, the string
// encoding common in PE binaries and registry data.
func UTF16LE(needle []byte) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	return enc.Bytes(needle)
}
