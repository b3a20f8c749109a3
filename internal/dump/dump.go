// Package dump renders byte buffers in the classic offset/hex/ASCII layout.
package dump

import (
	"fmt"
	"io"
	"strings"
)

const rowLen = 16

// Write renders data to w, 16 bytes per row. Offsets in the left column
// start at base, so a dump of a file slice can show real file positions.
func Write(w io.Writer, data []byte, base int64) error {
	for i := 0; i < len(data); i += rowLen {
		row := data[i:min(i+rowLen, len(data))]
		if _, err := fmt.Fprintln(w, formatRow(base+int64(i), row)); err != nil {
			return err
		}
	}
	return nil
}

func formatRow(off int64, row []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08X  ", off)
	for j := 0; j < rowLen; j++ {
		if j == rowLen/2 {
			b.WriteByte(' ')
		}
		if j < len(row) {
			fmt.Fprintf(&b, "%02X ", row[j])
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString(" |")
	for _, c := range row {
		if c >= 0x20 && c <= 0x7E {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteByte('|')
	return b.String()
}
