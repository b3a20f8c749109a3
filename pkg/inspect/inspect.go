// Package inspect provides read-only views of binary files: hexdumps and
// byte-pattern searches. Files are loaded whole, matching the in-memory
// model of the patch pipeline.
package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/hexpatch/hexedit/internal/buf"
	"github.com/hexpatch/hexedit/internal/dump"
	"github.com/hexpatch/hexedit/internal/hexstr"
	"github.com/hexpatch/hexedit/internal/scan"
)

// Region loads the file at path and returns the slice [off, off+n).
// n <= 0 means through end of file. Offsets outside the file yield an empty
// region, mirroring the patch engine's permissive bounds policy.
func Region(path string, off, n int64) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = int64(len(data))
	}
	count := int(min(n, int64(len(data))))
	start, end, ok := buf.ClampSpan(len(data), off, count)
	if !ok {
		return nil, nil
	}
	return data[start:end], nil
}

// Dump writes a hexdump of the file region [off, off+n) to w, with the left
// column showing real file offsets.
func Dump(w io.Writer, path string, off, n int64) error {
	region, err := Region(path, off, n)
	if err != nil {
		return err
	}
	base := off
	if base < 0 {
		base = 0
	}
	return dump.Write(w, region, base)
}

// FindHex reports the offsets of every occurrence of the hex-encoded byte
// pattern in the file at path.
func FindHex(path, pattern string) ([]int64, error) {
	needle, err := hexstr.Decode([]byte(pattern))
	if err != nil {
		return nil, fmt.Errorf("decode pattern: %w", err)
	}
	if len(needle) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return scan.Find(data, needle), nil
}

// FindText reports the offsets of a text needle in the file at path. With
// widenUTF16 set, the needle is searched in its UTF-16LE encoding instead,
// the string layout common in PE binaries.
func FindText(path, text string, widenUTF16 bool) ([]int64, error) {
	if text == "" {
		return nil, fmt.Errorf("empty needle")
	}
	needle := []byte(text)
	if widenUTF16 {
		var err error
		needle, err = scan.UTF16LE(needle)
		if err != nil {
			return nil, fmt.Errorf("encode needle: %w", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return scan.Find(data, needle), nil
}
