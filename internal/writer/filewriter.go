// Package writer exposes the destination sink for patched output.
package writer

import (
	"fmt"
	"os"
)

// FileWriter writes a finished buffer to a filesystem path, creating or
// truncating the file. The write is direct, not temp-file-and-rename:
// timestamps are stamped onto the destination after it is closed, and a
// failed run is allowed to leave a partial file behind.
type FileWriter struct {
	Path string
}

// Write stores buf in full at the configured path.
func (w *FileWriter) Write(buf []byte) error {
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.Path, err)
	}

	n, err := f.Write(buf)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", w.Path, err)
	}
	if n != len(buf) {
		_ = f.Close()
		return fmt.Errorf("write %s: short write (%d of %d bytes)", w.Path, n, len(buf))
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync %s: %w", w.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.Path, err)
	}
	return nil
}
