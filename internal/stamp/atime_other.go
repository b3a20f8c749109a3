//go:build !linux && !darwin && !freebsd

package stamp

import (
	"os"
	"time"
)

// No portable access time in os.FileInfo; use mtime as the best stand-in.
func accessTime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
