// Package stamp captures file access/modification timestamps and replicates
// them onto another file.
package stamp

import (
	"os"
	"time"
)

// Times holds a file's access and modification timestamps at nanosecond
// resolution. How much of that resolution survives Apply depends on the
// destination filesystem.
type Times struct {
	Access time.Time
	Mod    time.Time
}

// FromFileInfo extracts both timestamps from fi. The access time comes from
// platform stat data where available; otherwise it falls back to the
// modification time.
func FromFileInfo(fi os.FileInfo) Times {
	return Times{
		Access: accessTime(fi),
		Mod:    fi.ModTime(),
	}
}

// Apply sets both timestamps on the file at path.
func (t Times) Apply(path string) error {
	return applyTimes(path, t)
}
