//go:build unix

package stamp

import "golang.org/x/sys/unix"

// applyTimes sets atime and mtime with nanosecond precision via utimensat.
func applyTimes(path string, t Times) error {
	ts := []unix.Timespec{
		unix.NsecToTimespec(t.Access.UnixNano()),
		unix.NsecToTimespec(t.Mod.UnixNano()),
	}
	return unix.UtimesNano(path, ts)
}
