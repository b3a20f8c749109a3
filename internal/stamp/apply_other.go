//go:build !unix

package stamp

import "os"

func applyTimes(path string, t Times) error {
	return os.Chtimes(path, t.Access, t.Mod)
}
