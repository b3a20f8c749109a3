// Package secure handles sensitive in-memory buffers: explicit zeroing and
// a scoped buffer type that guarantees zero-fill on release.
package secure

import "runtime"

// Zero overwrites b with zero bytes. The runtime.KeepAlive barrier keeps the
// stores observable so the compiler cannot drop them as dead writes while
// the slice goes out of scope.
//
// Best effort only: the runtime may already have copied the backing array
// (GC moves, slice growth) before this runs.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
