// Package memzero clears sensitive buffers.
package memzero

import "runtime"

// Zero overwrites b with zeros. It is best-effort: copies made by the
// runtime or by earlier appends are not reached.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}
