//go:build !linux

package loghandler

import "runtime"

// lockOSThread pins the calling goroutine to its current OS thread.
func lockOSThread() {
	runtime.LockOSThread()
}

// currentTID is a best-effort diagnostic only available on Linux
// (spec.md §12); elsewhere it's always zero.
func currentTID() int32 {
	return 0
}
