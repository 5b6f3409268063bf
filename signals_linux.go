//go:build linux

package loghandler

import (
	"runtime"
	"syscall"
)

// lockOSThread pins the calling goroutine to its current OS thread, the
// portable half of the source material's per-thread setup (spec.md §4.8).
func lockOSThread() {
	runtime.LockOSThread()
}

// currentTID captures the kernel thread id for the "tid" attribute of the
// worker's "handler starting" log line (spec.md §12, supplemented from the
// source material's use of bxilog_gettid). Only meaningful once lockOSThread has pinned the
// goroutine; on other platforms this diagnostic is simply zero.
func currentTID() int32 {
	return int32(syscall.Gettid())
}
