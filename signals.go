package loghandler

// SignalMaskFunc is invoked once, right after a worker's goroutine is
// pinned to its OS thread, before the readiness handshake (spec.md §4.8).
// The source material blocks the usual delivery signals on the handler's
// dedicated pthread so they're only ever handled on the main thread; Go's
// runtime multiplexes goroutines across OS threads and has no portable,
// per-thread POSIX sigprocmask short of golang.org/x/sys/unix, which isn't
// a direct dependency here (DESIGN.md's Open Question decision). Callers
// that need the real guarantee supply their own SignalMaskFunc (typically
// backed by x/sys/unix.PthreadSigmask) via WithSignalMask; the default is a
// no-op plus LockOSThread, which at least prevents the goroutine from
// migrating mid-run.
type SignalMaskFunc func() error

// WithSignalMask overrides the signal-masking hook run at worker startup.
func WithSignalMask(fn SignalMaskFunc) Option {
	return func(p *Param) {
		if fn != nil {
			p.signalMask = fn
		}
	}
}

func defaultSignalMask() error {
	lockOSThread()
	return nil
}
