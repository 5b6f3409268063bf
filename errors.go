package loghandler

import "errors"

// Sentinel errors returned by the root package. Callers should use
// errors.Is against these, not string comparison — the accumulated error
// returned by Worker.Run is typically a Chain wrapping one or more of these.
var (
	// ErrDescriptorNil is returned by New when given a Descriptor with no
	// Name, Init, ProcessLog or ProcessExit.
	ErrDescriptorNil = errors.New("loghandler: descriptor must not be nil")

	// ErrParamNil is returned by New when given a nil Param.
	ErrParamNil = errors.New("loghandler: param must not be nil")

	// ErrAlreadyRunning is returned by Run if the worker has already been
	// started once. A Worker is single-use, mirroring the one-thread-per-
	// handler model of the source material.
	ErrAlreadyRunning = errors.New("loghandler: worker already running")

	// ErrProtocolViolation is chained when the control endpoint's first
	// message is not READY_CTRL_MSG_REQ. It is always fatal (spec.md §7).
	ErrProtocolViolation = errors.New("loghandler: control protocol violation")

	// ErrHandshakeFailed is chained when a send/receive during the readiness
	// handshake fails. Always fatal — the controller would otherwise block
	// forever waiting for a reply that will never arrive.
	ErrHandshakeFailed = errors.New("loghandler: readiness handshake failed")

	// ErrIErrBudgetExceeded is chained into the accumulated external error
	// when IErrMax internal errors have survived ProcessIErr. See the Open
	// Question resolution in DESIGN.md.
	ErrIErrBudgetExceeded = errors.New("loghandler: internal error budget exceeded")

	// ErrTransportClosed names the "operation after the socket was
	// destroyed" condition. Package transport does not return it; its own
	// closed-endpoint sentinel is transport.ErrClosed.
	ErrTransportClosed = errors.New("loghandler: transport closed")

	// ErrWouldBlock names the "no message currently available" outcome of a
	// non-blocking receive. Package transport does not return it; the loop
	// checks for transport.ErrWouldBlock instead and treats it as "nothing
	// to do this iteration" (spec.md §4.4, §5).
	ErrWouldBlock = errors.New("loghandler: would block")

	// ErrHWMExceeded names the "send would exceed the high-water-mark"
	// condition. Package transport does not return it; a full data endpoint
	// is reported to the dialer as transport.ErrHWM.
	ErrHWMExceeded = errors.New("loghandler: high-water-mark exceeded")

	// ErrUnknownCommand is the (non-fatal) error reported for a control
	// frame that isn't READY/FLUSH/EXIT.
	ErrUnknownCommand = errors.New("loghandler: unknown control command")
)

// loopExitCode names the source material's HANDLER_EXIT_CODE convention
// described in spec.md §4.7 and §9. A Chain's LoopExit variant is marked by
// its own flag rather than by this code (its Code() is ""); it signals the
// event loop to stop, not a real failure, and ProcessIErr sees only its
// inner error (if any).
const loopExitCode = "HANDLER_EXIT"
