// Package transport provides the in-process control/data "sockets" a
// loghandler.Worker binds to, and the client-side handles a bus controller
// (or a test harness) dials to drive them. It is a collaborator of the core
// package, not part of it (spec.md §1 lists "the message transport itself"
// as out of scope) — grounded on core/queue's storage.go unifying-interface
// pattern, here applied to transport endpoints instead of task repositories.
package transport

import "errors"

// ErrClosed is returned by a receive on an endpoint whose underlying channel
// has been closed.
var ErrClosed = errors.New("transport: closed")

// ErrWouldBlock is returned by non-blocking receives when nothing is
// currently available. Not a failure (spec.md §4.4, §5).
var ErrWouldBlock = errors.New("transport: would block")

// ErrHWM is returned by a send that would exceed the receiver's configured
// high-water-mark.
var ErrHWM = errors.New("transport: high-water-mark exceeded")

// ControlBinding is the worker-side handle for the control endpoint: REP
// semantics — strictly alternating receive then send (spec.md §3 invariants).
type ControlBinding interface {
	// RecvRequest blocks until a request frame arrives. It is the only
	// blocking receive anywhere in the system — the readiness handshake
	// (spec.md §4.2).
	RecvRequest() (string, error)

	// RecvCommand is the non-blocking counterpart used once per event-loop
	// iteration (spec.md §4.5 step 6a). Returns ErrWouldBlock when no
	// command is pending.
	RecvCommand() (string, error)

	// Reply sends a reply to the most recently received request. frames
	// holds one or two frames, in order; passing two frames mirrors the
	// source material's two-frame READY/error replies (spec.md §4.2).
	Reply(frames ...[]byte) error

	// Close marks the binding closed. The in-process implementation does
	// not reject operations made after Close, and the URL stays bound.
	Close() error
}

// DataBinding is the worker-side handle for the data endpoint: receive-only,
// DEALER semantics, identity = handler rank (spec.md §3, §6).
type DataBinding interface {
	// Recv is non-blocking. Returns ErrWouldBlock when no record is
	// currently queued.
	Recv() ([]byte, error)

	// Close releases the binding.
	Close() error
}

// ControlDial is the client-side handle a bus controller uses to drive a
// worker's control endpoint.
type ControlDial interface {
	// Send transmits a single-frame request.
	Send(frame string) error

	// Recv blocks until a reply is available and returns its frames.
	Recv() ([][]byte, error)

	Close() error
}

// DataDial is the client-side handle used to deliver records into a
// worker's data endpoint (normally driven by producers, stood in for here by
// test harnesses and the bus controller's smoke tests).
type DataDial interface {
	// Send enqueues a record payload. Returns ErrHWM if the receiver's
	// buffer is full (spec.md §5: "a full HWM is a fatal transport error"
	// from the worker's perspective; dialers see it as backpressure).
	Send(payload []byte) error

	Close() error
}

// Registry binds and dials named in-process endpoints, the way a message
// broker's addressing table would. URLs follow the
// "inproc://<handler-name>/<id>.ctrl" / "....data" convention from spec.md
// §3/§6.
type Registry interface {
	BindControl(url string, hwm int) (ControlBinding, error)
	BindData(url string, identity []byte, hwm int) (DataBinding, error)
	DialControl(url string) (ControlDial, error)
	DialData(url string) (DataDial, error)
}
