package loghandler

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/loghandler/transport"
)

// Default tuning values, carried over from the source material's
// bxilog_handler_init_param (spec.md §12) and the table in spec.md §3.
const (
	DefaultDataHWM      = 1000
	DefaultCtrlHWM      = 1000
	DefaultFlushFreq    = time.Second
	DefaultIErrMax      = 10
	minFlushFreq        = time.Millisecond
)

// Param is the per-worker configuration block a Descriptor's callbacks
// receive on every invocation, mirroring the source material's
// bxilog_handler_param_s: tunables plus the bindings the loop polls (spec.md
// §3). Sink authors may embed it or read it directly; loghandler does not
// mutate the fields callbacks own (everything below CtrlURL/DataURL),
// except that New fills in a nil Logger and a nil signal-mask hook.
type Param struct {
	// Rank is this worker's identity frame on the data endpoint and the
	// second reply frame of the readiness handshake (spec.md §3, §4.2).
	Rank int32

	// DataHWM and CtrlHWM bound how many records/control requests their
	// respective endpoints will queue before a send is rejected.
	DataHWM int
	CtrlHWM int

	// FlushFreq is the implicit-flush cadence (spec.md §4.5, §4.6). New and
	// WithFlushFreq replace a zero or negative value with minFlushFreq — a
	// zero value would otherwise starve the loop in a busy-poll, per the
	// Open Question resolution in DESIGN.md. Positive values are kept as
	// given.
	FlushFreq time.Duration

	// IErrMax is the number of internal errors ProcessIErr may let through
	// before the loop aborts with ErrIErrBudgetExceeded (spec.md §7,
	// Open Question decided in DESIGN.md).
	IErrMax int

	// CtrlURL and DataURL are this worker's transport endpoints, derived by
	// DefaultParam from Descriptor.Name plus a random suffix so repeated
	// runs never collide (spec.md §3's Open Question on URL uniqueness,
	// resolved via google/uuid rather than pointer identity).
	CtrlURL string
	DataURL string

	// Filters is the ordered list evaluated by the filter evaluator
	// (spec.md §4.3): last matching prefix wins.
	Filters []Filter

	// PrivateItems are extra poll items a sink can register alongside the
	// control/data sockets (spec.md §4.5's private_items array), e.g. a
	// flush timer for a sink with its own batching.
	PrivateItems []PollItem

	// Logger receives structured diagnostics for the lifecycle and loop.
	// Never nil after DefaultParam or New; defaults to a discarding logger.
	Logger *slog.Logger

	// Registry resolves CtrlURL/DataURL to transport bindings.
	Registry transport.Registry

	// signalMask runs once at worker startup, before the readiness
	// handshake (spec.md §4.8). Set via WithSignalMask; defaults to
	// defaultSignalMask.
	signalMask SignalMaskFunc
}

// DefaultParam builds a Param with the tunables from spec.md §3's defaults
// table, unique transport URLs derived from name, and a discarding logger.
// name is typically the Descriptor's Name field; reg is the transport used
// to bind this worker's endpoints (usually shared with a bus controller).
func DefaultParam(name string, reg transport.Registry) *Param {
	id := uuid.NewString()
	return &Param{
		DataHWM:   DefaultDataHWM,
		CtrlHWM:   DefaultCtrlHWM,
		FlushFreq: DefaultFlushFreq,
		IErrMax:   DefaultIErrMax,
		CtrlURL:   "inproc://" + name + "/" + id + ".ctrl",
		DataURL:   "inproc://" + name + "/" + id + ".data",
		Logger:     slog.New(slog.NewTextHandler(discardWriter{}, nil)),
		Registry:   reg,
		signalMask: defaultSignalMask,
	}
}

// discardWriter is an io.Writer that drops everything written to it — used
// in place of io.Discard directly so Param's zero-value-adjacent default
// logger has no import-time surprises for callers inspecting its Handler.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// clampFlushFreq returns d, or minFlushFreq if d is non-positive.
func clampFlushFreq(d time.Duration) time.Duration {
	if d <= 0 {
		return minFlushFreq
	}
	return d
}
