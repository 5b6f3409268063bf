package loghandler

import (
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/loghandler/transport"
)

// Worker drives a single Descriptor through its full lifecycle: bind
// transport endpoints, perform the readiness handshake, run the event loop
// until EXIT (or an unrecoverable internal error), flush and tear down, and
// invoke ProcessExit — the Go rendition of the source material's
// bxilog_handler_thread_run (spec.md §4.1). A Worker is single-use: Run
// returns ErrAlreadyRunning on a second call.
type Worker struct {
	desc    Descriptor
	param   *Param
	started atomic.Bool
}

// New validates desc and param and returns a Worker ready to Run. Neither
// argument may be nil or missing a Registry (spec.md §2, §4.1).
func New(desc Descriptor, param *Param) (*Worker, error) {
	if desc.Name == "" && desc.Init == nil && desc.ProcessLog == nil && desc.ProcessExit == nil {
		return nil, ErrDescriptorNil
	}
	if param == nil {
		return nil, ErrParamNil
	}
	if param.Registry == nil {
		return nil, ErrParamNil
	}
	if param.Logger == nil {
		param.Logger = slog.New(slog.NewTextHandler(discardWriter{}, nil))
	}
	if param.signalMask == nil {
		param.signalMask = defaultSignalMask
	}
	param.FlushFreq = clampFlushFreq(param.FlushFreq)
	return &Worker{desc: desc, param: param}, nil
}

// Run executes the full lifecycle and returns the accumulated external
// error, or nil on a clean EXIT with no internal errors along the way
// (spec.md §4.1 steps 1-10):
//
//  1. bind the control and data transport endpoints;
//  2. perform the readiness handshake;
//  3. call Init;
//  4. run the event loop until EXIT or an IErrMax overrun;
//  5. destroy the data socket, then the control socket (spec.md §12);
//  6. call ProcessExit, chaining its result into the accumulated error;
//  7. return the final accumulated error.
func (w *Worker) Run() error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	desc, param := w.desc, w.param
	acc := OK()

	lockOSThread()
	if err := param.signalMask(); err != nil {
		AppendInto(&acc, Wrap("SIGNAL_MASK_ERR", err))
		return acc.AsError()
	}

	ctrl, err := param.Registry.BindControl(param.CtrlURL, param.CtrlHWM)
	if err != nil {
		AppendInto(&acc, Wrap("BIND_CTRL_ERR", err))
		return acc.AsError()
	}

	data, err := param.Registry.BindData(param.DataURL, rankIdentity(param.Rank), param.DataHWM)
	if err != nil {
		AppendInto(&acc, Wrap("BIND_DATA_ERR", err))
		_ = ctrl.Close()
		return acc.AsError()
	}

	param.Logger.Info("handler starting",
		slog.String("name", desc.Name),
		slog.Int("rank", int(param.Rank)),
		slog.Int("tid", int(currentTID())),
	)

	if hs := handshake(ctrl, param.Rank); !hs.IsOK() {
		AppendInto(&acc, hs)
		w.teardown(ctrl, data, desc, param, &acc)
		return acc.AsError()
	}

	if initErr := desc.callInit(param); !initErr.IsOK() {
		AppendInto(&acc, initErr)
		w.teardown(ctrl, data, desc, param, &acc)
		return acc.AsError()
	}

	loopErr := runLoop(ctrl, data, desc, param)
	AppendInto(&acc, loopErr)

	w.teardown(ctrl, data, desc, param, &acc)

	param.Logger.Info("handler stopped", slog.String("name", desc.Name), slog.Int("rank", int(param.Rank)))

	return acc.AsError()
}

// teardown destroys the data socket before the control socket (spec.md §12
// — "cleanup order data-then-control", following the source material) and
// invokes ProcessExit, folding any cleanup error into acc.
func (w *Worker) teardown(ctrl transport.ControlBinding, data transport.DataBinding, desc Descriptor, param *Param, acc *Chain) {
	if err := data.Close(); err != nil {
		AppendInto(acc, Wrap("CLOSE_DATA_ERR", err))
	}
	if err := ctrl.Close(); err != nil {
		AppendInto(acc, Wrap("CLOSE_CTRL_ERR", err))
	}
	AppendInto(acc, desc.callExit(param))
}

// rankIdentity renders rank as the data endpoint's binding identity.
func rankIdentity(rank int32) []byte {
	return rankFrame(rank)
}
