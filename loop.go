package loghandler

import (
	"time"

	"github.com/dmitrymomot/loghandler/transport"
)

// pollInterval bounds how long the loop sleeps after an iteration in which
// no record arrived on the data socket. The source material parks on a real
// poll() with a computed timeout; channels without a native multi-wait
// primitive across arbitrary collaborator-defined bindings make a short
// fixed tick the idiomatic Go substitute (spec.md §4.5, §9 design notes).
const pollInterval = time.Millisecond

// runLoop is the event loop (spec.md §4.5): each iteration services the
// control socket, then the data socket, then any private items, in that
// fixed order, and performs an implicit flush once FlushFreq has elapsed
// since the last implicit flush (a FLUSH request does not restart that
// interval). It returns the accumulated
// external error once an EXIT command or an unrecoverable internal-error
// budget overrun ends the loop.
func runLoop(ctrl transport.ControlBinding, data transport.DataBinding, desc Descriptor, param *Param) Chain {
	acc := OK()
	lastFlush := time.Now()
	ierrCount := 0

	raise := func(ierr Chain) (shouldExit bool, exitErr Chain) {
		handled := desc.callIErr(ierr, param)
		if handled.IsOK() {
			return false, Chain{}
		}
		if handled.IsLoopExit() {
			return true, handled
		}
		AppendInto(&acc, handled)
		ierrCount++
		if ierrCount >= param.IErrMax {
			AppendInto(&acc, desc.callImplicitFlush(param))
			AppendInto(&acc, Wrap("IERR_BUDGET", ErrIErrBudgetExceeded))
			return true, acc
		}
		return false, Chain{}
	}

	for {
		ctrlResult := handleControl(ctrl, desc, param)
		if ctrlResult.IsLoopExit() {
			if inner := ctrlResult.LoopExitInner(); inner != nil {
				AppendInto(&acc, desc.callIErr(Wrap("EXIT", inner), param))
			}
			return acc
		}
		if !ctrlResult.IsOK() {
			if exit, exitErr := raise(ctrlResult); exit {
				if exitErr.IsLoopExit() {
					AppendInto(&acc, Wrap("EXIT", exitErr.LoopExitInner()))
				}
				return acc
			}
		}

		payload, err := data.Recv()
		switch {
		case err == nil:
			record, decodeErr := DecodeRecord(payload)
			if decodeErr != nil {
				if exit, exitErr := raise(Wrap("RECORD_DECODE_ERR", decodeErr)); exit {
					_ = exitErr
					return acc
				}
			} else if Accepts(record, param.Filters) {
				if procErr := desc.callProcessLog(record, param); procErr != nil {
					if exit, exitErr := raise(Wrap("PROCESS_LOG_ERR", procErr)); exit {
						_ = exitErr
						return acc
					}
				}
			}
		case err == transport.ErrWouldBlock:
			// nothing queued this tick
		default:
			if exit, exitErr := raise(Wrap("DATA_RECV_ERR", err)); exit {
				_ = exitErr
				return acc
			}
		}

		for _, item := range param.PrivateItems {
			if item.Ready == nil || !item.Ready() {
				continue
			}
			if item.Callback == nil {
				continue
			}
			if cbErr := item.Callback(); cbErr != nil {
				if exit, exitErr := raise(Wrap("PRIVATE_ITEM_ERR", cbErr)); exit {
					_ = exitErr
					return acc
				}
			}
		}

		flushDeadline := clampFlushFreq(param.FlushFreq)
		if time.Since(lastFlush) >= flushDeadline {
			flushErr := desc.callImplicitFlush(param)
			lastFlush = time.Now()
			if !flushErr.IsOK() {
				if exit, exitErr := raise(flushErr); exit {
					_ = exitErr
					return acc
				}
			}
		}

		if err != nil {
			time.Sleep(pollInterval)
		}
	}
}
