package loghandler

import (
	"github.com/dmitrymomot/loghandler/transport"
)

// Control protocol frames, the Go rendition of the source material's
// READY/FLUSH/EXIT control message constants (spec.md §4.2, §4.7).
const (
	ReadyCtrlMsgReq = "READY_REQ"
	ReadyCtrlMsgRep = "READY_REP"
	FlushCtrlMsgReq = "FLUSH_REQ"
	FlushCtrlMsgRep = "FLUSH_REP"
	ExitCtrlMsgReq  = "EXIT_REQ"
	ExitCtrlMsgRep  = "EXIT_REP"
)

// rankFrame renders rank as its wire representation, the second frame of
// every control reply (spec.md §4.2).
func rankFrame(rank int32) []byte {
	return []byte{byte(rank), byte(rank >> 8), byte(rank >> 16), byte(rank >> 24)}
}

// handshake performs the readiness handshake (spec.md §4.2): block on the
// first control request; if it isn't ReadyCtrlMsgReq, the handshake itself
// still replies (mirroring the source material's "always reply, even on a
// protocol violation, so the controller never blocks forever") and returns
// a fatal ErrProtocolViolation. On success, it replies READY_REP plus rank
// and returns OK.
func handshake(ctrl transport.ControlBinding, rank int32) Chain {
	req, err := ctrl.RecvRequest()
	if err != nil {
		return Wrap("HANDSHAKE_RECV_ERR", err).withCause(ErrHandshakeFailed)
	}
	if req != ReadyCtrlMsgReq {
		_ = ctrl.Reply([]byte(req), rankFrame(rank))
		return Wrap("HANDSHAKE_PROTOCOL_ERR", ErrProtocolViolation)
	}
	if err := ctrl.Reply([]byte(ReadyCtrlMsgRep), rankFrame(rank)); err != nil {
		return Wrap("HANDSHAKE_REPLY_ERR", err).withCause(ErrHandshakeFailed)
	}
	return OK()
}

// withCause returns c with cause set to err, used by handshake to surface
// the relevant sentinel alongside the underlying transport error.
func (c Chain) withCause(err error) Chain {
	c.cause = err
	return c
}

// handleControl services one pending control command, if any (spec.md
// §4.5 step 6a, §4.7). It returns OK when there was nothing to do
// (ErrWouldBlock from RecvCommand is not a failure), a LoopExit Chain on
// EXIT, and a non-fatal Chain wrapping ErrUnknownCommand for anything else.
func handleControl(ctrl transport.ControlBinding, desc Descriptor, param *Param) Chain {
	cmd, err := ctrl.RecvCommand()
	if err != nil {
		if err == transport.ErrWouldBlock {
			return OK()
		}
		return Wrap("CONTROL_RECV_ERR", err)
	}

	switch cmd {
	case ReadyCtrlMsgReq:
		if err := ctrl.Reply([]byte(ReadyCtrlMsgRep), rankFrame(param.Rank)); err != nil {
			return Wrap("CONTROL_REPLY_ERR", err)
		}
		return OK()

	case FlushCtrlMsgReq:
		flushErr := desc.callExplicitFlush(param)
		if err := ctrl.Reply([]byte(FlushCtrlMsgRep), rankFrame(param.Rank)); err != nil {
			return Append(flushErr, Wrap("CONTROL_REPLY_ERR", err))
		}
		return flushErr

	case ExitCtrlMsgReq:
		flushErr := desc.callImplicitFlush(param)
		if err := ctrl.Reply([]byte(ExitCtrlMsgRep), rankFrame(param.Rank)); err != nil {
			AppendInto(&flushErr, Wrap("CONTROL_REPLY_ERR", err))
		}
		return NewLoopExit(flushErr.AsError())

	default:
		return Wrap("CONTROL_UNKNOWN_CMD", ErrUnknownCommand)
	}
}
