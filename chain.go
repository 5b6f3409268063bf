package loghandler

import (
	"errors"
	"fmt"
)

// Chain is the worker's own error model: Ok, or a cause chain carrying a
// code and message, or the LoopExit sentinel used to signal the event loop
// to stop without that signal being mistaken for a real failure (spec.md
// §4.7, §9). It implements the error interface so a non-OK Chain can be
// returned anywhere a plain error is expected, and Unwrap so errors.Is/As
// can see through to a wrapped cause.
type Chain struct {
	ok       bool
	code     string
	msg      string
	cause    error
	loopExit bool
	inner    error
}

// OK returns the non-error Chain value.
func OK() Chain { return Chain{ok: true} }

// NewErr builds a Chain carrying a code and message with no cause.
func NewErr(code, msg string) Chain { return Chain{code: code, msg: msg} }

// NewErrf is NewErr with fmt.Sprintf-style formatting of msg.
func NewErrf(code, format string, args ...any) Chain {
	return NewErr(code, fmt.Sprintf(format, args...))
}

// Wrap builds a Chain around an existing error, preserving it as the cause
// so errors.Is/errors.As can still reach it.
func Wrap(code string, err error) Chain {
	if err == nil {
		return OK()
	}
	return Chain{code: code, msg: err.Error(), cause: err}
}

// NewLoopExit builds the dedicated loop-exit signal described in spec.md
// §4.7/§9: not a real error, a unidirectional "stop the event loop" signal
// that may carry a real error, which the loop unwraps and hands to
// ProcessIErr.
func NewLoopExit(inner error) Chain {
	return Chain{loopExit: true, inner: inner}
}

// IsOK reports whether c carries no error.
func (c Chain) IsOK() bool { return c.ok }

// IsLoopExit reports whether c is the loop-exit sentinel.
func (c Chain) IsLoopExit() bool { return c.loopExit }

// LoopExitInner returns the real error (possibly nil) carried by a LoopExit
// Chain. It is meaningless when IsLoopExit is false.
func (c Chain) LoopExitInner() error { return c.inner }

// Code returns the chain's error code, or "" for Ok and LoopExit chains.
func (c Chain) Code() string { return c.code }

// Error implements the error interface.
func (c Chain) Error() string {
	switch {
	case c.ok:
		return ""
	case c.loopExit:
		if c.inner != nil {
			return "loop exit: " + c.inner.Error()
		}
		return "loop exit"
	case c.cause != nil:
		return fmt.Sprintf("%s: %s: %s", c.code, c.msg, c.cause.Error())
	default:
		return fmt.Sprintf("%s: %s", c.code, c.msg)
	}
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (c Chain) Unwrap() error { return c.cause }

// AsError returns nil for an Ok chain, and c itself (as an error) otherwise.
// Useful at a lifecycle boundary that must return a plain `error`.
func (c Chain) AsError() error {
	if c.ok {
		return nil
	}
	return c
}

// Append is the chain(accumulator, new_err) helper from spec.md §3/§9:
// if next carries an error, it becomes the new accumulator with acc
// attached as its cause (outermost-cause-wins); a cause next already
// carries is kept alongside acc, so errors.Is still reaches both; if next is
// Ok, acc is returned unchanged.
func Append(acc, next Chain) Chain {
	if next.ok {
		return acc
	}
	prev := acc.AsError()
	switch {
	case prev == nil:
	case next.cause == nil:
		next.cause = prev
	default:
		next.cause = errors.Join(next.cause, prev)
	}
	return next
}

// AppendInto is Append with the common mutate-in-place call shape, mirroring
// the source material's chain(&acc, new) macro more directly than the pure
// function does.
func AppendInto(acc *Chain, next Chain) {
	*acc = Append(*acc, next)
}
