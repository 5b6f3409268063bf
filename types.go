package loghandler

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Level orders log severities from most restrictive (LevelOff) to most
// verbose (LevelTrace). A record passes a filter when record.Level <=
// filter.Level — lower values are more severe and harder to filter out.
type Level uint8

const (
	// LevelOff rejects every record. It is the zero value and the filter
	// evaluator's starting value, so an empty filter list passes nothing.
	LevelOff Level = iota
	LevelPanic
	LevelError
	LevelWarning
	LevelNotice
	LevelInfo
	LevelDebug
	LevelTrace
)

// String renders the level the way the worker's own diagnostic logging does.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelPanic:
		return "panic"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNotice:
		return "notice"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// Filter is a (prefix, level) pair. An ordered list of Filters is scanned in
// full on every record; the last entry whose Prefix is a prefix of the
// record's LoggerName wins (see Evaluate in filter.go).
type Filter struct {
	Prefix string
	Level  Level
}

// PollItem pairs an extra pollable resource a sink wants serviced by the
// event loop with the callback invoked when it becomes ready. The source
// material's parallel private_items[]/cbs[] arrays are collapsed into one
// slice of pairs per the design notes in spec.md §9.
type PollItem struct {
	// Ready reports whether the underlying resource currently has data
	// available. The event loop calls it once per iteration, after
	// servicing the control and data transports.
	Ready func() bool
	// Callback is invoked once per loop iteration where Ready returned true.
	Callback func() error
}

// Record is a single log record received from a producer: a fixed header
// plus four variable-length strings, in order: Filename, Funcname,
// LoggerName, LogMessage. See record.go for the demarshaller that builds one
// of these from the transport's raw payload.
type Record struct {
	Level      Level
	PID        int32
	TID        int32
	Filename   string
	Funcname   string
	Line       int32
	LoggerName string
	LogMessage string
}

// Checksum returns a blake2b-256 digest of the record's level and
// variable-length content. The wire format trusts the producer and performs
// no validation, but a cheap digest gives sinks that need a stable
// dedup/idempotency key one without re-deriving it from the raw bytes. None
// of the sinks in package sinks uses it.
func (r Record) Checksum() [32]byte {
	buf := make([]byte, 0, len(r.Filename)+len(r.Funcname)+len(r.LoggerName)+len(r.LogMessage)+1)
	buf = append(buf, byte(r.Level))
	buf = append(buf, r.Filename...)
	buf = append(buf, r.Funcname...)
	buf = append(buf, r.LoggerName...)
	buf = append(buf, r.LogMessage...)
	return blake2b.Sum256(buf)
}
