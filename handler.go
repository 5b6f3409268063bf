package loghandler

// Descriptor is the sink contract a Worker drives (spec.md §6). Every field
// is optional; a nil callback is a no-op, except ProcessIErr, whose absence
// means the worker keeps internal errors as-is (chains them into the
// accumulated external error without transformation). This mirrors the
// source material's "any callback may be NULL" contract directly, the way
// the design notes in spec.md §9 recommend, rather than hiding nilability
// behind an interface with default-empty methods.
type Descriptor struct {
	// Name identifies the handler kind, used to derive transport URLs.
	Name string

	// Init runs once, after the transport endpoints are bound and the
	// readiness handshake has replied READY_REP. A failing Init is therefore
	// not reported in the handshake reply; Run skips the loop, tears down and
	// returns its error.
	Init func(param *Param) error

	// ProcessLog runs once per record accepted by the filter evaluator.
	ProcessLog func(record Record, param *Param) error

	// ProcessImplicitFlush runs after every internal drain triggered by the
	// loop's own flush cadence, by an internal error, or by EXIT.
	ProcessImplicitFlush func(param *Param) error

	// ProcessExplicitFlush runs after the internal drain triggered by a
	// FLUSH control request, before the FLUSH reply is sent.
	ProcessExplicitFlush func(param *Param) error

	// ProcessExit runs once, after cleanup, with the final accumulated
	// error not yet returned to the caller.
	ProcessExit func(param *Param) error

	// ProcessIErr runs on every internal error raised inside the loop. It
	// may swallow the error (return OK()), transform it, or pass it through
	// unchanged. It never receives the LoopExit sentinel itself: on EXIT the
	// loop unwraps the sentinel and passes only the real error it carries
	// (if any) to ProcessIErr. Returning a LoopExit Chain from ProcessIErr
	// ends the loop.
	ProcessIErr func(err Chain, param *Param) Chain
}

// callInit invokes Init if present, translating a plain error into an
// external-error Chain.
func (d Descriptor) callInit(param *Param) Chain {
	if d.Init == nil {
		return OK()
	}
	return Wrap("INIT_ERR", d.Init(param))
}

// callProcessLog invokes ProcessLog if present; a nil callback means the
// record is simply dropped after passing the filter (spec.md §4.3).
func (d Descriptor) callProcessLog(record Record, param *Param) error {
	if d.ProcessLog == nil {
		return nil
	}
	return d.ProcessLog(record, param)
}

func (d Descriptor) callImplicitFlush(param *Param) Chain {
	if d.ProcessImplicitFlush == nil {
		return OK()
	}
	return Wrap("IMPLICIT_FLUSH_ERR", d.ProcessImplicitFlush(param))
}

func (d Descriptor) callExplicitFlush(param *Param) Chain {
	if d.ProcessExplicitFlush == nil {
		return OK()
	}
	return Wrap("EXPLICIT_FLUSH_ERR", d.ProcessExplicitFlush(param))
}

func (d Descriptor) callExit(param *Param) Chain {
	if d.ProcessExit == nil {
		return OK()
	}
	return Wrap("EXIT_ERR", d.ProcessExit(param))
}

// callIErr invokes ProcessIErr if present, else keeps err unchanged — the
// documented default behaviour for an absent callback (spec.md §3).
func (d Descriptor) callIErr(err Chain, param *Param) Chain {
	if d.ProcessIErr == nil {
		return err
	}
	return d.ProcessIErr(err, param)
}
