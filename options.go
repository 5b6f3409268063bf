package loghandler

import (
	"log/slog"
	"time"
)

// Option configures a Param at construction time, mirroring the functional
// options used throughout core/queue (e.g. WithPollInterval): each Option is
// a zero-value-guarded setter, so passing a zero Duration or nil logger
// leaves the existing default untouched instead of panicking or zeroing it
// out.
type Option func(*Param)

// WithRank sets the worker's rank (spec.md §3, §4.2).
func WithRank(rank int32) Option {
	return func(p *Param) { p.Rank = rank }
}

// WithDataHWM overrides the data endpoint's high-water-mark. Ignored if hwm
// is not positive.
func WithDataHWM(hwm int) Option {
	return func(p *Param) {
		if hwm > 0 {
			p.DataHWM = hwm
		}
	}
}

// WithCtrlHWM overrides the control endpoint's high-water-mark. Ignored if
// hwm is not positive.
func WithCtrlHWM(hwm int) Option {
	return func(p *Param) {
		if hwm > 0 {
			p.CtrlHWM = hwm
		}
	}
}

// WithFlushFreq overrides the implicit-flush cadence. Values <= 0 are
// clamped to minFlushFreq rather than rejected, per DESIGN.md's Open
// Question resolution.
func WithFlushFreq(d time.Duration) Option {
	return func(p *Param) { p.FlushFreq = clampFlushFreq(d) }
}

// WithIErrMax overrides the internal-error budget. Ignored if max is not
// positive.
func WithIErrMax(max int) Option {
	return func(p *Param) {
		if max > 0 {
			p.IErrMax = max
		}
	}
}

// WithFilters replaces the filter list evaluated by the filter evaluator.
func WithFilters(filters ...Filter) Option {
	return func(p *Param) { p.Filters = filters }
}

// WithPrivateItems registers extra poll items alongside the control/data
// sockets (spec.md §4.5).
func WithPrivateItems(items ...PollItem) Option {
	return func(p *Param) { p.PrivateItems = items }
}

// WithLogger overrides the structured logger. Ignored if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Param) {
		if logger != nil {
			p.Logger = logger
		}
	}
}

// WithURLs overrides the derived control/data transport URLs. Mainly useful
// in tests that need a predictable address instead of DefaultParam's
// uuid-derived one.
func WithURLs(ctrlURL, dataURL string) Option {
	return func(p *Param) {
		p.CtrlURL = ctrlURL
		p.DataURL = dataURL
	}
}

// Apply runs every opt against p in order.
func (p *Param) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}
