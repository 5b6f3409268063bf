package loghandler

import "strings"

// Evaluate implements the filter evaluator (spec.md §4.3): scan the full
// filter list in order, keep the level of the last entry whose Prefix is a
// prefix of loggerName, starting from LevelOff (nothing is accepted if no
// filter matches). The scan never short-circuits on the first match — a
// later, more specific prefix can override an earlier, broader one, the
// same way the source material lets a longer tree_search_path entry win.
func Evaluate(loggerName string, filters []Filter) Level {
	level := LevelOff
	for _, f := range filters {
		if strings.HasPrefix(loggerName, f.Prefix) {
			level = f.Level
		}
	}
	return level
}

// Accepts reports whether record is let through by filters: its level must
// be at or below (i.e. at least as severe as) the matched filter level.
// Lower Level values are more severe (LevelPanic < LevelDebug), matching
// the source material's severity ordering (spec.md §3).
func Accepts(record Record, filters []Filter) bool {
	return record.Level <= Evaluate(record.LoggerName, filters)
}
