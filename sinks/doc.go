// Package sinks provides reference loghandler.Descriptor implementations:
// one per output backend the wider dmitrymomot-foundation stack already
// depends on. Each constructor returns a loghandler.Descriptor ready to
// pass to loghandler.New alongside a Param built with
// loghandler.DefaultParam, so a bus.Bus can run any combination of them
// side by side.
package sinks
