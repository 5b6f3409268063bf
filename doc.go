// Package loghandler implements the per-handler execution context inside a
// multi-handler asynchronous logging bus. Producers on arbitrary goroutines
// emit log records; each handler runs on a dedicated [Worker] that receives
// records over an in-process transport, filters them by logger-name prefix,
// forwards accepted records to a handler-specific sink, performs periodic and
// on-demand flushes, and coordinates startup/shutdown with a bus controller
// over a separate control channel.
//
// # Architecture
//
// A [Worker] is bound to one [Descriptor] (the sink's callbacks) and one
// [Param] (its operational knobs: high-water-marks, flush cadence, filters,
// transport addresses). The worker owns two transport endpoints for its
// lifetime: a control endpoint (request/reply) and a data endpoint (receive
// only). Both are obtained from a [transport.Registry] by URL, so the bus
// controller and the worker agree on addresses without sharing memory.
//
// # Basic usage
//
//	reg := transport.NewRegistry()
//
//	param := loghandler.DefaultParam("console", reg)
//	param.Filters = []loghandler.Filter{{Prefix: "", Level: loghandler.LevelInfo}}
//
//	desc := loghandler.Descriptor{
//		ProcessLog: func(r loghandler.Record, param *loghandler.Param) error {
//			fmt.Println(r.LoggerName, r.LogMessage)
//			return nil
//		},
//	}
//
//	w, err := loghandler.New(desc, param)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	go func() {
//		if err := w.Run(); err != nil {
//			log.Printf("handler worker exited: %v", err)
//		}
//	}()
//
// The bus controller (see package bus for a reference implementation) drives
// the control endpoint: it sends the READY request of the handshake, later
// sends FLUSH or EXIT requests, and receives the matching replies.
//
// # Error handling
//
// Two error classes thread through a worker's lifetime: internal errors
// ("ierr"), raised by transport operations inside the event loop and always
// routed through [Descriptor.ProcessIErr] first, and external errors
// ("eerr"), the accumulated, chained result returned by [Worker.Run]. See
// [Chain] for the chaining discipline.
package loghandler
