// Package bus provides a reference multi-handler controller: it owns a
// transport.Registry, spins up one loghandler.Worker per registered
// Descriptor, drives each through the readiness handshake, and can
// broadcast FLUSH or EXIT to every handler. It is a collaborator, grounded
// on core/queue/service.go's Service configure-then-run-then-stop lifecycle
// and its errgroup.Group-based Run, not part of the worker contract itself
// (spec.md §1, §2 lists "the controller that drives multiple handlers" as
// an ambient, not core, concern).
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/loghandler"
	"github.com/dmitrymomot/loghandler/transport"
)

// Bus runs a fixed set of handlers concurrently and coordinates their
// control protocol. Configure with New and zero or more Option values, then
// call Run.
type Bus struct {
	registry transport.Registry
	logger   *slog.Logger
	handlers []handlerEntry

	mu      sync.Mutex
	ctrlDials map[string]transport.ControlDial
}

type handlerEntry struct {
	desc  loghandler.Descriptor
	param *loghandler.Param
}

// New builds a Bus backed by reg. Use WithLogger to attach structured
// diagnostics; the default discards everything, matching
// loghandler.DefaultParam's own default.
func New(reg transport.Registry, opts ...Option) *Bus {
	b := &Bus{
		registry:  reg,
		logger:    slog.New(slog.NewTextHandler(discardWriter{}, nil)),
		ctrlDials: make(map[string]transport.ControlDial),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register adds a handler to the bus. desc.Name must be unique; param is
// typically built with loghandler.DefaultParam(desc.Name, reg) and the same
// Registry passed to New. Register must be called before Run.
func (b *Bus) Register(desc loghandler.Descriptor, param *loghandler.Param) {
	b.handlers = append(b.handlers, handlerEntry{desc: desc, param: param})
}

// Run starts every registered handler's Worker, performs each readiness
// handshake, then blocks until ctx is cancelled, at which point it
// broadcasts EXIT to every handler and waits for them to stop. It returns
// the first error encountered, if any, mirroring core/queue/service.go's
// errgroup.Group-based Run.
func (b *Bus) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for i := range b.handlers {
		entry := b.handlers[i]
		w, err := loghandler.New(entry.desc, entry.param)
		if err != nil {
			return fmt.Errorf("bus: building worker %q: %w", entry.desc.Name, err)
		}

		g.Go(func() error {
			return w.Run()
		})

		dial, err := b.registry.DialControl(entry.param.CtrlURL)
		if err != nil {
			return fmt.Errorf("bus: dialing control for %q: %w", entry.desc.Name, err)
		}
		if err := b.handshake(dial, entry.desc.Name); err != nil {
			return err
		}
		b.mu.Lock()
		b.ctrlDials[entry.desc.Name] = dial
		b.mu.Unlock()
	}

	<-gctx.Done()
	b.Broadcast(loghandler.ExitCtrlMsgReq)

	return g.Wait()
}

// handshake drives the readiness handshake from the controller side: send
// READY, expect a READY reply plus rank (spec.md §4.2).
func (b *Bus) handshake(dial transport.ControlDial, name string) error {
	if err := dial.Send(loghandler.ReadyCtrlMsgReq); err != nil {
		return fmt.Errorf("bus: handshake send to %q: %w", name, err)
	}
	frames, err := dial.Recv()
	if err != nil {
		return fmt.Errorf("bus: handshake recv from %q: %w", name, err)
	}
	if len(frames) == 0 || string(frames[0]) != loghandler.ReadyCtrlMsgRep {
		return fmt.Errorf("bus: handshake with %q failed: unexpected reply %q", name, frames)
	}
	b.logger.Info("handler ready", slog.String("name", name))
	return nil
}

// Broadcast sends cmd (FLUSH or EXIT) to every registered handler and
// waits, with a short per-handler timeout, for each reply.
func (b *Bus) Broadcast(cmd string) {
	b.mu.Lock()
	dials := make(map[string]transport.ControlDial, len(b.ctrlDials))
	for name, d := range b.ctrlDials {
		dials[name] = d
	}
	b.mu.Unlock()

	var wg sync.WaitGroup
	for name, dial := range dials {
		wg.Add(1)
		go func(name string, dial transport.ControlDial) {
			defer wg.Done()
			if err := dial.Send(cmd); err != nil {
				b.logger.Error("broadcast send failed", slog.String("name", name), slog.String("cmd", cmd), slog.Any("err", err))
				return
			}
			if _, err := dial.Recv(); err != nil {
				b.logger.Error("broadcast recv failed", slog.String("name", name), slog.String("cmd", cmd), slog.Any("err", err))
			}
		}(name, dial)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		b.logger.Warn("broadcast timed out waiting for handler replies", slog.String("cmd", cmd))
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
