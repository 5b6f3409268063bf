package bus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loghandler"
	"github.com/dmitrymomot/loghandler/bus"
	"github.com/dmitrymomot/loghandler/transport"
)

func TestBus_RunAndBroadcastExit(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	b := bus.New(reg)

	param := loghandler.DefaultParam("console", reg)
	exited := make(chan struct{}, 1)
	desc := loghandler.Descriptor{
		Name:        "console",
		ProcessExit: func(p *loghandler.Param) error { exited <- struct{}{}; return nil },
	}
	b.Register(desc, param)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- b.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-runDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bus did not stop in time")
	}

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("handler's ProcessExit was never called")
	}
}

func TestBus_Register_multipleHandlers(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	b := bus.New(reg)

	paramA := loghandler.DefaultParam("a", reg)
	paramB := loghandler.DefaultParam("b", reg)
	b.Register(loghandler.Descriptor{Name: "a"}, paramA)
	b.Register(loghandler.Descriptor{Name: "b"}, paramB)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- b.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-runDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bus did not stop in time")
	}
}
