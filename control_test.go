package loghandler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loghandler/transport"
)

func bindControlPair(t *testing.T) (transport.ControlBinding, transport.ControlDial) {
	t.Helper()
	reg := transport.NewRegistry()
	binding, err := reg.BindControl("inproc://test/ctrl", 10)
	require.NoError(t, err)
	dial, err := reg.DialControl("inproc://test/ctrl")
	require.NoError(t, err)
	return binding, dial
}

func TestHandshake_success(t *testing.T) {
	t.Parallel()

	binding, dial := bindControlPair(t)
	done := make(chan Chain, 1)
	go func() { done <- handshake(binding, 3) }()

	require.NoError(t, dial.Send(ReadyCtrlMsgReq))
	frames, err := dial.Recv()
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, ReadyCtrlMsgRep, string(frames[0]))

	result := <-done
	assert.True(t, result.IsOK())
}

func TestHandshake_protocolViolation(t *testing.T) {
	t.Parallel()

	binding, dial := bindControlPair(t)
	done := make(chan Chain, 1)
	go func() { done <- handshake(binding, 1) }()

	require.NoError(t, dial.Send("NOT_READY"))
	_, err := dial.Recv()
	require.NoError(t, err)

	result := <-done
	assert.False(t, result.IsOK())
	assert.ErrorIs(t, result, ErrProtocolViolation)
}

func TestHandleControl_noPendingCommandIsOK(t *testing.T) {
	t.Parallel()

	binding, _ := bindControlPair(t)
	result := handleControl(binding, Descriptor{}, &Param{Rank: 1})
	assert.True(t, result.IsOK())
}

func TestHandleControl_flush(t *testing.T) {
	t.Parallel()

	binding, dial := bindControlPair(t)
	flushed := false
	desc := Descriptor{
		ProcessExplicitFlush: func(p *Param) error {
			flushed = true
			return nil
		},
	}
	param := &Param{Rank: 2}

	require.NoError(t, dial.Send(FlushCtrlMsgReq))

	result := handleControl(binding, desc, param)
	assert.True(t, result.IsOK())
	assert.True(t, flushed)

	frames, err := dial.Recv()
	require.NoError(t, err)
	assert.Equal(t, FlushCtrlMsgRep, string(frames[0]))
}

func TestHandleControl_exitSignalsLoopExit(t *testing.T) {
	t.Parallel()

	binding, dial := bindControlPair(t)
	flushed := false
	desc := Descriptor{
		ProcessImplicitFlush: func(p *Param) error {
			flushed = true
			return nil
		},
	}
	param := &Param{Rank: 0}

	require.NoError(t, dial.Send(ExitCtrlMsgReq))

	result := handleControl(binding, desc, param)
	assert.True(t, result.IsLoopExit())
	assert.True(t, flushed)

	frames, err := dial.Recv()
	require.NoError(t, err)
	assert.Equal(t, ExitCtrlMsgRep, string(frames[0]))
}

func TestHandleControl_unknownCommand(t *testing.T) {
	t.Parallel()

	binding, dial := bindControlPair(t)
	require.NoError(t, dial.Send("BOGUS"))

	result := handleControl(binding, Descriptor{}, &Param{})
	assert.False(t, result.IsOK())
	assert.True(t, errors.Is(result, ErrUnknownCommand))
}
