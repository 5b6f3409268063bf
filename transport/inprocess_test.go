package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loghandler/transport"
)

func TestRegistry_ControlRequestReply(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	binding, err := reg.BindControl("inproc://t/ctrl", 4)
	require.NoError(t, err)
	dial, err := reg.DialControl("inproc://t/ctrl")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		req, recvErr := binding.RecvRequest()
		assert.NoError(t, recvErr)
		assert.Equal(t, "PING", req)
		assert.NoError(t, binding.Reply([]byte("PONG")))
	}()

	require.NoError(t, dial.Send("PING"))
	frames, err := dial.Recv()
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "PONG", string(frames[0]))
	<-done
}

func TestRegistry_BindControlTwiceFails(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	_, err := reg.BindControl("inproc://t/dup", 1)
	require.NoError(t, err)
	_, err = reg.BindControl("inproc://t/dup", 1)
	assert.Error(t, err)
}

func TestRegistry_ControlRecvCommandWouldBlock(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	binding, err := reg.BindControl("inproc://t/nocmd", 1)
	require.NoError(t, err)

	_, err = binding.RecvCommand()
	assert.ErrorIs(t, err, transport.ErrWouldBlock)
}

func TestRegistry_ReplyWithoutPendingRequestErrors(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	binding, err := reg.BindControl("inproc://t/noreply", 1)
	require.NoError(t, err)

	assert.Error(t, binding.Reply([]byte("x")))
}

func TestRegistry_DataSendRecv(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	binding, err := reg.BindData("inproc://t/data", []byte{1}, 2)
	require.NoError(t, err)
	dial, err := reg.DialData("inproc://t/data")
	require.NoError(t, err)

	_, err = binding.Recv()
	assert.ErrorIs(t, err, transport.ErrWouldBlock)

	require.NoError(t, dial.Send([]byte("payload")))
	payload, err := binding.Recv()
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), payload)
}

func TestRegistry_DataSendHWMExceeded(t *testing.T) {
	t.Parallel()

	reg := transport.NewRegistry()
	_, err := reg.BindData("inproc://t/hwm", nil, 1)
	require.NoError(t, err)
	dial, err := reg.DialData("inproc://t/hwm")
	require.NoError(t, err)

	require.NoError(t, dial.Send([]byte("one")))
	err = dial.Send([]byte("two"))
	assert.ErrorIs(t, err, transport.ErrHWM)
}
