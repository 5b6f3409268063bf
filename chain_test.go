package loghandler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_OK(t *testing.T) {
	t.Parallel()

	c := OK()
	assert.True(t, c.IsOK())
	assert.False(t, c.IsLoopExit())
	assert.NoError(t, c.AsError())
	assert.Equal(t, "", c.Error())
}

func TestChain_NewErr(t *testing.T) {
	t.Parallel()

	c := NewErr("CODE", "boom")
	assert.False(t, c.IsOK())
	assert.Equal(t, "CODE", c.Code())
	require.Error(t, c.AsError())
	assert.Contains(t, c.Error(), "boom")
}

func TestChain_Wrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error is OK", func(t *testing.T) {
		t.Parallel()
		assert.True(t, Wrap("X", nil).IsOK())
	})

	t.Run("non-nil error is preserved as cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("underlying")
		c := Wrap("X", cause)
		assert.False(t, c.IsOK())
		assert.ErrorIs(t, c, cause)
	})
}

func TestChain_LoopExit(t *testing.T) {
	t.Parallel()

	inner := errors.New("exit reason")
	c := NewLoopExit(inner)
	assert.True(t, c.IsLoopExit())
	assert.Equal(t, inner, c.LoopExitInner())

	empty := NewLoopExit(nil)
	assert.True(t, empty.IsLoopExit())
	assert.Nil(t, empty.LoopExitInner())
}

func TestAppend(t *testing.T) {
	t.Parallel()

	t.Run("next OK leaves accumulator unchanged", func(t *testing.T) {
		t.Parallel()
		acc := NewErr("FIRST", "one")
		result := Append(acc, OK())
		assert.Equal(t, acc, result)
	})

	t.Run("next error becomes new accumulator with acc as cause", func(t *testing.T) {
		t.Parallel()
		acc := NewErr("FIRST", "one")
		next := NewErr("SECOND", "two")
		result := Append(acc, next)
		assert.Equal(t, "SECOND", result.Code())
		assert.ErrorIs(t, result, acc)
	})
}

func TestAppendInto(t *testing.T) {
	t.Parallel()

	acc := OK()
	AppendInto(&acc, NewErr("E1", "one"))
	AppendInto(&acc, OK())
	AppendInto(&acc, NewErr("E2", "two"))

	assert.Equal(t, "E2", acc.Code())
	require.Error(t, acc.Unwrap())
	assert.Equal(t, "E1", acc.Unwrap().(Chain).Code())
}
