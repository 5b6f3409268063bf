package loghandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRecord_roundTrip(t *testing.T) {
	t.Parallel()

	r := Record{
		Level:      LevelWarning,
		PID:        4242,
		TID:        7,
		Line:       128,
		Filename:   "main.go",
		Funcname:   "doStuff",
		LoggerName: "app.worker",
		LogMessage: "something happened",
	}

	payload := EncodeRecord(r)
	got, err := DecodeRecord(payload)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestEncodeDecodeRecord_emptyFields(t *testing.T) {
	t.Parallel()

	payload := EncodeRecord(Record{})
	got, err := DecodeRecord(payload)
	require.NoError(t, err)
	assert.Equal(t, Record{}, got)
}

func TestDecodeRecord_truncatedPayload(t *testing.T) {
	t.Parallel()

	t.Run("shorter than header", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeRecord([]byte{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("truncated mid field", func(t *testing.T) {
		t.Parallel()
		full := EncodeRecord(Record{LogMessage: "abcdefgh"})
		_, err := DecodeRecord(full[:len(full)-3])
		assert.Error(t, err)
	})
}

func TestRecord_Checksum_stableForEqualRecords(t *testing.T) {
	t.Parallel()

	a := Record{Level: LevelInfo, Filename: "a.go", LogMessage: "hi"}
	b := Record{Level: LevelInfo, Filename: "a.go", LogMessage: "hi"}
	c := Record{Level: LevelInfo, Filename: "a.go", LogMessage: "bye"}

	assert.Equal(t, a.Checksum(), b.Checksum())
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}
