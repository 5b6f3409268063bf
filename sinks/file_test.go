package sinks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loghandler"
	"github.com/dmitrymomot/loghandler/sinks"
)

func TestFile_writesLogsAndClosesOnExit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.log")
	desc := sinks.File(path)

	require.NoError(t, desc.Init(nil))
	require.NoError(t, desc.ProcessLog(loghandler.Record{
		Level:      loghandler.LevelWarning,
		LoggerName: "app.db",
		Funcname:   "Query",
		LogMessage: "slow query",
	}, nil))
	require.NoError(t, desc.ProcessExit(nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "slow query")
	assert.Contains(t, string(content), "app.db")
}

func TestFile_explicitFlushWritesWithoutClosing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out2.log")
	desc := sinks.File(path)

	require.NoError(t, desc.Init(nil))
	require.NoError(t, desc.ProcessLog(loghandler.Record{LogMessage: "flushed"}, nil))
	require.NoError(t, desc.ProcessExplicitFlush(nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "flushed")

	require.NoError(t, desc.ProcessExit(nil))
}
