package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/loghandler/logging"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("starting", logging.Handler("console", 2))

	assert.Contains(t, buf.String(), `"name":"console"`)
	assert.Contains(t, buf.String(), `"rank":2`)
}

func TestRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("dispatch failed", logging.Record("app.db", 12, "db.go"))

	assert.Contains(t, buf.String(), `"logger":"app.db"`)
	assert.Contains(t, buf.String(), `"line":12`)
}

func TestChainErr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Error("fatal", logging.ChainErr("EXIT_ERR", "boom"))

	assert.Contains(t, buf.String(), `"code":"EXIT_ERR"`)
	assert.Contains(t, buf.String(), `"message":"boom"`)
}
