package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel) (*ConciergeLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = buf
	return NewLogger(cfg), buf
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestConciergeLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelWarn)

	logger.Info("should be dropped")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestWithSessionAndComponent(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.WithComponent("dispatcher").WithSession("sess-1").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "dispatcher", entry["component"])
	assert.Equal(t, "sess-1", entry["session_id"])

	// The original logger is unchanged.
	buf.Reset()
	logger.Info("plain")
	assert.NotContains(t, buf.String(), "session_id")
}

func TestLogActionCall(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.LogActionCall("create_calendar_event", 5*time.Millisecond, true, nil)
	assert.Contains(t, buf.String(), "Action completed")
	assert.Contains(t, buf.String(), "create_calendar_event")

	buf.Reset()
	logger.LogActionCall("create_gmail_draft", time.Millisecond, false, errors.New("invalid address"))
	assert.Contains(t, buf.String(), "Action failed")
	assert.Contains(t, buf.String(), "invalid address")
}

func TestLogModelCall(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.LogModelCall("gemini-2.0-flash", 120, 30*time.Millisecond, true, nil)
	assert.Contains(t, buf.String(), "Model call completed")
	assert.Contains(t, buf.String(), "gemini-2.0-flash")
}

func TestNoOpLoggerSatisfiesInterface(t *testing.T) {
	var logger Logger = NoOpLogger{}
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")
}
