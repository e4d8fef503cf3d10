package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewDefaultLogger("tweenlog")
	logger.SetOutput(&buf)

	tests := []struct {
		level    LogLevel
		logFunc  func(string, ...any)
		message  string
		expected string
	}{
		{LogLevelDebug, logger.Debug, "Debug message", "DEBUG"},
		{LogLevelInfo, logger.Info, "Info message", "INFO"},
		{LogLevelWarn, logger.Warn, "Warn message", "WARN"},
		{LogLevelError, logger.Error, "Error message", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf.Reset()
			logger.SetLevel(LogLevelDebug)

			tt.logFunc(tt.message)

			output := buf.String()
			assert.Contains(t, output, tt.expected)
			assert.Contains(t, output, tt.message)
			assert.Contains(t, output, "[tweenlog]")
		})
	}
}

func TestDefaultLoggerWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger("")
	logger.SetOutput(&buf)
	logger.SetColor(false)

	logger.Warn("store %s unavailable", "sqlite")

	output := buf.String()
	assert.NotContains(t, output, "\033[")
	assert.True(t, strings.HasSuffix(output, "WARN: store sqlite unavailable\n"), output)
}

func TestLogLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger("tweenlog")
	logger.SetOutput(&buf)

	logger.SetLevel(LogLevelWarn)
	assert.Equal(t, LogLevelWarn, logger.GetLevel())

	buf.Reset()
	logger.Debug("This should not appear")
	logger.Info("This should not appear")
	assert.Zero(t, buf.Len(), "debug/info logged at WARN")

	buf.Reset()
	logger.Warn("This should appear")
	assert.NotZero(t, buf.Len())

	buf.Reset()
	logger.Error("This should appear")
	assert.NotZero(t, buf.Len())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"none", LogLevelNone},
		{"off", LogLevelNone},
		{"invalid", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "NONE", LogLevelNone.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}

func TestNullLogger(t *testing.T) {
	n := NewNullLogger()
	assert.Equal(t, LogLevelNone, n.GetLevel())
	n.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, n.GetLevel())
	assert.NotPanics(t, func() {
		n.Error("x")
		NullConsole{}.LogError("x")
	})
}
