package logger

import "io"

// Logger is used for the module's own operational messages: store failures,
// hook script errors, server lifecycle. Diagnostics text goes through Console.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// Configuration
	SetLevel(level LogLevel)
	GetLevel() LogLevel
	SetOutput(w io.Writer)
}
