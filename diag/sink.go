package diag

// Sink receives formatted diagnostics text.
//
// Contract:
//   - Write is called at most once per logging call, after the hook allowed it.
//   - Implementations own their own buffering and error reporting; Write has no
//     error return.
type Sink interface {
	Write(severity Severity, text string)
}

// Console is the engine-style console with one operation per severity.
type Console interface {
	Log(text string)
	LogWarning(text string)
	LogError(text string)
}

var consoleDispatch = map[Severity]func(Console, string){
	SeverityInfo:    Console.Log,
	SeverityWarning: Console.LogWarning,
	SeverityError:   Console.LogError,
}

type consoleSink struct {
	console Console
}

// ConsoleSink adapts a Console to a Sink. Unknown severities go to Log.
func ConsoleSink(c Console) Sink {
	return &consoleSink{console: c}
}

func (s *consoleSink) Write(severity Severity, text string) {
	write, ok := consoleDispatch[severity]
	if !ok {
		write = Console.Log
	}
	write(s.console, text)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(severity Severity, text string)

func (f SinkFunc) Write(severity Severity, text string) {
	f(severity, text)
}
