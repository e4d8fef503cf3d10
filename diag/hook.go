package diag

// Hook intercepts every formatted message before it reaches the sink.
// Returning false drops the message.
type Hook func(severity Severity, text string) bool

// ChainHooks combines hooks in order. The combined hook stops at the first
// hook returning false. Nil hooks are skipped.
func ChainHooks(hooks ...Hook) Hook {
	var chain []Hook
	for _, h := range hooks {
		if h != nil {
			chain = append(chain, h)
		}
	}
	switch len(chain) {
	case 0:
		return nil
	case 1:
		return chain[0]
	}
	return func(severity Severity, text string) bool {
		for _, h := range chain {
			if !h(severity, text) {
				return false
			}
		}
		return true
	}
}

// MinSeverityHook drops messages below min.
func MinSeverityHook(min Severity) Hook {
	return func(severity Severity, _ string) bool {
		return severity >= min
	}
}
