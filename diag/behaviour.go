package diag

import (
	"fmt"
	"strings"
)

// LogBehaviour is the user-facing verbosity selector.
type LogBehaviour int

const (
	LogBehaviourErrorsOnly LogBehaviour = iota
	LogBehaviourDefault
	LogBehaviourVerbose
)

func (b LogBehaviour) String() string {
	switch b {
	case LogBehaviourDefault:
		return "default"
	case LogBehaviourVerbose:
		return "verbose"
	case LogBehaviourErrorsOnly:
		return "errors-only"
	default:
		return fmt.Sprintf("unknown(%d)", int(b))
	}
}

// ParseLogBehaviour maps a name to a LogBehaviour. Unknown names fall back to
// errors-only, mirroring how SetLogPriority treats unknown values.
func ParseLogBehaviour(s string) LogBehaviour {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return LogBehaviourDefault
	case "verbose":
		return LogBehaviourVerbose
	default:
		return LogBehaviourErrorsOnly
	}
}

// Priority is the stored numeric verbosity level.
// 0: errors only - 1: default - 2: verbose
type Priority int

const (
	PriorityErrorsOnly Priority = 0
	PriorityDefault    Priority = 1
	PriorityVerbose    Priority = 2
)

// PriorityFor converts a LogBehaviour to its stored level.
func PriorityFor(b LogBehaviour) Priority {
	switch b {
	case LogBehaviourDefault:
		return PriorityDefault
	case LogBehaviourVerbose:
		return PriorityVerbose
	default:
		return PriorityErrorsOnly
	}
}

// SafeModeLogBehaviour decides how errors captured in safe mode are reported.
type SafeModeLogBehaviour int

const (
	SafeModeNone SafeModeLogBehaviour = iota
	SafeModeNormal
	SafeModeWarning
	SafeModeError
)

func (b SafeModeLogBehaviour) String() string {
	switch b {
	case SafeModeNone:
		return "none"
	case SafeModeNormal:
		return "normal"
	case SafeModeWarning:
		return "warning"
	case SafeModeError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", int(b))
	}
}

// ParseSafeModeLogBehaviour parses a safe-mode policy name.
func ParseSafeModeLogBehaviour(s string) (SafeModeLogBehaviour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return SafeModeNone, nil
	case "normal", "log", "info":
		return SafeModeNormal, nil
	case "warning", "warn":
		return SafeModeWarning, nil
	case "error":
		return SafeModeError, nil
	default:
		return SafeModeNone, fmt.Errorf("unknown safe mode log behaviour %q", s)
	}
}

// severity returns the console severity used for this policy. The second
// result is false for SafeModeNone.
func (b SafeModeLogBehaviour) severity() (Severity, bool) {
	switch b {
	case SafeModeNormal:
		return SeverityInfo, true
	case SafeModeWarning:
		return SeverityWarning, true
	case SafeModeError:
		return SeverityError, true
	default:
		return SeverityInfo, false
	}
}
