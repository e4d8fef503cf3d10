package diag

import (
	"fmt"
	"runtime"
	"strings"
)

// NoIntID marks a CallSite without an integer id.
const NoIntID = -999

// CallSite describes where a tween was started and how it is identified.
// The logger only reads it; a nil *CallSite means no tween was supplied.
type CallSite struct {
	Member        string
	Line          int
	Path          string
	StringID      string
	IntID         int
	DebugTargetID string
}

// CaptureCallSite records the caller's function, line and file. skip counts
// frames above the caller of CaptureCallSite, as in runtime.Caller.
func CaptureCallSite(skip int) *CallSite {
	cs := &CallSite{IntID: NoIntID}
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return cs
	}
	cs.Line = line
	cs.Path = file
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		cs.Member = name
	}
	return cs
}

// WithIDs returns a copy of cs carrying the given identifiers.
func (cs CallSite) WithIDs(stringID string, intID int, debugTargetID string) *CallSite {
	cs.StringID = stringID
	cs.IntID = intID
	cs.DebugTargetID = debugTargetID
	return &cs
}

// Describe returns the call-site line spliced between prefix and body.
func (cs *CallSite) Describe() string {
	if cs == nil {
		return ""
	}
	return fmt.Sprintf("Play called from: %s@%d in %s\n", cs.Member, cs.Line, cs.Path)
}

// debugInfo returns the identifiers block, or "" when no identifier is set.
func (cs *CallSite) debugInfo() string {
	if cs == nil {
		return ""
	}
	hasTarget := cs.DebugTargetID != ""
	hasStringID := cs.StringID != ""
	hasIntID := cs.IntID != NoIntID
	if !hasTarget && !hasStringID && !hasIntID {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("DEBUG MODE INFO ► ")
	if hasTarget {
		fmt.Fprintf(&sb, "[tween target: %s]", cs.DebugTargetID)
	}
	if hasStringID {
		fmt.Fprintf(&sb, "[stringId: %s]", cs.StringID)
	}
	if hasIntID {
		fmt.Fprintf(&sb, "[intId: %d]", cs.IntID)
	}
	sb.WriteString("\n")
	return sb.String()
}
