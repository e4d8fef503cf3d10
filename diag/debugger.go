package diag

import (
	"fmt"
	"sync"
)

// LogPrefix is the branded tag in front of every message.
const LogPrefix = "<color=#0099bc><b>DOTWEEN ► </b></color>"

// Config is the explicit configuration handed to a Debugger.
type Config struct {
	LogBehaviour         LogBehaviour
	SafeModeLogBehaviour SafeModeLogBehaviour
	// DebugMode adds call-site and identifier details to safe mode captured errors.
	DebugMode bool
	// OnWillLog, if set, is consulted before every sink write.
	OnWillLog Hook
}

// DefaultConfig returns errors-only logging with safe mode errors reported as warnings.
func DefaultConfig() Config {
	return Config{
		LogBehaviour:         LogBehaviourErrorsOnly,
		SafeModeLogBehaviour: SafeModeWarning,
	}
}

// Debugger formats diagnostics and forwards them to a Sink.
type Debugger struct {
	mu        sync.RWMutex
	sink      Sink
	priority  Priority
	safeMode  SafeModeLogBehaviour
	debugMode bool
	onWillLog Hook
}

// New creates a Debugger writing to sink. A nil sink discards everything.
func New(sink Sink, cfg Config) *Debugger {
	if sink == nil {
		sink = SinkFunc(func(Severity, string) {})
	}
	return &Debugger{
		sink:      sink,
		priority:  PriorityFor(cfg.LogBehaviour),
		safeMode:  cfg.SafeModeLogBehaviour,
		debugMode: cfg.DebugMode,
		onWillLog: cfg.OnWillLog,
	}
}

// SetLogPriority stores the numeric level for the given behaviour:
// default -> 1, verbose -> 2, anything else -> 0.
func (d *Debugger) SetLogPriority(b LogBehaviour) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.priority = PriorityFor(b)
}

// LogPriority returns the stored numeric level.
func (d *Debugger) LogPriority() Priority {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.priority
}

// SetSafeModeLogBehaviour sets the safe mode reporting policy.
func (d *Debugger) SetSafeModeLogBehaviour(b SafeModeLogBehaviour) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.safeMode = b
}

// SafeModeLogBehaviour returns the safe mode reporting policy.
func (d *Debugger) SafeModeLogBehaviour() SafeModeLogBehaviour {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.safeMode
}

// SetDebugMode toggles debug details on safe mode captured errors.
func (d *Debugger) SetDebugMode(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debugMode = on
}

// DebugMode reports whether debug mode is on.
func (d *Debugger) DebugMode() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.debugMode
}

// SetOnWillLog replaces the interception hook. nil removes it.
func (d *Debugger) SetOnWillLog(h Hook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onWillLog = h
}

// Config returns a snapshot of the current settings. LogBehaviour is derived
// from the stored priority.
func (d *Debugger) Config() Config {
	d.mu.RLock()
	defer d.mu.RUnlock()
	b := LogBehaviourErrorsOnly
	switch d.priority {
	case PriorityDefault:
		b = LogBehaviourDefault
	case PriorityVerbose:
		b = LogBehaviourVerbose
	}
	return Config{
		LogBehaviour:         b,
		SafeModeLogBehaviour: d.safeMode,
		DebugMode:            d.debugMode,
		OnWillLog:            d.onWillLog,
	}
}

// Log writes an info message.
func (d *Debugger) Log(message any) {
	d.emit(SeverityInfo, LogPrefix+messageText(message))
}

// LogWarning writes a warning. When cs is not nil its call-site line is
// placed between the prefix and the message.
func (d *Debugger) LogWarning(message any, cs *CallSite) {
	d.emit(SeverityWarning, LogPrefix+cs.Describe()+messageText(message))
}

// LogError writes an error, with the call site when cs is not nil.
func (d *Debugger) LogError(message any, cs *CallSite) {
	d.emit(SeverityError, LogPrefix+cs.Describe()+messageText(message))
}

// LogAt sends message through Log, LogWarning or LogError by severity and
// reports whether this call reached the sink. cs is ignored for info.
func (d *Debugger) LogAt(severity Severity, message any, cs *CallSite) bool {
	switch severity {
	case SeverityWarning:
		return d.emit(SeverityWarning, LogPrefix+cs.Describe()+messageText(message))
	case SeverityError:
		return d.emit(SeverityError, LogPrefix+cs.Describe()+messageText(message))
	default:
		return d.emit(SeverityInfo, LogPrefix+messageText(message))
	}
}

// LogSafeModeCapturedError reports an error caught in safe mode according to
// the configured policy. With policy none nothing is formatted or intercepted.
// The hook always sees info; the policy only picks the sink severity.
func (d *Debugger) LogSafeModeCapturedError(message any, cs *CallSite) {
	d.mu.RLock()
	policy, debugMode := d.safeMode, d.debugMode
	d.mu.RUnlock()

	severity, ok := policy.severity()
	if !ok {
		SafeModeSkippedTotal.Inc()
		return
	}

	var text string
	if debugMode {
		text = LogPrefix + cs.debugInfo() + cs.Describe() + messageText(message)
	} else {
		text = LogPrefix + messageText(message)
	}
	d.emitAs(SeverityInfo, severity, text)
}

// LogReport writes a report line.
func (d *Debugger) LogReport(message any) {
	d.emit(SeverityInfo, fmt.Sprintf("<color=#00B500FF>%s REPORT ►</color> %s", LogPrefix, messageText(message)))
}

// LogSafeModeReport writes a safe mode report line as a warning. The hook
// sees it as info.
func (d *Debugger) LogSafeModeReport(message any) {
	d.emitAs(SeverityInfo, SeverityWarning, fmt.Sprintf("<color=#ff7337>%s SAFE MODE ►</color> %s", LogPrefix, messageText(message)))
}

// ShouldLogSafeModeCapturedError reports whether a safe mode captured error
// would be written, so callers can skip building the message.
func (d *Debugger) ShouldLogSafeModeCapturedError() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	switch d.safeMode {
	case SafeModeNone:
		return false
	case SafeModeNormal, SafeModeWarning:
		return d.priority >= PriorityDefault
	default:
		return true
	}
}

func (d *Debugger) emit(severity Severity, text string) bool {
	return d.emitAs(severity, severity, text)
}

// emitAs runs the hook once with hookSeverity and then writes to the sink
// with sinkSeverity. It reports whether the sink was written. No lock is held
// while calling out, so hooks and sinks may use the Debugger.
func (d *Debugger) emitAs(hookSeverity, sinkSeverity Severity, text string) bool {
	d.mu.RLock()
	hook, sink := d.onWillLog, d.sink
	d.mu.RUnlock()

	if hook != nil && !hook(hookSeverity, text) {
		MessagesSuppressedTotal.WithLabelValues(sinkSeverity.String()).Inc()
		return false
	}
	sink.Write(sinkSeverity, text)
	MessagesTotal.WithLabelValues(sinkSeverity.String()).Inc()
	return true
}

func messageText(message any) string {
	switch m := message.(type) {
	case nil:
		return ""
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}
