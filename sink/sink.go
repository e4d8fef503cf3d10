// Package sink provides diag.Sink implementations that fan out and record
// diagnostics entries.
package sink

import (
	"sync"
	"time"

	"github.com/rediwo/tweenlog/diag"
)

// Entry is one diagnostics message as it reached a sink
type Entry struct {
	ID       int64
	Severity diag.Severity
	Text     string
	Time     time.Time
}

// Multi writes every message to each sink in order
type Multi []diag.Sink

func (m Multi) Write(severity diag.Severity, text string) {
	for _, s := range m {
		if s != nil {
			s.Write(severity, text)
		}
	}
}

// Recorder keeps the most recent entries in memory
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
	lastID  int64
	now     func() time.Time
}

// DefaultRecorderCapacity is used when NewRecorder gets a non-positive capacity
const DefaultRecorderCapacity = 1000

// NewRecorder creates a ring buffer holding up to capacity entries
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	return &Recorder{
		entries: make([]Entry, capacity),
		now:     time.Now,
	}
}

// Write implements diag.Sink
func (r *Recorder) Write(severity diag.Severity, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	r.entries[r.next] = Entry{ID: r.lastID, Severity: severity, Text: text, Time: r.now()}
	r.next++
	if r.next == len(r.entries) {
		r.next = 0
		r.full = true
	}
}

// Len returns how many entries are held
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.full {
		return len(r.entries)
	}
	return r.next
}

// Entries returns held entries oldest first. A nil severity matches all.
// limit <= 0 returns everything; otherwise the newest limit entries are kept.
func (r *Recorder) Entries(severity *diag.Severity, limit int) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ordered []Entry
	if r.full {
		ordered = append(ordered, r.entries[r.next:]...)
	}
	ordered = append(ordered, r.entries[:r.next]...)

	out := make([]Entry, 0, len(ordered))
	for _, e := range ordered {
		if severity == nil || e.Severity == *severity {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Reset drops all entries. IDs keep increasing.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		r.entries[i] = Entry{}
	}
	r.next = 0
	r.full = false
}
