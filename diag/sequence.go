package diag

const (
	MsgAddToNullSequence        = "You can't add elements to a NULL Sequence"
	MsgAddToInactiveSequence    = "You can't add elements to an inactive/killed Sequence"
	MsgAddToLockedSequence      = "The Sequence has started and is now locked, you can only elements to a Sequence before it starts"
	MsgAddNullTween             = "You can't add a NULL tween to a Sequence"
	MsgAddInactiveTween         = "You can't add an inactive/killed tween to a Sequence"
	MsgAddAlreadySequencedTween = "You can't add a tween that is already nested into a Sequence to another Sequence"
)

// SequenceDebugger groups the Sequence warnings. It shares the parent's
// sink, hook and settings.
type SequenceDebugger struct {
	d *Debugger
}

// Sequence returns the Sequence warning group.
func (d *Debugger) Sequence() SequenceDebugger {
	return SequenceDebugger{d: d}
}

func (s SequenceDebugger) LogAddToNullSequence() {
	s.d.LogWarning(MsgAddToNullSequence, nil)
}

func (s SequenceDebugger) LogAddToInactiveSequence() {
	s.d.LogWarning(MsgAddToInactiveSequence, nil)
}

func (s SequenceDebugger) LogAddToLockedSequence() {
	s.d.LogWarning(MsgAddToLockedSequence, nil)
}

func (s SequenceDebugger) LogAddNullTween() {
	s.d.LogWarning(MsgAddNullTween, nil)
}

// LogAddInactiveTween warns about adding an inactive tween, with its call site.
func (s SequenceDebugger) LogAddInactiveTween(cs *CallSite) {
	s.d.LogWarning(MsgAddInactiveTween, cs)
}

// LogAddAlreadySequencedTween warns about adding a tween nested elsewhere.
func (s SequenceDebugger) LogAddAlreadySequencedTween(cs *CallSite) {
	s.d.LogWarning(MsgAddAlreadySequencedTween, cs)
}
