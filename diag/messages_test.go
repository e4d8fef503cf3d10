package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activeTweenTail = "It's been taken care of so no problems, but Daniele (DOTween's author) is trying to pinpoint it (it's very rare and he can't reproduce it) so it would be awesome if you could reproduce this log in a sample project and send it to him. Or even just write him the complete log that was generated by this message. Fixing this would make DOTween slightly faster. Thanks."

func TestFixedTextWarnings(t *testing.T) {
	site := testSite.Describe()
	tests := []struct {
		name     string
		call     func(d *Debugger)
		expected string
	}{
		{"InvalidTween", func(d *Debugger) { d.LogInvalidTween(testSite) },
			LogPrefix + "This Tween has been killed and is now invalid"},
		{"NestedTween", func(d *Debugger) { d.LogNestedTween(testSite) },
			LogPrefix + site + "This Tween was added to a Sequence and can't be controlled directly"},
		{"NullTween", func(d *Debugger) { d.LogNullTween(nil) },
			LogPrefix + "Null Tween"},
		{"NonPathTween", func(d *Debugger) { d.LogNonPathTween(testSite) },
			LogPrefix + site + "This Tween is not a path tween"},
		{"MissingMaterialProperty", func(d *Debugger) { d.LogMissingMaterialProperty("_Color") },
			LogPrefix + "This material doesn't have a _Color property"},
		{"MissingMaterialPropertyID", func(d *Debugger) { d.LogMissingMaterialPropertyID(1234) },
			LogPrefix + "This material doesn't have a 1234 property ID"},
		{"RemoveActiveTweenError", func(d *Debugger) { d.LogRemoveActiveTweenError("index out of range", testSite) },
			LogPrefix + site + "Error in RemoveActiveTween (index out of range). " + activeTweenTail},
		{"AddActiveTweenError", func(d *Debugger) { d.LogAddActiveTweenError("duplicate", nil) },
			LogPrefix + "Error in AddActiveTween (duplicate). " + activeTweenTail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, console := newTestDebugger(DefaultConfig())
			tt.call(d)
			require.Len(t, console.calls, 1)
			assert.Equal(t, "warning", console.calls[0].op)
			assert.Equal(t, tt.expected, console.calls[0].text)
		})
	}
}

func TestSequenceWarnings(t *testing.T) {
	site := testSite.Describe()
	tests := []struct {
		name     string
		call     func(s SequenceDebugger)
		expected string
	}{
		{"AddToNullSequence", SequenceDebugger.LogAddToNullSequence,
			"You can't add elements to a NULL Sequence"},
		{"AddToInactiveSequence", SequenceDebugger.LogAddToInactiveSequence,
			"You can't add elements to an inactive/killed Sequence"},
		{"AddToLockedSequence", SequenceDebugger.LogAddToLockedSequence,
			"The Sequence has started and is now locked, you can only elements to a Sequence before it starts"},
		{"AddNullTween", SequenceDebugger.LogAddNullTween,
			"You can't add a NULL tween to a Sequence"},
		{"AddInactiveTween", func(s SequenceDebugger) { s.LogAddInactiveTween(testSite) },
			site + "You can't add an inactive/killed tween to a Sequence"},
		{"AddAlreadySequencedTween", func(s SequenceDebugger) { s.LogAddAlreadySequencedTween(testSite) },
			site + "You can't add a tween that is already nested into a Sequence to another Sequence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, console := newTestDebugger(DefaultConfig())
			tt.call(d.Sequence())
			require.Len(t, console.calls, 1)
			assert.Equal(t, "warning", console.calls[0].op)
			assert.Equal(t, LogPrefix+tt.expected, console.calls[0].text)
		})
	}
}
