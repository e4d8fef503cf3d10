package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const prefixed = "<color=#0099bc><b>DOTWEEN ► </b></color>Null Tween"

func newTestConsole(color bool) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	c := NewConsole()
	c.SetOutput(&out, &errOut)
	c.SetColor(color)
	return c, &out, &errOut
}

func TestConsoleStripsTagsWithoutColor(t *testing.T) {
	c, out, errOut := newTestConsole(false)

	c.LogWarning(prefixed)

	assert.Equal(t, "DOTWEEN ► Null Tween\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestConsoleRoutesErrors(t *testing.T) {
	c, out, errOut := newTestConsole(false)

	c.Log("info")
	c.LogError("<b>bad</b>")

	assert.Equal(t, "info\n", out.String())
	assert.Equal(t, "bad\n", errOut.String())
}

func TestConsoleForceStdErr(t *testing.T) {
	c, out, errOut := newTestConsole(false)
	c.SetForceStdErr(true)

	c.Log("info")

	assert.Empty(t, out.String())
	assert.Equal(t, "info\n", errOut.String())
}

func TestConsoleSharedWriter(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole()
	c.SetOutput(&buf, nil)
	c.SetColor(false)

	c.Log("a")
	c.LogError("b")

	assert.Equal(t, "a\nb\n", buf.String())
}

func TestRenderRichText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		color    bool
		expected string
	}{
		{"strip", prefixed, false, "DOTWEEN ► Null Tween"},
		{"plain", "no tags here", true, "no tags here"},
		{"hex", "<color=#0099bc>x</color>", true, "\033[38;2;0;153;188mx" + ColorReset},
		{"hex with alpha", "<color=#00B500FF>x</color>", true, "\033[38;2;0;181;0mx" + ColorReset},
		{"bold", "<b>x</b>", true, ColorBold + "x" + ColorReset},
		{"unknown tags kept", "<size=12>x</size>", false, "<size=12>x</size>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderRichText(tt.input, tt.color))
		})
	}
}

func TestConsoleColorWrapsWarning(t *testing.T) {
	c, out, _ := newTestConsole(true)

	c.LogWarning("careful")

	assert.Equal(t, ColorYellow+"careful"+ColorReset+"\n", out.String())
}

func TestConsoleKeepsLevelColorAfterClosingTags(t *testing.T) {
	c, out, errOut := newTestConsole(true)

	c.LogWarning(prefixed)
	c.LogError(prefixed)

	cyan := "\033[38;2;0;153;188m"
	body := func(level string) string {
		return level + cyan + ColorBold + "DOTWEEN ► " +
			ColorReset + level + ColorReset + level +
			"Null Tween" + ColorReset + "\n"
	}
	assert.Equal(t, body(ColorYellow), out.String())
	assert.Equal(t, body(ColorRed), errOut.String())
}
