package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Console writes diagnostics text to a terminal. Log and LogWarning go to
// the standard writer, LogError to the error writer.
type Console struct {
	mu         sync.Mutex
	out        io.Writer
	errOut     io.Writer
	color      bool
	timestamps bool
	forceErr   bool
}

// NewConsole creates a console on stdout/stderr with colors enabled
func NewConsole() *Console {
	return &Console{
		out:    os.Stdout,
		errOut: os.Stderr,
		color:  true,
	}
}

// SetOutput sets both writers. A nil errOut reuses out.
func (c *Console) SetOutput(out, errOut io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if errOut == nil {
		errOut = out
	}
	c.out = out
	c.errOut = errOut
}

// SetColor toggles rich-text to ANSI rendering. When off, tags are stripped.
func (c *Console) SetColor(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = on
}

// SetTimestamps toggles a time prefix on each line.
func (c *Console) SetTimestamps(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timestamps = on
}

// SetForceStdErr sends every severity to the error writer.
func (c *Console) SetForceStdErr(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forceErr = on
}

func (c *Console) Log(text string) {
	c.write(false, "", text)
}

func (c *Console) LogWarning(text string) {
	c.write(false, ColorYellow, text)
}

func (c *Console) LogError(text string) {
	c.write(true, ColorRed, text)
}

func (c *Console) write(isErr bool, levelColor, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	if c.timestamps {
		sb.WriteString(time.Now().Format("15:04:05.000"))
		sb.WriteByte(' ')
	}
	if c.color && levelColor != "" {
		// a closing tag resets everything, so restore the level color after it
		rendered := strings.ReplaceAll(RenderRichText(text, true), ColorReset, ColorReset+levelColor)
		sb.WriteString(levelColor)
		sb.WriteString(rendered)
		sb.WriteString(ColorReset)
	} else {
		sb.WriteString(RenderRichText(text, c.color))
	}
	sb.WriteByte('\n')

	w := c.out
	if isErr || c.forceErr {
		w = c.errOut
	}
	io.WriteString(w, sb.String())
}
