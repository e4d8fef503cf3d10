package logger

import (
	"fmt"
	"regexp"
	"strconv"
)

// ANSI color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorGray   = "\033[90m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
)

// GetLevelColor returns the color code for a given log level
func GetLevelColor(level LogLevel) string {
	switch level {
	case LogLevelError:
		return ColorRed
	case LogLevelWarn:
		return ColorYellow
	case LogLevelInfo:
		return ColorGreen
	case LogLevelDebug:
		return ColorGray
	default:
		return ColorReset
	}
}

var richTextTag = regexp.MustCompile(`</?(?:b|i|color)(?:=#?([0-9A-Fa-f]{6})(?:[0-9A-Fa-f]{2})?)?>`)

// RenderRichText converts engine rich-text tags (<color=#rrggbb[aa]>, <b>, <i>)
// to ANSI sequences, or strips them when color is false.
func RenderRichText(text string, color bool) string {
	return richTextTag.ReplaceAllStringFunc(text, func(tag string) string {
		if !color {
			return ""
		}
		switch {
		case tag == "<b>":
			return ColorBold
		case tag == "<i>":
			return "\033[3m"
		case tag[1] == '/':
			return ColorReset
		}
		m := richTextTag.FindStringSubmatch(tag)
		if len(m) < 2 || m[1] == "" {
			return ""
		}
		return hexColor(m[1])
	})
}

// hexColor turns "rrggbb" into a 24-bit foreground sequence
func hexColor(hex string) string {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", v>>16&0xff, v>>8&0xff, v&0xff)
}
