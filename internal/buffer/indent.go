// internal/buffer/indent.go
package buffer

import "strings"

// Indent is the indentation unit of a buffer: either a single tab
// character or a fixed run of literal spaces. It is chosen once per
// buffer (auto-detected on load) and used uniformly for indent and
// outdent operations and for tab-aware column math.
type Indent struct {
	Tabs  bool
	Width int // Space count, and the display width of a tab in tab mode
}

// DefaultIndent is four spaces, matching the default of the config.
func DefaultIndent() Indent {
	return Indent{Tabs: false, Width: 4}
}

// Unit returns the literal text inserted by one indent step.
func (in Indent) Unit() string {
	if in.Tabs {
		return "\t"
	}
	return strings.Repeat(" ", in.Width)
}

// Cols returns how many rune columns one indent step occupies: 1 in
// tab mode, Width in space mode.
func (in Indent) Cols() int {
	if in.Tabs {
		return 1
	}
	return in.Width
}

// DisplayWidth returns the number of terminal columns a tab expands
// to when projecting rune columns to display columns.
func (in Indent) DisplayWidth() int {
	if in.Width <= 0 {
		return 4
	}
	return in.Width
}

// detectIndent inspects one line and reports the indent mode implied
// by its leading whitespace. ok is false for unindented lines.
func detectIndent(line string, tabWidth int) (Indent, bool) {
	if strings.HasPrefix(line, "\t") {
		return Indent{Tabs: true, Width: tabWidth}, true
	}
	if strings.HasPrefix(line, " ") {
		spaces := 1
		for _, r := range line[1:] {
			if r != ' ' {
				break
			}
			spaces++
		}
		return Indent{Tabs: false, Width: spaces}, true
	}
	return Indent{}, false
}
