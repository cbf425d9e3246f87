// Package searchbox implements the one-line search input widget. The
// application opens it over the status line, feeds it key events, and
// acts on the returned action.
package searchbox

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/quelltext/ted/internal/input"
)

const prompt = "Search: "

// Action is what the host should do after an event was handled.
type Action int

const (
	// ActionNone: the event only moved the input cursor.
	ActionNone Action = iota
	// ActionChanged: the pattern text changed.
	ActionChanged
	// ActionSearchForward: jump to the next match.
	ActionSearchForward
	// ActionSearchBackward: jump to the previous match.
	ActionSearchBackward
	// ActionAccept: keep the current match and close the box.
	ActionAccept
	// ActionCancel: close the box.
	ActionCancel
)

// SearchBox holds the pattern being typed and an error line for
// invalid patterns.
type SearchBox struct {
	visible bool
	text    []rune
	col     int
	errText string
}

// New creates a closed search box.
func New() *SearchBox {
	return &SearchBox{}
}

// Open shows the box, keeping the previous pattern text selected for
// reuse.
func (sb *SearchBox) Open() {
	sb.visible = true
	sb.col = len(sb.text)
	sb.errText = ""
}

// Close hides the box.
func (sb *SearchBox) Close() {
	sb.visible = false
}

// IsOpen reports whether the box is visible and consuming input.
func (sb *SearchBox) IsOpen() bool {
	return sb.visible
}

// Text returns the current pattern text.
func (sb *SearchBox) Text() string {
	return string(sb.text)
}

// SetText replaces the pattern text.
func (sb *SearchBox) SetText(text string) {
	sb.text = []rune(text)
	sb.col = len(sb.text)
}

// SetError displays an error under the prompt, typically a pattern
// compile failure.
func (sb *SearchBox) SetError(msg string) {
	sb.errText = msg
}

// ClearError removes the error display.
func (sb *SearchBox) ClearError() {
	sb.errText = ""
}

// HandleEvent processes one key event while the box is open.
func (sb *SearchBox) HandleEvent(ev input.Event) Action {
	switch ev.Key {
	case input.KeyRune:
		if ev.Ctrl || ev.Alt {
			return ActionNone
		}
		sb.text = append(sb.text[:sb.col], append([]rune{ev.Rune}, sb.text[sb.col:]...)...)
		sb.col++
		return ActionChanged
	case input.KeyBackspace:
		if sb.col > 0 {
			sb.text = append(sb.text[:sb.col-1], sb.text[sb.col:]...)
			sb.col--
			return ActionChanged
		}
	case input.KeyDelete:
		if sb.col < len(sb.text) {
			sb.text = append(sb.text[:sb.col], sb.text[sb.col+1:]...)
			return ActionChanged
		}
	case input.KeyLeft:
		if sb.col > 0 {
			sb.col--
		}
	case input.KeyRight:
		if sb.col < len(sb.text) {
			sb.col++
		}
	case input.KeyHome:
		sb.col = 0
	case input.KeyEnd:
		sb.col = len(sb.text)
	case input.KeyDown:
		return ActionSearchForward
	case input.KeyUp:
		return ActionSearchBackward
	case input.KeyEnter:
		return ActionAccept
	case input.KeyEscape:
		return ActionCancel
	}
	return ActionNone
}

// Draw renders the box on row y. The error text, if any, overrides
// the normal style.
func (sb *SearchBox) Draw(screen tcell.Screen, width, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	if sb.errText != "" {
		style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	text := prompt + string(sb.text)
	if sb.errText != "" {
		text += "  (" + sb.errText + ")"
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}

// CursorX returns the terminal column of the input cursor within the
// box row.
func (sb *SearchBox) CursorX() int {
	return uniseg.StringWidth(prompt) + uniseg.StringWidth(string(sb.text[:sb.col]))
}
