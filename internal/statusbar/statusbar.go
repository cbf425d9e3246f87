// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/quelltext/ted/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the one-line status display at the bottom of the
// screen: buffer slot, file path, modified marker and cursor or
// selection position, or a temporary message.
type StatusBar struct {
	config Config

	slot       int
	slotCount  int
	filePath   string
	isModified bool
	cursor     types.Position
	selStart   types.Position
	selEnd     types.Position
	hasSel     bool

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetSlotInfo updates the active buffer slot display.
func (sb *StatusBar) SetSlotInfo(slot, count int) {
	sb.slot = slot
	sb.slotCount = count
}

// SetFileInfo updates the file path and modified marker.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the displayed cursor position.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.cursor = pos
	sb.hasSel = false
}

// SetSelectionInfo updates the displayed selection range.
func (sb *StatusBar) SetSelectionInfo(start, end types.Position) {
	sb.selStart = start
	sb.selEnd = end
	sb.hasSel = true
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// displayText builds the default status line text.
func (sb *StatusBar) displayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}

	position := fmt.Sprintf("Line: %d, Col: %d", sb.cursor.Row+1, sb.cursor.Col+1)
	if sb.hasSel {
		position = fmt.Sprintf("Selection: %d,%d - %d,%d",
			sb.selStart.Row+1, sb.selStart.Col+1, sb.selEnd.Row+1, sb.selEnd.Col+1)
	}

	return fmt.Sprintf("[%d/%d] %s%s -- %s",
		sb.slot+1, sb.slotCount, fPath, modifiedIndicator, position)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	if isTempMsgActive {
		text = sb.tempMessage
		style = sb.config.StyleMessage
	} else {
		text = sb.displayText()
		style = sb.config.StyleDefault
		if sb.isModified {
			style = sb.config.StyleModified
		}
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
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
