package editor

import (
	"unicode"

	"github.com/quelltext/ted/internal/input"
	"github.com/quelltext/ted/internal/logger"
)

// HandleEvent dispatches one abstract key event to the matching
// command. It reports whether the event was consumed; unhandled
// events fall through to the host application.
func (ta *TextArea) HandleEvent(ev input.Event) bool {
	switch ev.Key {
	case input.KeyRune:
		return ta.handleRune(ev)
	case input.KeyEnter:
		ta.InsertNewline()
	case input.KeyTab:
		ta.Indent()
	case input.KeyBacktab:
		ta.Outdent()
	case input.KeyBackspace:
		if ev.Ctrl {
			ta.DeleteWordBackward()
		} else {
			ta.DeleteBackward()
		}
	case input.KeyDelete:
		if ev.Ctrl {
			ta.DeleteWordForward()
		} else {
			ta.DeleteForward()
		}
	case input.KeyLeft:
		if ev.Ctrl {
			ta.MoveWordLeft(ev.Shift)
		} else {
			ta.MoveLeft(ev.Shift)
		}
	case input.KeyRight:
		if ev.Ctrl {
			ta.MoveWordRight(ev.Shift)
		} else {
			ta.MoveRight(ev.Shift)
		}
	case input.KeyUp:
		if ev.Alt {
			ta.MoveLinesUp()
		} else {
			ta.MoveUp(ev.Shift)
		}
	case input.KeyDown:
		if ev.Alt {
			ta.MoveLinesDown()
		} else {
			ta.MoveDown(ev.Shift)
		}
	case input.KeyHome:
		ta.MoveHome(ev.Shift)
	case input.KeyEnd:
		ta.MoveEnd(ev.Shift)
	case input.KeyPageUp:
		ta.PageUp(ev.Shift)
	case input.KeyPageDown:
		ta.PageDown(ev.Shift)
	case input.KeyEscape:
		ta.ClearSelection()
	default:
		return false
	}
	return true
}

func (ta *TextArea) handleRune(ev input.Event) bool {
	if ev.Ctrl {
		switch ev.Rune {
		case 'z':
			ta.Undo()
		case 'y':
			ta.Redo()
		case 'x':
			if err := ta.Cut(); err != nil {
				logger.Errorf("Editor: cut failed: %v", err)
			}
		case 'c':
			if err := ta.Copy(); err != nil {
				logger.Errorf("Editor: copy failed: %v", err)
			}
		case 'v':
			if err := ta.Paste(); err != nil {
				logger.Errorf("Editor: paste failed: %v", err)
			}
		default:
			return false
		}
		return true
	}
	if ev.Alt {
		return false
	}
	if !unicode.IsPrint(ev.Rune) {
		return false
	}
	ta.InsertRune(ev.Rune)
	return true
}
