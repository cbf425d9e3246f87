// Package input defines the abstract key events the editor consumes
// and their decoding from tcell terminal events.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Key identifies a non-character key. Character input is KeyRune with
// the rune in Event.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyFunction
)

// Event is one decoded key press: a key identity, the rune for KeyRune
// (or the function key number for KeyFunction), and modifier flags.
type Event struct {
	Key   Key
	Rune  rune
	Fn    int
	Ctrl  bool
	Alt   bool
	Shift bool
}

var specialKeys = map[tcell.Key]Key{
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBacktab:   KeyBacktab,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPageUp,
	tcell.KeyPgDn:      KeyPageDown,
	tcell.KeyEsc:       KeyEscape,
}

// FromTcell translates a tcell key event into an Event. Terminals
// report ctrl+letter as dedicated control keys, so those are folded
// back into KeyRune with the Ctrl flag set; explicit control codes
// that double as editing keys (enter, tab, backspace) are matched
// before the fold.
func FromTcell(ev *tcell.EventKey) Event {
	mod := ev.Modifiers()
	e := Event{
		Ctrl:  mod&tcell.ModCtrl != 0,
		Alt:   mod&tcell.ModAlt != 0,
		Shift: mod&tcell.ModShift != 0,
	}

	key := ev.Key()
	switch {
	case key == tcell.KeyRune:
		e.Key = KeyRune
		e.Rune = ev.Rune()
	case key == tcell.KeyEnter, key == tcell.KeyTab, key == tcell.KeyBackspace, key == tcell.KeyBackspace2:
		if key == tcell.KeyBackspace2 {
			e.Key = KeyBackspace
		} else {
			e.Key = specialKeys[key]
		}
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		e.Key = KeyRune
		e.Rune = 'a' + rune(key-tcell.KeyCtrlA)
		e.Ctrl = true
	case key >= tcell.KeyF1 && key <= tcell.KeyF64:
		e.Key = KeyFunction
		e.Fn = int(key-tcell.KeyF1) + 1
	default:
		if k, ok := specialKeys[key]; ok {
			e.Key = k
		}
	}

	// A Backtab is Shift+Tab by definition.
	if e.Key == KeyBacktab {
		e.Shift = true
	}
	return e
}
