// Package app is the multi-buffer application shell: it owns the
// screen, routes key events to the active text area or the search
// box, and draws the frame.
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/quelltext/ted/internal/buffer"
	"github.com/quelltext/ted/internal/clipboard"
	"github.com/quelltext/ted/internal/config"
	"github.com/quelltext/ted/internal/editor"
	"github.com/quelltext/ted/internal/input"
	"github.com/quelltext/ted/internal/logger"
	"github.com/quelltext/ted/internal/searchbox"
	"github.com/quelltext/ted/internal/statusbar"
	"github.com/quelltext/ted/internal/tui"
	"github.com/quelltext/ted/internal/types"
)

// App glues the terminal, the open buffers and the widgets together.
// Exactly one text area is active and receives input at a time.
type App struct {
	cfg    *config.Config
	term   *tui.TUI
	areas  []*editor.TextArea
	active int

	status *statusbar.StatusBar
	search *searchbox.SearchBox

	// Cursor to restore when a search is cancelled.
	searchOrigin types.Position
	quitWarned   bool
	quit         bool
}

// New loads one buffer per path (or a single empty buffer) and sets
// up the terminal.
func New(cfg *config.Config, paths []string) (*App, error) {
	term, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	clip := clipboard.New(cfg.Editor.SystemClipboard)

	var areas []*editor.TextArea
	for _, path := range paths {
		buf, err := buffer.LoadFile(path, cfg.Editor.TabWidth)
		if err != nil {
			term.Close()
			return nil, err
		}
		areas = append(areas, editor.New(buf, clip))
	}
	if len(areas) == 0 {
		areas = append(areas, editor.New(buffer.New(), clip))
	}

	a := &App{
		cfg:    cfg,
		term:   term,
		areas:  areas,
		status: statusbar.New(statusbar.DefaultConfig()),
		search: searchbox.New(),
	}
	a.resize()
	return a, nil
}

// Close releases the terminal.
func (a *App) Close() {
	a.term.Close()
}

// Run is the event loop. It returns when the user quits.
func (a *App) Run() error {
	for !a.quit {
		a.draw()

		switch ev := a.term.PollEvent().(type) {
		case *tcell.EventResize:
			a.term.GetScreen().Sync()
			a.resize()
		case *tcell.EventKey:
			a.handleKey(input.FromTcell(ev))
		}
	}
	return nil
}

func (a *App) area() *editor.TextArea {
	return a.areas[a.active]
}

// resize recomputes the text area sizes from the screen size. One row
// is reserved for the status bar or the search box.
func (a *App) resize() {
	width, height := a.term.Size()
	for _, ta := range a.areas {
		w := width
		if a.cfg.Editor.LineNumbers {
			w -= ta.GutterWidth()
		}
		if w < 1 {
			w = 1
		}
		h := height - config.StatusBarHeight
		if h < 1 {
			h = 1
		}
		ta.Viewport().SetSize(w, h)
	}
}

func (a *App) handleKey(ev input.Event) {
	if a.search.IsOpen() {
		a.handleSearchKey(ev)
		return
	}

	if ev.Ctrl && ev.Key == input.KeyRune {
		switch ev.Rune {
		case 'q':
			a.requestQuit()
			return
		case 's':
			a.save()
			a.quitWarned = false
			return
		case 'f':
			a.openSearch()
			a.quitWarned = false
			return
		}
	}

	if ev.Alt && ev.Key == input.KeyRune && ev.Rune >= '1' && ev.Rune <= '9' {
		a.switchBuffer(int(ev.Rune - '1'))
		a.quitWarned = false
		return
	}

	a.quitWarned = false
	if !a.area().HandleEvent(ev) {
		logger.Debugf("App: unhandled key event %+v", ev)
	}
}

// requestQuit quits immediately when nothing is modified, otherwise
// asks for a second press.
func (a *App) requestQuit() {
	anyModified := false
	for _, ta := range a.areas {
		if ta.Buffer().IsModified() {
			anyModified = true
			break
		}
	}
	if !anyModified || a.quitWarned {
		a.quit = true
		return
	}
	a.quitWarned = true
	a.status.SetTemporaryMessage("Unsaved changes. Press Ctrl+Q again to quit without saving.")
}

func (a *App) save() {
	buf := a.area().Buffer()
	if err := buf.Save(""); err != nil {
		logger.Errorf("App: save failed: %v", err)
		a.status.SetTemporaryMessage("Save failed: %v", err)
		return
	}
	a.status.SetTemporaryMessage("Saved %s", buf.FilePath())
}

func (a *App) switchBuffer(slot int) {
	if slot < 0 || slot >= len(a.areas) || slot == a.active {
		return
	}
	a.active = slot
	a.resize()
	logger.Debugf("App: switched to buffer %d (%s)", slot+1, a.area().Buffer().FilePath())
}

func (a *App) openSearch() {
	a.searchOrigin = a.area().Cursor()
	a.search.Open()
}

// handleSearchKey routes keys to the search box and reacts to its
// outcome: typing re-runs the search from the opening position, Down
// and Up step through matches, Enter keeps the match, Escape restores
// the opening position.
func (a *App) handleSearchKey(ev input.Event) {
	ta := a.area()
	switch a.search.HandleEvent(ev) {
	case searchbox.ActionChanged:
		ta.Search().SetPattern(a.search.Text())
		ta.SetCursor(a.searchOrigin)
		ta.ClearSelection()
		ta.FindNext()
		a.reportPatternError(ta)
	case searchbox.ActionSearchForward:
		if !ta.FindNext() {
			a.status.SetTemporaryMessage("No match below")
		}
		a.reportPatternError(ta)
	case searchbox.ActionSearchBackward:
		if !ta.FindPrev() {
			a.status.SetTemporaryMessage("No match above")
		}
		a.reportPatternError(ta)
	case searchbox.ActionAccept:
		a.search.Close()
	case searchbox.ActionCancel:
		ta.SetCursor(a.searchOrigin)
		ta.ClearSelection()
		a.search.Close()
	}
}

func (a *App) reportPatternError(ta *editor.TextArea) {
	if err := ta.Search().Err(); err != nil {
		a.search.SetError(err.Error())
	} else {
		a.search.ClearError()
	}
}

func (a *App) draw() {
	ta := a.area()
	width, height := a.term.Size()

	buf := ta.Buffer()
	a.status.SetSlotInfo(a.active, len(a.areas))
	a.status.SetFileInfo(buf.FilePath(), buf.IsModified())
	if start, end, ok := ta.SelectionRange(); ok {
		a.status.SetSelectionInfo(start, end)
	} else {
		a.status.SetCursorInfo(ta.Cursor())
	}

	a.term.Clear()
	tui.DrawEditor(a.term, ta, a.cfg.Editor.LineNumbers)

	if a.search.IsOpen() {
		a.search.Draw(a.term.GetScreen(), width, height-1)
		a.term.GetScreen().ShowCursor(a.search.CursorX(), height-1)
	} else {
		a.status.Draw(a.term.GetScreen(), width, height)
		tui.DrawCursor(a.term, ta, a.cfg.Editor.LineNumbers)
	}
	a.term.Show()
}
