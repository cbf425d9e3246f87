// Package editor composes the buffer, history, search, viewport and
// clipboard into the user-facing editing commands of a text area.
package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/quelltext/ted/internal/buffer"
	"github.com/quelltext/ted/internal/clipboard"
	"github.com/quelltext/ted/internal/history"
	"github.com/quelltext/ted/internal/search"
	"github.com/quelltext/ted/internal/textutil"
	"github.com/quelltext/ted/internal/types"
)

// TextArea is one editable buffer with its cursor, selection, undo
// history, search state and scroll window. All mutation goes through
// its command methods; content changes are routed through the history
// manager so every command undoes as a single step.
type TextArea struct {
	buf    *buffer.Buffer
	hist   *history.Manager
	find   *search.Engine
	clip   clipboard.Clipboard
	view   Viewport
	cursor types.Position
	anchor *types.Position
}

// New wraps a buffer in a text area.
func New(buf *buffer.Buffer, clip clipboard.Clipboard) *TextArea {
	return &TextArea{
		buf:  buf,
		hist: history.NewManager(buf),
		find: search.New(),
		clip: clip,
	}
}

// Buffer returns the underlying buffer.
func (ta *TextArea) Buffer() *buffer.Buffer {
	return ta.buf
}

// Search returns the text area's search engine.
func (ta *TextArea) Search() *search.Engine {
	return ta.find
}

// Viewport returns the scroll window for size updates and rendering.
func (ta *TextArea) Viewport() *Viewport {
	return &ta.view
}

// Cursor returns the current cursor position.
func (ta *TextArea) Cursor() types.Position {
	return ta.cursor
}

// SetCursor moves the cursor. A target outside the buffer, or past
// the end of its line, is ignored.
func (ta *TextArea) SetCursor(p types.Position) {
	if !ta.validPosition(p) {
		return
	}
	ta.cursor = p
	ta.scrollToCursor()
}

// Selection returns the anchor endpoint, if a selection is active.
func (ta *TextArea) Selection() (types.Position, bool) {
	if ta.anchor == nil {
		return types.Position{}, false
	}
	return *ta.anchor, true
}

// SetSelection places the selection anchor. An invalid target is
// ignored.
func (ta *TextArea) SetSelection(p types.Position) {
	if !ta.validPosition(p) {
		return
	}
	anchor := p
	ta.anchor = &anchor
}

// ClearSelection drops the selection anchor.
func (ta *TextArea) ClearSelection() {
	ta.anchor = nil
}

// SelectionRange returns the selection as a normalized (start, end)
// pair. ok is false when no selection is active.
func (ta *TextArea) SelectionRange() (start, end types.Position, ok bool) {
	if ta.anchor == nil {
		return types.Position{}, types.Position{}, false
	}
	start, end = types.Order(ta.cursor, *ta.anchor)
	return start, end, true
}

// SelectedText extracts the selected text: one fragment per covered
// row, joined with line feeds.
func (ta *TextArea) SelectedText() string {
	start, end, ok := ta.SelectionRange()
	if !ok {
		return ""
	}
	return strings.Join(ta.extractRange(start, end), "\n")
}

// extractRange returns the text between start and end as the line
// block form used by block insert and remove actions.
func (ta *TextArea) extractRange(start, end types.Position) []string {
	if start.Row == end.Row {
		return []string{textutil.Slice(ta.buf.Line(start.Row), start.Col, end.Col)}
	}
	block := []string{textutil.SliceFrom(ta.buf.Line(start.Row), start.Col)}
	for row := start.Row + 1; row < end.Row; row++ {
		block = append(block, ta.buf.Line(row))
	}
	return append(block, textutil.Slice(ta.buf.Line(end.Row), 0, end.Col))
}

func (ta *TextArea) validPosition(p types.Position) bool {
	return p.Row >= 0 && p.Row < ta.buf.LineCount() &&
		p.Col >= 0 && p.Col <= ta.lineLen(p.Row)
}

func (ta *TextArea) lineLen(row int) int {
	return utf8.RuneCountInString(ta.buf.Line(row))
}

func (ta *TextArea) clampCol(p types.Position) types.Position {
	if n := ta.lineLen(p.Row); p.Col > n {
		p.Col = n
	}
	return p
}

// scrollToCursor reclamps the viewport around the cursor. Every
// command that can move the cursor ends with this.
func (ta *TextArea) scrollToCursor() {
	col := DisplayColumn(ta.buf.Line(ta.cursor.Row), ta.cursor.Col, ta.buf.Indent())
	ta.view.ScrollTo(ta.cursor.Row, col)
}

// startSelection anchors a selection at the cursor when extending and
// none is active, and drops it when not extending.
func (ta *TextArea) startSelection(extend bool) {
	if !extend {
		ta.anchor = nil
		return
	}
	if ta.anchor == nil {
		anchor := ta.cursor
		ta.anchor = &anchor
	}
}

// MoveLeft moves one column left, crossing to the end of the previous
// row at column 0. Without extend, an active selection collapses to
// its start instead of moving.
func (ta *TextArea) MoveLeft(extend bool) {
	if !extend {
		if start, _, ok := ta.SelectionRange(); ok {
			ta.anchor = nil
			ta.cursor = start
			ta.scrollToCursor()
			return
		}
	}
	ta.startSelection(extend)
	switch {
	case ta.cursor.Col > 0:
		ta.cursor.Col--
	case ta.cursor.Row > 0:
		ta.cursor.Row--
		ta.cursor.Col = ta.lineLen(ta.cursor.Row)
	}
	ta.scrollToCursor()
}

// MoveRight mirrors MoveLeft; without extend an active selection
// collapses to its end.
func (ta *TextArea) MoveRight(extend bool) {
	if !extend {
		if _, end, ok := ta.SelectionRange(); ok {
			ta.anchor = nil
			ta.cursor = end
			ta.scrollToCursor()
			return
		}
	}
	ta.startSelection(extend)
	switch {
	case ta.cursor.Col < ta.lineLen(ta.cursor.Row):
		ta.cursor.Col++
	case ta.cursor.Row < ta.buf.LineCount()-1:
		ta.cursor.Row++
		ta.cursor.Col = 0
	}
	ta.scrollToCursor()
}

// MoveUp moves one row up, clamping the column to the new line.
func (ta *TextArea) MoveUp(extend bool) {
	ta.startSelection(extend)
	if ta.cursor.Row > 0 {
		ta.cursor.Row--
		ta.cursor = ta.clampCol(ta.cursor)
	}
	ta.scrollToCursor()
}

// MoveDown moves one row down, clamping the column to the new line.
func (ta *TextArea) MoveDown(extend bool) {
	ta.startSelection(extend)
	if ta.cursor.Row < ta.buf.LineCount()-1 {
		ta.cursor.Row++
		ta.cursor = ta.clampCol(ta.cursor)
	}
	ta.scrollToCursor()
}

// MoveHome moves to column 0.
func (ta *TextArea) MoveHome(extend bool) {
	ta.startSelection(extend)
	ta.cursor.Col = 0
	ta.scrollToCursor()
}

// MoveEnd moves to the end of the line.
func (ta *TextArea) MoveEnd(extend bool) {
	ta.startSelection(extend)
	ta.cursor.Col = ta.lineLen(ta.cursor.Row)
	ta.scrollToCursor()
}

// PageUp moves one viewport height up.
func (ta *TextArea) PageUp(extend bool) {
	ta.startSelection(extend)
	_, h := ta.view.Size()
	if h < 1 {
		h = 1
	}
	ta.cursor.Row -= h
	if ta.cursor.Row < 0 {
		ta.cursor.Row = 0
	}
	ta.cursor = ta.clampCol(ta.cursor)
	ta.scrollToCursor()
}

// PageDown moves one viewport height down.
func (ta *TextArea) PageDown(extend bool) {
	ta.startSelection(extend)
	_, h := ta.view.Size()
	if h < 1 {
		h = 1
	}
	ta.cursor.Row += h
	if last := ta.buf.LineCount() - 1; ta.cursor.Row > last {
		ta.cursor.Row = last
	}
	ta.cursor = ta.clampCol(ta.cursor)
	ta.scrollToCursor()
}

// MoveWordLeft moves to the previous word boundary, crossing to the
// end of the previous row when there is none on this line.
func (ta *TextArea) MoveWordLeft(extend bool) {
	ta.startSelection(extend)
	line := ta.buf.Line(ta.cursor.Row)
	if col, ok := textutil.PrevWord(line, ta.cursor.Col); ok {
		ta.cursor.Col = col
	} else if ta.cursor.Col > 0 {
		ta.cursor.Col = 0
	} else if ta.cursor.Row > 0 {
		ta.cursor.Row--
		ta.cursor.Col = ta.lineLen(ta.cursor.Row)
	}
	ta.scrollToCursor()
}

// MoveWordRight moves to the next word boundary, crossing to the
// start of the next row when there is none on this line.
func (ta *TextArea) MoveWordRight(extend bool) {
	ta.startSelection(extend)
	line := ta.buf.Line(ta.cursor.Row)
	if col, ok := textutil.NextWord(line, ta.cursor.Col); ok {
		ta.cursor.Col = col
	} else if n := ta.lineLen(ta.cursor.Row); ta.cursor.Col < n {
		ta.cursor.Col = n
	} else if ta.cursor.Row < ta.buf.LineCount()-1 {
		ta.cursor.Row++
		ta.cursor.Col = 0
	}
	ta.scrollToCursor()
}

// FindNext moves to the next search match after the cursor and
// selects it. It reports whether a match was found; the cursor does
// not wrap past the end of the buffer.
func (ta *TextArea) FindNext() bool {
	m, ok := ta.find.Forward(ta.buf, ta.cursor)
	if !ok {
		return false
	}
	ta.selectMatch(m)
	return true
}

// FindPrev moves to the previous search match before the cursor and
// selects it.
func (ta *TextArea) FindPrev() bool {
	m, ok := ta.find.Backward(ta.buf, ta.cursor)
	if !ok {
		return false
	}
	ta.selectMatch(m)
	return true
}

func (ta *TextArea) selectMatch(m search.Match) {
	start, end := m.Range()
	ta.cursor = start
	ta.anchor = &end
	ta.scrollToCursor()
}
