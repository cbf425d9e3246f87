package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/quelltext/ted/internal/history"
	"github.com/quelltext/ted/internal/textutil"
	"github.com/quelltext/ted/internal/types"
)

// pairFor returns the closing delimiter for an opening one. Quotes
// pair only around a selection; typed bare they are ordinary
// characters.
func pairFor(r rune, withSelection bool) (rune, bool) {
	switch r {
	case '(':
		return ')', true
	case '[':
		return ']', true
	case '{':
		return '}', true
	case '"', '\'', '`':
		if withSelection {
			return r, true
		}
	}
	return 0, false
}

// History exposes the undo/redo engine, mainly for state queries.
func (ta *TextArea) History() *history.Manager {
	return ta.hist
}

// byteAt snapshots p against the current content of its line. The
// snapshot goes stale on the next mutation of that line, so it is
// taken immediately before constructing each action.
func (ta *TextArea) byteAt(p types.Position) types.BytePosition {
	return textutil.BytePosition(p, ta.buf.Line(p.Row))
}

// deleteRange removes the text between start and end as one block
// action pushed into the open transaction, leaving the cursor at
// start.
func (ta *TextArea) deleteRange(start, end types.Position) {
	if start == end {
		ta.cursor = start
		return
	}
	ta.cursor = ta.hist.Push(history.RemoveLines{
		Lines:  ta.extractRange(start, end),
		Pos:    ta.byteAt(start),
		Before: ta.cursor,
		After:  start,
	})
}

// InsertRune handles one typed character. An active selection is
// either wrapped (pairing delimiters) or replaced; an opening bracket
// with no selection inserts its closer too, leaving the cursor
// between the pair.
func (ta *TextArea) InsertRune(r rune) {
	ta.hist.Begin()
	defer ta.hist.Commit()

	if start, end, ok := ta.SelectionRange(); ok && start != end {
		if closer, pair := pairFor(r, true); pair {
			ta.wrapSelection(start, end, r, closer)
			return
		}
		ta.deleteRange(start, end)
	}
	ta.anchor = nil

	after := types.Position{Row: ta.cursor.Row, Col: ta.cursor.Col + 1}
	ta.cursor = ta.hist.Push(history.InsertChar{
		Char:   r,
		Pos:    ta.byteAt(ta.cursor),
		Before: ta.cursor,
		After:  after,
	})

	if closer, pair := pairFor(r, false); pair {
		ta.hist.Push(history.InsertChar{
			Char:   closer,
			Pos:    ta.byteAt(ta.cursor),
			Before: ta.cursor,
			After:  ta.cursor,
		})
	}
	ta.scrollToCursor()
}

// wrapSelection surrounds the selection with a delimiter pair and
// extends it by one column on each side: the earlier endpoint keeps
// its position (now on the opening delimiter), the later endpoint
// moves past the closer.
func (ta *TextArea) wrapSelection(start, end types.Position, open, closer rune) {
	cursorAtEnd := ta.cursor == end

	newEnd := end
	closePos := end
	if start.Row == end.Row {
		closePos.Col++
		newEnd.Col += 2
	} else {
		newEnd.Col++
	}
	final := start
	if cursorAtEnd {
		final = newEnd
	}

	ta.hist.Push(history.InsertChar{
		Char:   open,
		Pos:    ta.byteAt(start),
		Before: ta.cursor,
		After:  ta.cursor,
	})
	ta.hist.Push(history.InsertChar{
		Char:   closer,
		Pos:    ta.byteAt(closePos),
		Before: ta.cursor,
		After:  final,
	})

	ta.cursor = final
	other := newEnd
	if cursorAtEnd {
		other = start
	}
	ta.anchor = &other
	ta.scrollToCursor()
}

// InsertNewline splits the current line at the cursor, replacing any
// active selection first.
func (ta *TextArea) InsertNewline() {
	ta.hist.Begin()
	defer ta.hist.Commit()

	if start, end, ok := ta.SelectionRange(); ok {
		ta.deleteRange(start, end)
		ta.anchor = nil
	}
	ta.cursor = ta.hist.Push(history.InsertLinebreak{
		Pos:    ta.byteAt(ta.cursor),
		Before: ta.cursor,
		After:  types.Position{Row: ta.cursor.Row + 1, Col: 0},
	})
	ta.scrollToCursor()
}

// DeleteBackward removes the selection, or the character before the
// cursor, or merges with the previous line at column 0.
func (ta *TextArea) DeleteBackward() {
	ta.hist.Begin()
	defer ta.hist.Commit()

	if start, end, ok := ta.SelectionRange(); ok && start != end {
		ta.deleteRange(start, end)
		ta.anchor = nil
		ta.scrollToCursor()
		return
	}
	ta.anchor = nil

	switch {
	case ta.cursor.Col > 0:
		line := ta.buf.Line(ta.cursor.Row)
		offset := textutil.ByteIndex(line, ta.cursor.Col-1)
		r, _ := utf8.DecodeRuneInString(line[offset:])
		ta.cursor = ta.hist.Push(history.RemoveChar{
			Char:   r,
			Pos:    types.BytePosition{Row: ta.cursor.Row, Offset: offset},
			Before: ta.cursor,
			After:  types.Position{Row: ta.cursor.Row, Col: ta.cursor.Col - 1},
		})
	case ta.cursor.Row > 0:
		prev := ta.buf.Line(ta.cursor.Row - 1)
		ta.cursor = ta.hist.Push(history.RemoveLinebreak{
			Pos:    types.BytePosition{Row: ta.cursor.Row - 1, Offset: len(prev)},
			Before: ta.cursor,
			After:  types.Position{Row: ta.cursor.Row - 1, Col: utf8.RuneCountInString(prev)},
		})
	}
	ta.scrollToCursor()
}

// DeleteForward removes the selection, or the character at the
// cursor, or merges with the next line at end of line.
func (ta *TextArea) DeleteForward() {
	ta.hist.Begin()
	defer ta.hist.Commit()

	if start, end, ok := ta.SelectionRange(); ok && start != end {
		ta.deleteRange(start, end)
		ta.anchor = nil
		ta.scrollToCursor()
		return
	}
	ta.anchor = nil

	line := ta.buf.Line(ta.cursor.Row)
	switch {
	case ta.cursor.Col < ta.lineLen(ta.cursor.Row):
		offset := textutil.ByteIndex(line, ta.cursor.Col)
		r, _ := utf8.DecodeRuneInString(line[offset:])
		ta.hist.Push(history.RemoveChar{
			Char:   r,
			Pos:    types.BytePosition{Row: ta.cursor.Row, Offset: offset},
			Before: ta.cursor,
			After:  ta.cursor,
		})
	case ta.cursor.Row < ta.buf.LineCount()-1:
		ta.hist.Push(history.RemoveLinebreak{
			Pos:    types.BytePosition{Row: ta.cursor.Row, Offset: len(line)},
			Before: ta.cursor,
			After:  ta.cursor,
		})
	}
	ta.scrollToCursor()
}

// DeleteWordBackward removes from the previous word boundary to the
// cursor. At column 0 it merges lines like DeleteBackward.
func (ta *TextArea) DeleteWordBackward() {
	if _, _, ok := ta.SelectionRange(); ok || ta.cursor.Col == 0 {
		ta.DeleteBackward()
		return
	}

	line := ta.buf.Line(ta.cursor.Row)
	target, ok := textutil.PrevWord(line, ta.cursor.Col)
	if !ok {
		target = 0
	}
	if target >= ta.cursor.Col {
		return
	}

	ta.hist.Begin()
	ta.cursor = ta.hist.Push(history.RemoveLines{
		Lines:  []string{textutil.Slice(line, target, ta.cursor.Col)},
		Pos:    types.BytePosition{Row: ta.cursor.Row, Offset: textutil.ByteIndex(line, target)},
		Before: ta.cursor,
		After:  types.Position{Row: ta.cursor.Row, Col: target},
	})
	ta.hist.Commit()
	ta.scrollToCursor()
}

// DeleteWordForward removes from the cursor to the next word
// boundary. At end of line it merges lines like DeleteForward.
func (ta *TextArea) DeleteWordForward() {
	_, _, hasSel := ta.SelectionRange()
	if hasSel || ta.cursor.Col >= ta.lineLen(ta.cursor.Row) {
		ta.DeleteForward()
		return
	}

	line := ta.buf.Line(ta.cursor.Row)
	target, ok := textutil.NextWord(line, ta.cursor.Col)
	if !ok {
		target = ta.lineLen(ta.cursor.Row)
	}
	if target <= ta.cursor.Col {
		return
	}

	ta.hist.Begin()
	ta.hist.Push(history.RemoveLines{
		Lines:  []string{textutil.Slice(line, ta.cursor.Col, target)},
		Pos:    ta.byteAt(ta.cursor),
		Before: ta.cursor,
		After:  ta.cursor,
	})
	ta.hist.Commit()
	ta.scrollToCursor()
}

// Indent inserts one indent unit. With an active selection every row
// in the covered range is indented and both selection endpoints shift
// right by the indent width; without one the unit is inserted at the
// cursor.
func (ta *TextArea) Indent() {
	ta.hist.Begin()
	defer ta.hist.Commit()

	in := ta.buf.Indent()
	unit := in.Unit()

	start, end, ok := ta.SelectionRange()
	if !ok {
		ta.cursor = ta.hist.Push(history.InsertLines{
			Lines:  []string{unit},
			Pos:    ta.byteAt(ta.cursor),
			Before: ta.cursor,
			After:  types.Position{Row: ta.cursor.Row, Col: ta.cursor.Col + in.Cols()},
		})
		ta.scrollToCursor()
		return
	}

	newCursor := ta.cursor
	newCursor.Col += in.Cols()
	newAnchor := *ta.anchor
	newAnchor.Col += in.Cols()

	before := ta.cursor
	for row := start.Row; row <= end.Row; row++ {
		ta.hist.Push(history.InsertLines{
			Lines:  []string{unit},
			Pos:    types.BytePosition{Row: row},
			Before: before,
			After:  newCursor,
		})
	}
	ta.cursor = newCursor
	ta.anchor = &newAnchor
	ta.scrollToCursor()
}

// Outdent removes one leading indent unit from every row in the
// covered range. Rows that do not start with the exact unit are left
// alone; when no row changes, nothing is recorded.
func (ta *TextArea) Outdent() {
	in := ta.buf.Indent()
	unit := in.Unit()

	startRow, endRow := ta.cursor.Row, ta.cursor.Row
	if start, end, ok := ta.SelectionRange(); ok {
		startRow, endRow = start.Row, end.Row
	}

	var rows []int
	for row := startRow; row <= endRow; row++ {
		if strings.HasPrefix(ta.buf.Line(row), unit) {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return
	}

	newCursor := ta.cursor
	newAnchor := ta.anchor
	for _, row := range rows {
		if row == newCursor.Row {
			newCursor.Col -= in.Cols()
			if newCursor.Col < 0 {
				newCursor.Col = 0
			}
		}
		if newAnchor != nil && row == newAnchor.Row {
			a := *newAnchor
			a.Col -= in.Cols()
			if a.Col < 0 {
				a.Col = 0
			}
			newAnchor = &a
		}
	}

	ta.hist.Begin()
	before := ta.cursor
	for _, row := range rows {
		ta.hist.Push(history.RemoveLines{
			Lines:  []string{unit},
			Pos:    types.BytePosition{Row: row},
			Before: before,
			After:  newCursor,
		})
	}
	ta.hist.Commit()

	ta.cursor = newCursor
	ta.anchor = newAnchor
	ta.scrollToCursor()
}

// MoveLinesUp slides the covered row block up one row with a chain of
// adjacent swaps. No-op when the block touches the top.
func (ta *TextArea) MoveLinesUp() {
	startRow, endRow := ta.cursor.Row, ta.cursor.Row
	if start, end, ok := ta.SelectionRange(); ok {
		startRow, endRow = start.Row, end.Row
	}
	if startRow == 0 {
		return
	}

	newCursor := ta.cursor
	newCursor.Row--

	ta.hist.Begin()
	for row := startRow; row <= endRow; row++ {
		ta.hist.Push(history.SwapLines{Row: row - 1, Before: ta.cursor, After: newCursor})
	}
	ta.hist.Commit()

	ta.cursor = newCursor
	if ta.anchor != nil {
		a := *ta.anchor
		a.Row--
		ta.anchor = &a
	}
	ta.scrollToCursor()
}

// MoveLinesDown slides the covered row block down one row. No-op when
// the block touches the bottom.
func (ta *TextArea) MoveLinesDown() {
	startRow, endRow := ta.cursor.Row, ta.cursor.Row
	if start, end, ok := ta.SelectionRange(); ok {
		startRow, endRow = start.Row, end.Row
	}
	if endRow >= ta.buf.LineCount()-1 {
		return
	}

	newCursor := ta.cursor
	newCursor.Row++

	ta.hist.Begin()
	for row := endRow; row >= startRow; row-- {
		ta.hist.Push(history.SwapLines{Row: row, Before: ta.cursor, After: newCursor})
	}
	ta.hist.Commit()

	ta.cursor = newCursor
	if ta.anchor != nil {
		a := *ta.anchor
		a.Row++
		ta.anchor = &a
	}
	ta.scrollToCursor()
}

// Copy places the selected text on the clipboard.
func (ta *TextArea) Copy() error {
	text := ta.SelectedText()
	if text == "" {
		return nil
	}
	return ta.clip.Set(text)
}

// Cut copies the selection then removes it as one undo step.
func (ta *TextArea) Cut() error {
	start, end, ok := ta.SelectionRange()
	if !ok || start == end {
		return nil
	}
	if err := ta.clip.Set(ta.SelectedText()); err != nil {
		return err
	}

	ta.hist.Begin()
	ta.deleteRange(start, end)
	ta.hist.Commit()
	ta.anchor = nil
	ta.scrollToCursor()
	return nil
}

// Paste inserts the clipboard content at the cursor, replacing any
// active selection in the same undo step. Multi-line content is split
// on line feeds into a block insert.
func (ta *TextArea) Paste() error {
	text, err := ta.clip.Get()
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	block := history.SplitBlock(text)

	ta.hist.Begin()
	defer ta.hist.Commit()

	if start, end, ok := ta.SelectionRange(); ok {
		ta.deleteRange(start, end)
		ta.anchor = nil
	}
	ta.cursor = ta.hist.Push(history.InsertLines{
		Lines:  block,
		Pos:    ta.byteAt(ta.cursor),
		Before: ta.cursor,
		After:  blockEnd(ta.cursor, block),
	})
	ta.scrollToCursor()
	return nil
}

// blockEnd is the cursor position after inserting block at p.
func blockEnd(p types.Position, block []string) types.Position {
	if len(block) == 1 {
		return types.Position{Row: p.Row, Col: p.Col + utf8.RuneCountInString(block[0])}
	}
	return types.Position{
		Row: p.Row + len(block) - 1,
		Col: utf8.RuneCountInString(block[len(block)-1]),
	}
}

// Undo reverts the most recent edit transaction.
func (ta *TextArea) Undo() {
	if cursor, ok := ta.hist.Undo(); ok {
		ta.anchor = nil
		ta.cursor = ta.clampPosition(cursor)
		ta.scrollToCursor()
	}
}

// Redo replays the most recently undone transaction.
func (ta *TextArea) Redo() {
	if cursor, ok := ta.hist.Redo(); ok {
		ta.anchor = nil
		ta.cursor = ta.clampPosition(cursor)
		ta.scrollToCursor()
	}
}

func (ta *TextArea) clampPosition(p types.Position) types.Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if last := ta.buf.LineCount() - 1; p.Row > last {
		p.Row = last
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return ta.clampCol(p)
}
