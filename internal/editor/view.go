package editor

import (
	"strconv"

	"github.com/quelltext/ted/internal/types"
)

// Span is a half-open rune-column range on one row.
type Span struct {
	Start int
	End   int
}

// RowView is everything the paint routine needs for one visible row:
// the text, the selection sub-range intersecting it, the search match
// sub-ranges, and the line-number label.
type RowView struct {
	Row       int
	Text      string
	Label     string
	Selection *Span
	Matches   []Span
}

// GutterWidth returns the width of the line-number gutter: the digit
// count of the largest line number plus one column of padding.
func (ta *TextArea) GutterWidth() int {
	return len(strconv.Itoa(ta.buf.LineCount())) + 1
}

// Rows produces the render views for the currently visible rows, in
// top-to-bottom order.
func (ta *TextArea) Rows() []RowView {
	_, height := ta.view.Size()
	labelWidth := ta.GutterWidth() - 1

	start, end, hasSel := ta.SelectionRange()

	var out []RowView
	for row := ta.view.Top(); row < ta.view.Top()+height && row < ta.buf.LineCount(); row++ {
		line := ta.buf.Line(row)
		rv := RowView{
			Row:   row,
			Text:  line,
			Label: pad(strconv.Itoa(row+1), labelWidth),
		}
		if hasSel {
			if sel, ok := selectionOnRow(row, line, start, end); ok {
				rv.Selection = &sel
			}
		}
		for _, m := range ta.find.MatchesOnLine(row, line) {
			rv.Matches = append(rv.Matches, Span{Start: m.Start, End: m.End})
		}
		out = append(out, rv)
	}
	return out
}

// CursorScreenPosition returns the cursor's terminal cell relative to
// the text area origin, after tab expansion and viewport offsets. The
// gutter is not included; callers add GutterWidth themselves.
func (ta *TextArea) CursorScreenPosition() (x, y int) {
	col := DisplayColumn(ta.buf.Line(ta.cursor.Row), ta.cursor.Col, ta.buf.Indent())
	return col - ta.view.Left(), ta.cursor.Row - ta.view.Top()
}

// selectionOnRow intersects the normalized selection with one row.
func selectionOnRow(row int, line string, start, end types.Position) (Span, bool) {
	if row < start.Row || row > end.Row || start == end {
		return Span{}, false
	}
	s := Span{Start: 0, End: runeLen(line)}
	if row == start.Row {
		s.Start = start.Col
	}
	if row == end.Row {
		s.End = end.Col
	}
	if s.Start > s.End {
		return Span{}, false
	}
	return s, true
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func pad(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}
