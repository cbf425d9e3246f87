// Package history provides the invertible edit primitives and the
// transaction-based undo/redo engine built from them.
package history

import (
	"strings"
	"unicode/utf8"

	"github.com/quelltext/ted/internal/buffer"
	"github.com/quelltext/ted/internal/types"
)

// Action is an atomic, invertible buffer mutation. Apply mutates the
// line sequence and returns the cursor recorded for the post-state;
// it never computes a cursor on its own. Invert returns the action
// that exactly reverses the mutation, with the cursor pair swapped.
//
// The BytePosition carried by an action is a snapshot taken against
// the buffer state as it exists immediately before Apply. Within a
// transaction each action must therefore be constructed only after
// the previous action has been applied, or its offsets go stale.
type Action interface {
	Apply(buf *buffer.Buffer) types.Position
	Invert() Action
}

// InsertChar inserts a single rune at a byte offset within a row.
type InsertChar struct {
	Char   rune
	Pos    types.BytePosition
	Before types.Position
	After  types.Position
}

func (a InsertChar) Apply(buf *buffer.Buffer) types.Position {
	line := buf.Line(a.Pos.Row)
	buf.SetLine(a.Pos.Row, line[:a.Pos.Offset]+string(a.Char)+line[a.Pos.Offset:])
	return a.After
}

func (a InsertChar) Invert() Action {
	return RemoveChar{Char: a.Char, Pos: a.Pos, Before: a.After, After: a.Before}
}

// RemoveChar removes a single rune at a byte offset within a row. The
// removed rune is recorded so the action can be inverted.
type RemoveChar struct {
	Char   rune
	Pos    types.BytePosition
	Before types.Position
	After  types.Position
}

func (a RemoveChar) Apply(buf *buffer.Buffer) types.Position {
	line := buf.Line(a.Pos.Row)
	end := a.Pos.Offset + utf8.RuneLen(a.Char)
	buf.SetLine(a.Pos.Row, line[:a.Pos.Offset]+line[end:])
	return a.After
}

func (a RemoveChar) Invert() Action {
	return InsertChar{Char: a.Char, Pos: a.Pos, Before: a.After, After: a.Before}
}

// InsertLinebreak splits the addressed row at the byte offset: the
// head stays, the tail becomes a new row immediately after.
type InsertLinebreak struct {
	Pos    types.BytePosition
	Before types.Position
	After  types.Position
}

func (a InsertLinebreak) Apply(buf *buffer.Buffer) types.Position {
	line := buf.Line(a.Pos.Row)
	buf.SetLine(a.Pos.Row, line[:a.Pos.Offset])
	buf.InsertLine(a.Pos.Row+1, line[a.Pos.Offset:])
	return a.After
}

func (a InsertLinebreak) Invert() Action {
	return RemoveLinebreak{Pos: a.Pos, Before: a.After, After: a.Before}
}

// RemoveLinebreak concatenates the addressed row with the following
// row and deletes that following row. Pos.Offset records the length
// of the addressed row so inversion re-splits at the same place.
type RemoveLinebreak struct {
	Pos    types.BytePosition
	Before types.Position
	After  types.Position
}

func (a RemoveLinebreak) Apply(buf *buffer.Buffer) types.Position {
	buf.SetLine(a.Pos.Row, buf.Line(a.Pos.Row)+buf.Line(a.Pos.Row+1))
	buf.RemoveLine(a.Pos.Row + 1)
	return a.After
}

func (a RemoveLinebreak) Invert() Action {
	return InsertLinebreak{Pos: a.Pos, Before: a.After, After: a.Before}
}

// InsertLines splices a contiguous block of lines in at a byte offset.
// A single-line block is inserted into the addressed row without
// creating new rows. A multi-line block splits the addressed row at
// the offset: the head is joined with the block's first line, the tail
// with its last, and interior lines become new rows in between.
type InsertLines struct {
	Lines  []string
	Pos    types.BytePosition
	Before types.Position
	After  types.Position
}

func (a InsertLines) Apply(buf *buffer.Buffer) types.Position {
	line := buf.Line(a.Pos.Row)
	head, tail := line[:a.Pos.Offset], line[a.Pos.Offset:]

	if len(a.Lines) == 1 {
		buf.SetLine(a.Pos.Row, head+a.Lines[0]+tail)
		return a.After
	}

	buf.SetLine(a.Pos.Row, head+a.Lines[0])
	for i := 1; i < len(a.Lines)-1; i++ {
		buf.InsertLine(a.Pos.Row+i, a.Lines[i])
	}
	buf.InsertLine(a.Pos.Row+len(a.Lines)-1, a.Lines[len(a.Lines)-1]+tail)
	return a.After
}

func (a InsertLines) Invert() Action {
	return RemoveLines{Lines: a.Lines, Pos: a.Pos, Before: a.After, After: a.Before}
}

// RemoveLines is the structural inverse of InsertLines. It
// reconstructs the row-splice boundaries from the recorded payload:
// the payload's line count and the addressed row must agree with the
// buffer's current shape. Applying it against a buffer mutated out of
// order is a contract violation, not a recoverable condition.
type RemoveLines struct {
	Lines  []string
	Pos    types.BytePosition
	Before types.Position
	After  types.Position
}

func (a RemoveLines) Apply(buf *buffer.Buffer) types.Position {
	line := buf.Line(a.Pos.Row)

	if len(a.Lines) == 1 {
		end := a.Pos.Offset + len(a.Lines[0])
		buf.SetLine(a.Pos.Row, line[:a.Pos.Offset]+line[end:])
		return a.After
	}

	lastRow := a.Pos.Row + len(a.Lines) - 1
	lastLine := buf.Line(lastRow)
	head := line[:a.Pos.Offset]
	tail := lastLine[len(a.Lines[len(a.Lines)-1]):]

	buf.SetLine(a.Pos.Row, head+tail)
	for row := lastRow; row > a.Pos.Row; row-- {
		buf.RemoveLine(row)
	}
	return a.After
}

func (a RemoveLines) Invert() Action {
	return InsertLines{Lines: a.Lines, Pos: a.Pos, Before: a.After, After: a.Before}
}

// SwapLines exchanges row Row with row Row+1.
type SwapLines struct {
	Row    int
	Before types.Position
	After  types.Position
}

func (a SwapLines) Apply(buf *buffer.Buffer) types.Position {
	buf.SwapLines(a.Row, a.Row+1)
	return a.After
}

func (a SwapLines) Invert() Action {
	return SwapLines{Row: a.Row, Before: a.After, After: a.Before}
}

// SplitBlock splits clipboard-style text on line feeds into the block
// form used by InsertLines and RemoveLines.
func SplitBlock(text string) []string {
	return strings.Split(text, "\n")
}
