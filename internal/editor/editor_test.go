package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quelltext/ted/internal/buffer"
	"github.com/quelltext/ted/internal/clipboard"
	"github.com/quelltext/ted/internal/types"
)

func newTextArea(t *testing.T, lines ...string) *TextArea {
	t.Helper()
	b, err := buffer.Load(strings.NewReader(strings.Join(lines, "\n")), 4)
	require.NoError(t, err)
	ta := New(b, &clipboard.Register{})
	ta.Viewport().SetSize(80, 24)
	return ta
}

func pos(row, col int) types.Position {
	return types.Position{Row: row, Col: col}
}

func TestTypingAndUndo(t *testing.T) {
	ta := newTextArea(t, "")
	for _, r := range "hi" {
		ta.InsertRune(r)
	}
	require.Equal(t, []string{"hi"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 2), ta.Cursor())

	ta.Undo()
	require.Equal(t, []string{"h"}, ta.Buffer().Lines())
	ta.Undo()
	require.Equal(t, []string{""}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 0), ta.Cursor())

	ta.Redo()
	ta.Redo()
	require.Equal(t, []string{"hi"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 2), ta.Cursor())
}

func TestEnterSplitsLine(t *testing.T) {
	ta := newTextArea(t, "abc", "def")
	ta.SetCursor(pos(0, 3))

	ta.InsertNewline()
	require.Equal(t, []string{"abc", "", "def"}, ta.Buffer().Lines())
	require.Equal(t, pos(1, 0), ta.Cursor())

	ta.Undo()
	require.Equal(t, []string{"abc", "def"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 3), ta.Cursor())
}

func TestDeleteBackwardMergesLines(t *testing.T) {
	ta := newTextArea(t, "ab", "cd")
	ta.SetCursor(pos(1, 0))

	ta.DeleteBackward()
	require.Equal(t, []string{"abcd"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 2), ta.Cursor())

	ta.Undo()
	require.Equal(t, []string{"ab", "cd"}, ta.Buffer().Lines())
	require.Equal(t, pos(1, 0), ta.Cursor())
}

func TestDeleteForwardAtEndOfLine(t *testing.T) {
	ta := newTextArea(t, "ab", "cd")
	ta.SetCursor(pos(0, 2))

	ta.DeleteForward()
	require.Equal(t, []string{"abcd"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 2), ta.Cursor())
}

func TestDeleteBackwardMultibyte(t *testing.T) {
	ta := newTextArea(t, "aé")
	ta.SetCursor(pos(0, 2))

	ta.DeleteBackward()
	require.Equal(t, []string{"a"}, ta.Buffer().Lines())

	ta.Undo()
	require.Equal(t, []string{"aé"}, ta.Buffer().Lines())
}

func TestReplaceSelectionIsOneUndoStep(t *testing.T) {
	ta := newTextArea(t, "hello world")
	ta.SetCursor(pos(0, 0))
	ta.SetSelection(pos(0, 5))

	ta.InsertRune('X')
	require.Equal(t, []string{"X world"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 1), ta.Cursor())
	_, hasSel := ta.Selection()
	require.False(t, hasSel)

	ta.Undo()
	require.Equal(t, []string{"hello world"}, ta.Buffer().Lines())
	require.False(t, ta.History().CanUndo())
}

func TestMultiRowSelectionDelete(t *testing.T) {
	ta := newTextArea(t, "one", "two", "three")
	ta.SetCursor(pos(0, 1))
	ta.SetSelection(pos(2, 2))

	ta.DeleteBackward()
	require.Equal(t, []string{"oree"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 1), ta.Cursor())

	ta.Undo()
	require.Equal(t, []string{"one", "two", "three"}, ta.Buffer().Lines())
}

func TestAutoPairBracket(t *testing.T) {
	ta := newTextArea(t, "")
	ta.InsertRune('(')
	require.Equal(t, []string{"()"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 1), ta.Cursor())

	ta.Undo()
	require.Equal(t, []string{""}, ta.Buffer().Lines())
	require.False(t, ta.History().CanUndo())
}

func TestQuoteWithoutSelectionIsPlain(t *testing.T) {
	ta := newTextArea(t, "")
	ta.InsertRune('"')
	require.Equal(t, []string{"\""}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 1), ta.Cursor())
}

func TestWrapSelectionSameRow(t *testing.T) {
	ta := newTextArea(t, "ab")
	ta.SetCursor(pos(0, 0))
	ta.SetSelection(pos(0, 2))

	ta.InsertRune('(')
	require.Equal(t, []string{"(ab)"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 0), ta.Cursor())
	anchor, ok := ta.Selection()
	require.True(t, ok)
	require.Equal(t, pos(0, 4), anchor)

	ta.Undo()
	require.Equal(t, []string{"ab"}, ta.Buffer().Lines())
	require.False(t, ta.History().CanUndo())
}

func TestWrapSelectionAcrossRows(t *testing.T) {
	ta := newTextArea(t, "ab", "cd")
	ta.SetCursor(pos(0, 1))
	ta.SetSelection(pos(1, 1))

	ta.InsertRune('"')
	require.Equal(t, []string{"a\"b", "c\"d"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 1), ta.Cursor())
	anchor, ok := ta.Selection()
	require.True(t, ok)
	require.Equal(t, pos(1, 2), anchor)
}

func TestIndentSelection(t *testing.T) {
	ta := newTextArea(t, "  x", "  y")
	ta.Buffer().SetIndent(buffer.Indent{Tabs: false, Width: 4})
	ta.SetCursor(pos(0, 1))
	ta.SetSelection(pos(1, 2))

	ta.Indent()
	require.Equal(t, []string{"      x", "      y"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 5), ta.Cursor())
	anchor, ok := ta.Selection()
	require.True(t, ok)
	require.Equal(t, pos(1, 6), anchor)

	ta.Undo()
	require.Equal(t, []string{"  x", "  y"}, ta.Buffer().Lines())
	require.False(t, ta.History().CanUndo())
}

func TestIndentWithoutSelectionInsertsUnit(t *testing.T) {
	ta := newTextArea(t, "ab")
	ta.SetCursor(pos(0, 1))

	ta.Indent()
	require.Equal(t, []string{"a    b"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 5), ta.Cursor())
}

func TestOutdentSelection(t *testing.T) {
	ta := newTextArea(t, "    x", "    y")
	ta.SetCursor(pos(0, 4))
	ta.SetSelection(pos(1, 5))

	ta.Outdent()
	require.Equal(t, []string{"x", "y"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 0), ta.Cursor())
	anchor, ok := ta.Selection()
	require.True(t, ok)
	require.Equal(t, pos(1, 1), anchor)
}

func TestOutdentSkipsUnindentedRows(t *testing.T) {
	ta := newTextArea(t, "    x", "y")
	ta.SetCursor(pos(0, 4))
	ta.SetSelection(pos(1, 1))

	ta.Outdent()
	require.Equal(t, []string{"x", "y"}, ta.Buffer().Lines())
	anchor, _ := ta.Selection()
	require.Equal(t, pos(1, 1), anchor, "unindented row keeps its column")
}

func TestOutdentNoOpRecordsNothing(t *testing.T) {
	ta := newTextArea(t, "x")
	ta.SetCursor(pos(0, 1))

	ta.Outdent()
	require.Equal(t, []string{"x"}, ta.Buffer().Lines())
	require.False(t, ta.History().CanUndo())
}

func TestMoveLinesDown(t *testing.T) {
	ta := newTextArea(t, "a", "b", "c", "d")
	ta.SetCursor(pos(0, 0))
	ta.SetSelection(pos(1, 1))

	ta.MoveLinesDown()
	require.Equal(t, []string{"c", "a", "b", "d"}, ta.Buffer().Lines())
	require.Equal(t, pos(1, 0), ta.Cursor())
	anchor, _ := ta.Selection()
	require.Equal(t, pos(2, 1), anchor)

	ta.Undo()
	require.Equal(t, []string{"a", "b", "c", "d"}, ta.Buffer().Lines())
}

func TestMoveLinesUp(t *testing.T) {
	ta := newTextArea(t, "a", "b", "c")
	ta.SetCursor(pos(1, 0))
	ta.SetSelection(pos(2, 1))

	ta.MoveLinesUp()
	require.Equal(t, []string{"b", "c", "a"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 0), ta.Cursor())
}

func TestMoveLinesBoundaryNoOp(t *testing.T) {
	ta := newTextArea(t, "a", "b")

	ta.SetCursor(pos(0, 0))
	ta.MoveLinesUp()
	require.Equal(t, []string{"a", "b"}, ta.Buffer().Lines())
	require.False(t, ta.History().CanUndo())

	ta.SetCursor(pos(1, 0))
	ta.MoveLinesDown()
	require.Equal(t, []string{"a", "b"}, ta.Buffer().Lines())
	require.False(t, ta.History().CanUndo())
}

func TestCutPaste(t *testing.T) {
	ta := newTextArea(t, "one two")
	ta.SetCursor(pos(0, 0))
	ta.SetSelection(pos(0, 3))

	require.NoError(t, ta.Cut())
	require.Equal(t, []string{" two"}, ta.Buffer().Lines())

	ta.SetCursor(pos(0, 4))
	require.NoError(t, ta.Paste())
	require.Equal(t, []string{" twoone"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 7), ta.Cursor())
}

func TestPasteMultiLine(t *testing.T) {
	clip := &clipboard.Register{}
	require.NoError(t, clip.Set("X\nY"))

	b, err := buffer.Load(strings.NewReader("ab"), 4)
	require.NoError(t, err)
	ta := New(b, clip)
	ta.Viewport().SetSize(80, 24)
	ta.SetCursor(pos(0, 1))

	require.NoError(t, ta.Paste())
	require.Equal(t, []string{"aX", "Yb"}, ta.Buffer().Lines())
	require.Equal(t, pos(1, 1), ta.Cursor())

	ta.Undo()
	require.Equal(t, []string{"ab"}, ta.Buffer().Lines())
}

func TestCopyMultiRowSelection(t *testing.T) {
	ta := newTextArea(t, "one", "two", "three")
	ta.SetCursor(pos(0, 1))
	ta.SetSelection(pos(2, 2))

	require.Equal(t, "ne\ntwo\nth", ta.SelectedText())
	require.NoError(t, ta.Copy())
	got, err := ta.clip.Get()
	require.NoError(t, err)
	require.Equal(t, "ne\ntwo\nth", got)
}

func TestDeleteWordBackward(t *testing.T) {
	ta := newTextArea(t, "foo bar")
	ta.SetCursor(pos(0, 7))

	ta.DeleteWordBackward()
	require.Equal(t, []string{"foo "}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 4), ta.Cursor())

	ta.Undo()
	require.Equal(t, []string{"foo bar"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 7), ta.Cursor())
}

func TestDeleteWordForward(t *testing.T) {
	ta := newTextArea(t, "foo bar")
	ta.SetCursor(pos(0, 0))

	ta.DeleteWordForward()
	require.Equal(t, []string{" bar"}, ta.Buffer().Lines())
	require.Equal(t, pos(0, 0), ta.Cursor())
}

func TestSetCursorRejectsInvalidTargets(t *testing.T) {
	ta := newTextArea(t, "abc")
	ta.SetCursor(pos(0, 2))

	ta.SetCursor(pos(5, 0))
	require.Equal(t, pos(0, 2), ta.Cursor())
	ta.SetCursor(pos(0, 10))
	require.Equal(t, pos(0, 2), ta.Cursor())
	ta.SetCursor(pos(0, -1))
	require.Equal(t, pos(0, 2), ta.Cursor())
}

func TestMoveLeftCollapsesSelection(t *testing.T) {
	ta := newTextArea(t, "abcdef")
	ta.SetCursor(pos(0, 4))
	ta.SetSelection(pos(0, 1))

	ta.MoveLeft(false)
	require.Equal(t, pos(0, 1), ta.Cursor())
	_, hasSel := ta.Selection()
	require.False(t, hasSel)
}

func TestMoveRightCollapsesSelection(t *testing.T) {
	ta := newTextArea(t, "abcdef")
	ta.SetCursor(pos(0, 1))
	ta.SetSelection(pos(0, 4))

	ta.MoveRight(false)
	require.Equal(t, pos(0, 4), ta.Cursor())
}

func TestShiftMovementExtendsSelection(t *testing.T) {
	ta := newTextArea(t, "abc")
	ta.SetCursor(pos(0, 1))

	ta.MoveRight(true)
	ta.MoveRight(true)
	anchor, ok := ta.Selection()
	require.True(t, ok)
	require.Equal(t, pos(0, 1), anchor)
	require.Equal(t, pos(0, 3), ta.Cursor())
	require.Equal(t, "bc", ta.SelectedText())
}

func TestMoveAcrossLineBoundaries(t *testing.T) {
	ta := newTextArea(t, "ab", "cd")
	ta.SetCursor(pos(0, 2))

	ta.MoveRight(false)
	require.Equal(t, pos(1, 0), ta.Cursor())
	ta.MoveLeft(false)
	require.Equal(t, pos(0, 2), ta.Cursor())
}

func TestMoveUpDownClampsColumn(t *testing.T) {
	ta := newTextArea(t, "long line", "ab", "another long")
	ta.SetCursor(pos(0, 7))

	ta.MoveDown(false)
	require.Equal(t, pos(1, 2), ta.Cursor())
	ta.MoveDown(false)
	require.Equal(t, pos(2, 2), ta.Cursor())
}

func TestWordMotion(t *testing.T) {
	ta := newTextArea(t, "   abc def")
	ta.SetCursor(pos(0, 0))

	ta.MoveWordRight(false)
	require.Equal(t, pos(0, 6), ta.Cursor())
	ta.MoveWordRight(false)
	require.Equal(t, pos(0, 10), ta.Cursor())

	ta.MoveWordLeft(false)
	require.Equal(t, pos(0, 7), ta.Cursor())
}

func TestFindNextSelectsMatch(t *testing.T) {
	ta := newTextArea(t, "foo bar", "baz foo")
	ta.Search().SetPattern("foo")
	ta.SetCursor(pos(0, 0))

	require.True(t, ta.FindNext())
	require.Equal(t, pos(1, 4), ta.Cursor())
	anchor, ok := ta.Selection()
	require.True(t, ok)
	require.Equal(t, pos(1, 7), anchor)

	require.False(t, ta.FindNext(), "no wraparound past the last match")

	require.True(t, ta.FindPrev())
	require.Equal(t, pos(0, 0), ta.Cursor())
}
