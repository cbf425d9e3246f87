package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/quelltext/ted/internal/buffer"
	"github.com/quelltext/ted/internal/clipboard"
	"github.com/quelltext/ted/internal/types"
)

func snapshot(ta *TextArea) []string {
	return append([]string(nil), ta.Buffer().Lines()...)
}

// Any sequence of edit commands must unwind to the exact initial
// lines and cursor by undoing everything, and replay to the exact
// final lines and cursor by redoing everything. Commands that change
// nothing record nothing and leave the cursor in place, so they do
// not disturb either direction.
func TestRandomCommandsUndoRedoRoundTrip(t *testing.T) {
	lineGen := rapid.StringOfN(rapid.RuneFrom([]rune("ab (x\t")), 0, 8, -1)
	runeGen := rapid.SampledFrom([]rune("ab([{\"'x "))

	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(lineGen, 1, 5).Draw(t, "lines")
		b, err := buffer.Load(strings.NewReader(strings.Join(lines, "\n")), 4)
		require.NoError(t, err)
		ta := New(b, &clipboard.Register{})
		ta.Viewport().SetSize(40, 10)

		ta.SetCursor(types.Position{
			Row: rapid.IntRange(0, ta.Buffer().LineCount()-1).Draw(t, "startRow"),
			Col: rapid.IntRange(0, 8).Draw(t, "startCol"),
		})

		initial := snapshot(ta)
		initialCursor := ta.Cursor()

		ops := rapid.IntRange(1, 20).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 10).Draw(t, "op") {
			case 0:
				ta.InsertRune(runeGen.Draw(t, "rune"))
			case 1:
				ta.InsertNewline()
			case 2:
				ta.DeleteBackward()
			case 3:
				ta.DeleteForward()
			case 4:
				ta.DeleteWordBackward()
			case 5:
				ta.Indent()
			case 6:
				ta.Outdent()
			case 7:
				ta.MoveLinesUp()
			case 8:
				ta.MoveLinesDown()
			case 9:
				ta.SetSelection(types.Position{
					Row: rapid.IntRange(0, ta.Buffer().LineCount()-1).Draw(t, "selRow"),
					Col: rapid.IntRange(0, 10).Draw(t, "selCol"),
				})
			case 10:
				ta.ClearSelection()
			}
		}

		final := snapshot(ta)
		finalCursor := ta.Cursor()

		for ta.History().CanUndo() {
			ta.Undo()
		}
		require.Equal(t, initial, snapshot(ta))
		require.Equal(t, initialCursor, ta.Cursor())

		for ta.History().CanRedo() {
			ta.Redo()
		}
		require.Equal(t, final, snapshot(ta))
		require.Equal(t, finalCursor, ta.Cursor())
	})
}
