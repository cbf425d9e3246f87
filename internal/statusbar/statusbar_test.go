package statusbar

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/quelltext/ted/internal/types"
)

func drawToString(t *testing.T, sb *StatusBar, width int) string {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, 2)

	sb.Draw(screen, width, 2)

	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, 1)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestStatusLineContent(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetSlotInfo(0, 2)
	sb.SetFileInfo("notes.txt", false)
	sb.SetCursorInfo(types.Position{Row: 4, Col: 9})

	require.Equal(t, "[1/2] notes.txt -- Line: 5, Col: 10", drawToString(t, sb, 60))
}

func TestStatusLineModifiedAndSelection(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetSlotInfo(1, 3)
	sb.SetFileInfo("", true)
	sb.SetSelectionInfo(types.Position{Row: 0, Col: 0}, types.Position{Row: 2, Col: 4})

	require.Equal(t, "[2/3] [No Name] [Modified] -- Selection: 1,1 - 3,5", drawToString(t, sb, 60))
}

func TestTemporaryMessageOverridesStatus(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetFileInfo("notes.txt", false)
	sb.SetTemporaryMessage("Saved %s", "notes.txt")

	require.Equal(t, "Saved notes.txt", drawToString(t, sb, 60))
}
