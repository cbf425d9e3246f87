// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/quelltext/ted/internal/editor"
)

var (
	styleDefault    = tcell.StyleDefault
	styleLineNumber = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelection  = tcell.StyleDefault.Reverse(true)
	styleMatch      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// inSpan reports whether rune column col falls inside the half-open
// span.
func inSpan(col int, s editor.Span) bool {
	return col >= s.Start && col < s.End
}

// styleFor picks the style for one rune column: selection wins over a
// search match, which wins over the default.
func styleFor(col int, rv editor.RowView) tcell.Style {
	if rv.Selection != nil && inSpan(col, *rv.Selection) {
		return styleSelection
	}
	for _, m := range rv.Matches {
		if inSpan(col, m) {
			return styleMatch
		}
	}
	return styleDefault
}

// DrawEditor paints the visible rows of a text area into the region
// above the status bar, with an optional line-number gutter.
func DrawEditor(t *TUI, ta *editor.TextArea, lineNumbers bool) {
	width, height := t.Size()
	viewWidth, viewHeight := ta.Viewport().Size()
	if viewWidth <= 0 || viewHeight <= 0 {
		return
	}

	gutterWidth := 0
	if lineNumbers {
		gutterWidth = ta.GutterWidth()
		if gutterWidth >= width {
			gutterWidth = 0
		}
	}

	left := ta.Viewport().Left()
	tabWidth := ta.Buffer().Indent().DisplayWidth()

	for screenY := 0; screenY < viewHeight && screenY < height; screenY++ {
		for fillX := 0; fillX < width; fillX++ {
			t.screen.SetContent(fillX, screenY, ' ', nil, styleDefault)
		}
	}

	for screenY, rv := range ta.Rows() {
		if screenY >= viewHeight {
			break
		}

		if gutterWidth > 0 {
			for i, r := range rv.Label {
				if i < gutterWidth-1 {
					t.screen.SetContent(i, screenY, r, nil, styleLineNumber)
				}
			}
		}

		visualX := 0
		runeIndex := 0
		gr := uniseg.NewGraphemes(rv.Text)
		for gr.Next() {
			runes := gr.Runes()
			style := styleFor(runeIndex, rv)

			clusterWidth := gr.Width()
			if len(runes) == 1 && runes[0] == '\t' {
				clusterWidth = tabWidth
			}

			for cw := 0; cw < clusterWidth; cw++ {
				screenX := visualX + cw - left + gutterWidth
				if screenX < gutterWidth || screenX >= width {
					continue
				}
				r := ' '
				var combining []rune
				if cw == 0 && runes[0] != '\t' {
					r = runes[0]
					combining = runes[1:]
				}
				t.screen.SetContent(screenX, screenY, r, combining, style)
			}

			visualX += clusterWidth
			runeIndex += len(runes)
			if visualX >= left+viewWidth {
				break
			}
		}
	}
}

// DrawCursor positions the terminal cursor, hiding it when it falls
// outside the visible text area.
func DrawCursor(t *TUI, ta *editor.TextArea, lineNumbers bool) {
	width, _ := t.Size()
	viewWidth, viewHeight := ta.Viewport().Size()

	gutterWidth := 0
	if lineNumbers {
		gutterWidth = ta.GutterWidth()
		if gutterWidth >= width {
			gutterWidth = 0
		}
	}

	x, y := ta.CursorScreenPosition()
	screenX := x + gutterWidth
	if x < 0 || y < 0 || y >= viewHeight || screenX >= gutterWidth+viewWidth || screenX >= width {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, y)
}
