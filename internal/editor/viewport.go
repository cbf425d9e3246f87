package editor

import (
	"github.com/rivo/uniseg"

	"github.com/quelltext/ted/internal/buffer"
)

// Viewport is the visible scroll window over the buffer: a top-left
// origin plus a size in display columns and rows. It is reclamped by
// an explicit ScrollTo call from the command handlers, never as a
// side effect of rendering.
type Viewport struct {
	top    int
	left   int
	width  int
	height int
}

// SetSize sets the visible text area size in columns and rows.
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Size returns the visible width and height.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Top returns the first visible row.
func (v *Viewport) Top() int {
	return v.top
}

// Left returns the first visible display column.
func (v *Viewport) Left() int {
	return v.left
}

// ScrollTo shifts the window so that row stays within
// [top, top+height-1] and displayCol within [left, left+width-1].
func (v *Viewport) ScrollTo(row, displayCol int) {
	if v.height > 0 {
		if row < v.top {
			v.top = row
		} else if row > v.top+v.height-1 {
			v.top = row - v.height + 1
		}
	}
	if v.width > 0 {
		if displayCol < v.left {
			v.left = displayCol
		} else if displayCol > v.left+v.width-1 {
			v.left = displayCol - v.width + 1
		}
	}
	if v.top < 0 {
		v.top = 0
	}
	if v.left < 0 {
		v.left = 0
	}
}

// DisplayColumn projects a rune column to a terminal display column:
// a tab occupies the indent display width instead of one column, and
// wide characters take their terminal cell width.
func DisplayColumn(line string, col int, indent buffer.Indent) int {
	width := 0
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			width += indent.DisplayWidth()
		} else {
			width += uniseg.StringWidth(string(r))
		}
		i++
	}
	return width
}
