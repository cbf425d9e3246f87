// Package textutil provides byte/rune coordinate translation and
// rune-column slicing for single lines of text. Editing-facing
// coordinates are rune columns; storage mutation needs byte offsets,
// and every translation happens here.
package textutil

import (
	"unicode/utf8"

	"github.com/quelltext/ted/internal/types"
)

// ByteIndex returns the byte offset of the col-th rune boundary in
// line, or len(line) when col is at or past the end of the line.
func ByteIndex(line string, col int) int {
	if col <= 0 {
		return 0
	}
	runeIndex := 0
	for offset := range line {
		if runeIndex == col {
			return offset
		}
		runeIndex++
	}
	return len(line)
}

// RuneIndex converts a byte offset within line into a rune column.
// Offsets inside a multi-byte rune count the rune they fall in as not
// yet passed, matching how match spans are reported.
func RuneIndex(line string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(line) {
		offset = len(line)
	}
	return utf8.RuneCountInString(line[:offset])
}

// Slice returns the substring of line between two rune columns,
// clamping both to the line's end.
func Slice(line string, from, to int) string {
	start := ByteIndex(line, from)
	end := ByteIndex(line, to)
	if end < start {
		end = start
	}
	return line[start:end]
}

// SliceFrom returns the suffix of line starting at rune column from.
func SliceFrom(line string, from int) string {
	return line[ByteIndex(line, from):]
}

// BytePosition snapshots cursor's rune column as a byte offset into
// line. The snapshot is only valid against the exact line content it
// was taken from; it must be recomputed after any mutation of that
// line.
func BytePosition(cursor types.Position, line string) types.BytePosition {
	return types.BytePosition{
		Row:    cursor.Row,
		Offset: ByteIndex(line, cursor.Col),
	}
}
