// internal/types/position.go
package types

// Position represents a cursor or text position within the buffer.
// Row is the 0-based line index.
// Col is the 0-based column counted in runes, not bytes.
type Position struct {
	Row int
	Col int // Rune index
}

// Cmp compares two positions lexicographically by (Row, Col).
// It returns -1 when p comes before other, +1 when it comes after,
// and 0 when they are equal.
func (p Position) Cmp(other Position) int {
	switch {
	case p == other:
		return 0
	case p.Row < other.Row || (p.Row == other.Row && p.Col < other.Col):
		return -1
	default:
		return 1
	}
}

// Less reports whether p comes strictly before other.
func (p Position) Less(other Position) bool {
	return p.Cmp(other) < 0
}

// Order returns the two positions as a normalized (start, end) pair
// with start <= end. Selections are direction-agnostic, so consumers
// always work on the normalized range.
func Order(a, b Position) (start, end Position) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// BytePosition is a snapshot translation of a Position's rune column
// into the byte offset of that line's content at the moment it was
// constructed. It is not live: it must be taken against the buffer
// state as it exists immediately before the action using it applies.
type BytePosition struct {
	Row    int
	Offset int // Byte offset within the line
}
