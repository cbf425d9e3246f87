package textutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/quelltext/ted/internal/types"
)

func TestByteIndex(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want int
	}{
		{"", 0, 0},
		{"", 5, 0},
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 3, 3},
		{"abc", 99, 3},
		{"aéb", 1, 1},
		{"aéb", 2, 3}, // é is two bytes
		{"日本語", 1, 3},
		{"日本語", 3, 9},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ByteIndex(tt.line, tt.col), "ByteIndex(%q, %d)", tt.line, tt.col)
	}
}

func TestRuneIndexRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := rapid.String().Draw(rt, "line")
		col := rapid.IntRange(0, utf8.RuneCountInString(line)).Draw(rt, "col")
		require.Equal(rt, col, RuneIndex(line, ByteIndex(line, col)))
	})
}

func TestSlice(t *testing.T) {
	require.Equal(t, "bc", Slice("abcd", 1, 3))
	require.Equal(t, "本語", Slice("日本語", 1, 3))
	require.Equal(t, "", Slice("abc", 2, 1))
	require.Equal(t, "c", Slice("abc", 2, 99))
	require.Equal(t, "語x", SliceFrom("日本語x", 2))
}

func TestBytePositionSnapshot(t *testing.T) {
	pos := BytePosition(types.Position{Row: 4, Col: 2}, "日本語")
	require.Equal(t, types.BytePosition{Row: 4, Offset: 6}, pos)

	// Past end of line clamps to line length.
	pos = BytePosition(types.Position{Row: 0, Col: 9}, "ab")
	require.Equal(t, types.BytePosition{Row: 0, Offset: 2}, pos)
}

func TestNextWord(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want int
		ok   bool
	}{
		{"   abc ", 0, 6, true},
		{"   a!bc ", 0, 4, true},
		{"   !!bc ", 0, 5, true},
		{"   !!   ", 0, 5, true},
		{"abc", 0, 0, false},
		{"", 0, 0, false},
		{"   ", 0, 0, false},
		{"foo bar", 0, 3, true},
		{"foo bar", 3, 0, false},
	}
	for _, tt := range tests {
		got, ok := NextWord(tt.line, tt.col)
		require.Equal(t, tt.ok, ok, "NextWord(%q, %d)", tt.line, tt.col)
		if ok {
			require.Equal(t, tt.want, got, "NextWord(%q, %d)", tt.line, tt.col)
		}
	}
}

func TestPrevWord(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want int
		ok   bool
	}{
		{"   abc  ", 8, 3, true},
		{"   a!bc ", 8, 5, true},
		{"   bc!! ", 8, 5, true},
		{"   !!   ", 8, 3, true},
		{"abc", 3, 0, false},
		{"", 0, 0, false},
		{"foo bar", 7, 4, true},
		{"foo bar", 4, 0, false},
	}
	for _, tt := range tests {
		got, ok := PrevWord(tt.line, tt.col)
		require.Equal(t, tt.ok, ok, "PrevWord(%q, %d)", tt.line, tt.col)
		if ok {
			require.Equal(t, tt.want, got, "PrevWord(%q, %d)", tt.line, tt.col)
		}
	}
}
