package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPositionCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", Position{1, 2}, Position{1, 2}, 0},
		{"earlier row", Position{0, 9}, Position{1, 0}, -1},
		{"later row", Position{2, 0}, Position{1, 9}, 1},
		{"same row earlier col", Position{1, 1}, Position{1, 2}, -1},
		{"same row later col", Position{1, 3}, Position{1, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Cmp(tt.b))
			require.Equal(t, -tt.want, tt.b.Cmp(tt.a))
		})
	}
}

func TestOrderNormalizes(t *testing.T) {
	a := Position{Row: 3, Col: 1}
	b := Position{Row: 1, Col: 7}

	start, end := Order(a, b)
	require.Equal(t, b, start)
	require.Equal(t, a, end)

	start, end = Order(b, a)
	require.Equal(t, b, start)
	require.Equal(t, a, end)
}

// Ordering must be a total order consistent with lexicographic
// (row, col) comparison.
func TestPositionOrderingTotal(t *testing.T) {
	gen := rapid.Custom(func(rt *rapid.T) Position {
		return Position{
			Row: rapid.IntRange(0, 1000).Draw(rt, "row"),
			Col: rapid.IntRange(0, 1000).Draw(rt, "col"),
		}
	})

	rapid.Check(t, func(rt *rapid.T) {
		a := gen.Draw(rt, "a")
		b := gen.Draw(rt, "b")
		c := gen.Draw(rt, "c")

		// Antisymmetry and totality.
		require.Equal(rt, -a.Cmp(b), b.Cmp(a))
		require.Equal(rt, a == b, a.Cmp(b) == 0)

		// Transitivity.
		if a.Cmp(b) <= 0 && b.Cmp(c) <= 0 {
			require.LessOrEqual(rt, a.Cmp(c), 0)
		}

		// Consistency with lexicographic comparison.
		wantLess := a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col)
		require.Equal(rt, wantLess, a.Less(b))

		start, end := Order(a, b)
		require.False(rt, end.Less(start))
	})
}
