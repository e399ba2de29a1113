package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplySimpleMove(t *testing.T) {
	t.Run("moves the piece and nothing else", func(t *testing.T) {
		b := NewBoard()
		before := b
		mv := Move{From: Square{Row: 5, Col: 3}, Path: []Direction{NW}}

		require.NoError(t, b.Apply(mv, Red, StandardRules()))
		require.Equal(t, Empty, b[5][3], "Origin should be vacated")
		require.Equal(t, RedMan, b[4][2], "Destination should hold the piece")
		changed := 0
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if b[r][c] != before[r][c] {
					changed++
				}
			}
		}
		require.Equal(t, 2, changed, "Only origin and destination may change")
	})

	t.Run("rejects bad plays without touching the board", func(t *testing.T) {
		b := NewBoard()
		before := b
		cases := []struct {
			name string
			mv   Move
			side Player
			err  error
		}{
			{"collision", Move{From: Square{0, 0}, Path: []Direction{SE}}, Black, ErrInvalidPlay},
			{"off board", Move{From: Square{2, 0}, Path: []Direction{SW}}, Black, ErrInvalidPlay},
			{"empty origin", Move{From: Square{3, 1}, Path: []Direction{SW}}, Black, ErrMissingPiece},
			{"wrong player", Move{From: Square{5, 7}, Path: []Direction{NW}}, Black, ErrWrongPlayer},
			{"wrong direction", Move{From: Square{2, 0}, Path: []Direction{NE}}, Black, ErrInvalidPlay},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				require.ErrorIs(t, b.Apply(tc.mv, tc.side, StandardRules()), tc.err)
				require.Equal(t, before, b, "Invalid play must not change the board")
			})
		}
	})

	t.Run("crowns a man on the far row", func(t *testing.T) {
		var b Board
		b[1][1] = RedMan
		mv := Move{From: Square{1, 1}, Path: []Direction{NW}}
		require.NoError(t, b.Apply(mv, Red, StandardRules()))
		require.Equal(t, RedKing, b[0][0])
	})
}

func TestApplyJump(t *testing.T) {
	t.Run("executes a full chain", func(t *testing.T) {
		var b Board
		b[0][0] = BlackKing
		b[1][1] = RedMan
		b[3][3] = RedKing
		b[3][5] = RedMan
		mv := Move{From: Square{0, 0}, Jump: true, Path: []Direction{SE, SE, NE}}

		require.NoError(t, b.Apply(mv, Black, StandardRules()))
		require.Equal(t, BlackKing, b[2][6], "King should land at the chain's end")
		require.Equal(t, Empty, b[0][0])
		require.Equal(t, Empty, b[1][1])
		require.Equal(t, Empty, b[3][3])
		require.Equal(t, Empty, b[3][5])
		require.Equal(t, 1, b.Count(Red), "Three red pieces should be gone")
	})

	t.Run("a broken chain restores the board", func(t *testing.T) {
		var b Board
		b[0][0] = BlackKing
		b[1][1] = RedMan
		before := b
		// Second link jumps over nothing.
		mv := Move{From: Square{0, 0}, Jump: true, Path: []Direction{SE, SE}}

		require.ErrorIs(t, b.Apply(mv, Black, StandardRules()), ErrInvalidPlay)
		require.Equal(t, before, b)
	})

	t.Run("jumping our own piece is invalid", func(t *testing.T) {
		var b Board
		b[4][4] = RedMan
		b[3][3] = RedMan
		mv := Move{From: Square{4, 4}, Jump: true, Path: []Direction{NW}}
		require.ErrorIs(t, b.Apply(mv, Red, StandardRules()), ErrInvalidPlay)
	})

	t.Run("engine output always applies cleanly", func(t *testing.T) {
		var b Board
		b[0][0] = BlackKing
		b[1][1] = RedMan
		b[1][3] = RedMan
		b[3][1] = RedMan
		b[3][3] = RedMan
		for _, m := range LegalMoves(b, Black, StandardRules()) {
			work := b
			require.NoError(t, work.Apply(m, Black, StandardRules()),
				"Engine move %v must be accepted by move application", m)
		}
	})
}

func TestSquareNotation(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				s := Square{Row: r, Col: c}
				parsed, err := ParseSquare(s.String())
				require.NoError(t, err)
				require.Equal(t, s, parsed)
			}
		}
	})

	t.Run("rejects off-board input", func(t *testing.T) {
		for _, in := range []string{"", "a", "i1", "a9", "11", "aa1"} {
			_, err := ParseSquare(in)
			require.Error(t, err, "Input %q should not parse", in)
		}
	})
}
