package game

import (
	"fmt"
	"strings"
)

// Size is the board edge length.
const Size = 8

// Player identifies one of the two sides. Red is the match creator and
// moves first; black joins second.
type Player int

const (
	Red Player = iota
	Black
)

func (p Player) String() string {
	if p == Red {
		return "red"
	}
	return "black"
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Red {
		return Black
	}
	return Red
}

// Tile is the content of a single board cell.
type Tile int

const (
	Empty Tile = iota
	RedMan
	RedKing
	BlackMan
	BlackKing
)

func (t Tile) String() string {
	switch t {
	case RedMan:
		return "r"
	case RedKing:
		return "R"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	default:
		return "."
	}
}

// ParseTile reads a single-cell token from the textual board format.
func ParseTile(s string) (Tile, error) {
	switch s {
	case ".":
		return Empty, nil
	case "r":
		return RedMan, nil
	case "R":
		return RedKing, nil
	case "b":
		return BlackMan, nil
	case "B":
		return BlackKing, nil
	default:
		return Empty, fmt.Errorf("invalid tile %q", s)
	}
}

// BelongsTo reports whether the tile holds a piece of the given side.
func (t Tile) BelongsTo(p Player) bool {
	switch t {
	case RedMan, RedKing:
		return p == Red
	case BlackMan, BlackKing:
		return p == Black
	default:
		return false
	}
}

// Opposes reports whether the tile holds a piece of the other side.
func (t Tile) Opposes(p Player) bool {
	return t != Empty && !t.BelongsTo(p)
}

// IsKing reports whether the tile holds a crowned piece.
func (t Tile) IsKing() bool {
	return t == RedKing || t == BlackKing
}

// crowned upgrades a man to a king; kings and empty cells pass through.
func (t Tile) crowned() Tile {
	switch t {
	case RedMan:
		return RedKing
	case BlackMan:
		return BlackKing
	default:
		return t
	}
}

// Board is an 8x8 grid of tiles with value semantics: assignment copies,
// and == compares cell by cell. Row 0 is the black home edge.
type Board [Size][Size]Tile

// NewBoard returns the standard starting layout: black men on rows 0-2,
// red men on rows 5-7, pieces on alternating cells.
func NewBoard() Board {
	var b Board
	for r := 0; r < 3; r++ {
		for c := 0; c < Size; c++ {
			if (r+c)%2 == 0 {
				b[r][c] = BlackMan
			}
		}
	}
	for r := 5; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if (r+c)%2 == 0 {
				b[r][c] = RedMan
			}
		}
	}
	return b
}

// InBounds reports whether the coordinate is on the board.
func InBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// Count returns the number of pieces the side has on the board.
func (b Board) Count(p Player) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c].BelongsTo(p) {
				n++
			}
		}
	}
	return n
}

// String renders the board rows in the wire format: a one-based row
// label, then the eight cells of the row between pipes.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d |", r+1)
		for c := 0; c < Size; c++ {
			sb.WriteByte(' ')
			sb.WriteString(b[r][c].String())
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
