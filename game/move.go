package game

import (
	"fmt"
	"strings"
)

// Square is a board coordinate.
type Square struct {
	Row, Col int
}

func (s Square) String() string {
	// Wire notation: letter selects the row, digit the column.
	return fmt.Sprintf("%c%c", 'a'+byte(s.Row), '1'+byte(s.Col))
}

// ParseSquare reads the two-character wire notation back into a coordinate.
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(s)
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	r := int(s[0] - 'a')
	c := int(s[1] - '1')
	if !InBounds(r, c) {
		return Square{}, fmt.Errorf("square %q is off the board", s)
	}
	return Square{Row: r, Col: c}, nil
}

// Move is a single legal play: either one step in Path[0] (Jump false)
// or a capture chain of one jump per Path entry (Jump true). From is
// always the square the piece starts on, even for long chains.
type Move struct {
	From Square
	Jump bool
	Path []Direction
}

func (m Move) String() string {
	kind := "move"
	if m.Jump {
		kind = "jump"
	}
	tokens := make([]string, len(m.Path))
	for i, d := range m.Path {
		tokens[i] = d.String()
	}
	return fmt.Sprintf("%s %s %s", kind, m.From, strings.Join(tokens, " "))
}

// Captures returns the coordinates of the pieces a capture chain jumps
// over, in chain order. Empty for simple moves.
func (m Move) Captures() []Square {
	if !m.Jump {
		return nil
	}
	taken := make([]Square, 0, len(m.Path))
	r, c := m.From.Row, m.From.Col
	for _, d := range m.Path {
		pr, pc := d.Step(r, c)
		taken = append(taken, Square{Row: pr, Col: pc})
		r, c = d.Jump(r, c)
	}
	return taken
}

// Dest returns the square the piece ends on.
func (m Move) Dest() Square {
	r, c := m.From.Row, m.From.Col
	for _, d := range m.Path {
		if m.Jump {
			r, c = d.Jump(r, c)
		} else {
			r, c = d.Step(r, c)
		}
	}
	return Square{Row: r, Col: c}
}
