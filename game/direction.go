package game

import "fmt"

// Direction is one of the four diagonal directions a piece can travel,
// named by compass point. North is toward row 0, the red home edge is
// row 7, so red men advance NE/NW and black men advance SE/SW.
type Direction int

const (
	NW Direction = iota
	NE
	SE
	SW
)

// Directions lists all four diagonals in a stable order.
var Directions = [4]Direction{NW, NE, SE, SW}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection reads a compass token as used on the wire.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "NW":
		return NW, nil
	case "NE":
		return NE, nil
	case "SE":
		return SE, nil
	case "SW":
		return SW, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", s)
	}
}

func (d Direction) vector() (dr, dc int) {
	switch d {
	case NW:
		return -1, -1
	case NE:
		return -1, 1
	case SE:
		return 1, 1
	default:
		return 1, -1
	}
}

// Step moves a coordinate one tile in the direction. The result may be
// off the board; callers check bounds.
func (d Direction) Step(r, c int) (int, int) {
	dr, dc := d.vector()
	return r + dr, c + dc
}

// Jump moves a coordinate two tiles in the direction, as a capture does.
func (d Direction) Jump(r, c int) (int, int) {
	dr, dc := d.vector()
	return r + 2*dr, c + 2*dc
}
