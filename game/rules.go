package game

// Rules holds the legality knobs the engine and move application share.
// The zero value is the standard game.
type Rules struct {
	// AllowBackwardMen lets uncrowned pieces move and capture away from
	// the opponent's edge. Off in the standard game: red men travel
	// NE/NW, black men SE/SW, kings are unrestricted either way.
	AllowBackwardMen bool
}

// StandardRules returns the default rule set.
func StandardRules() Rules {
	return Rules{}
}

// Allows reports whether a piece on the given tile may travel in the
// given direction under these rules.
func (r Rules) Allows(t Tile, d Direction) bool {
	if t == Empty {
		return false
	}
	if r.AllowBackwardMen || t.IsKing() {
		return true
	}
	if t == RedMan {
		return d == NE || d == NW
	}
	return d == SE || d == SW
}
