package game

// LegalMoves enumerates every legal play for the side on the given
// board: one simple move per empty adjacent diagonal, plus every
// terminal capture chain reachable by repeated jumps. The board is
// never mutated; an empty result means the side cannot move.
func LegalMoves(b Board, p Player, rules Rules) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t := b[r][c]
			if !t.BelongsTo(p) {
				continue
			}
			for _, d := range Directions {
				if !rules.Allows(t, d) {
					continue
				}
				nr, nc := d.Step(r, c)
				if InBounds(nr, nc) && b[nr][nc] == Empty {
					moves = append(moves, Move{
						From: Square{Row: r, Col: c},
						Path: []Direction{d},
					})
				}
				from := Square{Row: r, Col: c}
				moves = append(moves, chains(b, t, rules, from, r, c, d, nil, nil)...)
			}
		}
	}
	return moves
}

// chains explores one candidate jump from (r, c) in direction d and
// recurses from the landing cell. The accumulated path and captured
// squares are copied on extension so sibling branches never share
// state. Only terminal chains are emitted; a fork yields one move per
// leaf, each rooted at the original square.
func chains(b Board, t Tile, rules Rules, from Square, r, c int, d Direction, path []Direction, taken []Square) []Move {
	pr, pc := d.Step(r, c)
	lr, lc := d.Jump(r, c)
	if !InBounds(lr, lc) || b[lr][lc] != Empty {
		return nil
	}
	if !b[pr][pc].Opposes(t.owner()) {
		return nil
	}
	for _, s := range taken {
		if s.Row == pr && s.Col == pc {
			// Already jumped in this chain; a piece comes off the board
			// only once.
			return nil
		}
	}

	nextPath := append(append([]Direction(nil), path...), d)
	nextTaken := append(append([]Square(nil), taken...), Square{Row: pr, Col: pc})

	var out []Move
	for _, nd := range Directions {
		if !rules.Allows(t, nd) {
			continue
		}
		out = append(out, chains(b, t, rules, from, lr, lc, nd, nextPath, nextTaken)...)
	}
	if len(out) == 0 {
		out = append(out, Move{From: from, Jump: true, Path: nextPath})
	}
	return out
}

// owner returns the side a non-empty tile belongs to.
func (t Tile) owner() Player {
	if t.BelongsTo(Red) {
		return Red
	}
	return Black
}
