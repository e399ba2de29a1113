package game

import "errors"

// Errors reported by Apply. The board is left untouched whenever one of
// these is returned.
var (
	ErrMissingPiece = errors.New("no piece on the origin square")
	ErrWrongPlayer  = errors.New("cannot move the other player's piece")
	ErrInvalidPlay  = errors.New("cannot move the piece that way")
)

// Apply validates and executes a move for the given side, mutating the
// board in place. Capture chains are all-or-nothing: any invalid link
// restores the board to its state before the call. A piece reaching the
// far row is crowned.
func (b *Board) Apply(m Move, p Player, rules Rules) error {
	r, c := m.From.Row, m.From.Col
	if !InBounds(r, c) {
		return ErrInvalidPlay
	}
	t := b[r][c]
	if t == Empty {
		return ErrMissingPiece
	}
	if !t.BelongsTo(p) {
		return ErrWrongPlayer
	}
	if len(m.Path) == 0 {
		return ErrInvalidPlay
	}

	if !m.Jump {
		d := m.Path[0]
		if len(m.Path) != 1 || !rules.Allows(t, d) {
			return ErrInvalidPlay
		}
		nr, nc := d.Step(r, c)
		if !InBounds(nr, nc) || b[nr][nc] != Empty {
			return ErrInvalidPlay
		}
		b[nr][nc] = t
		b[r][c] = Empty
		if nr == 0 || nr == Size-1 {
			b[nr][nc] = b[nr][nc].crowned()
		}
		return nil
	}

	saved := *b
	nr, nc := r, c
	for _, d := range m.Path {
		if !rules.Allows(b[r][c], d) {
			*b = saved
			return ErrInvalidPlay
		}
		pr, pc := d.Step(r, c)
		nr, nc = d.Jump(r, c)
		if !InBounds(nr, nc) || b[nr][nc] != Empty || !b[pr][pc].Opposes(p) {
			*b = saved
			return ErrInvalidPlay
		}
		b[nr][nc] = b[r][c]
		b[pr][pc] = Empty
		b[r][c] = Empty
		r, c = nr, nc
	}
	if nr == 0 || nr == Size-1 {
		b[nr][nc] = b[nr][nc].crowned()
	}
	return nil
}
