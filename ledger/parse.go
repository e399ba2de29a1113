package ledger

import (
	"fmt"
	"strings"

	"checkersbot/game"
)

// ParseSnapshot decodes the textual status block a board query returns:
//
//	status: active
//	player 1: 0x4f..
//	player 2: 0x91..
//	    A B C D E F G H
//	  -------------------
//	1 | b . b . b . b . |
//	...
//
// Whitespace inside a row's cell run is insignificant. Decoration lines
// (the column header and rules) are skipped. Any structural problem is
// reported wrapped in ErrMalformed.
func ParseSnapshot(text string) (Snapshot, error) {
	var snap Snapshot
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "status:"):
			snap.Status = ParseStatus(strings.TrimPrefix(line, "status:"))
		case strings.HasPrefix(line, "player 1:"):
			snap.Player1 = strings.TrimSpace(strings.TrimPrefix(line, "player 1:"))
		case strings.HasPrefix(line, "player 2:"):
			snap.Player2 = strings.TrimSpace(strings.TrimPrefix(line, "player 2:"))
		case strings.Contains(line, "|"):
			if rows >= game.Size {
				return Snapshot{}, fmt.Errorf("%w: more than %d board rows", ErrMalformed, game.Size)
			}
			if err := parseRow(line, &snap.Board, rows); err != nil {
				return Snapshot{}, err
			}
			rows++
		}
	}
	if rows != game.Size {
		return Snapshot{}, fmt.Errorf("%w: got %d board rows, want %d", ErrMalformed, rows, game.Size)
	}
	if snap.Player1 == "" {
		snap.Player1 = NoPlayer
	}
	if snap.Player2 == "" {
		snap.Player2 = NoPlayer
	}
	return snap, nil
}

// parseRow reads one "<label> | b . b . b . b . |" line. Everything
// before the first pipe is the row label and ignored.
func parseRow(line string, b *game.Board, row int) error {
	run := line[strings.Index(line, "|")+1:]
	run = strings.TrimSuffix(strings.TrimSpace(run), "|")
	run = strings.Join(strings.Fields(run), "")
	if len(run) != game.Size {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, row+1, len(run), game.Size)
	}
	for c, cell := range run {
		t, err := game.ParseTile(string(cell))
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrMalformed, row+1, err)
		}
		b[row][c] = t
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FormatSnapshot renders a snapshot back into the textual status block.
// The in-memory ledger serves this so its responses travel through the
// same parser real responses do.
func FormatSnapshot(snap Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "status: %s\n", snap.Status)
	fmt.Fprintf(&sb, "player 1: %s\n", snap.Player1)
	fmt.Fprintf(&sb, "player 2: %s\n", snap.Player2)
	sb.WriteString("    A B C D E F G H\n")
	sb.WriteString("  -------------------\n")
	sb.WriteString(snap.Board.String())
	return sb.String()
}
