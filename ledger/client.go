package ledger

import (
	"errors"

	"checkersbot/game"
)

// Status is the lifecycle state of a match slot. Slots only move
// forward: not started, waiting for a second player, active, finished.
type Status int

const (
	StatusNotStarted Status = iota
	StatusWaiting
	StatusActive
	// StatusFinished also covers any status token the agent does not
	// recognize; either way the slot is not playable.
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusWaiting:
		return "waiting"
	case StatusActive:
		return "active"
	default:
		return "finished"
	}
}

// ParseStatus reads a status token case-insensitively. Unknown tokens
// map to StatusFinished.
func ParseStatus(s string) Status {
	switch normalize(s) {
	case "not started", "notstarted":
		return StatusNotStarted
	case "waiting", "waiting for join":
		return StatusWaiting
	case "active":
		return StatusActive
	default:
		return StatusFinished
	}
}

// Free reports whether the slot can still be claimed.
func (s Status) Free() bool {
	return s == StatusNotStarted || s == StatusWaiting
}

// NoPlayer is the identity token of an unfilled seat.
const NoPlayer = "0"

// Snapshot is one parsed board query: match status, the two seat
// identities, and the current board. Snapshots are rebuilt fresh from
// every query and never cached.
type Snapshot struct {
	Status  Status
	Player1 string
	Player2 string
	Board   game.Board
}

// Sentinel errors shared by ledger implementations. Contention errors
// are expected flow for the claim protocol, not failures; ErrMalformed
// marks an unparseable response, which aborts the current match attempt.
var (
	ErrSlotTaken   = errors.New("slot already started")
	ErrSeatTaken   = errors.New("seat already filled")
	ErrNotYourTurn = errors.New("not this player's turn")
	ErrMalformed   = errors.New("malformed ledger response")
)

// Client is the agent-side view of the ledger. Implementations resolve
// their own identity server-side; RegisterPlayer reports the token the
// ledger knows this agent by.
type Client interface {
	// RegisterPlayer registers this agent, or fetches the existing
	// identity when it is already registered.
	RegisterPlayer() (string, error)

	// Board fetches the current snapshot of a slot. Unclaimed slots
	// report StatusNotStarted with the standard starting board.
	Board(s Slot) (Snapshot, error)

	// NewGame starts a match at the slot with this agent in the first
	// seat and the second seat left open.
	NewGame(s Slot) error

	// Join takes the second seat of a waiting match.
	Join(s Slot) error

	// Play submits a move or capture chain for this agent.
	Play(s Slot, mv game.Move) error
}
