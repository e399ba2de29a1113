package agent

import (
	"time"

	"github.com/rs/zerolog/log"

	"checkersbot/game"
	"checkersbot/ledger"
)

// seat is a successfully claimed place in a match: the slot index, the
// board at the moment play begins, and which color this agent holds.
// The creator plays red and moves first; a joiner plays black and the
// returned board already contains the creator's opening move.
type seat struct {
	index      uint64
	board      game.Board
	movesFirst bool
}

// claim obtains a playable seat at or past the candidate index. Other
// agents race for the same slots, so every action is optimistic: act,
// then re-read to see whether the effect survived. Contention never
// fails the claim; it either retries the slot or advances to the next
// one. Only a malformed response aborts.
func (a *Agent) claim(candidate uint64) (seat, error) {
	idx := candidate
	for {
		snap, err := a.probe(idx)
		if err != nil {
			return seat{}, err
		}

		switch snap.Status {
		case ledger.StatusNotStarted:
			s, ok, err := a.claimAsCreator(idx)
			if err != nil {
				return seat{}, err
			}
			if ok {
				return s, nil
			}
			// Claim overwritten or creation lost a race: re-read the
			// same slot. It may still be open, or validly taken by the
			// winner, in which case the joiner path picks it up.

		case ledger.StatusWaiting:
			s, outcome, err := a.claimAsJoiner(idx, snap.Board)
			if err != nil {
				return seat{}, err
			}
			switch outcome {
			case claimed:
				return s, nil
			case advance:
				// Someone else took the second seat; unlike the
				// creator race there is nothing left to contest here.
				idx++
			}
			// retrySlot: re-read the same index.

		default:
			idx++
		}
	}
}

// claimAsCreator starts a match at idx and waits for a joiner. Each poll
// re-verifies the recorded first player: a different identity means
// another agent overwrote the claim, and the slot is re-contested from a
// fresh read.
func (a *Agent) claimAsCreator(idx uint64) (seat, bool, error) {
	if err := a.client.NewGame(ledger.SlotAt(idx)); err != nil {
		log.Debug().Err(err).Uint64("slot", idx).Msg("create lost the race")
		a.pause()
		return seat{}, false, nil
	}
	log.Info().Uint64("slot", idx).Msg("created match, waiting for joiner")

	for {
		a.pause()
		snap, err := a.probe(idx)
		if err != nil {
			return seat{}, false, err
		}
		if snap.Player1 != a.identity {
			log.Info().Uint64("slot", idx).Str("winner", snap.Player1).
				Msg("claim was overwritten by another agent")
			return seat{}, false, nil
		}
		if snap.Status == ledger.StatusActive {
			log.Info().Uint64("slot", idx).Str("opponent", snap.Player2).
				Msg("joiner arrived, playing red")
			return seat{index: idx, board: snap.Board, movesFirst: true}, true, nil
		}
	}
}

// joinOutcome says how the claim loop should proceed after a joiner
// attempt that did not secure a playable seat.
type joinOutcome int

const (
	claimed joinOutcome = iota
	retrySlot
	advance
)

// claimAsJoiner takes the open seat at idx and waits for the creator's
// opening move, signaled by the board changing from its pre-join
// snapshot. Losing the second seat to another agent is resolved by
// moving on, not retrying; a failed join RPC re-reads the same slot.
func (a *Agent) claimAsJoiner(idx uint64, before game.Board) (seat, joinOutcome, error) {
	if err := a.client.Join(ledger.SlotAt(idx)); err != nil {
		log.Debug().Err(err).Uint64("slot", idx).Msg("join attempt failed")
		a.pause()
		return seat{}, retrySlot, nil
	}
	log.Info().Uint64("slot", idx).Msg("joined match, waiting for opening move")

	deadline := time.Now().Add(a.moveTimeout)
	for {
		a.pause()
		snap, err := a.probe(idx)
		if err != nil {
			return seat{}, retrySlot, err
		}
		if snap.Player2 != a.identity {
			log.Info().Uint64("slot", idx).Str("winner", snap.Player2).
				Msg("second seat went to another agent")
			return seat{}, advance, nil
		}
		if snap.Board != before {
			log.Info().Uint64("slot", idx).Str("opponent", snap.Player1).
				Msg("creator moved, playing black")
			return seat{index: idx, board: snap.Board, movesFirst: false}, claimed, nil
		}
		if time.Now().After(deadline) {
			log.Warn().Uint64("slot", idx).Msg("creator never moved, abandoning match")
			return seat{}, advance, nil
		}
	}
}
