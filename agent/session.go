package agent

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"checkersbot/game"
	"checkersbot/ledger"
)

// Run registers the agent and then plays matches forever: discover a
// free slot, claim a seat, play to completion, move the cursor past the
// slot, repeat. It returns only when registration retries are exhausted;
// contention, timeouts, and transient I/O never end the session.
func (a *Agent) Run() error {
	if err := a.register(); err != nil {
		return err
	}
	for {
		if err := a.playMatch(); err != nil {
			// A malformed response aborts the current match attempt
			// only; rediscovery starts past the poisoned slot.
			log.Error().Err(err).Uint64("cursor", a.cursor).
				Msg("match attempt aborted, rediscovering")
			a.cursor++
		}
	}
}

// register obtains this agent's identity, retrying with growing backoff
// a bounded number of times. Exhausting the retries is fatal to the
// session.
func (a *Agent) register() error {
	var lastErr error
	for attempt := 0; attempt < a.registerRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * a.pollInterval)
		}
		id, err := a.client.RegisterPlayer()
		if err == nil {
			a.identity = id
			log.Info().Str("identity", id).Msg("registered")
			return nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt+1).Msg("registration failed")
	}
	return fmt.Errorf("registration failed after %d attempts: %w", a.registerRetries, lastErr)
}

// playMatch runs one discover-claim-play cycle and advances the cursor
// past the slot that was played.
func (a *Agent) playMatch() error {
	idx, err := a.discover(a.cursor)
	if err != nil {
		return err
	}
	st, err := a.claim(idx)
	if err != nil {
		return err
	}
	a.cursor = st.index + 1
	return a.play(st)
}

// play alternates submitting a random legal move and waiting for the
// opponent until this side has no legal move or the opponent stops
// responding. The board is re-derived from the ledger on every swing;
// only the local copy used for change detection lives between polls.
func (a *Agent) play(st seat) error {
	side := game.Red
	if !st.movesFirst {
		side = game.Black
	}
	slot := ledger.SlotAt(st.index)
	board := st.board

	for {
		moves := game.LegalMoves(board, side, a.rules)
		if len(moves) == 0 {
			log.Info().Uint64("slot", st.index).Stringer("side", side).
				Msg("no legal moves, match over")
			return nil
		}
		mv := moves[a.rng.Intn(len(moves))]
		log.Debug().Uint64("slot", st.index).Stringer("move", mv).Msg("playing")

		if err := a.client.Play(slot, mv); err != nil {
			if errors.Is(err, ledger.ErrMalformed) {
				return err
			}
			// Rejected or lost in transit: re-read and try again from
			// whatever the ledger actually holds.
			log.Warn().Err(err).Uint64("slot", st.index).Msg("move rejected, re-reading board")
			a.pause()
			snap, err := a.probe(st.index)
			if err != nil {
				return err
			}
			if snap.Status != ledger.StatusActive {
				return nil
			}
			board = snap.Board
			continue
		}

		// Track our own move locally so the next change on the ledger
		// is the opponent's.
		if err := board.Apply(mv, side, a.rules); err != nil {
			return fmt.Errorf("engine produced an illegal move %v: %w", mv, err)
		}

		next, moved, err := a.awaitOpponent(st.index, board)
		if err != nil {
			return err
		}
		if !moved {
			log.Info().Uint64("slot", st.index).Msg("opponent timed out, abandoning match")
			return nil
		}
		board = next
	}
}

// awaitOpponent polls the slot until the board differs from prev or the
// move timeout elapses.
func (a *Agent) awaitOpponent(index uint64, prev game.Board) (game.Board, bool, error) {
	deadline := time.Now().Add(a.moveTimeout)
	for time.Now().Before(deadline) {
		a.pause()
		snap, err := a.probe(index)
		if err != nil {
			return game.Board{}, false, err
		}
		if snap.Board != prev {
			return snap.Board, true, nil
		}
	}
	return game.Board{}, false, nil
}
