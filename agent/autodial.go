package agent

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"checkersbot/ledger"
)

// discover locates a free slot at or past start. Occupied matches form a
// contiguous run with no known length, so a plain binary search has no
// upper bound to begin from: the extending phase gallops outward with a
// doubling step until it overshoots the occupied run, then the narrowing
// phase binary-searches back to single-slot resolution.
//
// The index walks in fractional space; each probe and the final result
// round half away from zero. Cost is logarithmic in the boundary's
// distance from start.
func (a *Agent) discover(start uint64) (uint64, error) {
	idx := float64(start)
	step := 0.5
	dir := 1.0
	extending := true
	probes := 0

	for {
		snap, err := a.probe(slotAt(idx))
		if err != nil {
			return 0, err
		}
		probes++
		occupied := !snap.Status.Free()

		if extending {
			if occupied {
				step *= 2
				idx += step
				continue
			}
			// Past the boundary; stay one past the first candidate and
			// start narrowing.
			extending = false
			idx++
		}

		if occupied {
			dir = 1
		} else {
			dir = -1
		}
		step /= 2
		if step < 0.5 {
			found := slotAt(idx)
			log.Debug().Uint64("start", start).Uint64("slot", found).
				Int("probes", probes).Msg("discovered free slot")
			return found, nil
		}
		idx += dir * step
	}
}

// probe reads a slot's snapshot, retrying on transient errors. Only a
// malformed response surfaces, aborting the current match attempt.
func (a *Agent) probe(index uint64) (ledger.Snapshot, error) {
	for {
		snap, err := a.client.Board(ledger.SlotAt(index))
		if err == nil {
			return snap, nil
		}
		if errors.Is(err, ledger.ErrMalformed) {
			return ledger.Snapshot{}, err
		}
		log.Warn().Err(err).Uint64("slot", index).Msg("board query failed, retrying")
		a.pause()
	}
}

func slotAt(idx float64) uint64 {
	return uint64(math.Round(idx))
}
