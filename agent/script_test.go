package agent

import (
	"errors"

	"checkersbot/game"
	"checkersbot/ledger"
)

var errTransient = errors.New("connection reset")

// scriptClient plays back a fixed sequence of board snapshots and
// scripted call results, recording what the agent asked for. The last
// snapshot repeats once the queue drains.
type scriptClient struct {
	snaps []ledger.Snapshot
	next  int

	boardErr     error
	boardErrOnce bool

	newGameErr error
	joinErr    error
	playErr    error

	boardSlots []uint64
	created    []uint64
	joined     []uint64
	plays      []game.Move
}

func (c *scriptClient) RegisterPlayer() (string, error) {
	return "me", nil
}

func (c *scriptClient) Board(s ledger.Slot) (ledger.Snapshot, error) {
	c.boardSlots = append(c.boardSlots, s.Index())
	if c.boardErr != nil {
		err := c.boardErr
		if c.boardErrOnce {
			c.boardErr = nil
		}
		return ledger.Snapshot{}, err
	}
	if len(c.snaps) == 0 {
		return ledger.Snapshot{}, errTransient
	}
	snap := c.snaps[min(c.next, len(c.snaps)-1)]
	c.next++
	return snap, nil
}

func (c *scriptClient) NewGame(s ledger.Slot) error {
	c.created = append(c.created, s.Index())
	return c.newGameErr
}

func (c *scriptClient) Join(s ledger.Slot) error {
	c.joined = append(c.joined, s.Index())
	return c.joinErr
}

func (c *scriptClient) Play(s ledger.Slot, mv game.Move) error {
	c.plays = append(c.plays, mv)
	return c.playErr
}
