package ledger

import (
	"sync"

	"github.com/google/uuid"

	"checkersbot/game"
)

// Local is an in-memory ledger: the in-process counterpart of the remote
// node, enforcing the same match lifecycle and move legality. It backs
// the tests and lets several agents in one process contend for slots the
// way independent processes do against the real service.
type Local struct {
	mu    sync.Mutex
	rules game.Rules
	slots map[uint64]*match
}

type match struct {
	status  Status
	player1 string
	player2 string
	board   game.Board
	moves   int
}

// NewLocal returns an empty in-memory ledger playing standard rules.
func NewLocal() *Local {
	return &Local{
		rules: game.StandardRules(),
		slots: make(map[uint64]*match),
	}
}

// Connect returns a client bound to one agent identity. Each call is a
// distinct player; identities are minted lazily on registration.
func (l *Local) Connect() *LocalClient {
	return &LocalClient{ledger: l}
}

// snapshot renders the slot's current state. Unclaimed slots read as a
// fresh, not-started match, matching the remote node's behavior.
func (l *Local) snapshot(index uint64) Snapshot {
	m, ok := l.slots[index]
	if !ok {
		return Snapshot{
			Status:  StatusNotStarted,
			Player1: NoPlayer,
			Player2: NoPlayer,
			Board:   game.NewBoard(),
		}
	}
	return Snapshot{
		Status:  m.status,
		Player1: m.player1,
		Player2: m.player2,
		Board:   m.board,
	}
}

// Seed marks slots [0, n) as active so discovery tests can shape the
// occupied region without playing out matches.
func (l *Local) Seed(n uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := uint64(0); i < n; i++ {
		l.slots[i] = &match{
			status:  StatusActive,
			player1: uuid.NewString(),
			player2: uuid.NewString(),
			board:   game.NewBoard(),
		}
	}
}

// LocalClient is one agent's connection to a Local ledger.
type LocalClient struct {
	ledger   *Local
	identity string
}

func (c *LocalClient) RegisterPlayer() (string, error) {
	// Registering twice returns the existing identity.
	if c.identity == "" {
		c.identity = uuid.NewString()
	}
	return c.identity, nil
}

// Board serializes the slot through the wire format and re-parses it, so
// every local query exercises the same parser remote responses do.
func (c *LocalClient) Board(s Slot) (Snapshot, error) {
	c.ledger.mu.Lock()
	text := FormatSnapshot(c.ledger.snapshot(s.Index()))
	c.ledger.mu.Unlock()
	return ParseSnapshot(text)
}

func (c *LocalClient) NewGame(s Slot) error {
	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()
	if _, ok := c.ledger.slots[s.Index()]; ok {
		return ErrSlotTaken
	}
	c.ledger.slots[s.Index()] = &match{
		status:  StatusWaiting,
		player1: c.identity,
		player2: NoPlayer,
		board:   game.NewBoard(),
	}
	return nil
}

func (c *LocalClient) Join(s Slot) error {
	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()
	m, ok := c.ledger.slots[s.Index()]
	if !ok || m.status != StatusWaiting || m.player2 != NoPlayer {
		return ErrSeatTaken
	}
	m.player2 = c.identity
	m.status = StatusActive
	return nil
}

func (c *LocalClient) Play(s Slot, mv game.Move) error {
	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()
	m, ok := c.ledger.slots[s.Index()]
	if !ok || m.status != StatusActive {
		return ErrNotYourTurn
	}
	side := game.Red
	mover := m.player1
	if m.moves%2 == 1 {
		side = game.Black
		mover = m.player2
	}
	if mover != c.identity {
		return ErrNotYourTurn
	}
	if err := m.board.Apply(mv, side, c.ledger.rules); err != nil {
		return err
	}
	m.moves++
	return nil
}
