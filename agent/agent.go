// Package agent plays checkers matches on a remote ledger without human
// intervention: it discovers a free match slot, claims a seat against
// concurrently contending agents, and plays random legal moves until the
// match is over, then moves on to the next slot.
package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"checkersbot/game"
	"checkersbot/ledger"
)

// Agent is one autonomous player. It issues at most one ledger operation
// at a time; all state is rebuilt from ledger queries every turn, so
// nothing is cached across RPC calls except the slot cursor.
type Agent struct {
	client ledger.Client
	rules  game.Rules
	rng    *rand.Rand

	pollInterval    time.Duration
	moveTimeout     time.Duration
	registerRetries int

	identity string
	cursor   uint64
}

// Option configures an Agent.
type Option func(*Agent)

// WithPollInterval sets the delay between board polls.
func WithPollInterval(d time.Duration) Option {
	return func(a *Agent) { a.pollInterval = d }
}

// WithMoveTimeout bounds how long the agent waits for the opponent to
// move before abandoning the match.
func WithMoveTimeout(d time.Duration) Option {
	return func(a *Agent) { a.moveTimeout = d }
}

// WithRegisterRetries bounds the registration attempts before the
// session gives up entirely.
func WithRegisterRetries(n int) Option {
	return func(a *Agent) { a.registerRetries = n }
}

// WithRules overrides the legality rules the move engine uses.
func WithRules(r game.Rules) Option {
	return func(a *Agent) { a.rules = r }
}

// WithStartIndex sets the slot index discovery begins from.
func WithStartIndex(i uint64) Option {
	return func(a *Agent) { a.cursor = i }
}

// WithSeed fixes the random source used for move selection.
func WithSeed(seed uint64) Option {
	return func(a *Agent) { a.rng = rand.New(rand.NewSource(seed)) }
}

// New creates an agent speaking to the given ledger client.
func New(client ledger.Client, options ...Option) *Agent {
	a := &Agent{
		client:          client,
		rules:           game.StandardRules(),
		pollInterval:    2 * time.Second,
		moveTimeout:     5 * time.Minute,
		registerRetries: 5,
	}
	for _, opt := range options {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a
}

// pause sleeps one poll interval between ledger queries.
func (a *Agent) pause() {
	time.Sleep(a.pollInterval)
}
