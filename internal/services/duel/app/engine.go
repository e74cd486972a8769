// Package app implements the duel service engine: pairing orchestration,
// match status projection, and pick handling.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/openduel/arena/internal/platform/id"
	"github.com/openduel/arena/internal/services/duel/matchmaking"
	"github.com/openduel/arena/internal/services/duel/storage"
)

// Config holds the polling cadence and expiry knobs for the engine.
type Config struct {
	// TicketListWait is the retry interval while the matchmaker is rate
	// limiting ticket lookups.
	TicketListWait time.Duration
	// TicketStatusWait is the steady-state ticket poll interval.
	TicketStatusWait time.Duration
	// GameStatusUpdateDelay is the match record poll interval.
	GameStatusUpdateDelay time.Duration
	// GameStatusMaxWait is how long an unfinished match may live before the
	// master's stream expires and deletes it.
	GameStatusMaxWait time.Duration
}

// Default polling cadence. The list retry is deliberately shorter than the
// steady-state poll so a stream recovers quickly once the matchmaker's rate
// ceiling refills.
const (
	DefaultTicketListWait        = time.Second
	DefaultTicketStatusWait      = 5 * time.Second
	DefaultGameStatusUpdateDelay = 2 * time.Second
	DefaultGameStatusMaxWait     = 2 * time.Minute
)

func (c Config) withDefaults() Config {
	if c.TicketListWait <= 0 {
		c.TicketListWait = DefaultTicketListWait
	}
	if c.TicketStatusWait <= 0 {
		c.TicketStatusWait = DefaultTicketStatusWait
	}
	if c.GameStatusUpdateDelay <= 0 {
		c.GameStatusUpdateDelay = DefaultGameStatusUpdateDelay
	}
	if c.GameStatusMaxWait <= 0 {
		c.GameStatusMaxWait = DefaultGameStatusMaxWait
	}
	return c
}

// Engine coordinates pairing, match projection, and pick handling. The two
// participants' streams never talk to each other directly: the match record
// in the store is the only shared state.
type Engine struct {
	tickets *matchmaking.Coordinator
	matches storage.MatchStore
	stats   storage.StatsSink
	cfg     Config

	clock func() time.Time
	newID func() (string, error)

	mu     sync.Mutex
	tokens map[string]*pairingToken
}

type pairingToken struct {
	ticketID string
	creator  string
	consumed bool
}

// NewEngine creates an Engine with default clock and id generation.
func NewEngine(tickets *matchmaking.Coordinator, matches storage.MatchStore, stats storage.StatsSink, cfg Config) *Engine {
	return &Engine{
		tickets: tickets,
		matches: matches,
		stats:   stats,
		cfg:     cfg.withDefaults(),
		clock:   time.Now,
		newID:   id.NewID,
		tokens:  make(map[string]*pairingToken),
	}
}

// sleep waits for d or until ctx is done. It reports false when the wait was
// cut short by cancellation.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
