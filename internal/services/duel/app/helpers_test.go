package app

import (
	"context"
	"sync"
	"time"

	"github.com/openduel/arena/internal/services/duel/domain/game"
	"github.com/openduel/arena/internal/services/duel/matchmaking"
	"github.com/openduel/arena/internal/services/duel/storage"
)

// testConfig keeps stream polling fast so tests that exercise real loops
// finish quickly.
func testConfig() Config {
	return Config{
		TicketListWait:        time.Millisecond,
		TicketStatusWait:      time.Millisecond,
		GameStatusUpdateDelay: time.Millisecond,
		GameStatusMaxWait:     time.Minute,
	}
}

// fakeClock is a settable clock shared between a test and the engine.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryStore is an in-memory MatchStore with the same conditional-write
// semantics as the SQLite store.
type memoryStore struct {
	mu      sync.Mutex
	matches map[string]storage.Match
	deletes int
	gets    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{matches: make(map[string]storage.Match)}
}

func (s *memoryStore) CreateMatch(_ context.Context, match storage.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; ok {
		return storage.ErrAlreadyExists
	}
	if match.ChallengerName == "" {
		match.ChallengerName = storage.UnknownChallenger
	}
	if match.Result == "" {
		match.Result = game.ResultPending
	}
	s.matches[match.ID] = match
	return nil
}

func (s *memoryStore) GetMatch(_ context.Context, matchID string) (storage.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	match, ok := s.matches[matchID]
	if !ok {
		return storage.Match{}, storage.ErrNotFound
	}
	return match, nil
}

func (s *memoryStore) getCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

func (s *memoryStore) SaveMove(_ context.Context, matchID, username string, move game.Move) (storage.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return storage.Match{}, storage.ErrNotFound
	}
	if match.Result.Decided() {
		return storage.Match{}, storage.ErrResultAlreadySet
	}
	switch username {
	case match.PlayerName:
		if match.PlayerMove != "" {
			return storage.Match{}, storage.ErrMoveAlreadySet
		}
		match.PlayerMove = move
	case match.ChallengerName:
		if match.ChallengerMove != "" {
			return storage.Match{}, storage.ErrMoveAlreadySet
		}
		match.ChallengerMove = move
	default:
		return storage.Match{}, storage.ErrUnknownParticipant
	}
	s.matches[matchID] = match
	return match, nil
}

func (s *memoryStore) SaveResult(_ context.Context, matchID string, result game.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return storage.ErrNotFound
	}
	if match.Result.Decided() {
		return storage.ErrResultAlreadySet
	}
	match.Result = result
	s.matches[matchID] = match
	return nil
}

func (s *memoryStore) DeleteMatch(_ context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[matchID]; !ok {
		return storage.ErrNotFound
	}
	delete(s.matches, matchID)
	s.deletes++
	return nil
}

func (s *memoryStore) deleteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deletes
}

func (s *memoryStore) put(match storage.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
}

// recordedOutcome is one StatsSink call.
type recordedOutcome struct {
	Username string
	Won      bool
}

type fakeStats struct {
	mu       sync.Mutex
	outcomes []recordedOutcome
}

func (s *fakeStats) RecordOutcome(_ context.Context, username string, won bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, recordedOutcome{Username: username, Won: won})
	return nil
}

func (s *fakeStats) recorded() []recordedOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedOutcome(nil), s.outcomes...)
}

// scriptedProvider replays a fixed sequence of poll observations; the last
// observation repeats once the script runs out.
type scriptedProvider struct {
	mu    sync.Mutex
	polls []matchmaking.TicketStatus
	idx   int
}

func (p *scriptedProvider) CreateTicket(context.Context, string) (string, error) {
	return "ticket-1", nil
}

func (p *scriptedProvider) JoinTicket(context.Context, string, string) error {
	return nil
}

func (p *scriptedProvider) PollTicket(context.Context, string, string) (matchmaking.TicketStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	status := p.polls[p.idx]
	if p.idx < len(p.polls)-1 {
		p.idx++
	}
	return status, nil
}

func newTestEngine(provider matchmaking.Provider, store storage.MatchStore, stats *fakeStats) *Engine {
	return NewEngine(matchmaking.NewCoordinator(provider), store, stats, testConfig())
}

// collectUpdates returns a send func appending to a shared slice plus a
// getter for the collected events.
func collectUpdates() (func(PairingUpdate) error, func() []PairingUpdate) {
	var mu sync.Mutex
	var updates []PairingUpdate
	send := func(update PairingUpdate) error {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, update)
		return nil
	}
	get := func() []PairingUpdate {
		mu.Lock()
		defer mu.Unlock()
		return append([]PairingUpdate(nil), updates...)
	}
	return send, get
}

func collectViews() (func(GameStatusView) error, func() []GameStatusView) {
	var mu sync.Mutex
	var views []GameStatusView
	send := func(view GameStatusView) error {
		mu.Lock()
		defer mu.Unlock()
		views = append(views, view)
		return nil
	}
	get := func() []GameStatusView {
		mu.Lock()
		defer mu.Unlock()
		return append([]GameStatusView(nil), views...)
	}
	return send, get
}
