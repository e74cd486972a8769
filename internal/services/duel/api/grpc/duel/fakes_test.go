package duel

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"

	duelv1 "github.com/openduel/arena/api/gen/go/duel/v1"
	"github.com/openduel/arena/internal/services/duel/app"
	"github.com/openduel/arena/internal/services/duel/domain/game"
	"github.com/openduel/arena/internal/services/duel/matchmaking"
	"github.com/openduel/arena/internal/services/duel/storage"
)

// fakeMatchStore is a map-backed MatchStore with the same conditional-write
// guards as the SQLite store.
type fakeMatchStore struct {
	mu      sync.Mutex
	matches map[string]storage.Match
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{matches: make(map[string]storage.Match)}
}

func (s *fakeMatchStore) CreateMatch(_ context.Context, match storage.Match) error {
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

func (s *fakeMatchStore) GetMatch(_ context.Context, matchID string) (storage.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return storage.Match{}, storage.ErrNotFound
	}
	return match, nil
}

func (s *fakeMatchStore) SaveMove(_ context.Context, matchID, username string, move game.Move) (storage.Match, error) {
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

func (s *fakeMatchStore) SaveResult(_ context.Context, matchID string, result game.Result) error {
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

func (s *fakeMatchStore) DeleteMatch(_ context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[matchID]; !ok {
		return storage.ErrNotFound
	}
	delete(s.matches, matchID)
	return nil
}

func (s *fakeMatchStore) put(match storage.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
}

type fakeStatsSink struct{}

func (fakeStatsSink) RecordOutcome(context.Context, string, bool) error { return nil }

func newTestService(store storage.MatchStore) *Service {
	coordinator := matchmaking.NewCoordinator(matchmaking.NewMemoryProvider())
	engine := app.NewEngine(coordinator, store, fakeStatsSink{}, app.Config{
		TicketListWait:        time.Millisecond,
		TicketStatusWait:      time.Millisecond,
		GameStatusUpdateDelay: time.Millisecond,
		GameStatusMaxWait:     time.Minute,
	})
	return NewService(engine)
}

// fakePairingStream captures updates sent on a PairingStatus stream.
type fakePairingStream struct {
	grpc.ServerStream
	ctx  context.Context
	mu   sync.Mutex
	sent []*duelv1.PairingStatusUpdate
}

func (s *fakePairingStream) Context() context.Context { return s.ctx }

func (s *fakePairingStream) Send(update *duelv1.PairingStatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, update)
	return nil
}

func (s *fakePairingStream) updates() []*duelv1.PairingStatusUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*duelv1.PairingStatusUpdate(nil), s.sent...)
}

// fakeGameStream captures updates sent on a GameStatus stream.
type fakeGameStream struct {
	grpc.ServerStream
	ctx  context.Context
	mu   sync.Mutex
	sent []*duelv1.GameStatusUpdate
}

func (s *fakeGameStream) Context() context.Context { return s.ctx }

func (s *fakeGameStream) Send(update *duelv1.GameStatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, update)
	return nil
}

func (s *fakeGameStream) updates() []*duelv1.GameStatusUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*duelv1.GameStatusUpdate(nil), s.sent...)
}
