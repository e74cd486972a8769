// Package storage defines persistence contracts for duel service state.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/openduel/arena/internal/services/duel/domain/game"
)

// ErrNotFound indicates a requested match record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
var ErrAlreadyExists = errors.New("record already exists")

// ErrUnknownParticipant indicates a username that belongs to neither side of
// the match.
var ErrUnknownParticipant = errors.New("unknown match participant")

// ErrMoveAlreadySet indicates the participant already submitted a move.
var ErrMoveAlreadySet = errors.New("move already set")

// ErrResultAlreadySet indicates the match result left Pending earlier; the
// conditional result write was not applied.
var ErrResultAlreadySet = errors.New("result already set")

// UnknownChallenger is the placeholder challenger name used until the second
// participant is attached to the match.
const UnknownChallenger = "unknown"

// Match stores one shared match record. The player side is always the
// participant who created the pairing token (the master).
type Match struct {
	ID             string
	PlayerName     string
	ChallengerName string
	PlayerMove     game.Move
	ChallengerMove game.Move
	Result         game.Result
	CreatedAt      time.Time
}

// MatchStore persists match records.
//
// SaveResult is a compare-and-set: it transitions the result out of Pending
// at most once and reports ErrResultAlreadySet for every later attempt. That
// guard is what keeps concurrent match completions from double-firing.
type MatchStore interface {
	CreateMatch(ctx context.Context, match Match) error
	GetMatch(ctx context.Context, matchID string) (Match, error)
	SaveMove(ctx context.Context, matchID, username string, move game.Move) (Match, error)
	SaveResult(ctx context.Context, matchID string, result game.Result) error
	DeleteMatch(ctx context.Context, matchID string) error
}

// StatsSink records one win/loss outcome per participant per decided match.
type StatsSink interface {
	RecordOutcome(ctx context.Context, username string, won bool) error
}

// PlayerStats stores aggregate per-player counters.
type PlayerStats struct {
	Username string
	Games    int64
	Wins     int64
}
