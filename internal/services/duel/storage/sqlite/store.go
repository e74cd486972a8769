// Package sqlite provides SQLite-backed persistence for duel service state.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/openduel/arena/internal/platform/storage/sqlitemigrate"
	"github.com/openduel/arena/internal/services/duel/domain/game"
	"github.com/openduel/arena/internal/services/duel/storage"
	"github.com/openduel/arena/internal/services/duel/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for matches and player stats.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a duel SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS, "")
}

// CreateMatch persists one new match record.
func (s *Store) CreateMatch(ctx context.Context, match storage.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	normalized, err := normalizeMatch(match)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO matches (id, player_name, challenger_name, player_move, challenger_move, result, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		normalized.ID,
		normalized.PlayerName,
		normalized.ChallengerName,
		string(normalized.PlayerMove),
		string(normalized.ChallengerMove),
		string(normalized.Result),
		toMillis(normalized.CreatedAt),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// GetMatch loads one match record by id.
func (s *Store) GetMatch(ctx context.Context, matchID string) (storage.Match, error) {
	if err := ctx.Err(); err != nil {
		return storage.Match{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Match{}, fmt.Errorf("storage is not configured")
	}
	return scanMatch(s.sqlDB.QueryRowContext(ctx, `
SELECT id, player_name, challenger_name, player_move, challenger_move, result, created_at
FROM matches WHERE id = ?`, matchID))
}

// SaveMove writes the participant's move into their slot and returns the
// updated record. The write is refused once the result left Pending or when
// the slot is already filled.
func (s *Store) SaveMove(ctx context.Context, matchID, username string, move game.Move) (storage.Match, error) {
	if err := ctx.Err(); err != nil {
		return storage.Match{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Match{}, fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.Match{}, fmt.Errorf("begin move write: %w", err)
	}
	rollbackWith := func(cause error) (storage.Match, error) {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return storage.Match{}, fmt.Errorf("%w: rollback move write: %v", cause, rollbackErr)
		}
		return storage.Match{}, cause
	}

	match, err := scanMatch(tx.QueryRowContext(ctx, `
SELECT id, player_name, challenger_name, player_move, challenger_move, result, created_at
FROM matches WHERE id = ?`, matchID))
	if err != nil {
		return rollbackWith(err)
	}
	if match.Result.Decided() {
		return rollbackWith(storage.ErrResultAlreadySet)
	}

	var column string
	switch username {
	case match.PlayerName:
		if match.PlayerMove != "" {
			return rollbackWith(storage.ErrMoveAlreadySet)
		}
		column = "player_move"
		match.PlayerMove = move
	case match.ChallengerName:
		if match.ChallengerMove != "" {
			return rollbackWith(storage.ErrMoveAlreadySet)
		}
		column = "challenger_move"
		match.ChallengerMove = move
	default:
		return rollbackWith(storage.ErrUnknownParticipant)
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("UPDATE matches SET %s = ? WHERE id = ?", column),
		string(move), matchID,
	); err != nil {
		return rollbackWith(fmt.Errorf("update move: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return storage.Match{}, fmt.Errorf("commit move write: %w", err)
	}
	return match, nil
}

// SaveResult transitions the match result out of Pending at most once.
// Concurrent completions lose the conditional write and observe
// ErrResultAlreadySet.
func (s *Store) SaveResult(ctx context.Context, matchID string, result game.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if !result.Decided() {
		return fmt.Errorf("result %q is not terminal", result)
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE matches SET result = ? WHERE id = ? AND result = ?`,
		string(result), matchID, string(game.ResultPending),
	)
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update result rows: %w", err)
	}
	if affected == 1 {
		return nil
	}

	// The guard did not apply: either the record is gone or the result is
	// already decided.
	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return err
	}
	return storage.ErrResultAlreadySet
}

// DeleteMatch removes one match record.
func (s *Store) DeleteMatch(ctx context.Context, matchID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete match rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// RecordOutcome increments the per-player game counter, and the win counter
// when won is true.
func (s *Store) RecordOutcome(ctx context.Context, username string, won bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}

	win := 0
	if won {
		win = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO player_stats (username, games, wins) VALUES (?, 1, ?)
ON CONFLICT(username) DO UPDATE SET games = games + 1, wins = wins + ?`,
		username, win, win,
	)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// GetPlayerStats loads aggregate counters for one player.
func (s *Store) GetPlayerStats(ctx context.Context, username string) (storage.PlayerStats, error) {
	if err := ctx.Err(); err != nil {
		return storage.PlayerStats{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.PlayerStats{}, fmt.Errorf("storage is not configured")
	}

	stats := storage.PlayerStats{Username: username}
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT games, wins FROM player_stats WHERE username = ?`, username,
	).Scan(&stats.Games, &stats.Wins)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.PlayerStats{}, storage.ErrNotFound
		}
		return storage.PlayerStats{}, fmt.Errorf("query player stats: %w", err)
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (storage.Match, error) {
	var (
		match          storage.Match
		playerMove     string
		challengerMove string
		result         string
		createdAt      int64
	)
	err := row.Scan(
		&match.ID,
		&match.PlayerName,
		&match.ChallengerName,
		&playerMove,
		&challengerMove,
		&result,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Match{}, storage.ErrNotFound
		}
		return storage.Match{}, fmt.Errorf("scan match: %w", err)
	}
	match.PlayerMove = game.Move(playerMove)
	match.ChallengerMove = game.Move(challengerMove)
	match.Result = game.Result(result)
	match.CreatedAt = fromMillis(createdAt)
	return match, nil
}

func normalizeMatch(match storage.Match) (storage.Match, error) {
	if strings.TrimSpace(match.ID) == "" {
		return storage.Match{}, fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(match.PlayerName) == "" {
		return storage.Match{}, fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(match.ChallengerName) == "" {
		match.ChallengerName = storage.UnknownChallenger
	}
	if match.Result == "" {
		match.Result = game.ResultPending
	}
	if match.CreatedAt.IsZero() {
		return storage.Match{}, fmt.Errorf("match created time is required")
	}
	return match, nil
}
