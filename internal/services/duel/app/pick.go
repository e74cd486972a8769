package app

import (
	"context"
	"errors"
	"log"

	apperrors "github.com/openduel/arena/internal/errors"
	"github.com/openduel/arena/internal/services/duel/domain/game"
	"github.com/openduel/arena/internal/services/duel/storage"
)

// SubmitPick records the participant's move. When both slots are filled it
// evaluates the outcome, persists it, and reports statistics. The result
// write is a compare-and-set in the store, so when both sides complete the
// pair simultaneously only one caller applies the result and reports stats;
// the other observes the guard and returns success.
//
// Re-picks are rejected: a participant gets exactly one move per match, and
// picks after the result is decided fail with MATCH_ALREADY_DECIDED.
func (e *Engine) SubmitPick(ctx context.Context, matchID, username, pick string) error {
	move, err := game.ParseMove(pick)
	if err != nil {
		return err
	}

	match, err := e.matches.SaveMove(ctx, matchID, username, move)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return apperrors.Newf(apperrors.CodeMatchNotFound, "match %s not found", matchID)
		case errors.Is(err, storage.ErrUnknownParticipant):
			return apperrors.Newf(apperrors.CodeMatchParticipantUnknown, "user %s is not part of match %s", username, matchID)
		case errors.Is(err, storage.ErrMoveAlreadySet):
			return apperrors.New(apperrors.CodeMoveAlreadySubmitted, "move was already submitted")
		case errors.Is(err, storage.ErrResultAlreadySet):
			return apperrors.New(apperrors.CodeMatchAlreadyDecided, "match result is already decided")
		default:
			return err
		}
	}

	if match.PlayerMove == "" || match.ChallengerMove == "" {
		return nil
	}

	result := game.Evaluate(match.PlayerMove, match.ChallengerMove)
	if err := e.matches.SaveResult(ctx, matchID, result); err != nil {
		if errors.Is(err, storage.ErrResultAlreadySet) {
			// The concurrent submission won the compare-and-set and already
			// reported statistics.
			return nil
		}
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.Newf(apperrors.CodeMatchNotFound, "match %s not found", matchID)
		}
		return err
	}

	e.recordOutcome(ctx, match.PlayerName, result == game.ResultPlayer)
	e.recordOutcome(ctx, match.ChallengerName, result == game.ResultChallenger)
	return nil
}

// recordOutcome reports one statistic update. Stats are best-effort: a sink
// failure must not fail a pick that already decided the match.
func (e *Engine) recordOutcome(ctx context.Context, username string, won bool) {
	if err := e.stats.RecordOutcome(ctx, username, won); err != nil {
		log.Printf("record outcome for %s: %v", username, err)
	}
}
