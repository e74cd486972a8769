package app

import (
	"context"
	"errors"
	"log"

	apperrors "github.com/openduel/arena/internal/errors"
	"github.com/openduel/arena/internal/services/duel/domain/game"
	"github.com/openduel/arena/internal/services/duel/storage"
)

// ViewResult is a match outcome framed from the viewer's perspective:
// ViewUser means the viewing player won, whichever side of the record they
// sit on.
type ViewResult string

const (
	ViewPending    ViewResult = "pending"
	ViewUser       ViewResult = "user"
	ViewChallenger ViewResult = "challenger"
	ViewDraw       ViewResult = "draw"
)

// GameStatusView is a per-viewer read projection of one match. It is never
// persisted; every poll recomputes it from the record.
type GameStatusView struct {
	User           string
	UserPick       string
	Challenger     string
	ChallengerPick string
	Result         ViewResult
	IsMaster       bool
	IsCancelled    bool
	IsFinished     bool
}

// StreamGameStatus emits viewer-relative projections of one match until it
// finishes, is detected as expired or lost, or ctx is canceled.
//
// Expiry cleanup is master-only: the master deletes the expired record and
// ends with a cancelled view, while the other side simply observes the
// record vanish on its next poll and ends the same way. That keeps both
// streams terminating without racing on the delete.
func (e *Engine) StreamGameStatus(ctx context.Context, matchID, username string, send func(GameStatusView) error) error {
	// The record is created by the master's pairing stream and the second
	// participant may be attached a beat later, so both "not there yet"
	// shapes wait with the same cadence. The expiry window bounds the wait
	// so a pairing that never completes cannot hang the stream.
	deadline := e.clock().Add(e.cfg.GameStatusMaxWait)
	var match storage.Match
	for {
		if ctx.Err() != nil {
			return nil
		}
		m, err := e.matches.GetMatch(ctx, matchID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			if e.clock().After(deadline) {
				return send(cancelledView())
			}
		case err != nil:
			return err
		case m.ChallengerName != storage.UnknownChallenger:
			match = m
		default:
			if e.clock().After(deadline) {
				return send(cancelledView())
			}
		}
		if match.ID != "" {
			break
		}
		if !sleep(ctx, e.cfg.GameStatusUpdateDelay) {
			return nil
		}
	}

	if match.PlayerName != username && match.ChallengerName != username {
		return apperrors.Newf(apperrors.CodeMatchParticipantUnknown, "user %s is not part of match %s", username, matchID)
	}
	isMaster := match.PlayerName == username

	view := project(match, username)
	if err := send(view); err != nil {
		return err
	}
	if view.IsFinished {
		return nil
	}

	for {
		if !sleep(ctx, e.cfg.GameStatusUpdateDelay) {
			return nil
		}

		match, err := e.matches.GetMatch(ctx, matchID)
		if errors.Is(err, storage.ErrNotFound) {
			// The other side's stream already cleaned up the expired
			// record.
			return send(cancelledView())
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		expired := e.clock().Add(-e.cfg.GameStatusMaxWait).After(match.CreatedAt)
		if isMaster && expired && !match.Result.Decided() {
			if err := e.matches.DeleteMatch(ctx, matchID); err != nil && !errors.Is(err, storage.ErrNotFound) {
				log.Printf("delete expired match %s: %v", matchID, err)
			}
			return send(cancelledView())
		}

		view := project(match, username)
		if err := send(view); err != nil {
			return err
		}
		if view.IsFinished {
			return nil
		}
	}
}

func cancelledView() GameStatusView {
	return GameStatusView{Result: ViewPending, IsCancelled: true, IsFinished: true}
}

// project recomputes the viewer-relative view of a match. The non-master
// sees the stored fields swapped and the result mirrored, so each
// participant reads the outcome as self versus opponent rather than master
// versus challenger.
func project(match storage.Match, username string) GameStatusView {
	isMaster := match.PlayerName == username

	view := GameStatusView{
		IsMaster:   isMaster,
		IsFinished: match.Result.Decided(),
	}
	if isMaster {
		view.User = match.PlayerName
		view.UserPick = match.PlayerMove.String()
		view.Challenger = match.ChallengerName
		view.ChallengerPick = match.ChallengerMove.String()
	} else {
		view.User = match.ChallengerName
		view.UserPick = match.ChallengerMove.String()
		view.Challenger = match.PlayerName
		view.ChallengerPick = match.PlayerMove.String()
	}

	switch match.Result {
	case game.ResultPlayer:
		if isMaster {
			view.Result = ViewUser
		} else {
			view.Result = ViewChallenger
		}
	case game.ResultChallenger:
		if isMaster {
			view.Result = ViewChallenger
		} else {
			view.Result = ViewUser
		}
	case game.ResultDraw:
		view.Result = ViewDraw
	default:
		view.Result = ViewPending
	}
	return view
}
