package duel

import (
	duelv1 "github.com/openduel/arena/api/gen/go/duel/v1"
	"github.com/openduel/arena/internal/services/duel/app"
)

func pairingUpdateToProto(update app.PairingUpdate) *duelv1.PairingStatusUpdate {
	return &duelv1.PairingStatusUpdate{
		State:   pairingStateToProto(update.State),
		MatchId: update.MatchID,
	}
}

func pairingStateToProto(state app.PairingState) duelv1.PairingState {
	switch state {
	case app.PairingSearching:
		return duelv1.PairingState_PAIRING_STATE_SEARCHING
	case app.PairingRateLimited:
		return duelv1.PairingState_PAIRING_STATE_RATE_LIMITED
	case app.PairingMatched:
		return duelv1.PairingState_PAIRING_STATE_MATCHED
	case app.PairingCanceled:
		return duelv1.PairingState_PAIRING_STATE_CANCELED
	default:
		return duelv1.PairingState_PAIRING_STATE_UNSPECIFIED
	}
}

func gameStatusViewToProto(view app.GameStatusView) *duelv1.GameStatusUpdate {
	return &duelv1.GameStatusUpdate{
		User:           view.User,
		UserPick:       view.UserPick,
		Challenger:     view.Challenger,
		ChallengerPick: view.ChallengerPick,
		Result:         gameResultToProto(view.Result),
		IsMaster:       view.IsMaster,
		IsCancelled:    view.IsCancelled,
		IsFinished:     view.IsFinished,
	}
}

func gameResultToProto(result app.ViewResult) duelv1.GameResult {
	switch result {
	case app.ViewPending:
		return duelv1.GameResult_GAME_RESULT_PENDING
	case app.ViewUser:
		return duelv1.GameResult_GAME_RESULT_USER
	case app.ViewChallenger:
		return duelv1.GameResult_GAME_RESULT_CHALLENGER
	case app.ViewDraw:
		return duelv1.GameResult_GAME_RESULT_DRAW
	default:
		return duelv1.GameResult_GAME_RESULT_UNSPECIFIED
	}
}
