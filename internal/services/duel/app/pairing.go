package app

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/openduel/arena/internal/errors"
	"github.com/openduel/arena/internal/services/duel/matchmaking"
	"github.com/openduel/arena/internal/services/duel/storage"
)

// PairingState is one phase of a pairing attempt.
type PairingState string

const (
	PairingSearching   PairingState = "searching"
	PairingRateLimited PairingState = "rate_limited"
	PairingMatched     PairingState = "matched"
	PairingCanceled    PairingState = "canceled"
)

// PairingUpdate is one event on a pairing status stream. MatchID is set only
// on the terminal event, and stays empty when the ticket was canceled.
type PairingUpdate struct {
	State   PairingState
	MatchID string
}

// CreatePairing opens a matchmaking ticket for the user and returns an
// opaque single-use token a second player can join with.
func (e *Engine) CreatePairing(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", apperrors.New(apperrors.CodePairingUsernameEmpty, "username is required")
	}

	ticketID, err := e.tickets.CreateTicket(ctx, username)
	if err != nil {
		return "", err
	}
	token, err := e.newID()
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	e.tokens[token] = &pairingToken{ticketID: ticketID, creator: username}
	e.mu.Unlock()
	return token, nil
}

// JoinPairing attaches the user to the ticket behind a token and consumes
// the token.
func (e *Engine) JoinPairing(ctx context.Context, username, token string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.New(apperrors.CodePairingUsernameEmpty, "username is required")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.New(apperrors.CodePairingTokenEmpty, "pairing token is required")
	}

	e.mu.Lock()
	record, ok := e.tokens[token]
	if !ok {
		e.mu.Unlock()
		return apperrors.New(apperrors.CodePairingTokenUnknown, "pairing token is not recognized")
	}
	if record.consumed {
		e.mu.Unlock()
		return apperrors.New(apperrors.CodePairingTokenConsumed, "pairing token was already used")
	}
	if record.creator == username {
		e.mu.Unlock()
		return apperrors.New(apperrors.CodePairingSelfJoin, "cannot join your own pairing")
	}
	ticketID := record.ticketID
	e.mu.Unlock()

	if err := e.tickets.JoinTicket(ctx, username, ticketID); err != nil {
		return err
	}

	e.mu.Lock()
	record.consumed = true
	e.mu.Unlock()
	return nil
}

// StreamPairingStatus emits ordered pairing events until the ticket
// resolves or ctx is canceled. While the matchmaker is rate limiting ticket
// lookups it emits PairingRateLimited and retries every TicketListWait; the
// loop has no bound other than cancellation. The terminal event carries the
// resolved match id. When the caller is the master, the match record is
// created as the stream's last action; that is the sole creation path for a
// match.
func (e *Engine) StreamPairingStatus(ctx context.Context, username string, isMaster bool, send func(PairingUpdate) error) error {
	ticketID := ""
	var final matchmaking.TicketStatus

	for {
		if ctx.Err() != nil {
			return nil
		}
		status, err := e.tickets.PollTicket(ctx, username, ticketID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if status.RateLimited() {
			if err := send(PairingUpdate{State: PairingRateLimited}); err != nil {
				return err
			}
			if !sleep(ctx, e.cfg.TicketListWait) {
				return nil
			}
			continue
		}

		ticketID = status.TicketID
		if status.Finished {
			final = status
			break
		}
		if err := send(PairingUpdate{State: PairingSearching}); err != nil {
			return err
		}
		if !sleep(ctx, e.cfg.TicketStatusWait) {
			return nil
		}
	}

	state := PairingMatched
	if final.Status != matchmaking.StatusMatched {
		state = PairingCanceled
	}
	if err := send(PairingUpdate{State: state, MatchID: final.MatchID}); err != nil {
		return err
	}

	if isMaster && state == PairingMatched {
		err := e.matches.CreateMatch(ctx, storage.Match{
			ID:             final.MatchID,
			PlayerName:     username,
			ChallengerName: final.Opponent,
			CreatedAt:      e.clock().UTC(),
		})
		// A reconnecting master replays the finished ticket; the record
		// already existing is fine.
		if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
			return err
		}
	}
	return nil
}
