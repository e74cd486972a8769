// Package matchmaking drives an external ticket-based matchmaker.
package matchmaking

import (
	"context"

	apperrors "github.com/openduel/arena/internal/errors"
)

// Ticket statuses reported by providers.
const (
	StatusSearching = "searching"
	StatusMatched   = "matched"
	StatusCanceled  = "canceled"
)

// TicketStatus is one observation of a matchmaking ticket.
//
// An empty TicketID signals the provider's transient capacity or rate-limit
// condition. That is a normal outcome, not an error: callers back off and
// poll again.
type TicketStatus struct {
	TicketID string
	Status   string
	Finished bool
	MatchID  string
	Opponent string
}

// RateLimited reports whether this observation hit the provider's request
// rate ceiling.
func (s TicketStatus) RateLimited() bool {
	return s.TicketID == ""
}

// Provider is the external matchmaker. Tickets are owned by the provider and
// only observed through polling.
type Provider interface {
	// CreateTicket requests a new matchmaking ticket for the user.
	CreateTicket(ctx context.Context, username string) (string, error)
	// JoinTicket attaches a second participant to an existing ticket.
	JoinTicket(ctx context.Context, username, ticketID string) error
	// PollTicket is a single non-blocking query of current ticket state.
	// When ticketID is empty the provider resolves the user's ticket itself,
	// a lookup subject to the provider's request rate ceiling.
	PollTicket(ctx context.Context, username, ticketID string) (TicketStatus, error)
}

// Coordinator wraps a Provider and classifies its failures. Hard provider
// failures surface as PROVIDER_UNAVAILABLE domain errors; rate limiting stays
// a plain status observation. The coordinator never retries: pacing between
// polls belongs to the caller.
type Coordinator struct {
	provider Provider
}

// NewCoordinator creates a Coordinator around the given provider.
func NewCoordinator(provider Provider) *Coordinator {
	return &Coordinator{provider: provider}
}

// CreateTicket requests a new ticket for the user.
func (c *Coordinator) CreateTicket(ctx context.Context, username string) (string, error) {
	ticketID, err := c.provider.CreateTicket(ctx, username)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeProviderUnavailable, "create ticket", err)
	}
	return ticketID, nil
}

// JoinTicket attaches the user to an existing ticket.
func (c *Coordinator) JoinTicket(ctx context.Context, username, ticketID string) error {
	if err := c.provider.JoinTicket(ctx, username, ticketID); err != nil {
		if apperrors.GetCode(err) != apperrors.CodeUnknown {
			return err
		}
		return apperrors.Wrap(apperrors.CodeProviderUnavailable, "join ticket", err)
	}
	return nil
}

// PollTicket observes current ticket state once.
func (c *Coordinator) PollTicket(ctx context.Context, username, ticketID string) (TicketStatus, error) {
	status, err := c.provider.PollTicket(ctx, username, ticketID)
	if err != nil {
		if apperrors.GetCode(err) != apperrors.CodeUnknown {
			return TicketStatus{}, err
		}
		return TicketStatus{}, apperrors.Wrap(apperrors.CodeProviderUnavailable, "poll ticket", err)
	}
	return status, nil
}
