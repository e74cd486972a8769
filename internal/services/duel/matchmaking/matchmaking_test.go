package matchmaking

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/openduel/arena/internal/errors"
)

type flakyProvider struct {
	err    error
	status TicketStatus
}

func (p *flakyProvider) CreateTicket(context.Context, string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return "ticket-1", nil
}

func (p *flakyProvider) JoinTicket(context.Context, string, string) error {
	return p.err
}

func (p *flakyProvider) PollTicket(context.Context, string, string) (TicketStatus, error) {
	if p.err != nil {
		return TicketStatus{}, p.err
	}
	return p.status, nil
}

func TestCoordinatorWrapsProviderFailures(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	coordinator := NewCoordinator(&flakyProvider{err: cause})
	ctx := context.Background()

	if _, err := coordinator.CreateTicket(ctx, "sheldon"); !apperrors.IsCode(err, apperrors.CodeProviderUnavailable) {
		t.Fatalf("expected PROVIDER_UNAVAILABLE, got %v", err)
	}
	if err := coordinator.JoinTicket(ctx, "leonard", "ticket-1"); !apperrors.IsCode(err, apperrors.CodeProviderUnavailable) {
		t.Fatalf("expected PROVIDER_UNAVAILABLE, got %v", err)
	}
	if _, err := coordinator.PollTicket(ctx, "sheldon", "ticket-1"); !apperrors.IsCode(err, apperrors.CodeProviderUnavailable) {
		t.Fatalf("expected PROVIDER_UNAVAILABLE, got %v", err)
	}
}

func TestCoordinatorPreservesDomainErrors(t *testing.T) {
	t.Parallel()

	coordinator := NewCoordinator(&flakyProvider{
		err: apperrors.New(apperrors.CodeTicketNotFound, "ticket missing"),
	})
	ctx := context.Background()

	if err := coordinator.JoinTicket(ctx, "leonard", "ticket-1"); !apperrors.IsCode(err, apperrors.CodeTicketNotFound) {
		t.Fatalf("expected TICKET_NOT_FOUND to pass through, got %v", err)
	}
	if _, err := coordinator.PollTicket(ctx, "sheldon", ""); !apperrors.IsCode(err, apperrors.CodeTicketNotFound) {
		t.Fatalf("expected TICKET_NOT_FOUND to pass through, got %v", err)
	}
}

func TestCoordinatorPassesRateLimitedStatus(t *testing.T) {
	t.Parallel()

	coordinator := NewCoordinator(&flakyProvider{})
	status, err := coordinator.PollTicket(context.Background(), "sheldon", "")
	if err != nil {
		t.Fatalf("poll ticket: %v", err)
	}
	if !status.RateLimited() {
		t.Fatal("expected empty ticket id to classify as rate limited")
	}
}
