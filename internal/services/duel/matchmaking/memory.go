package matchmaking

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/openduel/arena/internal/errors"
	"github.com/openduel/arena/internal/platform/id"
	"github.com/openduel/arena/internal/platform/ratelimit"
)

// Default request rate ceiling for ticket lookups without a ticket id,
// mirroring the constrained tiers of hosted matchmakers.
const (
	defaultListCapacity    = 10
	defaultListRefillEvery = 6 * time.Second
)

// MemoryProvider is an in-process Provider for single-node deployments and
// tests. Tickets are joinable by id and lookups without a ticket id are
// subject to a per-user rate ceiling, so callers exercise the same
// rate-limit recovery path a hosted matchmaker forces on them.
type MemoryProvider struct {
	mu      sync.Mutex
	tickets map[string]*memoryTicket
	byUser  map[string]string
	limits  map[string]*ratelimit.TokenBucket

	listCapacity    int64
	listRefillEvery time.Duration
	newID           func() (string, error)
}

type memoryTicket struct {
	id      string
	creator string
	joiner  string
	status  string
	matchID string
}

// MemoryProviderOption configures a MemoryProvider.
type MemoryProviderOption func(*MemoryProvider)

// WithListRateLimit overrides the per-user ceiling for ticket lookups
// without a ticket id.
func WithListRateLimit(capacity int64, refillEvery time.Duration) MemoryProviderOption {
	return func(p *MemoryProvider) {
		p.listCapacity = capacity
		p.listRefillEvery = refillEvery
	}
}

// WithIDGenerator overrides ticket and match id generation.
func WithIDGenerator(newID func() (string, error)) MemoryProviderOption {
	return func(p *MemoryProvider) {
		p.newID = newID
	}
}

// NewMemoryProvider creates an empty in-process matchmaker.
func NewMemoryProvider(opts ...MemoryProviderOption) *MemoryProvider {
	provider := &MemoryProvider{
		tickets:         make(map[string]*memoryTicket),
		byUser:          make(map[string]string),
		limits:          make(map[string]*ratelimit.TokenBucket),
		listCapacity:    defaultListCapacity,
		listRefillEvery: defaultListRefillEvery,
		newID:           id.NewID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(provider)
		}
	}
	return provider
}

// CreateTicket opens a new searching ticket owned by the user.
func (p *MemoryProvider) CreateTicket(ctx context.Context, username string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ticketID, err := p.newID()
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickets[ticketID] = &memoryTicket{
		id:      ticketID,
		creator: username,
		status:  StatusSearching,
	}
	p.byUser[username] = ticketID
	return ticketID, nil
}

// JoinTicket attaches a second participant and resolves the ticket to a
// match.
func (p *MemoryProvider) JoinTicket(ctx context.Context, username, ticketID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ticket, ok := p.tickets[ticketID]
	if !ok {
		return apperrors.Newf(apperrors.CodeTicketNotFound, "ticket %s not found", ticketID)
	}
	if ticket.status != StatusSearching {
		return apperrors.Newf(apperrors.CodePairingTokenConsumed, "ticket %s is already %s", ticketID, ticket.status)
	}

	matchID, err := p.newID()
	if err != nil {
		return err
	}
	ticket.joiner = username
	ticket.status = StatusMatched
	ticket.matchID = matchID
	p.byUser[username] = ticketID
	return nil
}

// CancelTicket marks a searching ticket canceled. Canceling a resolved
// ticket has no effect.
func (p *MemoryProvider) CancelTicket(ticketID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ticket, ok := p.tickets[ticketID]; ok && ticket.status == StatusSearching {
		ticket.status = StatusCanceled
	}
}

// PollTicket observes current ticket state. Lookups without a ticket id are
// rate limited per user; a denied lookup returns an empty TicketStatus,
// which callers treat as the normal rate-limited condition.
func (p *MemoryProvider) PollTicket(ctx context.Context, username, ticketID string) (TicketStatus, error) {
	if err := ctx.Err(); err != nil {
		return TicketStatus{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if ticketID == "" {
		if !p.listBucket(username).Allow() {
			return TicketStatus{}, nil
		}
		ticketID = p.byUser[username]
	}

	ticket, ok := p.tickets[ticketID]
	if !ok {
		return TicketStatus{}, apperrors.Newf(apperrors.CodeTicketNotFound, "no ticket for user %s", username)
	}

	opponent := ticket.joiner
	if username == ticket.joiner {
		opponent = ticket.creator
	}
	return TicketStatus{
		TicketID: ticket.id,
		Status:   ticket.status,
		Finished: ticket.status != StatusSearching,
		MatchID:  ticket.matchID,
		Opponent: opponent,
	}, nil
}

// listBucket returns the per-user lookup bucket, creating it on first use.
// Caller must hold p.mu.
func (p *MemoryProvider) listBucket(username string) *ratelimit.TokenBucket {
	bucket, ok := p.limits[username]
	if !ok {
		bucket = ratelimit.NewTokenBucket(p.listCapacity, p.listRefillEvery)
		p.limits[username] = bucket
	}
	return bucket
}
