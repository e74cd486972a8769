// Package duel implements the duel.v1.DuelService gRPC API. It is a thin
// mapping layer: request validation and translation to and from the engine,
// with streaming handlers bridging the engine's callback streams onto gRPC
// server streams.
package duel

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	duelv1 "github.com/openduel/arena/api/gen/go/duel/v1"
	apperrors "github.com/openduel/arena/internal/errors"
	"github.com/openduel/arena/internal/services/duel/app"
)

// Service implements the duel.v1.DuelService gRPC API.
type Service struct {
	duelv1.UnimplementedDuelServiceServer
	engine *app.Engine
}

// NewService creates a Service backed by the given engine.
func NewService(engine *app.Engine) *Service {
	return &Service{engine: engine}
}

// CreatePairing opens a matchmaking ticket and returns its pairing token.
func (s *Service) CreatePairing(ctx context.Context, in *duelv1.CreatePairingRequest) (*duelv1.CreatePairingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create pairing request is required")
	}

	token, err := s.engine.CreatePairing(ctx, in.GetUsername())
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	return &duelv1.CreatePairingResponse{Token: token}, nil
}

// JoinPairing attaches the caller to the ticket behind a pairing token.
func (s *Service) JoinPairing(ctx context.Context, in *duelv1.JoinPairingRequest) (*duelv1.JoinPairingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "join pairing request is required")
	}

	if err := s.engine.JoinPairing(ctx, in.GetUsername(), in.GetToken()); err != nil {
		return nil, apperrors.HandleError(err)
	}
	return &duelv1.JoinPairingResponse{}, nil
}

// PairingStatus streams pairing progress until the ticket resolves or the
// client goes away.
func (s *Service) PairingStatus(in *duelv1.PairingStatusRequest, stream duelv1.DuelService_PairingStatusServer) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "pairing status request is required")
	}

	err := s.engine.StreamPairingStatus(stream.Context(), in.GetUsername(), in.GetIsMaster(), func(update app.PairingUpdate) error {
		return stream.Send(pairingUpdateToProto(update))
	})
	if err != nil {
		return apperrors.HandleError(err)
	}
	return nil
}

// GameStatus streams viewer-relative match projections until the match
// finishes, expires, or the client goes away.
func (s *Service) GameStatus(in *duelv1.GameStatusRequest, stream duelv1.DuelService_GameStatusServer) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "game status request is required")
	}

	err := s.engine.StreamGameStatus(stream.Context(), in.GetMatchId(), in.GetUsername(), func(view app.GameStatusView) error {
		return stream.Send(gameStatusViewToProto(view))
	})
	if err != nil {
		return apperrors.HandleError(err)
	}
	return nil
}

// Pick records the caller's move for a match.
func (s *Service) Pick(ctx context.Context, in *duelv1.PickRequest) (*duelv1.PickResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "pick request is required")
	}

	if err := s.engine.SubmitPick(ctx, in.GetMatchId(), in.GetUsername(), in.GetPick()); err != nil {
		return nil, apperrors.HandleError(err)
	}
	return &duelv1.PickResponse{}, nil
}
