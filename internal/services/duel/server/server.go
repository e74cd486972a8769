// Package server hosts the duel gRPC server: listener, storage, engine,
// and service registration.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	duelv1 "github.com/openduel/arena/api/gen/go/duel/v1"
	duelgrpc "github.com/openduel/arena/internal/services/duel/api/grpc/duel"
	grpcmeta "github.com/openduel/arena/internal/services/duel/api/grpc/metadata"
	"github.com/openduel/arena/internal/services/duel/app"
	"github.com/openduel/arena/internal/services/duel/matchmaking"
	"github.com/openduel/arena/internal/services/duel/storage/sqlite"
)

// Config holds the duel server's listen and storage settings plus the
// engine's polling cadence.
type Config struct {
	// Port is the TCP port to listen on. Ignored when Addr is set.
	Port int
	// Addr is the full listen address, overriding Port.
	Addr string
	// DBPath is the SQLite database path. Empty selects data/duel.db.
	DBPath string
	// Engine holds the stream polling cadence and expiry settings.
	Engine app.Config
}

// Server hosts the duel gRPC server.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *sqlite.Store
}

// New creates a configured duel server listening per cfg.
func New(cfg Config) (*Server, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", cfg.Port)
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	store, err := openMatchStore(cfg.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	provider := matchmaking.NewMemoryProvider()
	engine := app.NewEngine(matchmaking.NewCoordinator(provider), store, store, cfg.Engine)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(nil)),
		grpc.StreamInterceptor(grpcmeta.StreamServerInterceptor(nil)),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	healthServer := health.NewServer()
	duelv1.RegisterDuelServiceServer(grpcServer, duelgrpc.NewService(engine))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("duel.v1.DuelService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the duel server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a duel server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	duelServer, err := New(cfg)
	if err != nil {
		return err
	}
	return duelServer.Serve(ctx)
}

// Serve starts the duel server and blocks until it stops or the context
// ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("duel server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func openMatchStore(path string) (*sqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "duel.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close match store: %v", err)
	}
}
