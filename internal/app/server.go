// Package app wires the dice runtime and gRPC lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	dicev1 "github.com/louisbranch/dicebox/api/gen/go/dice/v1"
	diceservice "github.com/louisbranch/dicebox/internal/api/grpc/dice"
	dicedomain "github.com/louisbranch/dicebox/internal/dice"
	"github.com/louisbranch/dicebox/internal/observability"
	"github.com/louisbranch/dicebox/internal/platform/config"
	"github.com/louisbranch/dicebox/internal/roll"
	"github.com/louisbranch/dicebox/internal/roll/id"
	"github.com/louisbranch/dicebox/internal/storage"
	"github.com/louisbranch/dicebox/internal/storage/memory"
	"github.com/louisbranch/dicebox/internal/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// DBPathMemory selects the in-memory roll store explicitly; an empty
// DICEBOX_DB_PATH has the same effect.
const DBPathMemory = "memory"

type serverEnv struct {
	DBPath string `env:"DICEBOX_DB_PATH"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	return cfg
}

// Server hosts the dice gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	closeStore func() error
}

// New creates a configured dice server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured dice server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env := loadServerEnv()
	store, closeStore, err := openRollStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	roller, err := dicedomain.NewRoller()
	if err != nil {
		_ = listener.Close()
		_ = closeStore()
		return nil, fmt.Errorf("seed dice roller: %w", err)
	}

	sink, err := observability.NewOTelSink()
	if err != nil {
		_ = listener.Close()
		_ = closeStore()
		return nil, fmt.Errorf("create metrics sink: %w", err)
	}

	rollService := roll.NewService(store, roller, id.Generator{}, observability.NewEmitter(sink))

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := diceservice.NewService(rollService)
	healthServer := health.NewServer()
	dicev1.RegisterDiceServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("dice.v1.DiceService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		closeStore: closeStore,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a dice server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("dice server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases dice server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.closeStore != nil {
		if err := s.closeStore(); err != nil {
			log.Printf("close roll store: %v", err)
		}
	}
}

// openRollStore opens the store selected by path: empty or the literal
// "memory" keeps rolls in process memory, anything else is a SQLite
// database path.
func openRollStore(path string) (storage.RollStore, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" || strings.EqualFold(path, DBPathMemory) {
		return memory.NewStore(), func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open roll sqlite store: %w", err)
	}
	return store, store.Close, nil
}
