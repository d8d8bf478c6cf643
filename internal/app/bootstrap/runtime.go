package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	eventadapter "github.com/ib-77/results/internal/adapters/events"
	grpcadapter "github.com/ib-77/results/internal/adapters/grpc"
	httpadapter "github.com/ib-77/results/internal/adapters/http"
	"github.com/ib-77/results/internal/adapters/storage/memory"
	"github.com/ib-77/results/internal/adapters/storage/postgres"
	redisstore "github.com/ib-77/results/internal/adapters/storage/redis"
	"github.com/ib-77/results/internal/tenant"
	"github.com/ib-77/results/pkg/rop/schema"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcLis    net.Listener
	closers    []io.Closer
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	rt := &Runtime{cfg: cfg, logger: logger}
	ok := false
	defer func() {
		if !ok {
			rt.close()
		}
	}()

	store, err := rt.openStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.Seed(ctx, tenant.SeedUsers()); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	var publisher tenant.Publisher = eventadapter.NewLoggingPublisher(logger)
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub, err := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			tenant.EventUserUpdated: cfg.KafkaTopicUserUpdated,
		})
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, kafkaPub)
		publisher = kafkaPub
	}

	local := tenant.NewUsers(tenant.Dependencies{
		Store:     store,
		Publisher: publisher,
		Logger:    logger,
		Workers:   cfg.Workers,
	})

	var api tenant.Service = local
	if cfg.TenantGRPCURL != "" {
		remote, err := rt.dialTenant()
		if err != nil {
			return nil, err
		}
		api = remote
	}

	handler := httpadapter.NewHandler(api, logger)
	rt.httpServer = &http.Server{Addr: fmt.Sprintf(":%d", cfg.HTTPPort), Handler: httpadapter.NewRouter(handler), ReadHeaderTimeout: 5 * time.Second}

	rt.grpcServer = grpcadapter.NewGRPCServer(logger)
	grpcadapter.Register(rt.grpcServer, grpcadapter.NewTenantServer(local))
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return nil, err
	}
	rt.grpcLis = lis

	ok = true
	return rt, nil
}

func (r *Runtime) openStore(ctx context.Context) (tenant.Store, error) {
	switch r.cfg.Storage {
	case StorageRedis:
		client, err := redisstore.Connect(ctx, r.cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		r.closers = append(r.closers, client)
		return redisstore.NewStore(client), nil
	case StoragePostgres:
		db, err := postgres.Connect(ctx, r.cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			r.closers = append(r.closers, sqlDB)
		}
		store := postgres.NewStore(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return memory.NewStore(), nil
	}
}

func (r *Runtime) dialTenant() (tenant.Service, error) {
	var validator *schema.Validator
	if r.cfg.ValidateWire {
		v, err := schema.NewValidator()
		if err != nil {
			return nil, err
		}
		validator = v
	}
	conn, err := grpc.NewClient(r.cfg.TenantGRPCURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial tenant service: %w", err)
	}
	r.closers = append(r.closers, conn)
	return grpcadapter.NewClient(conn, validator), nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer r.close()

	errCh := make(chan error, 2)
	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := r.grpcServer.Serve(r.grpcLis); err != nil {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "runtime started",
		"http_port", r.cfg.HTTPPort,
		"grpc_port", r.cfg.GRPCPort,
		"storage", r.cfg.Storage,
	)

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.grpcServer.GracefulStop()
	return runErr
}

func (r *Runtime) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			r.logger.Warn("close resource", "error", err)
		}
	}
	r.closers = nil
	if r.grpcLis != nil {
		_ = r.grpcLis.Close()
	}
}
