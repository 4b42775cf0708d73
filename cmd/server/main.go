// Package main runs the board service: it loads the profile config, builds
// one board store per configured board, wires the HTTP API with samber/do v2
// and shuts down in stages on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-board-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-board-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-board-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-board-service/internal/platform/config"
	"github.com/jsamuelsen11/go-board-service/internal/platform/health"
	"github.com/jsamuelsen11/go-board-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-board-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-board-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

const (
	boardsShutdownTimeout = 30 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	hosted := do.MustInvoke[*hostedBoards](injector)

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if needsProjectAPI(cfg) {
		registry.Register(do.MustInvoke[*acl.ProjectClient](injector))
	}
	for _, checker := range hosted.checkers {
		registry.Register(checker)
	}

	// Load every board before accepting requests.
	hosted.boards.Start(ctx)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = hosted.boards.Close(context.Background())
		_ = hosted.Close()
		return fmt.Errorf("server failed: %w", err)
	}

	steps := []shutdownStep{
		{name: "http server", timeout: cfg.Server.ShutdownTimeout, run: func(ctx context.Context) error {
			err := server.Shutdown(ctx)
			<-serverErr
			return err
		}},
		{name: "board sync drain", timeout: boardsShutdownTimeout, run: hosted.boards.Close},
		{name: "board stores", run: func(context.Context) error { return hosted.Close() }},
		{name: "telemetry", timeout: otelShutdownTimeout, run: otel.Shutdown},
	}
	for _, step := range steps {
		step.do(logger)
	}

	logger.Info("shutdown complete")
	return nil
}

// shutdownStep is one stage of graceful shutdown. The HTTP server must drain
// before the board sync queues close. A zero timeout means no deadline.
type shutdownStep struct {
	name    string
	timeout time.Duration
	run     func(context.Context) error
}

func (s shutdownStep) do(logger *slog.Logger) {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.run(ctx); err != nil {
		logger.Error("shutdown step failed", slog.String("step", s.name), slog.Any("error", err))
	}
}

// otelProviders holds the SDK providers to flush on shutdown and the board
// instruments built on the meter. Both are empty when telemetry is disabled.
type otelProviders struct {
	flush   []namedShutdown
	metrics *telemetry.Metrics
}

type namedShutdown struct {
	name string
	fn   func(context.Context) error
}

// Shutdown flushes the providers in reverse start order.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	for _, f := range slices.Backward(o.flush) {
		if err := f.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", f.name, err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	o := &otelProviders{}
	t := cfg.Telemetry
	if !t.Enabled {
		return o, nil
	}

	tp, err := telemetry.InitTracer(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	o.flush = append(o.flush, namedShutdown{"tracer", tp.Shutdown})

	mp, err := telemetry.InitMeter(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	o.flush = append(o.flush, namedShutdown{"meter", mp.Shutdown})

	if o.metrics, err = telemetry.NewMetrics(mp, t.ServiceName); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}

// needsProjectAPI reports whether any board persists to the project
// document store.
func needsProjectAPI(cfg *config.Config) bool {
	for _, b := range cfg.Boards {
		if b.Strategy == config.StrategyRemote {
			return true
		}
	}
	return false
}

// registerDependencies declares every lazily built component. Nothing is
// constructed until run invokes the server.
func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Outbound: the project API behind breaker, limiter and retries.
	do.Provide(injector, func(i do.Injector) (*acl.ProjectClient, error) {
		transport := httpclient.New(&cfg.Client, acl.ServiceName, do.MustInvoke[*telemetry.Metrics](i), logger)
		return acl.NewProjectClient(transport, logger), nil
	})

	// Boards and their health.
	do.Provide(injector, func(i do.Injector) (*hostedBoards, error) {
		return buildBoards(context.Background(), cfg,
			do.MustInvoke[*acl.ProjectClient](i), logger, do.MustInvoke[*telemetry.Metrics](i))
	})
	do.Provide(injector, func(i do.Injector) (ports.BoardRegistry, error) {
		return do.MustInvoke[*hostedBoards](i).boards, nil
	})
	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Client.Timeout)), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		boards := do.MustInvoke[ports.BoardRegistry](i)
		router := adapthttp.NewRouter(
			handlers.NewBoardHandler(boards),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), boards),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		)
		return adapthttp.NewServer(cfg.Server, router, logger), nil
	})
}
