package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/jsamuelsen11/go-board-service/internal/adapters/persistence/kv"
	"github.com/jsamuelsen11/go-board-service/internal/adapters/persistence/local"
	"github.com/jsamuelsen11/go-board-service/internal/adapters/persistence/remote"
	"github.com/jsamuelsen11/go-board-service/internal/app"
	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/platform/config"
	"github.com/jsamuelsen11/go-board-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

const kvOpenTimeout = 10 * time.Second

// hostedBoards is everything built from the boards config section.
type hostedBoards struct {
	boards   *app.Boards
	checkers []ports.HealthChecker
	closers  []io.Closer
}

// Close releases every kv store.
func (h *hostedBoards) Close() error {
	var errs []error
	for _, c := range h.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// namedChecker reports an inner checker under a board-specific name so two
// boards on the same backend do not collide in the health registry.
type namedChecker struct {
	ports.HealthChecker
	name string
}

func (n namedChecker) Name() string { return n.name }

// buildBoards creates one board store per configured board. The project
// client is only used by boards with the remote strategy.
func buildBoards(
	ctx context.Context,
	cfg *config.Config,
	client ports.ProjectClient,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) (*hostedBoards, error) {
	opts := app.SyncOptions{
		QueueSize: cfg.Sync.QueueSize,
		Coalesce:  cfg.Sync.Coalesce,
		Timeout:   cfg.Sync.Timeout,
	}

	hosted := &hostedBoards{}
	var stores []*app.BoardStore

	for _, name := range slices.Sorted(maps.Keys(cfg.Boards)) {
		bc := cfg.Boards[name]

		var (
			repo ports.BoardRepository
			seed board.Board
		)
		switch bc.Strategy {
		case config.StrategyRemote:
			repo = remote.NewRepository(client, bc.MaxWorkers, logger.With(slog.String("board", name)))
			seed = remote.Empty()

		default:
			seedFn, err := seedFunc(bc.Seed)
			if err != nil {
				_ = hosted.Close()
				return nil, fmt.Errorf("board %q: %w", name, err)
			}

			store, err := openStore(ctx, name, bc)
			if err != nil {
				_ = hosted.Close()
				return nil, fmt.Errorf("board %q: %w", name, err)
			}
			hosted.closers = append(hosted.closers, store)
			hosted.checkers = append(hosted.checkers, namedChecker{HealthChecker: store, name: "board-" + name})

			repo = local.NewRepository(store, storageKey(name, bc), seedFn, logger.With(slog.String("board", name)))
			seed = seedFn()
		}

		stores = append(stores, app.NewBoardStore(name, seed, repo, opts, logger, metrics))
		logger.InfoContext(ctx, "board configured",
			slog.String("board", name),
			slog.String("layout", bc.Layout),
			slog.String("strategy", bc.Strategy),
		)
	}

	hosted.boards = app.NewBoards(stores...)
	return hosted, nil
}

func openStore(ctx context.Context, name string, bc config.BoardConfig) (kv.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, kvOpenTimeout)
	defer cancel()

	return kv.Open(ctx, kv.Options{
		Backend:   bc.Backend,
		Path:      bc.Path,
		RedisAddr: bc.RedisAddr,
		Prefix:    "board:" + name + ":",
	})
}

// storageKey defaults the document key to the board name.
func storageKey(name string, bc config.BoardConfig) string {
	if bc.Key != "" {
		return bc.Key
	}
	return name
}

func seedFunc(name string) (func() board.Board, error) {
	if _, err := board.SeedByName(name); err != nil {
		return nil, err
	}
	return func() board.Board {
		b, _ := board.SeedByName(name)
		return b
	}, nil
}
