package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-board-service/internal/domain/board"
	"github.com/jsamuelsen11/go-board-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Sync defaults applied when SyncOptions fields are zero.
const (
	DefaultSyncQueueSize = 64
	DefaultSyncTimeout   = 10 * time.Second
)

// SyncOptions tunes the background save loop of one board.
type SyncOptions struct {
	// QueueSize bounds the number of snapshots waiting to be saved. When the
	// queue is full new snapshots are dropped.
	QueueSize int

	// Coalesce saves only the newest queued snapshot and skips the rest.
	Coalesce bool

	// Timeout bounds a single Save call.
	Timeout time.Duration
}

func (o SyncOptions) withDefaults() SyncOptions {
	if o.QueueSize <= 0 {
		o.QueueSize = DefaultSyncQueueSize
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultSyncTimeout
	}
	return o
}

// syncWorker saves board snapshots in the order they were enqueued. Saves
// are fire-and-forget: a failure is logged and counted, never retried, and
// the in-memory board is left as it is.
type syncWorker struct {
	board   string
	repo    ports.BoardRepository
	opts    SyncOptions
	logger  *slog.Logger
	metrics *telemetry.Metrics

	mu      sync.Mutex
	closed  bool
	started bool
	queue   chan board.Board
	done    chan struct{}
}

func newSyncWorker(name string, repo ports.BoardRepository, opts SyncOptions, logger *slog.Logger, metrics *telemetry.Metrics) *syncWorker {
	opts = opts.withDefaults()
	return &syncWorker{
		board:   name,
		repo:    repo,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
		queue:   make(chan board.Board, opts.QueueSize),
		done:    make(chan struct{}),
	}
}

// start launches the save loop. ctx supplies values (logger, trace) for the
// saves; its cancellation does not stop the loop, stop does.
func (w *syncWorker) start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.closed {
		return
	}
	w.started = true
	go w.run(context.WithoutCancel(ctx))
}

// enqueue hands a snapshot to the save loop without blocking. It reports
// false when the snapshot was dropped.
func (w *syncWorker) enqueue(ctx context.Context, b board.Board) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return false
	}
	select {
	case w.queue <- b:
		return true
	default:
		w.logger.WarnContext(ctx, "sync queue full, dropping snapshot",
			slog.String("board", w.board),
			slog.Int("queue_size", w.opts.QueueSize),
		)
		w.metrics.RecordSync(ctx, w.board, telemetry.ResultDropped, 0)
		return false
	}
}

// stop closes the queue and waits until every queued snapshot is saved or
// ctx is done.
func (w *syncWorker) stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	started := w.started
	w.mu.Unlock()

	if !started {
		return nil
	}
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *syncWorker) run(ctx context.Context) {
	defer close(w.done)

	for b := range w.queue {
		if w.opts.Coalesce {
			b = w.latest(b)
		}
		w.save(ctx, b)
	}
}

// latest drains the queue without blocking and returns the newest snapshot.
func (w *syncWorker) latest(b board.Board) board.Board {
	for {
		select {
		case next, ok := <-w.queue:
			if !ok {
				return b
			}
			b = next
		default:
			return b
		}
	}
}

func (w *syncWorker) save(ctx context.Context, b board.Board) {
	ctx, cancel := context.WithTimeout(ctx, w.opts.Timeout)
	defer cancel()

	start := time.Now()
	err := w.repo.Save(ctx, b)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		w.logger.ErrorContext(ctx, "board sync failed",
			slog.String("operation", "Save"),
			slog.String("board", w.board),
			slog.Any("error", err),
		)
		w.metrics.RecordSync(ctx, w.board, telemetry.ResultError, elapsed)
		return
	}
	w.metrics.RecordSync(ctx, w.board, telemetry.ResultSuccess, elapsed)
}
