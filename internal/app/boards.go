package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
	"github.com/jsamuelsen11/go-board-service/internal/ports"
)

// Compile-time check that Boards implements ports.BoardRegistry.
var _ ports.BoardRegistry = (*Boards)(nil)

// Boards is the set of board stores hosted by the service, keyed by name.
type Boards struct {
	stores map[string]*BoardStore
	names  []string
}

// NewBoards builds a registry from stores. Later stores with a duplicate
// name replace earlier ones.
func NewBoards(stores ...*BoardStore) *Boards {
	r := &Boards{stores: make(map[string]*BoardStore, len(stores))}
	for _, s := range stores {
		r.stores[s.Name()] = s
	}
	for name := range r.stores {
		r.names = append(r.names, name)
	}
	slices.Sort(r.names)
	return r
}

// Board returns the named board.
func (r *Boards) Board(name string) (ports.BoardService, error) {
	s, ok := r.stores[name]
	if !ok {
		return nil, fmt.Errorf("board %q: %w", name, domain.ErrNotFound)
	}
	return s, nil
}

// Names returns the board names in sorted order.
func (r *Boards) Names() []string {
	return slices.Clone(r.names)
}

// Start loads every board concurrently and starts their sync workers.
func (r *Boards) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for _, s := range r.stores {
		wg.Go(func() { s.Start(ctx) })
	}
	wg.Wait()
}

// Close drains every board's sync queue.
func (r *Boards) Close(ctx context.Context) error {
	var errs []error
	for _, name := range r.names {
		if err := r.stores[name].Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("closing board %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
