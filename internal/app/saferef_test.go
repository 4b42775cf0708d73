package app

import (
	"errors"
	"sync"
	"testing"
)

func TestSafeRef_GetSet(t *testing.T) {
	t.Parallel()

	ref := NewRef("initial")

	if got := ref.Get(); got != "initial" {
		t.Fatalf("Get() = %q, want %q", got, "initial")
	}

	ref.Set("updated")

	if got := ref.Get(); got != "updated" {
		t.Fatalf("Get() = %q, want %q", got, "updated")
	}
}

func TestSafeRef_Swap(t *testing.T) {
	t.Parallel()

	t.Run("stores result on success", func(t *testing.T) {
		t.Parallel()
		ref := NewRef(1)
		got, err := ref.Swap(func(v int) (int, error) { return v + 1, nil })
		if err != nil || got != 2 || ref.Get() != 2 {
			t.Errorf("Swap() = %d, %v; Get() = %d, want 2", got, err, ref.Get())
		}
	})

	t.Run("keeps value on error", func(t *testing.T) {
		t.Parallel()
		errBoom := errors.New("boom")
		ref := NewRef(1)
		got, err := ref.Swap(func(v int) (int, error) { return v + 100, errBoom })
		if !errors.Is(err, errBoom) {
			t.Fatalf("Swap() error = %v, want %v", err, errBoom)
		}
		if got != 1 || ref.Get() != 1 {
			t.Errorf("Swap() = %d; Get() = %d, want 1", got, ref.Get())
		}
	})
}

func TestSafeRef_ConcurrentSwaps(t *testing.T) {
	t.Parallel()

	ref := NewRef(0)

	const writers = 100
	const readers = 20
	var wg sync.WaitGroup

	for range writers {
		wg.Go(func() {
			_, _ = ref.Swap(func(v int) (int, error) { return v + 1, nil })
		})
	}
	for range readers {
		wg.Go(func() {
			_ = ref.Get()
		})
	}

	wg.Wait()

	if got := ref.Get(); got != writers {
		t.Errorf("final value = %d, want %d", got, writers)
	}
}
