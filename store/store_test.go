// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	_ "modernc.org/sqlite"
)

var dbCounter atomic.Int64

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", dbCounter.Add(1))
	s, err := Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestInitIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
}

func TestLoadEmptyCollection(t *testing.T) {
	s := openTestStore(t)

	items, err := Load[record](s, CollectionUsers)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}

	// Even an unseeded collection reads as empty
	items, err = Load[record](s, "unknown")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %d items", len(items))
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	s := openTestStore(t)

	err := Update(s, CollectionUsers, func(items []record) ([]record, error) {
		return append(items, record{ID: 1, Name: "alice"}), nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	items, err := Load[record](s, CollectionUsers)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 1 || items[0].Name != "alice" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestUpdateErrorAborts(t *testing.T) {
	s := openTestStore(t)

	if err := Update(s, CollectionUsers, func(items []record) ([]record, error) {
		return append(items, record{ID: 1, Name: "alice"}), nil
	}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := Update(s, CollectionUsers, func(items []record) ([]record, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want the callback error", err)
	}

	// Aborted update must not touch the stored document
	items, err := Load[record](s, CollectionUsers)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Errorf("aborted update changed collection: %+v", items)
	}
}

func TestUpdateUnseededCollection(t *testing.T) {
	s := openTestStore(t)

	err := Update(s, "sidecar", func(items []record) ([]record, error) {
		return append(items, record{ID: 7, Name: "first"}), nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	items, err := Load[record](s, "sidecar")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != 7 {
		t.Errorf("unexpected items: %+v", items)
	}
}

// TestConcurrentUpdates verifies that parallel read-modify-write cycles on
// the same collection never drop each other's writes.
func TestConcurrentUpdates(t *testing.T) {
	s := openTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- Update(s, CollectionUsers, func(items []record) ([]record, error) {
				return append(items, record{ID: int64(n), Name: fmt.Sprintf("user%d", n)}), nil
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Update() error = %v", err)
		}
	}

	items, err := Load[record](s, CollectionUsers)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != writers {
		t.Fatalf("lost update: %d items stored, want %d", len(items), writers)
	}
	seen := make(map[int64]bool)
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate item %d", it.ID)
		}
		seen[it.ID] = true
	}
}
