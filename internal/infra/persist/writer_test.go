package persist_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/trainquest/trainquest/internal/domain"
	"github.com/trainquest/trainquest/internal/infra/persist"
)

type memStore struct {
	mu    sync.Mutex
	saves []*domain.Snapshot
	err   error
	slow  time.Duration
}

func (m *memStore) SaveSnapshot(snap *domain.Snapshot) error {
	if m.slow > 0 {
		time.Sleep(m.slow)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, snap)
	return nil
}

func TestWriterPersistsSnapshot(t *testing.T) {
	store := &memStore{}
	w := persist.NewWriter(store)

	saved := make(chan *domain.Snapshot, 1)
	w.OnSave = func(s *domain.Snapshot) { saved <- s }

	snap := domain.NewSnapshot()
	w.Save(snap)

	select {
	case got := <-saved:
		if got != snap {
			t.Fatalf("saved wrong snapshot")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot never written")
	}
	w.Close()
}

func TestWriterCoalescesToLatest(t *testing.T) {
	store := &memStore{slow: 20 * time.Millisecond}
	w := persist.NewWriter(store)

	first := domain.NewSnapshot()
	last := domain.NewSnapshot()
	last.Treasure.Progress = 99

	// Queue a burst; intermediate snapshots may be superseded but the final
	// one must always land.
	w.Save(first)
	for i := 0; i < 10; i++ {
		mid := domain.NewSnapshot()
		mid.Treasure.Progress = i
		w.Save(mid)
	}
	w.Save(last)
	w.Close()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.saves) == 0 {
		t.Fatal("nothing written")
	}
	final := store.saves[len(store.saves)-1]
	if final.Treasure.Progress != 99 {
		t.Fatalf("final write progress = %d, want the last queued snapshot", final.Treasure.Progress)
	}
	if len(store.saves) > 12 {
		t.Fatalf("%d writes for 12 saves, coalescing did nothing", len(store.saves))
	}
}

func TestWriterCloseFlushesPending(t *testing.T) {
	store := &memStore{}
	w := persist.NewWriter(store)

	snap := domain.NewSnapshot()
	snap.Treasure.Progress = 7
	w.Save(snap)
	w.Close()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.saves) == 0 {
		t.Fatal("pending snapshot lost on close")
	}
	if got := store.saves[len(store.saves)-1]; got.Treasure.Progress != 7 {
		t.Fatalf("flushed wrong snapshot: %+v", got.Treasure)
	}
}

func TestWriterSwallowsErrors(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	w := persist.NewWriter(store)

	failed := make(chan error, 1)
	w.OnError = func(err error) { failed <- err }

	w.Save(domain.NewSnapshot())

	select {
	case err := <-failed:
		if err == nil {
			t.Fatal("nil error reported")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("error never surfaced")
	}

	// The writer keeps running after a failure.
	store.mu.Lock()
	store.err = nil
	store.mu.Unlock()

	saved := make(chan *domain.Snapshot, 1)
	w.OnSave = func(s *domain.Snapshot) { saved <- s }
	w.Save(domain.NewSnapshot())

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("writer dead after failed write")
	}
	w.Close()
}
