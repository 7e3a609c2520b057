// Package persist implements the asynchronous write-behind snapshot writer.
// The progression core replaces its in-memory snapshot synchronously and
// hands the new value here; the actual disk write happens on a background
// goroutine and is never awaited by callers. A failed write is logged and
// counted — the in-memory state stays authoritative for the session.
package persist

import (
	"log"
	"sync"

	"github.com/trainquest/trainquest/internal/domain"
	"github.com/trainquest/trainquest/internal/infra/metrics"
)

// Store is the destination of snapshot writes.
type Store interface {
	SaveSnapshot(*domain.Snapshot) error
}

// Writer coalesces snapshot writes: only the latest pending snapshot is
// written, intermediate ones are superseded. Save never blocks.
type Writer struct {
	store Store

	mu        sync.Mutex
	pending   *domain.Snapshot
	kick      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	closed    bool

	// OnSave and OnError are test hooks, invoked after each write attempt.
	OnSave  func(*domain.Snapshot)
	OnError func(error)
}

// NewWriter creates a writer and starts its background loop.
func NewWriter(store Store) *Writer {
	w := &Writer{
		store: store,
		kick:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// Save queues the snapshot for write-behind persistence. Latest-wins: a
// snapshot queued before the previous one was written supersedes it.
func (w *Writer) Save(snap *domain.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = snap

	select {
	case w.kick <- struct{}{}:
	default: // A wakeup is already queued
	}
}

// Close flushes any pending snapshot and stops the background loop.
// Safe to call more than once.
func (w *Writer) Close() {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.kick)
	})
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)

	for range w.kick {
		w.flush()
	}
	w.flush() // Final flush on close
}

func (w *Writer) flush() {
	w.mu.Lock()
	snap := w.pending
	w.pending = nil
	w.mu.Unlock()

	if snap == nil {
		return
	}

	if err := w.store.SaveSnapshot(snap); err != nil {
		metrics.PersistFailures.Inc()
		log.Printf("[persist] snapshot write failed: %v", err)
		if w.OnError != nil {
			w.OnError(err)
		}
		return
	}

	metrics.PersistWrites.Inc()
	if w.OnSave != nil {
		w.OnSave(snap)
	}
}
