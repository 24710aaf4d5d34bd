package persist

import (
	"context"
	"sync"

	"github.com/Veraticus/monthly-budget/internal/common"
	"golang.org/x/sync/errgroup"
)

// Writer saves values in the background so callers never wait on storage.
//
// Submissions are coalesced per key: only the newest pending value of a key
// is written. A single goroutine applies batches in submission order, so an
// older value can never land after a newer one for the same key.
type Writer struct {
	kv        Setter
	cancel    context.CancelFunc
	group     *errgroup.Group
	cond      *sync.Cond
	wake      chan struct{}
	pending   map[string]string
	keys      []string
	submitted uint64
	written   uint64
	mu        sync.Mutex
	// writeMu orders background batches against synchronous writes made
	// after the writer has stopped.
	writeMu sync.Mutex
	stopped bool
	done    bool
}

// NewWriter starts a writer bound to ctx. Cancelling ctx stops the writer
// after it has written everything already submitted.
func NewWriter(ctx context.Context, kv Setter) *Writer {
	ctx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(ctx)

	w := &Writer{
		kv:      kv,
		cancel:  cancel,
		group:   group,
		wake:    make(chan struct{}, 1),
		pending: make(map[string]string),
	}
	w.cond = sync.NewCond(&w.mu)

	group.Go(func() error {
		w.run(groupCtx)
		return nil
	})

	return w
}

// Submit queues value to be written under key and returns immediately.
// Once the writer has stopped, Submit writes synchronously instead.
func (w *Writer) Submit(key string, value any) {
	encoded, err := Encode(value)
	if err != nil {
		common.LogWarn(err, "Failed to encode value", common.Fields{"key": key})
		return
	}

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		w.writeMu.Lock()
		w.write(context.Background(), key, encoded)
		w.writeMu.Unlock()
		return
	}
	if _, queued := w.pending[key]; !queued {
		w.keys = append(w.keys, key)
	}
	w.pending[key] = encoded
	w.submitted++
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush blocks until every value submitted before the call has been written
// (or its write has failed and been logged).
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	target := w.submitted
	for w.written < target && !w.done {
		w.cond.Wait()
	}
}

// Close flushes pending writes and stops the background goroutine.
func (w *Writer) Close() error {
	w.Flush()
	w.cancel()
	return w.group.Wait()
}

func (w *Writer) run(ctx context.Context) {
	// Writes outlive cancellation so the final drain still lands.
	writeCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-w.wake:
			w.drain(writeCtx, false)
		case <-ctx.Done():
			w.drain(writeCtx, true)
			return
		}
	}
}

// drain writes everything pending. A final drain also marks the writer
// stopped in the same critical section that takes the last batch, and holds
// writeMu until that batch is written.
func (w *Writer) drain(ctx context.Context, final bool) {
	w.mu.Lock()
	batch, keys, seq := w.pending, w.keys, w.submitted
	w.pending = make(map[string]string)
	w.keys = nil
	if final {
		w.stopped = true
	}
	w.writeMu.Lock()
	w.mu.Unlock()

	for _, key := range keys {
		w.write(ctx, key, batch[key])
	}
	w.writeMu.Unlock()

	w.mu.Lock()
	if seq > w.written {
		w.written = seq
	}
	if final {
		w.done = true
	}
	w.cond.Broadcast()
	w.mu.Unlock()
}

func (w *Writer) write(ctx context.Context, key, encoded string) {
	if err := w.kv.Set(ctx, key, encoded); err != nil {
		common.LogWarn(err, "Failed to save value", common.Fields{"key": key})
		return
	}
	common.LogDebug("Saved value", common.Fields{"key": key, "bytes": len(encoded)})
}
