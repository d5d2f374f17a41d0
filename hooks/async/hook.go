// Package asynchook moves flyweight.Hooks calls off the GetOrInsert path.
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{ReuseEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	in := flyweight.New(flyweight.Options{Hooks: hooks})
//
// Events are dropped when the queue is full. Order is preserved only with one worker.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/flyweight"
)

type Hooks struct {
	inner   flyweight.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // guards closed against concurrent sends
	closed  bool
	dropped atomic.Uint64
}

var _ flyweight.Hooks = (*Hooks)(nil)

func New(inner flyweight.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Later events are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped is the number of events discarded because the queue was full or closed.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) EntryCreated(k string, n int) { h.try(func() { h.inner.EntryCreated(k, n) }) }
func (h *Hooks) EntryReused(k string)         { h.try(func() { h.inner.EntryReused(k) }) }
func (h *Hooks) SeedOverwritten(k string)     { h.try(func() { h.inner.SeedOverwritten(k) }) }
