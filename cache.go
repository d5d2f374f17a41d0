package flyweight

import (
	"iter"
	"sync"
)

const defaultNamespace = "flyweight"

type slot struct {
	key   string
	value SharedState
}

type cache struct {
	ns    string
	log   Logger
	hooks Hooks

	mu    sync.RWMutex
	index map[string]int // key -> position in slots
	slots []slot         // append-only
}

func newCache(opts Options) *cache {
	c := &cache{
		ns:    coalesce(opts.Namespace, defaultNamespace),
		index: make(map[string]int, len(opts.Seed)),
		slots: make([]slot, 0, len(opts.Seed)),
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	for _, s := range opts.Seed {
		c.seed(s)
	}
	if len(opts.Seed) > 0 {
		c.log.Debug("seeded cache", Fields{"ns": c.ns, "seed": len(opts.Seed), "size": len(c.slots)})
	}
	return c
}

func (c *cache) seed(s SharedState) {
	k := s.Key()
	if i, ok := c.index[k]; ok {
		// last write wins, same slot
		c.slots[i].value = s
		c.log.Warn("duplicate seed key, overwriting", Fields{"ns": c.ns, "key": k})
		c.hooks.SeedOverwritten(k)
		return
	}
	c.index[k] = len(c.slots)
	c.slots = append(c.slots, slot{key: k, value: s})
}

func (c *cache) GetOrInsert(candidate SharedState) Handle {
	k := candidate.Key()

	c.mu.RLock()
	i, ok := c.index[k]
	c.mu.RUnlock()
	if ok {
		c.reused(k)
		return Handle{c: c, slot: i}
	}

	c.mu.Lock()
	// recheck: another caller may have inserted between the locks
	if i, ok = c.index[k]; ok {
		c.mu.Unlock()
		c.reused(k)
		return Handle{c: c, slot: i}
	}
	i = len(c.slots)
	c.index[k] = i
	c.slots = append(c.slots, slot{key: k, value: candidate})
	size := len(c.slots)
	c.mu.Unlock()

	c.log.Info("cache miss, created new entry", Fields{"ns": c.ns, "key": k, "size": size})
	c.hooks.EntryCreated(k, size)
	return Handle{c: c, slot: i}
}

func (c *cache) reused(k string) {
	c.log.Info("cache hit, reused existing entry", Fields{"ns": c.ns, "key": k})
	c.hooks.EntryReused(k)
}

func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

func (c *cache) All() iter.Seq2[string, SharedState] {
	return func(yield func(string, SharedState) bool) {
		for _, s := range c.snapshot() {
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// snapshot copies the slot list so iteration does not hold the lock.
func (c *cache) snapshot() []slot {
	c.mu.RLock()
	out := make([]slot, len(c.slots))
	copy(out, c.slots)
	c.mu.RUnlock()
	return out
}

func (c *cache) value(i int) SharedState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slots[i].value
}

// Handle refers to one stored slot of an Interner. Two Handles are == iff they
// refer to the same slot of the same Interner. The zero Handle refers to nothing.
type Handle struct {
	c    *cache
	slot int
}

// Valid reports whether h was returned by an Interner.
func (h Handle) Valid() bool { return h.c != nil }

// Value returns a copy of the stored SharedState, or the zero value for an invalid Handle.
func (h Handle) Value() SharedState {
	if h.c == nil {
		return SharedState{}
	}
	return h.c.value(h.slot)
}

// Key is Value().Key() for a valid Handle and "" otherwise.
func (h Handle) Key() string {
	if h.c == nil {
		return ""
	}
	return h.Value().Key()
}
