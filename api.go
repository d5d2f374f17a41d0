package flyweight

import (
	"iter"

	c "github.com/unkn0wn-root/flyweight/codec"
)

// Interner keeps exactly one stored SharedState per distinct key.
// Entries are never removed, so every Handle stays valid for the Interner's lifetime.
type Interner interface {
	// GetOrInsert returns the Handle of the stored slot for candidate's key,
	// storing a copy of candidate on first sight.
	GetOrInsert(candidate SharedState) Handle
	// Len is the number of distinct stored values.
	Len() int
	// All yields (key, value) pairs in insertion order. Each call starts over.
	All() iter.Seq2[string, SharedState]
	// Report logs and returns the current size and keys.
	Report() Report
	// Snapshot encodes every stored value. Use DecodeSnapshot + Options.Seed to restore.
	Snapshot(codec c.Codec[SharedState]) ([]byte, error)
}

// Options tune the Interner. The zero value is ready to use.
type Options struct {
	Namespace string // log field only; "" => "flyweight"
	Logger    Logger // if nil, NopLogger is used
	Hooks     Hooks  // if nil, NopHooks is used

	// Seed pre-populates the Interner in order.
	// Duplicate keys are last-write-wins: the later value replaces the earlier
	// in the same slot. This is logged but it is not an error; avoid it.
	Seed []SharedState
}

func New(opts Options) Interner {
	return newCache(opts)
}
