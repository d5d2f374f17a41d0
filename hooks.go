package flyweight

// Hooks lightweight callbacks for interning events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on every GetOrInsert.
type Hooks interface {
	// GetOrInsert missed and stored a new slot. size is the slot count after insert.
	EntryCreated(key string, size int)

	// GetOrInsert hit an existing slot. The candidate was discarded.
	EntryReused(key string)

	// A later seed entry replaced an earlier one with the same key.
	SeedOverwritten(key string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EntryCreated(string, int) {}
func (NopHooks) EntryReused(string)       {}
func (NopHooks) SeedOverwritten(string)   {}
