package flyweight

import (
	"fmt"
)

// SnapshotError reports a snapshot entry that could not be decoded.
// Index is -1 when the frame itself is unreadable.
type SnapshotError struct {
	Index int
	Key   string
	Err   error
}

func (e *SnapshotError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("snapshot: bad frame: %v", e.Err)
	case e.Key != "":
		return fmt.Sprintf("snapshot: entry %d (%q): %v", e.Index, e.Key, e.Err)
	default:
		return fmt.Sprintf("snapshot: entry %d: %v", e.Index, e.Err)
	}
}

func (e *SnapshotError) Unwrap() error { return e.Err }
