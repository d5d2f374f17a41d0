package flyweight

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/flyweight/codec"
	"github.com/unkn0wn-root/flyweight/internal/wire"
)

// ErrKeyMismatch means a snapshot entry decoded to a value whose Key differs
// from the key it was stored under.
var ErrKeyMismatch = errors.New("flyweight: snapshot key does not match value")

func (c *cache) Snapshot(cdc codec.Codec[SharedState]) ([]byte, error) {
	if cdc == nil {
		return nil, fmt.Errorf("flyweight: codec is required")
	}
	slots := c.snapshot()
	items := make([]wire.Item, 0, len(slots))
	for _, s := range slots {
		payload, err := cdc.Encode(s.value)
		if err != nil {
			return nil, fmt.Errorf("flyweight: encode %q: %w", s.key, err)
		}
		items = append(items, wire.Item{Key: s.key, Payload: payload})
	}
	b, err := wire.EncodeSnapshot(items)
	if err != nil {
		return nil, err
	}
	c.log.Debug("snapshot encoded", Fields{"ns": c.ns, "size": len(items), "bytes": len(b)})
	return b, nil
}

// DecodeSnapshot restores the values of a Snapshot in their original order,
// ready to be passed as Options.Seed.
func DecodeSnapshot(b []byte, cdc codec.Codec[SharedState]) ([]SharedState, error) {
	if cdc == nil {
		return nil, fmt.Errorf("flyweight: codec is required")
	}
	items, err := wire.DecodeSnapshot(b)
	if err != nil {
		return nil, &SnapshotError{Index: -1, Err: err}
	}
	out := make([]SharedState, 0, len(items))
	for i, it := range items {
		v, err := cdc.Decode(it.Payload)
		if err != nil {
			return nil, &SnapshotError{Index: i, Key: it.Key, Err: err}
		}
		if v.Key() != it.Key {
			return nil, &SnapshotError{Index: i, Key: it.Key, Err: ErrKeyMismatch}
		}
		out = append(out, v)
	}
	return out, nil
}
