// Package codec converts values to and from bytes for flyweight snapshots.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// ByName returns the codec registered under name: "json", "cbor" or "msgpack".
func ByName[V any](name string) (Codec[V], bool) {
	switch name {
	case "json", "":
		return JSON[V]{}, true
	case "cbor":
		return MustCBOR[V](true), true
	case "msgpack":
		return Msgpack[V]{}, true
	default:
		return nil, false
	}
}
