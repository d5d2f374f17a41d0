package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("flyweight: corrupt snapshot")
	magic4     = [...]byte{'F', 'L', 'Y', 'W'}
)

const (
	hdrLen     = 4 + 1 + 4
	minItemLen = 4 + 1 + 4
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Snapshot:
//
//	magic(4) | ver(1) | n(u32 be)
//	keyLen(u32 be) | key(keyLen) | vlen(u32 be) | payload(vlen) * n
type Item struct {
	Key     string
	Payload []byte
}

// EncodeSnapshot frames items in order. Keys must be non-empty.
func EncodeSnapshot(items []Item) ([]byte, error) {
	total := hdrLen
	for _, it := range items {
		if l := len(it.Key); l == 0 || uint64(l) > math.MaxUint32 {
			return nil, fmt.Errorf("flyweight: invalid key length %d in snapshot", l)
		}
		total += 4 + len(it.Key) + 4 + len(it.Payload)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(items)))
	buf.Write(u4[:])

	for _, it := range items {
		binary.BigEndian.PutUint32(u4[:], uint32(len(it.Key)))
		buf.Write(u4[:])
		buf.WriteString(it.Key)

		binary.BigEndian.PutUint32(u4[:], uint32(len(it.Payload)))
		buf.Write(u4[:])
		buf.Write(it.Payload)
	}

	return buf.Bytes(), nil
}

// DecodeSnapshot parses a frame produced by EncodeSnapshot. Payloads are
// subslices of b (zero-copy). Trailing bytes are rejected.
func DecodeSnapshot(b []byte) ([]Item, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	off := 5

	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	// each item needs at least 4+1+4 bytes; don't trust n for preallocation
	if n < 0 || n > (len(b)-off)/minItemLen {
		return nil, ErrCorrupt
	}

	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		// keyLen
		if off+4 > len(b) {
			return nil, ErrCorrupt
		}
		klen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if klen <= 0 || klen > len(b)-off {
			return nil, ErrCorrupt
		}

		keyBytes := b[off : off+klen]
		off += klen

		// vlen
		if off+4 > len(b) {
			return nil, ErrCorrupt
		}
		vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if vlen < 0 || vlen > len(b)-off {
			return nil, ErrCorrupt
		}

		payload := b[off : off+vlen]
		off += vlen

		items = append(items, Item{
			Key:     string(keyBytes),
			Payload: payload,
		})
	}
	if off != len(b) {
		return nil, ErrCorrupt
	}

	return items, nil
}
