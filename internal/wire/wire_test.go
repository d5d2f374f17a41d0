package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func mustEncode(t *testing.T, items []Item) []byte {
	t.Helper()
	b, err := EncodeSnapshot(items)
	if err != nil {
		t.Fatalf("EncodeSnapshot error: %v", err)
	}
	return b
}

func mustDecode(t *testing.T, b []byte) []Item {
	t.Helper()
	it, err := DecodeSnapshot(b)
	if err != nil {
		t.Fatalf("DecodeSnapshot error: %v", err)
	}
	return it
}

func TestSnapshotRoundTrip(t *testing.T) {
	cases := [][]Item{
		nil, // n=0
		{{Key: "a", Payload: []byte("x")}},
		{
			{Key: "a", Payload: []byte("x")},
			{Key: "b", Payload: nil}, // empty payload
			{Key: "c", Payload: []byte{9, 8, 7}},
		},
		// duplicates allowed. decoder preserves both, in order
		{
			{Key: "dup", Payload: []byte("old")},
			{Key: "dup", Payload: []byte("new")},
		},
	}
	for _, items := range cases {
		got := mustDecode(t, mustEncode(t, items))
		if len(got) != len(items) {
			t.Fatalf("len mismatch: got %d want %d", len(got), len(items))
		}
		for i := range items {
			if got[i].Key != items[i].Key || !bytes.Equal(got[i].Payload, items[i].Payload) {
				t.Fatalf("item %d mismatch: got=%+v want=%+v", i, got[i], items[i])
			}
		}
	}
}

func TestSnapshotRejectsTrailingBytes(t *testing.T) {
	enc := mustEncode(t, []Item{{Key: "k", Payload: []byte("v")}})
	enc = append(enc, 0xBE, 0xEF)
	if _, err := DecodeSnapshot(enc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestSnapshotBogusCountAndTruncation(t *testing.T) {
	// Wrong n (very large) with no items -> must error, not panic or preallocate.
	var buf bytes.Buffer
	buf.Write(magic4[:])
	buf.WriteByte(version)
	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], ^uint32(0)) // n = 0xFFFFFFFF
	buf.Write(u4[:])
	if _, err := DecodeSnapshot(buf.Bytes()); err == nil {
		t.Fatalf("expected error on bogus n with insufficient bytes")
	}

	// Declare n=1 but provide no item body -> error
	buf.Reset()
	buf.Write(magic4[:])
	buf.WriteByte(version)
	binary.BigEndian.PutUint32(u4[:], 1)
	buf.Write(u4[:])
	if _, err := DecodeSnapshot(buf.Bytes()); err == nil {
		t.Fatalf("expected error on truncated item list")
	}

	// truncated tail of a valid frame
	enc := mustEncode(t, []Item{{Key: "k", Payload: []byte("xyz")}})
	if _, err := DecodeSnapshot(enc[:len(enc)-1]); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}
}

func TestSnapshotKeyLengthValidation(t *testing.T) {
	// empty key -> error
	if _, err := EncodeSnapshot([]Item{{Key: "", Payload: []byte("x")}}); err == nil {
		t.Fatalf("expected error on empty key")
	}
	// keys past the u16 range still frame and decode
	long := strings.Repeat("a", 0x10000+7)
	got := mustDecode(t, mustEncode(t, []Item{{Key: long, Payload: []byte("x")}}))
	if len(got) != 1 || got[0].Key != long {
		t.Fatalf("long key did not survive round trip")
	}
}

func TestSnapshotCorruptHeadersAndLengths(t *testing.T) {
	enc := mustEncode(t, []Item{{Key: "k", Payload: []byte("xyz")}})

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, err := DecodeSnapshot(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, err := DecodeSnapshot(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// header: 4 magic +1 ver +4 n = 9 bytes
	// item: 4 klen + klen + 4 vlen + payload
	klen := 1
	offset := 9 + 4 + klen // start of vlen
	badVlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(badVlen[offset:offset+4], uint32(len("xyz")+1))
	if _, err := DecodeSnapshot(badVlen); err == nil {
		t.Fatalf("expected error on vlen beyond buffer")
	}

	// klen=5 while only 1 byte of key is present
	badKlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(badKlen[9:13], 5)
	if _, err := DecodeSnapshot(badKlen); err == nil {
		t.Fatalf("expected error on klen beyond buffer")
	}

	// zero klen
	zeroKlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(zeroKlen[9:13], 0)
	if _, err := DecodeSnapshot(zeroKlen); err == nil {
		t.Fatalf("expected error on zero klen")
	}
}

func TestSnapshotZeroCopyPayloadSlices(t *testing.T) {
	enc := mustEncode(t, []Item{
		{Key: "a", Payload: []byte("X")},
		{Key: "b", Payload: []byte("Y")},
	})
	got := mustDecode(t, enc)
	if len(got) != 2 || len(got[0].Payload) != 1 {
		t.Fatalf("unexpected decoded items")
	}

	// mutate decoded payload. should mutate underlying enc bytes
	got[0].Payload[0] = 'Q'

	got2 := mustDecode(t, enc)
	if got2[0].Payload[0] != 'Q' {
		t.Fatalf("expected zero-copy payload subslices into enc buffer")
	}
}
