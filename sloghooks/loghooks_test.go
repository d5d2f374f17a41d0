package sloghooks

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/flyweight"
)

func newBufLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestReuseSampling(t *testing.T) {
	l, buf := newBufLogger()
	in := flyweight.New(flyweight.Options{Hooks: New(l, Options{ReuseEvery: 3})})

	s := flyweight.SharedState{Brand: "Tesla", Model: "Model 3", Color: "Black"}
	for i := 0; i < 7; i++ {
		in.GetOrInsert(s) // 1 create + 6 reuses
	}

	out := buf.String()
	if n := strings.Count(out, "flyweight.entry_created"); n != 1 {
		t.Fatalf("created lines: %d\n%s", n, out)
	}
	if n := strings.Count(out, "flyweight.entry_reused"); n != 2 {
		t.Fatalf("reused lines (every 3rd of 6): %d\n%s", n, out)
	}
}

func TestRedactDigest(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{Redact: RedactDigest})
	h.SeedOverwritten("Toyota - Prius - White")

	out := buf.String()
	if strings.Contains(out, "Prius") {
		t.Fatalf("key leaked: %s", out)
	}
	if !strings.Contains(out, "key="+RedactDigest("Toyota - Prius - White")) {
		t.Fatalf("expected digest in output: %s", out)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	h := New(nil, Options{})
	h.EntryCreated("k", 1)
	h.EntryReused("k")
	h.SeedOverwritten("k")
}
