package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/flyweight"
)

func TestSeedOverwriteWarns(t *testing.T) {
	var buf bytes.Buffer
	l := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelWarn}))

	s := flyweight.SharedState{Brand: "Toyota", Model: "Prius", Color: "White"}
	in := flyweight.New(flyweight.Options{Logger: Logger{L: l}, Seed: []flyweight.SharedState{s, s}})
	in.GetOrInsert(s) // info, filtered out

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one warn line, got:\n%s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `key="Toyota - Prius - White"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}
