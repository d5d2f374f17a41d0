package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/unkn0wn-root/flyweight"
)

func TestInterningEventsReachLogrus(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	in := flyweight.New(flyweight.Options{Logger: New(l)})
	s := flyweight.SharedState{Brand: "Tesla", Model: "Model 3", Color: "Black"}
	in.GetOrInsert(s)
	in.GetOrInsert(s)

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "cache miss, created new entry" || entries[1].Message != "cache hit, reused existing entry" {
		t.Fatalf("unexpected messages: %q, %q", entries[0].Message, entries[1].Message)
	}
	if entries[0].Level != logrus.InfoLevel {
		t.Fatalf("expected info level, got %v", entries[0].Level)
	}
	if entries[1].Data["key"] != s.Key() || entries[1].Data["component"] != "flyweight" {
		t.Fatalf("unexpected fields: %v", entries[1].Data)
	}
}
