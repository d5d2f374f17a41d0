// Package sloghooks implements flyweight.Hooks on top of log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/flyweight"
	"github.com/unkn0wn-root/flyweight/internal/util"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	ReuseEvery  uint64
	CreateEvery uint64
	// Optional key redactor. nil => keys are logged as is.
	// Use RedactDigest to log a SHA-256 prefix instead.
	Redact func(string) string
}

// RedactDigest replaces a key with a short SHA-256 prefix.
func RedactDigest(k string) string { return util.Digest(k) }

type Hooks struct {
	l    *slog.Logger
	opts Options

	reuseCtr  atomic.Uint64
	createCtr atomic.Uint64
}

var _ flyweight.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	return k
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) EntryCreated(key string, size int) {
	if h.l == nil || !sample(h.opts.CreateEvery, &h.createCtr) {
		return
	}
	h.l.Info("flyweight.entry_created",
		"key", h.redact(key),
		"size", size)
}

func (h *Hooks) EntryReused(key string) {
	if h.l == nil || !sample(h.opts.ReuseEvery, &h.reuseCtr) {
		return
	}
	h.l.Debug("flyweight.entry_reused",
		"key", h.redact(key))
}

func (h *Hooks) SeedOverwritten(key string) {
	if h.l == nil {
		return
	}
	h.l.Warn("flyweight.seed_overwritten",
		"key", h.redact(key),
		"msg", "duplicate seed key; later value replaced the earlier one")
}
