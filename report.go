package flyweight

import (
	"strconv"
	"strings"
)

// Report is a point-in-time listing of an Interner.
type Report struct {
	Size int
	Keys []string // insertion order
}

// String renders "cache size: N" followed by one key per line.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("cache size: ")
	b.WriteString(strconv.Itoa(r.Size))
	b.WriteByte('\n')
	for _, k := range r.Keys {
		b.WriteString(k)
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *cache) Report() Report {
	slots := c.snapshot()
	r := Report{Size: len(slots), Keys: make([]string, len(slots))}
	for i, s := range slots {
		r.Keys[i] = s.key
	}
	c.log.Info("cache report", Fields{"ns": c.ns, "size": r.Size, "keys": r.Keys})
	return r
}
