package flyweight

import (
	"slices"
	"strconv"
)

// keySep joins SharedState fields into a cache key.
const keySep = " - "

// SharedState is the deduplicated part of an entity. Treat it as immutable:
// the Interner hands out copies and never mutates a stored slot.
type SharedState struct {
	Brand string `json:"brand" cbor:"brand" msgpack:"brand"`
	Model string `json:"model" cbor:"model" msgpack:"model"`
	Color string `json:"color" cbor:"color" msgpack:"color"`
}

// Key returns the cache key. Exact match, no normalization.
// Fields containing the separator can collide; callers own that.
func (s SharedState) Key() string {
	return s.Brand + keySep + s.Model + keySep + s.Color
}

func (s SharedState) String() string {
	return "[ " + s.Brand + " , " + s.Model + " , " + s.Color + " ]"
}

type Engine uint8

const (
	EngineElectric Engine = iota
	EngineCombustion
)

func (e Engine) String() string {
	switch e {
	case EngineElectric:
		return "electric"
	case EngineCombustion:
		return "combustion"
	default:
		return "engine(" + strconv.Itoa(int(e)) + ")"
	}
}

// UniqueState is per-entity data. It is never shared or deduplicated.
type UniqueState struct {
	Owner        string
	Plates       string
	TripComputer string
	HasAutopilot bool
	Engine       Engine
	Buffs        []string
}

func (u UniqueState) clone() UniqueState {
	u.Buffs = slices.Clone(u.Buffs)
	return u
}

// platesFor derives plates from owner: decimal sum of the owner's bytes.
func platesFor(owner string) string {
	sum := 0
	for i := 0; i < len(owner); i++ {
		sum += int(owner[i])
	}
	return strconv.Itoa(sum)
}
