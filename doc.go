// Package flyweight implements an interning cache for immutable shared attribute
// bundles. Many entities carry their own per-instance state plus a reference to
// one canonical copy of a shared state; the cache guarantees at most one stored
// copy per distinct shared state.
//
// Components:
//   - SharedState: immutable brand/model/color bundle, keyed by Key().
//   - UniqueState: per-entity data, never deduplicated.
//   - Interner: key -> single stored slot. GetOrInsert returns a Handle.
//   - Entity: owns a UniqueState, borrows a Handle.
//   - Assembler: accumulates UniqueState fields and builds Entities for a Variant.
//
// Keys:
//
//	<brand> - <model> - <color>
//
// Entries are never evicted. Handles stay valid for the lifetime of the Interner.
//
// Usage:
//
//	in := flyweight.New(flyweight.Options{Logger: zaplog.ZapLogger{L: l}})
//	b := flyweight.NewAssembler(in, flyweight.Combustion)
//	b.SetOwner("Person 0")
//	car := b.Build()
//	fmt.Println(car, in.Len())
package flyweight
