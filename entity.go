package flyweight

// Entity combines its own UniqueState with a Handle to an interned SharedState.
// An Entity must not outlive the Interner that produced its Handle.
type Entity struct {
	unique UniqueState
	shared Handle
}

// NewEntity interns {brand, model, color} in in and returns an Entity with a
// zero UniqueState.
func NewEntity(in Interner, brand, model, color string) *Entity {
	return &Entity{
		shared: in.GetOrInsert(SharedState{Brand: brand, Model: model, Color: color}),
	}
}

// AssignShared gives e the shared state of src. Only the Handle is copied:
// e's UniqueState stays as is and no stored slot is modified.
func (e *Entity) AssignShared(src *Entity) {
	if e == src {
		return
	}
	e.shared = src.shared
}

func (e *Entity) Shared() SharedState { return e.shared.Value() }
func (e *Entity) Handle() Handle      { return e.shared }

// Unique returns a copy; mutating it does not affect e.
func (e *Entity) Unique() UniqueState { return e.unique.clone() }

// String renders "<owner> <plates> <brand> <model>".
func (e *Entity) String() string {
	s := e.shared.Value()
	return e.unique.Owner + " " + e.unique.Plates + " " + s.Brand + " " + s.Model
}
