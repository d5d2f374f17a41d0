package flyweight

import "slices"

// Variant fixes the shared state and engine of everything an Assembler builds.
type Variant struct {
	Brand  string
	Model  string
	Color  string
	Engine Engine
}

var (
	Combustion = Variant{Brand: "Toyota", Model: "Land Cruiser Prado", Color: "Red", Engine: EngineCombustion}
	Electric   = Variant{Brand: "Tesla", Model: "Model 3", Color: "Black", Engine: EngineElectric}
)

// Assembler accumulates UniqueState fields and builds Entities of one Variant.
// State carries over between Build calls until Reset.
// Not safe for concurrent use.
type Assembler struct {
	in      Interner
	variant Variant

	buffs        []string
	owner        string
	plates       string
	tripComputer string
	autopilot    bool
}

func NewAssembler(in Interner, v Variant) *Assembler {
	return &Assembler{in: in, variant: v}
}

func (a *Assembler) Variant() Variant { return a.variant }

func (a *Assembler) AddBuff(buff string) { a.buffs = append(a.buffs, buff) }

// SetOwner also derives plates: the decimal sum of owner's bytes.
func (a *Assembler) SetOwner(owner string) {
	a.owner = owner
	a.plates = platesFor(owner)
}

func (a *Assembler) SetTripComputer(tc string) { a.tripComputer = tc }

func (a *Assembler) ToggleAutopilot() { a.autopilot = !a.autopilot }

// Reset clears accumulated state. The variant is kept.
func (a *Assembler) Reset() {
	a.buffs = nil
	a.owner = ""
	a.plates = ""
	a.tripComputer = ""
	a.autopilot = false
}

// Build returns a new Entity. The Assembler keeps its state.
func (a *Assembler) Build() *Entity {
	v := a.variant
	e := NewEntity(a.in, v.Brand, v.Model, v.Color)
	e.unique = UniqueState{
		Owner:        a.owner,
		Plates:       a.plates,
		TripComputer: a.tripComputer,
		HasAutopilot: a.autopilot,
		Engine:       v.Engine,
		Buffs:        slices.Clone(a.buffs),
	}
	return e
}
