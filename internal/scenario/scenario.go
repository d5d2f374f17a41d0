// Package scenario drives the reference build sequence against an Interner.
package scenario

import (
	"fmt"
	"io"

	"github.com/unkn0wn-root/flyweight"
)

// Batch is the number of entities built per variant.
const Batch = 6

// Run builds Batch combustion entities, then Batch electric entities, then one
// ad-hoc Toyota Prius, writing each entity and a cache report after every stage.
//
// Assemblers are never Reset between builds, so buffs accumulate within a batch.
func Run(w io.Writer, in flyweight.Interner) error {
	p := &printer{w: w}

	batch(p, flyweight.NewAssembler(in, flyweight.Combustion), "CarPlay")
	p.report(in)

	batch(p, flyweight.NewAssembler(in, flyweight.Electric), "Tesla")
	p.report(in)

	p.line(flyweight.NewEntity(in, "Toyota", "Prius", "White"))
	p.report(in)

	return p.err
}

func batch(p *printer, a *flyweight.Assembler, tripComputer string) {
	for i := 0; i < Batch; i++ {
		a.AddBuff(fmt.Sprintf("Buff %d", i))
		a.ToggleAutopilot()
		a.SetOwner(fmt.Sprintf("Person %d", i))
		a.SetTripComputer(tripComputer)
		p.line(a.Build())
	}
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(v any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, v)
}

func (p *printer) report(in flyweight.Interner) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "\n%s", in.Report())
}
