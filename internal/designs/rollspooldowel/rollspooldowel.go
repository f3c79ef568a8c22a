// Package rollspooldowel is a printable dowel for the roll/spool holder.
package rollspooldowel

import (
	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/designs/rollspool"
	"github.com/philipparndt/prints/internal/designs/units"
	"github.com/philipparndt/prints/pkg/solid"
)

// Params extend the holder's parameters so the dowel always matches it.
type Params struct {
	rollspool.Params
	DowelLength     float64 `help:"length including the part inside both brackets"`
	InsertEndOffset float64 `help:"distance of the screw from the bracket"`
	ScrewR          float64
}

func Main(p *Params) design.Result {
	length := p.DowelLength
	if p.CapDowel {
		// The capped bracket takes up min_thickness of the length.
		length -= p.MinThickness
	}

	return design.Result{
		Part: solid.Cylinder(p.DowelR, length, p.Segments),
		Locals: map[string]any{
			"length":   length,
			"screw_z":  length - p.BracketWidth - p.InsertEndOffset,
			"screw_r":  p.ScrewR,
			"dowel_r":  p.DowelR,
			"capped":   p.CapDowel,
			"segments": p.Segments,
		},
	}
}

func init() {
	design.Register(design.Module{
		Name: "roll_spool_dowel",
		Doc:  "A printable dowel for the roll/spool holder if you don't have one around.",
		Params: &Params{
			Params:          rollspool.Defaults(),
			DowelLength:     21.9 * units.CM,
			InsertEndOffset: 3,
			ScrewR:          3.0 / 2,
		},
		Main: Main,
	})
}
