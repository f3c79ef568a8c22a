// Package cordclamp is a clamp that screws a cable against a surface.
package cordclamp

import (
	"fmt"
	"math"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
)

type Params struct {
	params.Base
	Thickness    float64 `help:"wall beside the cable slot"`
	MinThickness float64
	CableD       float64 `help:"cable diameter"`
	CutoutWidth  float64 `help:"width of the slot the cable is pushed through"`

	ScrewD          float64
	ScrewHeadD      float64
	ScrewHeadHeight float64
	ScrewSpacing    float64 `help:"clearance added to the screw hole"`
	ScrewNutD       float64
	ScrewNutSpacing float64 `help:"clearance added to the nut pocket"`
	ScrewNutHeight  float64

	Inset          bool    `help:"recess for a round pad on the front face"`
	InsetD         float64
	InsetThickness float64

	Segments int `help:"facets per full circle"`
}

// profile is the clamp seen from the front: a block with a round top and a
// cable hole opened to the bottom by the slot.
func profile(p *Params, side, bottom float64) solid.Polygon {
	cableR := p.CableD / 2
	a := p.CutoutWidth / 2
	h := math.Sqrt(cableR*cableR - a*a)
	beta := math.Atan2(h, a)

	out := solid.Polygon{
		{X: -side, Y: -bottom},
		{X: -a, Y: -bottom},
	}
	out = append(out, solid.Arc(geometry.Vector2{}, cableR, math.Pi+beta, -(math.Pi + 2*beta), p.Segments/2)...)
	out = append(out,
		geometry.NewVector2(a, -bottom),
		geometry.NewVector2(side, -bottom),
	)
	return append(out, solid.Arc(geometry.Vector2{}, side, 0, math.Pi, p.Segments/2)...)
}

func Main(p *Params) (design.Result, error) {
	totalWidth := p.Thickness*2 + p.CutoutWidth
	bottom := p.CableD/2 + p.ScrewHeadD + p.MinThickness*2
	side := totalWidth / 2
	totalThickness := p.ScrewHeadD + p.MinThickness*2

	if p.CutoutWidth <= 0 || p.CutoutWidth >= p.CableD {
		return design.Result{}, fmt.Errorf("cutout_width %g must be between 0 and cable_d %g", p.CutoutWidth, p.CableD)
	}
	if side <= p.CableD/2 {
		return design.Result{}, fmt.Errorf("thickness %g leaves no wall around a %g cable", p.Thickness, p.CableD)
	}

	// The clamp stands on its front face; the extrusion runs along Z.
	part := solid.Extrude(profile(p, side, bottom), totalThickness)

	return design.Result{
		Part: part,
		Locals: map[string]any{
			"total_width":     totalWidth,
			"bottom":          bottom,
			"total_thickness": totalThickness,
			"screw_hole_d":    p.ScrewD + p.ScrewSpacing,
			"screw_nut_d":     p.ScrewNutD + p.ScrewNutSpacing,
			"inset":           p.Inset,
			"inset_d":         p.InsetD,
		},
	}, nil
}

func init() {
	design.Register(design.Module{
		Name: "cord_clamp",
		Doc:  "A clamp that screws a cable against a surface.",
		Params: &Params{
			Thickness:       5,
			MinThickness:    1,
			CableD:          8,
			CutoutWidth:     6.5,
			ScrewD:          3,
			ScrewHeadD:      6,
			ScrewHeadHeight: 3,
			ScrewSpacing:    0.5,
			ScrewNutD:       6,
			ScrewNutSpacing: 0.5,
			ScrewNutHeight:  3,
			Inset:           true,
			InsetD:          10,
			InsetThickness:  1,
			Segments:        96,
		},
		Main: Main,
	})
}
