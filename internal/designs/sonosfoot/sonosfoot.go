// Package sonosfoot is a foot cup for the legs of a speaker stand.
package sonosfoot

import (
	"fmt"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
)

type Params struct {
	params.Base
	LegD         float64 `help:"diameter of the stand leg"`
	MinThickness float64 `help:"floor thickness below the leg"`
	BaseD        float64 `help:"diameter at the floor"`
	Height       float64
	Chamfer      float64 `help:"chamfer on the bottom edge"`
	Segments     int     `help:"facets per full circle"`
}

func Main(p *Params) (design.Result, error) {
	legR := p.LegD / 2
	upperR := legR + p.MinThickness/2
	lowerR := p.BaseD / 2
	if p.MinThickness >= p.Height {
		return design.Result{}, fmt.Errorf("min_thickness %g must be less than height %g", p.MinThickness, p.Height)
	}

	// The chamfer cuts back along the sloped side from the bottom corner.
	corner := geometry.NewVector2(lowerR, 0)
	side := geometry.NewVector2(upperR, p.Height).Sub(corner)
	side = side.Mul(1 / side.Length())
	chamferTop := corner.Add(side.Mul(p.Chamfer))

	profile := solid.Polygon{
		{X: 0, Y: 0},
		{X: lowerR - p.Chamfer, Y: 0},
		chamferTop,
		{X: upperR, Y: p.Height},
		{X: legR, Y: p.Height},
		{X: legR, Y: p.MinThickness},
		{X: 0, Y: p.MinThickness},
	}

	return design.Result{
		Part: solid.Revolve(profile, p.Segments),
		Locals: map[string]any{
			"leg_r":   legR,
			"upper_r": upperR,
			"lower_r": lowerR,
			"profile": profile,
		},
	}, nil
}

func init() {
	design.Register(design.Module{
		Name:   "sonos_stand_foot",
		Doc:    "A foot cup for the legs of a speaker stand.",
		Params: &Params{LegD: 18.5, MinThickness: 3, BaseD: 35, Height: 30, Chamfer: 2, Segments: 128},
		Main:   Main,
	})
}
