// Package ring is a plain round ring.
package ring

import (
	"fmt"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/designs/units"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/solid"
)

type Params struct {
	params.Base
	OuterR    float64 `help:"outer radius"`
	Thickness float64 `help:"radial wall thickness"`
	Height    float64
	Segments  int `help:"facets per full circle"`
}

func Main(p *Params) (design.Result, error) {
	if p.Height <= 0 {
		return design.Result{}, fmt.Errorf("height %g must be positive", p.Height)
	}
	innerR := p.OuterR - p.Thickness
	if innerR <= 0 {
		return design.Result{}, fmt.Errorf("thickness %g leaves no hole in a ring of radius %g", p.Thickness, p.OuterR)
	}

	part := solid.Tube(p.OuterR, innerR, p.Height, p.Segments)
	return design.Result{
		Part: part,
		Locals: map[string]any{
			"outer_r": p.OuterR,
			"inner_r": innerR,
			"height":  p.Height,
		},
	}, nil
}

func init() {
	design.Register(design.Module{
		Name:   "ring",
		Doc:    "A plain round ring.",
		Params: &Params{OuterR: 3 * units.CM, Thickness: 2.7, Height: 2.5, Segments: 192},
		Main:   Main,
	})
}
