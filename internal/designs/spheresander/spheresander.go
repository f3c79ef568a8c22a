// Package spheresander is a cradle that holds a sanding sphere in a
// hemispherical pocket.
package spheresander

import (
	"fmt"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/designs/units"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
)

type Params struct {
	params.Base
	SphereR   float64 `help:"radius of the sanding sphere"`
	Thickness float64 `help:"material around and below the pocket"`
	Chamfer   float64 `help:"chamfer on the bottom edges"`
	Segments  int     `help:"facets per full circle"`
}

func Main(p *Params) (design.Result, error) {
	if p.SphereR <= 0 || p.Thickness <= 0 {
		return design.Result{}, fmt.Errorf("sphere_r %g and thickness %g must be positive", p.SphereR, p.Thickness)
	}

	boxWidth := p.SphereR*2 + p.Thickness*2
	boxHeight := p.SphereR + p.Thickness
	cornerR := p.SphereR / 2

	outline := solid.RoundedRect(boxWidth, boxWidth, cornerR, p.Segments/4)
	part := solid.ExtrudeDimple(outline, geometry.Vector2{}, p.SphereR, boxHeight, p.Segments)

	return design.Result{
		Part: part,
		Locals: map[string]any{
			"box_width":  boxWidth,
			"box_height": boxHeight,
			"corner_r":   cornerR,
			"chamfer":    p.Chamfer,
		},
	}, nil
}

func init() {
	design.Register(design.Module{
		Name:   "sphere_sander",
		Doc:    "A cradle holding a sanding sphere in a hemispherical pocket.",
		Params: &Params{SphereR: 2.25 / 2 * units.IN, Thickness: 2, Chamfer: 4, Segments: 128},
		Main:   Main,
	})
}
