// Package sonosstand is a tray that joins the four legs of a speaker
// stand, each leg sitting in a sleeve at one corner.
package sonosstand

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
	LegD      float64 `help:"diameter of the stand legs"`
	ScrewD    float64 `help:"diameter of the countersunk screws in the sides"`
	Height    int
	Width     int
	Depth     int
	Thickness int
	Fill      bool `help:"close the floor under each leg"`
	Segments  int  `help:"facets per full circle"`
}

func Main(p *Params) (design.Result, error) {
	t := float64(p.Thickness)
	height := float64(p.Height)
	legR := p.LegD / 2
	outerR := legR + t

	// Leg centres sit on a width×depth grid.
	width := float64(p.Width) - t*2 - p.LegD
	depth := float64(p.Depth) - t*2 - p.LegD
	if width <= 2*outerR || depth <= 2*outerR {
		return design.Result{}, fmt.Errorf("%dx%d is too small for legs of %g", p.Width, p.Depth, p.LegD)
	}
	if t <= 0 || height <= t {
		return design.Result{}, fmt.Errorf("thickness %d must be positive and below height %d", p.Thickness, p.Height)
	}

	corner := max(p.Segments/4, 1)
	outline := solid.RoundedRect(width+2*outerR, depth+2*outerR, outerR, corner)
	wallTop := height - t

	parts := []*solid.Solid{
		solid.ExtrudeRing(outline, solid.RoundedRect(width+2*legR, depth+2*legR, legR, corner), wallTop).
			Translate(geometry.NewVector3(0, 0, t)),
	}
	parts = append(parts, floor(p, outline, width, depth, legR, t)...)

	// The outer quarter of every sleeve is the tray's rounded corner, so
	// only the inner three quarters are added.
	sleeve := solid.Polygon{{X: legR, Y: 0}, {X: outerR, Y: 0}, {X: outerR, Y: wallTop}, {X: legR, Y: wallTop}}
	for i, c := range legCentres(width, depth) {
		outward := math.Pi/4 + float64(i)*math.Pi/2
		arc := solid.RevolveArc(sleeve, outward+math.Pi/4, 3*math.Pi/2, p.Segments)
		parts = append(parts, arc.Translate(c.Lift(t)))
	}

	return design.Result{
		Part: solid.Union(parts...),
		Locals: map[string]any{
			"grid_width": width,
			"grid_depth": depth,
			"screw_d":    p.ScrewD,
		},
	}, nil
}

// legCentres lists the corners counter-clockwise from +X+Y.
func legCentres(width, depth float64) []geometry.Vector2 {
	return []geometry.Vector2{
		{X: width / 2, Y: depth / 2},
		{X: -width / 2, Y: depth / 2},
		{X: -width / 2, Y: -depth / 2},
		{X: width / 2, Y: -depth / 2},
	}
}

// floor is one plate, or four quarter plates each pierced by a leg hole.
func floor(p *Params, outline solid.Polygon, width, depth, legR, t float64) []*solid.Solid {
	if p.Fill {
		return []*solid.Solid{solid.Extrude(outline, t)}
	}

	var out []*solid.Solid
	for _, c := range legCentres(width, depth) {
		sx, sy := math.Copysign(1, c.X), math.Copysign(1, c.Y)
		var quarter solid.Polygon
		for _, v := range outline {
			if v.X*sx >= 0 && v.Y*sy >= 0 {
				quarter = append(quarter, v)
			}
		}
		quarter = append(quarter,
			geometry.NewVector2(0, 0),
			geometry.NewVector2(0, sy*(depth/2+legR+t)),
			geometry.NewVector2(sx*(width/2+legR+t), 0),
		)
		out = append(out, solid.ExtrudeHole(solid.Hull(quarter), c, legR, t, p.Segments))
	}
	return out
}

func init() {
	design.Register(design.Module{
		Name: "sonos_stand",
		Doc:  "A tray joining the four legs of a speaker stand.",
		Params: &Params{
			LegD:      18.5,
			ScrewD:    4,
			Height:    25,
			Width:     120,
			Depth:     120,
			Thickness: 4,
			Fill:      true,
			Segments:  96,
		},
		Main: Main,
	})
}
