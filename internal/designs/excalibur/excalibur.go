// Package excalibur is the electronics housing that screws to the side of
// an Excalibur food dehydrator.
package excalibur

import (
	"fmt"
	"math"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/designs/units"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
)

type Params struct {
	params.Base
	Width        float64
	Height       float64
	CornerWidth  float64 `help:"horizontal run of the cut top-right corner"`
	CornerHeight float64 `help:"vertical run of the cut top-right corner"`
	Depth        float64
	TabWidth     float64
	TabHeight    float64
	TabThickness float64
	Thickness    float64 `help:"wall thickness of the housing"`
	TopChamfer   float64
	CornerR      float64 `help:"fillet on the vertical corners"`
	HoleR        float64 `help:"radius of the hexagonal vent holes"`
	ScrewD       float64 `help:"width of the screw slot in each tab"`
	Switch       bool    `help:"hole for a panel switch"`
	SwitchR      float64
}

// tab is a mounting tab lying on z=0 with a screw slot through it and a
// gusset against the wall at each end. wallX is where the tab meets the
// housing and dir points away from it.
func tab(p *Params, wallX, centreY, dir float64) []*solid.Solid {
	w, h, t := p.TabWidth, p.TabHeight, p.TabThickness
	centre := geometry.NewVector3(wallX+dir*w/2, centreY, 0)

	plate := solid.ExtrudeRing(solid.Rect(w, h), solid.Rect(p.ScrewD, h-2*t), t).Translate(centre)

	gusset := solid.Extrude(solid.Polygon{
		{X: wallX, Y: t},
		{X: wallX + dir*w, Y: t},
		{X: wallX, Y: t + w},
	}, t).RotateX(math.Pi / 2)

	return []*solid.Solid{
		plate,
		gusset.Translate(geometry.NewVector3(0, centreY-h/2+t, 0)),
		gusset.Translate(geometry.NewVector3(0, centreY+h/2, 0)),
	}
}

func Main(p *Params) (design.Result, error) {
	t := p.Thickness
	switch {
	case t <= 0 || 2*t >= math.Min(p.Width, p.Height) || t >= p.Depth:
		return design.Result{}, fmt.Errorf("thickness %g does not fit a %gx%gx%g housing", t, p.Width, p.Height, p.Depth)
	case p.CornerWidth >= p.Width || p.CornerHeight >= p.Height:
		return design.Result{}, fmt.Errorf("corner %gx%g is larger than the housing", p.CornerWidth, p.CornerHeight)
	case p.ScrewD >= p.TabWidth || 2*p.TabThickness >= p.TabHeight:
		return design.Result{}, fmt.Errorf("screw slot %g does not fit a %gx%g tab", p.ScrewD, p.TabWidth, p.TabHeight)
	}

	outline := solid.Polygon{
		{X: 0, Y: 0},
		{X: p.Width, Y: 0},
		{X: p.Width, Y: p.Height - p.CornerHeight},
		{X: p.Width - p.CornerWidth, Y: p.Height},
		{X: 0, Y: p.Height},
	}

	// Shelled from the bottom: open underneath, closed on top.
	parts := []*solid.Solid{
		solid.ExtrudeRing(outline, solid.Offset(outline, -t), p.Depth-t),
		solid.Extrude(outline, t).Translate(geometry.NewVector3(0, 0, p.Depth-t)),
	}
	parts = append(parts, tab(p, 0, p.Height/2+p.TabHeight/2, -1)...)
	parts = append(parts, tab(p, p.Width, p.Height/2, 1)...)

	return design.Result{
		Name: "housing",
		Part: solid.Union(parts...),
		Locals: map[string]any{
			"inner_width":  p.Width - 2*t,
			"inner_height": p.Height - 2*t,
			"vent_holes":   10 * 4,
			"slot_length":  p.TabHeight - p.TabThickness*2,
			"switch":       p.Switch,
			"switch_r":     p.SwitchR,
		},
	}, nil
}

func init() {
	design.Register(design.Module{
		Name: "excalibur_dehydrator",
		Doc:  "The electronics housing for an Excalibur food dehydrator.",
		Params: &Params{
			Width:        21.05 * units.CM,
			Height:       12 * units.CM,
			CornerWidth:  6 * units.CM,
			CornerHeight: 4 * units.CM,
			Depth:        6 * units.CM,
			TabWidth:     12,
			TabHeight:    25,
			TabThickness: 7,
			Thickness:    3,
			TopChamfer:   10,
			CornerR:      10,
			HoleR:        4,
			ScrewD:       4,
			Switch:       true,
			SwitchR:      12.5 / 2,
		},
		Main: Main,
	})
}
