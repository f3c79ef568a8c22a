// Package rollspool is a roll or spool holder that hooks into a louvred
// tool panel.
package rollspool

import (
	"math"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/designs/units"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
)

// LouvreParams describe one slot of the panel.
type LouvreParams struct {
	params.Base
	SlotWidth      float64
	SlotHeight     float64 `help:"height of the hook that enters the slot"`
	SlotDepth      float64 `help:"depth of the hook behind the panel"`
	TotalHeight    float64
	MetalThickness float64 `help:"panel sheet thickness"`
	MinThickness   float64
}

// Params are shared with the matching dowel.
type Params struct {
	params.Base
	Louvre       LouvreParams
	DowelR       float64 `help:"radius of the dowel the roll sits on"`
	DowelSpacing float64 `help:"clearance around the dowel"`
	CapDowel     bool    `help:"close the dowel hole on the outer side"`
	Mirror       bool    `help:"build the left-hand holder"`
	SpoolR       float64 `help:"largest roll radius"`
	SpoolOffset  float64 `help:"clearance between roll and panel"`
	MinThickness float64
	BracketWidth float64
	Segments     int `help:"facets per full circle"`
}

// Defaults returns the holder's default parameters.
func Defaults() Params {
	return Params{
		Louvre: LouvreParams{
			SlotWidth:      5.3 * units.CM,
			SlotHeight:     12,
			SlotDepth:      4,
			TotalHeight:    2.5 * units.CM,
			MetalThickness: 1.5,
			MinThickness:   3,
		},
		DowelR:       16.0 / 2,
		DowelSpacing: 0.3,
		SpoolR:       5 * units.CM,
		SpoolOffset:  1 * units.CM,
		MinThickness: 2,
		BracketWidth: 2 * units.CM,
		Segments:     96,
	}
}

// Backing is the block that hooks into a louvre slot. The panel side is
// y=0 and the block grows towards +y, standing on z=0.
func Backing(l LouvreParams) *solid.Solid {
	width := l.SlotWidth + l.MinThickness*2 + l.SlotDepth*2
	depth := l.SlotDepth + l.MetalThickness + l.MinThickness
	sd, m := l.SlotDepth, l.MetalThickness
	hookZ := l.TotalHeight - l.SlotHeight

	parts := []*solid.Solid{
		solid.Box(width, l.MinThickness, l.TotalHeight).
			Translate(geometry.NewVector3(0, depth-l.MinThickness/2, 0)),
		solid.Box(width, sd, l.SlotHeight).
			Translate(geometry.NewVector3(0, sd/2, hookZ)),
	}

	pillar := (width - l.SlotWidth) / 2
	for _, sign := range []float64{-1, 1} {
		parts = append(parts, solid.Box(pillar, m, l.SlotHeight).
			Translate(geometry.NewVector3(sign*(l.SlotWidth/2+pillar/2), sd+m/2, hookZ)))
	}

	// Below the hook a 45° trapezoid is cleared for the louvre lip, leaving
	// a wedge on each side.
	if hookZ > 1e-9 {
		wedge := solid.Extrude(solid.Polygon{
			{X: l.SlotWidth/2 + sd + m, Y: 0},
			{X: width / 2, Y: 0},
			{X: width / 2, Y: sd + m},
			{X: l.SlotWidth / 2, Y: sd + m},
		}, hookZ)
		parts = append(parts, wedge, wedge.MirrorX())
	}
	return solid.Union(parts...)
}

func Main(p *Params) design.Result {
	l := p.Louvre
	backing := Backing(l)
	backingWidth := l.SlotWidth + l.MinThickness*2 + l.SlotDepth*2
	backingDepth := l.SlotDepth + l.MetalThickness + l.MinThickness

	dowelTotalR := p.DowelR + p.DowelSpacing
	length := p.SpoolR + p.SpoolOffset
	endR := dowelTotalR + p.MinThickness

	// The arm is sketched with u along its length and v up, then extruded
	// by the bracket width along w.
	outline := solid.Polygon{{X: 0, Y: 0}}
	outline = append(outline, solid.Arc(geometry.NewVector2(length-endR, endR), endR, -math.Pi/2, math.Pi, p.Segments/2)...)
	outline = append(outline, geometry.NewVector2(0, l.TotalHeight))
	outline = outline.Compact().CCW()

	dowelCenter := geometry.NewVector2(length-endR, endR)
	arm := []*solid.Solid{
		solid.ExtrudeRing(outline, solid.Offset(outline, -p.MinThickness), p.BracketWidth),
		solid.Tube(endR, dowelTotalR, p.BracketWidth, p.Segments).Translate(dowelCenter.Lift(0)),
	}
	if p.CapDowel {
		arm = append(arm, solid.Cylinder(dowelTotalR, p.MinThickness, p.Segments).Translate(dowelCenter.Lift(0)))
	}

	// (u, v, w) -> (w, u, v) is a rotation, so the shells keep their
	// orientation.
	placed := solid.Union(arm...).Transform(func(v geometry.Vector3) geometry.Vector3 {
		return geometry.NewVector3(v.Z-backingWidth/2, backingDepth+v.X, v.Y)
	})

	part := solid.Union(backing, placed)
	if p.Mirror {
		part = part.MirrorX()
	}

	return design.Result{
		Part: part,
		Locals: map[string]any{
			"backing_width": backingWidth,
			"backing_depth": backingDepth,
			"arm_length":    length,
			"dowel_center":  dowelCenter,
			"dowel_total_r": dowelTotalR,
			"outline":       outline,
		},
	}
}

func init() {
	defaults := Defaults()
	design.Register(design.Module{
		Name:   "roll_spool_holder",
		Doc:    "A roll/spool holder for mounting to a louvred tool panel.",
		Params: &defaults,
		Main:   Main,
	})
}
