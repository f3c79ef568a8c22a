// Package telescopingbox is a two-part box whose top slides over the bottom.
package telescopingbox

import (
	"math"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
)

const doc = `A telescoping box, defined by its interior dimensions when closed.

The top is sized to fully enclose the bottom when closed; top_bottom_offset
shortens the top and bottom_top_offset shortens the bottom. The two halves
are separated by a gap of fit millimetres. Corner radii may be 0. The top
has a finger hole of radius cutout_r through its long walls.`

// Params are the interior dimensions of the closed box.
type Params struct {
	params.Base
	InteriorWidth     float64
	InteriorDepth     float64
	InteriorHeight    float64
	InteriorFilletR   float64 `help:"interior floor fillet radius; shortens the bottom when the top has one too"`
	TopInteriorFillet bool    `help:"give the top an interior fillet as well"`
	CornerFilletR     float64 `help:"vertical corner radius of the bottom"`
	Thickness         float64 `help:"wall and floor thickness"`
	Fit               float64 `help:"gap between top and bottom"`
	TopBottomOffset   float64 `help:"shorten the top by this much"`
	BottomTopOffset   float64 `help:"shorten the bottom by this much"`
	CutoutR           float64 `help:"finger hole radius in the top, 0 for none"`
	Segments          int     `help:"facets per full circle"`
}

type body struct {
	width, depth, height float64
	cornerR, thickness   float64
	cutoutR              float64
	segments             int
}

// build makes an open-topped box: a floor inside the walls, two long walls
// (optionally with the finger hole), two short walls and four rounded
// corners.
func (b body) build() *solid.Solid {
	total := b.height + b.thickness
	t, r := b.thickness, math.Max(0, math.Min(b.cornerR, math.Min(b.width, b.depth)/2))
	cornerSegments := max(b.segments/4, 1)

	parts := []*solid.Solid{
		solid.Extrude(solid.RoundedRect(b.width, b.depth, r, cornerSegments), t),
	}

	if long := b.width - 2*r; long > 1e-9 {
		outline := solid.Rect(long, total).Translate(geometry.NewVector2(0, total/2))
		var plate *solid.Solid
		if b.cutoutR > 0 && b.cutoutR < math.Min(long, total)/2 {
			plate = solid.ExtrudeHole(outline, geometry.NewVector2(0, total/2), b.cutoutR, t, b.segments)
		} else {
			plate = solid.Extrude(outline, t)
		}
		plate = plate.RotateX(math.Pi / 2)
		parts = append(parts,
			plate.Translate(geometry.NewVector3(0, -b.depth/2, 0)),
			plate.Translate(geometry.NewVector3(0, b.depth/2+t, 0)),
		)
	}

	if short := b.depth - 2*r; short > 1e-9 {
		side := solid.Box(t, short, total)
		parts = append(parts,
			side.Translate(geometry.NewVector3(-b.width/2-t/2, 0, 0)),
			side.Translate(geometry.NewVector3(b.width/2+t/2, 0, 0)),
		)
	}

	corner := solid.Polygon{{X: r, Y: 0}, {X: r + t, Y: 0}, {X: r + t, Y: total}, {X: r, Y: total}}
	for i, c := range []geometry.Vector3{
		{X: b.width/2 - r, Y: b.depth/2 - r},
		{X: -b.width/2 + r, Y: b.depth/2 - r},
		{X: -b.width/2 + r, Y: -b.depth/2 + r},
		{X: b.width/2 - r, Y: -b.depth/2 + r},
	} {
		arc := solid.RevolveArc(corner, float64(i)*math.Pi/2, math.Pi/2, b.segments)
		parts = append(parts, arc.Translate(c))
	}
	return solid.Union(parts...)
}

func (b body) locals() map[string]any {
	return map[string]any{
		"width":     b.width,
		"depth":     b.depth,
		"height":    b.height,
		"corner_r":  b.cornerR,
		"thickness": b.thickness,
		"cutout_r":  b.cutoutR,
	}
}

func Main(p *Params) []design.Result {
	t := p.Thickness
	calcTop := func(dim float64) float64 { return dim + t*2 + p.Fit }

	bottom := body{
		width:     p.InteriorWidth,
		depth:     p.InteriorDepth,
		height:    p.InteriorHeight - p.BottomTopOffset,
		cornerR:   p.CornerFilletR,
		thickness: t,
		segments:  p.Segments,
	}

	topFilletR := 0.0
	if p.TopInteriorFillet {
		topFilletR = p.InteriorFilletR
		// Keep the closed interior height by shortening the bottom.
		bottom.height -= topFilletR
	}

	top := body{
		width:     calcTop(p.InteriorWidth),
		depth:     calcTop(p.InteriorDepth),
		height:    p.InteriorHeight + t + p.Fit - p.TopBottomOffset,
		cornerR:   calcTop(p.CornerFilletR*2) / 2,
		thickness: t,
		cutoutR:   p.CutoutR,
		segments:  p.Segments,
	}

	topLocals := top.locals()
	topLocals["interior_fillet_r"] = topFilletR
	bottomLocals := bottom.locals()
	bottomLocals["interior_fillet_r"] = p.InteriorFilletR

	return []design.Result{
		{Name: "top", Part: top.build(), Locals: topLocals},
		{Name: "bottom", Part: bottom.build(), Locals: bottomLocals},
	}
}

func init() {
	design.Register(design.Module{
		Name: "telescoping_box",
		Doc:  doc,
		Params: &Params{
			InteriorWidth:   50,
			InteriorDepth:   20,
			InteriorHeight:  40,
			InteriorFilletR: 2,
			CornerFilletR:   2,
			Thickness:       0.75,
			Fit:             0.3,
			CutoutR:         7,
			Segments:        96,
		},
		Main: Main,
	})
}
