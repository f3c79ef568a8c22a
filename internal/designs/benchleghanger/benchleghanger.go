// Package benchleghanger hangs a spool dowel off the leg of a workbench.
package benchleghanger

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
	DowelD         float64 `help:"diameter of the dowel resting in the cradle"`
	PostWidth      float64 `help:"width of the bench leg"`
	PostDepth      float64 `help:"depth of the bench leg"`
	SpoolClearance int     `help:"distance between the leg and the dowel"`
	Thickness      int
	Segments       int `help:"facets per full circle"`
}

// clipX keeps the part of a convex polygon on one side of the vertical
// line through x.
func clipX(p solid.Polygon, x float64, keepRight bool) solid.Polygon {
	inside := func(v geometry.Vector2) bool {
		if keepRight {
			return v.X >= x
		}
		return v.X <= x
	}

	var out solid.Polygon
	for i, cur := range p {
		prev := p[(i+len(p)-1)%len(p)]
		if inside(cur) != inside(prev) {
			t := (x - prev.X) / (cur.X - prev.X)
			out = append(out, geometry.NewVector2(x, prev.Y+t*(cur.Y-prev.Y)))
		}
		if inside(cur) {
			out = append(out, cur)
		}
	}
	return out.Compact()
}

func maxY(p solid.Polygon) float64 {
	m := math.Inf(-1)
	for _, v := range p {
		m = math.Max(m, v.Y)
	}
	return m
}

func Main(p *Params) (design.Result, error) {
	t := float64(p.Thickness)
	dd, pw, pd := p.DowelD, p.PostWidth, p.PostDepth
	clearance := float64(p.SpoolClearance)
	partThickness := t*2 + pw
	blockWidth := pw + t*3
	blockLeft := -clearance - blockWidth

	if t <= 0 || dd <= 0 || pw <= 0 {
		return design.Result{}, fmt.Errorf("dowel_d, post_width and thickness must be positive")
	}
	if pd >= partThickness {
		return design.Result{}, fmt.Errorf("post_depth %g leaves no material in a part %g thick", pd, partThickness)
	}

	hull := solid.Hull([]geometry.Vector2{
		{X: 0, Y: 0}, {X: dd + t, Y: 0}, {X: dd + t, Y: dd + t}, {X: 0, Y: dd + t},
		{X: blockLeft, Y: 0}, {X: -clearance, Y: 0}, {X: -clearance, Y: pw}, {X: blockLeft, Y: pw},
	})

	// The cradle is a U open towards the top edge: a half circle under a
	// dowel-wide channel.
	cradleR := dd / 2
	cradleY := t + cradleR
	if top := maxY(clipX(clipX(hull, 0, true), dd, false)); top > t+dd*1.5 {
		return design.Result{}, fmt.Errorf("the hull rises to %g above the dowel cradle; increase spool_clearance", top)
	}
	cradleFloor := append(solid.Polygon{
		{X: 0, Y: 0},
		{X: dd, Y: 0},
	}, solid.Arc(geometry.NewVector2(cradleR, cradleY), cradleR, 0, -math.Pi, p.Segments/2)...)

	// The post block is pierced along Y by the slot the bench leg goes
	// through.
	slotted := solid.ExtrudeRing(solid.Rect(blockWidth, partThickness), solid.Rect(pw, pd), pw).
		RotateX(math.Pi/2).
		Translate(geometry.NewVector3(blockLeft+blockWidth/2, pw, partThickness/2))

	arm := clipX(hull, -clearance, true)
	floorTop := partThickness - pw
	up := geometry.NewVector3(0, 0, floorTop)

	part := solid.Union(
		slotted,
		solid.Extrude(arm, floorTop),
		solid.Extrude(clipX(arm, 0, false), pw).Translate(up),
		solid.Extrude(cradleFloor, pw).Translate(up),
		solid.Extrude(clipX(arm, dd, true), pw).Translate(up),
	)

	return design.Result{
		Part: part,
		Locals: map[string]any{
			"part_thickness": partThickness,
			"cradle_center":  geometry.NewVector2(cradleR, cradleY),
			"block_width":    blockWidth,
			"insert_angle":   -30,
		},
	}, nil
}

func init() {
	design.Register(design.Module{
		Name: "bench_leg_hanger",
		Doc:  "Hangs a spool dowel off the leg of a workbench.",
		Params: &Params{
			DowelD:         18.5,
			PostWidth:      39,
			PostDepth:      39,
			SpoolClearance: 100,
			Thickness:      6,
			Segments:       96,
		},
		Main: Main,
	})
}
