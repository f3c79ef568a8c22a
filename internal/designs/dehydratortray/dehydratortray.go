// Package dehydratortray is a nesting pair of trays for a food dehydrator:
// an outer tray with a grid floor and an inner tray with an open floor.
package dehydratortray

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
	Width       float64
	Depth       float64
	Height      float64
	Thickness   float64
	GridSpacing float64 `help:"width of the bars between grid openings"`
	GridNumX    int     `param:"grid_num_x"`
	GridNumY    int     `param:"grid_num_y"`
	ScrewD      float64 `help:"diameter of the screw hole in each wall"`
	InnerOffset float64 `help:"clearance between inner and outer tray"`
	Inner       bool    `help:"build the inner tray instead of the outer one"`
	Segments    int     `help:"facets per full circle"`
}

// walls builds four plates standing on z=base, each with a screw hole in
// its middle. The plates lie inside the w×d outline.
func walls(w, d, base, top, t, screwD float64, segments int) []*solid.Solid {
	h := top - base
	plate := func(length float64) *solid.Solid {
		outline := solid.Rect(length, h).Translate(geometry.NewVector2(0, h/2))
		var s *solid.Solid
		if r := screwD / 2; r > 0 && r < math.Min(length, h)/2 {
			s = solid.ExtrudeHole(outline, geometry.NewVector2(0, h/2), r, t, segments)
		} else {
			s = solid.Extrude(outline, t)
		}
		// Stand the plate up: its thickness now runs from y=-t to y=0.
		return s.RotateX(math.Pi / 2).Translate(geometry.NewVector3(0, 0, base))
	}

	long := plate(w)
	short := plate(d - 2*t).RotateZ(math.Pi / 2)
	return []*solid.Solid{
		long.Translate(geometry.NewVector3(0, -d/2+t, 0)),
		long.Translate(geometry.NewVector3(0, d/2, 0)),
		short.Translate(geometry.NewVector3(w/2-t, 0, 0)),
		short.Translate(geometry.NewVector3(-w/2, 0, 0)),
	}
}

func outer(p *Params) (design.Result, error) {
	t := p.Thickness
	gridW := p.Width - t*4
	gridD := p.Depth - t*4
	if p.GridNumX < 1 || p.GridNumY < 1 {
		return design.Result{}, fmt.Errorf("grid needs at least one opening per axis, got %dx%d", p.GridNumX, p.GridNumY)
	}
	cellW := gridW / float64(p.GridNumX)
	cellD := gridD / float64(p.GridNumY)
	if cellW <= p.GridSpacing || cellD <= p.GridSpacing {
		return design.Result{}, fmt.Errorf("grid_spacing %g leaves no openings in %gx%g cells", p.GridSpacing, cellW, cellD)
	}

	// The floor is a rim around the grid area plus the bars between
	// openings.
	openW, openD := gridW-p.GridSpacing, gridD-p.GridSpacing
	parts := []*solid.Solid{
		solid.ExtrudeRing(solid.Rect(p.Width, p.Depth), solid.Rect(openW, openD), t),
	}
	for i := 1; i < p.GridNumX; i++ {
		x := -gridW/2 + float64(i)*cellW
		parts = append(parts, solid.Box(p.GridSpacing, openD, t).Translate(geometry.NewVector3(x, 0, 0)))
	}
	for j := 1; j < p.GridNumY; j++ {
		y := -gridD/2 + float64(j)*cellD
		parts = append(parts, solid.Box(openW, p.GridSpacing, t).Translate(geometry.NewVector3(0, y, 0)))
	}
	parts = append(parts, walls(p.Width, p.Depth, t, p.Height, t, p.ScrewD, p.Segments)...)

	return design.Result{
		Name: "outer",
		Part: solid.Union(parts...),
		Locals: map[string]any{
			"grid_width":  gridW,
			"grid_depth":  gridD,
			"cell_width":  cellW,
			"cell_depth":  cellD,
			"opening_num": p.GridNumX * p.GridNumY,
		},
	}, nil
}

func inner(p *Params) (design.Result, error) {
	t := p.Thickness
	width := p.Width - t*2 - p.InnerOffset
	depth := p.Depth - t*2 - p.InnerOffset
	height := p.Height - t
	openW, openD := width-t*4, depth-t*4
	if openW <= 0 || openD <= 0 || height <= t {
		return design.Result{}, fmt.Errorf("inner tray of %gx%gx%g is too small for thickness %g", width, depth, height, t)
	}

	parts := []*solid.Solid{
		solid.ExtrudeRing(solid.Rect(width, depth), solid.Rect(openW, openD), t),
	}
	parts = append(parts, walls(width, depth, t, height, t, p.ScrewD, p.Segments)...)

	return design.Result{
		Name: "inner",
		Part: solid.Union(parts...),
		Locals: map[string]any{
			"width":        width,
			"depth":        depth,
			"height":       height,
			"opening_size": geometry.NewVector2(openW, openD),
		},
	}, nil
}

func Main(p *Params) (design.Result, error) {
	if p.Inner {
		return inner(p)
	}
	return outer(p)
}

func init() {
	design.Register(design.Module{
		Name: "dehydrator_tray",
		Doc:  "Nesting trays for a food dehydrator; --no-inner builds the outer grid tray.",
		Params: &Params{
			Width:       280.0 / 2,
			Depth:       280.0 / 2,
			Height:      15,
			Thickness:   1.5,
			GridSpacing: 2,
			GridNumX:    4,
			GridNumY:    5,
			ScrewD:      3.2,
			InnerOffset: 1.0,
			Inner:       true,
			Segments:    48,
		},
		Main: Main,
	})
}
