// Package ledring converts a magnifying lamp from a circular fluorescent
// tube to an LED strip.
//
// Parts:
//   - ring: one segment of a bulb-sized ring carrying the LED strip
//   - bracket: clip holding the ring in the old bulb holder
//   - driver_plate: mount for the LED driver board in the base
//   - shroud_plate: cover plate for the lamp shroud
//   - cord_insert: sleeve protecting the cord where it passes the metal body
//   - cord_end_cover: cap over the cord sleeve
package ledring

import (
	"fmt"
	"math"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/designs/units"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
)

// A TL-E 32W tube is 26.2 to 30.9mm thick with an inner diameter between
// 236.5 and 246.1mm; the averages are used.
const (
	tleBulbD      = (26.2 + 30.9) / 2
	tleBulbInnerD = (236.5 + 246.1) / 2
)

type DriverParams struct {
	params.Base
	Width             float64
	Length            float64
	Mount             float64 `help:"distance between the plate's mounting screws"`
	MountOverhangX    float64
	MountOverhangY    float64
	PlateThickness    float64
	PlateMinThickness float64
	ScrewD            float64
	ScrewSpacing      float64
}

type ShroudPlateParams struct {
	params.Base
	D               float64 `help:"shroud diameter"`
	WidthUpper      float64
	WidthLower      float64
	Height          float64
	Thickness       float64
	Fillet          float64
	ScrewOffset     float64
	ScrewSeparation float64
	ScrewD          float64
}

type BracketParams struct {
	params.Base
	BulbD       float64
	BulbPadding float64
	Rad         float64 `help:"arc of the clip in degrees"`
	Width       float64
	Thickness   float64
	Lip         float64
}

type RingParams struct {
	params.Base
	PegW       float64
	PegSpacing float64
	PegRad     float64 `help:"angular length of the joining peg in degrees"`
	CenterD    float64
	Width      float64
	LedOffset  float64
	Height     float64
	Segments   int `help:"number of ring segments"`
}

type CordInsertParams struct {
	params.Base
	InnerD         float64
	OuterD         float64
	LipD           float64
	LipThickness   float64
	InsertDistance float64
	ThreadD        float64
	ThreadPitch    float64
}

type CordEndCoverParams struct {
	params.Base
	InnerD        float64
	UpperOuterD   float64
	LowerOuterD   float64
	Height        float64
	ChannelWidth  float64
	ChannelHeight float64
}

// Shared holds the screw sizes used across parts.
type Shared struct {
	params.Base
	ScrewD       float64
	ScrewHeadD   float64
	ScrewSpacing float64
}

type Params struct {
	Shared
	Ring         RingParams
	Bracket      BracketParams
	Driver       DriverParams
	Shroud       ShroudPlateParams
	CordInsert   CordInsertParams
	CordEndCover CordEndCoverParams
	Facets       int `help:"facets per full circle"`
}

// arcPoints walks radius r from angle a0 to a1, both included.
func arcPoints(r, a0, a1 float64, facets int) []geometry.Vector2 {
	n := max(int(math.Ceil(float64(facets)*math.Abs(a1-a0)/(2*math.Pi))), 1)
	return solid.Arc(geometry.Vector2{}, r, a0, a1-a0, n)
}

func ring(shared Shared, p RingParams, facets int) (design.Result, error) {
	if p.Segments < 1 {
		return design.Result{}, fmt.Errorf("ring needs at least one segment, got %d", p.Segments)
	}
	arc := 2 * math.Pi / float64(p.Segments)
	peg := units.Radians(p.PegRad)

	outerR := (p.CenterD + p.Width) / 2
	innerR := (p.CenterD - p.Width) / 2
	maleOuterR := (p.CenterD + p.PegW - p.PegSpacing/2) / 2
	maleInnerR := (p.CenterD - p.PegW + p.PegSpacing/2) / 2
	femaleOuterR := (p.CenterD + p.PegW) / 2
	femaleInnerR := (p.CenterD - p.PegW) / 2

	// One counter-clockwise outline: the outer arc, the socket at the far
	// end, the inner arc back, and the peg sticking out before angle 0.
	var outline solid.Polygon
	outline = append(outline, arcPoints(outerR, 0, arc, facets*4)...)
	outline = append(outline, arcPoints(femaleOuterR, arc, arc-peg, facets*4)...)
	outline = append(outline, arcPoints(femaleInnerR, arc-peg, arc, facets*4)...)
	outline = append(outline, arcPoints(innerR, arc, 0, facets*4)...)
	outline = append(outline, arcPoints(maleInnerR, 0, -peg, facets*4)...)
	outline = append(outline, arcPoints(maleOuterR, -peg, 0, facets*4)...)

	return design.Result{
		Name: "ring",
		Part: solid.Extrude(outline, p.Height),
		Locals: map[string]any{
			"arc_size":      arc,
			"outer_r":       outerR,
			"inner_r":       innerR,
			"screw_opening": shared.ScrewD + shared.ScrewSpacing,
			"copies":        p.Segments,
		},
	}, nil
}

func bracket(p BracketParams, facets int) design.Result {
	bracketD := p.BulbD + p.BulbPadding
	totalHeight := p.Width + p.Thickness*2
	totalD := bracketD + p.Lip*2

	sweep := units.Radians(p.Rad)
	outline := solid.Polygon(arcPoints(totalD/2, -sweep/2, sweep/2, facets))
	return design.Result{
		Name: "bracket",
		Part: solid.Extrude(outline, totalHeight),
		Locals: map[string]any{
			"bracket_d":    bracketD,
			"total_d":      totalD,
			"total_height": totalHeight,
			"bulb_inner_d": tleBulbInnerD,
			"insert":       units.M3x5_7,
		},
	}
}

func driverPlate(shared Shared, p DriverParams, facets int) design.Result {
	totalWidth := p.Width + p.MountOverhangY*2
	totalLength := p.Mount + p.MountOverhangX*2
	outline := solid.RoundedRect(totalLength, totalWidth, p.MountOverhangX, max(facets/4, 1))

	return design.Result{
		Name: "driver_plate",
		Part: solid.Extrude(outline, p.PlateThickness),
		Locals: map[string]any{
			"total_width":         totalWidth,
			"total_length":        totalLength,
			"screw_hole_d":        shared.ScrewD + shared.ScrewSpacing,
			"driver_screw_hole_d": p.ScrewD + p.ScrewSpacing,
			"counter_bore_depth":  p.PlateThickness - p.PlateMinThickness,
		},
	}
}

// arcBetween returns the points of the arc of radius r from a to b whose
// centre lies below both points.
func arcBetween(a, b geometry.Vector2, r float64, facets int) ([]geometry.Vector2, error) {
	half := a.Sub(b).Length() / 2
	if r < half {
		return nil, fmt.Errorf("radius %g cannot span %g", r, 2*half)
	}
	mid := a.Add(b).Mul(0.5)
	center := geometry.NewVector2(mid.X, mid.Y-math.Sqrt(r*r-half*half))
	a0 := math.Atan2(a.Y-center.Y, a.X-center.X)
	a1 := math.Atan2(b.Y-center.Y, b.X-center.X)
	n := max(int(math.Ceil(float64(facets)*math.Abs(a1-a0)/(2*math.Pi))), 4)
	return solid.Arc(center, r, a0, a1-a0, n), nil
}

func shroudPlate(p ShroudPlateParams, facets int) (design.Result, error) {
	bottomLeft := geometry.NewVector2(-p.WidthLower/2, -p.Height/2)
	bottomRight := geometry.NewVector2(p.WidthLower/2, -p.Height/2)
	topRight := geometry.NewVector2(p.WidthUpper/2, p.Height/2)
	topLeft := geometry.NewVector2(-p.WidthUpper/2, p.Height/2)

	// Both long edges follow the round shroud, so their centres sit below
	// the plate.
	bottom, err := arcBetween(bottomLeft, bottomRight, p.D/2, facets*4)
	if err != nil {
		return design.Result{}, fmt.Errorf("shroud bottom edge: %w", err)
	}
	top, err := arcBetween(topRight, topLeft, (p.D+p.Height)/2, facets*4)
	if err != nil {
		return design.Result{}, fmt.Errorf("shroud top edge: %w", err)
	}

	outline := append(solid.Polygon(bottom), top...)
	return design.Result{
		Name: "shroud_plate",
		Part: solid.Extrude(outline, p.Thickness),
		Locals: map[string]any{
			"outline": outline,
			"screws":  []float64{-p.ScrewSeparation / 2, p.ScrewSeparation / 2},
		},
	}, nil
}

func cordInsert(p CordInsertParams, facets int) design.Result {
	innerR, outerR, lipR := p.InnerD/2, p.OuterD/2, p.LipD/2
	profile := solid.Polygon{
		{X: innerR, Y: 0},
		{X: lipR, Y: 0},
		{X: lipR, Y: p.LipThickness},
		{X: outerR, Y: p.LipThickness},
		{X: outerR, Y: p.LipThickness + p.InsertDistance},
		{X: innerR, Y: p.LipThickness + p.InsertDistance},
	}
	return design.Result{
		Name: "cord_insert",
		Part: solid.Revolve(profile, facets),
		Locals: map[string]any{
			"profile":      profile,
			"thread_d":     p.ThreadD,
			"thread_pitch": p.ThreadPitch,
		},
	}
}

func cordEndCover(insert CordInsertParams, p CordEndCoverParams, facets int) design.Result {
	profile := solid.Polygon{
		{X: insert.LipD / 2, Y: 0},
		{X: p.LowerOuterD / 2, Y: 0},
		{X: p.UpperOuterD / 2, Y: p.Height},
		{X: p.InnerD / 2, Y: p.Height},
		{X: p.InnerD / 2, Y: insert.LipThickness},
		{X: insert.LipD / 2, Y: insert.LipThickness},
	}
	return design.Result{
		Name: "cord_end_cover",
		Part: solid.Revolve(profile, facets),
		Locals: map[string]any{
			"profile": profile,
			"channel": geometry.NewVector2(p.ChannelWidth, p.ChannelHeight),
		},
	}
}

func Main(p *Params) ([]design.Result, error) {
	r, err := ring(p.Shared, p.Ring, p.Facets)
	if err != nil {
		return nil, err
	}
	shroud, err := shroudPlate(p.Shroud, p.Facets)
	if err != nil {
		return nil, err
	}
	return []design.Result{
		r,
		bracket(p.Bracket, p.Facets),
		driverPlate(p.Shared, p.Driver, p.Facets),
		shroud,
		cordInsert(p.CordInsert, p.Facets),
		cordEndCover(p.CordInsert, p.CordEndCover, p.Facets),
	}, nil
}

func init() {
	design.Register(design.Module{
		Name: "led_ring",
		Doc:  "Parts converting a magnifying lamp to an LED strip ring.",
		Params: &Params{
			Shared: Shared{ScrewD: 3, ScrewHeadD: 6, ScrewSpacing: 0.5},
			Ring: RingParams{
				PegW: 5, PegSpacing: 0.3, PegRad: 5, CenterD: 275,
				Width: 10, LedOffset: 4, Height: 8, Segments: 3,
			},
			Bracket: BracketParams{
				BulbD: tleBulbD, BulbPadding: 2, Rad: 290,
				Width: 13, Thickness: 4, Lip: 3,
			},
			Driver: DriverParams{
				Width: 46, Length: 95, Mount: 140, MountOverhangX: 5, MountOverhangY: 0.5,
				PlateThickness: 6, PlateMinThickness: 1.5, ScrewD: 4, ScrewSpacing: 0.5,
			},
			Shroud: ShroudPlateParams{
				D: 330, WidthUpper: 98, WidthLower: 90, Height: 53, Thickness: 2,
				Fillet: 10, ScrewOffset: -2.5, ScrewSeparation: 85, ScrewD: 5.5,
			},
			CordInsert: CordInsertParams{
				InnerD: 8, OuterD: 8.5, LipD: 12, LipThickness: 2,
				InsertDistance: 4, ThreadD: 10, ThreadPitch: 1.5,
			},
			CordEndCover: CordEndCoverParams{
				InnerD: 10, UpperOuterD: 12, LowerOuterD: 14,
				Height: 8, ChannelWidth: 1.5, ChannelHeight: 3,
			},
			Facets: 96,
		},
		Main: Main,
	})
}
