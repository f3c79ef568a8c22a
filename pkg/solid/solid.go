// Package solid is a small triangle-mesh modelling kernel for printable
// parts. A Solid is a compound of closed, outward-wound shells. There are no
// boolean operations: overlapping shells are left for the slicer to union,
// and hollow shapes are built directly (tubes, rings, shelled extrusions).
package solid

import (
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/stl"
)

// DefaultSegments is the number of facets used for a full circle when a
// constructor is passed zero segments.
const DefaultSegments = 96

// Solid is an opaque solid handle.
type Solid struct {
	Triangles []geometry.Triangle
}

func segmentsOrDefault(segments int) int {
	if segments < 3 {
		return DefaultSegments
	}
	return segments
}

// add appends a facet unless it has no area.
func (s *Solid) add(v1, v2, v3 geometry.Vector3) {
	t := geometry.Facet(v1, v2, v3)
	if t.Degenerate() {
		return
	}
	s.Triangles = append(s.Triangles, t)
}

// quad appends the quad a-b-c-d (counter-clockwise from outside).
func (s *Solid) quad(a, b, c, d geometry.Vector3) {
	s.add(a, b, c)
	s.add(a, c, d)
}

// Union combines shells into one compound solid.
func Union(parts ...*Solid) *Solid {
	out := &Solid{}
	for _, p := range parts {
		if p == nil {
			continue
		}
		out.Triangles = append(out.Triangles, p.Triangles...)
	}
	return out
}

// Transform returns a copy with fn applied to every vertex.
func (s *Solid) Transform(fn func(geometry.Vector3) geometry.Vector3) *Solid {
	out := &Solid{Triangles: make([]geometry.Triangle, 0, len(s.Triangles))}
	for _, t := range s.Triangles {
		out.Triangles = append(out.Triangles, t.Transform(fn))
	}
	return out
}

// Translate moves the solid by offset.
func (s *Solid) Translate(offset geometry.Vector3) *Solid {
	return s.Transform(func(v geometry.Vector3) geometry.Vector3 { return v.Add(offset) })
}

// RotateZ rotates the solid around the Z axis by angle radians.
func (s *Solid) RotateZ(angle float64) *Solid {
	return s.Transform(func(v geometry.Vector3) geometry.Vector3 { return v.RotateZ(angle) })
}

// RotateX rotates the solid around the X axis by angle radians.
func (s *Solid) RotateX(angle float64) *Solid {
	return s.Transform(func(v geometry.Vector3) geometry.Vector3 { return v.RotateX(angle) })
}

// MirrorX mirrors the solid about the YZ plane. Winding is reversed so the
// shells stay outward-facing.
func (s *Solid) MirrorX() *Solid {
	out := &Solid{Triangles: make([]geometry.Triangle, 0, len(s.Triangles))}
	for _, t := range s.Triangles {
		m := t.Transform(func(v geometry.Vector3) geometry.Vector3 {
			return geometry.NewVector3(-v.X, v.Y, v.Z)
		})
		out.Triangles = append(out.Triangles, m.Flip())
	}
	return out
}

// Bounds returns the axis-aligned bounding box.
func (s *Solid) Bounds() geometry.BoundingBox {
	return s.Model("").BoundingBox()
}

// Volume returns the enclosed volume, summed over all shells.
func (s *Solid) Volume() float64 {
	return s.Model("").Volume()
}

// Model converts the solid to a named triangle model.
func (s *Solid) Model(name string) *stl.Model {
	m := stl.NewModel(name)
	m.Triangles = append(m.Triangles, s.Triangles...)
	return m
}
