package solid

import (
	"math"
	"sort"

	"github.com/philipparndt/prints/pkg/geometry"
)

// Extrude sweeps a simple polygon from z=0 up to z=height.
func Extrude(outline Polygon, height float64) *Solid {
	p := outline.Compact().CCW()
	s := &Solid{}
	if len(p) < 3 || height <= 0 {
		return s
	}

	for _, tri := range Triangulate(p) {
		s.add(p[tri[0]].Lift(height), p[tri[1]].Lift(height), p[tri[2]].Lift(height))
		s.add(p[tri[0]].Lift(0), p[tri[2]].Lift(0), p[tri[1]].Lift(0))
	}
	s.walls(p, 0, height, false)
	return s
}

// walls adds the side quads of an extruded outline; inward walls face the
// polygon's interior.
func (s *Solid) walls(p Polygon, z0, z1 float64, inward bool) {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		if inward {
			s.quad(b.Lift(z0), a.Lift(z0), a.Lift(z1), b.Lift(z1))
			continue
		}
		s.quad(a.Lift(z0), b.Lift(z0), b.Lift(z1), a.Lift(z1))
	}
}

// ExtrudeRing extrudes the region between outer and inner, two closed
// outlines with the same number of points where inner lies inside outer.
// Point i of one outline is bridged to point i of the other, so both
// should be generated the same way (e.g. two RoundedRects or two Circles).
func ExtrudeRing(outer, inner Polygon, height float64) *Solid {
	o, in := outer.CCW(), inner.CCW()
	s := &Solid{}
	if len(o) != len(in) || len(o) < 3 || height <= 0 {
		return s
	}

	for i := range o {
		j := (i + 1) % len(o)
		s.quad(o[i].Lift(height), o[j].Lift(height), in[j].Lift(height), in[i].Lift(height))
		s.quad(o[i].Lift(0), in[i].Lift(0), in[j].Lift(0), o[j].Lift(0))
	}
	s.walls(o, 0, height, false)
	s.walls(in, 0, height, true)
	return s
}

// ExtrudeHole extrudes a convex outline with one round hole of radius r
// through it. The hole must lie inside the outline.
func ExtrudeHole(outline Polygon, center geometry.Vector2, r, height float64, segments int) *Solid {
	o := outline.Compact().CCW()
	if len(o) < 3 || r <= 0 {
		return Extrude(outline, height)
	}
	outer, inner, ok := holeRings(o, center, r, segmentsOrDefault(segments))
	if !ok {
		return &Solid{}
	}
	return ExtrudeRing(outer, inner, height)
}

// ExtrudeDimple extrudes a convex outline and sinks a hemispherical pocket
// of radius r into its top face around center. The pocket must lie inside
// the outline and be shallower than height.
func ExtrudeDimple(outline Polygon, center geometry.Vector2, r, height float64, segments int) *Solid {
	o := outline.Compact().CCW()
	if len(o) < 3 || r <= 0 {
		return Extrude(outline, height)
	}
	segments = segmentsOrDefault(segments)
	outer, inner, ok := holeRings(o, center, r, segments)
	if !ok || r >= height {
		return &Solid{}
	}

	s := &Solid{}
	n := len(outer)
	for i := range outer {
		j := (i + 1) % n
		s.quad(outer[i].Lift(height), outer[j].Lift(height), inner[j].Lift(height), inner[i].Lift(height))
		s.add(center.Lift(0), outer[j].Lift(0), outer[i].Lift(0))
	}
	s.walls(outer, 0, height, false)

	// Latitude rings from the rim down to the pole.
	rings := max(segments/4, 1)
	upper := make([]geometry.Vector3, n)
	for i, p := range inner {
		upper[i] = p.Lift(height)
	}
	for k := 1; k <= rings; k++ {
		lower := make([]geometry.Vector3, n)
		sin, cos := math.Sincos(float64(k) * math.Pi / 2 / float64(rings))
		for i, p := range inner {
			if k == rings {
				lower[i] = center.Lift(height - r)
				continue
			}
			lower[i] = center.Add(p.Sub(center).Mul(cos)).Lift(height - r*sin)
		}
		for i := range lower {
			j := (i + 1) % n
			s.quad(lower[j], lower[i], upper[i], upper[j])
		}
		upper = lower
	}
	return s
}

// holeRings samples a hole at regular angles plus the angle of every
// outline corner, so each outline point has a partner on the hole. The
// returned rings can be bridged point by point.
func holeRings(o Polygon, center geometry.Vector2, r float64, segments int) (Polygon, Polygon, bool) {
	angles := make([]float64, 0, segments+len(o))
	for i := 0; i < segments; i++ {
		angles = append(angles, 2*math.Pi*float64(i)/float64(segments))
	}
	for _, v := range o {
		d := v.Sub(center)
		a := math.Atan2(d.Y, d.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		angles = append(angles, a)
	}
	sort.Float64s(angles)

	var outer, inner Polygon
	last := math.Inf(-1)
	for _, a := range angles {
		if a-last < 1e-9 || 2*math.Pi-a < 1e-9 {
			continue
		}
		last = a
		sin, cos := math.Sincos(a)
		dir := geometry.NewVector2(cos, sin)
		t, ok := rayHit(o, center, dir)
		if !ok || t <= r {
			return nil, nil, false
		}
		outer = append(outer, center.Add(dir.Mul(t)))
		inner = append(inner, center.Add(dir.Mul(r)))
	}
	return outer, inner, true
}

// rayHit returns the distance from c along dir to the nearest edge of p.
func rayHit(p Polygon, c, dir geometry.Vector2) (float64, bool) {
	best, found := math.Inf(1), false
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		e := b.Sub(a)
		denom := dir.X*e.Y - dir.Y*e.X
		if math.Abs(denom) < 1e-12 {
			continue
		}
		w := a.Sub(c)
		t := (w.X*e.Y - w.Y*e.X) / denom
		s := (w.X*dir.Y - w.Y*dir.X) / denom
		if t > 1e-12 && s >= -1e-9 && s <= 1+1e-9 && t < best {
			best, found = t, true
		}
	}
	return best, found
}

// Revolve spins a closed profile around the Z axis. Profile points are
// (radius, z) pairs with radius >= 0; points on the axis collapse into the
// pole without producing degenerate facets.
func Revolve(profile Polygon, segments int) *Solid {
	return revolve(profile, 0, 2*math.Pi, segmentsOrDefault(segments), false)
}

// RevolveArc spins a closed profile from angle start through sweep radians
// and closes both ends with flat caps.
func RevolveArc(profile Polygon, start, sweep float64, segments int) *Solid {
	steps := int(math.Ceil(float64(segmentsOrDefault(segments)) * math.Abs(sweep) / (2 * math.Pi)))
	if steps < 1 {
		steps = 1
	}
	return revolve(profile, start, sweep, steps, true)
}

func revolve(profile Polygon, start, sweep float64, steps int, capped bool) *Solid {
	p := profile.Compact().CCW()
	s := &Solid{}
	if len(p) < 3 {
		return s
	}
	if sweep < 0 {
		start, sweep = start+sweep, -sweep
	}

	at := func(v geometry.Vector2, angle float64) geometry.Vector3 {
		sin, cos := math.Sincos(angle)
		return geometry.NewVector3(v.X*cos, v.X*sin, v.Y)
	}

	// The last ring reuses the exact first (or end) angle so seams share
	// vertices bit for bit.
	angle := func(k int) float64 {
		switch {
		case k == steps && !capped:
			return start
		case k == steps:
			return start + sweep
		}
		return start + sweep*float64(k)/float64(steps)
	}

	for k := 0; k < steps; k++ {
		a0, a1 := angle(k), angle(k+1)
		for i := range p {
			a, b := p[i], p[(i+1)%len(p)]
			s.add(at(a, a0), at(a, a1), at(b, a1))
			s.add(at(a, a0), at(b, a1), at(b, a0))
		}
	}

	if capped {
		end := angle(steps)
		for _, tri := range Triangulate(p) {
			s.add(at(p[tri[0]], start), at(p[tri[1]], start), at(p[tri[2]], start))
			s.add(at(p[tri[0]], end), at(p[tri[2]], end), at(p[tri[1]], end))
		}
	}
	return s
}

// Box is a w×d×h cuboid centred on the Z axis, resting on z=0.
func Box(w, d, h float64) *Solid {
	return Extrude(Rect(w, d), h)
}

// Cylinder of radius r resting on z=0.
func Cylinder(r, h float64, segments int) *Solid {
	return Frustum(r, r, h, segments)
}

// Frustum is a truncated cone with bottom radius r1 and top radius r2.
func Frustum(r1, r2, h float64, segments int) *Solid {
	return Revolve(Polygon{
		{X: 0, Y: 0},
		{X: r1, Y: 0},
		{X: r2, Y: h},
		{X: 0, Y: h},
	}, segments)
}

// Tube is a hollow cylinder between radii inner and outer.
func Tube(outer, inner, h float64, segments int) *Solid {
	return Revolve(Polygon{
		{X: inner, Y: 0},
		{X: outer, Y: 0},
		{X: outer, Y: h},
		{X: inner, Y: h},
	}, segments)
}

// Sphere of radius r centred on the origin.
func Sphere(r float64, segments int) *Solid {
	segments = segmentsOrDefault(segments)
	rings := segments / 2
	profile := make(Polygon, 0, rings+1)
	for i := 0; i <= rings; i++ {
		phi := -math.Pi/2 + math.Pi*float64(i)/float64(rings)
		sin, cos := math.Sincos(phi)
		if i == 0 || i == rings {
			cos = 0
		}
		profile = append(profile, geometry.NewVector2(r*cos, r*sin))
	}
	return Revolve(profile, segments)
}
