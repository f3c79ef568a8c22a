package solid

import (
	"cmp"
	"math"
	"slices"

	"github.com/philipparndt/prints/pkg/geometry"
)

// Polygon is a closed 2D outline; the last point connects back to the
// first.
type Polygon []geometry.Vector2

// SignedArea is positive for counter-clockwise polygons.
func (p Polygon) SignedArea() float64 {
	area := 0.0
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// CCW returns the polygon in counter-clockwise order.
func (p Polygon) CCW() Polygon {
	if p.SignedArea() >= 0 {
		return p
	}
	out := make(Polygon, len(p))
	for i := range p {
		out[i] = p[len(p)-1-i]
	}
	return out
}

// Compact drops consecutive duplicate points, including a closing point
// equal to the first.
func (p Polygon) Compact() Polygon {
	out := make(Polygon, 0, len(p))
	for _, v := range p {
		if len(out) > 0 && v.Sub(out[len(out)-1]).Length() < 1e-9 {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0].Sub(out[len(out)-1]).Length() < 1e-9 {
		out = out[:len(out)-1]
	}
	return out
}

// Translate moves every point by offset.
func (p Polygon) Translate(offset geometry.Vector2) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(offset)
	}
	return out
}

// Rect is a w×d rectangle centred on the origin.
func Rect(w, d float64) Polygon {
	return Polygon{
		{X: -w / 2, Y: -d / 2},
		{X: w / 2, Y: -d / 2},
		{X: w / 2, Y: d / 2},
		{X: -w / 2, Y: d / 2},
	}
}

// Circle is a regular polygon approximating a circle of radius r.
func Circle(r float64, segments int) Polygon {
	return RegularPolygon(r, segmentsOrDefault(segments))
}

// RegularPolygon has sides vertices on a circle of radius r.
func RegularPolygon(r float64, sides int) Polygon {
	out := make(Polygon, sides)
	for i := range out {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(sides))
		out[i] = geometry.NewVector2(r*cos, r*sin)
	}
	return out
}

// RoundedRect is a w×d rectangle centred on the origin with corners of
// radius r. It always has 4*(cornerSegments+1) points, so two rounded
// rectangles can be bridged by ExtrudeRing even when a radius is zero.
func RoundedRect(w, d, r float64, cornerSegments int) Polygon {
	if cornerSegments < 1 {
		cornerSegments = segmentsOrDefault(0) / 4
	}
	r = math.Max(0, math.Min(r, math.Min(w, d)/2))

	corners := []struct {
		center geometry.Vector2
		start  float64
	}{
		{geometry.NewVector2(w/2-r, -d/2+r), -math.Pi / 2},
		{geometry.NewVector2(w/2-r, d/2-r), 0},
		{geometry.NewVector2(-w/2+r, d/2-r), math.Pi / 2},
		{geometry.NewVector2(-w/2+r, -d/2+r), math.Pi},
	}

	out := make(Polygon, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			angle := c.start + (math.Pi/2)*float64(i)/float64(cornerSegments)
			sin, cos := math.Sincos(angle)
			out = append(out, c.center.Add(geometry.NewVector2(r*cos, r*sin)))
		}
	}
	return out
}

// Arc returns the points of a circular arc around center, from angle start
// through sweep radians, both ends included.
func Arc(center geometry.Vector2, r, start, sweep float64, segments int) []geometry.Vector2 {
	if segments < 1 {
		segments = int(math.Ceil(float64(DefaultSegments) * math.Abs(sweep) / (2 * math.Pi)))
		segments = max(segments, 1)
	}
	out := make([]geometry.Vector2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		sin, cos := math.Sincos(start + sweep*float64(i)/float64(segments))
		out = append(out, center.Add(geometry.NewVector2(r*cos, r*sin)))
	}
	return out
}

// Offset moves every edge of a simple polygon outward by d (inward when d
// is negative), joining neighbouring edges at their miter point. The
// result keeps the point count and order of p, so an outline and its
// offset can be bridged by ExtrudeRing. Large inward offsets of concave
// polygons self-intersect.
func Offset(p Polygon, d float64) Polygon {
	q := p.Compact().CCW()
	n := len(q)
	out := make(Polygon, n)
	for i := range q {
		prev, cur, next := q[(i+n-1)%n], q[i], q[(i+1)%n]
		n1 := edgeNormal(prev, cur)
		n2 := edgeNormal(cur, next)
		bisector := n1.Add(n2)
		k := 1 + n1.X*n2.X + n1.Y*n2.Y
		if bisector.Length() < 1e-12 || k < 1e-6 {
			out[i] = cur.Add(n1.Mul(d))
			continue
		}
		out[i] = cur.Add(bisector.Mul(d / k))
	}
	return out
}

// edgeNormal is the outward unit normal of edge a→b of a CCW polygon.
func edgeNormal(a, b geometry.Vector2) geometry.Vector2 {
	e := b.Sub(a)
	l := e.Length()
	if l == 0 {
		return geometry.Vector2{}
	}
	return geometry.NewVector2(e.Y/l, -e.X/l)
}

// Triangulate splits a simple counter-clockwise polygon into
// counter-clockwise triangles by ear clipping. The result indexes into p.
func Triangulate(p Polygon) [][3]int {
	n := len(p)
	if n < 3 {
		return nil
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var out [][3]int
	for guard := 0; len(remaining) > 3 && guard < n*n; guard++ {
		clipped := false
		for i := range remaining {
			prev := remaining[(i+len(remaining)-1)%len(remaining)]
			cur := remaining[i]
			next := remaining[(i+1)%len(remaining)]
			if !isEar(p, remaining, prev, cur, next) {
				continue
			}
			out = append(out, [3]int{prev, cur, next})
			remaining = append(remaining[:i:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Not simple (or numerically flat); fall back to a fan.
			break
		}
	}
	for i := 1; i+1 < len(remaining); i++ {
		out = append(out, [3]int{remaining[0], remaining[i], remaining[i+1]})
	}
	return out
}

func cross2(o, a, b geometry.Vector2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func isEar(p Polygon, remaining []int, prev, cur, next int) bool {
	a, b, c := p[prev], p[cur], p[next]
	if cross2(a, b, c) <= 1e-12 {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		q := p[idx]
		if cross2(a, b, q) >= 0 && cross2(b, c, q) >= 0 && cross2(c, a, q) >= 0 {
			return false
		}
	}
	return true
}

// Hull returns the convex hull of points, counter-clockwise. Collinear
// points are dropped.
func Hull(points []geometry.Vector2) Polygon {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b geometry.Vector2) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return Polygon(pts)
	}

	var hull Polygon
	for pass := 0; pass < 2; pass++ {
		start := len(hull)
		for _, v := range pts {
			for len(hull) >= start+2 && cross2(hull[len(hull)-2], hull[len(hull)-1], v) <= 1e-12 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, v)
		}
		hull = hull[:len(hull)-1]
		slices.Reverse(pts)
	}
	return hull
}
