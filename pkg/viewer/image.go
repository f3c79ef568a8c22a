package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/stl"
)

var (
	// Background fills every pixel not covered by the model.
	Background = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	// Surface is the base colour of lit facets.
	Surface = color.RGBA{R: 90, G: 160, B: 230, A: 255}
)

// RenderImage rasterizes model from the default camera into a w×h image.
func RenderImage(model *stl.Model, w, h int) *image.RGBA {
	return NewCamera(model.BoundingBox()).Render(model, w, h)
}

// Render rasterizes model as seen from the camera. Facets are flat shaded
// by the angle between their normal and the view direction; back faces are
// skipped.
func (c *Camera) Render(model *stl.Model, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	if w <= 0 || h <= 0 {
		return img
	}

	buf := newDepthBuffer(img)
	forward, _, _ := c.basis()
	fw, fh := float64(w), float64(h)
	for _, t := range model.Triangles {
		normal := t.CalculateNormal()
		if normal.Dot(t.V1.Sub(c.Position)) >= 0 {
			continue
		}

		var v [3]screenVertex
		visible := true
		for i, p := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			if p.Sub(c.Position).Dot(forward) <= nearPlane {
				visible = false
				break
			}
			v[i].x, v[i].y, v[i].z = c.Project(p, fw, fh)
		}
		if visible {
			buf.fill(v[0], v[1], v[2], shade(-normal.Dot(forward)))
		}
	}
	return img
}

func shade(facing float64) color.RGBA {
	k := 0.3 + 0.7*math.Max(0, math.Min(1, facing))
	return color.RGBA{
		R: uint8(float64(Surface.R) * k),
		G: uint8(float64(Surface.G) * k),
		B: uint8(float64(Surface.B) * k),
		A: 255,
	}
}
