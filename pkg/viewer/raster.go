package viewer

import (
	"image"
	"image/color"
	"math"
)

// nearPlane is the closest view depth a rendered vertex may have.
const nearPlane = 0.01

// screenVertex is a projected point: pixel coordinates plus view depth.
type screenVertex struct {
	x, y, z float64
}

// depthBuffer pairs an image with the view depth of each pixel's current
// colour. Smaller depths are closer to the camera.
type depthBuffer struct {
	img   *image.RGBA
	depth []float64
}

func newDepthBuffer(img *image.RGBA) *depthBuffer {
	depth := make([]float64, img.Bounds().Dx()*img.Bounds().Dy())
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &depthBuffer{img: img, depth: depth}
}

// edge is twice the signed area of (a, b, p).
func edge(a, b screenVertex, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fill paints the pixels whose centres fall inside the triangle and lie in
// front of what is already drawn there. Both windings are accepted.
func (d *depthBuffer) fill(a, b, c screenVertex, col color.RGBA) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}

	bounds := d.img.Bounds()
	minX := max(bounds.Min.X, int(math.Floor(min(a.x, b.x, c.x))))
	maxX := min(bounds.Max.X-1, int(math.Ceil(max(a.x, b.x, c.x))))
	minY := max(bounds.Min.Y, int(math.Floor(min(a.y, b.y, c.y))))
	maxY := min(bounds.Max.Y-1, int(math.Ceil(max(a.y, b.y, c.y))))

	stride := bounds.Dx()
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			wa := edge(b, c, px, py) / area
			wb := edge(c, a, px, py) / area
			wc := 1 - wa - wb
			if wa < 0 || wb < 0 || wc < 0 {
				continue
			}

			z := wa*a.z + wb*b.z + wc*c.z
			i := (y-bounds.Min.Y)*stride + (x - bounds.Min.X)
			if z < d.depth[i] {
				d.depth[i] = z
				d.img.SetRGBA(x, y, col)
			}
		}
	}
}
