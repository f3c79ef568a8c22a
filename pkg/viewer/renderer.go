package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/stl"
)

// ModelRenderer is a widget showing a shaded model that can be rotated by
// dragging, zoomed by scrolling and measured by tapping two vertices.
type ModelRenderer struct {
	widget.BaseWidget
	model          *stl.Model
	camera         *Camera
	raster         *canvas.Raster
	selectedPoints []geometry.Vector3
	isDragging     bool
	size           fyne.Size
	onSelect       func(points []geometry.Vector3)
}

// NewModelRenderer creates a new 3D model renderer
func NewModelRenderer(model *stl.Model) *ModelRenderer {
	r := &ModelRenderer{
		model:  model,
		camera: NewCamera(model.BoundingBox()),
	}
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return r.camera.Render(r.model, w, h)
	})
	r.ExtendBaseWidget(r)
	return r
}

// SetOnSelect sets the callback invoked with the current selection (at
// most two points) whenever it changes.
func (r *ModelRenderer) SetOnSelect(callback func(points []geometry.Vector3)) {
	r.onSelect = callback
}

// CreateRenderer creates the renderer for the widget
func (r *ModelRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &modelWidgetRenderer{renderer: r, objects: []fyne.CanvasObject{r.raster}}
}

// Dragged handles mouse drag events for rotation
func (r *ModelRenderer) Dragged(event *fyne.DragEvent) {
	r.camera.Rotate(float64(event.Dragged.DY)*0.01, float64(-event.Dragged.DX)*0.01)
	r.isDragging = true
	r.Refresh()
}

// DragEnd handles the end of a drag event
func (r *ModelRenderer) DragEnd() {
	r.isDragging = false
}

// Tapped selects the vertex nearest to the tap, if it is within 20 pixels.
func (r *ModelRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging {
		return
	}

	vertex, dist := r.findNearestVertex(float64(event.Position.X), float64(event.Position.Y))
	if dist < 20 {
		r.selectedPoints = append(r.selectedPoints, vertex)
		if len(r.selectedPoints) > 2 {
			r.selectedPoints = r.selectedPoints[len(r.selectedPoints)-2:]
		}
		r.Refresh()
		if r.onSelect != nil {
			r.onSelect(r.selectedPoints)
		}
	}
}

// findNearestVertex finds the vertex closest to screen coordinates
func (r *ModelRenderer) findNearestVertex(screenX, screenY float64) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDist := math.MaxFloat64
	w, h := float64(r.size.Width), float64(r.size.Height)

	seen := make(map[geometry.Vector3]bool)
	for _, triangle := range r.model.Triangles {
		for _, vertex := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if seen[vertex] {
				continue
			}
			seen[vertex] = true

			x, y, _ := r.camera.Project(vertex, w, h)
			if dist := math.Hypot(x-screenX, y-screenY); dist < minDist {
				minDist = dist
				nearestVertex = vertex
			}
		}
	}

	return nearestVertex, minDist
}

// ClearSelection clears all selected points
func (r *ModelRenderer) ClearSelection() {
	r.selectedPoints = nil
	r.Refresh()
	if r.onSelect != nil {
		r.onSelect(nil)
	}
}

// Scrolled handles scroll events for zooming
func (r *ModelRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	r.Refresh()
}

// modelWidgetRenderer implements fyne.WidgetRenderer
type modelWidgetRenderer struct {
	renderer *ModelRenderer
	objects  []fyne.CanvasObject
}

func (m *modelWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.size = size
	m.renderer.raster.Resize(size)
	m.Refresh()
}

func (m *modelWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *modelWidgetRenderer) Refresh() {
	r := m.renderer
	m.objects = []fyne.CanvasObject{r.raster}

	colors := []color.Color{
		color.RGBA{255, 0, 0, 255}, // Red for first point
		color.RGBA{0, 255, 0, 255}, // Green for second point
	}
	for i, point := range r.selectedPoints {
		x, y, _ := r.camera.Project(point, float64(r.size.Width), float64(r.size.Height))

		marker := canvas.NewCircle(colors[i%len(colors)])
		marker.StrokeColor = color.White
		marker.StrokeWidth = 2
		size := float32(10)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
		m.objects = append(m.objects, marker)
	}

	canvas.Refresh(r.raster)
}

func (m *modelWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *modelWidgetRenderer) Destroy() {}
