package stl

import (
	"github.com/philipparndt/prints/pkg/geometry"
)

// Model is a triangle soup, the common currency between the mesh kernel,
// the exporters and the viewer.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume returns the enclosed volume, assuming closed, outward-wound shells.
func (m *Model) Volume() float64 {
	volume := 0.0
	for _, triangle := range m.Triangles {
		volume += triangle.SignedVolume()
	}
	return volume
}

// IndexedMesh is a vertex-deduplicated view of a model, the layout 3MF and
// STEP writers need.
type IndexedMesh struct {
	Vertices []geometry.Vector3
	Faces    [][3]int
}

// Indexed deduplicates vertices by exact coordinate match. Degenerate
// faces (two indices equal) are dropped.
func (m *Model) Indexed() IndexedMesh {
	index := make(map[geometry.Vector3]int)
	mesh := IndexedMesh{}

	lookup := func(v geometry.Vector3) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(mesh.Vertices)
		index[v] = i
		mesh.Vertices = append(mesh.Vertices, v)
		return i
	}

	for _, triangle := range m.Triangles {
		face := [3]int{lookup(triangle.V1), lookup(triangle.V2), lookup(triangle.V3)}
		if face[0] == face[1] || face[1] == face[2] || face[0] == face[2] {
			continue
		}
		mesh.Faces = append(mesh.Faces, face)
	}
	return mesh
}
