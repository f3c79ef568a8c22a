package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/stl"
)

// MeasurementResult contains various measurements of a generated part
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	// OpenEdges counts directed edges without an opposite partner. A closed,
	// consistently wound shell has none.
	OpenEdges int
}

type edgeKey struct {
	from, to geometry.Vector3
}

// AnalyzeModel performs comprehensive analysis on a model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Volume:        model.Volume(),
		TriangleCount: model.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	directed := make(map[edgeKey]int)

	for _, triangle := range model.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := range vertices {
			start, end := vertices[i], vertices[(i+1)%3]
			length := start.Distance(end)

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
			result.EdgeCount++

			back := edgeKey{end, start}
			if directed[back] > 0 {
				directed[back]--
				continue
			}
			directed[edgeKey{start, end}]++
		}
	}

	for _, n := range directed {
		result.OpenEdges += n
	}
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// Watertight reports whether every edge is shared by exactly two facets
// with opposite orientation.
func (r *MeasurementResult) Watertight() bool {
	return r.TriangleCount > 0 && r.OpenEdges == 0
}

// Lines renders the result as "label: value" lines in a fixed order.
func (r *MeasurementResult) Lines() []string {
	return []string{
		fmt.Sprintf("Triangles: %d", r.TriangleCount),
		fmt.Sprintf("Watertight: %t", r.Watertight()),
		fmt.Sprintf("Min: %s", FormatVector(r.BoundingBox.Min)),
		fmt.Sprintf("Max: %s", FormatVector(r.BoundingBox.Max)),
		fmt.Sprintf("Size: %s", FormatVector(r.Dimensions)),
		fmt.Sprintf("Volume: %s", FormatMeasurement(r.Volume, "mm³")),
		fmt.Sprintf("Surface Area: %s", FormatMeasurement(r.SurfaceArea, "mm²")),
		fmt.Sprintf("Edge Lengths: %.3f to %.3f (avg %.3f)", r.MinEdgeLength, r.MaxEdgeLength, r.AvgEdgeLength),
	}
}

// LocalLines renders a design's named intermediate values sorted by name.
func LocalLines(locals map[string]any) []string {
	names := make([]string, 0, len(locals))
	for name := range locals {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		switch v := locals[name].(type) {
		case float64:
			lines = append(lines, fmt.Sprintf("%s: %.3f", name, v))
		default:
			lines = append(lines, fmt.Sprintf("%s: %v", name, v))
		}
	}
	return lines
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "mm"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
