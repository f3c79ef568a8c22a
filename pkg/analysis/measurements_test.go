package analysis

import (
	"testing"

	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBox(t *testing.T) {
	result := AnalyzeModel(solid.Box(2, 3, 4).Model("box"))

	assert.Equal(t, 12, result.TriangleCount)
	assert.Equal(t, 36, result.EdgeCount)
	assert.InDelta(t, 24, result.Volume, 1e-9)
	assert.InDelta(t, 2*(6+8+12), result.SurfaceArea, 1e-9)
	assert.Equal(t, geometry.NewVector3(2, 3, 4), result.Dimensions)
	assert.InDelta(t, 2, result.MinEdgeLength, 1e-9)
	assert.True(t, result.Watertight())
}

func TestAnalyzeOpenShell(t *testing.T) {
	model := solid.Box(1, 1, 1).Model("box")
	model.Triangles = model.Triangles[1:]

	result := AnalyzeModel(model)

	assert.Equal(t, 3, result.OpenEdges)
	assert.False(t, result.Watertight())
}

func TestLines(t *testing.T) {
	lines := AnalyzeModel(solid.Box(1, 1, 1).Model("box")).Lines()

	require.NotEmpty(t, lines)
	assert.Equal(t, "Triangles: 12", lines[0])
	assert.Contains(t, lines, "Volume: 1.000 mm³")
}

func TestLocalLinesSorted(t *testing.T) {
	lines := LocalLines(map[string]any{"width": 12.5, "count": 3, "name": "top"})

	assert.Equal(t, []string{"count: 3", "name: top", "width: 12.500"}, lines)
}
