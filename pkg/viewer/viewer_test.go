package viewer

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/philipparndt/prints/pkg/solid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraLooksAtCenter(t *testing.T) {
	bounds := solid.Box(10, 10, 10).Bounds()
	cam := NewCamera(bounds)

	x, y, z := cam.Project(bounds.Center(), 200, 100)

	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
	assert.InDelta(t, cam.Distance, z, 1e-9)
}

func TestCameraClampsElevation(t *testing.T) {
	cam := NewCamera(solid.Box(1, 1, 1).Bounds())
	cam.Rotate(10, 0)

	assert.Less(t, cam.Elevation, math.Pi/2)
	assert.Greater(t, cam.Position.Z, cam.Target.Z)
}

func TestRenderImage(t *testing.T) {
	model := solid.Sphere(5, 32).Model("sphere")

	img := RenderImage(model, 64, 64)

	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())
	assert.NotEqual(t, Background, img.RGBAAt(32, 32))
	assert.Equal(t, Background, img.RGBAAt(0, 0))
	assert.Equal(t, Background, img.RGBAAt(63, 63))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, solid.Box(2, 2, 2).Model("box"), 48, "box"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
}

func TestPreviewRejectsEmptySize(t *testing.T) {
	_, err := Preview(solid.Box(1, 1, 1).Model("box"), 0, "")
	assert.Error(t, err)
}

func TestSelectionText(t *testing.T) {
	assert.Equal(t, "Tap two vertices to measure", selectionText(nil))
	assert.Equal(t, "Point 1: (1.000, 2.000, 3.000)", selectionText([]geometry.Vector3{{X: 1, Y: 2, Z: 3}}))
	assert.Equal(t,
		"Distance: 5.000 mm\nΔ (3.000, 4.000, 0.000)",
		selectionText([]geometry.Vector3{{}, {X: 3, Y: 4}}))
}
