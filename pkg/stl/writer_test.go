package stl

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/stretchr/testify/require"
)

// tetrahedron returns a closed, outward-wound unit tetrahedron.
func tetrahedron() *Model {
	o := geometry.NewVector3(0, 0, 0)
	x := geometry.NewVector3(1, 0, 0)
	y := geometry.NewVector3(0, 1, 0)
	z := geometry.NewVector3(0, 0, 1)

	m := NewModel("tetra")
	m.AddTriangle(geometry.Facet(o, y, x))
	m.AddTriangle(geometry.Facet(o, x, z))
	m.AddTriangle(geometry.Facet(o, z, y))
	m.AddTriangle(geometry.Facet(x, y, z))
	return m
}

func TestWriteBinaryLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, tetrahedron()))

	require.Equal(t, 80+4+4*50, buf.Len())
	require.Equal(t, "tetra", string(bytes.TrimRight(buf.Bytes()[:80], "\x00")))
}

func TestWriteBinaryParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.stl")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteBinary(f, tetrahedron()))
	require.NoError(t, f.Close())

	parsed, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, 4, parsed.TriangleCount())
	require.InDelta(t, 1.0/6.0, parsed.Volume(), 1e-6)
}

func TestWriteBinaryAvoidsASCIIMagic(t *testing.T) {
	m := tetrahedron()
	m.Name = "solidity"

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, m))
	require.NotEqual(t, "solid", string(buf.Bytes()[:5]))
}

func TestModelVolumeAndArea(t *testing.T) {
	m := tetrahedron()

	require.InDelta(t, 1.0/6.0, m.Volume(), 1e-12)
	expectedArea := 1.5 + math.Sqrt(3)/2
	require.InDelta(t, expectedArea, m.SurfaceArea(), 1e-12)
}

func TestIndexedDeduplicates(t *testing.T) {
	m := tetrahedron()
	m.AddTriangle(geometry.Facet(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
	))

	mesh := m.Indexed()
	require.Len(t, mesh.Vertices, 4)
	require.Len(t, mesh.Faces, 4, "degenerate face should be dropped")
}
