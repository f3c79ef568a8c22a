package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/prints/pkg/geometry"
	"github.com/stretchr/testify/require"
)

const asciiTriangle = `solid plate part
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid plate part
`

func TestReadASCII(t *testing.T) {
	m, err := Read(strings.NewReader(asciiTriangle))
	require.NoError(t, err)

	require.Equal(t, "plate part", m.Name)
	require.Equal(t, 1, m.TriangleCount())
	require.Equal(t, geometry.NewVector3(0, 0, 1), m.Triangles[0].Normal)
	require.Equal(t, geometry.NewVector3(1, 0, 0), m.Triangles[0].V2)
}

func TestReadASCIIRejectsBadNumbers(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Replace(asciiTriangle, "vertex 1 0 0", "vertex 1 zero 0", 1)))
	require.ErrorIs(t, err, ErrFormat)
	require.ErrorContains(t, err, "line 5")
}

func TestReadASCIIRejectsShortFacets(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Replace(asciiTriangle, "      vertex 0 1 0\n", "", 1)))
	require.ErrorIs(t, err, ErrFormat)
}

func TestReadBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, tetrahedron()))

	_, err := Read(bytes.NewReader(buf.Bytes()[:buf.Len()-10]))
	require.ErrorIs(t, err, ErrFormat)
}

func TestParseBinaryWithSolidHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, tetrahedron()))
	data := buf.Bytes()
	copy(data, "solid by another exporter")

	path := filepath.Join(t.TempDir(), "tetra.stl")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	m, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, 4, m.TriangleCount())
	require.InDelta(t, 1.0/6.0, m.Volume(), 1e-6)
}
