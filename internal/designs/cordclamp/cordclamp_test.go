package cordclamp

import (
	"testing"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/pkg/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *Params {
	t.Helper()
	m, err := design.Lookup("cord_clamp")
	require.NoError(t, err)
	return m.NewParams().(*Params)
}

func TestClampShape(t *testing.T) {
	p := defaults(t)

	r, err := Main(p)
	require.NoError(t, err)

	size := r.Part.Bounds().Size()
	assert.InDelta(t, 16.5, size.X, 1e-9)
	assert.InDelta(t, 12+8.25, size.Y, 1e-9)
	assert.InDelta(t, 8, size.Z, 1e-9)
	assert.True(t, analysis.AnalyzeModel(r.Part.Model("clamp")).Watertight())
}

func TestSlotMustBeNarrowerThanCable(t *testing.T) {
	p := defaults(t)
	p.CutoutWidth = 9

	_, err := Main(p)
	assert.ErrorContains(t, err, "cutout_width 9")
}

func TestWallAroundCable(t *testing.T) {
	p := defaults(t)
	p.Thickness = 0.5

	_, err := Main(p)
	assert.ErrorContains(t, err, "leaves no wall")
}
