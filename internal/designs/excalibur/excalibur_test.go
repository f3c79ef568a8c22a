package excalibur

import (
	"testing"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/pkg/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *Params {
	t.Helper()
	m, err := design.Lookup("excalibur_dehydrator")
	require.NoError(t, err)
	return m.NewParams().(*Params)
}

func TestHousingWithTabs(t *testing.T) {
	p := defaults(t)

	r, err := Main(p)
	require.NoError(t, err)
	assert.Equal(t, "housing", r.Name)

	bounds := r.Part.Bounds()
	assert.InDelta(t, -p.TabWidth, bounds.Min.X, 1e-9)
	assert.InDelta(t, p.Width+p.TabWidth, bounds.Max.X, 1e-9)
	assert.InDelta(t, p.Depth, bounds.Size().Z, 1e-9)
	assert.True(t, analysis.AnalyzeModel(r.Part.Model("housing")).Watertight())
}

func TestRejectsWideSlot(t *testing.T) {
	p := defaults(t)
	p.ScrewD = p.TabWidth

	_, err := Main(p)
	assert.ErrorContains(t, err, "screw slot")
}

func TestRejectsThickWalls(t *testing.T) {
	p := defaults(t)
	p.Thickness = p.Height

	_, err := Main(p)
	assert.ErrorContains(t, err, "does not fit")
}
