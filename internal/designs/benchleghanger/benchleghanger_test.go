package benchleghanger

import (
	"testing"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/pkg/analysis"
	"github.com/philipparndt/prints/pkg/solid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *Params {
	t.Helper()
	m, err := design.Lookup("bench_leg_hanger")
	require.NoError(t, err)
	return m.NewParams().(*Params)
}

func TestHangerBounds(t *testing.T) {
	r, err := Main(defaults(t))
	require.NoError(t, err)

	bounds := r.Part.Bounds()
	assert.InDelta(t, -157, bounds.Min.X, 1e-9)
	assert.InDelta(t, 24.5, bounds.Max.X, 1e-9)
	assert.InDelta(t, 39, bounds.Size().Y, 1e-9)
	assert.InDelta(t, 51, bounds.Size().Z, 1e-9)
	assert.True(t, analysis.AnalyzeModel(r.Part.Model("hanger")).Watertight())
}

func TestCradleNeedsClearance(t *testing.T) {
	p := defaults(t)
	p.SpoolClearance = 10

	_, err := Main(p)
	assert.ErrorContains(t, err, "increase spool_clearance")
}

func TestClipX(t *testing.T) {
	square := solid.Rect(4, 2)

	right := clipX(square, 1, true)
	assert.InDelta(t, 2, right.SignedArea(), 1e-9)

	left := clipX(square, 1, false)
	assert.InDelta(t, 6, left.SignedArea(), 1e-9)
}
