package spheresander

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPocketHoldsSphere(t *testing.T) {
	p := &Params{SphereR: 10, Thickness: 2, Segments: 96}

	r, err := Main(p)
	require.NoError(t, err)

	size := r.Part.Bounds().Size()
	assert.InDelta(t, 24, size.X, 1e-9)
	assert.InDelta(t, 12, size.Z, 1e-9)

	// Box with rounded corners less the hemisphere.
	corners := (4 - math.Pi) * 5 * 5
	full := (24*24 - corners) * 12
	pocket := 2.0 / 3 * math.Pi * 1000
	assert.InDelta(t, full-pocket, r.Part.Volume(), 20)
}

func TestRejectsMissingWall(t *testing.T) {
	_, err := Main(&Params{SphereR: 10, Thickness: 0})
	assert.ErrorContains(t, err, "must be positive")
}
