package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Params {
	return &Params{OuterR: 30, Thickness: 2.7, Height: 2.5, Segments: 64}
}

func TestDefaultRing(t *testing.T) {
	r, err := Main(defaults())
	require.NoError(t, err)

	assert.InDelta(t, 27.3, r.Locals["inner_r"], 1e-9)
	assert.InDelta(t, 2.5, r.Part.Bounds().Size().Z, 1e-9)
}

func TestRejectsFlatRing(t *testing.T) {
	p := defaults()
	p.Height = 0

	_, err := Main(p)
	assert.EqualError(t, err, "height 0 must be positive")
}

func TestRejectsSolidDisc(t *testing.T) {
	p := defaults()
	p.Thickness = 30

	_, err := Main(p)
	assert.EqualError(t, err, "thickness 30 leaves no hole in a ring of radius 30")
}
