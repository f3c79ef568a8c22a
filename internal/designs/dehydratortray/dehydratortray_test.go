package dehydratortray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Params {
	return &Params{
		Width: 140, Depth: 140, Height: 15, Thickness: 1.5,
		GridSpacing: 2, GridNumX: 4, GridNumY: 5,
		ScrewD: 3.2, InnerOffset: 1, Inner: true, Segments: 32,
	}
}

func TestInnerFitsInsideOuter(t *testing.T) {
	p := defaults()
	in, err := Main(p)
	require.NoError(t, err)
	assert.Equal(t, "inner", in.Name)

	p.Inner = false
	out, err := Main(p)
	require.NoError(t, err)
	assert.Equal(t, "outer", out.Name)

	inSize, outSize := in.Part.Bounds().Size(), out.Part.Bounds().Size()
	assert.InDelta(t, 140, outSize.X, 1e-6)
	assert.InDelta(t, 15, outSize.Z, 1e-6)
	assert.InDelta(t, 140-2*1.5-1, inSize.X, 1e-6)
	assert.Less(t, inSize.Z, outSize.Z)
}

func TestOuterRejectsDegenerateGrid(t *testing.T) {
	p := defaults()
	p.Inner = false
	p.GridNumX = 0
	_, err := Main(p)
	require.Error(t, err)

	p.GridNumX = 4
	p.GridSpacing = 50
	_, err = Main(p)
	require.Error(t, err)
}
