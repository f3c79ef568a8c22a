package rollspooldowel

import (
	"testing"

	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInheritsHolderFlags(t *testing.T) {
	m, err := design.Lookup("roll_spool_dowel")
	require.NoError(t, err)

	flags, err := params.Derive(m.Params)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range flags {
		names[f.Name] = true
	}
	for _, name := range []string{"dowel_r", "cap_dowel", "louvre_slot_width", "dowel_length", "screw_r"} {
		assert.True(t, names[name], name)
	}
}

func TestCapShortensDowel(t *testing.T) {
	m, err := design.Lookup("roll_spool_dowel")
	require.NoError(t, err)

	p := m.NewParams().(*Params)
	open := Main(p)

	p.CapDowel = true
	capped := Main(p)

	assert.InDelta(t, p.MinThickness, open.Part.Bounds().Size().Z-capped.Part.Bounds().Size().Z, 1e-9)
	assert.InDelta(t, p.DowelLength-p.MinThickness, capped.Locals["length"], 1e-9)
}
