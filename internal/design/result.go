package design

import (
	"strconv"

	"github.com/philipparndt/prints/pkg/solid"
)

// Result is one generated part.
type Result struct {
	Part *solid.Solid
	// Name labels the part in file names and viewer tabs. Empty means the
	// part is identified by its position.
	Name string
	// Locals holds named intermediate values for inspection.
	Locals map[string]any
}

// Label returns the result's name, or its index when it has none.
func (r Result) Label(index int) string {
	if r.Name != "" {
		return r.Name
	}
	return strconv.Itoa(index)
}
