// Package units holds lengths and hardware sizes shared by designs. All
// lengths are millimetres.
package units

import (
	"math"

	"github.com/philipparndt/prints/internal/params"
)

const (
	MM = 1.0
	CM = 10 * MM
	IN = 25.4 * MM
)

// ThreadedInsert describes a heat-set threaded insert and the material it
// needs around it.
type ThreadedInsert struct {
	params.Base
	Diameter float64 `help:"hole diameter for the insert"`
	Depth    float64 `help:"minimum hole depth"`
	Wall     float64 `help:"minimum wall around the hole"`
}

// Common inserts, named by thread and length.
var (
	M3x3_0 = ThreadedInsert{Diameter: 4, Depth: 4, Wall: 1.6}
	M3x5_7 = ThreadedInsert{Diameter: 4, Depth: 6.7, Wall: 1.6}
	M4x4_0 = ThreadedInsert{Diameter: 5.6, Depth: 5, Wall: 2.1}
	M4x8_1 = ThreadedInsert{Diameter: 5.6, Depth: 9.1, Wall: 2.1}
	M5x5_8 = ThreadedInsert{Diameter: 6.4, Depth: 6.8, Wall: 2.1}
	M5x9_5 = ThreadedInsert{Diameter: 6.4, Depth: 10.5, Wall: 2.6}
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
