// Package all links every design module into the binary.
package all

import (
	_ "github.com/philipparndt/prints/internal/designs/benchleghanger"
	_ "github.com/philipparndt/prints/internal/designs/cordclamp"
	_ "github.com/philipparndt/prints/internal/designs/dehydratortray"
	_ "github.com/philipparndt/prints/internal/designs/excalibur"
	_ "github.com/philipparndt/prints/internal/designs/ledring"
	_ "github.com/philipparndt/prints/internal/designs/ring"
	_ "github.com/philipparndt/prints/internal/designs/rollspool"
	_ "github.com/philipparndt/prints/internal/designs/rollspooldowel"
	_ "github.com/philipparndt/prints/internal/designs/sonosfoot"
	_ "github.com/philipparndt/prints/internal/designs/sonosstand"
	_ "github.com/philipparndt/prints/internal/designs/spheresander"
	_ "github.com/philipparndt/prints/internal/designs/telescopingbox"
)
