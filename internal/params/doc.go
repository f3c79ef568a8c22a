// Package params turns parameter schema structs into command-line flags.
//
// A schema is a struct that embeds Base, directly or through another
// schema. Embedding a schema is inheritance: the embedded struct is an
// ancestor and its fields are merged into the embedding struct, with the
// most-derived declaration of a name winning. A named field whose type is
// itself a schema is nesting: its fields surface as flags prefixed with the
// field name.
//
// Leaf fields must be one of int, float64, bool or string. Each leaf is
// named by its `param` tag, or the snake_case form of the Go field name;
// `param:"-"` hides a field. A `help` tag becomes the flag usage text.
//
//	type Louvre struct {
//		params.Base
//		SlotWidth float64 `help:"width of one louvre slot"`
//	}
//
//	type Params struct {
//		params.Base
//		Louvre  Louvre
//		DowelR  float64 `param:"dowel_r"`
//		Mirror  bool
//	}
//
// derives --louvre_slot_width, --dowel_r and --mirror/--no-mirror.
package params
