package params

import (
	"strings"
)

// Flatten returns every leaf value of a schema instance keyed by its
// dotted field path, e.g. "louvre.slot_width".
func Flatten(instance any) (map[string]any, error) {
	flags, err := Derive(instance)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(flags))
	for _, f := range flags {
		out[strings.Join(f.Path, ".")] = f.Default
	}
	return out, nil
}

// Clone returns a pointer to a copy of the schema value proto points to.
// Nested schemas are value fields, so the copy shares nothing with proto.
func Clone[T any](proto *T) *T {
	c := *proto
	return &c
}
