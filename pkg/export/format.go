// Package export writes triangle models to mesh and CAD interchange files.
package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/philipparndt/prints/pkg/stl"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format selects an output file type.
type Format string

const (
	Format3MF  Format = "3mf"
	FormatSTL  Format = "stl"
	FormatSTEP Format = "step"
)

// Formats lists every supported format, default first.
var Formats = []Format{Format3MF, FormatSTEP, FormatSTL}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(name, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Extension returns the file extension, including the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// String implements pflag.Value.
func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Metadata travels with an export. Formats that cannot carry it ignore it.
type Metadata struct {
	Title       string
	Application string
	// Params holds the flattened parameter values, keyed by dotted path.
	Params map[string]any
}

// paramLines renders Params as sorted key=value lines.
func (m Metadata) paramLines() []string {
	keys := make([]string, 0, len(m.Params))
	for k := range m.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%v", k, m.Params[k]))
	}
	return lines
}

// Write encodes model in the given format.
func Write(w io.Writer, f Format, model *stl.Model, meta Metadata) error {
	switch f {
	case Format3MF:
		return Write3MF(w, model, meta)
	case FormatSTL:
		return stl.WriteBinary(w, model)
	case FormatSTEP:
		return WriteSTEP(w, model, meta)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}
