package params

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/pflag"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrPreset reports an unreadable or inapplicable preset file.
var ErrPreset = errors.New("invalid preset")

// Preset is a tree of parameter values loaded from a file. Nested maps
// address nested schemas.
type Preset map[string]any

// LoadPreset reads a YAML (.yaml, .yml, .json) or HCL (.hcl) preset file.
func LoadPreset(path string) (Preset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return loadYAML(path)
	case ".hcl":
		return loadHCL(path)
	}
	return nil, fmt.Errorf("%w: %s: unknown preset type (want .yaml, .yml, .json or .hcl)", ErrPreset, path)
}

func loadYAML(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPreset, err)
	}
	preset := Preset{}
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPreset, path, err)
	}
	return preset, nil
}

func loadHCL(path string) (Preset, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrPreset, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrPreset, diags.Error())
	}

	preset := Preset{}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: %s", ErrPreset, diags.Error())
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: attribute %q: %w", ErrPreset, path, name, err)
		}
		preset[name] = native
	}
	return preset, nil
}

// ctyToNative converts an evaluated HCL value into plain Go values.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number: %w", err)
		}
		return f, nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty.IsObjectType() || ty.IsMapType():
		out := map[string]any{}
		it := v.ElementIterator()
		for it.Next() {
			key, val := it.Element()
			native, err := ctyToNative(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			out[key.AsString()] = native
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

// Leaves flattens the preset into flag names (path joined by "_") and
// command-line renderings of the values, sorted by name.
func (p Preset) Leaves() ([][2]string, error) {
	var out [][2]string
	if err := p.leaves(nil, &out); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out, nil
}

func (p Preset) leaves(prefix []string, out *[][2]string) error {
	for key, raw := range p {
		switch v := raw.(type) {
		case map[string]any:
			if err := Preset(v).leaves(append(prefix, key), out); err != nil {
				return err
			}
		case Preset:
			if err := v.leaves(append(prefix, key), out); err != nil {
				return err
			}
		case string, bool, float64, float32, int, int64, uint64:
			*out = append(*out, [2]string{JoinPrefix(prefix, key), presetString(v)})
		default:
			return fmt.Errorf("%w: %s has unsupported value %v (%T)", ErrPreset, JoinPrefix(prefix, key), raw, raw)
		}
	}
	return nil
}

func presetString(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}
	return FormatValue(v)
}

// Apply sets every preset value through the flag set, so values are parsed
// with each field's declared kind. Explicit flags parsed afterwards
// override the preset.
func (p Preset) Apply(fs *pflag.FlagSet) error {
	leaves, err := p.Leaves()
	if err != nil {
		return err
	}
	for _, leaf := range leaves {
		name, value := leaf[0], leaf[1]
		if fs.Lookup(name) == nil || strings.HasPrefix(name, "no-") {
			return fmt.Errorf("%w: unknown parameter %q", ErrPreset, name)
		}
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPreset, name, err)
		}
	}
	return nil
}
