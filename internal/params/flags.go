package params

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag is one derived command-line flag: where its value is stored and what
// it defaults to.
type Flag struct {
	// Name is the flag name without dashes: the path joined by "_".
	Name string
	// Path is the chain of schema field names from the root schema.
	Path    []string
	Index   []int
	Kind    Kind
	Default any
	Usage   string
}

// JoinPrefix joins a prefix path and a field name the way flag names are
// built; an empty prefix leaves the name alone.
func JoinPrefix(prefix []string, name string) string {
	if len(prefix) == 0 {
		return name
	}
	return strings.Join(prefix, "_") + "_" + name
}

// Derive walks a schema recursively and returns one Flag per leaf field.
// proto supplies the defaults; it may be a schema value or a pointer to
// one.
func Derive(proto any) ([]Flag, error) {
	root := reflect.ValueOf(proto)
	for root.Kind() == reflect.Pointer {
		if root.IsNil() {
			return nil, fmt.Errorf("%w: nil %v", ErrSchema, root.Type())
		}
		root = root.Elem()
	}
	if !root.IsValid() {
		return nil, fmt.Errorf("%w: no schema given", ErrSchema)
	}

	var flags []Flag
	if err := derive(root, root.Type(), nil, nil, &flags); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	for _, f := range flags {
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: more than one field derives the flag --%s", ErrSchema, f.Name)
		}
		seen[f.Name] = true
	}
	return flags, nil
}

func derive(root reflect.Value, t reflect.Type, prefix []string, index []int, out *[]Flag) error {
	fields, err := Fields(t)
	if err != nil {
		return err
	}
	for _, f := range fields {
		fullIndex := append(slices.Clone(index), f.Index...)
		if f.Kind == KindSchema {
			if err := derive(root, f.Type, append(slices.Clone(prefix), f.Name), fullIndex, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, Flag{
			Name:    JoinPrefix(prefix, f.Name),
			Path:    append(slices.Clone(prefix), f.Name),
			Index:   fullIndex,
			Kind:    f.Kind,
			Default: root.FieldByIndex(fullIndex).Interface(),
			Usage:   f.Usage,
		})
	}
	return nil
}

// fieldValue is a pflag.Value that writes into one leaf of a destination
// schema instance, descending the field path on every access.
type fieldValue struct {
	root reflect.Value
	flag Flag
}

func (v *fieldValue) target() reflect.Value {
	dst := v.root
	for _, i := range v.flag.Index {
		dst = dst.Field(i)
	}
	return dst
}

func (v *fieldValue) String() string {
	if !v.root.IsValid() {
		return ""
	}
	return FormatValue(v.target().Interface())
}

func (v *fieldValue) Set(s string) error {
	dst := v.target()
	switch v.flag.Kind {
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", s)
		}
		dst.SetBool(b)
	case KindInt:
		n, err := strconv.ParseInt(s, 10, 0)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", s)
		}
		dst.SetInt(n)
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("expected a number, got %q", s)
		}
		dst.SetFloat(f)
	case KindString:
		dst.SetString(s)
	default:
		return fmt.Errorf("flag --%s has no settable kind", v.flag.Name)
	}
	return nil
}

func (v *fieldValue) Type() string {
	return v.flag.Kind.String()
}

// negatedValue backs the --no-<name> half of a boolean pair.
type negatedValue struct {
	inner *fieldValue
}

func (v *negatedValue) String() string {
	if !v.inner.root.IsValid() {
		return ""
	}
	return strconv.FormatBool(!v.inner.target().Bool())
}

func (v *negatedValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("expected a boolean, got %q", s)
	}
	v.inner.target().SetBool(!b)
	return nil
}

func (v *negatedValue) Type() string {
	return "bool"
}

// NewFlagSet derives the flags of dest's schema and binds them to dest,
// which must be a non-nil pointer to a schema struct. The values already in
// dest are the defaults.
func NewFlagSet(name string, dest any) (*pflag.FlagSet, []Flag, error) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("%w: destination must be a non-nil pointer to a schema struct, got %T", ErrSchema, dest)
	}

	flags, err := Derive(dest)
	if err != nil {
		return nil, nil, err
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	root := rv.Elem()
	for _, f := range flags {
		value := &fieldValue{root: root, flag: f}
		pf := fs.VarPF(value, f.Name, "", f.Usage)
		if f.Kind != KindBool {
			continue
		}
		pf.NoOptDefVal = "true"

		usage := "disable --" + f.Name
		neg := fs.VarPF(&negatedValue{inner: value}, "no-"+f.Name, "", usage)
		neg.NoOptDefVal = "true"
		neg.DefValue = "false"
	}
	return fs, flags, nil
}

// FormatValue renders a leaf value the way it would be typed on the
// command line.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	}
	return fmt.Sprint(v)
}
