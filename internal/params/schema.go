package params

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/iancoleman/strcase"
)

// ErrSchema reports a malformed parameter schema.
var ErrSchema = errors.New("invalid parameter schema")

// Base marks a struct as a parameter schema. Embed it by value.
type Base struct{}

var baseType = reflect.TypeOf(Base{})

// Kind is the admissible type of a schema field.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindString:
		return "string"
	case KindSchema:
		return "schema"
	}
	return "invalid"
}

// Field is one entry of a schema's merged field list.
type Field struct {
	// Name is the schema-level name, used as a flag path segment.
	Name   string
	GoName string
	// Index is the reflect field index path from the schema struct,
	// including hops through embedded ancestors.
	Index []int
	Type  reflect.Type
	Kind  Kind
	Usage string
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IsSchema reports whether t (or the type t points to) embeds Base,
// directly or through an embedded ancestor schema.
func IsSchema(t reflect.Type) bool {
	t = indirect(t)
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}
	if t == baseType {
		return true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && IsSchema(f.Type) {
			return true
		}
	}
	return false
}

func kindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Struct:
		if IsSchema(t) {
			return KindSchema
		}
	}
	return KindInvalid
}

// Fields returns the merged, ordered field list of a schema type.
//
// Ancestor fields come first, in embedding and declaration order, followed
// by the struct's own fields. A field overrides any ancestor field with the
// same name and takes over its position. Between two ancestors the earlier
// embedding wins.
func Fields(t reflect.Type) ([]Field, error) {
	t = indirect(t)
	if !IsSchema(t) {
		return nil, fmt.Errorf("%w: %v does not embed params.Base", ErrSchema, t)
	}
	return collect(t, nil)
}

func collect(t reflect.Type, prefix []int) ([]Field, error) {
	var out []Field
	position := map[string]int{}

	put := func(f Field, override bool) {
		if i, ok := position[f.Name]; ok {
			if override {
				out[i] = f
			}
			return
		}
		position[f.Name] = len(out)
		out = append(out, f)
	}

	var own []Field
	ownNames := map[string]string{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(slices.Clone(prefix), i)

		if sf.Anonymous {
			if sf.Type == baseType {
				continue
			}
			if sf.Type.Kind() != reflect.Struct || !IsSchema(sf.Type) {
				return nil, fmt.Errorf("%w: %v embeds %v, which is not a parameter schema", ErrSchema, t, sf.Type)
			}
			if !sf.IsExported() {
				return nil, fmt.Errorf("%w: %v embeds unexported schema %v; its fields could not be set", ErrSchema, t, sf.Type)
			}
			inherited, err := collect(sf.Type, index)
			if err != nil {
				return nil, err
			}
			for _, f := range inherited {
				put(f, false)
			}
			continue
		}

		if !sf.IsExported() {
			continue
		}
		name := sf.Tag.Get("param")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToSnake(sf.Name)
		}
		if prev, dup := ownNames[name]; dup {
			return nil, fmt.Errorf("%w: %v fields %s and %s are both named %q", ErrSchema, t, prev, sf.Name, name)
		}
		ownNames[name] = sf.Name

		kind := kindOf(sf.Type)
		if kind == KindInvalid {
			return nil, fmt.Errorf("%w: field %v.%s has unsupported type %v (want int, float64, bool, string or a schema)",
				ErrSchema, t, sf.Name, sf.Type)
		}
		own = append(own, Field{
			Name:   name,
			GoName: sf.Name,
			Index:  index,
			Type:   sf.Type,
			Kind:   kind,
			Usage:  sf.Tag.Get("help"),
		})
	}

	for _, f := range own {
		put(f, true)
	}
	return out, nil
}
