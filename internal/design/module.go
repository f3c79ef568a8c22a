package design

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/philipparndt/prints/internal/params"
)

// ErrContract reports a design module that does not satisfy the module
// contract.
var ErrContract = errors.New("invalid design module")

// Arg is a default for one of Main's parameters after the first. The
// command line never supplies these.
type Arg struct {
	Name    string
	Default any
}

// Module is a registered design.
type Module struct {
	Name string
	// Doc is shown in listings and help; its first line is the summary.
	Doc string
	// Params is a pointer to the parameter prototype. Its field values are
	// the defaults of every invocation.
	Params any
	// Main is the entry function: func(*P, ...) R or func(*P, ...) (R, error).
	Main any
	// Args supplies Main's remaining parameters, in order.
	Args []Arg
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Summary returns the first line of Doc.
func (m *Module) Summary() string {
	summary, _, _ := strings.Cut(strings.TrimSpace(m.Doc), "\n")
	return summary
}

// Check validates the module contract and reports the first clause that
// fails.
func Check(m *Module) error {
	if m == nil {
		return fmt.Errorf("%w: no module", ErrContract)
	}
	if m.Params == nil {
		return fmt.Errorf("%w: module %q does not export Params", ErrContract, m.Name)
	}

	pt := reflect.TypeOf(m.Params)
	if pt.Kind() != reflect.Pointer || pt.Elem().Kind() != reflect.Struct || !params.IsSchema(pt) {
		return fmt.Errorf("%w: module %q Params must be a pointer to a struct embedding params.Base, got %v",
			ErrContract, m.Name, pt)
	}
	if reflect.ValueOf(m.Params).IsNil() {
		return fmt.Errorf("%w: module %q Params is a nil %v", ErrContract, m.Name, pt)
	}
	if _, err := params.Derive(m.Params); err != nil {
		return fmt.Errorf("%w: module %q: %w", ErrContract, m.Name, err)
	}

	if m.Main == nil {
		return fmt.Errorf("%w: module %q does not export a Main function", ErrContract, m.Name)
	}
	ft := reflect.TypeOf(m.Main)
	if ft.Kind() != reflect.Func {
		return fmt.Errorf("%w: module %q Main must be a function, got %v", ErrContract, m.Name, ft)
	}
	if ft.NumIn() == 0 {
		return fmt.Errorf("%w: module %q Main must accept at least one parameter", ErrContract, m.Name)
	}
	if ft.In(0) != pt {
		return fmt.Errorf("%w: module %q Main must accept %v as its first parameter, got %v",
			ErrContract, m.Name, pt, ft.In(0))
	}

	if err := checkArgs(m, ft); err != nil {
		return err
	}

	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return fmt.Errorf("%w: module %q Main must return a result, optionally followed by an error", ErrContract, m.Name)
	}
	return nil
}

func checkArgs(m *Module, ft reflect.Type) error {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}

	var missing []string
	for i := 1; i < fixed; i++ {
		in := ft.In(i)
		if i-1 >= len(m.Args) {
			missing = append(missing, fmt.Sprintf("parameter %d (%v)", i, in))
			continue
		}
		arg := m.Args[i-1]
		if arg.Default == nil {
			missing = append(missing, arg.Name)
			continue
		}
		if dt := reflect.TypeOf(arg.Default); !dt.AssignableTo(in) {
			return fmt.Errorf("%w: module %q arg %s has a default of type %v, which is not assignable to %v",
				ErrContract, m.Name, arg.Name, dt, in)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: module may not contain args without defaults; found %s",
			ErrContract, strings.Join(missing, ", "))
	}

	extra := m.Args[min(len(m.Args), fixed-1):]
	if len(extra) == 0 {
		return nil
	}
	if !ft.IsVariadic() {
		return fmt.Errorf("%w: module %q declares %d args but Main accepts %d",
			ErrContract, m.Name, len(m.Args), fixed-1)
	}
	elem := ft.In(ft.NumIn() - 1).Elem()
	for _, arg := range extra {
		if arg.Default == nil || !reflect.TypeOf(arg.Default).AssignableTo(elem) {
			return fmt.Errorf("%w: module %q variadic arg %s must have a default assignable to %v",
				ErrContract, m.Name, arg.Name, elem)
		}
	}
	return nil
}

// NewParams returns a fresh copy of the parameter prototype.
func (m *Module) NewParams() any {
	proto := reflect.ValueOf(m.Params).Elem()
	fresh := reflect.New(proto.Type())
	fresh.Elem().Set(proto)
	return fresh.Interface()
}

// Call invokes Main with p and the declared Arg defaults. The module must
// have passed Check.
func (m *Module) Call(p any) (any, error) {
	in := make([]reflect.Value, 0, 1+len(m.Args))
	in = append(in, reflect.ValueOf(p))
	for _, arg := range m.Args {
		in = append(in, reflect.ValueOf(arg.Default))
	}

	out := reflect.ValueOf(m.Main).Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
