package design

import (
	"errors"
	"testing"

	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/solid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testParams struct {
	params.Base
	Size float64
}

func testMain(p *testParams) Result {
	return Result{Part: solid.Box(p.Size, p.Size, p.Size)}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"whatever", "whatever.wherever", "ring", "led_ring2"} {
		assert.NoError(t, ValidateName(name), name)
	}

	tests := []struct {
		name    string
		message string
	}{
		{"what module", "invalid module name; may not contain spaces"},
		{"some._module", "invalid module name; may not import private modules"},
		{"some..module", "invalid module name; invalid import"},
		{"..module", "invalid module name; invalid import"},
		{"some.cool-module", "invalid module name; invalid import"},
		{"", "invalid module name; invalid import"},
		{"9lives", "invalid module name; invalid import"},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		require.ErrorIs(t, err, ErrInvalidName, tt.name)
		assert.EqualError(t, err, tt.message, tt.name)
	}
}

func TestCheckAcceptsVariadic(t *testing.T) {
	m := &Module{
		Name:   "variadic",
		Params: &testParams{Size: 1},
		Main: func(p *testParams, rest ...any) Result {
			return testMain(p)
		},
	}
	require.NoError(t, Check(m))
}

func TestCheckRequiresArgDefaults(t *testing.T) {
	m := &Module{
		Name:   "required",
		Params: &testParams{Size: 1},
		Main: func(p *testParams, requiredExtra float64) Result {
			return testMain(p)
		},
		Args: []Arg{{Name: "required_extra"}},
	}
	err := Check(m)
	require.ErrorIs(t, err, ErrContract)
	assert.Contains(t, err.Error(), "module may not contain args without defaults; found required_extra")

	m.Args = nil
	err = Check(m)
	require.ErrorIs(t, err, ErrContract)
	assert.Contains(t, err.Error(), "parameter 1 (float64)")

	m.Args = []Arg{{Name: "required_extra", Default: 2.0}}
	require.NoError(t, Check(m))
}

func TestCheckClauses(t *testing.T) {
	type notSchema struct{ Size float64 }

	tests := []struct {
		name    string
		module  Module
		message string
	}{
		{"no params", Module{Main: testMain}, "does not export Params"},
		{"params not pointer", Module{Params: testParams{}, Main: testMain}, "must be a pointer"},
		{"params not schema", Module{Params: &notSchema{}, Main: testMain}, "must be a pointer"},
		{"no main", Module{Params: &testParams{}}, "does not export a Main function"},
		{"main not func", Module{Params: &testParams{}, Main: 3}, "must be a function"},
		{"no parameters", Module{Params: &testParams{}, Main: func() Result { return Result{} }}, "at least one parameter"},
		{"wrong first", Module{Params: &testParams{}, Main: func(p testParams) Result { return Result{} }}, "as its first parameter"},
		{"no return", Module{Params: &testParams{}, Main: func(p *testParams) {}}, "must return a result"},
		{"error only", Module{Params: &testParams{}, Main: func(p *testParams) error { return nil }}, "must return a result"},
		{
			"bad default type",
			Module{
				Params: &testParams{},
				Main:   func(p *testParams, n int) Result { return Result{} },
				Args:   []Arg{{Name: "n", Default: "x"}},
			},
			"not assignable to int",
		},
		{
			"extra args",
			Module{Params: &testParams{}, Main: testMain, Args: []Arg{{Name: "n", Default: 1}}},
			"declares 1 args",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(&tt.module)
			require.ErrorIs(t, err, ErrContract)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCheckRejectsMalformedSchema(t *testing.T) {
	type badParams struct {
		params.Base
		Tags []string
	}
	err := Check(&Module{Params: &badParams{}, Main: func(p *badParams) Result { return Result{} }})
	require.ErrorIs(t, err, ErrContract)
	require.ErrorIs(t, err, params.ErrSchema)
}

func TestCallPassesArgDefaults(t *testing.T) {
	m := &Module{
		Name:   "args",
		Params: &testParams{Size: 2},
		Main: func(p *testParams, scale float64, names ...string) (Result, error) {
			return Result{Part: solid.Box(p.Size*scale, 1, 1), Name: names[0]}, nil
		},
		Args: []Arg{{Name: "scale", Default: 3.0}, {Name: "names", Default: "wide"}},
	}
	require.NoError(t, Check(m))

	out, err := m.Call(m.NewParams())
	require.NoError(t, err)
	res := out.(Result)
	assert.Equal(t, "wide", res.Name)
	assert.InDelta(t, 6.0, res.Part.Bounds().Size().X, 1e-9)
}

func TestCallReturnsMainError(t *testing.T) {
	boom := errors.New("boom")
	m := &Module{
		Params: &testParams{},
		Main:   func(p *testParams) (Result, error) { return Result{}, boom },
	}
	_, err := m.Call(m.NewParams())
	require.ErrorIs(t, err, boom)
}

func TestNewParamsCopiesPrototype(t *testing.T) {
	proto := &testParams{Size: 4}
	m := &Module{Params: proto}

	p := m.NewParams().(*testParams)
	p.Size = 9
	assert.Equal(t, 4.0, proto.Size)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(Module{Name: "cube", Doc: "A cube.\nMore text.", Params: &testParams{Size: 1}, Main: testMain})
	r.Register(Module{Name: "broken", Params: &testParams{}})

	assert.Equal(t, []string{"broken", "cube"}, r.Names())

	m, err := r.Lookup("cube")
	require.NoError(t, err)
	assert.Equal(t, "A cube.", m.Summary())

	_, err = r.Lookup("sphere")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = r.Lookup("broken")
	require.ErrorIs(t, err, ErrContract)

	_, err = r.Lookup("_private")
	require.ErrorIs(t, err, ErrInvalidName)

	assert.Panics(t, func() { r.Register(Module{Name: "cube"}) })
	assert.Panics(t, func() { r.Register(Module{Name: "bad name"}) })
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "top", Result{Name: "top"}.Label(3))
	assert.Equal(t, "3", Result{}.Label(3))
}
