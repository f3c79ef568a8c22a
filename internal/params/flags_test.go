package params

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type primitives struct {
	Base
	IntP   int
	FloatP float64
	BoolP  bool
	StrP   string
}

func defaultPrimitives() primitives {
	return primitives{IntP: 10, FloatP: 1.1, StrP: "x"}
}

func parse(t *testing.T, dest any, args ...string) {
	t.Helper()
	fs, _, err := NewFlagSet("test", dest)
	require.NoError(t, err)
	require.NoError(t, fs.Parse(args))
}

func TestPrimitivesDefaults(t *testing.T) {
	p := defaultPrimitives()
	parse(t, &p)

	assert.Equal(t, defaultPrimitives(), p)
}

func TestPrimitivesOverrides(t *testing.T) {
	p := defaultPrimitives()
	parse(t, &p, "--int_p", "11", "--float_p", "2.2", "--bool_p", "--str_p=y")

	assert.Equal(t, 11, p.IntP)
	assert.Equal(t, 2.2, p.FloatP)
	assert.True(t, p.BoolP)
	assert.Equal(t, "y", p.StrP)
}

type toggle struct {
	Base
	BoolP bool
}

func TestBoolInversion(t *testing.T) {
	p := toggle{BoolP: true}
	parse(t, &p, "--no-bool_p")
	assert.False(t, p.BoolP)

	p = toggle{BoolP: true}
	parse(t, &p)
	assert.True(t, p.BoolP, "omitting both flags keeps the default")

	p = toggle{}
	parse(t, &p, "--bool_p")
	assert.True(t, p.BoolP)
}

func TestLaterFlagsWin(t *testing.T) {
	p := toggle{BoolP: true}
	parse(t, &p, "--no-bool_p", "--bool_p")
	assert.True(t, p.BoolP)

	q := defaultPrimitives()
	parse(t, &q, "--int_p=1", "--int_p=2")
	assert.Equal(t, 2, q.IntP)
}

func TestIntRejectsFractions(t *testing.T) {
	p := defaultPrimitives()
	fs, _, err := NewFlagSet("test", &p)
	require.NoError(t, err)

	require.Error(t, fs.Parse([]string{"--int_p", "1.5"}))
	require.NoError(t, fs.Parse([]string{"--float_p", "3"}))
	assert.Equal(t, 3.0, p.FloatP)
}

type doubleNested struct {
	Base
	IntP   int
	FloatP float64
	BoolP  bool
}

type nested struct {
	Base
	Double doubleNested
}

type outer struct {
	Base
	IntP  int
	Nest  nested
	Other nested
}

func defaultOuter() outer {
	d := doubleNested{IntP: 10, FloatP: 1.1}
	return outer{IntP: 1, Nest: nested{Double: d}, Other: nested{Double: d}}
}

func TestNestedDefaults(t *testing.T) {
	p := defaultOuter()
	parse(t, &p)

	assert.Equal(t, defaultOuter(), p)
}

func TestNestedOverrides(t *testing.T) {
	p := defaultOuter()
	parse(t, &p,
		"--nest_double_int_p", "11",
		"--nest_double_float_p", "2.2",
		"--nest_double_bool_p",
	)

	assert.Equal(t, 11, p.Nest.Double.IntP)
	assert.Equal(t, 2.2, p.Nest.Double.FloatP)
	assert.True(t, p.Nest.Double.BoolP)
	assert.Equal(t, defaultOuter().Other, p.Other, "sibling nested schema must be untouched")
	assert.Equal(t, 1, p.IntP, "top-level field sharing a bare name must be untouched")
}

func TestDeriveFlagNames(t *testing.T) {
	flags, err := Derive(defaultOuter())
	require.NoError(t, err)

	got := map[string][]string{}
	for _, f := range flags {
		got[f.Name] = f.Path
	}
	expected := map[string][]string{
		"int_p":                {"int_p"},
		"nest_double_int_p":    {"nest", "double", "int_p"},
		"nest_double_float_p":  {"nest", "double", "float_p"},
		"nest_double_bool_p":   {"nest", "double", "bool_p"},
		"other_double_int_p":   {"other", "double", "int_p"},
		"other_double_float_p": {"other", "double", "float_p"},
		"other_double_bool_p":  {"other", "double", "bool_p"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("derived flags mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 10, flags[1].Default)
}

func TestDeriveRejectsCollisions(t *testing.T) {
	type inner struct {
		Base
		B int
	}
	type colliding struct {
		Base
		AB int `param:"a_b"`
		A  inner
	}

	_, err := Derive(colliding{})
	require.ErrorIs(t, err, ErrSchema)
}

func TestNewFlagSetRequiresPointer(t *testing.T) {
	_, _, err := NewFlagSet("test", defaultPrimitives())
	require.ErrorIs(t, err, ErrSchema)
}

type child struct {
	Ancestor
	Extra float64
}

func TestInheritedFlagsWriteThroughAncestor(t *testing.T) {
	p := child{Ancestor: Ancestor{Shared: 1, Override: 2}, Extra: 3}
	parse(t, &p, "--shared", "5", "--override", "7")

	assert.Equal(t, 5.0, p.Shared)
	assert.Equal(t, 7, p.Override)
	assert.Equal(t, 3.0, p.Extra)
}

func TestFlatten(t *testing.T) {
	flat, err := Flatten(&outer{IntP: 4, Nest: nested{Double: doubleNested{BoolP: true}}})
	require.NoError(t, err)

	assert.Equal(t, 4, flat["int_p"])
	assert.Equal(t, true, flat["nest.double.bool_p"])
	assert.Equal(t, 0.0, flat["other.double.float_p"])
	assert.Len(t, flat, 7)
}

func TestClone(t *testing.T) {
	proto := defaultOuter()
	c := Clone(&proto)
	c.Nest.Double.IntP = 99

	assert.Equal(t, 10, proto.Nest.Double.IntP)
}
