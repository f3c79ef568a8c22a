package params

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subParams struct {
	Base
	C bool
}

type annotated struct {
	Base
	A int
	B float64
	C subParams
}

func names(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func TestFieldsDeclarationOrder(t *testing.T) {
	fields, err := Fields(reflect.TypeOf(annotated{}))
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, names(fields))
	assert.Equal(t, KindInt, fields[0].Kind)
	assert.Equal(t, KindFloat, fields[1].Kind)
	assert.Equal(t, KindSchema, fields[2].Kind)
	assert.Equal(t, reflect.TypeOf(subParams{}), fields[2].Type)
}

type Ancestor struct {
	Base
	Shared   float64
	Override int
}

type descendant struct {
	Ancestor
	Own      string
	Override bool
}

func TestFieldsMostDerivedWins(t *testing.T) {
	fields, err := Fields(reflect.TypeOf(&descendant{}))
	require.NoError(t, err)

	require.Equal(t, []string{"shared", "override", "own"}, names(fields))
	assert.Equal(t, KindBool, fields[1].Kind, "descendant declaration should win")
	assert.Equal(t, []int{2}, fields[1].Index)
	assert.Equal(t, []int{0, 1}, fields[0].Index, "inherited field is reached through the embedded ancestor")
}

type Left struct {
	Base
	X int
}

type Right struct {
	Base
	X float64
	Y float64
}

type diamond struct {
	Left
	Right
}

func TestFieldsEarlierAncestorWins(t *testing.T) {
	fields, err := Fields(reflect.TypeOf(diamond{}))
	require.NoError(t, err)

	require.Equal(t, []string{"x", "y"}, names(fields))
	assert.Equal(t, KindInt, fields[0].Kind)
}

type tagged struct {
	Base
	OuterR  float64 `param:"radius" help:"outer radius"`
	Skipped int     `param:"-"`
	hidden  int
}

func TestFieldsTags(t *testing.T) {
	fields, err := Fields(reflect.TypeOf(tagged{}))
	require.NoError(t, err)

	require.Equal(t, []string{"radius"}, names(fields))
	assert.Equal(t, "outer radius", fields[0].Usage)
}

func TestFieldsRejectsNonSchema(t *testing.T) {
	type plain struct{ A int }

	_, err := Fields(reflect.TypeOf(plain{}))
	require.ErrorIs(t, err, ErrSchema)
	assert.False(t, IsSchema(reflect.TypeOf(plain{})))
	assert.False(t, IsSchema(reflect.TypeOf(3)))
	assert.True(t, IsSchema(reflect.TypeOf(&descendant{})))
}

func TestFieldsRejectsUnsupportedTypes(t *testing.T) {
	type withPointer struct {
		Base
		Next *subParams
	}
	type withFloat32 struct {
		Base
		F float32
	}
	type withSlice struct {
		Base
		S []int
	}

	for _, typ := range []reflect.Type{
		reflect.TypeOf(withPointer{}),
		reflect.TypeOf(withFloat32{}),
		reflect.TypeOf(withSlice{}),
	} {
		_, err := Fields(typ)
		require.ErrorIs(t, err, ErrSchema, typ.String())
	}
}

func TestFieldsRejectsDuplicateNames(t *testing.T) {
	type dup struct {
		Base
		A int `param:"x"`
		B int `param:"x"`
	}

	_, err := Fields(reflect.TypeOf(dup{}))
	require.ErrorIs(t, err, ErrSchema)
}

type concealed struct {
	Base
	X int
}

func TestFieldsRejectsUnexportedAncestor(t *testing.T) {
	type withConcealed struct {
		concealed
		Y int
	}

	_, err := Fields(reflect.TypeOf(withConcealed{}))
	require.ErrorIs(t, err, ErrSchema)
}
