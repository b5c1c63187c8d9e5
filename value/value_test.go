package value

import (
	"testing"

	"github.com/modelgen-run/modelgen/lexer"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null, false},
		{NewInt(0), false},
		{NewInt(1), true},
		{NewFloat(0), false},
		{NewFloat(0.5), true},
		{NewString(""), false},
		{NewString("x"), true},
		{NewTuple(), false},
		{NewTuple(NewInt(1)), true},
		{NewList(), false},
		{NewList(NewInt(1)), true},
		{NewMap(), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Truthy(c.v), "Truthy(%v)", ToString(c.v))
	}

	m := NewMap()
	m.Set("a", NewInt(1))
	assert.True(t, Truthy(m))
}

func TestEqual_MixedNumeric(t *testing.T) {
	assert.True(t, Equal(NewInt(2), NewFloat(2.0)))
	assert.False(t, Equal(NewInt(2), NewFloat(2.1)))
}

func TestEqual_DeepContainers(t *testing.T) {
	a := NewList(NewInt(1), NewTuple(NewString("x")))
	b := NewList(NewInt(1), NewTuple(NewString("x")))
	assert.True(t, Equal(a, b))
}

func TestEqual_MapUnordered(t *testing.T) {
	a := NewMap()
	a.Set("x", NewInt(1))
	a.Set("y", NewInt(2))
	b := NewMap()
	b.Set("y", NewInt(2))
	b.Set("x", NewInt(1))
	assert.True(t, Equal(a, b))
}

func TestEqual_FunctionIdentity(t *testing.T) {
	// Functions compare by AST-node identity, so each gets its own node.
	f1 := NewFunction("f", &parser.Node{Kind: parser.KProc}, nil, nil, false)
	f2 := NewFunction("f", &parser.Node{Kind: parser.KProc}, nil, nil, false)
	assert.False(t, Equal(f1, f2))
	assert.True(t, Equal(f1, f1))
}

func TestDeepCopy_Idempotent(t *testing.T) {
	orig := NewList(NewInt(1), NewMap())
	cp := Copy(orig, true)
	assert.True(t, Equal(orig, cp))

	// mutating the copy must not affect the original
	cpList := cp.(*List)
	cpList.Elems[0] = NewInt(99)
	assert.False(t, Equal(orig, cp))
}

func TestBinary_StringConcatAndRepeat(t *testing.T) {
	r, err := Binary(lexer.PLUS, NewString("ab"), NewString("cd"))
	require.NoError(t, err)
	assert.Equal(t, "abcd", r.(String).V)

	r, err = Binary(lexer.STAR, NewString("ab"), NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "ababab", r.(String).V)
}

func TestBinary_ListConcatAndRepeat(t *testing.T) {
	r, err := Binary(lexer.PLUS, NewList(NewInt(1)), NewList(NewInt(2)))
	require.NoError(t, err)
	assert.Len(t, r.(*List).Elems, 2)

	r, err = Binary(lexer.STAR, NewTuple(NewInt(1), NewInt(2)), NewInt(2))
	require.NoError(t, err)
	assert.Len(t, r.(*Tuple).Elems, 4)
}

func TestBinary_DivisionAndFloorDivision(t *testing.T) {
	r, err := Binary(lexer.SLASH, NewInt(7), NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, KFloat, r.Kind())

	r, err = Binary(lexer.DSLASH, NewInt(7), NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int32(3), r.(Int).V)

	_, err = Binary(lexer.DSLASH, NewInt(1), NewInt(0))
	require.Error(t, err)
}

func TestBinary_ModuloFloatFmod(t *testing.T) {
	r, err := Binary(lexer.PERCENT, NewFloat(5.5), NewFloat(2))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, float64(r.(Float).V), 1e-5)
}

func TestGetIndex_NegativeAndOutOfRange(t *testing.T) {
	l := NewList(NewInt(1), NewInt(2), NewInt(3))
	v, err := GetIndex(l, NewInt(-1))
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.(Int).V)

	_, err = GetIndex(l, NewInt(5))
	require.Error(t, err)
}

func TestGetIndex_MapMissingKeyYieldsNull(t *testing.T) {
	m := NewMap()
	m.Set("a", NewInt(1))
	v, err := GetIndex(m, NewString("b"))
	require.NoError(t, err)
	assert.Equal(t, Null, v)
}

func TestRefCounting(t *testing.T) {
	l := NewList(NewInt(1))
	rc := l.(*List)
	assert.Equal(t, int32(1), rc.RefCount())
	Reference(l)
	assert.Equal(t, int32(2), rc.RefCount())
	Destroy(l)
	assert.Equal(t, int32(1), rc.RefCount())
}
