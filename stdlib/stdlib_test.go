package stdlib

import (
	"testing"

	"github.com/modelgen-run/modelgen/module"
	"github.com/modelgen-run/modelgen/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct {
	globals *value.Map
}

func (f *fakeRuntime) Call(fn value.Value, args []value.Value) (value.Value, error) {
	cf := fn.(*value.CFunction)
	return cf.Fn(f, args)
}
func (f *fakeRuntime) Globals() *value.Map                     { return f.globals }
func (f *fakeRuntime) Locals() *value.Map                      { return f.globals }
func (f *fakeRuntime) Traceback() []string                     { return nil }
func (f *fakeRuntime) Import(name string) (value.Value, error) { return value.Null, nil }
func (f *fakeRuntime) Eval(src string) (value.Value, error)    { return value.Null, nil }

func call(t *testing.T, g *value.Map, name string, args ...value.Value) value.Value {
	t.Helper()
	fn, ok := g.Get(name)
	require.True(t, ok, "builtin %q not registered", name)
	rt := &fakeRuntime{globals: g}
	v, err := rt.Call(fn, args)
	require.NoError(t, err)
	return v
}

func newBase(t *testing.T) *value.Map {
	inst := module.NewInstance("", "")
	mod := NewBaseModule(inst)
	return mod.Globals()
}

func TestLen(t *testing.T) {
	g := newBase(t)
	v := call(t, g, "len", value.NewList(value.NewInt(1), value.NewInt(2)))
	assert.Equal(t, int32(2), v.(value.Int).V)
}

func TestRange_ThreeArgs(t *testing.T) {
	g := newBase(t)
	v := call(t, g, "range", value.NewInt(0), value.NewInt(10), value.NewInt(3))
	elems := v.(*value.List).Elems
	want := []int32{0, 3, 6, 9}
	require.Len(t, elems, len(want))
	for i, w := range want {
		assert.Equal(t, w, elems[i].(value.Int).V)
	}
}

func TestRange_DisagreeingSignIsEmpty(t *testing.T) {
	g := newBase(t)
	v := call(t, g, "range", value.NewInt(0), value.NewInt(5), value.NewInt(-1))
	assert.Len(t, v.(*value.List).Elems, 0)
}

func TestRange_StepZeroIsFatal(t *testing.T) {
	g := newBase(t)
	fn, _ := g.Get("range")
	rt := &fakeRuntime{globals: g}
	_, err := rt.Call(fn, []value.Value{value.NewInt(0), value.NewInt(5), value.NewInt(0)})
	require.Error(t, err)
}

func TestFilter(t *testing.T) {
	g := newBase(t)
	isPos := value.NewCFunction("ispos", func(rt value.Runtime, args []value.Value) (value.Value, error) {
		return value.NewInt(int32(boolToInt(args[0].(value.Int).V > 0))), nil
	})
	v := call(t, g, "filter", isPos, value.NewList(value.NewInt(-1), value.NewInt(2), value.NewInt(3)))
	assert.Len(t, v.(*value.List).Elems, 2)
}

func TestEnumerateAndZip(t *testing.T) {
	g := newBase(t)
	v := call(t, g, "enumerate", value.NewList(value.NewString("a"), value.NewString("b")))
	elems := v.(*value.List).Elems
	require.Len(t, elems, 2)
	pair := elems[0].(*value.Tuple)
	assert.Equal(t, int32(0), pair.Elems[0].(value.Int).V)

	z := call(t, g, "zip", value.NewList(value.NewInt(1), value.NewInt(2)), value.NewList(value.NewInt(3)))
	assert.Len(t, z.(*value.List).Elems, 1)
}

func TestDeepCopyIndependence(t *testing.T) {
	g := newBase(t)
	orig := value.NewList(value.NewInt(1))
	cp := call(t, g, "deep_copy", orig)
	cp.(*value.List).Elems[0] = value.NewInt(99)
	assert.Equal(t, int32(1), orig.(*value.List).Elems[0].(value.Int).V)
}

func TestMathSqrtAndPow(t *testing.T) {
	inst := module.NewInstance("", "")
	mod := NewMathModule(inst)
	g := mod.Globals()
	v := call(t, g, "sqrt", value.NewFloat(16))
	assert.InDelta(t, 4.0, float64(v.(value.Float).V), 1e-5)

	p := call(t, g, "pow", value.NewInt(2), value.NewInt(10))
	assert.Equal(t, int32(1024), p.(value.Int).V)
}
