package eval

import (
	"io"
	"os"
	"testing"

	"github.com/modelgen-run/modelgen/geometry"
	"github.com/modelgen-run/modelgen/module"
	"github.com/modelgen-run/modelgen/stdlib"
	"github.com/modelgen-run/modelgen/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestInstance wires an Instance the way mg.New does: static
// base/math modules, a geometry sink, and this package's Evaluator as
// the module.Executor — the minimum an end-to-end program needs.
func newTestInstance() *module.Instance {
	inst := module.NewInstance("", "")
	base := stdlib.NewBaseModule(inst)
	inst.Base = base
	inst.RegisterStatic("base", base)
	inst.RegisterStatic("math", stdlib.NewMathModule(inst))
	inst.Sink = geometry.NewBuffer(geometry.Stride{Position: 3})
	inst.Executor = New(inst)
	return inst
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	fn()
	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func runOK(t *testing.T, src string) (string, *module.Instance) {
	t.Helper()
	inst := newTestInstance()
	var err error
	out := captureStdout(t, func() {
		_, err = inst.RunSource("main", "main.mg", src)
	})
	require.NoError(t, err)
	return out, inst
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	inst := newTestInstance()
	var err error
	captureStdout(t, func() {
		_, err = inst.RunSource("main", "main.mg", src)
	})
	return err
}

// TestEndToEnd covers each numbered scenario in spec §8.

func TestEndToEnd_ArithmeticPrecedence(t *testing.T) {
	out, _ := runOK(t, `print(1 + 2 * 3)`)
	assert.Equal(t, "7\n", out)
}

func TestEndToEnd_ForRangePrint(t *testing.T) {
	out, _ := runOK(t, "for i in range(3): print(i)")
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEndToEnd_ProcDefaultParam(t *testing.T) {
	out, _ := runOK(t, "proc add(a, b = 10): return a + b\nprint(add(1))")
	assert.Equal(t, "11\n", out)
}

func TestEndToEnd_ListLenNegativeIndex(t *testing.T) {
	out, _ := runOK(t, "xs = [3, 1, 2]\nprint(len(xs), xs[-1])")
	assert.Equal(t, "3 2\n", out)
}

func TestEndToEnd_MapMissingKeyIsNull(t *testing.T) {
	out, _ := runOK(t, "m = {\"a\": 1}\nprint(m[\"a\"], m[\"b\"])")
	assert.Equal(t, "1 null\n", out)
}

func TestEndToEnd_BodylessReturnIsNull(t *testing.T) {
	out, _ := runOK(t, "proc f(): return\nprint(f())")
	assert.Equal(t, "null\n", out)
}

// Additional evaluator-level properties from spec §8.

func TestEval_TruthValueConsistency(t *testing.T) {
	out, _ := runOK(t, `
xs = [0, 1, "", "x", [], [1], {}["missing"], {}]
for v in xs: print(bool(v))
`)
	assert.Equal(t, "0\n1\n0\n1\n0\n1\n0\n0\n", out)
}

func TestEval_DeepCopyIdempotenceAndIsolation(t *testing.T) {
	out, _ := runOK(t, `
a = [1, [2, 3]]
b = deep_copy(a)
print(a == b)
b[1][0] = 99
print(a[1][0], b[1][0])
`)
	assert.Equal(t, "1\n2 99\n", out)
}

func TestEval_ModuleCachingByReference(t *testing.T) {
	out, _ := runOK(t, `
a = import("math")
b = import("math")
print(a == b)
`)
	assert.Equal(t, "1\n", out)
}

func TestEval_BreakAndContinue(t *testing.T) {
	out, _ := runOK(t, `
for i in range(5): {
	if i == 3: break
	if i % 2 == 0: continue
	print(i)
}
`)
	assert.Equal(t, "1\n", out)
}

func TestEval_ReturnUnwindsThroughLoop(t *testing.T) {
	out, _ := runOK(t, `
proc firstEven(xs): {
	for x in xs: {
		if x % 2 == 0: return x
	}
	return -1
}
print(firstEven([1, 3, 4, 5]))
`)
	assert.Equal(t, "4\n", out)
}

func TestEval_ClosureCapturesDefiningScope(t *testing.T) {
	out, _ := runOK(t, `
proc makeAdder(n): {
	proc adder(x): return x + n
	return adder
}
add5 = makeAdder(5)
print(add5(10))
`)
	assert.Equal(t, "15\n", out)
}

func TestEval_CompoundAssignment(t *testing.T) {
	out, _ := runOK(t, `
x = 10
x += 5
x *= 2
print(x)
`)
	assert.Equal(t, "30\n", out)
}

func TestEval_UndefinedNameIsFatal(t *testing.T) {
	err := runErr(t, "print(doesNotExist)")
	require.Error(t, err)
}

func TestEval_TooManyArgumentsIsFatal(t *testing.T) {
	err := runErr(t, "proc f(a): return a\nf(1, 2)")
	require.Error(t, err)
}

func TestEval_MissingRequiredArgumentIsFatal(t *testing.T) {
	err := runErr(t, "proc f(a, b): return a + b\nf(1)")
	require.Error(t, err)
}

func TestEval_IntegerDivisionByZeroIsFatal(t *testing.T) {
	err := runErr(t, "x = 1 // 0")
	require.Error(t, err)
}

func TestEval_OutOfRangeIndexIsFatal(t *testing.T) {
	err := runErr(t, "xs = [1, 2]\nprint(xs[5])")
	require.Error(t, err)
}

func TestEval_NotCallableIsFatal(t *testing.T) {
	err := runErr(t, "x = 1\nx()")
	require.Error(t, err)
}

func TestEval_Emit(t *testing.T) {
	inst := newTestInstance()
	captureStdout(t, func() {
		_, err := inst.RunSource("main", "main.mg", "emit (1.0, 2.0, 3.0)\nemit [4.0, 5.0, 6.0]")
		require.NoError(t, err)
	})
	buf := inst.Sink.(*geometry.Buffer)
	assert.Equal(t, 2, buf.VertexCount())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, buf.Vertices())
}

func TestEval_EmitWrongArityIsFatal(t *testing.T) {
	err := runErr(t, "emit (1.0, 2.0)")
	require.Error(t, err)
}

func TestEval_AndOrReturnOperand(t *testing.T) {
	out, _ := runOK(t, `
print(0 and 5)
print(3 and 5)
print(0 or 5)
print(3 or 5)
`)
	assert.Equal(t, "0\n5\n5\n3\n", out)
}

// TestEval_RuntimeGlobalsAndLocals checks the Evaluator satisfies
// value.Runtime the way builtins expect to call it: once a run has
// finished and popped its frame, Globals and Locals both report nil.
func TestEval_RuntimeGlobalsAndLocals(t *testing.T) {
	inst := newTestInstance()
	ev := inst.Executor.(*Evaluator)
	var rt value.Runtime = ev
	_, mod := runtimeSnapshot(t, inst, ev)
	assert.Nil(t, rt.Globals()) // no frame active outside a run
	assert.Nil(t, rt.Locals())
	_ = mod
}

func runtimeSnapshot(t *testing.T, inst *module.Instance, ev *Evaluator) (string, *module.Module) {
	t.Helper()
	var mod *module.Module
	out := captureStdout(t, func() {
		m, err := inst.RunSource("m", "m.mg", "x = 1")
		require.NoError(t, err)
		mod = m
	})
	return out, mod
}
