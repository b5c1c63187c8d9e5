package mg

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/modelgen-run/modelgen/geometry"
	"github.com/modelgen-run/modelgen/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestNew_DefaultStaticModulesAndSink(t *testing.T) {
	inst := New()
	_, ok := inst.ModuleInstance().LookupStatic("base")
	assert.True(t, ok)
	_, ok = inst.ModuleInstance().LookupStatic("math")
	assert.True(t, ok)
	assert.Equal(t, 0, inst.VertexCount())
}

func TestRunSource_PrintsAndReturnsNoError(t *testing.T) {
	inst := New()
	out := captureStdout(t, func() {
		err := inst.RunSource("main", "main.mg", `print(1 + 2)`)
		require.NoError(t, err)
	})
	assert.Equal(t, "3\n", out)
}

func TestRunSource_PropagatesRuntimeError(t *testing.T) {
	inst := New()
	var err error
	captureStdout(t, func() {
		err = inst.RunSource("main", "main.mg", `print(doesNotExist)`)
	})
	require.Error(t, err)
}

func TestRunReader_RunsFromAnIoReader(t *testing.T) {
	inst := New()
	out := captureStdout(t, func() {
		err := inst.RunReader("main", "main.mg", strings.NewReader(`print("hi")`))
		require.NoError(t, err)
	})
	assert.Equal(t, "hi\n", out)
}

func TestBeginSessionEval_AccumulatesStateAcrossCalls(t *testing.T) {
	inst := New()
	end := inst.BeginSession("repl")
	defer end()

	_, err := inst.Eval("x = 1")
	require.NoError(t, err)
	v, err := inst.Eval("x + 41")
	require.NoError(t, err)
	assert.Equal(t, value.Int{V: 42}, v)
}

func TestEval_WithoutASessionPanicsOnAssignment(t *testing.T) {
	inst := New()
	assert.Panics(t, func() {
		_, _ = inst.Eval("x = 1")
	})
}

func TestRegisterFunctionAndValue_VisibleFromScript(t *testing.T) {
	inst := New()
	inst.RegisterFunction("double", func(rt value.Runtime, args []value.Value) (value.Value, error) {
		n := args[0].(value.Int)
		return value.Int{V: n.V * 2}, nil
	})
	inst.RegisterValue("answer", value.Int{V: 42})

	out := captureStdout(t, func() {
		err := inst.RunSource("main", "main.mg", `print(double(10), answer)`)
		require.NoError(t, err)
	})
	assert.Equal(t, "20 42\n", out)
}

func TestSetSinkAndEmit_RecordsEmittedVertices(t *testing.T) {
	inst := New()
	inst.SetStride(geometry.Stride{Position: 3})

	captureStdout(t, func() {
		err := inst.RunSource("main", "main.mg", "emit (1.0, 2.0, 3.0)")
		require.NoError(t, err)
	})
	assert.Equal(t, 1, inst.VertexCount())
	assert.Equal(t, []float32{1, 2, 3}, inst.Vertices())
}

func TestImport_ReturnsTheSameModuleValueOnRepeatedCalls(t *testing.T) {
	inst := New()
	a, err := inst.Import("math")
	require.NoError(t, err)
	b, err := inst.Import("math")
	require.NoError(t, err)
	assert.True(t, value.Equal(a, b))
}

func TestAddAndRemoveSearchPath(t *testing.T) {
	inst := New()
	before := len(inst.ModuleInstance().SearchPath)
	inst.AddSearchPath("/tmp/modelgen-test-modules")
	assert.Len(t, inst.ModuleInstance().SearchPath, before+1)
	inst.RemoveSearchPath("/tmp/modelgen-test-modules")
	assert.Len(t, inst.ModuleInstance().SearchPath, before)
}
