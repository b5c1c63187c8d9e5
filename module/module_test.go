package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameModuleNameRoundTrip(t *testing.T) {
	assert.Equal(t, "pkg.sub.mod", filenameToModuleName("pkg/sub/mod.mg"))
	assert.Equal(t, "pkg/sub/mod.mg", moduleNameToFilename("pkg.sub.mod"))
	assert.Equal(t, "mod", filenameToModuleName("mod.mg"))
}

type countingExecutor struct{ calls int }

func (e *countingExecutor) Execute(mod *Module) error {
	e.calls++
	return nil
}

func TestInstance_StaticModuleImportDoesNotExecute(t *testing.T) {
	inst := NewInstance("", "")
	exec := &countingExecutor{}
	inst.Executor = exec

	staticMod := newModule(inst, "math", "", true)
	inst.RegisterStatic("math", staticMod)

	mod, err := inst.Import("math")
	require.NoError(t, err)
	assert.Same(t, staticMod, mod)
	assert.Equal(t, 0, exec.calls, "static modules must never be executed by Import")
}

func TestInstance_ImportCachesByName(t *testing.T) {
	inst := NewInstance("", "")
	exec := &countingExecutor{}
	inst.Executor = exec
	// Pretend "m" was already loaded (as RunSource/loadDynamic would do).
	mod := inst.NewEmptyModule("m", "m.mg")
	inst.dynamic["m"] = mod

	got, err := inst.Import("m")
	require.NoError(t, err)
	assert.Same(t, mod, got)

	got2, err := inst.Import("m")
	require.NoError(t, err)
	assert.Same(t, got, got2)
}

func TestInstance_ImportNotFound(t *testing.T) {
	inst := NewInstance("", "")
	_, err := inst.Import("does.not.exist")
	require.Error(t, err)
}

func TestInstance_UniformsAppliedAtLoad(t *testing.T) {
	inst := NewInstance("", "")
	inst.Executor = &countingExecutor{}
	inst.SetUniform("scale", nil) // nil is fine here; we only check the key lands
	mod := inst.NewEmptyModule("m", "m.mg")
	inst.applyUniforms(mod)
	_, ok := mod.Globals().Get("scale")
	assert.True(t, ok)
}
