// Package mg is ModelGen's embedding API (spec §6): the host-facing
// surface for creating an instance, running or importing source,
// registering host functions/values, and reading back the emitted
// vertex buffer. It wires module.Instance and eval.Evaluator together
// the way the embedder must — eval/module never do this themselves,
// per module.Executor's documented dependency direction.
//
// Grounded on the teacher's main.go/executeFileWithRecovery pipeline
// (parse -> check errors -> evaluate -> report) turned into returned
// errors instead of os.Exit, since a library must not terminate its
// host process; the CLI in cmd/modelgen is what turns these errors
// into exit codes.
package mg

import (
	"fmt"
	"io"
	"os"

	"github.com/modelgen-run/modelgen/eval"
	"github.com/modelgen-run/modelgen/frame"
	"github.com/modelgen-run/modelgen/geometry"
	"github.com/modelgen-run/modelgen/internal/source"
	"github.com/modelgen-run/modelgen/module"
	"github.com/modelgen-run/modelgen/stdlib"
	"github.com/modelgen-run/modelgen/value"
)

// Instance is one embeddable ModelGen host (spec §3.4/§6). It owns a
// module.Instance, wires the tree-walking Evaluator as its executor,
// and carries the default static modules (base, math).
type Instance struct {
	mod *module.Instance
	ev  *eval.Evaluator
}

// New constructs an Instance with the default search path (cwd, the
// directory of the running executable, and its sibling "modules/"),
// the base and math static modules registered, and a default
// position-only vertex sink — spec §4.5's minimum runnable instance.
func New() *Instance {
	wd, _ := os.Getwd()
	exe, _ := os.Executable()

	mi := module.NewInstance(wd, exe)
	base := stdlib.NewBaseModule(mi)
	mi.Base = base
	mi.RegisterStatic("base", base)
	mi.RegisterStatic("math", stdlib.NewMathModule(mi))
	mi.Sink = geometry.NewBuffer(geometry.Stride{Position: 3})

	ev := eval.New(mi)
	mi.Executor = ev

	return &Instance{mod: mi, ev: ev}
}

// AddSearchPath appends dir to the end of the module search order.
func (i *Instance) AddSearchPath(dir string) { i.mod.AddSearchPath(dir) }

// RemoveSearchPath removes dir from the search order, if present.
func (i *Instance) RemoveSearchPath(dir string) { i.mod.RemoveSearchPath(dir) }

// SetUniform injects key/value into every subsequently loaded module's
// globals at load time (spec §3.4/§6).
func (i *Instance) SetUniform(key string, v value.Value) { i.mod.SetUniform(key, v) }

// SetStride reconfigures the default vertex sink's stride. Callers that
// need a non-default Sink implementation should use SetSink instead.
func (i *Instance) SetStride(stride geometry.Stride) { i.mod.Sink = geometry.NewBuffer(stride) }

// SetSink replaces the instance's geometry sink outright, letting a host
// stream emitted vertices somewhere other than the default in-memory
// buffer (e.g. straight to a file or a rendering pipeline).
func (i *Instance) SetSink(sink geometry.Sink) { i.mod.Sink = sink }

// Vertices returns the flat emitted vertex buffer, valid only when the
// instance is still using the default Buffer sink (panics otherwise —
// a host that swapped in its own Sink owns reading it back itself).
func (i *Instance) Vertices() []float32 {
	buf, ok := i.mod.Sink.(*geometry.Buffer)
	if !ok {
		panic("mg: Vertices called without the default geometry.Buffer sink")
	}
	return buf.Vertices()
}

// VertexCount reports how many complete vertices have been emitted, per
// the same constraint as Vertices.
func (i *Instance) VertexCount() int {
	buf, ok := i.mod.Sink.(*geometry.Buffer)
	if !ok {
		panic("mg: VertexCount called without the default geometry.Buffer sink")
	}
	return buf.VertexCount()
}

// RegisterFunction installs fn as name in the base module's globals, so
// every module's scope-chain fallback sees it (spec §6's "register a
// host cfunction ... into the base module").
func (i *Instance) RegisterFunction(name string, fn value.NativeFunc) {
	i.mod.Base.Globals().Set(name, value.NewCFunction(name, fn))
}

// RegisterValue installs v as name in the base module's globals (spec
// §6's "register a host ... value into the base module").
func (i *Instance) RegisterValue(name string, v value.Value) {
	i.mod.Base.Globals().Set(name, v)
}

// Import resolves name to a module value, loading it if this is the
// first time it has been seen (spec §4.5/§6).
func (i *Instance) Import(name string) (value.Value, error) {
	return i.ev.Import(name)
}

// RunSource runs src under the given module name and filename, invoking
// a zero-argument `main` if one was defined (spec §6's "run source ...
// under a given module name").
func (i *Instance) RunSource(name, filename, src string) error {
	_, err := i.mod.RunSource(name, filename, src)
	return err
}

// RunFile reads path from disk and runs it as a module named after its
// path (spec §6's "run source (by path ...)").
func (i *Instance) RunFile(path string) error {
	src, err := source.ReadFile(path)
	if err != nil {
		return fmt.Errorf("mg: %w", err)
	}
	return i.RunSource(path, path, src)
}

// RunReader runs src read in full from r under name/filename (spec §6's
// "run source (by ... file handle ...)").
func (i *Instance) RunReader(name, filename string, r io.Reader) error {
	src, err := source.ReadAll(r)
	if err != nil {
		return fmt.Errorf("mg: %w", err)
	}
	return i.RunSource(name, filename, src)
}

// Eval runs src against the instance's current top frame, the way the
// `__eval` builtin does, returning its last value. It requires a frame
// already on the stack — call BeginSession first (a fresh Instance has
// none; RunSource/RunFile push and pop their own before this can see
// them).
func (i *Instance) Eval(src string) (value.Value, error) {
	return i.ev.Eval(src)
}

// BeginSession pushes a persistent module frame so repeated Eval calls
// accumulate state in one scope, the way a REPL needs (spec §6 names no
// REPL of its own — cmd/modelgen's interactive loop is the one caller).
// The returned function pops the frame; callers must invoke it exactly
// once when the session ends.
func (i *Instance) BeginSession(name string) func() {
	mod := i.mod.NewEmptyModule(name, "<"+name+">")
	i.mod.Stack.Push(frame.NewModuleFrame(mod))
	return func() { i.mod.Stack.Pop() }
}

// ModuleInstance exposes the underlying module.Instance for callers that
// need lower-level access (e.g. internal/inspect, or a host that wants
// to pre-seed the dynamic module map directly).
func (i *Instance) ModuleInstance() *module.Instance { return i.mod }
