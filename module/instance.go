package module

import (
	"path/filepath"

	"github.com/modelgen-run/modelgen/frame"
	"github.com/modelgen-run/modelgen/geometry"
	"github.com/modelgen-run/modelgen/value"
)

// Executor runs a freshly-parsed module's top-level code (spec §4.5:
// "run-top-level-then-call-main"). Instance depends on this interface,
// not on the eval package directly, so that eval (which needs Instance
// and Module types to implement it) can import module without a cycle —
// the dependency direction is eval -> module, never the reverse.
type Executor interface {
	Execute(mod *Module) error
}

// Instance is one running ModelGen host: its own module registries,
// search path, call stack, uniforms, and geometry sink (spec §3.4). It
// is not safe for concurrent use from multiple goroutines — spec §5 is
// explicit that a runtime instance is single-threaded.
type Instance struct {
	dynamic map[string]*Module // name -> loaded module
	static  map[string]*Module // name -> built-in module

	SearchPath []string
	Stack      *frame.Stack
	Uniforms   *value.Map
	Sink       geometry.Sink

	// Base is the implicit prelude module every scope chain falls back
	// to (spec §4.5). It is set by the embedder (mg.New wires
	// stdlib.NewBaseModule into it) rather than built in by this
	// package, so that module has no dependency on the builtin set.
	Base *Module

	Executor Executor
}

// NewInstance constructs an Instance with the default search path (spec
// §4.5): the current working directory, the directory containing the
// running executable, and a sibling "modules/" directory next to the
// executable's parent. wd and exePath are passed in rather than
// discovered via os.Getwd/os.Executable here, so this package stays
// testable without touching the real filesystem; mg.New supplies the
// real values.
func NewInstance(wd, exePath string) *Instance {
	inst := &Instance{
		dynamic:  make(map[string]*Module),
		static:   make(map[string]*Module),
		Stack:    &frame.Stack{},
		Uniforms: value.NewMap(),
	}
	inst.SearchPath = defaultSearchPath(wd, exePath)
	return inst
}

func defaultSearchPath(wd, exePath string) []string {
	var path []string
	if wd != "" {
		path = append(path, wd)
	}
	if exePath != "" {
		exeDir := filepath.Dir(exePath)
		path = append(path, exeDir)
		path = append(path, filepath.Join(filepath.Dir(exeDir), "modules"))
	}
	return path
}

// AddSearchPath appends dir to the end of the search order.
func (i *Instance) AddSearchPath(dir string) { i.SearchPath = append(i.SearchPath, dir) }

// RemoveSearchPath removes the first occurrence of dir, if present.
func (i *Instance) RemoveSearchPath(dir string) {
	for idx, p := range i.SearchPath {
		if p == dir {
			i.SearchPath = append(i.SearchPath[:idx], i.SearchPath[idx+1:]...)
			return
		}
	}
}

// SetUniform injects key/value into every subsequently loaded module's
// globals at load time (spec §3.4/§6).
func (i *Instance) SetUniform(key string, v value.Value) { i.Uniforms.Set(key, v) }

// RegisterStatic registers a built-in module under name, available to
// `import` after the dynamic map and search path are checked (spec
// §4.5's "first match wins" order, confirmed by
// original_source/src/instance.c's static-table-checked-last sequence).
func (i *Instance) RegisterStatic(name string, mod *Module) {
	mod.instance = i
	mod.static = true
	mod.executed = true // static modules have no source to (re-)run
	i.static[name] = mod
}

// NewEmptyModule constructs a module linked to this instance but not yet
// registered in any map — used for the entry-point module run directly
// by name/path (spec §6's "run source... under a given module name"),
// which isn't reached through `import`.
func (i *Instance) NewEmptyModule(name, filename string) *Module {
	return newModule(i, name, filename, false)
}

// NewStaticModule constructs a module with no backing source, flagged
// static, for the embedder (stdlib) to populate with native functions
// and register via RegisterStatic.
func (i *Instance) NewStaticModule(name string) *Module {
	return newModule(i, name, "", true)
}

// LookupDynamic returns an already-loaded (non-static) module by name.
func (i *Instance) LookupDynamic(name string) (*Module, bool) {
	m, ok := i.dynamic[name]
	return m, ok
}

// LookupStatic returns a static module by name.
func (i *Instance) LookupStatic(name string) (*Module, bool) {
	m, ok := i.static[name]
	return m, ok
}
