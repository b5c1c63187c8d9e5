package module

import (
	"fmt"
	"path/filepath"

	"github.com/modelgen-run/modelgen/internal/source"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

// Import resolves name to a module, loading and executing it if this is
// the first time it's been seen (spec §4.5): the dynamic module map is
// consulted first, then each search-path entry in order for a matching
// `.mg` file, then the static module map — first match wins.
//
// Static modules never re-execute (they have no source); dynamic modules
// execute exactly once, on first import — a second `import "m"` returns
// the cached Module unchanged (spec §8's module-caching property).
func (i *Instance) Import(name string) (*Module, error) {
	if mod, ok := i.dynamic[name]; ok {
		return mod, nil
	}

	rel := moduleNameToFilename(name)
	for _, dir := range i.SearchPath {
		candidate := filepath.Join(dir, rel)
		if !source.Exists(candidate) {
			continue
		}
		mod, err := i.loadDynamic(name, candidate)
		if err != nil {
			return nil, err
		}
		return mod, nil
	}

	if mod, ok := i.static[name]; ok {
		return mod, nil
	}

	return nil, fmt.Errorf("import: module %q not found", name)
}

// loadDynamic reads, parses, registers, and runs a module found on the
// search path. Registration happens before execution so that a module
// whose own top level imports itself (directly or transitively) sees
// itself already in the dynamic map instead of recursing forever.
func (i *Instance) loadDynamic(name, filename string) (*Module, error) {
	src, err := source.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("import %q: %w", name, err)
	}

	root, errs := parser.Parse(filename, src)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	mod := newModule(i, name, filename, false)
	mod.AST = root
	i.applyUniforms(mod)
	i.dynamic[name] = mod

	if i.Executor == nil {
		return nil, fmt.Errorf("import %q: instance has no executor configured", name)
	}
	if err := i.Executor.Execute(mod); err != nil {
		return nil, err
	}
	mod.executed = true
	return mod, nil
}

// applyUniforms merges the instance's uniforms into mod's globals at
// load time (spec §3.4/§6: "merged into every subsequently loaded
// module's globals at load time").
func (i *Instance) applyUniforms(mod *Module) {
	for _, k := range i.Uniforms.Keys() {
		v, _ := i.Uniforms.Get(k)
		mod.Globals().Set(k, value.Reference(v))
	}
}

// RunSource parses src under the given module name and filename, runs
// its top level, then (spec §4.5/§6) invokes a zero-argument `main` if
// one was defined. It is the entry point used for the program the host
// asked to run directly, as distinct from a module reached via `import`.
func (i *Instance) RunSource(name, filename, src string) (*Module, error) {
	root, errs := parser.Parse(filename, src)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	mod := i.NewEmptyModule(name, filename)
	mod.AST = root
	i.applyUniforms(mod)
	i.dynamic[name] = mod

	if i.Executor == nil {
		return nil, fmt.Errorf("run %q: instance has no executor configured", name)
	}
	if err := i.Executor.Execute(mod); err != nil {
		return nil, err
	}
	mod.executed = true
	return mod, nil
}
