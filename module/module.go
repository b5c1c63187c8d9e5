// Package module implements ModelGen's module/import system (spec §4.5,
// §3.4): named modules backed by a parser+AST+globals, an instance that
// owns the dynamic and static module registries, the search path, the
// call stack, injected uniforms, and the geometry sink.
package module

import (
	"strings"

	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

// Module owns its parser's output (AST) and its globals map (spec §3.4:
// "A module owns its parser (and thus token and AST storage) and its
// globals map").
type Module struct {
	Name     string // dotted module path, e.g. "pkg.sub.mod"
	Filename string // e.g. "path/to/pkg/sub/mod.mg", "" for static modules
	AST      *parser.Node

	globals *value.Map

	instance *Instance
	static   bool
	executed bool
}

// ModuleName implements value.ModuleRef.
func (m *Module) ModuleName() string { return m.Name }

// Globals implements value.ModuleRef: the map every name lookup against
// this module's top level resolves against.
func (m *Module) Globals() *value.Map { return m.globals }

// Instance returns the owning Instance (spec §3.3's "instance back-
// reference").
func (m *Module) Instance() *Instance { return m.instance }

// IsStatic reports whether m is a built-in module exempt from the
// "never re-execute" rule (spec §4.5).
func (m *Module) IsStatic() bool { return m.static }

// newModule constructs an empty module, linked to instance, with a fresh
// globals map.
func newModule(instance *Instance, name, filename string, static bool) *Module {
	return &Module{Name: name, Filename: filename, globals: value.NewMap(), instance: instance, static: static}
}

// filenameToModuleName converts "pkg/sub/mod.mg" to "pkg.sub.mod":
// strip the extension, then turn path separators into dots. Ported
// verbatim (mechanically) from original_source's _mgFilenameToImportName.
func filenameToModuleName(filename string) string {
	name := strings.TrimSuffix(filename, moduleExt)
	name = strings.ReplaceAll(name, "/", ".")
	return strings.ReplaceAll(name, "\\", ".")
}

// moduleNameToFilename converts "pkg.sub.mod" to "pkg/sub/mod.mg":
// dots to path separators, then append the extension. Ported verbatim
// from original_source's _mgImportNameToFilename.
func moduleNameToFilename(name string) string {
	return strings.ReplaceAll(name, ".", "/") + moduleExt
}

const moduleExt = ".mg"
