// Package stdlib implements the base library spec §4.5 names: the
// minimum prelude the evaluator depends on (print, range, len, type,
// import) plus the rest of the named prelude functions, and the math
// static module. Every builtin here is a value.NativeFunc, grounded on
// the teacher's `std.Builtin{Name, Callback}` / `Runtime` callback shape
// generalized to value.Runtime so builtins can call back into user code
// (filter/reduce) or the module system (__import) without importing eval.
package stdlib

import "github.com/modelgen-run/modelgen/module"

// NewBaseModule builds the static "base" module: every name in spec
// §4.5's prelude list, registered as a cfunction value in its globals,
// plus the `__version__` tuple. The caller (mg.New) sets the
// result as both inst.Base and a RegisterStatic("base", ...) entry, so
// `import "base"` and the implicit scope-chain fallback see the same
// module.
func NewBaseModule(inst *module.Instance) *module.Module {
	mod := inst.NewStaticModule("base")
	g := mod.Globals()

	registerPrelude(g, inst)
	registerFunctional(g)
	registerIntrospection(g)

	return mod
}

// NewMathModule builds the static "math" module (spec §3.4/§4.5's "math,
// …" example of a static built-in module), wrapping Go's stdlib math
// package — see DESIGN.md for why this one component stays on stdlib
// math rather than a third-party numerics library.
func NewMathModule(inst *module.Instance) *module.Module {
	mod := inst.NewStaticModule("math")
	registerMath(mod.Globals())
	return mod
}
