package value

import "github.com/modelgen-run/modelgen/parser"

// Runtime is the callback surface a NativeFunc is given so builtins like
// `filter`/`reduce`/`__eval` can call back into user code without this
// package importing the evaluator (which would be a cycle: eval already
// imports value). The eval package's Evaluator implements Runtime.
type Runtime interface {
	// Call invokes fn (a Function/Procedure/CFunction value) with the
	// given already-evaluated arguments.
	Call(fn Value, args []Value) (Value, error)
	// Globals returns the globals map of the module currently executing
	// (the `globals()` builtin).
	Globals() *Map
	// Locals returns the top call frame's locals map, or the same map
	// as Globals at module top level (the `locals()` builtin).
	Locals() *Map
	// Traceback returns the caller-name chain, innermost first (the
	// `traceback()` builtin).
	Traceback() []string
	// Import resolves and (if needed) loads a named module, returning
	// it as a first-class module Value (the `__import` builtin).
	Import(name string) (Value, error)
	// Eval parses src as a sequence of expressions and evaluates them
	// in the caller's current scope, returning the last value (the
	// `__eval` builtin — spec §2's only sanctioned evaluator-into-
	// parser callback).
	Eval(src string) (Value, error)
}

// NativeFunc is the signature every host/builtin function implements:
// spec §4.4's "native function pointer" invoked with a pre-evaluated
// (argc, argv) array.
type NativeFunc func(rt Runtime, args []Value) (Value, error)

// CFunction wraps a native function pointer (spec §3.3). It carries no
// reference count of its own children — a cfunction has none — but still
// satisfies Value.
type CFunction struct {
	Name string
	Fn   NativeFunc
}

func (*CFunction) Kind() Kind { return KCFunction }

// NewCFunction constructs a named native function value.
func NewCFunction(name string, fn NativeFunc) Value {
	return &CFunction{Name: name, Fn: fn}
}

// ModuleRef is the narrow view of a module.Module that this package
// needs: enough to let a Function hold a weak back-reference to its
// defining module (spec §9: "function → defining module is a weak
// reference, since the module outlives every function it defined")
// without importing the module package, which itself depends on value
// for its Globals map — importing module here would be a cycle.
type ModuleRef interface {
	ModuleName() string
	Globals() *Map
}

// Function represents a user-defined callable: an owning reference to
// its procedure AST, captured locals, and a weak back-reference to its
// defining module (spec §3.3). IsProc records only which keyword
// introduced it (`proc`) — spec §4.4 is explicit that procedures and
// functions "share implementation" and "behave identically at call
// sites", so IsProc exists for diagnostics/type() only, never for
// dispatch.
type Function struct {
	*refcount
	Name   string
	Proc   *parser.Node // KProc node: name, params, optional body
	Locals *Map         // captured locals at definition time
	Module ModuleRef    // weak: not reference-counted
	IsProc bool
}

func (f *Function) Kind() Kind {
	if f.IsProc {
		return KProcedure
	}
	return KFunction
}

func (f *Function) Children() []Value {
	if f.Locals == nil {
		return nil
	}
	return []Value{f.Locals}
}

// NewFunction constructs a Function/Procedure value closing over locals
// (which may be nil for a module-top-level definition with nothing yet
// captured) and weakly remembering its defining module.
func NewFunction(name string, proc *parser.Node, locals *Map, mod ModuleRef, isProc bool) Value {
	return &Function{refcount: newRefcount(), Name: name, Proc: proc, Locals: locals, Module: mod, IsProc: isProc}
}
