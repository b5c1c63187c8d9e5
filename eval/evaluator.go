// Package eval implements the tree-walking evaluator described in spec
// §4.4: a recursive AST walk over the call stack of frame/Frame values,
// resolving names through the locals -> current-module-globals ->
// base-globals chain and delegating arithmetic/equality/subscripting to
// the value package's per-operation functions (value.Binary, value.Equal,
// value.GetIndex, ...).
//
// Files are split by concern, mirroring the teacher's eval_*.go
// convention: this file holds the Evaluator type, the node dispatch
// table, and the module.Executor/value.Runtime implementations;
// eval_expressions.go covers literals/identifiers/operators,
// eval_assign.go assignment, eval_calls.go call dispatch and parameter
// binding, eval_controls.go if/for/proc/emit/return/break/continue.
package eval

import (
	"github.com/modelgen-run/modelgen/frame"
	"github.com/modelgen-run/modelgen/module"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

// Evaluator walks an Instance's modules against its own call stack. It
// holds no state of its own beyond the Instance reference — everything
// that varies during execution (the current frame, the current module)
// lives on Inst.Stack, per spec §3.4/§3.5.
type Evaluator struct {
	Inst *module.Instance
}

// New constructs an Evaluator bound to inst. The embedder (mg.New)
// is responsible for setting inst.Executor = this value so that
// Instance.Import/RunSource route through it.
func New(inst *module.Instance) *Evaluator {
	return &Evaluator{Inst: inst}
}

var _ module.Executor = (*Evaluator)(nil)
var _ value.Runtime = (*Evaluator)(nil)

// Execute implements module.Executor: run mod's top-level expressions
// against a fresh module frame, then invoke a zero-argument `main` if
// one was defined (spec §4.5's "run-top-level-then-call-main").
func (e *Evaluator) Execute(mod *module.Module) error {
	e.Inst.Stack.Push(frame.NewModuleFrame(mod))
	defer e.Inst.Stack.Pop()

	if mod.AST == nil {
		return nil
	}
	if _, err := e.evalStatements(mod.AST.Children); err != nil {
		return err
	}

	if main, ok := mod.Globals().Get("main"); ok && isCallable(main) {
		if _, err := e.Call(main, nil); err != nil {
			return err
		}
	}
	return nil
}

// eval dispatches n to its node-kind-specific handler. Every Kind listed
// in parser.Node has exactly one case here (spec §4.4: "every node type
// has a dispatch case").
func (e *Evaluator) eval(n *parser.Node) (value.Value, error) {
	switch n.Kind {
	case parser.KModule, parser.KBlock:
		return e.evalStatements(n.Children)
	case parser.KInt:
		return value.NewInt(n.IntVal), nil
	case parser.KFloat:
		return value.NewFloat(n.FloatVal), nil
	case parser.KString:
		return value.NewString(n.StrVal), nil
	case parser.KIdent:
		return e.evalIdent(n)
	case parser.KTuple:
		return e.evalSeq(n, true)
	case parser.KList:
		return e.evalSeq(n, false)
	case parser.KMap:
		return e.evalMap(n)
	case parser.KUnaryOp:
		return e.evalUnary(n)
	case parser.KBinOp:
		return e.evalBinOp(n)
	case parser.KIndex:
		return e.evalIndex(n)
	case parser.KCall:
		return e.evalCall(n)
	case parser.KIf:
		return e.evalIf(n)
	case parser.KFor:
		return e.evalFor(n)
	case parser.KProc:
		return e.evalProc(n)
	case parser.KEmit:
		return e.evalEmit(n)
	case parser.KReturn:
		return e.evalReturn(n)
	case parser.KBreak:
		return e.evalBreak(n)
	case parser.KContinue:
		return e.evalContinue(n)
	default:
		return nil, e.errorf(n, "eval: unhandled node kind %s", n.Kind)
	}
}

// evalStatements evaluates a newline-separated sequence of statements
// (a module's or block's children), short-circuiting as soon as the top
// frame leaves the Active state — a break/continue/return anywhere in
// the sequence stops the walk right there, leaving the state for the
// enclosing for/call to interpret (spec §4.4's "the evaluator inspects
// the top frame's state between statements").
func (e *Evaluator) evalStatements(stmts []*parser.Node) (value.Value, error) {
	var result value.Value = value.Null
	top := e.Inst.Stack.Top()
	for _, stmt := range stmts {
		v, err := e.eval(stmt)
		if err != nil {
			return nil, err
		}
		result = v
		if top != nil && top.State != frame.Active {
			break
		}
	}
	return result, nil
}

// currentModule returns the concrete module executing in the top frame.
// Frame.Module is typed value.ModuleRef so the frame package doesn't
// depend on module, but every frame this evaluator pushes carries a
// *module.Module underneath, so the assertion always succeeds for a
// non-nil frame.
func (e *Evaluator) currentModule() *module.Module {
	top := e.Inst.Stack.Top()
	if top == nil || top.Module == nil {
		return nil
	}
	m, _ := top.Module.(*module.Module)
	return m
}

// resolveName implements spec §4.4's three-step read chain: top frame's
// locals, then the current module's globals, then the base module's
// globals.
func (e *Evaluator) resolveName(name string) (value.Value, bool) {
	top := e.Inst.Stack.Top()
	if top != nil && top.Locals != nil {
		if v, ok := top.Locals.Get(name); ok {
			return v, true
		}
	}
	if mod := e.currentModule(); mod != nil {
		if v, ok := mod.Globals().Get(name); ok {
			return v, true
		}
	}
	if e.Inst.Base != nil {
		if v, ok := e.Inst.Base.Globals().Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// --- value.Runtime ---

// Call implements value.Runtime.Call for builtins (filter/reduce/...)
// that need to invoke a user-supplied callable. It carries no anchor
// node, since the call didn't originate from a KCall the evaluator is
// walking; errors it produces are reported without a source position.
func (e *Evaluator) Call(fn value.Value, args []value.Value) (value.Value, error) {
	return e.call(nil, fn, args)
}

// Globals implements value.Runtime.Globals: the currently executing
// module's globals map.
func (e *Evaluator) Globals() *value.Map {
	if mod := e.currentModule(); mod != nil {
		return mod.Globals()
	}
	return nil
}

// Locals implements value.Runtime.Locals: the top frame's locals (which
// *is* the module's globals at module top level, by construction).
func (e *Evaluator) Locals() *value.Map {
	top := e.Inst.Stack.Top()
	if top == nil {
		return nil
	}
	return top.Locals
}

// Traceback implements value.Runtime.Traceback.
func (e *Evaluator) Traceback() []string {
	return e.Inst.Stack.Names()
}

// Import implements value.Runtime.Import: load (or fetch the cached)
// module and wrap it as a first-class module value.
func (e *Evaluator) Import(name string) (value.Value, error) {
	mod, err := e.Inst.Import(name)
	if err != nil {
		return nil, err
	}
	return value.NewModuleValue(mod, mod.IsStatic()), nil
}

// Eval implements value.Runtime.Eval (the `__eval` builtin): parse src
// as a sequence of expressions and run them against the *current* frame
// rather than pushing a new one, so `__eval("x = 1")` can mutate the
// caller's own locals — spec §2's only sanctioned evaluator-into-parser
// callback.
func (e *Evaluator) Eval(src string) (value.Value, error) {
	root, errs := parser.Parse("<eval>", src)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return e.evalStatements(root.Children)
}

// isCallable reports whether v's kind is one `Execute`/`Call` can invoke.
func isCallable(v value.Value) bool {
	switch v.Kind() {
	case value.KFunction, value.KProcedure, value.KCFunction:
		return true
	default:
		return false
	}
}

// sequenceElems returns v's elements if v is a tuple or list — shared by
// `for`/`emit`, which both require one of those two kinds (spec §4.4).
func sequenceElems(v value.Value) ([]value.Value, bool) {
	switch t := v.(type) {
	case *value.Tuple:
		return t.Elems, true
	case *value.List:
		return t.Elems, true
	default:
		return nil, false
	}
}
