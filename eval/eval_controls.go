package eval

import (
	"github.com/modelgen-run/modelgen/frame"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

// evalIf implements `if <cond>: <then> [else: <else>]` (spec §4.4):
// evaluate cond, apply truthiness, evaluate the chosen branch and
// return its value; null if the condition is false and there is no
// else branch.
func (e *Evaluator) evalIf(n *parser.Node) (value.Value, error) {
	cond, err := e.eval(n.Children[0])
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return e.eval(n.Children[1])
	}
	if len(n.Children) == 3 {
		return e.eval(n.Children[2])
	}
	return value.Null, nil
}

// evalFor implements `for x in <iter>: <body>` (spec §4.4): iter must be
// a tuple, list, or range (range is already materialized to a list by
// the `range` builtin, see DESIGN.md's Open Question decision). The loop
// binds x in the *current* frame — for doesn't push its own frame, only
// calls do — and inspects the frame's control-flow state after each
// iteration of the body.
func (e *Evaluator) evalFor(n *parser.Node) (value.Value, error) {
	iterVal, err := e.eval(n.Children[1])
	if err != nil {
		return nil, err
	}
	elems, ok := sequenceElems(iterVal)
	if !ok {
		return nil, e.errorf(n, "'for' requires a tuple, list, or range, got %s", iterVal.Kind())
	}

	name := n.Children[0].Ident
	top := e.Inst.Stack.Top()
	var result value.Value = value.Null

	for _, elem := range elems {
		top.Locals.Set(name, elem)
		v, err := e.eval(n.Children[2])
		if err != nil {
			return nil, err
		}
		result = v

		switch top.State {
		case frame.Continue:
			top.State = frame.Active
		case frame.Break:
			top.State = frame.Active
			return value.Null, nil
		case frame.Return:
			// Leave the Return state set so the enclosing
			// block/loop/call sees it too (spec §4.4: "unwinding
			// any enclosing loops up to the nearest function frame").
			return value.Null, nil
		}
	}
	return result, nil
}

// evalProc implements `proc name(params)` / `proc name(params): body`
// (spec §4.4): always binds into the *current module's* globals,
// regardless of how deeply nested the definition is, and captures the
// defining frame's locals by value-copy-on-call (see eval_calls.go's
// callFunction) so a proc defined inside a function can close over its
// parameters.
func (e *Evaluator) evalProc(n *parser.Node) (value.Value, error) {
	name := n.Children[0].Ident
	top := e.Inst.Stack.Top()
	mod := e.currentModule()

	fn := value.NewFunction(name, n, top.Locals, mod, true)
	if mod != nil {
		mod.Globals().Set(name, fn)
	}
	return fn, nil
}

// evalEmit implements `emit <expr>` (spec §4.4/§6): the argument must be
// a tuple/list of floats whose length equals the instance's configured
// vertex stride.
func (e *Evaluator) evalEmit(n *parser.Node) (value.Value, error) {
	v, err := e.eval(n.Children[0])
	if err != nil {
		return nil, err
	}
	elems, ok := sequenceElems(v)
	if !ok {
		return nil, e.errorf(n, "emit requires a tuple or list, got %s", v.Kind())
	}

	sink := e.Inst.Sink
	if sink == nil {
		return nil, e.errorf(n, "emit: instance has no geometry sink configured")
	}
	want := sink.Stride().Total()
	if len(elems) != want {
		return nil, e.errorf(n, "emit: expected %d floats for the configured vertex stride, got %d", want, len(elems))
	}

	vertex := make([]float32, len(elems))
	for i, el := range elems {
		if !value.IsNumeric(el) {
			return nil, e.errorf(n, "emit: element %d is not numeric (%s)", i, el.Kind())
		}
		vertex[i] = float32(value.AsFloat64(el))
	}
	if err := sink.Emit(vertex); err != nil {
		return nil, e.wrap(n, err)
	}
	return value.Null, nil
}

// evalReturn implements `return [expr]` (spec §4.4): records the value
// (null for a bare `return`) on the top frame and sets its state to
// Return; unwinding through enclosing for-loops up to the call that
// pushed this frame is handled by evalFor/evalStatements inspecting that
// state, not by this function.
func (e *Evaluator) evalReturn(n *parser.Node) (value.Value, error) {
	var v value.Value = value.Null
	if len(n.Children) == 1 {
		rv, err := e.eval(n.Children[0])
		if err != nil {
			return nil, err
		}
		v = rv
	}
	top := e.Inst.Stack.Top()
	top.State = frame.Return
	top.ReturnValue = v
	return v, nil
}

// evalBreak sets the top frame's state to Break, terminating the
// nearest enclosing for-loop (spec §4.4).
func (e *Evaluator) evalBreak(n *parser.Node) (value.Value, error) {
	e.Inst.Stack.Top().State = frame.Break
	return value.Null, nil
}

// evalContinue sets the top frame's state to Continue, skipping to the
// next iteration of the nearest enclosing for-loop (spec §4.4).
func (e *Evaluator) evalContinue(n *parser.Node) (value.Value, error) {
	e.Inst.Stack.Top().State = frame.Continue
	return value.Null, nil
}
