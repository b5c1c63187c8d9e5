package eval

import (
	"github.com/modelgen-run/modelgen/frame"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

// evalCall evaluates a KCall node: its first child is the callee
// expression, the rest are positional argument expressions, all evaluated
// in order before the call (spec §4.4's "native function pointer invoked
// with a pre-evaluated (argc, argv) array" applies equally to user
// functions here).
func (e *Evaluator) evalCall(n *parser.Node) (value.Value, error) {
	callee, err := e.eval(n.Children[0])
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(n.Children)-1)
	for _, a := range n.Children[1:] {
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return e.call(n, callee, args)
}

// call dispatches fn(args) by kind (spec §4.4's call semantics table):
// cfunctions invoke their native pointer directly, user functions/
// procedures go through callFunction's frame push/parameter-bind/
// body-eval/frame-pop sequence. node is the KCall node for error
// positions, or nil for calls that didn't originate from one
// (value.Runtime.Call on behalf of a builtin).
func (e *Evaluator) call(node *parser.Node, fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.CFunction:
		v, err := f.Fn(e, args)
		if err != nil {
			return nil, e.wrap(node, err)
		}
		return v, nil
	case *value.Function:
		return e.callFunction(node, f, args)
	default:
		return nil, e.errorf(node, "object of kind %s is not callable", fn.Kind())
	}
}

// callFunction implements spec §4.4's call semantics for a user
// function/procedure: construct a new locals map seeded from the
// callable's captured locals, push a frame naming the callee, bind
// parameters (evaluating defaults in the callee's own starting scope),
// evaluate the body, and pop the frame.
func (e *Evaluator) callFunction(node *parser.Node, f *value.Function, args []value.Value) (value.Value, error) {
	params := f.Proc.Children[1].Children
	if len(args) > len(params) {
		return nil, e.errorf(node, "%s: too many arguments: expected at most %d, got %d", f.Name, len(params), len(args))
	}

	locals := value.NewMap()
	if f.Locals != nil {
		for _, k := range f.Locals.Keys() {
			v, _ := f.Locals.Get(k)
			locals.Set(k, v)
		}
	}

	e.Inst.Stack.Push(frame.NewCallFrame(f.Module, locals, node, f.Name))
	defer e.Inst.Stack.Pop()

	if err := e.bindParams(node, params, args, locals); err != nil {
		return nil, err
	}

	// A declaration with no body (2 children) is a no-op proc.
	if len(f.Proc.Children) < 3 {
		return value.Null, nil
	}

	result, err := e.evalStatements(f.Proc.Children[2].Children)
	if err != nil {
		return nil, err
	}

	top := e.Inst.Stack.Top()
	if top.State == frame.Return {
		rv := top.ReturnValue
		top.State = frame.Active
		if rv == nil {
			rv = value.Null
		}
		return rv, nil
	}
	return result, nil
}

// bindParams binds positional args to params in order, evaluating any
// default expression for a trailing omitted optional parameter against
// locals (the frame must already be pushed — defaults are evaluated "in
// the callee's starting scope", spec §4.4). A required parameter with no
// corresponding argument and no default is a fatal arity error.
func (e *Evaluator) bindParams(node *parser.Node, params []*parser.Node, args []value.Value, locals *value.Map) error {
	for i, p := range params {
		var name string
		var def *parser.Node
		if p.Kind == parser.KBinOp {
			name = p.Children[0].Ident
			def = p.Children[1]
		} else {
			name = p.Ident
		}

		if i < len(args) {
			locals.Set(name, args[i])
			continue
		}
		if def != nil {
			v, err := e.eval(def)
			if err != nil {
				return err
			}
			locals.Set(name, v)
			continue
		}
		return e.errorf(node, "missing required argument %q", name)
	}
	return nil
}
