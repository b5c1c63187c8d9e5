package eval

import (
	"github.com/modelgen-run/modelgen/lexer"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

// compoundOp maps a compound-assignment token to the binary operator it
// applies before writing back (spec §4.4: "compound assignments ... first
// evaluate the current binding, apply the binary op, and write back").
func compoundOp(k lexer.Kind) lexer.Kind {
	switch k {
	case lexer.PLUS_EQ:
		return lexer.PLUS
	case lexer.MINUS_EQ:
		return lexer.MINUS
	case lexer.STAR_EQ:
		return lexer.STAR
	case lexer.SLASH_EQ:
		return lexer.SLASH
	case lexer.PERCENT_EQ:
		return lexer.PERCENT
	default:
		return k
	}
}

// evalAssign implements `target = expr` and the compound-assign family.
// The target is either a plain identifier or a subscript expression;
// spec §4.4 names no other assignable form.
func (e *Evaluator) evalAssign(n *parser.Node) (value.Value, error) {
	target := n.Children[0]

	var val value.Value
	if n.Op.Kind == lexer.ASSIGN {
		v, err := e.eval(n.Children[1])
		if err != nil {
			return nil, err
		}
		val = v
	} else {
		cur, err := e.evalTarget(target)
		if err != nil {
			return nil, err
		}
		rhs, err := e.eval(n.Children[1])
		if err != nil {
			return nil, err
		}
		r, err := value.Binary(compoundOp(n.Op.Kind), cur, rhs)
		if err != nil {
			return nil, e.wrap(n, err)
		}
		val = r
	}

	if err := e.assignTo(target, val); err != nil {
		return nil, e.wrap(n, err)
	}
	return val, nil
}

// evalTarget evaluates an assignment target for its *current* value, used
// by compound assignment to read the binding being updated.
func (e *Evaluator) evalTarget(target *parser.Node) (value.Value, error) {
	if target.Kind == parser.KIdent {
		v, ok := e.resolveName(target.Ident)
		if !ok {
			return nil, e.errorf(target, "name %q is not defined", target.Ident)
		}
		return v, nil
	}
	return e.eval(target)
}

// assignTo writes val into target: an identifier binds in the top
// frame's locals (which *is* the module's globals at module top level,
// per spec §4.4's "top frame's locals ... at module top level, it writes
// to the module's globals" — both land on the same call here because
// NewModuleFrame aliases Locals to the module's own globals map);
// a subscript writes through value.SetIndex.
func (e *Evaluator) assignTo(target *parser.Node, val value.Value) error {
	if target.Kind == parser.KIdent {
		top := e.Inst.Stack.Top()
		top.Locals.Set(target.Ident, val)
		return nil
	}

	if target.Kind != parser.KIndex || len(target.Children) < 2 {
		return e.errorf(target, "invalid assignment target")
	}
	base, err := e.eval(target.Children[0])
	if err != nil {
		return err
	}
	key, err := e.eval(target.Children[1])
	if err != nil {
		return err
	}
	return value.SetIndex(base, key, val)
}
