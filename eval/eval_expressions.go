package eval

import (
	"github.com/modelgen-run/modelgen/lexer"
	"github.com/modelgen-run/modelgen/parser"
	"github.com/modelgen-run/modelgen/value"
)

// evalIdent resolves a bare identifier through the scope chain (spec
// §4.4). An unresolved name is a fatal name error.
func (e *Evaluator) evalIdent(n *parser.Node) (value.Value, error) {
	v, ok := e.resolveName(n.Ident)
	if !ok {
		return nil, e.errorf(n, "name %q is not defined", n.Ident)
	}
	return v, nil
}

// evalSeq evaluates a KTuple/KList node's children in order and wraps
// them in the matching composite kind — tuple immutable, list mutable
// (spec §4.4).
func (e *Evaluator) evalSeq(n *parser.Node, tuple bool) (value.Value, error) {
	elems := make([]value.Value, 0, len(n.Children))
	for _, c := range n.Children {
		v, err := e.eval(c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	if tuple {
		return value.NewTuple(elems...), nil
	}
	return value.NewList(elems...), nil
}

// evalMap evaluates a KMap literal's (key, value) pair children into a
// value.Map, preserving source order as insertion order.
func (e *Evaluator) evalMap(n *parser.Node) (value.Value, error) {
	m := value.NewMap()
	for _, pair := range n.Children {
		v, err := e.eval(pair.Children[1])
		if err != nil {
			return nil, err
		}
		m.Set(pair.Children[0].StrVal, v)
	}
	return m, nil
}

// evalUnary handles the right-binding prefix operators `+ - not`.
func (e *Evaluator) evalUnary(n *parser.Node) (value.Value, error) {
	v, err := e.eval(n.Children[0])
	if err != nil {
		return nil, err
	}
	r, err := value.Unary(n.Op.Kind, v)
	if err != nil {
		return nil, e.wrap(n, err)
	}
	return r, nil
}

// evalBinOp routes a KBinOp node to the handler for its operator
// family: assignment, logical and/or (short-circuiting), relational/
// equality comparison, or arithmetic.
func (e *Evaluator) evalBinOp(n *parser.Node) (value.Value, error) {
	switch n.Op.Kind {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PERCENT_EQ:
		return e.evalAssign(n)
	case lexer.AND, lexer.OR:
		return e.evalLogical(n)
	case lexer.EQ, lexer.NE, lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return e.evalComparison(n)
	default:
		left, err := e.eval(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Children[1])
		if err != nil {
			return nil, err
		}
		r, err := value.Binary(n.Op.Kind, left, right)
		if err != nil {
			return nil, e.wrap(n, err)
		}
		return r, nil
	}
}

// evalLogical implements `and`/`or` as short-circuiting operators that
// return the deciding operand itself, not a coerced boolean — the left
// operand is returned unevaluated-right when it already determines the
// result.
func (e *Evaluator) evalLogical(n *parser.Node) (value.Value, error) {
	left, err := e.eval(n.Children[0])
	if err != nil {
		return nil, err
	}
	if n.Op.Kind == lexer.AND {
		if !value.Truthy(left) {
			return left, nil
		}
		return e.eval(n.Children[1])
	}
	// OR
	if value.Truthy(left) {
		return left, nil
	}
	return e.eval(n.Children[1])
}

// evalComparison implements `== != < <= > >=`. Booleans are represented
// as Int 0/1 throughout this codebase (see value.Unary's `not`), so
// comparisons follow the same convention rather than introducing a
// distinct boolean kind.
func (e *Evaluator) evalComparison(n *parser.Node) (value.Value, error) {
	left, err := e.eval(n.Children[0])
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Children[1])
	if err != nil {
		return nil, err
	}
	switch n.Op.Kind {
	case lexer.EQ:
		return boolValue(value.Equal(left, right)), nil
	case lexer.NE:
		return boolValue(!value.Equal(left, right)), nil
	case lexer.LT:
		lt, err := value.Less(left, right)
		if err != nil {
			return nil, e.wrap(n, err)
		}
		return boolValue(lt), nil
	case lexer.LE:
		gt, err := value.Less(right, left)
		if err != nil {
			return nil, e.wrap(n, err)
		}
		return boolValue(!gt), nil
	case lexer.GT:
		gt, err := value.Less(right, left)
		if err != nil {
			return nil, e.wrap(n, err)
		}
		return boolValue(gt), nil
	default: // GE
		lt, err := value.Less(left, right)
		if err != nil {
			return nil, e.wrap(n, err)
		}
		return boolValue(!lt), nil
	}
}

func boolValue(b bool) value.Value {
	if b {
		return value.NewInt(1)
	}
	return value.NewInt(0)
}

// evalIndex handles both plain subscripting (`target[key]`, 2 children)
// and the slice form (`target[lo:hi]`, 3 children with either bound
// possibly nil/omitted).
func (e *Evaluator) evalIndex(n *parser.Node) (value.Value, error) {
	base, err := e.eval(n.Children[0])
	if err != nil {
		return nil, err
	}
	if len(n.Children) == 3 {
		lo, err := e.optIndexBound(n.Children[1])
		if err != nil {
			return nil, err
		}
		hi, err := e.optIndexBound(n.Children[2])
		if err != nil {
			return nil, err
		}
		v, err := value.GetSlice(base, lo, hi)
		if err != nil {
			return nil, e.wrap(n, err)
		}
		return v, nil
	}

	key, err := e.eval(n.Children[1])
	if err != nil {
		return nil, err
	}
	v, err := value.GetIndex(base, key)
	if err != nil {
		return nil, e.wrap(n, err)
	}
	return v, nil
}

// optIndexBound evaluates a possibly-nil slice bound child, requiring it
// to be an Int when present.
func (e *Evaluator) optIndexBound(child *parser.Node) (*int, error) {
	if child == nil {
		return nil, nil
	}
	v, err := e.eval(child)
	if err != nil {
		return nil, err
	}
	i, ok := v.(value.Int)
	if !ok {
		return nil, e.errorf(child, "slice bound must be an int, got %s", v.Kind())
	}
	n := int(i.V)
	return &n, nil
}
