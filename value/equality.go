package value

import "math"

// floatEpsilon is the tolerance spec §4.3 mandates for mixed/float
// equality comparisons.
const floatEpsilon = 1e-6

// Equal implements spec §4.3's equality rules: numeric cross-kind
// comparison, content equality for strings, deep element-wise equality
// for tuples/lists, unordered key/value equality for maps, pointer
// identity for cfunctions, AST-node identity for functions/procedures
// (two values over the same KProc node are equal), and module identity
// for module values.
func Equal(a, b Value) bool {
	switch {
	case IsNumeric(a) && IsNumeric(b):
		return math.Abs(AsFloat64(a)-AsFloat64(b)) <= floatEpsilon
	case a.Kind() == KNull && b.Kind() == KNull:
		return true
	case a.Kind() == KString && b.Kind() == KString:
		return a.(String).V == b.(String).V
	case a.Kind() == KTuple && b.Kind() == KTuple:
		return equalSeq(a.(*Tuple).Elems, b.(*Tuple).Elems)
	case a.Kind() == KList && b.Kind() == KList:
		return equalSeq(a.(*List).Elems, b.(*List).Elems)
	case a.Kind() == KMap && b.Kind() == KMap:
		return equalMap(a.(*Map), b.(*Map))
	case a.Kind() == KCFunction && b.Kind() == KCFunction:
		return a.(*CFunction) == b.(*CFunction)
	case (a.Kind() == KFunction || a.Kind() == KProcedure) && a.Kind() == b.Kind():
		return a.(*Function).Proc == b.(*Function).Proc
	case a.Kind() == KModule && b.Kind() == KModule:
		return a.(*ModuleValue).Ref == b.(*ModuleValue).Ref
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalMap(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.keys {
		bv, ok := b.vals[k]
		if !ok || !Equal(a.vals[k], bv) {
			return false
		}
	}
	return true
}

// Less implements ordering for the relational operators. Only numbers
// and strings have a natural order; every other kind is a type error,
// matching spec §7's "unsupported operand" type errors.
func Less(a, b Value) (bool, error) {
	switch {
	case IsNumeric(a) && IsNumeric(b):
		return AsFloat64(a) < AsFloat64(b), nil
	case a.Kind() == KString && b.Kind() == KString:
		return a.(String).V < b.(String).V, nil
	default:
		return false, &TypeError{Op: "<", A: a, B: b}
	}
}
