package value

// Truthy implements spec §4.3's truth-value rule: null, zero (int/float),
// and every empty container are false; everything else is true.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case NullType:
		return false
	case Int:
		return t.V != 0
	case Float:
		return t.V != 0
	case String:
		return t.V != ""
	case *Tuple:
		return len(t.Elems) != 0
	case *List:
		return len(t.Elems) != 0
	case *Map:
		return t.Len() != 0
	default:
		// cfunction/function/procedure/module: always
		// truthy, mirroring the original's "anything not explicitly
		// falsy is truthy".
		return true
	}
}
