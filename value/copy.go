package value

// Copy implements spec §4.3's shallow/deep copy distinction. Shallow
// copy duplicates the outer container and references its children;
// deep copy recursively duplicates everything. Scalars are returned
// as-is either way — Go values of those kinds are already copied by
// value at every assignment.
func Copy(v Value, deep bool) Value {
	switch c := v.(type) {
	case *Tuple:
		return NewTuple(copyElems(c.Elems, deep)...)
	case *List:
		return NewList(copyElems(c.Elems, deep)...)
	case *Map:
		out := NewMap()
		for _, k := range c.keys {
			ev := c.vals[k]
			if deep {
				ev = Copy(ev, true)
			} else {
				Reference(ev)
			}
			out.Set(k, ev)
		}
		return out
	default:
		return v
	}
}

func copyElems(elems []Value, deep bool) []Value {
	out := make([]Value, len(elems))
	for i, e := range elems {
		if deep {
			out[i] = Copy(e, true)
		} else {
			out[i] = e
			Reference(e)
		}
	}
	return out
}
