package value

import "strings"

// ToString renders v the way `print` and string-concatenation/conversion
// do: numbers in their natural base-10 form, strings unquoted (print
// shows content, not a literal), containers recursively with their
// bracket/brace syntax, null as the literal "null", callables/modules by
// name.
func ToString(v Value) string {
	switch t := v.(type) {
	case NullType:
		return "null"
	case Int:
		return itoa32(t.V)
	case Float:
		return formatFloat(t.V)
	case String:
		return t.V
	case *Tuple:
		return joinElems(t.Elems, "(", ")")
	case *List:
		return joinElems(t.Elems, "[", "]")
	case *Map:
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('"')
			b.WriteString(k)
			b.WriteString(`": `)
			b.WriteString(reprElem(t.vals[k]))
		}
		b.WriteByte('}')
		return b.String()
	case *CFunction:
		return "<cfunction " + t.Name + ">"
	case *Function:
		return "<" + t.Kind().String() + " " + t.Name + ">"
	case *ModuleValue:
		return "<module " + t.Ref.ModuleName() + ">"
	default:
		return "<?>"
	}
}

// reprElem renders an element nested inside a container: strings keep
// their quotes so that `print([1, "a"])` reads unambiguously, unlike the
// top-level ToString of a bare string.
func reprElem(v Value) string {
	if s, ok := v.(String); ok {
		return `"` + s.V + `"`
	}
	return ToString(v)
}

func joinElems(elems []Value, open, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(reprElem(e))
	}
	b.WriteString(close)
	return b.String()
}

func itoa32(v int32) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	var buf [12]byte
	i := len(buf)
	u := uint32(v)
	if neg {
		u = uint32(-v)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
