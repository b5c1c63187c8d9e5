package value

// resolveIndex translates a possibly-negative index into an in-range
// absolute index, per spec §4.3 ("negative indices count from the end").
func resolveIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// clampSlice resolves a `[lo:hi]` bound pair, where either bound may be
// nil meaning "start"/"end" respectively. Out-of-range slice bounds clamp
// rather than error — only plain integer indexing is a hard error per
// spec §4.3.
func clampSlice(lo, hi *int, length int) (int, int) {
	l, h := 0, length
	if lo != nil {
		l = *lo
		if l < 0 {
			l += length
		}
		if l < 0 {
			l = 0
		}
		if l > length {
			l = length
		}
	}
	if hi != nil {
		h = *hi
		if h < 0 {
			h += length
		}
		if h < 0 {
			h = 0
		}
		if h > length {
			h = length
		}
	}
	if h < l {
		h = l
	}
	return l, h
}

// GetIndex implements subscript-get for list/tuple (integer index only;
// [lo:hi] slices go through GetSlice) and map (string key, missing yields
// null per spec §4.3 and §7).
func GetIndex(v, key Value) (Value, error) {
	switch c := v.(type) {
	case *List:
		i, ok := key.(Int)
		if !ok {
			return nil, &TypeError{Op: "index", A: v, B: key}
		}
		idx, inRange := resolveIndex(int(i.V), len(c.Elems))
		if !inRange {
			return nil, &IndexError{Index: int(i.V), Length: len(c.Elems)}
		}
		return c.Elems[idx], nil
	case *Tuple:
		i, ok := key.(Int)
		if !ok {
			return nil, &TypeError{Op: "index", A: v, B: key}
		}
		idx, inRange := resolveIndex(int(i.V), len(c.Elems))
		if !inRange {
			return nil, &IndexError{Index: int(i.V), Length: len(c.Elems)}
		}
		return c.Elems[idx], nil
	case *Map:
		s, ok := key.(String)
		if !ok {
			return nil, &TypeError{Op: "index", A: v, B: key}
		}
		if found, ok := c.Get(s.V); ok {
			return found, nil
		}
		return Null, nil
	default:
		return nil, &TypeError{Op: "index", A: v, B: key}
	}
}

// GetSlice implements the `target[lo:hi]` form. lo/hi being nil means an
// omitted bound.
func GetSlice(v Value, lo, hi *int) (Value, error) {
	switch c := v.(type) {
	case *List:
		l, h := clampSlice(lo, hi, len(c.Elems))
		out := make([]Value, h-l)
		copy(out, c.Elems[l:h])
		return NewList(out...), nil
	case *Tuple:
		l, h := clampSlice(lo, hi, len(c.Elems))
		out := make([]Value, h-l)
		copy(out, c.Elems[l:h])
		return NewTuple(out...), nil
	default:
		return nil, &TypeError{Op: "slice", A: v}
	}
}

// SetIndex implements subscript-set: only lists and maps are mutable
// (spec §3.3's tuple is immutable, so SetIndex against one is a type
// error rather than a silent no-op).
func SetIndex(v, key, val Value) error {
	switch c := v.(type) {
	case *List:
		i, ok := key.(Int)
		if !ok {
			return &TypeError{Op: "index-assign", A: v, B: key}
		}
		idx, inRange := resolveIndex(int(i.V), len(c.Elems))
		if !inRange {
			return &IndexError{Index: int(i.V), Length: len(c.Elems)}
		}
		c.Elems[idx] = val
		return nil
	case *Map:
		s, ok := key.(String)
		if !ok {
			return &TypeError{Op: "index-assign", A: v, B: key}
		}
		c.Set(s.V, val)
		return nil
	default:
		return &TypeError{Op: "index-assign", A: v, B: key}
	}
}
