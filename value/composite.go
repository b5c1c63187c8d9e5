package value

// Tuple is an immutable ordered sequence of strong value references
// (spec §3.3). "Immutable" is enforced at run time — SetIndex returns a
// TypeError for a tuple — not by a compile-time distinct read-only
// slice type, matching how the C
// original shares one MGValue shape for both tuple and list.
type Tuple struct {
	*refcount
	Elems []Value
}

func (*Tuple) Kind() Kind { return KTuple }

func (t *Tuple) Children() []Value { return t.Elems }

// NewTuple constructs a Tuple over elems, taking ownership of (i.e. not
// re-referencing) the slice and its contents — callers that built elems
// fresh for this call don't need to Reference each one first.
func NewTuple(elems ...Value) Value {
	return &Tuple{refcount: newRefcount(), Elems: elems}
}

// List is a mutable ordered sequence of strong value references (spec
// §3.3).
type List struct {
	*refcount
	Elems []Value
}

func (*List) Kind() Kind { return KList }

func (l *List) Children() []Value { return l.Elems }

// NewList constructs a List over elems (see NewTuple's ownership note).
func NewList(elems ...Value) Value {
	return &List{refcount: newRefcount(), Elems: elems}
}

// Map is an insertion-ordered mapping of string key to strong value
// reference (spec §3.3). Insertion order is preserved via a parallel key
// slice so that globals/locals and diagnostic dumps all see
// a stable iteration order.
type Map struct {
	*refcount
	keys []string
	vals map[string]Value
}

func (*Map) Kind() Kind { return KMap }

func (m *Map) Children() []Value {
	out := make([]Value, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.vals[k])
	}
	return out
}

// NewMap constructs an empty Map.
func NewMap() *Map {
	return &Map{refcount: newRefcount(), vals: make(map[string]Value)}
}

// Get returns the value bound to key and whether key is present. Missing
// keys are not an error at this layer — spec §4.3/§7 make that the
// evaluator's/builtin's business (subscripting yields null, name
// resolution uses the ok return directly).
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Set binds key to v, appending key to the insertion order the first
// time it's seen.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Delete removes key, if present.
func (m *Map) Delete(key string) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the map's keys in insertion order. Callers must not
// mutate the returned slice.
func (m *Map) Keys() []string { return m.keys }

func (m *Map) Len() int { return len(m.keys) }
