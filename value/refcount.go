package value

// refcount is embedded into every composite/callable/module value kind
// (tuple, list, map, function, procedure, module — spec §3.3's list of
// kinds that carry owning references to children). Scalars (null, int,
// float, string) are copied by value in Go and never need one.
//
// Go has its own garbage collector, so Destroy below does not free
// anything (spec §9: "adopt the host's collector and remove the manual
// counting"); the count is kept anyway so identity/liveness-dependent
// behavior — RefCount()-inspecting tests, and the module/function weak-
// reference convention in §9 — stays observable exactly as specified.
type refcount struct{ n int32 }

func (r *refcount) RefCount() int32 { return r.n }
func (r *refcount) incref()         { r.n++ }
func (r *refcount) decref() int32   { r.n--; return r.n }

// RefCounted is implemented by every value kind with children that need
// their own counts adjusted when this value's count changes.
type RefCounted interface {
	Value
	RefCount() int32
	Children() []Value
	incref()
	decref() int32
}

func newRefcount() *refcount { return &refcount{n: 1} }

// Reference bumps v's strong reference count, if v carries one. Scalars
// are no-ops: they have no count to bump.
func Reference(v Value) Value {
	if rc, ok := v.(RefCounted); ok {
		rc.incref()
	}
	return v
}

// Destroy decrements v's reference count and, on reaching zero, recurses
// into its children and destroys those too — mirroring
// original_source/src/types.c's mgDestroyValue, minus the actual free
// (see refcount's doc comment).
func Destroy(v Value) {
	rc, ok := v.(RefCounted)
	if !ok {
		return
	}
	if rc.decref() > 0 {
		return
	}
	for _, child := range rc.Children() {
		Destroy(child)
	}
}
