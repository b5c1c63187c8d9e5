package value

// ModuleValue is the value-system wrapper around a module.Module (via
// ModuleRef) so that `import "name"` can return the module as an
// ordinary first-class value (spec §3.3's "module" kind) without the
// value package importing the module package. The language has no
// attribute-access syntax, so a module value's globals are not reachable
// through `m.thing`.
type ModuleValue struct {
	*refcount
	Ref    ModuleRef
	Static bool // static/built-in modules are exempt from re-execution
}

func (*ModuleValue) Kind() Kind { return KModule }

func (m *ModuleValue) Children() []Value { return []Value{m.Ref.Globals()} }

// NewModuleValue wraps ref as a first-class Value.
func NewModuleValue(ref ModuleRef, static bool) Value {
	return &ModuleValue{refcount: newRefcount(), Ref: ref, Static: static}
}
