package stdlib

import "github.com/modelgen-run/modelgen/value"

// registerIntrospection wires `globals`, `locals`, and `traceback` —
// spec §4.5's prelude entries for inspecting the evaluator's own running
// state, each a thin pass-through to value.Runtime.
func registerIntrospection(g *value.Map) {
	set(g, "globals", func(rt value.Runtime, args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, arityError("globals", 0, 0, len(args))
		}
		return rt.Globals(), nil
	})
	set(g, "locals", func(rt value.Runtime, args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, arityError("locals", 0, 0, len(args))
		}
		return rt.Locals(), nil
	})
	set(g, "traceback", func(rt value.Runtime, args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, arityError("traceback", 0, 0, len(args))
		}
		names := rt.Traceback()
		elems := make([]value.Value, len(names))
		for i, n := range names {
			elems[i] = value.NewString(n)
		}
		return value.NewList(elems...), nil
	})
}
