package stdlib

import (
	"fmt"

	"github.com/modelgen-run/modelgen/module"
	"github.com/modelgen-run/modelgen/value"
)

func set(g *value.Map, name string, fn value.NativeFunc) {
	g.Set(name, value.NewCFunction(name, fn))
}

// registerPrelude wires the five illustrative builtins named in spec §1
// (print, range, len, type, import) plus the type-conversion
// constructors spec §4.5's fuller prelude list names (int, float,
// string, bool, tuple, list, map), and a version constant.
func registerPrelude(g *value.Map, inst *module.Instance) {
	set(g, "print", biPrint)
	set(g, "range", biRange)
	set(g, "len", biLen)
	set(g, "type", biType)
	set(g, "int", biConvert(value.KInt))
	set(g, "float", biConvert(value.KFloat))
	set(g, "string", biConvert(value.KString))
	set(g, "bool", biBool)
	set(g, "tuple", biTuple)
	set(g, "list", biList)
	set(g, "map", biMap)

	importFn := func(rt value.Runtime, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError("import", 1, 1, len(args))
		}
		name, ok := args[0].(value.String)
		if !ok {
			return nil, &value.TypeError{Op: "import", A: args[0]}
		}
		return rt.Import(name.V)
	}
	set(g, "import", importFn)
	set(g, "__import", importFn)

	evalFn := func(rt value.Runtime, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError("__eval", 1, 1, len(args))
		}
		src, ok := args[0].(value.String)
		if !ok {
			return nil, &value.TypeError{Op: "__eval", A: args[0]}
		}
		return rt.Eval(src.V)
	}
	set(g, "__eval", evalFn)

	g.Set("__version__", value.NewTuple(value.NewInt(0), value.NewInt(1), value.NewInt(0)))

	_ = inst // reserved: future prelude entries may need instance-level state
}

func biPrint(rt value.Runtime, args []value.Value) (value.Value, error) {
	for i, a := range args {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(value.ToString(a))
	}
	fmt.Println()
	return value.Null, nil
}

// biRange materializes spec §4.4's range(a, b, c) into a concrete list.
// The step sign/zero rules follow spec §4.4 literally (step 0 is a
// fatal error) rather than original_source's auto-sign-on-zero
// shortcut — spec explicitly overrides the original here.
func biRange(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, arityError("range", 1, 3, len(args))
	}
	for _, a := range args {
		if !value.IsNumeric(a) {
			return nil, &value.TypeError{Op: "range", A: a}
		}
	}

	isFloat := false
	for _, a := range args {
		if a.Kind() == value.KFloat {
			isFloat = true
		}
	}

	var start, stop, step float64 = 0, 0, 1
	switch len(args) {
	case 1:
		stop = value.AsFloat64(args[0])
	case 2:
		start = value.AsFloat64(args[0])
		stop = value.AsFloat64(args[1])
	case 3:
		start = value.AsFloat64(args[0])
		stop = value.AsFloat64(args[1])
		step = value.AsFloat64(args[2])
	}

	if step == 0 {
		return nil, fmt.Errorf("range: step must not be zero")
	}
	diff := stop - start
	if (step > 0) != (diff > 0) {
		return value.NewList(), nil
	}

	var n int
	if isFloat {
		n = int(ceilDiv(diff, step))
	} else {
		n = int(diff/step) + boolToInt((int64(diff)%int64(step)) != 0)
	}
	if n < 0 {
		n = 0
	}

	elems := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		v := start + step*float64(i)
		if isFloat {
			elems = append(elems, value.NewFloat(float32(v)))
		} else {
			elems = append(elems, value.NewInt(int32(v)))
		}
	}
	return value.NewList(elems...), nil
}

func ceilDiv(diff, step float64) float64 {
	q := diff / step
	if q != float64(int64(q)) && q > 0 {
		return float64(int64(q)) + 1
	}
	return float64(int64(q))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func biLen(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("len", 1, 1, len(args))
	}
	switch v := args[0].(type) {
	case value.String:
		return value.NewInt(int32(len(v.V))), nil
	case *value.Tuple:
		return value.NewInt(int32(len(v.Elems))), nil
	case *value.List:
		return value.NewInt(int32(len(v.Elems))), nil
	case *value.Map:
		return value.NewInt(int32(v.Len())), nil
	default:
		return nil, &value.TypeError{Op: "len", A: args[0]}
	}
}

func biType(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("type", 1, 1, len(args))
	}
	return value.NewString(args[0].Kind().String()), nil
}

func biConvert(to value.Kind) value.NativeFunc {
	return func(rt value.Runtime, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError(to.String(), 1, 1, len(args))
		}
		return value.ConvertTo(args[0], to)
	}
}

func biBool(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("bool", 1, 1, len(args))
	}
	if value.Truthy(args[0]) {
		return value.NewInt(1), nil
	}
	return value.NewInt(0), nil
}

func biTuple(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NewTuple(), nil
	}
	if len(args) == 1 {
		if elems, ok := sequenceElems(args[0]); ok {
			return value.NewTuple(elems...), nil
		}
	}
	return value.NewTuple(args...), nil
}

func biList(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NewList(), nil
	}
	if len(args) == 1 {
		if elems, ok := sequenceElems(args[0]); ok {
			return value.NewList(elems...), nil
		}
	}
	return value.NewList(args...), nil
}

// biMap constructs an empty map, or builds one from a list/tuple of
// 2-element (key, value) pairs — the Python-`dict()`-style convenience
// spec §4.5 groups alongside `tuple`/`list` as ordinary base-library
// constructors.
func biMap(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NewMap(), nil
	}
	if len(args) != 1 {
		return nil, arityError("map", 0, 1, len(args))
	}
	elems, ok := sequenceElems(args[0])
	if !ok {
		return nil, &value.TypeError{Op: "map", A: args[0]}
	}
	out := value.NewMap()
	for _, e := range elems {
		pair, ok := sequenceElems(e)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("map: expected (key, value) pairs")
		}
		key, ok := pair[0].(value.String)
		if !ok {
			return nil, &value.TypeError{Op: "map", A: pair[0]}
		}
		out.Set(key.V, pair[1])
	}
	return out, nil
}

// sequenceElems returns v's elements if v is a tuple or list.
func sequenceElems(v value.Value) ([]value.Value, bool) {
	switch t := v.(type) {
	case *value.Tuple:
		return t.Elems, true
	case *value.List:
		return t.Elems, true
	default:
		return nil, false
	}
}

func arityError(name string, min, max, got int) error {
	if min == max {
		return fmt.Errorf("%s: expected %d argument(s), got %d", name, min, got)
	}
	return fmt.Errorf("%s: expected %d to %d argument(s), got %d", name, min, max, got)
}
