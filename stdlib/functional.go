package stdlib

import "github.com/modelgen-run/modelgen/value"

// registerFunctional wires the higher-order/iteration helpers spec §4.5
// names alongside the five headline builtins: filter, reduce, any, all,
// enumerate, zip, copy, deep_copy. Each one that needs to invoke a
// user-supplied callable goes through value.Runtime.Call rather than
// knowing anything about the evaluator.
func registerFunctional(g *value.Map) {
	set(g, "filter", biFilter)
	set(g, "reduce", biReduce)
	set(g, "any", biAny)
	set(g, "all", biAll)
	set(g, "enumerate", biEnumerate)
	set(g, "zip", biZip)
	set(g, "copy", biCopy)
	set(g, "deep_copy", biDeepCopy)
}

func biFilter(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("filter", 2, 2, len(args))
	}
	elems, ok := sequenceElems(args[1])
	if !ok {
		return nil, &value.TypeError{Op: "filter", A: args[1]}
	}
	var out []value.Value
	for _, e := range elems {
		r, err := rt.Call(args[0], []value.Value{e})
		if err != nil {
			return nil, err
		}
		if value.Truthy(r) {
			out = append(out, e)
		}
	}
	return value.NewList(out...), nil
}

func biReduce(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, arityError("reduce", 2, 3, len(args))
	}
	elems, ok := sequenceElems(args[1])
	if !ok {
		return nil, &value.TypeError{Op: "reduce", A: args[1]}
	}
	var acc value.Value
	start := 0
	if len(args) == 3 {
		acc = args[2]
	} else {
		if len(elems) == 0 {
			return nil, arityError("reduce", 3, 3, 2) // no initial value and empty sequence
		}
		acc = elems[0]
		start = 1
	}
	for _, e := range elems[start:] {
		r, err := rt.Call(args[0], []value.Value{acc, e})
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}

func biAny(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("any", 1, 1, len(args))
	}
	elems, ok := sequenceElems(args[0])
	if !ok {
		return nil, &value.TypeError{Op: "any", A: args[0]}
	}
	for _, e := range elems {
		if value.Truthy(e) {
			return value.NewInt(1), nil
		}
	}
	return value.NewInt(0), nil
}

func biAll(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("all", 1, 1, len(args))
	}
	elems, ok := sequenceElems(args[0])
	if !ok {
		return nil, &value.TypeError{Op: "all", A: args[0]}
	}
	for _, e := range elems {
		if !value.Truthy(e) {
			return value.NewInt(0), nil
		}
	}
	return value.NewInt(1), nil
}

func biEnumerate(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("enumerate", 1, 1, len(args))
	}
	elems, ok := sequenceElems(args[0])
	if !ok {
		return nil, &value.TypeError{Op: "enumerate", A: args[0]}
	}
	out := make([]value.Value, len(elems))
	for i, e := range elems {
		out[i] = value.NewTuple(value.NewInt(int32(i)), e)
	}
	return value.NewList(out...), nil
}

func biZip(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.NewList(), nil
	}
	seqs := make([][]value.Value, len(args))
	minLen := -1
	for i, a := range args {
		elems, ok := sequenceElems(a)
		if !ok {
			return nil, &value.TypeError{Op: "zip", A: a}
		}
		seqs[i] = elems
		if minLen == -1 || len(elems) < minLen {
			minLen = len(elems)
		}
	}
	out := make([]value.Value, minLen)
	for i := 0; i < minLen; i++ {
		tupleElems := make([]value.Value, len(seqs))
		for j, s := range seqs {
			tupleElems[j] = s[i]
		}
		out[i] = value.NewTuple(tupleElems...)
	}
	return value.NewList(out...), nil
}

func biCopy(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("copy", 1, 1, len(args))
	}
	return value.Copy(args[0], false), nil
}

func biDeepCopy(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("deep_copy", 1, 1, len(args))
	}
	return value.Copy(args[0], true), nil
}
