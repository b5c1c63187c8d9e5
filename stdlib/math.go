package stdlib

import (
	"math"
	"math/rand"

	"github.com/modelgen-run/modelgen/value"
)

// registerMath wires the math static module's functions, grounded on the
// teacher's std/math.go table (name -> callback) and built on Go's
// stdlib math/math-rand packages: no repo in the retrieval pack wires a
// third-party numerics library for a scripting runtime's builtin
// surface, so stdlib math is the correct, idiomatic choice here (see
// DESIGN.md).
func registerMath(g *value.Map) {
	unary := func(name string, fn func(float64) float64) {
		set(g, name, func(rt value.Runtime, args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError(name, 1, 1, len(args))
			}
			if !value.IsNumeric(args[0]) {
				return nil, &value.TypeError{Op: name, A: args[0]}
			}
			return value.NewFloat(float32(fn(value.AsFloat64(args[0])))), nil
		})
	}

	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("sqrt", math.Sqrt)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("asin", math.Asin)
	unary("acos", math.Acos)
	unary("atan", math.Atan)
	unary("log", math.Log)
	unary("log10", math.Log10)
	unary("exp", math.Exp)

	set(g, "abs", mathAbs)
	set(g, "round", mathRound)
	set(g, "min", mathMin)
	set(g, "max", mathMax)
	set(g, "pow", mathPow)
	set(g, "atan2", mathAtan2)
	set(g, "rand", mathRand)
	set(g, "rand_int", mathRandInt)

	g.Set("pi", value.NewFloat(float32(math.Pi)))
	g.Set("e", value.NewFloat(float32(math.E)))
}

func mathAbs(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("abs", 1, 1, len(args))
	}
	switch v := args[0].(type) {
	case value.Int:
		if v.V < 0 {
			return value.NewInt(-v.V), nil
		}
		return v, nil
	case value.Float:
		return value.NewFloat(float32(math.Abs(float64(v.V)))), nil
	default:
		return nil, &value.TypeError{Op: "abs", A: args[0]}
	}
}

func mathRound(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("round", 1, 1, len(args))
	}
	if !value.IsNumeric(args[0]) {
		return nil, &value.TypeError{Op: "round", A: args[0]}
	}
	return value.NewInt(int32(math.Round(value.AsFloat64(args[0])))), nil
}

func mathMin(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("min", 2, 2, len(args))
	}
	less, err := value.Less(args[0], args[1])
	if err != nil {
		return nil, err
	}
	if less {
		return args[0], nil
	}
	return args[1], nil
}

func mathMax(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("max", 2, 2, len(args))
	}
	less, err := value.Less(args[0], args[1])
	if err != nil {
		return nil, err
	}
	if less {
		return args[1], nil
	}
	return args[0], nil
}

func mathPow(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("pow", 2, 2, len(args))
	}
	if !value.IsNumeric(args[0]) || !value.IsNumeric(args[1]) {
		return nil, &value.TypeError{Op: "pow", A: args[0], B: args[1]}
	}
	r := math.Pow(value.AsFloat64(args[0]), value.AsFloat64(args[1]))
	if args[0].Kind() == value.KInt && args[1].Kind() == value.KInt {
		return value.NewInt(int32(r)), nil
	}
	return value.NewFloat(float32(r)), nil
}

func mathAtan2(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("atan2", 2, 2, len(args))
	}
	if !value.IsNumeric(args[0]) || !value.IsNumeric(args[1]) {
		return nil, &value.TypeError{Op: "atan2", A: args[0], B: args[1]}
	}
	return value.NewFloat(float32(math.Atan2(value.AsFloat64(args[0]), value.AsFloat64(args[1])))), nil
}

func mathRand(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError("rand", 0, 0, len(args))
	}
	return value.NewFloat(float32(rand.Float64())), nil
}

func mathRandInt(rt value.Runtime, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("rand_int", 2, 2, len(args))
	}
	lo, ok1 := args[0].(value.Int)
	hi, ok2 := args[1].(value.Int)
	if !ok1 || !ok2 {
		return nil, &value.TypeError{Op: "rand_int", A: args[0], B: args[1]}
	}
	if hi.V <= lo.V {
		return value.NewInt(lo.V), nil
	}
	return value.NewInt(lo.V + rand.Int31n(hi.V-lo.V)), nil
}
