package value

import (
	"math"
	"strings"

	"github.com/modelgen-run/modelgen/lexer"
)

// Binary implements spec §4.3's arithmetic table for the six binary
// operators `+ - * / // %`. Operand-kind combinations not covered by the
// table are a TypeError.
func Binary(op lexer.Kind, a, b Value) (Value, error) {
	switch op {
	case lexer.PLUS:
		return binaryPlus(a, b)
	case lexer.MINUS:
		return numeric(op, a, b, func(x, y float64) float64 { return x - y })
	case lexer.STAR:
		return binaryStar(a, b)
	case lexer.SLASH:
		return binarySlash(a, b)
	case lexer.DSLASH:
		return binaryFloorDiv(a, b)
	case lexer.PERCENT:
		return binaryPercent(a, b)
	default:
		return nil, &TypeError{Op: op.String(), A: a, B: b}
	}
}

func binaryPlus(a, b Value) (Value, error) {
	if a.Kind() == KString && b.Kind() == KString {
		return NewString(a.(String).V + b.(String).V), nil
	}
	if a.Kind() == KTuple && b.Kind() == KTuple {
		return NewTuple(concat(a.(*Tuple).Elems, b.(*Tuple).Elems)...), nil
	}
	if a.Kind() == KList && b.Kind() == KList {
		return NewList(concat(a.(*List).Elems, b.(*List).Elems)...), nil
	}
	if IsNumeric(a) && IsNumeric(b) {
		return numeric(lexer.PLUS, a, b, func(x, y float64) float64 { return x + y })
	}
	return nil, &TypeError{Op: "+", A: a, B: b}
}

func binaryStar(a, b Value) (Value, error) {
	switch {
	case a.Kind() == KString && b.Kind() == KInt:
		return NewString(strings.Repeat(a.(String).V, repeatCount(b))), nil
	case a.Kind() == KInt && b.Kind() == KString:
		return NewString(strings.Repeat(b.(String).V, repeatCount(a))), nil
	case a.Kind() == KList && b.Kind() == KInt:
		return NewList(repeatSeq(a.(*List).Elems, repeatCount(b))...), nil
	case a.Kind() == KTuple && b.Kind() == KInt:
		return NewTuple(repeatSeq(a.(*Tuple).Elems, repeatCount(b))...), nil
	case IsNumeric(a) && IsNumeric(b):
		return numeric(lexer.STAR, a, b, func(x, y float64) float64 { return x * y })
	default:
		return nil, &TypeError{Op: "*", A: a, B: b}
	}
}

func binarySlash(a, b Value) (Value, error) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return nil, &TypeError{Op: "/", A: a, B: b}
	}
	if AsFloat64(b) == 0 {
		return nil, &ArithmeticError{Op: "division"}
	}
	// "/" always produces a float (spec §4.3), regardless of operand kinds.
	return NewFloat(float32(AsFloat64(a) / AsFloat64(b))), nil
}

func binaryFloorDiv(a, b Value) (Value, error) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return nil, &TypeError{Op: "//", A: a, B: b}
	}
	if a.Kind() == KInt && b.Kind() == KInt {
		bi := b.(Int).V
		if bi == 0 {
			return nil, &ArithmeticError{Op: "integer division"}
		}
		ai := a.(Int).V
		q := ai / bi
		if (ai%bi != 0) && ((ai < 0) != (bi < 0)) {
			q-- // floor, not truncate, toward negative infinity
		}
		return NewInt(q), nil
	}
	if AsFloat64(b) == 0 {
		return nil, &ArithmeticError{Op: "integer division"}
	}
	return NewFloat(float32(math.Floor(AsFloat64(a) / AsFloat64(b)))), nil
}

func binaryPercent(a, b Value) (Value, error) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return nil, &TypeError{Op: "%", A: a, B: b}
	}
	if a.Kind() == KInt && b.Kind() == KInt {
		bi := b.(Int).V
		if bi == 0 {
			return nil, &ArithmeticError{Op: "modulo"}
		}
		return NewInt(a.(Int).V % bi), nil
	}
	// float % uses fmod semantics (spec §4.3), even in the mixed
	// int/float case.
	if AsFloat64(b) == 0 {
		return nil, &ArithmeticError{Op: "modulo"}
	}
	return NewFloat(float32(math.Mod(AsFloat64(a), AsFloat64(b)))), nil
}

// numeric applies fn to a and b widened to float64, then narrows the
// result back to Int if both operands were Int, else Float — the common
// "int op int -> int, anything else -> float" promotion rule.
func numeric(op lexer.Kind, a, b Value, fn func(x, y float64) float64) (Value, error) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return nil, &TypeError{Op: op.String(), A: a, B: b}
	}
	r := fn(AsFloat64(a), AsFloat64(b))
	if a.Kind() == KInt && b.Kind() == KInt {
		return NewInt(int32(r)), nil
	}
	return NewFloat(float32(r)), nil
}

func repeatCount(v Value) int {
	n := int(v.(Int).V)
	if n < 0 {
		return 0
	}
	return n
}

func concat(a, b []Value) []Value {
	out := make([]Value, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func repeatSeq(elems []Value, n int) []Value {
	out := make([]Value, 0, len(elems)*n)
	for i := 0; i < n; i++ {
		out = append(out, elems...)
	}
	return out
}

// Unary implements the three prefix operators: numeric identity/negate
// for `+`/`-`, logical negation (via Truthy) for `not`.
func Unary(op lexer.Kind, v Value) (Value, error) {
	switch op {
	case lexer.PLUS:
		if !IsNumeric(v) {
			return nil, &TypeError{Op: "+", A: v}
		}
		return v, nil
	case lexer.MINUS:
		switch n := v.(type) {
		case Int:
			return NewInt(-n.V), nil
		case Float:
			return NewFloat(-n.V), nil
		default:
			return nil, &TypeError{Op: "-", A: v}
		}
	case lexer.NOT:
		if Truthy(v) {
			return NewInt(0), nil
		}
		return NewInt(1), nil
	default:
		return nil, &TypeError{Op: op.String(), A: v}
	}
}
