package value

import (
	"strconv"
	"strings"
)

// ConvertTo implements the base library's `int`/`float`/`string`
// conversion builtins (spec §4.5's prelude); `bool` is handled by
// stdlib's own builtin over Truthy. It is kept in this package,
// not stdlib, because it is purely a function of the value system's own
// kinds — the builtin wrappers in stdlib just call through to it.
func ConvertTo(v Value, to Kind) (Value, error) {
	switch to {
	case KInt:
		return toInt(v)
	case KFloat:
		return toFloat(v)
	case KString:
		return NewString(ToString(v)), nil
	default:
		return nil, &TypeError{Op: "convert-to-" + to.String(), A: v}
	}
}

func toInt(v Value) (Value, error) {
	switch t := v.(type) {
	case Int:
		return t, nil
	case Float:
		return NewInt(int32(t.V)), nil
	case String:
		n, err := strconv.ParseInt(strings.TrimSpace(t.V), 10, 32)
		if err != nil {
			return nil, &TypeError{Op: "int", A: v}
		}
		return NewInt(int32(n)), nil
	default:
		if Truthy(v) {
			return NewInt(1), nil
		}
		return NewInt(0), nil
	}
}

func toFloat(v Value) (Value, error) {
	switch t := v.(type) {
	case Float:
		return t, nil
	case Int:
		return NewFloat(float32(t.V)), nil
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(t.V), 32)
		if err != nil {
			return nil, &TypeError{Op: "float", A: v}
		}
		return NewFloat(float32(f)), nil
	default:
		return nil, &TypeError{Op: "float", A: v}
	}
}
