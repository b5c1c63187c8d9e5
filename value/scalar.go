package value

import (
	"fmt"
	"strconv"
)

// NullType is the type of the singleton null value. Spec §9 leaves the
// choice between a process-wide singleton and a per-instance/value-type
// constant open; DESIGN.md records the decision to keep the single
// process-wide instance, matching original_source's single static
// _mgNullValue and simplifying identity-equality tests.
type NullType struct{}

func (NullType) Kind() Kind { return KNull }

// Null is the one and only null value. Every comparison against "no
// value" — a missing map key, a bodyless proc's result, an omitted else
// branch — returns this exact value.
var Null Value = NullType{}

// Int is a 32-bit signed integer, per spec §3.3.
type Int struct{ V int32 }

func (Int) Kind() Kind { return KInt }

// NewInt constructs an Int value.
func NewInt(v int32) Value { return Int{V: v} }

// Float is a single-precision float, per spec §3.3.
type Float struct{ V float32 }

func (Float) Kind() Kind { return KFloat }

// NewFloat constructs a Float value.
func NewFloat(v float32) Value { return Float{V: v} }

// StringUsage tags how a String's backing buffer is owned, per spec
// §3.3's "byte buffer + length + usage tag (owned / static / keep)".
// Go's GC means the distinction no longer gates freeing, but Static is
// kept as a marker: static strings (interned literals, builtin names)
// are never candidates for in-place mutation by host code.
type StringUsage int

const (
	Owned StringUsage = iota
	Static
	Keep
)

// String is ModelGen's string value: an immutable Go string plus a usage
// tag carried for parity with spec §3.3 (Go strings are already
// immutable, so Owned/Keep behave identically at the value-system level).
type String struct {
	V     string
	Usage StringUsage
}

func (String) Kind() Kind { return KString }

// NewString constructs an owned String value.
func NewString(s string) Value { return String{V: s, Usage: Owned} }

// NewStaticString constructs a String flagged as static (interned,
// never freed) — used for builtin names and literal constants that
// outlive any single module.
func NewStaticString(s string) Value { return String{V: s, Usage: Static} }

// AsFloat64 widens an Int or Float to float64 for mixed-type arithmetic
// and comparison; it panics on any other kind, matching this package's
// convention that callers only invoke it after confirming numeric kind.
func AsFloat64(v Value) float64 {
	switch n := v.(type) {
	case Int:
		return float64(n.V)
	case Float:
		return float64(n.V)
	default:
		panic(fmt.Sprintf("value: AsFloat64 on non-numeric %s", v.Kind()))
	}
}

// IsNumeric reports whether v is an Int or Float.
func IsNumeric(v Value) bool {
	k := v.Kind()
	return k == KInt || k == KFloat
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
