// Package value implements ModelGen's tagged value system: the
// reference-counted union of runtime values described in spec §3.3.
// Per-kind behavior (truthiness, to-string, equality, copy, arithmetic,
// subscripting) is implemented as a closed Go-type switch per operation
// (truthy.go, tostring.go, equality.go, copy.go, arithmetic.go,
// index.go, convert.go) rather than a per-kind function-pointer table:
// with eleven kinds and a handful of operations, one switch per
// operation reads more directly than a vtable none of the call sites
// actually needed to stay generic over.
package value

import "fmt"

// Kind tags which variant of the value union a Value holds.
type Kind int

const (
	KNull Kind = iota
	KInt
	KFloat
	KString
	KTuple
	KList
	KMap
	KCFunction
	KFunction
	KProcedure
	KModule
)

var kindNames = [...]string{
	KNull: "null", KInt: "int", KFloat: "float", KString: "string",
	KTuple: "tuple", KList: "list", KMap: "map",
	KCFunction: "cfunction",
	KFunction:  "function", KProcedure: "procedure", KModule: "module",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is the interface every runtime value implements. It is
// deliberately minimal — Kind for dispatch, String for diagnostics — so
// that the behavior that actually varies per kind (truthiness,
// arithmetic, equality, subscripting...) lives in this package's
// per-operation switch functions, not in methods scattered across the
// concrete types.
type Value interface {
	Kind() Kind
}
