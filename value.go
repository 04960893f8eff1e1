// value.go — closed context-value model for xgx-throw.
//
// Design:
//   • Value is a tagged union over a fixed set of primitive kinds. Exactly one
//     kind is active; every kind renders totally (no panics, no reflection).
//   • Construction goes through ValueOf, whose type set IS the conversion set:
//     each Go source type maps to exactly one kind. int/uint admit Go's
//     untyped constants and map to the 64-bit kinds.
//   • Pair couples a string key with a Value. Keys need not be unique and
//     insertion order is semantic; containers never re-sort pairs.
//
// Rationale:
//   • A closed union keeps display and serialization exhaustive; `any` would
//     push partiality into every consumer.
//   • Payload slots are shared by width class (b/i/u/f/s) so a Value stays
//     small and comparable-free copies are cheap.
package xgxthrow

import "strconv"

// Kind identifies the active variant of a Value.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindString
)

// kindNames is indexed by Kind. Order must match the const block above.
var kindNames = [...]string{
	"bool",
	"int8",
	"uint8",
	"int16",
	"uint16",
	"int32",
	"uint32",
	"int64",
	"uint64",
	"float32",
	"float64",
	"string",
}

// String returns the lowercase kind name, or "unknown" for out-of-range kinds.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Primitive is the closed conversion set for context values. Each member maps
// to exactly one Kind; int and uint map to the 64-bit kinds so that untyped
// constants ("attempt", 3) convert without a cast.
type Primitive interface {
	bool |
		int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		int | uint |
		float32 | float64 |
		string
}

// Value is an immutable context payload. The zero Value is a false bool.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
}

// ValueOf converts a primitive into its Value variant. The type switch is
// exhaustive over Primitive; the trailing return is unreachable.
func ValueOf[T Primitive](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return Value{kind: KindBool, b: x}
	case int8:
		return Value{kind: KindInt8, i: int64(x)}
	case uint8:
		return Value{kind: KindUint8, u: uint64(x)}
	case int16:
		return Value{kind: KindInt16, i: int64(x)}
	case uint16:
		return Value{kind: KindUint16, u: uint64(x)}
	case int32:
		return Value{kind: KindInt32, i: int64(x)}
	case uint32:
		return Value{kind: KindUint32, u: uint64(x)}
	case int64:
		return Value{kind: KindInt64, i: x}
	case uint64:
		return Value{kind: KindUint64, u: x}
	case int:
		return Value{kind: KindInt64, i: int64(x)}
	case uint:
		return Value{kind: KindUint64, u: uint64(x)}
	case float32:
		return Value{kind: KindFloat32, f: float64(x)}
	case float64:
		return Value{kind: KindFloat64, f: x}
	case string:
		return Value{kind: KindString, s: x}
	}
	return Value{}
}

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// appendText appends the display form of v to dst. Total for every kind.
func (v Value) appendText(dst []byte) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.AppendInt(dst, v.i, 10)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return strconv.AppendUint(dst, v.u, 10)
	case KindFloat32:
		return strconv.AppendFloat(dst, v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.AppendFloat(dst, v.f, 'g', -1, 64)
	default:
		return append(dst, v.s...)
	}
}

// String renders the bare payload: true, 78, 12.5, omega.
func (v Value) String() string { return string(v.appendText(nil)) }

// Pair is one contextual key/value entry attached to an error.
// Immutable once constructed; lifecycle ends with its owning Error.
type Pair struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// KV builds a Pair from a primitive value.
//
// Example:
//
//	e.PropagateWith(p, KV("code", 78), KV("application", "rust_core"))
func KV[T Primitive](key string, v T) Pair {
	return Pair{Key: key, Value: ValueOf(v)}
}
