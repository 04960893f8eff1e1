// typed_key.go — optional, type-safe context access for xgx-throw.
//
// Overview
//   Key[T] is a small ergonomic layer for authors who attach and read the
//   same context fields in many places. It does not replace KV/With — it
//   complements them.
//
// Usage
//   var (
//       keyAttempt = xgxthrow.NewKey[int]("attempt")
//       keyBroker  = xgxthrow.NewKey[string]("broker")
//   )
//
//   terr = xgxthrow.Up(terr, keyAttempt.Pair(3), keyBroker.Pair("kafka-2"))
//   n, ok := xgxthrow.Get(terr, keyAttempt) // n=3, ok=true
//
// Caveats
//   • Lookup is by key name AND kind: a Key[string] will not read an entry
//     stored as an integer. Types sharing a kind interchange (int ↔ int64,
//     uint ↔ uint64).
//   • Duplicate keys are allowed; Get reads the most recent entry
//     (last-write-wins, matching the bounded-context discipline).
package xgxthrow

// Key is a typed handle for a context field. T fixes both the stored kind and
// the retrieval type.
type Key[T Primitive] struct {
	name string
}

// NewKey constructs a Key[T] for the given field name.
// Names SHOULD be snake_case for consistency across logs/exports.
func NewKey[T Primitive](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the underlying field name.
func (k Key[T]) Name() string { return k.name }

// Pair builds a context entry for this key.
func (k Key[T]) Pair(v T) Pair {
	return Pair{Key: k.name, Value: ValueOf(v)}
}

// Get reads the most recent entry for k from e's context. It reports false
// when e is nil, the key is absent, or every match holds a different kind.
func Get[T Primitive, E any](e *Error[E], k Key[T]) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	want := ValueOf(zero).kind
	for i := len(e.context) - 1; i >= 0; i-- {
		kv := e.context[i]
		if kv.Key == k.name && kv.Value.kind == want {
			return valueAs[T](kv.Value), true
		}
	}
	return zero, false
}

// valueAs extracts the payload into T. Callers must have checked the kind;
// the pointer switch is exhaustive over Primitive.
func valueAs[T Primitive](v Value) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = v.b
	case *int8:
		*p = int8(v.i)
	case *uint8:
		*p = uint8(v.u)
	case *int16:
		*p = int16(v.i)
	case *uint16:
		*p = uint16(v.u)
	case *int32:
		*p = int32(v.i)
	case *uint32:
		*p = uint32(v.u)
	case *int64:
		*p = v.i
	case *uint64:
		*p = v.u
	case *int:
		*p = int(v.i)
	case *uint:
		*p = uint(v.u)
	case *float32:
		*p = float32(v.f)
	case *float64:
		*p = v.f
	case *string:
		*p = v.s
	}
	return out
}
