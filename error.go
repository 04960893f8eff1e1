// error.go — the generic propagation container for xgx-throw.
//
// Design tenets:
//   - Augment, don't replace: the origin is stored verbatim, never inspected
//     or classified by the core.
//   - Append-only provenance: points and context grow one way; nothing
//     reorders or truncates them (Transform carries them over unchanged).
//   - Single logical owner: each propagation step consumes and returns the
//     value. Mutation is in place (O(1) appends); sharing across goroutines
//     is outside the contract — thread the value, don't alias it.
//   - Copy-on-read accessors: Points/Context return fresh slices so callers
//     can retain or mutate the views without touching the trace.
package xgxthrow

// Error wraps an origin value of type E with an ordered trace of propagation
// points and an ordered list of key/value context entries.
//
// The zero-point state is valid: New returns an unstamped error, and the
// sanctioned two-step protocol (construct, then stamp) is what Throw does in
// one call. See throw.go.
type Error[E any] struct {
	points  []Point
	context []Pair
	origin  E
}

// New wraps origin with empty points and context. No side effects.
func New[E any](origin E) *Error[E] {
	return &Error[E]{origin: origin}
}

// Propagate appends one point to the trace and returns the same error for
// chaining through return statements.
func (e *Error[E]) Propagate(p Point) *Error[E] {
	e.points = append(e.points, p)
	return e
}

// PropagateWith appends one point, then each pair in the order given.
func (e *Error[E]) PropagateWith(p Point, pairs ...Pair) *Error[E] {
	e.points = append(e.points, p)
	e.context = append(e.context, pairs...)
	return e
}

// With appends a single context entry. Build values with ValueOf:
//
//	e.With("code", ValueOf(78)).With("application", ValueOf("rust_core"))
func (e *Error[E]) With(key string, v Value) *Error[E] {
	e.context = append(e.context, Pair{Key: key, Value: v})
	return e
}

// Origin returns the wrapped origin value.
func (e *Error[E]) Origin() E { return e.origin }

// Points returns the propagation trace in chronological order, oldest first.
// The returned slice is a fresh copy (never nil).
func (e *Error[E]) Points() []Point {
	out := make([]Point, len(e.points))
	copy(out, e.points)
	return out
}

// Context returns the context entries in chronological order, oldest first.
// The returned slice is a fresh copy (never nil).
func (e *Error[E]) Context() []Pair {
	out := make([]Pair, len(e.context))
	copy(out, e.context)
	return out
}

// Unwrap exposes the origin to errors.Is/As when its dynamic type implements
// error. Non-error origins yield nil; the trace itself is not a chain.
func (e *Error[E]) Unwrap() error {
	if err, ok := any(e.origin).(error); ok {
		return err
	}
	return nil
}

// Transform converts an Error[E] into an Error[N], carrying points and
// context over unchanged (same backing arrays — the receiver must not be used
// afterwards) and converting the origin with conv.
//
// conv is total by construction; a caller whose conversion can fail resolves
// that failure before calling Transform.
func Transform[E, N any](e *Error[E], conv func(E) N) *Error[N] {
	return &Error[N]{
		points:  e.points,
		context: e.context,
		origin:  conv(e.origin),
	}
}

var _ error = (*Error[string])(nil)
