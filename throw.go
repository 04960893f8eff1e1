// throw.go — call-site convenience layer for xgx-throw.
//
// Purpose
//   - Implement the sanctioned two-step protocol (construct, then stamp) in
//     one call: Throw wraps a fresh failure with the caller's Point; Up
//     stamps one more Point on an existing error on its way out.
//   - Forward frame skips for helpers that wrap these (same discipline as
//     Caller's skip accounting in point.go).
//
// The container itself never captures frames; only this layer and explicit
// Caller/NewPoint calls produce Points.
package xgxthrow

// Throw wraps origin, stamps the immediate caller, and attaches any pairs.
//
//	return xgxthrow.Throw[error](err, xgxthrow.KV("path", path))
func Throw[E any](origin E, pairs ...Pair) *Error[E] {
	return New(origin).PropagateWith(Caller(1), pairs...)
}

// ThrowSkip is Throw with 'skip' extra frames skipped (0 behaves like Throw).
// Use it in helpers so the stamp lands on the helper's caller.
func ThrowSkip[E any](skip int, origin E, pairs ...Pair) *Error[E] {
	return New(origin).PropagateWith(Caller(skip+1), pairs...)
}

// Up stamps the immediate caller on an existing error and attaches any pairs.
// Nil-safe: Up(nil) returns nil, so propagation sites can call it
// unconditionally on the error path.
func Up[E any](e *Error[E], pairs ...Pair) *Error[E] {
	if e == nil {
		return nil
	}
	return e.PropagateWith(Caller(1), pairs...)
}

// UpSkip is Up with 'skip' extra frames skipped (0 behaves like Up).
func UpSkip[E any](skip int, e *Error[E], pairs ...Pair) *Error[E] {
	if e == nil {
		return nil
	}
	return e.PropagateWith(Caller(skip+1), pairs...)
}
