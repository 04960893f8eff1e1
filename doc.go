// doc.go — package documentation for xgx-throw
//
// Package xgxthrow wraps an origin error value with an accumulating trace of
// propagation points (call-site stamps) and structured key/value context.
// It is designed to be:
//   - Augmenting, not replacing: the origin stays a plain Go value; xgx-throw
//     records WHERE it traveled, it never classifies or retries.
//   - Ergonomic at call sites (Throw/Up capture the caller automatically)
//   - Deterministic in output (ordered points and context, stable wire shape)
//
// # Model
//
// Error[E] owns three things:
//   - origin E        — the wrapped value, set once, never inspected by core
//   - points []Point  — append-only call-site stamps, oldest first
//   - context []Pair  — append-only key/value entries, oldest first
//
// A leaf call site creates the error; every caller that re-raises it appends
// exactly one Point (and optionally more context); the outermost consumer
// renders or unwraps it. One logical owner per chain: the value is threaded
// through returns, never shared.
//
// # Reading a trace
//
// The text form mirrors an innermost-first stack: the most recently attached
// context and the most recent call site print closest to the message.
//
//	Error: connection refused
//		attempt: 3
//		broker: kafka-2
//		at 79:0 in zaldinar/startup (startup.go)
//		at 104:0 in zaldinar/startup (startup.go)
//		at 28:0 in zaldinar/irclib (irclib.go)
//
// # Using Throw and Up
//
// Throw wraps a fresh failure and stamps the caller; Up stamps one more point
// on the way out. Both accept optional context pairs built with KV.
//
//	func readLog(path string) (string, *xgxthrow.Error[error]) {
//		buf, err := os.ReadFile(path)
//		if err != nil {
//			return "", xgxthrow.Throw[error](err, xgxthrow.KV("path", path))
//		}
//		return string(buf), nil
//	}
//
//	func doThings() *xgxthrow.Error[error] {
//		contents, terr := readLog("some_file.log")
//		if terr != nil {
//			return xgxthrow.Up(terr)
//		}
//		fmt.Println("log contents:", contents)
//		return nil
//	}
//
// Points can also be constructed explicitly with NewPoint for collaborators
// that carry their own location data (code generators, instrumentation).
//
// # Rendering
//
//   - Error() / %v / %s  → display form ("Error: <origin>" + trace)
//   - %+v                → debug form (origin rendered verbosely)
//   - %q                 → quoted display form
//
// Text rendering reverses point/context order for readability. The machine
// form does NOT: Record/MarshalJSON and the zerolog adapter emit points and
// context chronologically, fields in the fixed order points, context, error,
// with context values serialized as bare primitives.
//
// # What xgx-throw is not
//
// No retry, no error classification, no runtime stack unwinding: the trace
// holds exactly the points callers recorded. Control flow stays with the
// caller; this package only accumulates and renders.
package xgxthrow
