// format.go — text rendering for xgx-throw.
//
// Behavior:
//
//	%s, %v   → display form:
//	             Error: <origin-%v>
//	             \t<key>: <value>          (context, newest first)
//	             \tat <line>:<col> in <module_path> (<file>)   (points, newest first)
//	%+v      → debug form: same shape, origin rendered with %+v.
//	%q       → quoted display form.
//
// Rationale:
//   - Reverse order on purpose: the most local context and the most recent
//     call site read closest to the message, innermost-first like a stack.
//   - Rendering is linear in the number of points/entries and never fails as
//     long as the origin's own formatting doesn't.
//   - Machine output lives in marshal.go/zerolog.go and keeps chronological
//     order; only the human form reverses.
package xgxthrow

import (
	"fmt"
	"io"
	"strings"
)

// Error returns the display form. Rendering is idempotent: the same error
// renders to byte-identical output until it is mutated.
func (e *Error[E]) Error() string {
	var b strings.Builder
	e.writeTrace(&b, false)
	return b.String()
}

// writeTrace writes the full render to w. debug selects the origin verb.
func (e *Error[E]) writeTrace(w io.Writer, debug bool) {
	if debug {
		_, _ = fmt.Fprintf(w, "Error: %+v", e.origin)
	} else {
		_, _ = fmt.Fprintf(w, "Error: %v", e.origin)
	}

	// Context, most recently attached first.
	for i := len(e.context) - 1; i >= 0; i-- {
		kv := e.context[i]
		_, _ = fmt.Fprintf(w, "\n\t%s: %s", kv.Key, kv.Value.String())
	}

	// Points, most recent call site first.
	for i := len(e.points) - 1; i >= 0; i-- {
		p := e.points[i]
		_, _ = fmt.Fprintf(w, "\n\tat %d:%d in %s (%s)", p.Line, p.Column, p.ModulePath, p.File)
	}
}

// Format implements fmt.Formatter. See the file header for verb mapping.
func (e *Error[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.writeTrace(s, true)
			return
		}
		e.writeTrace(s, false)
	case 's':
		e.writeTrace(s, false)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		e.writeTrace(s, false)
	}
}

var _ fmt.Formatter = (*Error[string])(nil)
