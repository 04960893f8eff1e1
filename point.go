// point.go — propagation-point stamps and caller capture for xgx-throw.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - One frame per stamp: a Point records a single propagation event; the
//     trace grows only when callers propagate, never by unwinding.
//   - Explicit construction stays open: NewPoint exists for collaborators
//     that carry their own location data (codegen, instrumentation).
package xgxthrow

import (
	"runtime"
	"strings"
)

// Point records one propagation or creation event: the call site's line,
// column, enclosing package path, and source file. Immutable once constructed.
//
// Field order is part of the wire contract (line, column, module_path, file).
type Point struct {
	Line       uint32 `json:"line"`
	Column     uint32 `json:"column"`
	ModulePath string `json:"module_path"`
	File       string `json:"file"`
}

// NewPoint constructs a Point from explicit location data. Normal call sites
// should prefer Caller (or Throw/Up, which use it); NewPoint is the escape
// hatch for collaborators implementing their own stamping protocol.
func NewPoint(line, column uint32, modulePath, file string) Point {
	return Point{Line: line, Column: column, ModulePath: modulePath, File: file}
}

// Caller captures the call site 'skip' frames above the caller of Caller
// (skip=0 → the immediate caller). Column is recorded as 0: the Go runtime
// does not expose column information.
//
// Skip accounting:
//   • +1 for runtime.Callers itself
//   • +1 for Caller
//
// so skip+2 places the recorded frame at the user-visible call site. Helpers
// wrapping Caller forward their own +1 (see Throw/Up in throw.go).
func Caller(skip int) Point {
	var pcs [1]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return Point{ModulePath: "unknown", File: "unknown"}
	}
	fr, _ := runtime.CallersFrames(pcs[:n]).Next()
	return Point{
		Line:       uint32(fr.Line),
		Column:     0,
		ModulePath: packagePathOf(fr.Function),
		File:       fr.File,
	}
}

// packagePathOf trims the function (and receiver) suffix from a fully
// qualified runtime symbol, leaving the package import path:
//
//	"github.com/xgx-io/xgx-throw.Caller"   → "github.com/xgx-io/xgx-throw"
//	"main.(*server).run"                   → "main"
//	"pkg/sub.f.func1"                      → "pkg/sub"
//
// The first '.' after the last '/' separates the package path from the
// function name; dots before the last '/' belong to domain names.
func packagePathOf(fn string) string {
	if fn == "" {
		return "unknown"
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}
