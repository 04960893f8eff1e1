package xgxthrow

import (
	"encoding/json"
	"testing"
)

func BenchmarkThrow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Throw("boom")
	}
}

func BenchmarkUp(b *testing.B) {
	e := Throw("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e = Up(e)
	}
}

func BenchmarkPropagate_ExplicitPoint(b *testing.B) {
	e := New("boom")
	p := NewPoint(6, 4, "lib", "lib.go")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e = e.Propagate(p)
	}
}

func BenchmarkWith(b *testing.B) {
	e := New("boom")
	v := ValueOf(78)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e = e.With("code", v)
	}
}

func BenchmarkCaller(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Caller(0)
	}
}

func BenchmarkRender(b *testing.B) {
	e := New("access denied").
		With("code", ValueOf(78)).
		With("application", ValueOf("rust_core")).
		Propagate(NewPoint(9, 0, "lib", "lib.go")).
		Propagate(NewPoint(21, 0, "app", "app.go"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Error()
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	e := New("access denied").
		With("code", ValueOf(78)).
		Propagate(NewPoint(9, 0, "lib", "lib.go"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(e)
	}
}

// Mirrors the happy-path cost question: when no failure occurs, the wrapper
// layer must add nothing.
func BenchmarkOKPath(b *testing.B) {
	ok := func() (string, *Error[string]) { return "ok", nil }
	through := func() (string, *Error[string]) {
		msg, terr := ok()
		if terr != nil {
			return "", Up(terr)
		}
		return msg, nil
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = through()
	}
}
