// integration_test.go — end-to-end propagation chains through real call
// frames, rendered traces matched structurally.
package xgxthrow

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
)

// assertMatches fails unless the display form of e matches the pattern.
func assertMatches(t *testing.T, pattern string, rendered string) {
	t.Helper()
	re := regexp.MustCompile(pattern)
	if !re.MatchString(rendered) {
		t.Fatalf("expected trace to match `\n%s\n`, but found `\n%s\n`", pattern, rendered)
	}
}

func throwStaticMessage() (struct{}, *Error[string]) {
	return struct{}{}, Throw("hi")
}

func givesOK() (string, *Error[string]) {
	return "ok", nil
}

func throwsOK() (string, *Error[string]) {
	msg, terr := givesOK()
	if terr != nil {
		return "", Up(terr)
	}
	return msg, nil
}

func TestIntegration_StaticMessage(t *testing.T) {
	t.Parallel()

	_, terr := throwStaticMessage()
	if terr.Origin() != "hi" {
		t.Fatalf("origin: want=%q got=%q", "hi", terr.Origin())
	}
	assertMatches(t,
		`^Error: hi\n\tat [0-9]+:0 in github\.com/xgx-io/xgx-throw \(.+integration_test\.go\)$`,
		terr.Error(),
	)
}

func TestIntegration_MultipleHops(t *testing.T) {
	t.Parallel()

	hop1 := func() *Error[struct{}] { return Throw(struct{}{}) }
	hop2 := func() *Error[struct{}] { return Up(hop1()) }
	hop3 := func() *Error[struct{}] { return Up(hop2()) }

	terr := hop3()
	if terr.Origin() != struct{}{} {
		t.Fatalf("origin must survive propagation untouched")
	}
	assertMatches(t,
		`^Error: \{\}`+
			`\n\tat [0-9]+:0 in github\.com/xgx-io/xgx-throw \(.+integration_test\.go\)`+
			`\n\tat [0-9]+:0 in github\.com/xgx-io/xgx-throw \(.+integration_test\.go\)`+
			`\n\tat [0-9]+:0 in github\.com/xgx-io/xgx-throw \(.+integration_test\.go\)$`,
		fmt.Sprintf("%+v", terr),
	)

	// Stamps are chronological; the render above is reversed, so the last
	// recorded point must be hop3's.
	pts := terr.Points()
	if len(pts) != 3 {
		t.Fatalf("points: want len=3 got=%d", len(pts))
	}
	if pts[0].Line >= pts[1].Line || pts[1].Line >= pts[2].Line {
		// hop1 is defined above hop2 above hop3; call sites ascend.
		t.Fatalf("stamp order not chronological: %d, %d, %d", pts[0].Line, pts[1].Line, pts[2].Line)
	}
}

func TestIntegration_OKPathUnaffected(t *testing.T) {
	t.Parallel()

	msg, terr := throwsOK()
	if terr != nil {
		t.Fatalf("ok path must not produce an error: %v", terr)
	}
	if msg != "ok" {
		t.Fatalf("want %q, got %q", "ok", msg)
	}
}

type configError struct{ detail string }

func (e configError) Error() string { return "config: " + e.detail }

func TestIntegration_TransformUpward(t *testing.T) {
	t.Parallel()

	// A leaf throws a string; an upper layer lifts the chain into its own
	// error type while keeping the recorded trace.
	leaf := func() *Error[string] { return Throw("missing key", KV("key", "db.host")) }
	lift := func() *Error[configError] {
		terr := leaf()
		return Up(Transform(terr, func(s string) configError {
			return configError{detail: s}
		}))
	}

	terr := lift()
	if terr.Origin().detail != "missing key" {
		t.Fatalf("converted origin lost the payload: %+v", terr.Origin())
	}
	if len(terr.Points()) != 2 {
		t.Fatalf("trace must carry the leaf stamp plus the lift stamp, got %d", len(terr.Points()))
	}
	if v, ok := Get(terr, NewKey[string]("key")); !ok || v != "db.host" {
		t.Fatalf("context must survive the transform, got (%q,%v)", v, ok)
	}
	assertMatches(t,
		`^Error: config: missing key\n\tkey: db\.host(\n\tat .+){2}$`,
		terr.Error(),
	)

	// The lifted error participates in errors.Is/As via its origin.
	var ce configError
	if !errors.As(terr, &ce) || ce.detail != "missing key" {
		t.Fatalf("errors.As should reach the converted origin")
	}
}

func TestIntegration_LoopAccumulatesBoundedly(t *testing.T) {
	t.Parallel()

	// A retry-style loop that re-stamps the same error: the trace grows by
	// exactly one point per propagation, nothing else.
	terr := Throw("flaky")
	for i := 0; i < 16; i++ {
		terr = Up(terr, KV("attempt", i))
	}
	if got := len(terr.Points()); got != 17 {
		t.Fatalf("points: want 17, got %d", got)
	}
	if got := len(terr.Context()); got != 16 {
		t.Fatalf("context: want 16, got %d", got)
	}
	if n, ok := Get(terr, NewKey[int]("attempt")); !ok || n != 15 {
		t.Fatalf("most recent attempt: want (15,true) got (%d,%v)", n, ok)
	}
}
