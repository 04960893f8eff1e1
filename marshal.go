// marshal.go — structured (machine) rendering for xgx-throw.
//
// Wire contract (stable):
//   - Top-level field order: points, context, error.
//   - Point sub-field order: line, column, module_path, file.
//   - Pair sub-fields: key, value.
//   - Value serializes UNTAGGED as its bare primitive: Bool(true) → true,
//     Int32(78) → 78, String("x") → "x".
//   - points and context are CHRONOLOGICAL (oldest first) — the text renderer
//     reverses for readability, the wire form never does.
//   - Empty sequences serialize as [], not null.
package xgxthrow

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is the serialization snapshot of an Error, shaped for consumers such
// as logging and monitoring pipelines.
type Record struct {
	Points  []Point `json:"points"`
	Context []Pair  `json:"context"`
	Error   string  `json:"error"`
}

// Record snapshots the error: chronological points and context (fresh
// copies), and the origin's display text.
func (e *Error[E]) Record() Record {
	return Record{
		Points:  e.Points(),
		Context: e.Context(),
		Error:   fmt.Sprintf("%v", e.origin),
	}
}

// MarshalJSON implements json.Marshaler via Record.
func (e *Error[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Record())
}

// MarshalJSON serializes the bare primitive payload. Floats and strings go
// through encoding/json so escaping and non-finite rejection match the
// surrounding document; bools and integers are appended directly.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return strconv.AppendUint(nil, v.u, 10), nil
	case KindFloat32:
		return json.Marshal(float32(v.f))
	case KindFloat64:
		return json.Marshal(v.f)
	default:
		return json.Marshal(v.s)
	}
}

var _ json.Marshaler = (*Error[string])(nil)
var _ json.Marshaler = Value{}
