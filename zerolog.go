// zerolog.go — zerolog adapters for xgx-throw.
//
// Purpose
//   - Bridge the structured rendering into zerolog events so call sites can
//     attach a full trace with one call:
//
//	log.Error().Object("err", terr).Msg("request failed")
//
//   - Same wire shape as marshal.go: points, context, error — chronological
//     order, untagged primitive values.
//
// The core stays side-effect-free; this file is the only logging touchpoint
// and it only marshals, it never logs on its own.
package xgxthrow

import (
	"fmt"

	"github.com/rs/zerolog"
)

// MarshalZerologObject emits line, column, module_path, file.
func (p Point) MarshalZerologObject(ev *zerolog.Event) {
	ev.Uint32("line", p.Line).
		Uint32("column", p.Column).
		Str("module_path", p.ModulePath).
		Str("file", p.File)
}

// MarshalZerologObject emits key, value (value as its bare primitive).
func (kv Pair) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("key", kv.Key)
	kv.Value.addToEvent(ev, "value")
}

// addToEvent adds the payload under key with its native zerolog type.
func (v Value) addToEvent(ev *zerolog.Event, key string) {
	switch v.kind {
	case KindBool:
		ev.Bool(key, v.b)
	case KindInt8:
		ev.Int8(key, int8(v.i))
	case KindUint8:
		ev.Uint8(key, uint8(v.u))
	case KindInt16:
		ev.Int16(key, int16(v.i))
	case KindUint16:
		ev.Uint16(key, uint16(v.u))
	case KindInt32:
		ev.Int32(key, int32(v.i))
	case KindUint32:
		ev.Uint32(key, uint32(v.u))
	case KindInt64:
		ev.Int64(key, v.i)
	case KindUint64:
		ev.Uint64(key, v.u)
	case KindFloat32:
		ev.Float32(key, float32(v.f))
	case KindFloat64:
		ev.Float64(key, v.f)
	default:
		ev.Str(key, v.s)
	}
}

// MarshalZerologObject emits points, context, error in the stable wire order.
func (e *Error[E]) MarshalZerologObject(ev *zerolog.Event) {
	points := zerolog.Arr()
	for _, p := range e.points {
		points.Object(p)
	}
	ctx := zerolog.Arr()
	for _, kv := range e.context {
		ctx.Object(kv)
	}
	ev.Array("points", points).
		Array("context", ctx).
		Str("error", fmt.Sprintf("%v", e.origin))
}

var (
	_ zerolog.LogObjectMarshaler = Point{}
	_ zerolog.LogObjectMarshaler = Pair{}
	_ zerolog.LogObjectMarshaler = (*Error[string])(nil)
)
