package parse

import (
	"github.com/valyala/fastjson"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

// payloadParsers is shared by every recognizer. Parsers are pooled because
// envelope payloads need two live documents at once, outer and inner.
var payloadParsers fastjson.ParserPool

// directType classifies a payload whose type field, if present, sits at the
// top level. A payload that does not decode is plain text.
func directType(payload string) string {
	p := payloadParsers.Get()
	defer payloadParsers.Put(p)

	v, err := p.Parse(payload)
	if err != nil {
		return model.TypeText
	}
	if t := v.GetStringBytes("type"); t != nil {
		return string(t)
	}
	return model.TypeJSON
}

// envelope classifies a nested payload: the outer document names the logical
// sender, and its message field carries a second serialized document whose
// type field names the message kind. Each stage has its own fallback. An
// outer document that does not decode yields the transport-level origin and
// plain text; a missing, unreadable or typeless inner document keeps the
// recovered sender and yields the generic structured type. Non-string sender
// and type values count as absent.
func envelope(payload, origin string) (source, typ string) {
	p := payloadParsers.Get()
	defer payloadParsers.Put(p)

	v, err := p.Parse(payload)
	if err != nil {
		return origin, model.TypeText
	}

	source = origin
	if s := v.GetStringBytes("sender"); s != nil {
		source = string(s)
	}

	typ = model.TypeJSON
	if m := v.GetStringBytes("message"); m != nil {
		inner := payloadParsers.Get()
		defer payloadParsers.Put(inner)
		if iv, innerErr := inner.Parse(string(m)); innerErr == nil {
			if t := iv.GetStringBytes("type"); t != nil {
				typ = string(t)
			}
		}
	}
	return source, typ
}

// previewType classifies an instrumentation preview: a decodable document
// with a type field refines the generic datagram type, anything else keeps
// the default.
func previewType(payload string) string {
	p := payloadParsers.Get()
	defer payloadParsers.Put(p)

	v, err := p.Parse(payload)
	if err != nil {
		return model.TypeDatagram
	}
	if t := v.GetStringBytes("type"); t != nil {
		return string(t)
	}
	return model.TypeDatagram
}
