package parse

import (
	"strings"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

const transportMarker = "UDPTransport: Sending message to "

// transportSend handles transport-layer lines of the form
//
//	UDPTransport: Sending message to <ip>:<port>: <payload>
//
// The transport has no notion of logical self-identity, so the source comes
// entirely out of the payload envelope.
type transportSend struct{}

func (transportSend) Name() string { return "transport-send" }

func (transportSend) Match(line string) bool {
	_, _, _, ok := splitTransportSend(line)
	return ok
}

func (transportSend) Extract(line string) (model.Record, bool) {
	addr, port, payload, ok := splitTransportSend(line)
	if !ok {
		return model.Record{}, false
	}
	src, typ := envelope(payload, model.SenderUnknown)
	return model.Record{
		Source:      src,
		Destination: addr + ":" + port,
		Protocol:    model.ProtocolDatagramTransport,
		Type:        typ,
		Info:        payload,
	}, true
}

func splitTransportSend(line string) (addr, port, payload string, ok bool) {
	rest, found := strings.CutPrefix(line, transportMarker)
	if !found {
		return "", "", "", false
	}
	return splitEndpoint(rest)
}
