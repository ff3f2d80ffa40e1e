package parse

import (
	"strings"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

const (
	sendMarker = "Sending message to "
	recvMarker = "Received message from "
)

// peerSend handles application-layer node lines of the form
//
//	<peer>: Sending message to <peer>: <payload>
//
// Both participants are named directly in the line; only the message type
// has to come out of the payload.
type peerSend struct{}

func (peerSend) Name() string { return "peer-send" }

func (peerSend) Match(line string) bool {
	_, _, _, ok := splitPeerSend(line)
	return ok
}

func (peerSend) Extract(line string) (model.Record, bool) {
	src, dst, payload, ok := splitPeerSend(line)
	if !ok {
		return model.Record{}, false
	}
	return model.Record{
		Source:      src,
		Destination: dst,
		Protocol:    model.ProtocolPeerMessage,
		Type:        directType(payload),
		Info:        payload,
	}, true
}

func splitPeerSend(line string) (src, dst, payload string, ok bool) {
	src, rest, found := strings.Cut(line, ": ")
	if !found || !isPeerName(src) {
		return "", "", "", false
	}
	rest, found = strings.CutPrefix(rest, sendMarker)
	if !found {
		return "", "", "", false
	}
	dst, payload, found = strings.Cut(rest, ": ")
	if !found || !isPeerName(dst) {
		return "", "", "", false
	}
	return src, dst, payload, true
}

// peerRecv handles node lines of the form
//
//	<peer>: Received message from <ip>:<port>: <payload>
//
// The address is only the transport-level origin; the logical sender is
// recovered from the payload envelope when it decodes.
type peerRecv struct{}

func (peerRecv) Name() string { return "peer-recv" }

func (peerRecv) Match(line string) bool {
	_, _, _, ok := splitPeerRecv(line)
	return ok
}

func (peerRecv) Extract(line string) (model.Record, bool) {
	dst, origin, payload, ok := splitPeerRecv(line)
	if !ok {
		return model.Record{}, false
	}
	src, typ := envelope(payload, origin)
	return model.Record{
		Source:      src,
		Destination: dst,
		Protocol:    model.ProtocolPeerMessage,
		Type:        typ,
		Info:        payload,
	}, true
}

// splitPeerRecv returns the receiving peer, the bare origin address (the
// port is dropped) and the raw payload.
func splitPeerRecv(line string) (dst, origin, payload string, ok bool) {
	dst, rest, found := strings.Cut(line, ": ")
	if !found || !isPeerName(dst) {
		return "", "", "", false
	}
	rest, found = strings.CutPrefix(rest, recvMarker)
	if !found {
		return "", "", "", false
	}
	addr, _, payload, epOK := splitEndpoint(rest)
	if !epOK {
		return "", "", "", false
	}
	return dst, addr, payload, true
}
