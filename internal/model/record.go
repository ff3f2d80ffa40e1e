package model

import "time"

// Protocol identifies the producer layer a record was observed on.
// It is fixed by the recognizer that matched the line, never inferred
// from payload content.
type Protocol uint8

const (
	// ProtocolPeerMessage covers application-layer node-to-node messages.
	ProtocolPeerMessage Protocol = iota
	// ProtocolDatagramTransport covers the UDP transport and the
	// instrumented mobile-client datagram events.
	ProtocolDatagramTransport
)

// String returns the wire label used throughout the rendered views.
func (p Protocol) String() string {
	switch p {
	case ProtocolPeerMessage:
		return "P2P"
	case ProtocolDatagramTransport:
		return "UDP"
	default:
		return "UNKNOWN"
	}
}

// Sentinel message types assigned when structured payload decoding fails
// or yields no type field. Each recognizer family has a fixed default so
// a record's Type is never empty.
const (
	TypeText     = "text"     // payload was not a structured object
	TypeJSON     = "json"     // structured object without a usable type field
	TypeDatagram = "UDP_DATA" // instrumented datagram default
)

// SenderUnknown is the source fallback for transport-layer sends whose
// payload reveals no originating peer.
const SenderUnknown = "unknown"

// Record is the normalized representation of one observed message
// transfer between two participants. Records are created once by the
// parse pipeline and never mutated by renderers.
type Record struct {
	Timestamp   time.Time // zero when the source line carries no clock
	Source      string    // peer name or network endpoint, never empty
	Destination string    // peer name or network endpoint, never empty
	Protocol    Protocol
	Type        string // extracted kind or a sentinel, never empty
	Info        string // full raw payload substring, kept for audit
}

// HasTimestamp reports whether the source line encoded a point in time.
func (r Record) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}
