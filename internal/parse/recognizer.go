// Package parse normalizes raw capture lines into the exchange trace.
//
// Each line format produced by the deployment has its own Recognizer; the
// pipeline tries them in priority order and keeps the first match. Payload
// classification (recovering the logical sender and message type from
// nested JSON envelopes) lives in payload.go.
package parse

import (
	"strings"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

// Recognizer matches one raw log line grammar and extracts its fields.
// Implementations are stateless. Grammars do not overlap, so at most one
// recognizer in the set accepts any given line.
type Recognizer interface {
	// Name labels the grammar in diagnostics and stats.
	Name() string
	// Match reports whether the line belongs to this grammar.
	Match(line string) bool
	// Extract builds the exchange record for a matching line.
	Extract(line string) (model.Record, bool)
}

// Recognizers returns the recognizer set in priority order. The first match
// wins; a line accepted by none produces no record.
func Recognizers() []Recognizer {
	return []Recognizer{
		peerSend{},
		peerRecv{},
		transportSend{},
		udpEvent{},
	}
}

func isNameStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '_' || ch == '-'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isPeerName reports whether s is a bare participant name: a letter followed
// by letters, digits, '_' or '-'. Dots and colons are excluded so names can
// never collide with address:port endpoints.
func isPeerName(s string) bool {
	if s == "" || !isNameStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isNameChar(s[i]) {
			return false
		}
	}
	return true
}

// isAddress reports whether s has the dotted-decimal shape the producers
// emit. Octet ranges are not checked; the logs are trusted that far.
func isAddress(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) && s[i] != '.' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// splitEndpoint splits "<ip>:<port>: <payload>" into its parts. The payload
// may be empty; the address and port shapes are validated.
func splitEndpoint(rest string) (addr, port, payload string, ok bool) {
	head, payload, found := strings.Cut(rest, ": ")
	if !found {
		return "", "", "", false
	}
	addr, port, found = strings.Cut(head, ":")
	if !found || !isAddress(addr) || !isDigits(port) {
		return "", "", "", false
	}
	return addr, port, payload, true
}
