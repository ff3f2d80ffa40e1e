package parse

import (
	"strings"
	"time"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

const udpEventMarker = "[UDP_LOG] "

// udpEvent handles the mobile client's instrumentation lines:
//
//	[UDP_LOG] [IN|OUT] [<hh:mm:ss.mmm>] [<local-port>] [<ip>:<port>] [<payload>]
//
// The remote endpoint also appears split across two bracket fields,
// [<ip>] [<port>]; both shapes are accepted. Direction decides which side
// of the exchange is the local host.
type udpEvent struct{}

func (udpEvent) Name() string { return "udp-event" }

func (udpEvent) Match(line string) bool {
	_, ok := splitUDPEvent(line)
	return ok
}

func (udpEvent) Extract(line string) (model.Record, bool) {
	ev, ok := splitUDPEvent(line)
	if !ok {
		return model.Record{}, false
	}
	local := model.LocalMarker + ":" + ev.localPort
	remote := ev.remoteAddr + ":" + ev.remotePort
	src, dst := local, remote
	if ev.in {
		src, dst = remote, local
	}
	return model.Record{
		Timestamp:   ev.at,
		Source:      src,
		Destination: dst,
		Protocol:    model.ProtocolDatagramTransport,
		Type:        previewType(ev.payload),
		Info:        ev.payload,
	}, true
}

type udpEventFields struct {
	in         bool
	at         time.Time
	localPort  string
	remoteAddr string
	remotePort string
	payload    string
}

func splitUDPEvent(line string) (udpEventFields, bool) {
	var ev udpEventFields

	rest, found := strings.CutPrefix(line, udpEventMarker)
	if !found {
		return ev, false
	}

	dir, rest, ok := bracketField(rest)
	if !ok || (dir != "IN" && dir != "OUT") {
		return ev, false
	}
	ev.in = dir == "IN"

	clock, rest, ok := bracketField(rest)
	if !ok {
		return ev, false
	}
	at, err := parseClock(clock)
	if err != nil {
		return ev, false
	}
	ev.at = at

	ev.localPort, rest, ok = bracketField(rest)
	if !ok || !isDigits(ev.localPort) {
		return ev, false
	}

	remote, rest, ok := bracketField(rest)
	if !ok {
		return ev, false
	}
	if addr, port, split := strings.Cut(remote, ":"); split {
		ev.remoteAddr, ev.remotePort = addr, port
	} else {
		ev.remoteAddr = remote
		ev.remotePort, rest, ok = bracketField(rest)
		if !ok {
			return ev, false
		}
	}
	if !isAddress(ev.remoteAddr) || !isDigits(ev.remotePort) {
		return ev, false
	}

	// The payload is the final bracket field and may itself contain
	// brackets, so it runs to the closing bracket at end of line.
	if len(rest) < 2 || rest[0] != '[' || rest[len(rest)-1] != ']' {
		return ev, false
	}
	ev.payload = rest[1 : len(rest)-1]
	return ev, true
}

// bracketField reads one leading "[...] " field and returns its content and
// the remainder of the line.
func bracketField(s string) (field, rest string, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", "", false
	}
	end := strings.IndexByte(s, ']')
	if end < 0 || end+1 >= len(s) || s[end+1] != ' ' {
		return "", "", false
	}
	return s[1:end], s[end+2:], true
}

// parseClock parses a wall-clock time of day against today's date. The line
// carries no date field, so a capture spanning midnight misorders; known
// limitation of the producing format.
func parseClock(s string) (time.Time, error) {
	tod, err := time.Parse("15:04:05", s)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), tod.Nanosecond(), time.Local), nil
}
