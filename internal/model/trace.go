package model

import (
	"sort"
	"strings"
	"time"
)

// LocalMarker is the literal token identifying the observing host in
// participant identifiers, as opposed to a remote peer or endpoint.
const LocalMarker = "localhost"

// IsLocal reports whether a participant identifier names the observing
// host.
func IsLocal(participant string) bool {
	return strings.Contains(participant, LocalMarker)
}

// Trace is the ordered record sequence produced by the parse pipeline.
// Order equals input line order; renderers treat it as read-only.
type Trace []Record

// Participants returns every distinct source and destination in sorted
// order, the layout order shared by the sequence and state views.
func (t Trace) Participants() []string {
	seen := make(map[string]struct{})
	for _, r := range t {
		seen[r.Source] = struct{}{}
		seen[r.Destination] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BaseTime returns the timestamp of the first timestamped record in file
// order, the zero time when no record carries a clock. Relative times in
// the views are offsets from this base.
func (t Trace) BaseTime() time.Time {
	for _, r := range t {
		if r.HasTimestamp() {
			return r.Timestamp
		}
	}
	return time.Time{}
}

// Relative returns a record's offset in seconds from the trace base time.
// Records without a timestamp sit at offset zero.
func (t Trace) Relative(r Record) float64 {
	if !r.HasTimestamp() {
		return 0
	}
	base := t.BaseTime()
	if base.IsZero() {
		return 0
	}
	return r.Timestamp.Sub(base).Seconds()
}
