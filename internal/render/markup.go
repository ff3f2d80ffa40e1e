package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

// participantSanitizer rewrites endpoint characters PlantUML rejects in
// participant identifiers.
var participantSanitizer = strings.NewReplacer(":", "_", ".", "_")

func sanitize(p string) string { return participantSanitizer.Replace(p) }

// SequenceMarkup returns PlantUML source for the sequence view. Arrows point
// right for records sent by the local host and left for received ones.
func SequenceMarkup(trace model.Trace) string {
	var b strings.Builder
	b.WriteString("@startuml\n")
	b.WriteString("skinparam monochrome true\n")

	for _, p := range trace.Participants() {
		b.WriteString("participant " + sanitize(p) + "\n")
	}
	b.WriteString("\n")

	for _, rec := range trace {
		arrow := "<-"
		if model.IsLocal(rec.Source) {
			arrow = "->"
		}
		info := rec.Info
		if utf8.RuneCountInString(info) > 30 {
			info = clip(info, 30) + "..."
		}
		fmt.Fprintf(&b, "%s %s %s: [%s] %s\n",
			sanitize(rec.Source), arrow, sanitize(rec.Destination), rec.Type, info)
	}

	b.WriteString("@enduml")
	return b.String()
}

// ActivityMarkup returns PlantUML source for the activity view: one colored
// activity block per record between start and stop.
func ActivityMarkup(trace model.Trace) string {
	var b strings.Builder
	b.WriteString("@startuml\n")
	b.WriteString("skinparam monochrome true\n")
	b.WriteString("start\n")

	for i, rec := range trace {
		if model.IsLocal(rec.Source) {
			fmt.Fprintf(&b, "#green:Local Host sends %s (%d);\n", rec.Type, i)
		} else {
			fmt.Fprintf(&b, "#blue:Remote Host sends %s (%d);\n", rec.Type, i)
		}
	}

	b.WriteString("stop\n")
	b.WriteString("@enduml")
	return b.String()
}

// StateMarkup returns PlantUML source for the state view: one document per
// participant, walking the same transitions as the ascii state flow. An
// empty trace yields no documents at all.
func StateMarkup(trace model.Trace) string {
	var parts []string
	for _, p := range trace.Participants() {
		parts = append(parts,
			"@startuml State Diagram for "+sanitize(p),
			"skinparam monochrome true",
			"[*] --> Idle")

		cur := "Idle"
		for i, rec := range trace {
			next, event, ok := transition(p, i, rec)
			if !ok {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s --> %s : %s", cur, next, event))
			cur = next
		}

		parts = append(parts, cur+" --> [*]", "@enduml", "\n")
	}
	return strings.Join(parts, "\n")
}
