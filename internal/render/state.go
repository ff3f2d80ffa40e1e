package render

import (
	"fmt"
	"io"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

// WriteStates prints the per participant state walk. Every participant
// starts Idle and steps through a freshly named state for each record it
// takes part in; states are independent per participant and never interact.
func WriteStates(w io.Writer, trace model.Trace) {
	fmt.Fprintln(w, "ASCII State Flow (per participant):")
	fmt.Fprintln(w, "-----------------------------------")

	for _, p := range trace.Participants() {
		fmt.Fprintf(w, "\nParticipant: %s\n", p)
		fmt.Fprintln(w, "  Initial State: Idle")
		cur := "Idle"
		for i, rec := range trace {
			next, event, ok := transition(p, i, rec)
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %s --(%s)--> %s\n", cur, event, next)
			cur = next
		}
		fmt.Fprintf(w, "  %s --(End)--> Final\n", cur)
	}

	fmt.Fprintln(w, "-----------------------------------")
}

// transition names the state a participant enters for record i, or reports
// that the record does not involve it. A self addressed record counts once,
// as a send.
func transition(p string, i int, rec model.Record) (next, event string, ok bool) {
	switch {
	case rec.Source == p:
		return fmt.Sprintf("Sent_%s_%d", rec.Type, i), "Sends " + rec.Type, true
	case rec.Destination == p:
		return fmt.Sprintf("Received_%s_%d", rec.Type, i), "Receives " + rec.Type, true
	}
	return "", "", false
}
