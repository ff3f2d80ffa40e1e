package render

import (
	"fmt"
	"io"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

// WriteActivity prints one line per record labeled by direction and type, in
// record order. A record is outgoing when its source contains the local
// marker.
func WriteActivity(w io.Writer, trace model.Trace) {
	fmt.Fprintln(w, "ASCII Activity Flow:")
	fmt.Fprintln(w, "---------------------")

	for i, rec := range trace {
		dir := "IN"
		if model.IsLocal(rec.Source) {
			dir = "OUT"
		}
		fmt.Fprintf(w, "%03d: %s %s (%s -> %s)\n", i, dir, rec.Type, rec.Source, rec.Destination)
	}

	fmt.Fprintln(w, "---------------------")
}
