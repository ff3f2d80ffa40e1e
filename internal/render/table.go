package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

const ruleWidth = 140

// WriteTable prints the packet trace: one colored row per record, packet
// totals, and a one second bucketed time plot. A record counts as incoming
// when its destination contains the local marker.
func WriteTable(w io.Writer, trace model.Trace, pal Palette) {
	if len(trace) == 0 {
		fmt.Fprintln(w, "No logs to display.")
		return
	}

	fmt.Fprintf(w, "%-15s %-25s %-25s %-10s %-15s %s\n",
		"Time", "Source", "Destination", "Protocol", "Type", "Info")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	in, out := 0, 0
	for _, rec := range trace {
		if model.IsLocal(rec.Destination) {
			in++
		} else {
			out++
		}
		fmt.Fprintf(w, "%s%-15.6f %-25s %-25s %-10s %-15s %s...%s\n",
			pal.Color(rec), trace.Relative(rec), rec.Source, rec.Destination,
			rec.Protocol, rec.Type, clip(rec.Info, 50), ansiReset)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", ruleWidth))
	fmt.Fprintf(w, "Total Packets: %d\n", len(trace))
	fmt.Fprintf(w, "Incoming Packets: %d\n", in)
	fmt.Fprintf(w, "Outgoing Packets: %d\n", out)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	writeTimePlot(w, trace, pal)
}

// writeTimePlot groups records into one second buckets of relative time and
// prints one glyph per record. Buckets between zero and the busiest second
// print even when empty.
func writeTimePlot(w io.Writer, trace model.Trace, pal Palette) {
	fmt.Fprintln(w, "\nTime Plot (Relative Seconds):")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	buckets := make(map[int][]string)
	maxBucket := math.MinInt
	for _, rec := range trace {
		b := int(trace.Relative(rec))
		buckets[b] = append(buckets[b], rec.Type)
		if b > maxBucket {
			maxBucket = b
		}
	}

	for i := 0; i <= maxBucket; i++ {
		fmt.Fprintf(w, "%-5ds | ", i)
		for _, typ := range buckets[i] {
			fmt.Fprintf(w, "%c", pal.Glyph(typ))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}

// clip returns at most n leading characters of s.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
