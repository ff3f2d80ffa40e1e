package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

// colPitch is the column spacing between participant lifelines.
const colPitch = 15

// WriteSequence prints the ascii sequence diagram: participants sorted left
// to right at a fixed column pitch, one arrow row per record with the
// message type overwriting the arrow shaft.
func WriteSequence(w io.Writer, trace model.Trace) {
	fmt.Fprintln(w, "ASCII Sequence Diagram:")
	fmt.Fprintln(w, "-----------------------")

	participants := trace.Participants()
	cols := make(map[string]int, len(participants))
	var header strings.Builder
	for i, p := range participants {
		cols[p] = i * colPitch
		fmt.Fprintf(&header, "%-15s", shortLabel(p))
	}
	fmt.Fprintln(w, header.String())
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header.String())))

	for _, rec := range trace {
		fmt.Fprintln(w, arrowRow(cols, rec))
	}

	fmt.Fprintln(w, "-----------------------")
}

// shortLabel is the header label for a participant: the part after the last
// colon, so endpoints show as their port.
func shortLabel(p string) string {
	if i := strings.LastIndexByte(p, ':'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// arrowRow draws one record as a row of lifeline marks with a directed
// arrow between the two involved columns. The row is only as wide as the
// rightmost involved participant's slot, so lifelines further right are
// omitted on that row.
func arrowRow(cols map[string]int, rec model.Record) string {
	sc, rc := cols[rec.Source], cols[rec.Destination]
	width := sc
	if rc > width {
		width = rc
	}

	row := make([]rune, width+colPitch)
	for i := range row {
		row[i] = ' '
	}
	for _, c := range cols {
		if c < len(row) {
			row[c] = '|'
		}
	}

	var start int
	if sc < rc {
		for i := sc + 1; i < rc; i++ {
			row[i] = '-'
		}
		row[rc] = '>'
		row[sc] = '|'
		start = sc + 1
	} else {
		for i := rc + 1; i < sc; i++ {
			row[i] = '-'
		}
		row[rc] = '<'
		row[sc] = '|'
		start = rc + 1
	}

	for i, ch := range []rune("[" + rec.Type + "]") {
		if start+i < len(row) {
			row[start+i] = ch
		}
	}
	return string(row)
}
