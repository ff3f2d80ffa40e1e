package parse

import (
	"strings"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

// Stats counts what one pipeline run saw. Unrecognized lines are dropped
// without any per-line output; the counts let the diagnostic log report the
// drop rate once per run instead.
type Stats struct {
	LinesScanned int
	Records      int
	Skipped      int
	ByGrammar    map[string]int // recognizer name -> records produced
}

// Pipeline applies the recognizer set to capture lines in order.
type Pipeline struct {
	recognizers []Recognizer
}

func NewPipeline() *Pipeline {
	return &Pipeline{recognizers: Recognizers()}
}

// Run normalizes lines into the exchange trace. Record order equals line
// order; nothing is reordered or deduplicated.
func (p *Pipeline) Run(lines []string) (model.Trace, Stats) {
	stats := Stats{ByGrammar: make(map[string]int, len(p.recognizers))}
	trace := make(model.Trace, 0, len(lines))

	for _, raw := range lines {
		stats.LinesScanned++
		rec, name, ok := p.recognize(strings.TrimSpace(raw))
		if !ok {
			stats.Skipped++
			continue
		}
		trace = append(trace, rec)
		stats.Records++
		stats.ByGrammar[name]++
	}
	return trace, stats
}

// recognize tries the grammars in priority order and stops at the first
// match.
func (p *Pipeline) recognize(line string) (model.Record, string, bool) {
	for _, r := range p.recognizers {
		if !r.Match(line) {
			continue
		}
		rec, ok := r.Extract(line)
		return rec, r.Name(), ok
	}
	return model.Record{}, "", false
}
