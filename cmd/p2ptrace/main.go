package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BeamAudio/p2p-signage/internal/config"
	"github.com/BeamAudio/p2p-signage/internal/parse"
	"github.com/BeamAudio/p2p-signage/internal/plantuml"
	"github.com/BeamAudio/p2p-signage/internal/render"
	"github.com/BeamAudio/p2p-signage/internal/source"
)

// defaultCapture is read when no log file argument is given.
const defaultCapture = "p2p_signage_dart/test_log.txt"

// ruleWidth matches the separator width of the tabular view.
const ruleWidth = 140

func main() {
	cfg := config.Load()

	// Diagnostics go to stderr only; stdout carries nothing but the views.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	flag.Parse()
	path := defaultCapture
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	capture, err := source.Read(path)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot read capture")
	}
	logger.Info().
		Str("path", capture.Path).
		Str("encoding", capture.Encoding).
		Str("fingerprint", capture.Fingerprint).
		Int("lines", len(capture.Lines)).
		Msg("capture loaded")

	trace, stats := parse.NewPipeline().Run(capture.Lines)
	logger.Info().
		Int("scanned", stats.LinesScanned).
		Int("records", stats.Records).
		Int("skipped", stats.Skipped).
		Msg("normalization done")
	logger.Debug().
		Interface("grammars", stats.ByGrammar).
		Msg("records per grammar")

	palette, err := render.LoadPalette(cfg.StyleFile)
	if err != nil {
		logger.Warn().Err(err).Msg("style override rejected, using defaults")
	}

	rule := strings.Repeat("=", ruleWidth)
	render.WriteTable(os.Stdout, trace, palette)

	fmt.Println("\n" + rule)
	render.WriteSequence(os.Stdout, trace)
	fmt.Println(rule)

	fmt.Println("\n" + rule)
	render.WriteActivity(os.Stdout, trace)
	fmt.Println(rule)

	fmt.Println("\n" + rule)
	render.WriteStates(os.Stdout, trace)
	fmt.Println(rule)

	docs := []plantuml.Document{
		{View: "sequence", Markup: render.SequenceMarkup(trace)},
		{View: "activity", Markup: render.ActivityMarkup(trace)},
		{View: "state", Markup: render.StateMarkup(trace)},
	}

	if cfg.Markup {
		for _, doc := range docs {
			fmt.Println("\n" + rule)
			fmt.Println(doc.Markup)
			fmt.Println(rule)
		}
	}

	dir := cfg.ArtifactDir
	if dir == "" {
		dir = os.TempDir()
	}
	runner := plantuml.Runner{Dir: dir, Jar: cfg.PlantUMLJar}
	artifacts, err := runner.RenderAll(docs)
	if err != nil {
		logger.Warn().Err(err).Msg("diagram rendering incomplete")
	}
	for i, p := range artifacts {
		if p != "" {
			logger.Info().Str("view", docs[i].View).Str("path", p).Msg("artifact written")
		}
	}
}
