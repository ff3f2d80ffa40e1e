// Package render derives the human-readable views from an exchange trace.
//
// Every view is a pure function of the ordered trace: the ASCII renderers
// write to an injected io.Writer, the markup generators return PlantUML
// source. None of them reorder records or consult raw input.
package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BeamAudio/p2p-signage/internal/model"
)

const ansiReset = "\033[0m"

// Style is the display attribute pair for one message type.
type Style struct {
	Color string // ANSI escape sequence
	Glyph rune   // time plot glyph
}

// Palette maps message types to display attributes. It is injected into the
// table renderer; nothing here is global or mutable.
type Palette struct {
	types    map[string]Style
	datagram string // row color for untyped datagram traffic
}

// DefaultPalette returns the stock mapping: acks green, gossip blue, auth
// yellow, everything else reset, with generic datagram rows dark gray.
func DefaultPalette() Palette {
	return Palette{
		types: map[string]Style{
			"ack":    {Color: "\033[92m", Glyph: 'A'},
			"gossip": {Color: "\033[94m", Glyph: 'G'},
			"auth":   {Color: "\033[93m", Glyph: 'H'},
		},
		datagram: "\033[90m",
	}
}

// Color returns the ANSI prefix for a record's table row. Message type wins
// over protocol.
func (p Palette) Color(r model.Record) string {
	if s, ok := p.types[r.Type]; ok && s.Color != "" {
		return s.Color
	}
	if r.Protocol == model.ProtocolDatagramTransport {
		return p.datagram
	}
	return ansiReset
}

// Glyph returns the time plot glyph for a message type.
func (p Palette) Glyph(typ string) rune {
	if s, ok := p.types[typ]; ok && s.Glyph != 0 {
		return s.Glyph
	}
	return '.'
}

// styleFile is the shape of the optional style override file.
type styleFile struct {
	Types map[string]struct {
		Color string `yaml:"color"`
		Glyph string `yaml:"glyph"`
	} `yaml:"types"`
	DatagramColor string `yaml:"datagram_color"`
}

// LoadPalette reads a style override file on top of the defaults. Colors are
// given by name (green, bright-blue, ...). An empty path or any read, parse
// or lookup error leaves the defaults untouched; the error reports why.
func LoadPalette(path string) (Palette, error) {
	pal := DefaultPalette()
	if path == "" {
		return pal, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pal, fmt.Errorf("read style file: %w", err)
	}
	var sf styleFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return pal, fmt.Errorf("parse style file: %w", err)
	}

	for typ, override := range sf.Types {
		st := pal.types[typ]
		if override.Color != "" {
			code, ok := ansiByName[override.Color]
			if !ok {
				return DefaultPalette(), fmt.Errorf("style file: unknown color %q", override.Color)
			}
			st.Color = code
		}
		if override.Glyph != "" {
			st.Glyph = []rune(override.Glyph)[0]
		}
		pal.types[typ] = st
	}
	if sf.DatagramColor != "" {
		code, ok := ansiByName[sf.DatagramColor]
		if !ok {
			return DefaultPalette(), fmt.Errorf("style file: unknown color %q", sf.DatagramColor)
		}
		pal.datagram = code
	}
	return pal, nil
}

// ansiByName maps style file color names to escape sequences. The bright
// range is what the stock palette uses.
var ansiByName = map[string]string{
	"black":          "\033[30m",
	"red":            "\033[31m",
	"green":          "\033[32m",
	"yellow":         "\033[33m",
	"blue":           "\033[34m",
	"magenta":        "\033[35m",
	"cyan":           "\033[36m",
	"white":          "\033[37m",
	"bright-black":   "\033[90m",
	"bright-red":     "\033[91m",
	"bright-green":   "\033[92m",
	"bright-yellow":  "\033[93m",
	"bright-blue":    "\033[94m",
	"bright-magenta": "\033[95m",
	"bright-cyan":    "\033[96m",
	"bright-white":   "\033[97m",
}
