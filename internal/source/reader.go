// Package source loads capture files for the pipeline.
package source

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// ErrCorruptCapture reports a capture that sniffs as compressed but does
// not decode.
var ErrCorruptCapture = errors.New("corrupt compressed capture")

// Capture is one loaded log capture, split into lines in file order.
type Capture struct {
	Path        string
	Lines       []string
	Fingerprint string // blake2b-256 of the raw file bytes, hex
	Encoding    string // "plain", "gzip" or "zstd"
}

// Compressed captures are sniffed by magic bytes, not by file extension.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Read loads a capture file, transparently decompressing gzip and zstd
// payloads, and fingerprints the raw bytes for provenance. A missing or
// unreadable file is fatal to the run and comes back as a wrapped I/O
// error; nothing is partially loaded.
func Read(path string) (Capture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Capture{}, fmt.Errorf("read capture: %w", err)
	}

	sum := blake2b.Sum256(raw)
	c := Capture{
		Path:        path,
		Fingerprint: hex.EncodeToString(sum[:]),
		Encoding:    "plain",
	}

	text := raw
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		if text, err = gunzip(raw); err != nil {
			return Capture{}, fmt.Errorf("gzip capture %s: %w: %v", path, ErrCorruptCapture, err)
		}
		c.Encoding = "gzip"
	case bytes.HasPrefix(raw, zstdMagic):
		if text, err = unzstd(raw); err != nil {
			return Capture{}, fmt.Errorf("zstd capture %s: %w: %v", path, ErrCorruptCapture, err)
		}
		c.Encoding = "zstd"
	}

	c.Lines = splitLines(string(text))
	return c, nil
}

func gunzip(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func unzstd(raw []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(raw, nil)
}

// splitLines splits capture text into lines without a phantom empty line
// for the trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
