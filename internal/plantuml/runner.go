// Package plantuml turns generated markup documents into artifact files
// and, when a plantuml.jar is available, rendered images. The rest of the
// program only sees the Renderer interface; nothing in the pipeline or the
// textual views depends on an external tool being installed.
package plantuml

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Renderer turns one markup document into a file on disk and returns its
// path.
type Renderer interface {
	Render(markup string) (string, error)
}

// ExecFunc runs an external command and returns its combined output.
type ExecFunc func(name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// ArtifactWriter persists markup as a .puml file without invoking any
// external tool. The unique suffix keeps concurrent runs from clobbering
// each other.
type ArtifactWriter struct {
	Dir  string
	View string
}

func (w ArtifactWriter) Render(markup string) (string, error) {
	path := filepath.Join(w.Dir, w.View+"-"+uuid.NewString()+".puml")
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		return "", fmt.Errorf("write markup artifact: %w", err)
	}
	return path, nil
}

// JarRenderer writes the markup artifact and shells out to a local
// plantuml.jar to produce a PNG next to it. The exec hook is injectable;
// nil runs java directly.
type JarRenderer struct {
	Jar  string
	Dir  string
	View string
	Exec ExecFunc
}

func (r JarRenderer) Render(markup string) (string, error) {
	path, err := ArtifactWriter{Dir: r.Dir, View: r.View}.Render(markup)
	if err != nil {
		return "", err
	}

	execFn := r.Exec
	if execFn == nil {
		execFn = runCommand
	}
	out, err := execFn("java", "-jar", r.Jar, "-o", r.Dir, path)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return "", fmt.Errorf("plantuml: %w: %s", err, msg)
		}
		return "", fmt.Errorf("plantuml: %w", err)
	}
	return strings.TrimSuffix(path, ".puml") + ".png", nil
}

// Document pairs a view name with its markup.
type Document struct {
	View   string
	Markup string
}

// Runner fans markup documents out to per-view renderers. An empty Jar
// means only .puml artifacts are produced.
type Runner struct {
	Dir  string
	Jar  string
	Exec ExecFunc
}

// RenderAll renders every document concurrently and returns the artifact
// paths in document order. On failure the remaining documents still
// render; the first error is returned and the failed slots stay empty.
func (ru Runner) RenderAll(docs []Document) ([]string, error) {
	paths := make([]string, len(docs))
	var g errgroup.Group
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			path, err := ru.renderer(doc.View).Render(doc.Markup)
			if err != nil {
				return fmt.Errorf("render %s: %w", doc.View, err)
			}
			paths[i] = path
			return nil
		})
	}
	err := g.Wait()
	return paths, err
}

func (ru Runner) renderer(view string) Renderer {
	if ru.Jar == "" {
		return ArtifactWriter{Dir: ru.Dir, View: view}
	}
	return JarRenderer{Jar: ru.Jar, Dir: ru.Dir, View: view, Exec: ru.Exec}
}
