// Package gridimg provides a fluent API for rendering puzzle documents
// (JSON files of training and test color grids) into PNG images for human
// inspection.
//
// Basic usage:
//
//	results, warnings, err := gridimg.Open("puzzle.json").RenderAll()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", gridimg.FormatWarnings(warnings))
//	}
//
// With options:
//
//	results, _, err := gridimg.Open("puzzle.json").
//	    OutputDir("out").
//	    BaseName("task-007").
//	    RenderAll()
//
// RenderAll produces up to four files named <base>-puzzle.png,
// <base>-examples.png, <base>-test.png, and <base>-answer.png. The test
// and answer images may be skipped with a warning when the document lacks
// the grids they need; the puzzle and examples images are required, and
// their failure is reported as an error.
//
// For advanced use cases, the lower-level model, compose, and canvas
// packages are also available.
package gridimg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/gridimg/canvas"
	"github.com/tsawler/gridimg/compose"
	"github.com/tsawler/gridimg/model"
)

// Kind identifies one of the four output images.
type Kind string

// The four output kinds, in render order.
const (
	KindPuzzle   Kind = "puzzle"
	KindExamples Kind = "examples"
	KindTest     Kind = "test"
	KindAnswer   Kind = "answer"
)

// Result reports the outcome of one output image.
type Result struct {
	// Kind of output this result describes.
	Kind Kind

	// Path the image was written to, when it was produced.
	Path string

	// Err holds the failure, fatal or not, when the image was not
	// produced.
	Err error

	// Skipped is true when the failure was an expected missing-data
	// condition rather than an error.
	Skipped bool
}

// Warning describes a non-fatal condition encountered while rendering,
// such as an optional image skipped for missing data.
type Warning struct {
	Kind    Kind
	Message string
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, fmt.Sprintf("%s: %s", w.Kind, w.Message))
	}
	return strings.Join(parts, "; ")
}

// Renderer provides a fluent interface for rendering puzzle documents.
// Each configuration method returns a new Renderer instance, making it
// safe to share partially-configured renderers.
type Renderer struct {
	filename string
	options  RenderOptions
}

// Open prepares a renderer for the puzzle document at filename. The file
// is not read until a terminal operation runs.
//
// Example:
//
//	results, warnings, err := gridimg.Open("puzzle.json").RenderAll()
func Open(filename string) *Renderer {
	return &Renderer{
		filename: filename,
		options:  defaultOptions(),
	}
}

// clone creates a copy of the Renderer with copied options, so chain
// methods never mutate their receiver.
func (r *Renderer) clone() *Renderer {
	return &Renderer{
		filename: r.filename,
		options:  r.options.clone(),
	}
}

// OutputDir sets the directory output files are written to. It is created
// (recursively) if absent. The default is the input file's directory.
func (r *Renderer) OutputDir(dir string) *Renderer {
	newR := r.clone()
	newR.options.outputDir = dir
	return newR
}

// BaseName overrides the base name output files are derived from. The
// default is the input file's name without its extension.
func (r *Renderer) BaseName(name string) *Renderer {
	newR := r.clone()
	newR.options.baseName = name
	return newR
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	path := gridimg.Must(gridimg.Open("puzzle.json").Puzzle())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// builder pairs an output kind with its composition function.
type builder struct {
	kind  Kind
	build func(*model.Document, canvas.Factory) (canvas.Canvas, error)
}

var builders = []builder{
	{KindPuzzle, compose.Puzzle},
	{KindExamples, compose.Examples},
	{KindTest, compose.Test},
	{KindAnswer, compose.Answer},
}

// fatal reports whether a failure of the given kind aborts the run. The
// test image never does; the answer image tolerates missing data only.
func fatal(kind Kind, err error) bool {
	switch kind {
	case KindTest:
		return false
	case KindAnswer:
		return !errors.Is(err, compose.ErrNoData)
	default:
		return true
	}
}

// RenderAll renders all four output images, each attempted independently:
// a failure in one never prevents the others. It returns one Result per
// output, warnings for the outputs that were skipped or failed non-fatally,
// and the first fatal error encountered (after all outputs were attempted).
func (r *Renderer) RenderAll() ([]Result, []Warning, error) {
	doc, err := model.Load(r.filename)
	if err != nil {
		return nil, nil, err
	}

	outputDir, base, err := r.resolveOutput()
	if err != nil {
		return nil, nil, err
	}

	var (
		results  []Result
		warnings []Warning
		firstErr error
	)

	for _, b := range builders {
		path := filepath.Join(outputDir, fmt.Sprintf("%s-%s.png", base, b.kind))
		err := renderOne(doc, b.build, path)
		if err == nil {
			results = append(results, Result{Kind: b.kind, Path: path})
			continue
		}

		if fatal(b.kind, err) {
			results = append(results, Result{Kind: b.kind, Err: err})
			if firstErr == nil {
				firstErr = fmt.Errorf("render %s image: %w", b.kind, err)
			}
			continue
		}

		results = append(results, Result{Kind: b.kind, Err: err, Skipped: errors.Is(err, compose.ErrNoData)})
		warnings = append(warnings, Warning{Kind: b.kind, Message: err.Error()})
	}

	return results, warnings, firstErr
}

// Puzzle renders only the puzzle overview image and returns its path.
func (r *Renderer) Puzzle() (string, error) {
	return r.renderKind(KindPuzzle, compose.Puzzle)
}

// Examples renders only the training-examples image and returns its path.
func (r *Renderer) Examples() (string, error) {
	return r.renderKind(KindExamples, compose.Examples)
}

// Test renders only the test image (input plus blank answer placeholder)
// and returns its path.
func (r *Renderer) Test() (string, error) {
	return r.renderKind(KindTest, compose.Test)
}

// Answer renders only the revealed-answer image and returns its path. It
// fails with compose.ErrNoData when the document withholds the answer.
func (r *Renderer) Answer() (string, error) {
	return r.renderKind(KindAnswer, compose.Answer)
}

// renderKind runs one composition end to end.
func (r *Renderer) renderKind(kind Kind, build func(*model.Document, canvas.Factory) (canvas.Canvas, error)) (string, error) {
	doc, err := model.Load(r.filename)
	if err != nil {
		return "", err
	}
	outputDir, base, err := r.resolveOutput()
	if err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, fmt.Sprintf("%s-%s.png", base, kind))
	if err := renderOne(doc, build, path); err != nil {
		return "", err
	}
	return path, nil
}

// resolveOutput determines the output directory (creating it when it was
// configured explicitly) and the base file name.
func (r *Renderer) resolveOutput() (outputDir, base string, err error) {
	outputDir = r.options.outputDir
	if outputDir == "" {
		outputDir = filepath.Dir(r.filename)
	} else if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	base = r.options.baseName
	if base == "" {
		name := filepath.Base(r.filename)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return outputDir, base, nil
}

// renderOne composes one image and writes it to path. The file is removed
// again if encoding fails partway, so failed outputs leave nothing behind.
func renderOne(doc *model.Document, build func(*model.Document, canvas.Factory) (canvas.Canvas, error), path string) error {
	c, err := build(doc, canvas.NewContext)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
