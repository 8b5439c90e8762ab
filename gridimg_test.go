package gridimg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/gridimg/compose"
	"github.com/tsawler/gridimg/model"
)

// writeDoc writes a puzzle document into a temp directory and returns its
// path.
func writeDoc(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

const minimalDoc = `{"train":[{"input":[[1]],"output":[[2]]}],"test":[{"input":[[3]]}]}`

const fullDoc = `{
	"train": [
		{"input": [[1, 2], [3, 4]], "output": [[5, 5, 5], [5, 0, 5], [5, 5, 5]]},
		{"input": [[0, 1], [1, 0]], "output": [[2, 2], [2, 2]]}
	],
	"test": [
		{"input": [[7, 8], [8, 7]], "output": [[9, 9], [9, 9]]}
	]
}`

// ============================================================================
// RenderAll Tests
// ============================================================================

func TestRenderAllComplete(t *testing.T) {
	path := writeDoc(t, "task.json", fullDoc)

	results, warnings, err := Open(path).RenderAll()
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}

	dir := filepath.Dir(path)
	for _, want := range []string{"task-puzzle.png", "task-examples.png", "task-test.png", "task-answer.png"} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("expected output %s: %v", want, err)
		}
	}
}

// The spec's round-trip scenario: a document whose answer is withheld must
// produce puzzle, examples, and test images, and skip the answer image
// with a warning rather than failing.
func TestRenderAllWithheldAnswer(t *testing.T) {
	path := writeDoc(t, "task.json", minimalDoc)

	results, warnings, err := Open(path).RenderAll()
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}

	byKind := map[Kind]Result{}
	for _, res := range results {
		byKind[res.Kind] = res
	}

	for _, kind := range []Kind{KindPuzzle, KindExamples, KindTest} {
		if byKind[kind].Err != nil {
			t.Errorf("%s: error = %v, want success", kind, byKind[kind].Err)
		}
	}

	answer := byKind[KindAnswer]
	if !answer.Skipped {
		t.Error("answer result should be marked skipped")
	}
	if !errors.Is(answer.Err, compose.ErrNoData) {
		t.Errorf("answer error = %v, want ErrNoData", answer.Err)
	}

	if len(warnings) != 1 || warnings[0].Kind != KindAnswer {
		t.Errorf("warnings = %v, want one answer warning", warnings)
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(filepath.Join(dir, "task-answer.png")); !os.IsNotExist(err) {
		t.Error("skipped answer image should not exist on disk")
	}
}

func TestRenderAllEmptyDocumentFatal(t *testing.T) {
	path := writeDoc(t, "empty.json", `{}`)

	results, _, err := Open(path).RenderAll()
	if err == nil {
		t.Fatal("RenderAll() on an empty document should fail")
	}
	if !errors.Is(err, compose.ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}
	// All four were still attempted.
	if len(results) != 4 {
		t.Errorf("len(results) = %d, want 4 (every output attempted)", len(results))
	}
}

func TestRenderAllMissingFile(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "absent.json")).RenderAll()
	if err == nil {
		t.Error("RenderAll() on a missing file should fail")
	}
}

func TestRenderAllMalformedDocument(t *testing.T) {
	path := writeDoc(t, "bad.json", "not json")
	_, _, err := Open(path).RenderAll()
	if !errors.Is(err, model.ErrMalformedDocument) {
		t.Errorf("error = %v, want ErrMalformedDocument", err)
	}
}

func TestRenderAllOutputDir(t *testing.T) {
	path := writeDoc(t, "task.json", fullDoc)
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	results, _, err := Open(path).OutputDir(outDir).RenderAll()
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if filepath.Dir(res.Path) != outDir {
			t.Errorf("output %s written outside %s", res.Path, outDir)
		}
		if _, err := os.Stat(res.Path); err != nil {
			t.Errorf("stat %s: %v", res.Path, err)
		}
	}
}

func TestRenderAllBaseName(t *testing.T) {
	path := writeDoc(t, "task.json", fullDoc)

	results, _, err := Open(path).BaseName("renamed").RenderAll()
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if got := filepath.Base(results[0].Path); got != "renamed-puzzle.png" {
		t.Errorf("first output = %s, want renamed-puzzle.png", got)
	}
}

// Rendering is a pure function of the document and fixed constants, so
// repeated runs must produce byte-identical files.
func TestRenderAllIdempotent(t *testing.T) {
	path := writeDoc(t, "task.json", fullDoc)
	r := Open(path)

	read := func() map[string][]byte {
		if _, _, err := r.RenderAll(); err != nil {
			t.Fatalf("RenderAll() error = %v", err)
		}
		out := map[string][]byte{}
		dir := filepath.Dir(path)
		for _, name := range []string{"task-puzzle.png", "task-examples.png", "task-test.png", "task-answer.png"} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			out[name] = data
		}
		return out
	}

	first := read()
	second := read()
	for name := range first {
		if !bytes.Equal(first[name], second[name]) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

// ============================================================================
// Single-Output Tests
// ============================================================================

func TestSingleOutputs(t *testing.T) {
	path := writeDoc(t, "task.json", fullDoc)
	r := Open(path)

	tests := []struct {
		name   string
		render func() (string, error)
		want   string
	}{
		{"puzzle", r.Puzzle, "task-puzzle.png"},
		{"examples", r.Examples, "task-examples.png"},
		{"test", r.Test, "task-test.png"},
		{"answer", r.Answer, "task-answer.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.render()
			if err != nil {
				t.Fatalf("render error = %v", err)
			}
			if filepath.Base(got) != tt.want {
				t.Errorf("path = %s, want base %s", got, tt.want)
			}
			if _, err := os.Stat(got); err != nil {
				t.Errorf("stat %s: %v", got, err)
			}
		})
	}
}

func TestAnswerWithheldFails(t *testing.T) {
	path := writeDoc(t, "task.json", minimalDoc)
	_, err := Open(path).Answer()
	if !errors.Is(err, compose.ErrNoData) {
		t.Errorf("Answer() error = %v, want ErrNoData", err)
	}
}

// ============================================================================
// Fluent API Tests
// ============================================================================

func TestChainingDoesNotMutate(t *testing.T) {
	base := Open("task.json")
	withDir := base.OutputDir("elsewhere")

	if base.options.outputDir != "" {
		t.Error("OutputDir() mutated the original renderer")
	}
	if withDir.options.outputDir != "elsewhere" {
		t.Error("OutputDir() did not configure the new renderer")
	}
}

func TestFormatWarnings(t *testing.T) {
	got := FormatWarnings([]Warning{
		{Kind: KindAnswer, Message: "no output grid"},
		{Kind: KindTest, Message: "no test pair"},
	})
	want := "answer: no output grid; test: no test pair"
	if got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
}

func TestMust(t *testing.T) {
	if got := Must("ok", nil); got != "ok" {
		t.Errorf("Must() = %q, want ok", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must() should panic on error")
		}
	}()
	Must("", errors.New("boom"))
}
