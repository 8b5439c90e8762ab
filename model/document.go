package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMalformedDocument is returned when a puzzle document cannot be
// decoded as JSON.
var ErrMalformedDocument = errors.New("model: malformed puzzle document")

// Example is one training (input, output) grid pair. Both grids are
// present in well-formed documents; a missing key decodes to a nil Grid,
// which behaves as an empty grid everywhere.
type Example struct {
	Input  Grid `json:"input"`
	Output Grid `json:"output"`
}

// TestPair is the evaluation (input, optional output) grid pair. The
// output is absent in documents that withhold the answer.
type TestPair struct {
	Input  Grid `json:"input"`
	Output Grid `json:"output,omitempty"`
}

// HasOutput reports whether the pair carries a non-empty answer grid.
func (t TestPair) HasOutput() bool {
	return !t.Output.IsEmpty()
}

// Document is a complete parsed puzzle task: an ordered sequence of
// training examples and an ordered sequence of test pairs. Missing keys
// decode to empty sequences rather than errors. Only the first test pair
// is ever rendered.
type Document struct {
	Train []Example  `json:"train"`
	Test  []TestPair `json:"test"`
}

// TestPair returns the first test pair, or (zero, false) if the document
// has none.
func (d *Document) TestPair() (TestPair, bool) {
	if len(d.Test) == 0 {
		return TestPair{}, false
	}
	return d.Test[0], true
}

// Decode parses a puzzle document from r. Decoding failures are reported
// as ErrMalformedDocument with the underlying cause attached.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Load reads and parses the puzzle document at filename.
func Load(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("model: open document: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
