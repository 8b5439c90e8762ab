// Package model provides the intermediate representation (IR) for parsed
// puzzle documents.
//
// This package defines the user-facing data structures that represent a
// puzzle task: a sequence of training example pairs and a test pair. All
// parsing ultimately produces these types, making them the primary API for
// consuming puzzle data.
//
// # Document Structure
//
// The [Document] type represents a complete puzzle task:
//
//	doc, err := model.Load("puzzle.json")
//	for _, ex := range doc.Train {
//	    w, h := ex.Input.Size()
//	    ...
//	}
//
// Each [Example] holds an input and output [Grid]; the [TestPair] holds an
// input grid and an optional output grid (the withheld answer).
//
// # Grids
//
// A [Grid] is a rectangular array of small integer color indices (0-9).
// Grid geometry is deliberately forgiving: the width is taken from the
// first row, rows of unequal length are tolerated, and out-of-bounds cell
// reads resolve to index 0 rather than failing. An empty grid has size
// (0, 0) and draws nothing.
//
// # Colors
//
// [ColorOf] maps the ten valid color indices to their fixed RGB values.
// Any index outside 0-9 resolves to the index-0 color (black); this
// fallback is the single defined behavior for malformed color data.
package model
