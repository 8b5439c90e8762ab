// Package compose builds the four puzzle images from a parsed document.
//
// Each composition is an independent, single-pass pipeline: compute the
// pixel layout from the document's grid dimensions, allocate a canvas of
// the computed size, issue draw calls, and return the canvas. Nothing is
// cached or shared between compositions; two of them recompute
// near-identical geometry on purpose.
//
// # Compositions
//
//   - [Puzzle] - all training pairs stacked in a left column, the test
//     input and a blank answer placeholder in a right column.
//   - [Examples] - the training pairs alone.
//   - [Test] - the test input above a blank answer placeholder, vertical.
//   - [Answer] - the test's true output grid, revealed.
//
// The puzzle view never reveals the answer: the test output region is
// always drawn blank, sized from the true output when present and from
// the input otherwise. When the document has at least two training pairs,
// the blank region is vertically aligned with the second pair's output
// grid so it lines up with a reference filled answer.
//
// # Layout
//
// All geometry derives from fixed constants: 20px cells drawn flush
// (outline stroke only between them), 20px spacing between grids, 30px
// label rows, and a 20px outer margin. Rendered output depends on these
// exact values.
//
// # Errors
//
// A composition whose required grids are absent or empty fails with
// [ErrNoData]. Callers distinguish it with errors.Is to decide whether a
// missing image is fatal or an expected skip (a dataset may legitimately
// withhold the test answer).
package compose
