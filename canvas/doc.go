// Package canvas provides the minimal 2D drawing surface the layout logic
// composes images against.
//
// The [Canvas] interface exposes only the capabilities the compositions
// need: allocate a blank surface, fill a rectangle with a fill and outline
// color, draw a text label, and encode the result as PNG. Keeping the
// surface this small lets the layout logic be tested without a real
// rendering backend.
//
// # Implementations
//
// Two implementations are provided:
//
//   - [Context] - the production backend, built on github.com/fogleman/gg.
//     Labels are set in the bundled Go Regular face at a fixed size so
//     output bytes are identical across runs and machines.
//   - [Recorder] - records draw operations instead of rasterizing them,
//     for layout assertions in tests.
//
// A [Factory] allocates a canvas once a composition has computed its
// pixel dimensions.
package canvas
