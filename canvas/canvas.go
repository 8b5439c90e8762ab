package canvas

import (
	"image/color"
	"io"
)

// Canvas is a fixed-size drawing surface. It is created per composition,
// mutated by successive draw calls, then encoded once. Implementations are
// not safe for concurrent use; each composition owns its canvas
// exclusively.
type Canvas interface {
	// Bounds returns the surface dimensions in pixels.
	Bounds() (width, height int)

	// FillRect paints a filled rectangle with a one-pixel outline stroke.
	FillRect(x, y, width, height int, fill, outline color.Color)

	// DrawLabel draws black label text with its top-left corner at (x, y).
	DrawLabel(text string, x, y int)

	// EncodePNG writes the surface to w as PNG.
	EncodePNG(w io.Writer) error
}

// Factory allocates a blank canvas of the given pixel dimensions with a
// white background.
type Factory func(width, height int) Canvas
