package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Rect is one recorded FillRect call.
type Rect struct {
	X, Y          int
	Width, Height int
	Fill, Outline color.Color
}

// Label is one recorded DrawLabel call.
type Label struct {
	Text string
	X, Y int
}

// Recorder is a Canvas that records draw operations instead of
// rasterizing them. It exists so layout computations can be asserted on
// directly in tests, without a rendering backend.
type Recorder struct {
	Width, Height int
	Rects         []Rect
	Labels        []Label
}

// NewRecorder allocates a recording canvas. It satisfies Factory.
func NewRecorder(width, height int) Canvas {
	return &Recorder{Width: width, Height: height}
}

// Bounds returns the recorded canvas dimensions.
func (r *Recorder) Bounds() (width, height int) {
	return r.Width, r.Height
}

// FillRect records the call.
func (r *Recorder) FillRect(x, y, width, height int, fill, outline color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, Width: width, Height: height, Fill: fill, Outline: outline})
}

// DrawLabel records the call.
func (r *Recorder) DrawLabel(text string, x, y int) {
	r.Labels = append(r.Labels, Label{Text: text, X: x, Y: y})
}

// EncodePNG writes a blank white image of the recorded size, so code paths
// that persist a canvas still work against a Recorder.
func (r *Recorder) EncodePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetRGBA(x, y, white)
		}
	}
	return png.Encode(w, img)
}

// FindLabel returns the first recorded label with the given text.
func (r *Recorder) FindLabel(text string) (Label, bool) {
	for _, l := range r.Labels {
		if l.Text == text {
			return l, true
		}
	}
	return Label{}, false
}

// RectsWithOutline returns the recorded rectangles stroked in the given
// outline color.
func (r *Recorder) RectsWithOutline(outline color.Color) []Rect {
	var out []Rect
	for _, rect := range r.Rects {
		if rect.Outline == outline {
			out = append(out, rect)
		}
	}
	return out
}
