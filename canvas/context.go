package canvas

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// labelFontSize is the point size labels are set in. It fits comfortably
// inside the 30px label rows the compositions reserve.
const labelFontSize = 13

var (
	labelFace   font.Face
	labelAscent int
)

func init() {
	// goregular.TTF is compiled into the binary; a parse failure would be
	// a build defect, not a runtime condition.
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("canvas: parse bundled label font: " + err.Error())
	}
	labelFace = truetype.NewFace(f, &truetype.Options{
		Size:    labelFontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	labelAscent = labelFace.Metrics().Ascent.Ceil()
}

// Context is the production Canvas, rasterizing draw calls into an RGBA
// image via github.com/fogleman/gg.
type Context struct {
	dc     *gg.Context
	width  int
	height int
}

// NewContext allocates a width x height canvas cleared to white.
// It satisfies Factory.
func NewContext(width, height int) Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(labelFace)
	return &Context{dc: dc, width: width, height: height}
}

// Bounds returns the canvas dimensions in pixels.
func (c *Context) Bounds() (width, height int) {
	return c.width, c.height
}

// FillRect paints a filled rectangle and strokes a one-pixel outline just
// inside its edges. The stroke path is offset by half a pixel so the
// outline lands on whole pixels without antialiasing.
func (c *Context) FillRect(x, y, width, height int, fill, outline color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	c.dc.SetColor(fill)
	c.dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	c.dc.Fill()

	c.dc.SetColor(outline)
	c.dc.SetLineWidth(1)
	c.dc.DrawRectangle(float64(x)+0.5, float64(y)+0.5, float64(width)-1, float64(height)-1)
	c.dc.Stroke()
}

// DrawLabel draws text in black with its top-left corner at (x, y).
func (c *Context) DrawLabel(text string, x, y int) {
	c.dc.SetColor(color.Black)
	c.dc.DrawString(text, float64(x), float64(y+labelAscent))
}

// Image returns the underlying pixel buffer.
func (c *Context) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas to w as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a file at path.
func (c *Context) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
