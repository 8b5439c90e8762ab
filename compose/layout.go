package compose

import (
	"fmt"
	"image/color"

	"github.com/tsawler/gridimg/canvas"
	"github.com/tsawler/gridimg/model"
)

// Fixed layout constants, in pixels. Rendered geometry depends on these
// exact values.
const (
	// CellSize is the side length of one grid cell.
	CellSize = 20

	// CellPadding is the gap between adjacent cells. Cells are drawn
	// flush; only the outline stroke separates them.
	CellPadding = 0

	// GridSpacing separates grids from each other.
	GridSpacing = 20

	// LabelHeight is the height reserved for one row of label text.
	LabelHeight = 30

	// Margin surrounds the whole image.
	Margin = 20

	// cellStep is the distance between adjacent cell origins.
	cellStep = CellSize + CellPadding
)

// Outline and placeholder colors.
var (
	filledOutline = color.RGBA{100, 100, 100, 255}
	blankOutline  = color.RGBA{200, 200, 200, 255}
	blankFill     = color.RGBA{255, 255, 255, 255}
)

// drawGrid paints every cell of g with its palette color and a neutral
// gray outline, with the grid's top-left corner at (x, y).
func drawGrid(c canvas.Canvas, g model.Grid, x, y int) {
	width, height := g.Size()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			fill := model.ColorOf(g.At(col, row))
			c.FillRect(x+col*cellStep, y+row*cellStep, CellSize, CellSize, fill, filledOutline)
		}
	}
}

// drawBlankGrid paints a width x height placeholder of white cells with a
// light gray outline. It takes dimensions only, so it cannot reveal cell
// content.
func drawBlankGrid(c canvas.Canvas, width, height, x, y int) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c.FillRect(x+col*cellStep, y+row*cellStep, CellSize, CellSize, blankFill, blankOutline)
		}
	}
}

// exampleRow is the derived per-pair geometry for one training example:
// grid sizes in cells and the pixel height of the side-by-side grid row.
// It is recomputed fresh for every composition call.
type exampleRow struct {
	index   int
	input   model.Grid
	output  model.Grid
	inputW  int
	inputH  int
	outputW int
	outputH int
	height  int // pixel height of the taller grid
}

// trainLayout computes per-pair geometry for the training column and its
// total pixel extent. Width is the widest combined input + spacing +
// output row; height accumulates two label rows, the grid row, and
// spacing per pair.
func trainLayout(train []model.Example) (rows []exampleRow, width, height int) {
	for i, ex := range train {
		inputW, inputH := ex.Input.Size()
		outputW, outputH := ex.Output.Size()

		rowWidth := inputW*cellStep + GridSpacing + outputW*cellStep
		rowHeight := inputH
		if outputH > rowHeight {
			rowHeight = outputH
		}
		rowHeight *= cellStep

		if rowWidth > width {
			width = rowWidth
		}
		rows = append(rows, exampleRow{
			index:   i,
			input:   ex.Input,
			output:  ex.Output,
			inputW:  inputW,
			inputH:  inputH,
			outputW: outputW,
			outputH: outputH,
			height:  rowHeight,
		})
		height += rowHeight + LabelHeight*2 + GridSpacing
	}
	return rows, width, height
}

// drawTrainRows draws the training pairs stacked from (Margin, Margin)
// down: an "Example N" label row, then "Input"/"Output" sub-labels sharing
// a row above the side-by-side grids. It returns the pixel Y of the second
// pair's output grid, used to align the puzzle view's blank answer region;
// ok is false when fewer than two pairs exist.
func drawTrainRows(c canvas.Canvas, rows []exampleRow) (secondOutputY int, ok bool) {
	y := Margin
	for _, row := range rows {
		c.DrawLabel(exampleLabel(row.index), Margin, y)
		y += LabelHeight

		inputX := Margin
		gridY := y + LabelHeight
		c.DrawLabel("Input", inputX, y)
		drawGrid(c, row.input, inputX, gridY)

		outputX := inputX + row.inputW*cellStep + GridSpacing
		c.DrawLabel("Output", outputX, y)
		drawGrid(c, row.output, outputX, gridY)

		if row.index == 1 {
			secondOutputY = gridY
			ok = true
		}

		y += LabelHeight + row.height + GridSpacing
	}
	return secondOutputY, ok
}

// exampleLabel formats the 1-based pair label.
func exampleLabel(index int) string {
	return fmt.Sprintf("Example %d", index+1)
}
