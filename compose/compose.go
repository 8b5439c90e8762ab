package compose

import (
	"errors"
	"fmt"

	"github.com/tsawler/gridimg/canvas"
	"github.com/tsawler/gridimg/model"
)

// ErrNoData is returned when a composition's required grids are absent or
// empty. Callers check it with errors.Is: for some outputs a missing grid
// is an expected skip, not a failure.
var ErrNoData = errors.New("compose: no grid data")

// testLayout is the derived geometry of the test column in the puzzle
// view: the input grid plus the blank answer placeholder, whose shape
// comes from the true output when present and from the input otherwise.
type testLayout struct {
	input        model.Grid
	inputW       int
	inputH       int
	outputW      int
	outputH      int
	inputHeight  int // pixels
	outputHeight int // pixels
	width        int // pixels, widest of input and placeholder
}

// newTestLayout computes the test pair's geometry.
func newTestLayout(tp model.TestPair) testLayout {
	inputW, inputH := tp.Input.Size()
	outputW, outputH := inputW, inputH
	if tp.HasOutput() {
		outputW, outputH = tp.Output.Size()
	}
	width := inputW
	if outputW > width {
		width = outputW
	}
	return testLayout{
		input:        tp.Input,
		inputW:       inputW,
		inputH:       inputH,
		outputW:      outputW,
		outputH:      outputH,
		inputHeight:  inputH * cellStep,
		outputHeight: outputH * cellStep,
		width:        width * cellStep,
	}
}

// Puzzle builds the primary overview image: every training pair stacked in
// a left column and the test pair in a right column with its answer region
// drawn blank. When at least two training pairs exist, the blank region is
// aligned vertically with the second pair's output grid.
//
// It fails with ErrNoData when the document has neither training nor test
// grids.
func Puzzle(doc *model.Document, newCanvas canvas.Factory) (canvas.Canvas, error) {
	if len(doc.Train) == 0 && len(doc.Test) == 0 {
		return nil, fmt.Errorf("puzzle: %w: document has no train or test grids", ErrNoData)
	}

	rows, trainWidth, trainHeight := trainLayout(doc.Train)

	var test testLayout
	tp, hasTest := doc.TestPair()
	if hasTest {
		test = newTestLayout(tp)
	}

	leftColumnWidth := trainWidth + 2*Margin
	rightColumnWidth := 0
	if hasTest {
		rightColumnWidth = test.width + 2*Margin
	}
	columnSpacing := GridSpacing * 2

	imgWidth := leftColumnWidth + columnSpacing + rightColumnWidth

	testColumnHeight := 0
	if hasTest {
		testColumnHeight = LabelHeight + // "Test"
			LabelHeight + // "Input"
			test.inputHeight +
			GridSpacing +
			LabelHeight + // "Output"
			test.outputHeight
	}

	imgHeight := trainHeight
	if testColumnHeight > imgHeight {
		imgHeight = testColumnHeight
	}
	imgHeight += Margin

	c := newCanvas(imgWidth, imgHeight)

	secondOutputY, aligned := drawTrainRows(c, rows)

	if hasTest {
		testX := leftColumnWidth + columnSpacing + Margin
		testY := Margin

		c.DrawLabel("Test", testX, testY)
		testY += LabelHeight

		c.DrawLabel("Input", testX, testY)
		testY += LabelHeight

		drawGrid(c, test.input, testX, testY)

		var outputY int
		if aligned {
			// Line the blank answer region up with the second training
			// pair's output grid, label directly above it.
			outputY = secondOutputY
			c.DrawLabel("Output", testX, outputY-LabelHeight)
		} else {
			testY += test.inputHeight + GridSpacing
			c.DrawLabel("Output", testX, testY)
			testY += LabelHeight
			outputY = testY
		}

		drawBlankGrid(c, test.outputW, test.outputH, testX, outputY)
	}

	return c, nil
}

// Examples builds the training pairs alone, laid out exactly as the left
// column of the puzzle view. It fails with ErrNoData when the document has
// no training pairs.
func Examples(doc *model.Document, newCanvas canvas.Factory) (canvas.Canvas, error) {
	if len(doc.Train) == 0 {
		return nil, fmt.Errorf("examples: %w: document has no train grids", ErrNoData)
	}

	rows, trainWidth, trainHeight := trainLayout(doc.Train)

	c := newCanvas(trainWidth+2*Margin, trainHeight+Margin)
	drawTrainRows(c, rows)
	return c, nil
}

// Test builds the single-column test view: the test input grid above a
// blank answer placeholder. The placeholder takes the true output's shape
// when the document carries one, and the input's shape otherwise; either
// way it is drawn blank. It fails with ErrNoData when the document has no
// test pair or the test input is empty.
func Test(doc *model.Document, newCanvas canvas.Factory) (canvas.Canvas, error) {
	tp, ok := doc.TestPair()
	if !ok {
		return nil, fmt.Errorf("test: %w: document has no test pair", ErrNoData)
	}
	if tp.Input.IsEmpty() {
		return nil, fmt.Errorf("test: %w: test pair has no input grid", ErrNoData)
	}

	layout := newTestLayout(tp)

	imgWidth := layout.width + 2*Margin
	imgHeight := LabelHeight + // "Test"
		LabelHeight + // "Input"
		layout.inputHeight +
		GridSpacing +
		LabelHeight + // "Output"
		layout.outputHeight +
		Margin

	c := newCanvas(imgWidth, imgHeight)

	x, y := Margin, Margin

	c.DrawLabel("Test", x, y)
	y += LabelHeight

	c.DrawLabel("Input", x, y)
	y += LabelHeight

	drawGrid(c, layout.input, x, y)
	y += layout.inputHeight + GridSpacing

	c.DrawLabel("Output", x, y)
	y += LabelHeight

	drawBlankGrid(c, layout.outputW, layout.outputH, x, y)

	return c, nil
}

// Answer builds the revealed answer image: the test pair's true output
// grid under a "Test Output" label. It fails with ErrNoData when the
// document has no test pair or the answer is withheld; that absence is an
// expected condition for evaluation datasets, so callers should treat it
// as a skip rather than an abort.
func Answer(doc *model.Document, newCanvas canvas.Factory) (canvas.Canvas, error) {
	tp, ok := doc.TestPair()
	if !ok {
		return nil, fmt.Errorf("answer: %w: document has no test pair", ErrNoData)
	}
	if !tp.HasOutput() {
		return nil, fmt.Errorf("answer: %w: test pair has no output grid", ErrNoData)
	}

	outputW, outputH := tp.Output.Size()

	imgWidth := outputW*cellStep + 2*Margin
	imgHeight := outputH*cellStep + LabelHeight + 2*Margin

	c := newCanvas(imgWidth, imgHeight)

	c.DrawLabel("Test Output", Margin, Margin)
	drawGrid(c, tp.Output, Margin, Margin+LabelHeight)

	return c, nil
}
