package model

import "image/color"

// Palette is the fixed mapping from the ten valid color indices to their
// RGB values. The rendered output depends on these exact values; they are
// not configurable.
var Palette = [10]color.RGBA{
	{0, 0, 0, 255},       // 0 black
	{0, 116, 217, 255},   // 1 blue
	{255, 65, 54, 255},   // 2 red
	{46, 204, 64, 255},   // 3 green
	{255, 220, 0, 255},   // 4 yellow
	{170, 170, 170, 255}, // 5 gray
	{240, 18, 190, 255},  // 6 magenta
	{255, 133, 27, 255},  // 7 orange
	{127, 219, 255, 255}, // 8 sky
	{128, 0, 0, 255},     // 9 maroon
}

// ColorOf resolves a color index to its palette entry. Indices outside
// 0-9 resolve to the index-0 color (black).
func ColorOf(index int) color.RGBA {
	if index < 0 || index >= len(Palette) {
		return Palette[0]
	}
	return Palette[index]
}
