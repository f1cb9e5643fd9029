package imagediff

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Annotate draws an outline and an index label ("[1]", "[2]", ...) on the
// diff visualization for each differing region, so a failure artifact shows
// at a glance where the regressions are.
func Annotate(img *image.RGBA, regions []image.Rectangle) {
	boxColor := color.RGBA{R: 255, G: 255, B: 0, A: 255}    // Yellow outline
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255} // White
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}    // Black

	for i, region := range regions {
		drawRectangle(img, region.Min.X, region.Min.Y, region.Max.X, region.Max.Y, boxColor)
		label := fmt.Sprintf("[%d]", i+1)
		cx := (region.Min.X + region.Max.X) / 2
		cy := (region.Min.Y + region.Max.Y) / 2
		drawTextWithOutline(img, label, cx, cy, textColor, outlineColor)
	}
}

// isWithinBounds checks if a point is within the image bounds.
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	// Clamp to image bounds
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	if x2 <= x1 || y2 <= y1 {
		return // Empty rectangle
	}

	// Top and bottom edges
	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}

	// Left and right edges
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text centered at (x, y) with a one-pixel outline
// for visibility on any background.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: ~7px per character, 13px tall.
	textWidth := len(text) * 7
	textHeight := 13

	offsetX := x - textWidth/2
	offsetY := y - textHeight/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := fixed.Point26_6{
				X: fixed.Int26_6((offsetX + dx) * 64),
				Y: fixed.Int26_6((offsetY + dy) * 64),
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot:  p,
			}
			d.DrawString(text)
		}
	}

	point := fixed.Point26_6{
		X: fixed.Int26_6(offsetX * 64),
		Y: fixed.Int26_6(offsetY * 64),
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}
