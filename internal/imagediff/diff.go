// Package imagediff compares two rasters pixel by pixel and reports a match
// verdict, an aggregate difference ratio, and the regions that differ.
package imagediff

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// DefaultThreshold is the fraction of differing pixels tolerated before two
// same-size images stop matching. Small by design for strict regression use.
const DefaultThreshold = 0.01

// DefaultPixelTolerance is the per-channel delta (0-255) a pixel pair may
// have before it counts as differing. The default of 0 requires exact
// channel equality; raise it to absorb sub-pixel rendering noise.
const DefaultPixelTolerance = 0

// Options tunes a comparison. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Threshold is the maximum difference ratio that still matches.
	Threshold float64
	// PixelTolerance is the per-channel delta before a pixel differs.
	PixelTolerance uint8
}

// DefaultOptions returns the strict-regression defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:      DefaultThreshold,
		PixelTolerance: DefaultPixelTolerance,
	}
}

// Result is the outcome of one comparison.
type Result struct {
	Match       bool              `yaml:"match"              json:"match"`
	DiffRatio   float64           `yaml:"diff_ratio"         json:"diff_ratio"`
	DiffRegions []image.Rectangle `yaml:"-"                  json:"-"`
	Message     string            `yaml:"message,omitempty"  json:"message,omitempty"`
}

// RegionCount returns the number of differing regions, for serialized output.
func (r Result) RegionCount() int { return len(r.DiffRegions) }

// Compare diffs actual against expected. Images of different dimensions
// short-circuit to a full-canvas non-match without a pixel walk; that is a
// reported outcome, not an error.
func Compare(actual, expected image.Image, opts Options) Result {
	aw, ah := actual.Bounds().Dx(), actual.Bounds().Dy()
	ew, eh := expected.Bounds().Dx(), expected.Bounds().Dy()

	if aw != ew || ah != eh {
		w, h := max(aw, ew), max(ah, eh)
		return Result{
			Match:       false,
			DiffRatio:   1.0,
			DiffRegions: []image.Rectangle{image.Rect(0, 0, w, h)},
			Message: fmt.Sprintf("dimensions differ: actual %dx%d, expected %dx%d",
				aw, ah, ew, eh),
		}
	}

	a := toRGBA(actual)
	e := toRGBA(expected)

	mask := make([]bool, aw*ah)
	differing := 0
	for y := 0; y < ah; y++ {
		for x := 0; x < aw; x++ {
			if pixelDiffers(a, e, x, y, opts.PixelTolerance) {
				mask[y*aw+x] = true
				differing++
			}
		}
	}

	total := aw * ah
	ratio := 0.0
	if total > 0 {
		ratio = float64(differing) / float64(total)
	}

	result := Result{
		Match:     ratio <= opts.Threshold,
		DiffRatio: ratio,
	}
	if differing > 0 {
		result.DiffRegions = extractRegions(mask, aw, ah)
	}
	if !result.Match {
		result.Message = fmt.Sprintf("%d of %d pixels differ (ratio %.4f, threshold %.4f)",
			differing, total, ratio, opts.Threshold)
	}
	return result
}

// pixelDiffers reports whether the pixel pair at (x, y) differs by more than
// tolerance in any channel, alpha included.
func pixelDiffers(a, e *image.RGBA, x, y int, tolerance uint8) bool {
	ai := a.PixOffset(a.Bounds().Min.X+x, a.Bounds().Min.Y+y)
	ei := e.PixOffset(e.Bounds().Min.X+x, e.Bounds().Min.Y+y)
	for c := 0; c < 4; c++ {
		d := int(a.Pix[ai+c]) - int(e.Pix[ei+c])
		if d < 0 {
			d = -d
		}
		if d > int(tolerance) {
			return true
		}
	}
	return false
}

// samePixel colors in the diff visualization: a translucent neutral tone for
// unchanged pixels, saturated opaque red for differing or padded pixels.
var (
	samePixel = color.RGBA{R: 128, G: 128, B: 128, A: 80}
	diffPixel = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// DiffImage synthesizes a visualization of the differences between two
// images. The canvas takes the larger width and larger height of the two;
// area covered by only one input is treated as differing.
func DiffImage(actual, expected image.Image, tolerance uint8) *image.RGBA {
	aw, ah := actual.Bounds().Dx(), actual.Bounds().Dy()
	ew, eh := expected.Bounds().Dx(), expected.Bounds().Dy()
	w, h := max(aw, ew), max(ah, eh)

	a := toRGBA(actual)
	e := toRGBA(expected)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inBoth := x < aw && y < ah && x < ew && y < eh
			if inBoth && !pixelDiffers(a, e, x, y, tolerance) {
				out.SetRGBA(x, y, samePixel)
			} else {
				out.SetRGBA(x, y, diffPixel)
			}
		}
	}
	return out
}

// toRGBA returns img as *image.RGBA, converting only when necessary.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
