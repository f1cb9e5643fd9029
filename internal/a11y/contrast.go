package a11y

import (
	"fmt"
	"math"
	"strings"
)

// WCAG 2.1 AA contrast thresholds.
const (
	// NormalTextRatio is the minimum contrast for normal-size text.
	NormalTextRatio = 4.5
	// LargeTextRatio is the minimum contrast for large text and non-text
	// elements such as focus indicators and dividers.
	LargeTextRatio = 3.0

	// Large-text boundary, inclusive: >= 18 units at normal weight, or
	// >= 14 units bold.
	largeTextSize     = 18.0
	largeTextBoldSize = 14.0
)

// RGB is a color in 8-bit sRGB channels.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" color (leading '#' optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: expected RRGGBB", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// linearize applies the sRGB transfer function to one channel in [0,1].
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of a color.
func Luminance(c RGB) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. The ratio is symmetric in its arguments.
func ContrastRatio(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	lighter, darker := la, lb
	if lb > la {
		lighter, darker = lb, la
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// IsLargeText reports whether text of the given size and weight falls under
// the relaxed large-text contrast requirement. The boundary is inclusive.
func IsLargeText(fontSize float64, bold bool) bool {
	if bold {
		return fontSize >= largeTextBoldSize
	}
	return fontSize >= largeTextSize
}

// IsContrastCompliant reports whether a measured ratio satisfies WCAG AA for
// the given text class.
func IsContrastCompliant(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= LargeTextRatio
	}
	return ratio >= NormalTextRatio
}

// FormatRatio renders a contrast ratio the way reports expect: two decimal
// places with a trailing ":1", e.g. "4.50:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
