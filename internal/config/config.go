// Package config defines the value types that key a visual-regression or
// accessibility run: device class, theme, and compliance policy. All types
// are plain comparable structs so they can be used as map keys and compared
// with ==.
package config

import (
	"fmt"
	"strings"
)

// ScreenSize is the screen-size category of a device under test.
type ScreenSize string

const (
	ScreenSmall  ScreenSize = "small"
	ScreenNormal ScreenSize = "normal"
	ScreenLarge  ScreenSize = "large"
	ScreenXLarge ScreenSize = "xlarge"
)

// Density is the pixel-density category of a device under test.
type Density string

const (
	DensityMDPI   Density = "mdpi"
	DensityHDPI   Density = "hdpi"
	DensityXHDPI  Density = "xhdpi"
	DensityXXHDPI Density = "xxhdpi"
)

// PxPerDp returns the pixel-to-density-independent-unit scale for the density.
func (d Density) PxPerDp() float64 {
	switch d {
	case DensityMDPI:
		return 1.0
	case DensityHDPI:
		return 1.5
	case DensityXHDPI:
		return 2.0
	case DensityXXHDPI:
		return 3.0
	default:
		return 1.0
	}
}

// FontScale is the user font-scale category, ordered smallest to largest.
type FontScale string

const (
	FontSmall  FontScale = "small"
	FontNormal FontScale = "normal"
	FontLarge  FontScale = "large"
	FontXLarge FontScale = "xlarge"
)

// FontScales lists all font scales in order.
var FontScales = []FontScale{FontSmall, FontNormal, FontLarge, FontXLarge}

// DeviceConfig identifies one screen class under test.
type DeviceConfig struct {
	Size    ScreenSize `yaml:"size"    json:"size"`
	Density Density    `yaml:"density" json:"density"`
}

// Token returns the lower-cased device token used in artifact paths and
// test names, e.g. "normal_xhdpi".
func (d DeviceConfig) Token() string {
	return strings.ToLower(fmt.Sprintf("%s_%s", d.Size, d.Density))
}

// ThemeConfig identifies one visual theme under test.
type ThemeConfig struct {
	DarkMode     bool      `yaml:"dark_mode"     json:"dark_mode"`
	FontScale    FontScale `yaml:"font_scale"    json:"font_scale"`
	HighContrast bool      `yaml:"high_contrast" json:"high_contrast"`
}

// Mode returns "dark" or "light".
func (t ThemeConfig) Mode() string {
	if t.DarkMode {
		return "dark"
	}
	return "light"
}

// Token returns the theme token used in test names,
// e.g. "dark_large_high_contrast".
func (t ThemeConfig) Token() string {
	tok := t.Mode() + "_" + string(t.FontScale)
	if t.HighContrast {
		tok += "_high_contrast"
	}
	return tok
}

// CaptureConfig is the full rendering context of one test invocation.
// Equality is by value; two equal configs map to the same artifact path.
type CaptureConfig struct {
	Device DeviceConfig `yaml:"device" json:"device"`
	Theme  ThemeConfig  `yaml:"theme"  json:"theme"`
}

// AccessibilityConfig is the compliance policy a semantic tree is verified
// against. Sizes are in density-independent units; ratios are contrast
// ratios (>= 1.0).
type AccessibilityConfig struct {
	MinTextContrast    float64 `yaml:"min_text_contrast"     json:"min_text_contrast"`
	MinNonTextContrast float64 `yaml:"min_non_text_contrast" json:"min_non_text_contrast"`
	MinButtonSize      int     `yaml:"min_button_size"       json:"min_button_size"`
	MinTouchTargetSize int     `yaml:"min_touch_target_size" json:"min_touch_target_size"`
	CheckTargetSizes   bool    `yaml:"check_target_sizes"    json:"check_target_sizes"`
	CheckContrast      bool    `yaml:"check_contrast"        json:"check_contrast"`
}

// Validate reports whether the policy's thresholds are in range.
func (a AccessibilityConfig) Validate() error {
	if a.MinTextContrast < 1.0 || a.MinNonTextContrast < 1.0 {
		return fmt.Errorf("contrast ratios must be >= 1.0 (got text %.2f, non-text %.2f)",
			a.MinTextContrast, a.MinNonTextContrast)
	}
	if a.MinButtonSize <= 0 || a.MinTouchTargetSize <= 0 {
		return fmt.Errorf("minimum sizes must be > 0 (got button %d, touch target %d)",
			a.MinButtonSize, a.MinTouchTargetSize)
	}
	return nil
}

// ParseScreenSize converts a flag value to a ScreenSize.
func ParseScreenSize(s string) (ScreenSize, error) {
	switch strings.ToLower(s) {
	case "small":
		return ScreenSmall, nil
	case "normal":
		return ScreenNormal, nil
	case "large":
		return ScreenLarge, nil
	case "xlarge":
		return ScreenXLarge, nil
	default:
		return ScreenNormal, fmt.Errorf("unknown screen size: %q (expected small, normal, large, or xlarge)", s)
	}
}

// ParseDensity converts a flag value to a Density.
func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(s) {
	case "mdpi":
		return DensityMDPI, nil
	case "hdpi":
		return DensityHDPI, nil
	case "xhdpi":
		return DensityXHDPI, nil
	case "xxhdpi":
		return DensityXXHDPI, nil
	default:
		return DensityMDPI, fmt.Errorf("unknown density: %q (expected mdpi, hdpi, xhdpi, or xxhdpi)", s)
	}
}

// ParseFontScale converts a flag value to a FontScale.
func ParseFontScale(s string) (FontScale, error) {
	switch strings.ToLower(s) {
	case "small":
		return FontSmall, nil
	case "normal":
		return FontNormal, nil
	case "large":
		return FontLarge, nil
	case "xlarge":
		return FontXLarge, nil
	default:
		return FontNormal, fmt.Errorf("unknown font scale: %q (expected small, normal, large, or xlarge)", s)
	}
}
