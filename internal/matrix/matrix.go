// Package matrix generates the device/theme/accessibility combinations a
// suite runs against, and builds the deterministic, collision-free test
// names that key golden artifacts.
package matrix

import (
	"strings"

	"github.com/uiproof/uiproof/internal/config"
)

// Case is one generated suite entry. Accessibility is nil for pure visual
// cases.
type Case struct {
	Name          string
	Config        config.CaptureConfig
	Accessibility *config.AccessibilityConfig
}

// DefaultDevices is the broad-coverage device set.
func DefaultDevices() []config.DeviceConfig {
	return []config.DeviceConfig{
		{Size: config.ScreenSmall, Density: config.DensityMDPI},
		{Size: config.ScreenNormal, Density: config.DensityXHDPI},
		{Size: config.ScreenLarge, Density: config.DensityXHDPI},
		{Size: config.ScreenXLarge, Density: config.DensityXXHDPI},
	}
}

// DefaultThemes is the broad-coverage theme set: both modes at normal scale.
func DefaultThemes() []config.ThemeConfig {
	return []config.ThemeConfig{
		{DarkMode: false, FontScale: config.FontNormal},
		{DarkMode: true, FontScale: config.FontNormal},
	}
}

// Full returns the cross product of devices and themes, one case per pair.
func Full(base string, devices []config.DeviceConfig, themes []config.ThemeConfig) []Case {
	var cases []Case
	for _, device := range devices {
		for _, theme := range themes {
			cfg := config.CaptureConfig{Device: device, Theme: theme}
			cases = append(cases, Case{
				Name:   BuildTestName(base, device, theme, nil),
				Config: cfg,
			})
		}
	}
	return cases
}

// AccessibilitySweep holds one device and theme fixed and varies the policy
// over every named preset.
func AccessibilitySweep(base string, device config.DeviceConfig, theme config.ThemeConfig) []Case {
	presets := []config.AccessibilityConfig{
		config.WCAGAA(),
		config.Elderly(),
		config.Relaxed(),
	}
	var cases []Case
	for _, preset := range presets {
		p := preset
		cases = append(cases, Case{
			Name:          BuildTestName(base, device, theme, &p),
			Config:        config.CaptureConfig{Device: device, Theme: theme},
			Accessibility: &p,
		})
	}
	return cases
}

// FontScaleSweep holds the device and every other theme axis fixed and
// varies only the font scale.
func FontScaleSweep(base string, device config.DeviceConfig, darkMode bool) []Case {
	var cases []Case
	for _, scale := range config.FontScales {
		theme := config.ThemeConfig{DarkMode: darkMode, FontScale: scale}
		cases = append(cases, Case{
			Name:   BuildTestName(base, device, theme, nil),
			Config: config.CaptureConfig{Device: device, Theme: theme},
		})
	}
	return cases
}

// HighContrastSweep varies only the high-contrast flag.
func HighContrastSweep(base string, device config.DeviceConfig, darkMode bool) []Case {
	var cases []Case
	for _, hc := range []bool{false, true} {
		theme := config.ThemeConfig{DarkMode: darkMode, FontScale: config.FontNormal, HighContrast: hc}
		cases = append(cases, Case{
			Name:   BuildTestName(base, device, theme, nil),
			Config: config.CaptureConfig{Device: device, Theme: theme},
		})
	}
	return cases
}

// BuildTestName concatenates, in fixed order, the base name, the device
// token, the theme token, and, when a policy is supplied, its preset token.
// Distinct input tuples yield distinct names because every enum token is
// distinct within its axis and the axes join in a fixed order.
func BuildTestName(base string, device config.DeviceConfig, theme config.ThemeConfig, a11y *config.AccessibilityConfig) string {
	parts := []string{base, device.Token(), theme.Token()}
	if a11y != nil {
		parts = append(parts, config.PresetToken(*a11y))
	}
	return strings.Join(parts, "_")
}
