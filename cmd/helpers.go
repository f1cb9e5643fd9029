package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/config"
)

// addConfigFlags registers the device/theme axes shared by every command
// that keys work off a capture configuration.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("size", "normal", "Screen size: small, normal, large, xlarge")
	cmd.Flags().String("density", "mdpi", "Pixel density: mdpi, hdpi, xhdpi, xxhdpi")
	cmd.Flags().Bool("dark", false, "Dark theme")
	cmd.Flags().String("font-scale", "normal", "Font scale: small, normal, large, xlarge")
	cmd.Flags().Bool("high-contrast", false, "High-contrast theme")
}

// captureConfigFromFlags builds a CaptureConfig from the flags registered by
// addConfigFlags.
func captureConfigFromFlags(cmd *cobra.Command) (config.CaptureConfig, error) {
	var cfg config.CaptureConfig

	sizeStr, _ := cmd.Flags().GetString("size")
	size, err := config.ParseScreenSize(sizeStr)
	if err != nil {
		return cfg, err
	}
	densityStr, _ := cmd.Flags().GetString("density")
	density, err := config.ParseDensity(densityStr)
	if err != nil {
		return cfg, err
	}
	scaleStr, _ := cmd.Flags().GetString("font-scale")
	scale, err := config.ParseFontScale(scaleStr)
	if err != nil {
		return cfg, err
	}
	dark, _ := cmd.Flags().GetBool("dark")
	highContrast, _ := cmd.Flags().GetBool("high-contrast")

	cfg.Device = config.DeviceConfig{Size: size, Density: density}
	cfg.Theme = config.ThemeConfig{DarkMode: dark, FontScale: scale, HighContrast: highContrast}
	return cfg, nil
}

// addPolicyFlags registers accessibility-policy selection flags.
func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().String("preset", "wcag-aa", "Policy preset: wcag-aa, elderly, relaxed")
	cmd.Flags().Float64("min-text-contrast", 0, "Override minimum text contrast ratio")
	cmd.Flags().Int("min-touch-target", 0, "Override minimum touch target size in dp")
	cmd.Flags().Int("min-button-size", 0, "Override minimum button size in dp")
}

// policyFromFlags resolves the preset and applies any overrides.
func policyFromFlags(cmd *cobra.Command) (config.AccessibilityConfig, error) {
	name, _ := cmd.Flags().GetString("preset")
	policy, ok := config.ParsePreset(name)
	if !ok {
		return policy, fmt.Errorf("unknown preset: %q (use wcag-aa, elderly, or relaxed)", name)
	}

	if v, _ := cmd.Flags().GetFloat64("min-text-contrast"); v > 0 {
		policy.MinTextContrast = v
	}
	if v, _ := cmd.Flags().GetInt("min-touch-target"); v > 0 {
		policy.MinTouchTargetSize = v
	}
	if v, _ := cmd.Flags().GetInt("min-button-size"); v > 0 {
		policy.MinButtonSize = v
	}
	if err := policy.Validate(); err != nil {
		return policy, err
	}
	return policy, nil
}

// loadPNG reads and decodes a PNG file.
func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// savePNG encodes img to path.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode image %s: %w", path, err)
	}
	return f.Close()
}
