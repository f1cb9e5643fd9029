package matrix

import (
	"strings"
	"testing"

	"github.com/uiproof/uiproof/internal/config"
)

func TestFull_CrossProduct(t *testing.T) {
	devices := DefaultDevices()
	themes := DefaultThemes()
	cases := Full("recording_screen", devices, themes)

	if len(cases) != len(devices)*len(themes) {
		t.Fatalf("got %d cases, want %d", len(cases), len(devices)*len(themes))
	}

	// Every device/theme pair appears exactly once.
	seen := make(map[config.CaptureConfig]bool)
	for _, c := range cases {
		if seen[c.Config] {
			t.Errorf("duplicate config %+v", c.Config)
		}
		seen[c.Config] = true
		if c.Accessibility != nil {
			t.Error("visual cases must not carry an accessibility policy")
		}
	}
}

func TestBuildTestName_Format(t *testing.T) {
	device := config.DeviceConfig{Size: config.ScreenNormal, Density: config.DensityXHDPI}
	theme := config.ThemeConfig{DarkMode: true, FontScale: config.FontLarge, HighContrast: true}

	got := BuildTestName("main", device, theme, nil)
	want := "main_normal_xhdpi_dark_large_high_contrast"
	if got != want {
		t.Errorf("BuildTestName = %q, want %q", got, want)
	}

	elderly := config.Elderly()
	got = BuildTestName("main", device, theme, &elderly)
	if !strings.HasSuffix(got, "_elderly") {
		t.Errorf("preset policy must append its token, got %q", got)
	}

	custom := config.WCAGAA()
	custom.MinButtonSize = 44
	got = BuildTestName("main", device, theme, &custom)
	if !strings.HasSuffix(got, "_custom") {
		t.Errorf("unrecognized policy must append %q, got %q", "custom", got)
	}
}

func TestBuildTestName_InjectiveOverGeneratedMatrix(t *testing.T) {
	// Collect every name from the full matrix plus every sweep; no two
	// distinct input tuples may collide.
	var names []string
	for _, c := range Full("suite", DefaultDevices(), DefaultThemes()) {
		names = append(names, c.Name)
	}
	device := config.DeviceConfig{Size: config.ScreenNormal, Density: config.DensityXHDPI}
	theme := config.ThemeConfig{DarkMode: false, FontScale: config.FontNormal}
	for _, c := range AccessibilitySweep("suite", device, theme) {
		names = append(names, c.Name)
	}
	for _, c := range FontScaleSweep("suite_font", device, false) {
		names = append(names, c.Name)
	}
	for _, c := range HighContrastSweep("suite_hc", device, true) {
		names = append(names, c.Name)
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("name collision: %q", name)
		}
		seen[name] = true
	}
}

func TestAccessibilitySweep(t *testing.T) {
	device := config.DeviceConfig{Size: config.ScreenNormal, Density: config.DensityXHDPI}
	theme := config.ThemeConfig{DarkMode: false, FontScale: config.FontNormal}
	cases := AccessibilitySweep("settings", device, theme)

	if len(cases) != 3 {
		t.Fatalf("got %d cases, want 3 presets", len(cases))
	}
	wantSuffixes := []string{"_wcag_aa", "_elderly", "_relaxed"}
	for i, c := range cases {
		if c.Accessibility == nil {
			t.Fatalf("case %d missing policy", i)
		}
		if !strings.HasSuffix(c.Name, wantSuffixes[i]) {
			t.Errorf("case %d name = %q, want suffix %q", i, c.Name, wantSuffixes[i])
		}
		if c.Config.Device != device || c.Config.Theme != theme {
			t.Errorf("case %d must hold device and theme fixed", i)
		}
	}
}

func TestFontScaleSweep(t *testing.T) {
	device := config.DeviceConfig{Size: config.ScreenNormal, Density: config.DensityXHDPI}
	cases := FontScaleSweep("settings", device, false)

	if len(cases) != len(config.FontScales) {
		t.Fatalf("got %d cases, want %d", len(cases), len(config.FontScales))
	}
	for i, c := range cases {
		if c.Config.Theme.FontScale != config.FontScales[i] {
			t.Errorf("case %d font scale = %v, want %v", i, c.Config.Theme.FontScale, config.FontScales[i])
		}
		if c.Config.Theme.DarkMode || c.Config.Theme.HighContrast {
			t.Errorf("case %d must hold other theme axes fixed", i)
		}
	}
}

func TestHighContrastSweep(t *testing.T) {
	device := config.DeviceConfig{Size: config.ScreenLarge, Density: config.DensityXHDPI}
	cases := HighContrastSweep("settings", device, true)

	if len(cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(cases))
	}
	if cases[0].Config.Theme.HighContrast || !cases[1].Config.Theme.HighContrast {
		t.Error("sweep must cover both high-contrast states in order")
	}
}
