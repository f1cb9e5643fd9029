package config

import "testing"

func TestPresets_Reproducible(t *testing.T) {
	// Presets are pure: two constructions compare equal by value.
	if WCAGAA() != WCAGAA() {
		t.Error("WCAGAA must be reproducible")
	}
	if Elderly() != Elderly() {
		t.Error("Elderly must be reproducible")
	}
	if Relaxed() != Relaxed() {
		t.Error("Relaxed must be reproducible")
	}
}

func TestPresets_Thresholds(t *testing.T) {
	aa := WCAGAA()
	if aa.MinTextContrast != 4.5 || aa.MinNonTextContrast != 3.0 {
		t.Errorf("WCAGAA contrast thresholds wrong: %+v", aa)
	}
	if aa.MinButtonSize != 48 || aa.MinTouchTargetSize != 48 {
		t.Errorf("WCAGAA size thresholds wrong: %+v", aa)
	}

	elderly := Elderly()
	if elderly.MinButtonSize <= aa.MinButtonSize || elderly.MinTouchTargetSize <= aa.MinTouchTargetSize {
		t.Error("Elderly must require larger targets than WCAGAA")
	}
	if elderly.MinTextContrast < aa.MinTextContrast {
		t.Error("Elderly contrast must be at least as strict as WCAGAA")
	}

	for _, p := range []AccessibilityConfig{aa, elderly, Relaxed()} {
		if err := p.Validate(); err != nil {
			t.Errorf("preset must validate: %v", err)
		}
		if !p.CheckTargetSizes || !p.CheckContrast {
			t.Errorf("all checks must be enabled in presets: %+v", p)
		}
	}
}

func TestPresetToken(t *testing.T) {
	tests := []struct {
		policy AccessibilityConfig
		want   string
	}{
		{WCAGAA(), "wcag_aa"},
		{Elderly(), "elderly"},
		{Relaxed(), "relaxed"},
	}
	for _, tt := range tests {
		if got := PresetToken(tt.policy); got != tt.want {
			t.Errorf("PresetToken() = %q, want %q", got, tt.want)
		}
	}

	custom := WCAGAA()
	custom.MinButtonSize = 44
	if got := PresetToken(custom); got != "custom" {
		t.Errorf("PresetToken(custom) = %q, want %q", got, "custom")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"wcag-aa", "wcag_aa", "elderly", "relaxed"} {
		if _, ok := ParsePreset(name); !ok {
			t.Errorf("ParsePreset(%q) not recognized", name)
		}
	}
	if _, ok := ParsePreset("strict"); ok {
		t.Error("ParsePreset must reject unknown names")
	}
}
