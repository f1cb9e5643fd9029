package config

// Named accessibility presets. Each is a pure function of fixed constants so
// a policy built twice compares equal and can be matched structurally when
// deriving a naming token.

// WCAGAA is the standard WCAG 2.1 AA policy: 4.5:1 for normal text, 3.0:1
// for large text and non-text elements, 48dp minimum control sizes.
func WCAGAA() AccessibilityConfig {
	return AccessibilityConfig{
		MinTextContrast:    4.5,
		MinNonTextContrast: 3.0,
		MinButtonSize:      48,
		MinTouchTargetSize: 48,
		CheckTargetSizes:   true,
		CheckContrast:      true,
	}
}

// Elderly is a stricter policy for low-vision and reduced-dexterity users:
// AAA-level text contrast and larger touch targets.
func Elderly() AccessibilityConfig {
	return AccessibilityConfig{
		MinTextContrast:    7.0,
		MinNonTextContrast: 4.5,
		MinButtonSize:      56,
		MinTouchTargetSize: 56,
		CheckTargetSizes:   true,
		CheckContrast:      true,
	}
}

// Relaxed loosens every threshold for exploratory, non-blocking runs. All
// checks stay enabled so violations are still reported.
func Relaxed() AccessibilityConfig {
	return AccessibilityConfig{
		MinTextContrast:    3.0,
		MinNonTextContrast: 2.0,
		MinButtonSize:      40,
		MinTouchTargetSize: 40,
		CheckTargetSizes:   true,
		CheckContrast:      true,
	}
}

// PresetToken returns the short naming token for a policy: "wcag_aa",
// "elderly", or "relaxed" when the policy matches a preset by value, and
// "custom" otherwise. Matching is structural, never by identity.
func PresetToken(a AccessibilityConfig) string {
	switch a {
	case WCAGAA():
		return "wcag_aa"
	case Elderly():
		return "elderly"
	case Relaxed():
		return "relaxed"
	default:
		return "custom"
	}
}

// ParsePreset resolves a preset name ("wcag-aa", "elderly", "relaxed",
// with "_" accepted for "-") to its policy.
func ParsePreset(name string) (AccessibilityConfig, bool) {
	switch name {
	case "wcag-aa", "wcag_aa", "wcagaa":
		return WCAGAA(), true
	case "elderly":
		return Elderly(), true
	case "relaxed":
		return Relaxed(), true
	default:
		return AccessibilityConfig{}, false
	}
}
