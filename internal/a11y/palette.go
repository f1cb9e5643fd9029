package a11y

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Palette is a named set of theme colors, role name to hex value.
type Palette map[string]string

// LoadPalette reads a palette from a YAML file of the form:
//
//	primary: "#1565C0"
//	background: "#FFFFFF"
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal palette %s: %w", path, err)
	}
	return p, nil
}

// PairCheck describes one foreground/background pairing a theme must honor,
// with its minimum ratio (4.5 for text, 3.0 for non-text elements).
type PairCheck struct {
	Foreground string  `yaml:"foreground" json:"foreground"`
	Background string  `yaml:"background" json:"background"`
	MinRatio   float64 `yaml:"min_ratio"  json:"min_ratio"`
	Label      string  `yaml:"label"      json:"label"`
}

// PairResult is the outcome of auditing one pairing.
type PairResult struct {
	Label    string  `yaml:"label"    json:"label"`
	Ratio    float64 `yaml:"ratio"    json:"ratio"`
	MinRatio float64 `yaml:"min"      json:"min"`
	Pass     bool    `yaml:"pass"     json:"pass"`
}

// DefaultPairChecks returns the standard role pairings audited against a
// theme palette: every "on X" color against X, accent colors against the
// background at text level, and indicator colors at non-text level.
func DefaultPairChecks() []PairCheck {
	return []PairCheck{
		{"primary", "background", NormalTextRatio, "Primary on Background"},
		{"on_primary", "primary", NormalTextRatio, "OnPrimary on Primary"},
		{"secondary", "background", NormalTextRatio, "Secondary on Background"},
		{"on_secondary", "secondary", NormalTextRatio, "OnSecondary on Secondary"},
		{"on_background", "background", NormalTextRatio, "OnBackground on Background"},
		{"on_surface", "surface", NormalTextRatio, "OnSurface on Surface"},
		{"error", "background", NormalTextRatio, "Error on Background"},
		{"on_error", "error", NormalTextRatio, "OnError on Error"},
		{"focus_indicator", "background", LargeTextRatio, "Focus Indicator vs Background"},
		{"divider", "background", LargeTextRatio, "Divider vs Background"},
		{"disabled", "background", NormalTextRatio, "Disabled Text vs Background"},
	}
}

// AuditPalette evaluates every requested pairing whose colors exist in the
// palette. Missing roles are skipped, not failed; a malformed hex value is
// an error. Results come back sorted by label for stable output.
func AuditPalette(p Palette, checks []PairCheck) ([]PairResult, error) {
	var results []PairResult
	for _, check := range checks {
		fgHex, ok := p[check.Foreground]
		if !ok {
			continue
		}
		bgHex, ok := p[check.Background]
		if !ok {
			continue
		}
		fg, err := ParseHex(fgHex)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", check.Foreground, err)
		}
		bg, err := ParseHex(bgHex)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", check.Background, err)
		}
		ratio := ContrastRatio(fg, bg)
		results = append(results, PairResult{
			Label:    check.Label,
			Ratio:    ratio,
			MinRatio: check.MinRatio,
			Pass:     ratio >= check.MinRatio,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Label < results[j].Label })
	return results, nil
}
