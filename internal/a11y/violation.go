// Package a11y evaluates semantic trees and color pairs against
// WCAG-derived accessibility rules.
package a11y

// Kind identifies one rule in the closed violation set.
type Kind string

const (
	KindContrastTooLow      Kind = "contrast-too-low"
	KindTouchTargetTooSmall Kind = "touch-target-too-small"
	KindButtonTooSmall      Kind = "button-too-small"
	KindMissingDescription  Kind = "missing-description"
)

// Severity ranks how blocking a violation is.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Violation is one detected rule breach.
type Violation struct {
	Kind        Kind     `yaml:"kind"               json:"kind"`
	Description string   `yaml:"description"        json:"description"`
	Actual      string   `yaml:"actual,omitempty"   json:"actual,omitempty"`
	Expected    string   `yaml:"expected,omitempty" json:"expected,omitempty"`
	Severity    Severity `yaml:"severity"           json:"severity"`
	Path        string   `yaml:"path,omitempty"     json:"path,omitempty"`
}

// Result is the outcome of verifying one subject (a screen or a tree).
// Invariant: Compliant == len(Violations) == 0.
type Result struct {
	Subject    string      `yaml:"subject"              json:"subject"`
	Compliant  bool        `yaml:"compliant"            json:"compliant"`
	Violations []Violation `yaml:"violations,omitempty" json:"violations,omitempty"`
}

// Errors returns only the ERROR-severity violations.
func (r Result) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns only the WARNING-severity violations.
func (r Result) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			out = append(out, v)
		}
	}
	return out
}
