package a11y

import (
	"fmt"

	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/semantic"
)

// Verifier applies an accessibility policy to semantic trees and color
// pairs. PxPerDp converts node bounds (pixels) to density-independent units
// before size checks; zero means 1:1.
type Verifier struct {
	Policy  config.AccessibilityConfig
	PxPerDp float64
}

// NewVerifier returns a verifier for the given policy at 1:1 pixel density.
func NewVerifier(policy config.AccessibilityConfig) *Verifier {
	return &Verifier{Policy: policy, PxPerDp: 1.0}
}

// Verify walks the tree in pre-order and applies every enabled rule to each
// node. Traversal order only affects the reporting order of violations.
func (v *Verifier) Verify(subject string, root *semantic.Node) Result {
	result := Result{Subject: subject}
	for _, flat := range semantic.Flatten(root) {
		result.Violations = append(result.Violations, v.checkNode(flat)...)
	}
	result.Compliant = len(result.Violations) == 0
	return result
}

// checkNode applies the per-node rules to one flattened node.
func (v *Verifier) checkNode(n semantic.FlatNode) []Violation {
	var out []Violation

	actionable := n.Clickable || isInteractiveRole(n.Role)
	if !actionable {
		return out
	}

	if v.Policy.CheckTargetSizes {
		out = append(out, v.checkTargetSize(n)...)
	}

	// Font-size enforcement is reserved: the semantic tree carries no font
	// metrics yet, so no rule fires here.

	if n.Text == "" && n.Description == "" {
		out = append(out, Violation{
			Kind:        KindMissingDescription,
			Description: fmt.Sprintf("actionable %s has no text and no content description", n.Role),
			Severity:    SeverityWarning,
			Path:        n.Path,
		})
	}

	return out
}

// checkTargetSize compares an actionable node's dp dimensions against both
// the minimum button size and the minimum touch-target size. Each failing
// check emits its own violation.
func (v *Verifier) checkTargetSize(n semantic.FlatNode) []Violation {
	scale := v.PxPerDp
	if scale <= 0 {
		scale = 1.0
	}
	wDp := int(float64(n.Bounds.Width()) / scale)
	hDp := int(float64(n.Bounds.Height()) / scale)
	actual := fmt.Sprintf("%ddp x %ddp", wDp, hDp)

	var out []Violation
	if min := v.Policy.MinButtonSize; wDp < min || hDp < min {
		out = append(out, Violation{
			Kind:        KindButtonTooSmall,
			Description: fmt.Sprintf("actionable %s is smaller than the minimum button size", n.Role),
			Actual:      actual,
			Expected:    fmt.Sprintf("%ddp x %ddp", min, min),
			Severity:    SeverityError,
			Path:        n.Path,
		})
	}
	if min := v.Policy.MinTouchTargetSize; wDp < min || hDp < min {
		out = append(out, Violation{
			Kind:        KindTouchTargetTooSmall,
			Description: fmt.Sprintf("actionable %s has a touch target below the minimum", n.Role),
			Actual:      actual,
			Expected:    fmt.Sprintf("%ddp x %ddp", min, min),
			Severity:    SeverityError,
			Path:        n.Path,
		})
	}
	return out
}

// VerifyContrast checks a foreground/background pair against the policy's
// minimum text contrast. It operates on rasterized colors, not the semantic
// tree, so it is invoked separately from Verify. Returns nil when the pair
// complies or the check is disabled.
func (v *Verifier) VerifyContrast(fg, bg RGB) *Violation {
	if !v.Policy.CheckContrast {
		return nil
	}
	ratio := ContrastRatio(fg, bg)
	if ratio >= v.Policy.MinTextContrast {
		return nil
	}
	return &Violation{
		Kind: KindContrastTooLow,
		Description: fmt.Sprintf("contrast between %s and %s is below the minimum",
			fg, bg),
		Actual:   FormatRatio(ratio),
		Expected: FormatRatio(v.Policy.MinTextContrast),
		Severity: SeverityError,
	}
}

// isInteractiveRole mirrors the semantic package's actionable-role set for
// flattened nodes.
func isInteractiveRole(role string) bool {
	n := semantic.Node{Role: role}
	return n.Actionable()
}
