// Package engine orchestrates capture, golden comparison, and accessibility
// verification into the two checks a test runner calls. All operations are
// synchronous and run on the caller's goroutine; parallel callers are safe
// as long as they target distinct artifact paths.
package engine

import (
	"fmt"

	"github.com/uiproof/uiproof/internal/a11y"
	"github.com/uiproof/uiproof/internal/capture"
	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/golden"
	"github.com/uiproof/uiproof/internal/imagediff"
)

// Mode selects how a missing golden is handled.
type Mode int

const (
	// ModeRecord saves the current capture as the new golden and reports
	// success when no golden exists yet.
	ModeRecord Mode = iota
	// ModeStrict treats a missing golden as a failure.
	ModeStrict
)

// Engine ties the store, capture service, and comparator together.
type Engine struct {
	Store   *golden.Store
	Capture *capture.Service
	Diff    imagediff.Options
	Mode    Mode
	// SaveFailureDiffs writes an annotated diff artifact next to the golden
	// whenever a comparison fails.
	SaveFailureDiffs bool
}

// New returns an engine in record mode with default comparison options.
func New(store *golden.Store, svc *capture.Service) *Engine {
	return &Engine{
		Store:   store,
		Capture: svc,
		Diff:    imagediff.DefaultOptions(),
	}
}

// ComparisonOutcome is the orchestrator's screenshot-check result.
type ComparisonOutcome struct {
	OK            bool             `yaml:"ok"                       json:"ok"`
	TestName      string           `yaml:"test"                     json:"test"`
	GoldenCreated bool             `yaml:"golden_created,omitempty" json:"golden_created,omitempty"`
	Comparison    imagediff.Result `yaml:"comparison"               json:"comparison"`
}

// CompareScreenshot captures the surface and compares it against the stored
// golden. With no golden present, record mode saves the capture and
// succeeds; strict mode fails with golden.ErrNotFound.
func (e *Engine) CompareScreenshot(testName string, cfg config.CaptureConfig, surface capture.Renderable) (ComparisonOutcome, error) {
	outcome := ComparisonOutcome{TestName: testName}

	img, err := e.Capture.CaptureImage(surface, cfg)
	if err != nil {
		return outcome, err
	}

	if !e.Store.Exists(testName, cfg) {
		if e.Mode == ModeStrict {
			return outcome, fmt.Errorf("%w: %s (strict mode, not recording)", golden.ErrNotFound, e.Store.Path(testName, cfg))
		}
		if err := e.Store.Save(testName, img, cfg); err != nil {
			return outcome, fmt.Errorf("record golden: %w", err)
		}
		outcome.OK = true
		outcome.GoldenCreated = true
		outcome.Comparison = imagediff.Result{Match: true, Message: "golden recorded"}
		return outcome, nil
	}

	expected, err := e.Store.Load(testName, cfg)
	if err != nil {
		// Exists may race with an external delete; surface the load error
		// unchanged so callers still see golden.ErrNotFound.
		return outcome, err
	}

	outcome.Comparison = imagediff.Compare(img, expected, e.Diff)
	outcome.OK = outcome.Comparison.Match

	if !outcome.OK && e.SaveFailureDiffs {
		diff := imagediff.DiffImage(img, expected, e.Diff.PixelTolerance)
		imagediff.Annotate(diff, outcome.Comparison.DiffRegions)
		if err := e.Store.SaveDiff(testName, diff, cfg); err != nil {
			return outcome, fmt.Errorf("save failure diff: %w", err)
		}
	}
	return outcome, nil
}

// VerificationOutcome is the orchestrator's accessibility-check result.
type VerificationOutcome struct {
	OK     bool        `yaml:"ok"     json:"ok"`
	Result a11y.Result `yaml:"result" json:"result"`
}

// VerifyAccessibility captures the surface's semantic tree and verifies it
// against the policy. Node bounds are interpreted at the device's pixel
// density. Independent of CompareScreenshot; either check runs alone.
func (e *Engine) VerifyAccessibility(testName string, cfg config.CaptureConfig, policy config.AccessibilityConfig, surface capture.Renderable) (VerificationOutcome, error) {
	var outcome VerificationOutcome

	tree, err := e.Capture.CaptureTree(surface, cfg)
	if err != nil {
		return outcome, err
	}

	verifier := a11y.NewVerifier(policy)
	verifier.PxPerDp = cfg.Device.Density.PxPerDp()

	outcome.Result = verifier.Verify(testName, tree)
	outcome.OK = outcome.Result.Compliant
	return outcome, nil
}
