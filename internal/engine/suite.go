package engine

import (
	"github.com/google/uuid"
	"github.com/uiproof/uiproof/internal/capture"
	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/matrix"
)

// CaseOutcome is one matrix entry's result within a suite run.
type CaseOutcome struct {
	Name    string            `yaml:"name"            json:"name"`
	Outcome ComparisonOutcome `yaml:"outcome"         json:"outcome"`
	Error   string            `yaml:"error,omitempty" json:"error,omitempty"`
}

// SuiteResult aggregates one suite run over a generated matrix.
type SuiteResult struct {
	RunID  string        `yaml:"run_id" json:"run_id"`
	Base   string        `yaml:"base"   json:"base"`
	Passed int           `yaml:"passed" json:"passed"`
	Failed int           `yaml:"failed" json:"failed"`
	Cases  []CaseOutcome `yaml:"cases"  json:"cases"`
}

// OK reports whether every case passed.
func (s SuiteResult) OK() bool { return s.Failed == 0 }

// RunSuite compares the surface against the golden for every device/theme
// combination in the matrix, sequentially. Capture or storage errors fail
// the individual case and the run continues; each generated name maps to a
// distinct artifact path, so the run never contends with itself.
func (e *Engine) RunSuite(base string, surface capture.Renderable, devices []config.DeviceConfig, themes []config.ThemeConfig) SuiteResult {
	result := SuiteResult{
		RunID: uuid.NewString(),
		Base:  base,
	}

	for _, c := range matrix.Full(base, devices, themes) {
		outcome, err := e.CompareScreenshot(c.Name, c.Config, surface)
		co := CaseOutcome{Name: c.Name, Outcome: outcome}
		if err != nil {
			co.Error = err.Error()
		}
		if err == nil && outcome.OK {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, co)
	}
	return result
}
