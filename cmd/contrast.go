package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/a11y"
	"github.com/uiproof/uiproof/internal/output"
)

// ContrastReport is the output of the contrast command.
type ContrastReport struct {
	Foreground string  `yaml:"foreground" json:"foreground"`
	Background string  `yaml:"background" json:"background"`
	Ratio      string  `yaml:"ratio"      json:"ratio"`
	Minimum    float64 `yaml:"minimum"    json:"minimum"`
	Pass       bool    `yaml:"pass"       json:"pass"`
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check the WCAG contrast ratio of a color pair",
	Long: `Compute the WCAG contrast ratio between two hex colors (e.g. "#1565C0"
"#FFFFFF") and check it against the applicable minimum: 4.5:1 for normal
text, 3.0:1 for large text and non-text elements.`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	rootCmd.AddCommand(contrastCmd)
	contrastCmd.Flags().Bool("large", false, "Apply the large-text minimum (3.0:1)")
	contrastCmd.Flags().Float64("min", 0, "Explicit minimum ratio (overrides --large)")
	contrastCmd.AddCommand(contrastAuditCmd)
	contrastAuditCmd.Flags().String("palette", "", "Palette YAML file, role name to hex color (required)")
	contrastAuditCmd.MarkFlagRequired("palette")
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := a11y.ParseHex(args[0])
	if err != nil {
		return err
	}
	bg, err := a11y.ParseHex(args[1])
	if err != nil {
		return err
	}

	large, _ := cmd.Flags().GetBool("large")
	min, _ := cmd.Flags().GetFloat64("min")
	if min <= 0 {
		min = a11y.NormalTextRatio
		if large {
			min = a11y.LargeTextRatio
		}
	}

	ratio := a11y.ContrastRatio(fg, bg)
	report := ContrastReport{
		Foreground: fg.String(),
		Background: bg.String(),
		Ratio:      a11y.FormatRatio(ratio),
		Minimum:    min,
		Pass:       ratio >= min,
	}
	if err := output.Print(report); err != nil {
		return err
	}
	if !report.Pass {
		return fmt.Errorf("contrast %s is below the %.1f:1 minimum", report.Ratio, min)
	}
	return nil
}

// PaletteAuditReport is the output of the contrast audit command.
type PaletteAuditReport struct {
	Palette string            `yaml:"palette" json:"palette"`
	Pass    bool              `yaml:"pass"    json:"pass"`
	Pairs   []a11y.PairResult `yaml:"pairs"   json:"pairs"`
}

var contrastAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a theme palette's standard color pairings",
	Long: `Check every standard foreground/background pairing in a theme palette:
"on" colors against their surfaces at 4.5:1 and indicator colors against
the background at 3.0:1. Pairings whose roles are absent from the palette
are skipped.`,
	RunE: runContrastAudit,
}

func runContrastAudit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("palette")
	palette, err := a11y.LoadPalette(path)
	if err != nil {
		return err
	}

	pairs, err := a11y.AuditPalette(palette, a11y.DefaultPairChecks())
	if err != nil {
		return err
	}

	report := PaletteAuditReport{Palette: path, Pass: true, Pairs: pairs}
	for _, p := range pairs {
		if !p.Pass {
			report.Pass = false
		}
	}
	if err := output.Print(report); err != nil {
		return err
	}
	if !report.Pass {
		return fmt.Errorf("palette %s has failing contrast pairings", path)
	}
	return nil
}
