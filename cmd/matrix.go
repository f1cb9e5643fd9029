package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/matrix"
	"github.com/uiproof/uiproof/internal/output"
)

// MatrixEntry is one generated case in the matrix command's output.
type MatrixEntry struct {
	Name   string `yaml:"name"             json:"name"`
	Device string `yaml:"device"           json:"device"`
	Theme  string `yaml:"theme"            json:"theme"`
	Policy string `yaml:"policy,omitempty" json:"policy,omitempty"`
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Generate the test matrix for a suite",
	Long: `Print the device/theme combinations a suite runs against, with their
deterministic test names. Sweeps narrow the matrix to a single axis:

  full       device x theme cross product (default)
  a11y       one device, every accessibility preset
  font       one device, every font scale
  contrast   one device, high-contrast off and on`,
	RunE: runMatrix,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	addConfigFlags(matrixCmd)
	matrixCmd.Flags().String("base", "screen", "Base test name")
	matrixCmd.Flags().String("sweep", "full", "Matrix kind: full, a11y, font, contrast")
}

func runMatrix(cmd *cobra.Command, args []string) error {
	base, _ := cmd.Flags().GetString("base")
	sweep, _ := cmd.Flags().GetString("sweep")
	cfg, err := captureConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	var cases []matrix.Case
	switch sweep {
	case "full":
		cases = matrix.Full(base, matrix.DefaultDevices(), matrix.DefaultThemes())
	case "a11y":
		cases = matrix.AccessibilitySweep(base, cfg.Device, cfg.Theme)
	case "font":
		cases = matrix.FontScaleSweep(base, cfg.Device, cfg.Theme.DarkMode)
	case "contrast":
		cases = matrix.HighContrastSweep(base, cfg.Device, cfg.Theme.DarkMode)
	default:
		return fmt.Errorf("unknown sweep: %q (use full, a11y, font, or contrast)", sweep)
	}

	entries := make([]MatrixEntry, 0, len(cases))
	for _, c := range cases {
		entry := MatrixEntry{
			Name:   c.Name,
			Device: c.Config.Device.Token(),
			Theme:  c.Config.Theme.Token(),
		}
		if c.Accessibility != nil {
			entry.Policy = config.PresetToken(*c.Accessibility)
		}
		entries = append(entries, entry)
	}
	return output.Print(entries)
}
