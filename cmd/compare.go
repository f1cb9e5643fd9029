package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/imagediff"
	"github.com/uiproof/uiproof/internal/output"
)

// CompareReport is the output of the compare command.
type CompareReport struct {
	Match       bool    `yaml:"match"              json:"match"`
	DiffRatio   float64 `yaml:"diff_ratio"         json:"diff_ratio"`
	RegionCount int     `yaml:"regions"            json:"regions"`
	Message     string  `yaml:"message,omitempty"  json:"message,omitempty"`
	DiffImage   string  `yaml:"diff_image,omitempty" json:"diff_image,omitempty"`
}

var compareCmd = &cobra.Command{
	Use:   "compare <actual.png> <expected.png>",
	Short: "Compare two rasters pixel by pixel",
	Long: `Compare two PNG images and report the difference ratio and differing
regions. Exits non-zero when the images do not match within the threshold.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64("threshold", imagediff.DefaultThreshold, "Maximum matching difference ratio")
	compareCmd.Flags().Int("pixel-tolerance", imagediff.DefaultPixelTolerance, "Per-channel delta (0-255) before a pixel differs")
	compareCmd.Flags().String("diff-out", "", "Write an annotated diff visualization to this path")
}

func runCompare(cmd *cobra.Command, args []string) error {
	actual, err := loadPNG(args[0])
	if err != nil {
		return err
	}
	expected, err := loadPNG(args[1])
	if err != nil {
		return err
	}

	opts, err := diffOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	result := imagediff.Compare(actual, expected, opts)
	report := CompareReport{
		Match:       result.Match,
		DiffRatio:   result.DiffRatio,
		RegionCount: result.RegionCount(),
		Message:     result.Message,
	}

	if diffOut, _ := cmd.Flags().GetString("diff-out"); diffOut != "" {
		diff := imagediff.DiffImage(actual, expected, opts.PixelTolerance)
		imagediff.Annotate(diff, result.DiffRegions)
		if err := savePNG(diffOut, diff); err != nil {
			return err
		}
		report.DiffImage = diffOut
	}

	if err := output.Print(report); err != nil {
		return err
	}
	if !result.Match {
		return fmt.Errorf("images do not match (ratio %.4f)", result.DiffRatio)
	}
	return nil
}

// diffOptionsFromFlags builds comparison options from the shared flags.
func diffOptionsFromFlags(cmd *cobra.Command) (imagediff.Options, error) {
	opts := imagediff.DefaultOptions()
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold < 0 || threshold > 1 {
		return opts, fmt.Errorf("threshold must be in [0,1], got %v", threshold)
	}
	opts.Threshold = threshold

	tolerance, _ := cmd.Flags().GetInt("pixel-tolerance")
	if tolerance < 0 || tolerance > 255 {
		return opts, fmt.Errorf("pixel-tolerance must be in [0,255], got %d", tolerance)
	}
	opts.PixelTolerance = uint8(tolerance)
	return opts, nil
}
