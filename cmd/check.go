package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/capture"
	"github.com/uiproof/uiproof/internal/engine"
	"github.com/uiproof/uiproof/internal/golden"
	"github.com/uiproof/uiproof/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <capture.png>",
	Short: "Check a capture against its stored golden",
	Long: `Compare a capture against the golden artifact for the given test name
and configuration. When no golden exists the capture is recorded as the new
golden (record mode); pass --strict to fail instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addConfigFlags(checkCmd)
	checkCmd.Flags().String("test", "", "Logical test name keying the golden (required)")
	checkCmd.Flags().String("golden-dir", "goldens", "Root directory of the golden store")
	checkCmd.Flags().Bool("strict", false, "Fail when the golden is missing instead of recording")
	checkCmd.Flags().Bool("update", false, "Overwrite the golden with the current capture")
	checkCmd.Flags().Bool("save-diff", true, "Write an annotated diff artifact on failure")
	checkCmd.Flags().Float64("threshold", 0.01, "Maximum matching difference ratio")
	checkCmd.Flags().Int("pixel-tolerance", 0, "Per-channel delta (0-255) before a pixel differs")
	checkCmd.MarkFlagRequired("test")
}

func runCheck(cmd *cobra.Command, args []string) error {
	testName, _ := cmd.Flags().GetString("test")
	goldenDir, _ := cmd.Flags().GetString("golden-dir")
	strict, _ := cmd.Flags().GetBool("strict")
	update, _ := cmd.Flags().GetBool("update")
	saveDiff, _ := cmd.Flags().GetBool("save-diff")

	cfg, err := captureConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	opts, err := diffOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	store := golden.NewStore(goldenDir)
	renderer := &capture.FixtureRenderer{ImagePath: args[0]}

	if update {
		img, err := capture.NewService(renderer).CaptureImage(nil, cfg)
		if err != nil {
			return err
		}
		if err := store.Save(testName, img, cfg); err != nil {
			return err
		}
		return output.Print(map[string]string{
			"updated": store.Path(testName, cfg),
		})
	}

	e := engine.New(store, capture.NewService(renderer))
	e.Diff = opts
	e.SaveFailureDiffs = saveDiff
	if strict {
		e.Mode = engine.ModeStrict
	}

	outcome, err := e.CompareScreenshot(testName, cfg, nil)
	if err != nil {
		return err
	}
	if err := output.Print(outcome); err != nil {
		return err
	}
	if !outcome.OK {
		return fmt.Errorf("capture does not match golden %s", store.Path(testName, cfg))
	}
	return nil
}
