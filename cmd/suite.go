package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/capture"
	"github.com/uiproof/uiproof/internal/engine"
	"github.com/uiproof/uiproof/internal/golden"
	"github.com/uiproof/uiproof/internal/matrix"
	"github.com/uiproof/uiproof/internal/output"
)

var suiteCmd = &cobra.Command{
	Use:   "suite <capture.png>",
	Short: "Run a capture through the full device/theme matrix",
	Long: `Compare one capture against the golden for every device/theme
combination in the default matrix. Missing goldens are recorded on the
first run unless --strict is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)
	suiteCmd.Flags().String("base", "", "Base test name for generated cases (required)")
	suiteCmd.Flags().String("golden-dir", "goldens", "Root directory of the golden store")
	suiteCmd.Flags().Bool("strict", false, "Fail cases with missing goldens instead of recording")
	suiteCmd.Flags().Bool("save-diff", true, "Write annotated diff artifacts on failures")
	suiteCmd.MarkFlagRequired("base")
}

func runSuite(cmd *cobra.Command, args []string) error {
	base, _ := cmd.Flags().GetString("base")
	goldenDir, _ := cmd.Flags().GetString("golden-dir")
	strict, _ := cmd.Flags().GetBool("strict")
	saveDiff, _ := cmd.Flags().GetBool("save-diff")

	renderer := &capture.FixtureRenderer{ImagePath: args[0]}
	e := engine.New(golden.NewStore(goldenDir), capture.NewService(renderer))
	e.SaveFailureDiffs = saveDiff
	if strict {
		e.Mode = engine.ModeStrict
	}

	result := e.RunSuite(base, nil, matrix.DefaultDevices(), matrix.DefaultThemes())
	if err := output.Print(result); err != nil {
		return err
	}
	if !result.OK() {
		return fmt.Errorf("suite failed: %d of %d cases", result.Failed, result.Failed+result.Passed)
	}
	return nil
}
