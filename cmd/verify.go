package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/a11y"
	"github.com/uiproof/uiproof/internal/output"
	"github.com/uiproof/uiproof/internal/semantic"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <tree.yaml>",
	Short: "Verify a semantic tree against an accessibility policy",
	Long: `Walk a captured semantic tree and report every accessibility violation:
undersized touch targets, undersized buttons, and actionable elements
missing a content description. Exits non-zero when the tree is not
compliant.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	addPolicyFlags(verifyCmd)
	verifyCmd.Flags().String("subject", "", "Subject name for the report (default: tree file path)")
	verifyCmd.Flags().Float64("px-per-dp", 1.0, "Pixels per density-independent unit in the tree's bounds")
	verifyCmd.Flags().Bool("warnings-fail", false, "Treat WARNING violations as failures too")
}

func runVerify(cmd *cobra.Command, args []string) error {
	tree, err := semantic.LoadTree(args[0])
	if err != nil {
		return err
	}
	policy, err := policyFromFlags(cmd)
	if err != nil {
		return err
	}

	subject, _ := cmd.Flags().GetString("subject")
	if subject == "" {
		subject = args[0]
	}
	pxPerDp, _ := cmd.Flags().GetFloat64("px-per-dp")
	warningsFail, _ := cmd.Flags().GetBool("warnings-fail")

	verifier := a11y.NewVerifier(policy)
	if pxPerDp > 0 {
		verifier.PxPerDp = pxPerDp
	}

	result := verifier.Verify(subject, tree)
	if err := output.Print(result); err != nil {
		return err
	}

	if len(result.Errors()) > 0 || (warningsFail && len(result.Warnings()) > 0) {
		return fmt.Errorf("%s is not accessibility compliant (%d violations)",
			subject, len(result.Violations))
	}
	return nil
}
