package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uiproof/uiproof/internal/output"
	"github.com/uiproof/uiproof/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "uiproof",
	Short: "Visual-regression and accessibility testing for rendered UI surfaces",
	Long: "A testing engine that compares screen captures against golden artifacts " +
		"and verifies semantic trees against WCAG-derived accessibility rules.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, err := rootCmd.PersistentFlags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
