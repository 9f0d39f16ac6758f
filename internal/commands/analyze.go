// internal/commands/analyze.go
package tokenlens

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/tokenlens/internal/report"
)

// analyzeCmd runs the full pipeline: load + clean the measurements CSV,
// compute the statistics, render figures, and print the summary tables.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [csvPath]",
	Short: "Compute token-efficiency statistics and render figures",
	Long: `Load a per-sentence measurements CSV, reconstruct rows whose free-text
column contains embedded commas, compute linear fits, paired EN/TR and
TR_NODIA/TR differences and cost ratios, render the four summary figures,
and print the result tables.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(args)
		if err != nil {
			return err
		}

		color.Cyan("[INFO] Loading data from: %s", opts.CSVPath)
		if err := report.Run(opts, cmd.OutOrStdout()); err != nil {
			color.Red("[ERROR] %v", err)
			return err
		}
		return nil
	},
	SilenceErrors: true,
}

// resolveOptions merges the positional CSV path with the loaded config and
// verifies the input file exists before any stage runs.
func resolveOptions(args []string) (report.Options, error) {
	cfg := GetConfig()

	csvPath := cfg.DataPath()
	if len(args) > 0 {
		csvPath = args[0]
	}

	if _, err := os.Stat(csvPath); err != nil {
		if os.IsNotExist(err) {
			return report.Options{}, fmt.Errorf("CSV file not found: %s (pass a CSV path as an argument or set csvPath in %s)", csvPath, cfg.ConfigPath)
		}
		return report.Options{}, fmt.Errorf("could not stat CSV file %s: %w", csvPath, err)
	}

	return report.Options{
		CSVPath:      csvPath,
		FiguresDir:   cfg.FiguresDirectory(),
		AnalysisPath: cfg.AnalysisPath,
		JSONMode:     cfg.JSONMode,
	}, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
