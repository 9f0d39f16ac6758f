// internal/commands/figures.go
package tokenlens

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/tokenlens/internal/report"
)

// figuresCmd renders only the four figures, skipping tables and exports.
var figuresCmd = &cobra.Command{
	Use:   "figures [csvPath]",
	Short: "Render the four summary figures without printing tables",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(args)
		if err != nil {
			return err
		}
		opts.FiguresOnly = true

		color.Cyan("[INFO] Rendering figures from: %s", opts.CSVPath)
		if err := report.Run(opts, cmd.OutOrStdout()); err != nil {
			color.Red("[ERROR] %v", err)
			return err
		}
		return nil
	},
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(figuresCmd)
}
