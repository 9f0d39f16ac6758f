// internal/report/report.go
// Package report drives the analysis pipeline end to end and renders its
// results: styled tables or JSON on the output writer, an optional
// analysis JSON file, and the four figures.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mwiater/tokenlens/internal/analysis"
	"github.com/mwiater/tokenlens/internal/dataset"
	"github.com/mwiater/tokenlens/internal/figures"
	"github.com/mwiater/tokenlens/internal/logging"
	"github.com/mwiater/tokenlens/internal/util"
)

// Options captures the inputs for one pipeline run.
type Options struct {
	CSVPath      string
	FiguresDir   string
	AnalysisPath string
	JSONMode     bool
	FiguresOnly  bool
}

// Run loads the CSV, computes the analysis document, renders figures, and
// writes the textual summary to out. With FiguresOnly set, only the
// figures are produced.
func Run(opts Options, out io.Writer) error {
	logging.LogStage("load", "Loading data from %s", opts.CSVPath)
	ds, err := dataset.Load(opts.CSVPath)
	if err != nil {
		return err
	}

	logging.LogStage("aggregate", "Computing linear model summaries")
	doc := analysis.Build(ds)

	logging.LogStage("render", "Generating figures")
	figPaths, err := figures.Render(ds, opts.FiguresDir)
	if err != nil {
		return err
	}

	if opts.FiguresOnly {
		printFigurePaths(out, figPaths)
		return nil
	}

	if opts.AnalysisPath != "" {
		if err := writeAnalysisJSON(opts.AnalysisPath, doc); err != nil {
			return err
		}
		fmt.Fprintf(out, "Analysis JSON written to %s\n", opts.AnalysisPath)
	}

	if opts.JSONMode {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("unable to marshal analysis JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		printFigurePaths(out, figPaths)
		return nil
	}

	printTables(out, doc)
	printFigurePaths(out, figPaths)
	return nil
}

// writeAnalysisJSON persists the analysis document, creating parent
// directories as needed.
func writeAnalysisJSON(path string, doc analysis.Document) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}

	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}

// printFigurePaths lists where the figures were written.
func printFigurePaths(out io.Writer, paths figures.Paths) {
	fmt.Fprintln(out, "\n=== Figures saved ===")
	fmt.Fprintf(out, "fig1: %s\n", paths.Scatter)
	fmt.Fprintf(out, "fig2: %s\n", paths.TokensPerChar)
	fmt.Fprintf(out, "fig3: %s\n", paths.Cost)
	fmt.Fprintf(out, "fig4: %s\n", paths.Histogram)
}
