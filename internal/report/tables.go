// internal/report/tables.go
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/tokenlens/internal/analysis"
	"github.com/mwiater/tokenlens/internal/util"
)

const maxModelWidth = 40

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// printTables renders the four summary tables to out.
func printTables(out io.Writer, doc analysis.Document) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, headingStyle.Render("=== Linear model summary: prompt_tokens ≈ a + b * chars ==="))
	fmt.Fprintln(out, summaryTable(doc.Summaries))

	fmt.Fprintln(out)
	fmt.Fprintln(out, headingStyle.Render("=== Paired EN vs TR (TR − EN) ==="))
	fmt.Fprintln(out, pairedENTRTable(doc.PairedENTR))

	fmt.Fprintln(out)
	fmt.Fprintln(out, headingStyle.Render("=== Paired TR_NODIA vs TR (TR_NODIA − TR) ==="))
	fmt.Fprintln(out, pairedNoDiaTable(doc.PairedNoDia))

	fmt.Fprintln(out)
	fmt.Fprintln(out, headingStyle.Render("=== Cost stats (mean cost per sentence, TR / EN ratio) ==="))
	fmt.Fprintln(out, costTable(doc.Costs))
}

func summaryTable(summaries []analysis.VariantSummary) string {
	t := newTable("model", "variant", "n", "mean_chars", "mean_prompt_tokens", "intercept", "slope", "r2")
	for _, s := range summaries {
		t.Row(
			util.TruncateRunes(s.Model, maxModelWidth),
			string(s.Variant),
			strconv.Itoa(s.N),
			fmtFloat(s.MeanChars, 4),
			fmtFloat(s.MeanPromptTokens, 4),
			fmtFloat(s.Intercept, 4),
			fmtFloat(s.Slope, 4),
			fmtFloat(s.R2, 4),
		)
	}
	return t.Render()
}

func pairedENTRTable(rows []analysis.ENvsTR) string {
	t := newTable("model", "n_pairs",
		"mean_Δtpc", "sd_Δtpc", "ci_low_tpc", "ci_high_tpc",
		"mean_Δpt", "sd_Δpt", "ci_low_pt", "ci_high_pt")
	for _, r := range rows {
		t.Row(
			util.TruncateRunes(r.Model, maxModelWidth),
			strconv.Itoa(r.NPairs),
			fmtFloat(r.TokensPerChar.Mean, 4),
			fmtFloat(r.TokensPerChar.StdDev, 4),
			fmtFloat(r.TokensPerChar.CILow, 4),
			fmtFloat(r.TokensPerChar.CIHigh, 4),
			fmtFloat(r.PromptTokens.Mean, 4),
			fmtFloat(r.PromptTokens.StdDev, 4),
			fmtFloat(r.PromptTokens.CILow, 4),
			fmtFloat(r.PromptTokens.CIHigh, 4),
		)
	}
	return t.Render()
}

func pairedNoDiaTable(rows []analysis.NoDiaVsTR) string {
	t := newTable("model", "n_pairs", "mean_Δtpc", "sd_Δtpc", "ci_low", "ci_high")
	for _, r := range rows {
		t.Row(
			util.TruncateRunes(r.Model, maxModelWidth),
			strconv.Itoa(r.NPairs),
			fmtFloat(r.TokensPerChar.Mean, 4),
			fmtFloat(r.TokensPerChar.StdDev, 4),
			fmtFloat(r.TokensPerChar.CILow, 4),
			fmtFloat(r.TokensPerChar.CIHigh, 4),
		)
	}
	return t.Render()
}

func costTable(rows []analysis.CostStats) string {
	t := newTable("model", "mean_cost_en", "mean_cost_tr", "tr_over_en_ratio")
	for _, r := range rows {
		ratio := "undefined"
		if r.Ratio != nil {
			ratio = fmtFloat(*r.Ratio, 6)
		}
		t.Row(
			util.TruncateRunes(r.Model, maxModelWidth),
			fmtFloat(r.MeanCostEN, 6),
			fmtFloat(r.MeanCostTR, 6),
			ratio,
		)
	}
	return t.Render()
}

// newTable builds a bordered table with the shared header styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// fmtFloat formats an analysis value to a fixed precision, spelling out
// NaN so the tables show missing cells where the exported JSON has null.
func fmtFloat(v analysis.Float, prec int) string {
	if math.IsNaN(float64(v)) {
		return "NaN"
	}
	return strconv.FormatFloat(float64(v), 'f', prec, 64)
}
