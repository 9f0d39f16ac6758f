// internal/figures/figures.go
// Package figures renders the four summary charts as PNG files. Rendering
// is a pure output side-effect; nothing downstream consumes the images.
package figures

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mwiater/tokenlens/internal/analysis"
	"github.com/mwiater/tokenlens/internal/dataset"
	"github.com/mwiater/tokenlens/internal/logging"
)

// Paths lists the rendered figure files.
type Paths struct {
	Scatter       string `json:"fig1"`
	TokensPerChar string `json:"fig2"`
	Cost          string `json:"fig3"`
	Histogram     string `json:"fig4"`
}

// histogramBins matches the bin count used in the published figures.
const histogramBins = 15

var (
	colorEN    = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorTR    = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	colorNoDia = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

var seriesColors = []color.Color{colorEN, colorTR, colorNoDia}

// Render writes the four figures for the dataset into dir, creating it if
// needed. The scatter and histogram use the reference model, the first
// model in sorted order.
func Render(ds *dataset.Dataset, dir string) (Paths, error) {
	models := ds.Models()
	if len(models) == 0 {
		return Paths{}, fmt.Errorf("cannot render figures: dataset has no observations")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("could not create figures directory %q: %w", dir, err)
	}

	refModel := models[0]
	paths := Paths{
		Scatter:       filepath.Join(dir, "fig1_chars_vs_prompt_tokens.png"),
		TokensPerChar: filepath.Join(dir, "fig2_tokens_per_char_by_variant_and_model.png"),
		Cost:          filepath.Join(dir, "fig3_cost_per_sentence_en_vs_tr.png"),
		Histogram:     filepath.Join(dir, "fig4_hist_delta_tokens_per_char.png"),
	}

	if err := renderScatter(ds, refModel, paths.Scatter); err != nil {
		return Paths{}, err
	}
	if err := renderTokensPerCharBars(ds, models, paths.TokensPerChar); err != nil {
		return Paths{}, err
	}
	if err := renderCostBars(ds, models, paths.Cost); err != nil {
		return Paths{}, err
	}
	if err := renderDeltaHistogram(ds, refModel, paths.Histogram); err != nil {
		return Paths{}, err
	}

	logging.LogStage("render", "Wrote 4 figures to %s", dir)
	return paths, nil
}

// renderScatter draws EN and TR observations for the reference model with
// both regression lines overlaid.
func renderScatter(ds *dataset.Dataset, model, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Prompt tokens vs characters for %s", model)
	p.X.Label.Text = "Characters in input sentence"
	p.Y.Label.Text = "Prompt tokens"
	p.Legend.Top = true
	p.Legend.Left = true

	en := observationPoints(ds.Filter(model, dataset.VariantEN))
	tr := observationPoints(ds.Filter(model, dataset.VariantTR))

	scatterEN, err := plotter.NewScatter(en)
	if err != nil {
		return fmt.Errorf("scatter figure: %w", err)
	}
	scatterEN.GlyphStyle.Color = colorEN
	scatterEN.GlyphStyle.Radius = vg.Points(2.5)

	scatterTR, err := plotter.NewScatter(tr)
	if err != nil {
		return fmt.Errorf("scatter figure: %w", err)
	}
	scatterTR.GlyphStyle.Color = colorTR
	scatterTR.GlyphStyle.Radius = vg.Points(2.5)

	p.Add(scatterEN, scatterTR)
	p.Legend.Add("English", scatterEN)
	p.Legend.Add("Turkish", scatterTR)

	xMin, xMax := charRange(ds)
	fitEN := analysis.FitVariant(ds, model, dataset.VariantEN)
	fitTR := analysis.FitVariant(ds, model, dataset.VariantTR)

	lineEN, err := fitLine(fitEN, xMin, xMax, colorEN)
	if err != nil {
		return fmt.Errorf("scatter figure: %w", err)
	}
	lineTR, err := fitLine(fitTR, xMin, xMax, colorTR)
	if err != nil {
		return fmt.Errorf("scatter figure: %w", err)
	}
	p.Add(lineEN, lineTR)
	p.Legend.Add("EN fit", lineEN)
	p.Legend.Add("TR fit", lineTR)

	return savePlot(p, path)
}

// renderTokensPerCharBars draws mean tokens/char grouped by variant on the
// X axis with one bar series per model.
func renderTokensPerCharBars(ds *dataset.Dataset, models []string, path string) error {
	p := plot.New()
	p.Title.Text = "Tokens per character by language variant and model"
	p.Y.Label.Text = "Mean tokens per character"
	p.Legend.Top = true

	width := groupedBarWidth(len(models))
	for i, model := range models {
		values := make(plotter.Values, 0, len(dataset.Variants))
		for _, variant := range dataset.Variants {
			values = append(values, barValue(meanField(ds.Filter(model, variant),
				func(o dataset.Observation) float64 { return o.TokensPerChar })))
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("tokens-per-char figure: %w", err)
		}
		bars.Color = seriesColors[i%len(seriesColors)]
		bars.Offset = groupedBarOffset(i, len(models), width)
		p.Add(bars)
		p.Legend.Add(model, bars)
	}

	p.NominalX("English", "Turkish", "Turkish (no diacritics)")
	return savePlot(p, path)
}

// renderCostBars draws mean per-sentence cost grouped by model on the X
// axis with EN and TR bar series.
func renderCostBars(ds *dataset.Dataset, models []string, path string) error {
	p := plot.New()
	p.Title.Text = "Mean cost per sentence: English vs Turkish"
	p.Y.Label.Text = "Mean cost per sentence"
	p.Legend.Top = true

	series := []struct {
		variant dataset.Variant
		label   string
		color   color.Color
	}{
		{dataset.VariantEN, "English", colorEN},
		{dataset.VariantTR, "Turkish", colorTR},
	}

	width := groupedBarWidth(len(series))
	for i, s := range series {
		values := make(plotter.Values, 0, len(models))
		for _, model := range models {
			values = append(values, barValue(meanField(ds.Filter(model, s.variant),
				func(o dataset.Observation) float64 { return o.Cost })))
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("cost figure: %w", err)
		}
		bars.Color = s.color
		bars.Offset = groupedBarOffset(i, len(series), width)
		p.Add(bars)
		p.Legend.Add(s.label, bars)
	}

	p.NominalX(models...)
	return savePlot(p, path)
}

// renderDeltaHistogram draws the distribution of per-sentence TR − EN
// tokens/char deltas for the reference model.
func renderDeltaHistogram(ds *dataset.Dataset, model, path string) error {
	deltas := analysis.PairedDeltas(ds, model, dataset.VariantEN, dataset.VariantTR,
		func(o dataset.Observation) float64 { return o.TokensPerChar })
	if len(deltas) == 0 {
		return fmt.Errorf("histogram figure: no paired EN/TR observations for %s", model)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of per-sentence Δ tokens/char for %s", model)
	p.X.Label.Text = "Δ tokens per character (TR − EN)"
	p.Y.Label.Text = "Number of sentences"

	hist, err := plotter.NewHist(plotter.Values(deltas), histogramBins)
	if err != nil {
		return fmt.Errorf("histogram figure: %w", err)
	}
	hist.FillColor = colorEN
	p.Add(hist)

	return savePlot(p, path)
}

// fitLine samples a fitted regression across [xMin, xMax].
func fitLine(fit analysis.LinearFit, xMin, xMax float64, c color.Color) (*plotter.Line, error) {
	const samples = 100
	pts := make(plotter.XYs, samples)
	step := (xMax - xMin) / float64(samples-1)
	for i := range pts {
		x := xMin + float64(i)*step
		pts[i].X = x
		pts[i].Y = float64(fit.Intercept) + float64(fit.Slope)*x
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	return line, nil
}

// observationPoints maps observations to (chars, prompt_tokens) points,
// excluding pairs with missing coordinates.
func observationPoints(obs []dataset.Observation) plotter.XYs {
	pts := make(plotter.XYs, 0, len(obs))
	for _, o := range obs {
		if dataset.IsMissing(o.Chars) || dataset.IsMissing(o.PromptTokens) {
			continue
		}
		pts = append(pts, plotter.XY{X: o.Chars, Y: o.PromptTokens})
	}
	return pts
}

// charRange returns the finite min/max of the chars column across the
// whole dataset; both fit lines span the same x interval.
func charRange(ds *dataset.Dataset) (float64, float64) {
	first := true
	var min, max float64
	for _, o := range ds.Observations {
		if dataset.IsMissing(o.Chars) {
			continue
		}
		if first {
			min, max = o.Chars, o.Chars
			first = false
			continue
		}
		if o.Chars < min {
			min = o.Chars
		}
		if o.Chars > max {
			max = o.Chars
		}
	}
	return min, max
}

// meanField averages one numeric field, skipping missing values.
func meanField(obs []dataset.Observation, field func(dataset.Observation) float64) float64 {
	var sum float64
	var n int
	for _, o := range obs {
		v := field(o)
		if dataset.IsMissing(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// barValue clamps a missing mean to a zero-height bar; variants absent
// from the input render as empty slots rather than breaking the chart.
func barValue(v float64) float64 {
	if dataset.IsMissing(v) {
		return 0
	}
	return v
}

// groupedBarWidth sizes bars so a full group fits inside one nominal slot.
func groupedBarWidth(series int) vg.Length {
	if series < 1 {
		series = 1
	}
	return vg.Points(40) / vg.Length(series)
}

// groupedBarOffset centers a bar series within its group.
func groupedBarOffset(i, series int, width vg.Length) vg.Length {
	return (vg.Length(i) - vg.Length(series-1)/2) * width
}

// savePlot writes a plot as a 6x4 inch PNG.
func savePlot(p *plot.Plot, path string) error {
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("could not save figure %q: %w", path, err)
	}
	return nil
}
