// internal/analysis/linear.go
// Package analysis computes the derived statistics for a loaded dataset:
// per model/variant linear fits, paired variant differences, and cost
// ratios.
package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/mwiater/tokenlens/internal/dataset"
)

// LinearFit is an ordinary-least-squares fit of
// prompt_tokens ≈ Intercept + Slope*chars over one model/variant subset.
type LinearFit struct {
	N                int   `json:"n"`
	MeanChars        Float `json:"mean_chars"`
	MeanPromptTokens Float `json:"mean_prompt_tokens"`
	Intercept        Float `json:"intercept_tokens"`
	Slope            Float `json:"slope_tokens_per_char"`
	R2               Float `json:"r2"`
}

// FitLinear fits prompt_tokens against chars by closed-form least squares.
// Pairs with a missing coordinate are excluded before fitting. Zero
// variance in chars (all x equal) yields non-finite slope and R2; callers
// see the degenerate values rather than an error.
func FitLinear(chars, promptTokens []float64) LinearFit {
	x, y := dropMissingPairs(chars, promptTokens)

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return LinearFit{
		N:                len(x),
		MeanChars:        Float(stat.Mean(x, nil)),
		MeanPromptTokens: Float(stat.Mean(y, nil)),
		Intercept:        Float(alpha),
		Slope:            Float(beta),
		R2:               Float(stat.RSquared(x, y, nil, alpha, beta)),
	}
}

// FitVariant runs FitLinear over one model/variant slice of the dataset.
func FitVariant(ds *dataset.Dataset, model string, variant dataset.Variant) LinearFit {
	obs := ds.Filter(model, variant)
	chars := make([]float64, len(obs))
	tokens := make([]float64, len(obs))
	for i, o := range obs {
		chars[i] = o.Chars
		tokens[i] = o.PromptTokens
	}
	return FitLinear(chars, tokens)
}

// dropMissingPairs removes pairs where either coordinate is NaN.
func dropMissingPairs(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	outX := make([]float64, 0, n)
	outY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if dataset.IsMissing(x[i]) || dataset.IsMissing(y[i]) {
			continue
		}
		outX = append(outX, x[i])
		outY = append(outY, y[i])
	}
	return outX, outY
}
