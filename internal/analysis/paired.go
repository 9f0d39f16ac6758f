// internal/analysis/paired.go
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mwiater/tokenlens/internal/dataset"
)

// tCritical95 approximates the 95% two-sided t critical value for the
// sample sizes the measurement runs produce (~100 pairs). It is a fixed
// constant, not adjusted for the true degrees of freedom.
const tCritical95 = 1.984

// PairedStats summarizes per-sentence deltas between two variants of the
// same model: mean, sample standard deviation, and an approximate 95%
// confidence interval for the mean.
type PairedStats struct {
	Mean   Float `json:"mean"`
	StdDev Float `json:"sd"`
	CILow  Float `json:"ci_low"`
	CIHigh Float `json:"ci_high"`
}

// ENvsTR holds the paired TR − EN comparison for one model.
type ENvsTR struct {
	Model         string      `json:"model"`
	NPairs        int         `json:"n_pairs"`
	TokensPerChar PairedStats `json:"diff_tokens_per_char_tr_minus_en"`
	PromptTokens  PairedStats `json:"diff_prompt_tokens_tr_minus_en"`
}

// NoDiaVsTR holds the paired TR_NODIA − TR comparison for one model.
type NoDiaVsTR struct {
	Model         string      `json:"model"`
	NPairs        int         `json:"n_pairs"`
	TokensPerChar PairedStats `json:"diff_tokens_per_char_trn_minus_tr"`
}

// PairedDeltas joins two variants of a model on shared sentence id and
// returns other − base for the selected field, in ascending id order.
// Deltas involving a missing value are excluded.
func PairedDeltas(ds *dataset.Dataset, model string, base, other dataset.Variant, field func(dataset.Observation) float64) []float64 {
	baseByID := ds.ByID(model, base)
	otherByID := ds.ByID(model, other)

	var deltas []float64
	for _, id := range dataset.SharedIDs(baseByID, otherByID) {
		d := field(otherByID[id]) - field(baseByID[id])
		if dataset.IsMissing(d) {
			continue
		}
		deltas = append(deltas, d)
	}
	return deltas
}

// CompareENvsTR computes the paired EN vs TR differences for every model.
func CompareENvsTR(ds *dataset.Dataset) []ENvsTR {
	var out []ENvsTR
	for _, model := range ds.Models() {
		tpc := PairedDeltas(ds, model, dataset.VariantEN, dataset.VariantTR,
			func(o dataset.Observation) float64 { return o.TokensPerChar })
		pt := PairedDeltas(ds, model, dataset.VariantEN, dataset.VariantTR,
			func(o dataset.Observation) float64 { return o.PromptTokens })

		out = append(out, ENvsTR{
			Model:         model,
			NPairs:        len(tpc),
			TokensPerChar: pairedStats(tpc),
			PromptTokens:  pairedStats(pt),
		})
	}
	return out
}

// CompareNoDiaVsTR computes the paired TR_NODIA vs TR differences for
// every model, on tokens per character only.
func CompareNoDiaVsTR(ds *dataset.Dataset) []NoDiaVsTR {
	var out []NoDiaVsTR
	for _, model := range ds.Models() {
		tpc := PairedDeltas(ds, model, dataset.VariantTR, dataset.VariantTRNoDia,
			func(o dataset.Observation) float64 { return o.TokensPerChar })

		out = append(out, NoDiaVsTR{
			Model:         model,
			NPairs:        len(tpc),
			TokensPerChar: pairedStats(tpc),
		})
	}
	return out
}

// pairedStats reduces a delta series to mean, sample stddev, and the
// fixed-critical-value confidence interval.
func pairedStats(deltas []float64) PairedStats {
	if len(deltas) == 0 {
		nan := Float(math.NaN())
		return PairedStats{Mean: nan, StdDev: nan, CILow: nan, CIHigh: nan}
	}

	mean, sd := stat.MeanStdDev(deltas, nil)
	se := sd / math.Sqrt(float64(len(deltas)))
	return PairedStats{
		Mean:   Float(mean),
		StdDev: Float(sd),
		CILow:  Float(mean - tCritical95*se),
		CIHigh: Float(mean + tCritical95*se),
	}
}
