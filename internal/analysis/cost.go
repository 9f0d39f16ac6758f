// internal/analysis/cost.go
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mwiater/tokenlens/internal/dataset"
)

// CostStats compares mean per-sentence cost between English and Turkish
// for one model. Ratio is nil when the English mean cost is not positive;
// the ratio is undefined there, not zero.
type CostStats struct {
	Model      string `json:"model"`
	MeanCostEN Float  `json:"mean_cost_en"`
	MeanCostTR Float  `json:"mean_cost_tr"`
	Ratio      *Float `json:"tr_over_en_cost_ratio"`
}

// CostRatios computes per-model mean costs and the TR/EN cost ratio.
func CostRatios(ds *dataset.Dataset) []CostStats {
	var out []CostStats
	for _, model := range ds.Models() {
		en := meanCost(ds.Filter(model, dataset.VariantEN))
		tr := meanCost(ds.Filter(model, dataset.VariantTR))

		stats := CostStats{Model: model, MeanCostEN: Float(en), MeanCostTR: Float(tr)}
		if en > 0 { // false for NaN as well
			ratio := Float(tr / en)
			stats.Ratio = &ratio
		}
		out = append(out, stats)
	}
	return out
}

// meanCost averages the cost column, skipping missing values. An empty or
// all-missing subset yields NaN.
func meanCost(obs []dataset.Observation) float64 {
	var costs []float64
	for _, o := range obs {
		if dataset.IsMissing(o.Cost) {
			continue
		}
		costs = append(costs, o.Cost)
	}
	if len(costs) == 0 {
		return math.NaN()
	}
	return stat.Mean(costs, nil)
}
