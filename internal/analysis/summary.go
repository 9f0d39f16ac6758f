// internal/analysis/summary.go
package analysis

import (
	"time"

	"github.com/mwiater/tokenlens/internal/dataset"
)

// VariantSummary is the linear-fit summary for one model/variant cell.
type VariantSummary struct {
	Model   string          `json:"model"`
	Variant dataset.Variant `json:"variant"`
	LinearFit
}

// Document is the complete analysis derived from one dataset. It is what
// the report renders and what --output serializes.
type Document struct {
	Source       string           `json:"source"`
	GeneratedUTC time.Time        `json:"generated_utc"`
	Models       []string         `json:"models"`
	Summaries    []VariantSummary `json:"linear_summaries"`
	PairedENTR   []ENvsTR         `json:"paired_en_vs_tr"`
	PairedNoDia  []NoDiaVsTR      `json:"paired_trnodia_vs_tr"`
	Costs        []CostStats      `json:"cost_stats"`
}

// Summarize fits the linear model for every model × variant combination,
// models in sorted order, variants in presentation order.
func Summarize(ds *dataset.Dataset) []VariantSummary {
	var out []VariantSummary
	for _, model := range ds.Models() {
		for _, variant := range dataset.Variants {
			out = append(out, VariantSummary{
				Model:     model,
				Variant:   variant,
				LinearFit: FitVariant(ds, model, variant),
			})
		}
	}
	return out
}

// Build runs every analysis stage over the dataset and assembles the
// resulting document.
func Build(ds *dataset.Dataset) Document {
	return Document{
		Source:       ds.Source,
		GeneratedUTC: time.Now().UTC(),
		Models:       ds.Models(),
		Summaries:    Summarize(ds),
		PairedENTR:   CompareENvsTR(ds),
		PairedNoDia:  CompareNoDiaVsTR(ds),
		Costs:        CostRatios(ds),
	}
}
