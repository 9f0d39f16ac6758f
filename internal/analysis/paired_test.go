// internal/analysis/paired_test.go
package analysis

import (
	"math"
	"testing"

	"github.com/mwiater/tokenlens/internal/dataset"
)

// pairedDataset builds one model with EN and TR observations whose
// tokens_per_char values are given per shared id.
func pairedDataset(en, tr map[int]float64) *dataset.Dataset {
	ds := &dataset.Dataset{}
	for id, v := range en {
		ds.Observations = append(ds.Observations, dataset.Observation{
			ID: id, Model: "gpt-5.1", Variant: dataset.VariantEN, TokensPerChar: v, PromptTokens: v * 100,
		})
	}
	for id, v := range tr {
		ds.Observations = append(ds.Observations, dataset.Observation{
			ID: id, Model: "gpt-5.1", Variant: dataset.VariantTR, TokensPerChar: v, PromptTokens: v * 100,
		})
	}
	return ds
}

func TestPairedDeltasJoinsOnSharedIDs(t *testing.T) {
	t.Parallel()

	ds := pairedDataset(
		map[int]float64{1: 1.0, 2: 1.1, 5: 1.2},
		map[int]float64{1: 1.4, 2: 1.2, 9: 9.9},
	)

	deltas := PairedDeltas(ds, "gpt-5.1", dataset.VariantEN, dataset.VariantTR,
		func(o dataset.Observation) float64 { return o.TokensPerChar })

	if len(deltas) != 2 {
		t.Fatalf("delta count = %d, want 2 (ids 1 and 2)", len(deltas))
	}
	// Ascending id order: id 1 then id 2.
	if !almostEqual(deltas[0], 0.4) || !almostEqual(deltas[1], 0.1) {
		t.Fatalf("deltas = %v, want [0.4 0.1]", deltas)
	}
}

func TestPairedDeltasSkipsMissingValues(t *testing.T) {
	t.Parallel()

	ds := pairedDataset(
		map[int]float64{1: 1.0, 2: math.NaN()},
		map[int]float64{1: 1.5, 2: 1.2},
	)

	deltas := PairedDeltas(ds, "gpt-5.1", dataset.VariantEN, dataset.VariantTR,
		func(o dataset.Observation) float64 { return o.TokensPerChar })
	if len(deltas) != 1 || !almostEqual(deltas[0], 0.5) {
		t.Fatalf("deltas = %v, want [0.5]", deltas)
	}
}

func TestCompareENvsTRSymmetricDeltasMeanZero(t *testing.T) {
	t.Parallel()

	// Deltas are symmetric around zero: -0.2, -0.1, +0.1, +0.2.
	en := map[int]float64{1: 1.0, 2: 1.0, 3: 1.0, 4: 1.0}
	tr := map[int]float64{1: 0.8, 2: 0.9, 3: 1.1, 4: 1.2}

	rows := CompareENvsTR(pairedDataset(en, tr))
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.NPairs != 4 {
		t.Fatalf("NPairs = %d, want 4", row.NPairs)
	}
	if math.Abs(float64(row.TokensPerChar.Mean)) > tolerance {
		t.Fatalf("mean delta = %v, want 0", row.TokensPerChar.Mean)
	}
	if math.Abs(float64(row.PromptTokens.Mean)) > 1e-6 {
		t.Fatalf("prompt-token mean delta = %v, want 0", row.PromptTokens.Mean)
	}
	// CI must be symmetric around the zero mean.
	if !approx(row.TokensPerChar.CILow, -float64(row.TokensPerChar.CIHigh)) {
		t.Fatalf("CI not symmetric: [%v, %v]", row.TokensPerChar.CILow, row.TokensPerChar.CIHigh)
	}
}

func TestPairedStatsConfidenceInterval(t *testing.T) {
	t.Parallel()

	deltas := []float64{0.1, 0.2, 0.3, 0.4}
	got := pairedStats(deltas)

	// mean 0.25, sample sd sqrt(0.05/3), se = sd/2.
	wantMean := 0.25
	wantSD := math.Sqrt(0.05 / 3)
	wantSE := wantSD / 2

	if !approx(got.Mean, wantMean) {
		t.Fatalf("Mean = %v, want %v", got.Mean, wantMean)
	}
	if !approx(got.StdDev, wantSD) {
		t.Fatalf("StdDev = %v, want %v", got.StdDev, wantSD)
	}
	if !approx(got.CILow, wantMean-1.984*wantSE) {
		t.Fatalf("CILow = %v, want %v", got.CILow, wantMean-1.984*wantSE)
	}
	if !approx(got.CIHigh, wantMean+1.984*wantSE) {
		t.Fatalf("CIHigh = %v, want %v", got.CIHigh, wantMean+1.984*wantSE)
	}
}

func TestPairedStatsEmptySeries(t *testing.T) {
	t.Parallel()

	got := pairedStats(nil)
	if !math.IsNaN(float64(got.Mean)) || !math.IsNaN(float64(got.StdDev)) || !math.IsNaN(float64(got.CILow)) || !math.IsNaN(float64(got.CIHigh)) {
		t.Fatalf("empty series should be all-NaN, got %+v", got)
	}
}

func TestCompareNoDiaVsTR(t *testing.T) {
	t.Parallel()

	ds := &dataset.Dataset{Observations: []dataset.Observation{
		{ID: 1, Model: "gpt-5.1", Variant: dataset.VariantTR, TokensPerChar: 1.5},
		{ID: 2, Model: "gpt-5.1", Variant: dataset.VariantTR, TokensPerChar: 1.6},
		{ID: 1, Model: "gpt-5.1", Variant: dataset.VariantTRNoDia, TokensPerChar: 1.4},
		{ID: 2, Model: "gpt-5.1", Variant: dataset.VariantTRNoDia, TokensPerChar: 1.4},
	}}

	rows := CompareNoDiaVsTR(ds)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.NPairs != 2 {
		t.Fatalf("NPairs = %d, want 2", row.NPairs)
	}
	// Deltas: -0.1 and -0.2, mean -0.15.
	if !approx(row.TokensPerChar.Mean, -0.15) {
		t.Fatalf("mean delta = %v, want -0.15", row.TokensPerChar.Mean)
	}
}
