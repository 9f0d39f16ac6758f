// internal/dataset/observation.go
// Package dataset loads per-sentence token measurements from CSV and
// reconstructs rows whose free-text column contains embedded delimiters.
package dataset

import (
	"math"
	"sort"
)

// Variant identifies the language variant of a measured sentence.
type Variant string

const (
	// VariantEN is the English baseline.
	VariantEN Variant = "en"
	// VariantTR is Turkish with full diacritics.
	VariantTR Variant = "tr"
	// VariantTRNoDia is Turkish with diacritics stripped.
	VariantTRNoDia Variant = "tr_nodia"
)

// Variants lists all language variants in presentation order.
var Variants = []Variant{VariantEN, VariantTR, VariantTRNoDia}

// Observation is a single model/variant/sentence measurement. Numeric
// fields are float64 so that unparseable input carries through as NaN.
// (Model, Variant, ID) uniquely identifies an observation.
type Observation struct {
	RunID               string  `json:"run_id"`
	ID                  int     `json:"id"`
	Provider            string  `json:"provider"`
	Model               string  `json:"model"`
	Variant             Variant `json:"variant"`
	Chars               float64 `json:"chars"`
	TokensPerChar       float64 `json:"tokens_per_char"`
	OutputChars         float64 `json:"output_chars"`
	OutputTokensPerChar float64 `json:"output_tokens_per_char"`
	PromptTokens        float64 `json:"prompt_tokens"`
	CompletionTokens    float64 `json:"completion_tokens"`
	TotalTokens         float64 `json:"total_tokens"`
	OutputText          string  `json:"output_text"`
	Mode                string  `json:"mode"`
	Cost                float64 `json:"cost"`
	ResponseTime        float64 `json:"responseTime"`
	ReasoningLabel      string  `json:"reasoning_label"`
	VerbosityLabel      string  `json:"verbosity_label"`
}

// Dataset holds every observation parsed from one input file. It is
// built once by Load and never mutated afterwards.
type Dataset struct {
	Source       string
	Observations []Observation
}

// Models returns the distinct model names in sorted order.
func (d *Dataset) Models() []string {
	seen := make(map[string]struct{})
	var models []string
	for _, obs := range d.Observations {
		if _, ok := seen[obs.Model]; ok {
			continue
		}
		seen[obs.Model] = struct{}{}
		models = append(models, obs.Model)
	}
	sort.Strings(models)
	return models
}

// Filter returns the observations for one model and variant, in input order.
func (d *Dataset) Filter(model string, variant Variant) []Observation {
	var out []Observation
	for _, obs := range d.Observations {
		if obs.Model == model && obs.Variant == variant {
			out = append(out, obs)
		}
	}
	return out
}

// ByID indexes one model/variant slice of the dataset by sentence id.
// Later duplicates win, matching a keyed overwrite on load order.
func (d *Dataset) ByID(model string, variant Variant) map[int]Observation {
	out := make(map[int]Observation)
	for _, obs := range d.Observations {
		if obs.Model == model && obs.Variant == variant {
			out[obs.ID] = obs
		}
	}
	return out
}

// SharedIDs returns the sorted sentence ids present in both maps.
func SharedIDs(a, b map[int]Observation) []int {
	var ids []int
	for id := range a {
		if _, ok := b[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// IsMissing reports whether a permissively parsed numeric value was absent
// or unparseable in the input.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
