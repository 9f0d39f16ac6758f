// internal/dataset/reconstruct.go
package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Header is the canonical 18-column schema of the measurements CSV.
var Header = []string{
	"run_id", "id", "provider", "model", "variant",
	"chars", "tokens_per_char", "output_chars", "output_tokens_per_char",
	"prompt_tokens", "completion_tokens", "total_tokens",
	"output_text", "mode", "cost", "responseTime",
	"reasoning_label", "verbosity_label",
}

const (
	// minFields is the minimum raw field count for a recoverable row.
	minFields = 18
	// leadingFields is the fixed prefix before the free-text column.
	leadingFields = 12
	// trailingFields is the fixed metadata block after the mode flag.
	trailingFields = 4
)

// ReconstructRow recovers the canonical 18-wide record from a raw CSV row
// whose output_text column may contain unescaped commas. The last four
// fields are cost, responseTime, reasoning_label and verbosity_label, the
// fifth from last is the mode flag, and everything between the 12-field
// prefix and that trailing block is rejoined into output_text. Rows with
// fewer than 18 fields are unrecoverable and reported as not ok.
func ReconstructRow(raw []string) ([]string, bool) {
	if len(raw) < minFields {
		return nil, false
	}

	l := len(raw)
	outputText := strings.Join(raw[leadingFields:l-trailingFields-1], ",")

	fixed := make([]string, 0, minFields)
	fixed = append(fixed, raw[:leadingFields]...)
	fixed = append(fixed, outputText)
	fixed = append(fixed, raw[l-trailingFields-1:]...)
	return fixed, true
}

// ParseObservation converts a reconstructed 18-wide record into an
// Observation. Numeric columns parse permissively: unparseable values
// become NaN rather than failing the row. The id column is the exception;
// a row without an integral id cannot be joined and is reported as not ok.
func ParseObservation(fields []string) (Observation, bool) {
	if len(fields) != minFields {
		return Observation{}, false
	}

	id, ok := parseID(fields[1])
	if !ok {
		return Observation{}, false
	}

	return Observation{
		RunID:               fields[0],
		ID:                  id,
		Provider:            fields[2],
		Model:               fields[3],
		Variant:             Variant(fields[4]),
		Chars:               parseFloat(fields[5]),
		TokensPerChar:       parseFloat(fields[6]),
		OutputChars:         parseFloat(fields[7]),
		OutputTokensPerChar: parseFloat(fields[8]),
		PromptTokens:        parseFloat(fields[9]),
		CompletionTokens:    parseFloat(fields[10]),
		TotalTokens:         parseFloat(fields[11]),
		OutputText:          fields[12],
		Mode:                fields[13],
		Cost:                parseFloat(fields[14]),
		ResponseTime:        parseFloat(fields[15]),
		ReasoningLabel:      fields[16],
		VerbosityLabel:      fields[17],
	}, true
}

// parseFloat parses a numeric column, mapping failures to NaN.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseID parses the sentence id, tolerating a float-formatted integer.
func parseID(s string) (int, bool) {
	trimmed := strings.TrimSpace(s)
	if v, err := strconv.Atoi(trimmed); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
