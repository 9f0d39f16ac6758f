// internal/analysis/float.go
package analysis

import (
	"encoding/json"
	"math"
)

// Float is a float64 whose JSON form maps missing values to null. The
// analysis carries NaN wherever an input value was unparseable or a cell
// had no observations; encoding/json refuses NaN, so the document
// serializes those as null and reads null back as NaN.
type Float float64

// MarshalJSON writes null for NaN and infinities.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON reads null as NaN.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
