// internal/dataset/load.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mwiater/tokenlens/internal/logging"
)

// Load reads the measurements CSV at path and returns the reconstructed
// dataset. The reader accepts variable-width rows because the output_text
// column may contain unescaped commas; ReconstructRow recovers the
// canonical schema per row. Short rows are dropped without diagnostics,
// matching the collection pipeline that produced the files.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open measurements CSV %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse measurements CSV %q: %w", path, err)
	}
	if len(rows) == 0 {
		return &Dataset{Source: path}, nil
	}

	ds := &Dataset{Source: path}
	dropped := 0
	for i, raw := range rows[1:] { // first row is the header
		fixed, ok := ReconstructRow(raw)
		if !ok {
			logging.Debugf("dropping row %d: %d fields, need %d", i+2, len(raw), minFields)
			dropped++
			continue
		}
		obs, ok := ParseObservation(fixed)
		if !ok {
			logging.Debugf("dropping row %d: unusable id %q", i+2, fixed[1])
			dropped++
			continue
		}
		ds.Observations = append(ds.Observations, obs)
	}

	logging.LogEvent("[DATASET] Loaded %d observations from %s (%d rows dropped)",
		len(ds.Observations), path, dropped)
	return ds, nil
}
