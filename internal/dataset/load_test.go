// internal/dataset/load_test.go
package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testHeader = "run_id,id,provider,model,variant,chars,tokens_per_char,output_chars,output_tokens_per_char,prompt_tokens,completion_tokens,total_tokens,output_text,mode,cost,responseTime,reasoning_label,verbosity_label"

func writeCSV(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.csv")
	content := strings.Join(append([]string{testHeader}, rows...), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadReconstructsAndSkipsHeader(t *testing.T) {
	t.Parallel()

	path := writeCSV(t,
		"run-1,1,openai,gpt-5.1,en,10,1.2,5,0.4,12,3,15,hello world,chat,0.001,1.0,low,medium",
		"run-1,1,openai,gpt-5.1,tr,12,1.5,5,0.4,18,3,21,merhaba, dünya,chat,0.002,1.0,low,medium",
	)

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(ds.Observations) != 2 {
		t.Fatalf("observation count = %d, want 2", len(ds.Observations))
	}
	if ds.Source != path {
		t.Fatalf("Source = %q, want %q", ds.Source, path)
	}

	tr := ds.Observations[1]
	if tr.OutputText != "merhaba, dünya" {
		t.Fatalf("OutputText = %q, want rejoined text", tr.OutputText)
	}
	if tr.PromptTokens != 18 || tr.Cost != 0.002 {
		t.Fatalf("trailing numerics wrong after reconstruction: %+v", tr)
	}
}

func TestLoadDropsShortRowsWithoutDisturbingOthers(t *testing.T) {
	t.Parallel()

	good := "run-1,2,openai,gpt-5.1,en,20,1.1,5,0.4,22,3,25,fine,chat,0.002,1.0,low,medium"
	path := writeCSV(t,
		"run-1,1,openai,gpt-5.1,en,10,1.2,5,0.4,12,3,15,ok,chat,0.001,1.0,low,medium",
		"run-1,999,truncated,row", // <18 fields, silently dropped
		good,
	)

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(ds.Observations) != 2 {
		t.Fatalf("observation count = %d, want 2", len(ds.Observations))
	}

	second := ds.Observations[1]
	if second.ID != 2 || second.Chars != 20 || second.PromptTokens != 22 || second.OutputText != "fine" {
		t.Fatalf("row after a dropped short row was perturbed: %+v", second)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if !strings.Contains(err.Error(), "absent.csv") {
		t.Fatalf("error should name the path, got: %v", err)
	}
}

func TestDatasetAccessors(t *testing.T) {
	t.Parallel()

	path := writeCSV(t,
		"run-1,1,openai,gpt-5.2,en,10,1.2,5,0.4,12,3,15,a,chat,0.001,1.0,low,medium",
		"run-1,1,openai,gpt-5.1,en,10,1.2,5,0.4,12,3,15,b,chat,0.001,1.0,low,medium",
		"run-1,2,openai,gpt-5.1,en,20,1.1,5,0.4,22,3,25,c,chat,0.002,1.0,low,medium",
		"run-1,2,openai,gpt-5.1,tr,24,1.5,5,0.4,36,3,39,d,chat,0.004,1.0,low,medium",
	)

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	models := ds.Models()
	if len(models) != 2 || models[0] != "gpt-5.1" || models[1] != "gpt-5.2" {
		t.Fatalf("Models() = %v, want sorted unique names", models)
	}

	if got := len(ds.Filter("gpt-5.1", VariantEN)); got != 2 {
		t.Fatalf("Filter count = %d, want 2", got)
	}

	en := ds.ByID("gpt-5.1", VariantEN)
	tr := ds.ByID("gpt-5.1", VariantTR)
	if ids := SharedIDs(en, tr); len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("SharedIDs = %v, want [2]", ids)
	}
}
