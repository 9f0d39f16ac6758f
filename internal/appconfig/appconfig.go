// internal/appconfig/appconfig.go
// Package appconfig manages loading and validating application configuration.
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultCSVPath is the measurements file analyzed when no path is given.
	DefaultCSVPath = "data/OpenAI-models-6-12-2025.csv"
	// DefaultFiguresDir is where rendered figures land unless overridden.
	DefaultFiguresDir = "figures"
	// defaultLogFile is the fallback log file path.
	defaultLogFile = "tokenlens.log"
)

// Config represents the top-level application configuration.
type Config struct {
	CSVPath      string `json:"csvPath,omitempty" mapstructure:"csvPath"`
	FiguresDir   string `json:"figuresDir,omitempty" mapstructure:"figuresDir"`
	AnalysisPath string `json:"output,omitempty" mapstructure:"output"`
	Debug        bool   `json:"debug" mapstructure:"debug"`
	JSONMode     bool   `json:"jsonMode" mapstructure:"jsonMode"`
	LogFile      string `json:"logFile,omitempty" mapstructure:"logFile"`
	ConfigPath   string `json:"-" mapstructure:"-"`
}

// configSchema validates the shape of a loaded configuration document.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"csvPath":    map[string]any{"type": "string"},
		"figuresDir": map[string]any{"type": "string"},
		"output":     map[string]any{"type": "string"},
		"debug":      map[string]any{"type": "boolean"},
		"jsonMode":   map[string]any{"type": "boolean"},
		"logFile":    map[string]any{"type": "string"},
	},
	"additionalProperties": true,
}

// DataPath returns the measurements CSV path, applying the default if unset.
func (c Config) DataPath() string {
	if path := strings.TrimSpace(c.CSVPath); path != "" {
		return path
	}
	return DefaultCSVPath
}

// FiguresDirectory returns the figure output directory, applying the default if unset.
func (c Config) FiguresDirectory() string {
	if dir := strings.TrimSpace(c.FiguresDir); dir != "" {
		return dir
	}
	return DefaultFiguresDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := strings.TrimSpace(c.LogFile); path != "" {
		return path
	}
	return defaultLogFile
}

// Validate checks raw configuration settings (the merged file + flag view)
// against the embedded JSON schema before they are unmarshaled into
// Config, and returns a single error describing every violation.
func Validate(settings map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewGoLoader(settings)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("config schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var issues []string
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(issues, "; "))
}
