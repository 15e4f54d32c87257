package output

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// OutputFormat represents the available machine-readable output formats.
type OutputFormat string

const (
	// FormatText is the default human-readable format.
	FormatText OutputFormat = "text"
	// FormatJSON outputs metrics as JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs metrics as YAML.
	FormatYAML OutputFormat = "yaml"
)

// MetricsDocument is the serializable shape of an aggregated session,
// optionally broken down per pattern.
type MetricsDocument struct {
	Name      string                                  `json:"name,omitempty" yaml:"name,omitempty"`
	Overall   telemetry.Metrics                       `json:"overall" yaml:"overall"`
	ByPattern map[telemetry.Pattern]telemetry.Metrics `json:"byPattern,omitempty" yaml:"byPattern,omitempty"`
}

// MarshalMetrics serializes a metrics document in the requested format.
func MarshalMetrics(doc MetricsDocument, format OutputFormat) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// ParseFormat validates a format name from a CLI flag.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatYAML:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, json, or yaml)", s)
	}
}
