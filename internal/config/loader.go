package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPlan reads, schema-checks, and validates a YAML plan file, then
// fills in defaults for anything left unset.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	return ParsePlan(data)
}

// ParsePlan parses and validates raw YAML plan bytes.
func ParsePlan(data []byte) (*Plan, error) {
	// Schema validation runs on the untyped document first, so structural
	// mistakes are reported with their JSON location instead of as Go
	// unmarshaling errors.
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}

	doc, err := toJSONDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize plan document: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	plan := &Plan{}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	plan.applyDefaults()
	return plan, nil
}
