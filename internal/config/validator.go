package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a plan validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the whole plan, collecting every error rather than
// stopping at the first one.
func (p *Plan) Validate() error {
	errs := &ValidationErrors{}

	if len(p.Patterns) == 0 {
		errs.Add("patterns", "at least one pattern is required")
	}

	for i, spec := range p.Patterns {
		prefix := fmt.Sprintf("patterns[%d]", i)
		cfg := spec.Config()
		if err := cfg.Validate(); err != nil {
			errs.Add(prefix, err.Error())
		}
	}

	validateSettings(&p.Settings, errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateSettings(s *Settings, errs *ValidationErrors) {
	if s.BaseURL != "" {
		u, err := url.Parse(s.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs.Add("settings.baseUrl", fmt.Sprintf("invalid URL: %s", s.BaseURL))
		}
	}
	if s.Endpoint != "" && !strings.HasPrefix(s.Endpoint, "/") {
		errs.Add("settings.endpoint", "endpoint must start with '/'")
	}
	if s.Timeout < 0 {
		errs.Add("settings.timeout", "timeout must be >= 0")
	}
}
