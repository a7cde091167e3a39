package config

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed limits.yaml
var limitsFile embed.FS

// Limits holds the input-size limits and the recycle-bin retention policy.
// They ship embedded so every build carries the same policy; the retention
// window is informational for an external reaper (this service never purges
// on its own).
type Limits struct {
	MaxTitleLength int `yaml:"max_title_length"`
	MaxNameLength  int `yaml:"max_name_length"`
	MaxCodeBytes   int `yaml:"max_code_bytes"`

	// RetentionDays is the documented grace window during which a
	// soft-deleted entity remains recoverable.
	RetentionDays int `yaml:"retention_days"`
}

// LoadLimits parses the embedded limits file.
func LoadLimits() (*Limits, error) {
	data, err := limitsFile.ReadFile("limits.yaml")
	if err != nil {
		return nil, fmt.Errorf("read limits.yaml: %w", err)
	}

	var limits Limits
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return nil, fmt.Errorf("unmarshal limits.yaml: %w", err)
	}

	if limits.MaxTitleLength <= 0 || limits.MaxNameLength <= 0 || limits.MaxCodeBytes <= 0 {
		return nil, fmt.Errorf("limits.yaml: all size limits must be positive")
	}

	return &limits, nil
}
