package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Report  ReportConfig `json:"report"`
	Tags    TagConfig    `json:"tags"`
	Filters FilterConfig `json:"filters"`
	Log     LogConfig    `json:"log"`
}

// ReportConfig holds changelog report options.
type ReportConfig struct {
	Title     string   `json:"title"`     // Report heading. Default: "Changelog"
	Formats   []string `json:"formats"`   // Output formats; see render.ParseFormat
	OutputDir string   `json:"outputDir"` // Directory for file-backed formats. Default: "."
	IssueURL  string   `json:"issueUrl"`  // Issue tracker URL prefix for #NNN references
}

// TagConfig holds release tag indexing options.
type TagConfig struct {
	Skip    bool   `json:"skip"`    // Skip tag headings entirely
	Pattern string `json:"pattern"` // Glob restricting which tag names are indexed
}

// FilterConfig holds commit filtering options.
type FilterConfig struct {
	NoMerges       bool     `json:"noMerges"`       // Drop commits with more than one parent
	Include        string   `json:"include"`        // Regex a commit message must match
	Exclude        string   `json:"exclude"`        // Regex that rejects matching commit messages
	Authors        []string `json:"authors"`        // Glob patterns on author name or email
	DedupeSubjects bool     `json:"dedupeSubjects"` // Drop repeated subject lines within a run
}

// LogConfig holds diagnostic logging options.
type LogConfig struct {
	Level string `json:"level"` // "none", "info" or "debug". Default: "none"
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Title:     "Changelog",
			Formats:   []string{"console"},
			OutputDir: ".",
		},
		Tags: TagConfig{},
		Filters: FilterConfig{
			Authors: []string{},
		},
		Log: LogConfig{
			Level: "none",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitlog.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitlog.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".gitlog.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
