// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-ranker/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Job     string   `json:"job,omitempty"`      // Path to job description text file
	JobText string   `json:"job_text,omitempty"` // Inline job description text
	Resumes []string `json:"resumes,omitempty"`  // Candidate resume paths

	// Scoring
	Engine             string  `json:"engine,omitempty"`          // heuristic, rubric, semantic, or structured
	Model              string  `json:"model,omitempty"`           // Override for the standard-tier model
	EmbeddingModel     string  `json:"embedding_model,omitempty"` // Embedding model for the semantic engine
	Workers            int     `json:"workers,omitempty" validate:"gte=0"`
	SimilarityWeight   float64 `json:"similarity_weight,omitempty" validate:"gte=0,lte=1"`
	CoverageWeight     float64 `json:"coverage_weight,omitempty" validate:"gte=0,lte=1"`
	StrongHitThreshold float64 `json:"strong_hit_threshold,omitempty" validate:"gte=0,lte=1"`

	// Outputs
	OutJSON string `json:"out_json,omitempty"` // Ranking result JSON path
	OutCSV  string `json:"out_csv,omitempty"`  // Candidate table CSV path

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`
	JSONLogs    bool   `json:"json_logs,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration has valid values. Required fields
// are not checked here; they are enforced by flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobText != "" {
		return fmt.Errorf("config error: 'job' and 'job_text' are mutually exclusive")
	}

	if c.Engine != "" {
		if _, err := scoring.ParseName(c.Engine); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", f.Field(), f.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	for _, r := range c.Resumes {
		if _, err := os.Stat(r); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", r)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobText == "" {
		result.JobText = defaults.JobText
	}
	if len(result.Resumes) == 0 {
		result.Resumes = defaults.Resumes
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.OutJSON == "" {
		result.OutJSON = defaults.OutJSON
	}
	if result.OutCSV == "" {
		result.OutCSV = defaults.OutCSV
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.SimilarityWeight == 0 {
		result.SimilarityWeight = defaults.SimilarityWeight
	}
	if result.CoverageWeight == 0 {
		result.CoverageWeight = defaults.CoverageWeight
	}
	if result.StrongHitThreshold == 0 {
		result.StrongHitThreshold = defaults.StrongHitThreshold
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.JSONLogs {
		result.JSONLogs = defaults.JSONLogs
	}

	return result
}
