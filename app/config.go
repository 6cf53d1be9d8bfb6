package app

import (
	"errors"
	"fmt"
	"strings"

	"SecTriage/output"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input path")
	ErrRunFailed    = errors.New("collection run failed")
)

// SupportedFormats defines the export formats supported by SecTriage
var SupportedFormats = []string{"csv", "jsonl", "sqlite"}

// Config holds the configuration for a collection run
type Config struct {
	// Source settings
	InputPath string // saved .evtx or incident .xml file; empty means live collection
	LogName   string // live event log channel to query
	MaxEvents int    // maximum number of recent events to collect

	// Filter settings (raw user-supplied expressions, parsed at Initialize)
	AllEvents        bool   // disable the important-only default
	EventIDs         string // comma-separated event ID allow-list
	Levels           string // comma-separated level allow-list
	HideSystemLogons bool   // drop 4624 logons for Local System (S-1-5-18)

	// Rule settings
	RuleFile string // optional YAML rule file merged over the built-in table

	// Export settings
	OutputPath string // export file path; empty disables export
	Format     string // export format (csv, jsonl, sqlite)

	// UI settings
	Verbose bool // enable verbose logging
	Silent  bool // disable all console output except errors
}

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		LogName:   "Security",
		MaxEvents: 500,
		Format:    "csv",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LogName == "" {
		c.LogName = "Security"
	}
	if c.MaxEvents <= 0 {
		c.MaxEvents = 500
	}

	c.Format = strings.ToLower(c.Format)
	validFormat := false
	for _, format := range SupportedFormats {
		if c.Format == format {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("%w: %s", output.ErrUnsupportedFormat, c.Format)
	}

	return nil
}
