package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"SecTriage/core"
	"SecTriage/internal/logger"
	"SecTriage/output"
	"SecTriage/pipeline"
	"SecTriage/sources"
)

// RunStatus represents the outcome of a collection run
type RunStatus struct {
	Status     string `json:"status"`
	EventCount int    `json:"event_count"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// App represents the SecTriage application
type App struct {
	Config   *Config
	criteria core.Criteria
	source   sources.Source
	writer   output.Writer
	events   []*core.SecurityEvent
}

// New creates a new application instance
func New(config *Config) *App {
	return &App{Config: config}
}

// Initialize validates the configuration, parses the user-supplied filter
// expressions and wires up the source adapter and export writer. A bad
// filter expression fails here, before anything is read.
func (a *App) Initialize() error {
	logger.Init(a.Config.Verbose, a.Config.Silent)

	if err := a.Config.Validate(); err != nil {
		return err
	}

	if a.Config.RuleFile != "" {
		if err := core.LoadRuleFile(a.Config.RuleFile); err != nil {
			return err
		}
		logger.Info("Merged rule file %s over the built-in table", a.Config.RuleFile)
	}

	criteria, err := buildCriteria(a.Config)
	if err != nil {
		return err
	}
	a.criteria = criteria

	a.source, err = sourceFor(a.Config)
	if err != nil {
		return err
	}

	if a.Config.OutputPath != "" {
		a.writer, err = output.GetWriter(a.Config.Format, a.Config.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create export writer: %w", err)
		}
	}

	return nil
}

// Run executes one collection run: bounded read, normalize, filter, export.
// Cancelling the context aborts the read.
func (a *App) Run(ctx context.Context) (*RunStatus, error) {
	startTime := time.Now()
	logger.Info("Collecting events from %s...", a.source.Name())

	events, err := pipeline.Run(ctx, a.source, a.criteria, a.Config.MaxEvents)
	if err != nil {
		return &RunStatus{
			Status:     "failed",
			DurationMs: time.Since(startTime).Milliseconds(),
			Error:      err.Error(),
		}, err
	}
	a.events = events

	if a.writer != nil {
		if err := a.writer.Write(events); err != nil {
			return &RunStatus{
				Status:     "failed",
				EventCount: len(events),
				DurationMs: time.Since(startTime).Milliseconds(),
				Error:      err.Error(),
			}, fmt.Errorf("%w: %v", ErrRunFailed, err)
		}
		logger.Info("Exported %d event(s) to %s", len(events), a.Config.OutputPath)
	}

	return &RunStatus{
		Status:     "completed",
		EventCount: len(events),
		DurationMs: time.Since(startTime).Milliseconds(),
	}, nil
}

// Events returns the result of the last run
func (a *App) Events() []*core.SecurityEvent {
	return a.events
}

// Cleanup releases the export writer
func (a *App) Cleanup() error {
	if a.writer == nil {
		return nil
	}
	return a.writer.Close()
}

// buildCriteria parses the raw filter expressions into filter criteria
func buildCriteria(config *Config) (core.Criteria, error) {
	criteria := core.Criteria{
		AllEvents:        config.AllEvents,
		HideSystemLogons: config.HideSystemLogons,
	}

	if config.EventIDs != "" {
		ids, err := core.ParseEventIDList(config.EventIDs)
		if err != nil {
			return core.Criteria{}, err
		}
		criteria.EventIDs = ids
	}

	if config.Levels != "" {
		levels, err := core.ParseLevelList(config.Levels)
		if err != nil {
			return core.Criteria{}, err
		}
		criteria.Levels = levels
	}

	return criteria, nil
}

// sourceFor selects the source adapter: a saved event log or incident file
// by extension, or the live channel when no input path is given
func sourceFor(config *Config) (sources.Source, error) {
	if config.InputPath == "" {
		return &sources.LiveSource{LogName: config.LogName}, nil
	}

	if _, err := os.Stat(config.InputPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch strings.ToLower(filepath.Ext(config.InputPath)) {
	case ".evtx":
		return &sources.EvtxSource{Path: config.InputPath}, nil
	case ".xml":
		return &sources.IncidentXMLSource{Path: config.InputPath}, nil
	}
	return nil, fmt.Errorf("%w: %s is not a .evtx or .xml file", ErrInvalidInput, config.InputPath)
}
