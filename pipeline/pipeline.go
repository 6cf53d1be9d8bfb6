package pipeline

import (
	"context"
	"fmt"
	"sort"

	"SecTriage/core"
	"SecTriage/internal/logger"
	"SecTriage/sources"
)

// DefaultMaxEvents bounds a live read when the caller does not set a limit
const DefaultMaxEvents = 500

// Run pulls raw records from the source, normalizes and filters them, and
// returns the final sequence, newest first. One run performs one bounded
// read; zero results is a valid empty slice, while a source failure or a
// cancelled context propagates with no partial output.
func Run(ctx context.Context, source sources.Source, criteria core.Criteria, maxEvents int) ([]*core.SecurityEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}

	events, err := source.Load(ctx, maxEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", source.Name(), err)
	}

	filtered := core.Filter(events, criteria)
	sort.Sort(core.Events(filtered))

	logger.Debug("Pipeline kept %d of %d event(s) from %s", len(filtered), len(events), source.Name())
	return filtered, nil
}

// Summary aggregates a filtered result for presentation
type Summary struct {
	Total      int
	ByCategory map[string]int
}

// Summarize counts the events per category
func Summarize(events []*core.SecurityEvent) Summary {
	summary := Summary{
		Total:      len(events),
		ByCategory: make(map[string]int),
	}
	for _, event := range events {
		summary.ByCategory[event.Category]++
	}
	return summary
}
