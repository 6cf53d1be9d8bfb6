package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFilter indicates a user-supplied filter expression that could not
// be parsed. Unlike malformed event data, which degrades to sentinel values,
// bad filter syntax is a hard failure before the pipeline runs.
var ErrInvalidFilter = errors.New("invalid filter expression")

// timestampFormats are the layouts accepted for textual event timestamps
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.9999999Z",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses an ISO 8601 timestamp string into a UTC time.
// Missing or unparsable input yields SentinelTime, never an error: a bad
// timestamp must not abort normalization of the whole batch.
func ParseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SentinelTime
	}
	for _, format := range timestampFormats {
		if parsed, err := time.Parse(format, raw); err == nil {
			return parsed.UTC()
		}
	}
	return SentinelTime
}

// ParseEventID parses a numeric event identifier from text. Surrounding
// whitespace is ignored; anything non-numeric or negative yields 0.
func ParseEventID(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// NormalizeLevel maps a raw level name onto the closed Level set. Matching is
// case-insensitive and accepts common aliases as well as numeric Windows
// level codes rendered as text. Anything unrecognized maps to LevelUnknown.
func NormalizeLevel(raw string) Level {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "information", "info", "informational", "audit success":
		return LevelInformation
	case "warning", "warn", "audit failure":
		return LevelWarning
	case "error", "err":
		return LevelError
	case "critical", "crit", "fatal":
		return LevelCritical
	case "verbose", "debug", "trace":
		return LevelVerbose
	}
	if code, err := strconv.Atoi(value); err == nil {
		return NormalizeLevelCode(code)
	}
	return LevelUnknown
}

// NormalizeLevelCode maps a numeric Windows event level code onto the closed
// Level set. Code 0 (LogAlways) is treated as Information.
func NormalizeLevelCode(code int) Level {
	switch code {
	case 0, 4:
		return LevelInformation
	case 1:
		return LevelCritical
	case 2:
		return LevelError
	case 3:
		return LevelWarning
	case 5:
		return LevelVerbose
	}
	return LevelUnknown
}

// ParseEventIDList parses a comma-separated list of event IDs into a set.
// Blank tokens are ignored; a non-numeric token fails with ErrInvalidFilter.
// An empty result means "no restriction".
func ParseEventIDList(text string) (map[int]struct{}, error) {
	ids := make(map[int]struct{})
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%w: event ID %q is not a non-negative integer", ErrInvalidFilter, token)
		}
		ids[id] = struct{}{}
	}
	return ids, nil
}

// ParseLevelList parses a comma-separated list of level names into a set of
// canonical levels, deduplicating aliases. Blank tokens are ignored; a token
// that does not name a known level fails with ErrInvalidFilter.
func ParseLevelList(text string) (map[Level]struct{}, error) {
	levels := make(map[Level]struct{})
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		level := NormalizeLevel(token)
		if level == LevelUnknown {
			return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidFilter, token)
		}
		levels[level] = struct{}{}
	}
	return levels, nil
}
