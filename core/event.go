package core

import (
	"time"
)

// Level is the normalized severity of a security event. It is a closed set:
// every SecurityEvent carries exactly one of the constants below.
type Level string

// Canonical levels, named after the Windows display names
const (
	LevelInformation Level = "Information"
	LevelWarning     Level = "Warning"
	LevelError       Level = "Error"
	LevelCritical    Level = "Critical"
	LevelVerbose     Level = "Verbose"
	LevelUnknown     Level = "Unknown"
)

// Rank returns the position of the level in the severity ordering:
// Critical > Error > Warning > Information > Verbose > Unknown.
func (l Level) Rank() int {
	switch l {
	case LevelCritical:
		return 5
	case LevelError:
		return 4
	case LevelWarning:
		return 3
	case LevelInformation:
		return 2
	case LevelVerbose:
		return 1
	}
	return 0
}

// SentinelTime is the timestamp assigned to events whose creation time is
// missing or unparsable (Unix epoch, UTC).
var SentinelTime = time.Unix(0, 0).UTC()

// SecurityEvent represents a normalized security audit event. Instances are
// immutable after construction; Category is derived once from the rule table.
type SecurityEvent struct {
	Timestamp time.Time `json:"timestamp"`
	EventID   int       `json:"event_id"`
	Level     Level     `json:"level"`
	Provider  string    `json:"provider"`
	Machine   string    `json:"machine"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
}

// NewSecurityEvent creates a normalized security event. Every source adapter
// terminates in this constructor so that equal raw field values yield the
// same event ID, level and category regardless of the source format.
func NewSecurityEvent(
	timestamp time.Time,
	eventID int,
	level Level,
	provider string,
	machine string,
	message string,
) *SecurityEvent {
	return &SecurityEvent{
		Timestamp: timestamp,
		EventID:   eventID,
		Level:     level,
		Provider:  provider,
		Machine:   machine,
		Message:   message,
		Category:  Categorize(eventID),
	}
}

// Events is a slice of SecurityEvent pointers sortable newest-first
type Events []*SecurityEvent

// Implement sort.Interface for Events
func (e Events) Len() int           { return len(e) }
func (e Events) Less(i, j int) bool { return e[i].Timestamp.After(e[j].Timestamp) }
func (e Events) Swap(i, j int)      { e[i], e[j] = e[j], e[i] }
