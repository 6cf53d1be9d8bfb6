package core

import (
	"strings"
)

// localSystemSID marks 4624 logons performed by the Local System account
const localSystemSID = "s-1-5-18"

// Criteria describes which normalized events a run should keep. Zero value
// means the default posture: important event IDs only.
type Criteria struct {
	// EventIDs restricts results to these event IDs when non-empty.
	// An explicit ID filter disables the important-only default.
	EventIDs map[int]struct{}

	// Levels restricts results to these normalized levels when non-empty.
	// An explicit level filter disables the important-only default.
	Levels map[Level]struct{}

	// AllEvents opts out of the important-only default without
	// supplying an explicit filter.
	AllEvents bool

	// HideSystemLogons drops 4624 logon events attributed to the
	// Local System account (S-1-5-18), a high-volume benign pattern.
	HideSystemLogons bool
}

// importantOnly reports whether the default posture applies: no explicit
// filter configured and all-events not requested.
func (c Criteria) importantOnly() bool {
	return len(c.EventIDs) == 0 && len(c.Levels) == 0 && !c.AllEvents
}

// Match reports whether a single event passes the criteria
func (c Criteria) Match(event *SecurityEvent) bool {
	if c.HideSystemLogons && event.EventID == 4624 &&
		strings.Contains(strings.ToLower(event.Message), localSystemSID) {
		return false
	}
	if len(c.EventIDs) > 0 {
		if _, ok := c.EventIDs[event.EventID]; !ok {
			return false
		}
	}
	if len(c.Levels) > 0 {
		if _, ok := c.Levels[event.Level]; !ok {
			return false
		}
	}
	if c.importantOnly() && !IsImportant(event.EventID) {
		return false
	}
	return true
}

// Filter applies the criteria over a sequence of events, preserving order.
// It is a pure predicate: filtering an already-filtered sequence with the
// same criteria returns an identical sequence.
func Filter(events []*SecurityEvent, criteria Criteria) []*SecurityEvent {
	filtered := make([]*SecurityEvent, 0, len(events))
	for _, event := range events {
		if criteria.Match(event) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
