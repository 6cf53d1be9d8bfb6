package core

import (
	"sort"
	"testing"
	"time"
)

func TestLevelRankOrdering(t *testing.T) {
	// Critical > Error > Warning > Information > Verbose > Unknown
	ordered := []Level{LevelCritical, LevelError, LevelWarning, LevelInformation, LevelVerbose, LevelUnknown}
	for i := 0; i < len(ordered)-1; i++ {
		if ordered[i].Rank() <= ordered[i+1].Rank() {
			t.Errorf("expected %s (rank %d) above %s (rank %d)",
				ordered[i], ordered[i].Rank(), ordered[i+1], ordered[i+1].Rank())
		}
	}
}

func TestNewSecurityEventDerivesCategory(t *testing.T) {
	event := NewSecurityEvent(time.Now().UTC(), 4625, LevelWarning, "provider", "host", "message")
	if event.Category != "Logon failure" {
		t.Errorf("got category %q, want %q", event.Category, "Logon failure")
	}

	other := NewSecurityEvent(time.Now().UTC(), 31337, LevelInformation, "", "", "")
	if other.Category != UncategorizedLabel {
		t.Errorf("got category %q, want %q", other.Category, UncategorizedLabel)
	}
}

func TestEventsSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
	events := Events{
		NewSecurityEvent(base, 4624, LevelInformation, "", "", "first"),
		NewSecurityEvent(base.Add(2*time.Minute), 4624, LevelInformation, "", "", "third"),
		NewSecurityEvent(base.Add(time.Minute), 4624, LevelInformation, "", "", "second"),
	}

	sort.Sort(events)

	want := []string{"third", "second", "first"}
	for i, msg := range want {
		if events[i].Message != msg {
			t.Errorf("position %d: got %q, want %q", i, events[i].Message, msg)
		}
	}
}
