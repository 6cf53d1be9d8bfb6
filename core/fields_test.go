package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "RFC3339 UTC",
			raw:  "2025-11-03T08:21:45Z",
			want: time.Date(2025, 11, 3, 8, 21, 45, 0, time.UTC),
		},
		{
			name: "RFC3339 with offset is converted to UTC",
			raw:  "2025-11-03T10:21:45+02:00",
			want: time.Date(2025, 11, 3, 8, 21, 45, 0, time.UTC),
		},
		{
			name: "Windows seven-digit fraction",
			raw:  "2025-11-03T08:21:45.1234567Z",
			want: time.Date(2025, 11, 3, 8, 21, 45, 123456700, time.UTC),
		},
		{
			name: "no zone designator",
			raw:  "2025-11-03T08:21:45",
			want: time.Date(2025, 11, 3, 8, 21, 45, 0, time.UTC),
		},
		{
			name: "empty input yields sentinel",
			raw:  "",
			want: SentinelTime,
		},
		{
			name: "garbled input yields sentinel",
			raw:  "last tuesday-ish",
			want: SentinelTime,
		},
		{
			name: "whitespace only yields sentinel",
			raw:  "   ",
			want: SentinelTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.raw)
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseEventID(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"4624", 4624},
		{" 4625 ", 4625},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"46.24", 0},
	}

	for _, tt := range tests {
		if got := ParseEventID(tt.raw); got != tt.want {
			t.Errorf("ParseEventID(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want Level
	}{
		{"Information", LevelInformation},
		{"INFO", LevelInformation},
		{"informational", LevelInformation},
		{"Audit Success", LevelInformation},
		{"Warning", LevelWarning},
		{"WARN", LevelWarning},
		{"audit failure", LevelWarning},
		{"Error", LevelError},
		{"err", LevelError},
		{"CRITICAL", LevelCritical},
		{"fatal", LevelCritical},
		{"Verbose", LevelVerbose},
		{"debug", LevelVerbose},
		{"trace", LevelVerbose},
		{"  Warning  ", LevelWarning},
		{"4", LevelInformation},
		{"1", LevelCritical},
		{"2", LevelError},
		{"3", LevelWarning},
		{"5", LevelVerbose},
		{"0", LevelInformation},
		{"99", LevelUnknown},
		{"banana", LevelUnknown},
		{"", LevelUnknown},
	}

	for _, tt := range tests {
		if got := NormalizeLevel(tt.raw); got != tt.want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeLevelCode(t *testing.T) {
	tests := []struct {
		code int
		want Level
	}{
		{0, LevelInformation},
		{1, LevelCritical},
		{2, LevelError},
		{3, LevelWarning},
		{4, LevelInformation},
		{5, LevelVerbose},
		{6, LevelUnknown},
		{-1, LevelUnknown},
	}

	for _, tt := range tests {
		if got := NormalizeLevelCode(tt.code); got != tt.want {
			t.Errorf("NormalizeLevelCode(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestParseEventIDList(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ids, err := ParseEventIDList("4624,4625,4688")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int{4624, 4625, 4688}
		if len(ids) != len(want) {
			t.Fatalf("got %d IDs, want %d", len(ids), len(want))
		}
		for _, id := range want {
			if _, ok := ids[id]; !ok {
				t.Errorf("missing ID %d", id)
			}
		}
	})

	t.Run("blank tokens are ignored", func(t *testing.T) {
		ids, err := ParseEventIDList("4624,,4625")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 {
			t.Fatalf("got %d IDs, want 2", len(ids))
		}
	})

	t.Run("non-numeric token fails", func(t *testing.T) {
		_, err := ParseEventIDList("abc")
		if !errors.Is(err, ErrInvalidFilter) {
			t.Fatalf("got %v, want ErrInvalidFilter", err)
		}
	})

	t.Run("negative ID fails", func(t *testing.T) {
		_, err := ParseEventIDList("4624,-1")
		if !errors.Is(err, ErrInvalidFilter) {
			t.Fatalf("got %v, want ErrInvalidFilter", err)
		}
	})

	t.Run("empty input means no restriction", func(t *testing.T) {
		ids, err := ParseEventIDList("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 0 {
			t.Fatalf("got %d IDs, want 0", len(ids))
		}
	})
}

func TestParseLevelList(t *testing.T) {
	t.Run("normalizes and deduplicates", func(t *testing.T) {
		levels, err := ParseLevelList("INFO, warning,Information")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(levels) != 2 {
			t.Fatalf("got %d levels, want 2", len(levels))
		}
		if _, ok := levels[LevelInformation]; !ok {
			t.Error("missing Information")
		}
		if _, ok := levels[LevelWarning]; !ok {
			t.Error("missing Warning")
		}
	})

	t.Run("unknown level fails", func(t *testing.T) {
		_, err := ParseLevelList("warning,loud")
		if !errors.Is(err, ErrInvalidFilter) {
			t.Fatalf("got %v, want ErrInvalidFilter", err)
		}
	})
}
