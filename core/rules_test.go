package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		eventID int
		want    string
	}{
		{4624, "Logon success"},
		{4625, "Logon failure"},
		{4688, "Process created"},
		{4720, "User account change"},
		{4771, "Kerberos authentication"},
		{5000, UncategorizedLabel},
		{0, UncategorizedLabel},
	}

	for _, tt := range tests {
		if got := Categorize(tt.eventID); got != tt.want {
			t.Errorf("Categorize(%d) = %q, want %q", tt.eventID, got, tt.want)
		}
	}
}

func TestIsImportant(t *testing.T) {
	if !IsImportant(4625) {
		t.Error("4625 should be important")
	}
	if IsImportant(1000) {
		t.Error("1000 should not be important")
	}
}

func TestRuleTableUniquePerID(t *testing.T) {
	// Every important ID without a rule would silently surface as
	// Uncategorized in the default posture; keep the sets consistent.
	for id := range ImportantEventIDs {
		if _, ok := EventRules[id]; !ok {
			t.Errorf("important ID %d has no rule table entry", id)
		}
	}
}

func TestLoadRuleFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("merges entries over the built-in table", func(t *testing.T) {
		path := filepath.Join(tempDir, "rules.yaml")
		content := `
- event_id: 9001
  category: "Test category"
  description: "A test rule"
  important: true
- event_id: 4624
  category: "Overridden logon"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write rule file: %v", err)
		}

		defer func() {
			delete(EventRules, 9001)
			delete(ImportantEventIDs, 9001)
			EventRules[4624] = EventRule{
				Category:    "Logon success",
				Description: "An account was successfully logged on",
			}
		}()

		if err := LoadRuleFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := Categorize(9001); got != "Test category" {
			t.Errorf("Categorize(9001) = %q, want %q", got, "Test category")
		}
		if !IsImportant(9001) {
			t.Error("9001 should have been added to the important set")
		}
		if got := Categorize(4624); got != "Overridden logon" {
			t.Errorf("Categorize(4624) = %q, want %q", got, "Overridden logon")
		}
	})

	t.Run("rejects entries without a category", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad.yaml")
		if err := os.WriteFile(path, []byte("- event_id: 9002\n"), 0644); err != nil {
			t.Fatalf("failed to write rule file: %v", err)
		}
		if err := LoadRuleFile(path); err == nil {
			t.Fatal("expected an error for an entry without a category")
		}
	})

	t.Run("rejects unparsable YAML", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("{not yaml: ["), 0644); err != nil {
			t.Fatalf("failed to write rule file: %v", err)
		}
		if err := LoadRuleFile(path); err == nil {
			t.Fatal("expected an error for unparsable YAML")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := LoadRuleFile(filepath.Join(tempDir, "nope.yaml")); err == nil {
			t.Fatal("expected an error for a missing file")
		}
	})
}
