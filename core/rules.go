package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// UncategorizedLabel is the category assigned to event IDs without a rule
const UncategorizedLabel = "Uncategorized"

// EventRule describes how to interpret a specific event ID
type EventRule struct {
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// EventRules maps Windows Security event IDs to their semantic category.
// The table is data, not logic: extend it here or merge an external rule
// file over it with LoadRuleFile.
var EventRules = map[int]EventRule{
	4624: {Category: "Logon success", Description: "An account was successfully logged on"},
	4625: {Category: "Logon failure", Description: "An account failed to log on"},
	4634: {Category: "Logoff", Description: "An account was logged off"},
	4647: {Category: "Logoff", Description: "User initiated logoff"},
	4672: {Category: "Privilege assigned", Description: "Special privileges assigned to new logon"},
	4688: {Category: "Process created", Description: "A new process has been created"},
	4689: {Category: "Process exited", Description: "A process has exited"},
	4720: {Category: "User account change", Description: "A user account was created"},
	4722: {Category: "User account change", Description: "A user account was enabled"},
	4723: {Category: "Password change attempt", Description: "An attempt was made to change an account's password"},
	4724: {Category: "Password change attempt", Description: "An attempt was made to reset an account's password"},
	4725: {Category: "User account change", Description: "A user account was disabled"},
	4726: {Category: "User account change", Description: "A user account was deleted"},
	4732: {Category: "Group membership change", Description: "A member was added to a security-enabled local group"},
	4733: {Category: "Group membership change", Description: "A member was removed from a security-enabled local group"},
	4768: {Category: "Kerberos authentication", Description: "A Kerberos authentication ticket (TGT) was requested"},
	4769: {Category: "Kerberos authentication", Description: "A Kerberos service ticket was requested"},
	4770: {Category: "Kerberos authentication", Description: "A Kerberos service ticket was renewed"},
	4771: {Category: "Kerberos authentication", Description: "Kerberos pre-authentication failed"},
	4798: {Category: "User enumeration", Description: "A user's local group membership was enumerated"},
	4799: {Category: "User enumeration", Description: "A security-enabled local group membership was enumerated"},
}

// ImportantEventIDs is the subset of event IDs surfaced by default when no
// explicit filter is active. Kept as a separate set so that adding a rule
// does not silently widen the default posture.
var ImportantEventIDs = map[int]struct{}{
	4624: {}, 4625: {}, 4634: {}, 4647: {}, 4672: {},
	4688: {}, 4689: {}, 4720: {}, 4722: {}, 4723: {},
	4724: {}, 4725: {}, 4726: {}, 4732: {}, 4733: {},
	4768: {}, 4769: {}, 4770: {}, 4771: {}, 4798: {}, 4799: {},
}

// Categorize returns the human-readable category for an event ID, or
// UncategorizedLabel when no rule matches. An unmatched ID is still a valid
// event, merely uncategorized.
func Categorize(eventID int) string {
	if rule, ok := EventRules[eventID]; ok {
		return rule.Category
	}
	return UncategorizedLabel
}

// IsImportant reports whether the event ID belongs to the default high-signal set
func IsImportant(eventID int) bool {
	_, ok := ImportantEventIDs[eventID]
	return ok
}

// ruleFileEntry is one rule in an external YAML rule file
type ruleFileEntry struct {
	EventID     int    `yaml:"event_id"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Important   bool   `yaml:"important"`
}

// LoadRuleFile merges rules from a YAML file over the built-in table. Each
// entry needs an event_id and a category; entries flagged important are added
// to the default set. Intended to run once at startup, before any pipeline run.
func LoadRuleFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rule file: %w", err)
	}

	var entries []ruleFileEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse rule file %s: %w", path, err)
	}

	for i, entry := range entries {
		if entry.EventID <= 0 {
			return fmt.Errorf("rule file %s: entry %d has invalid event_id %d", path, i, entry.EventID)
		}
		if entry.Category == "" {
			return fmt.Errorf("rule file %s: entry %d (event %d) has no category", path, i, entry.EventID)
		}
		EventRules[entry.EventID] = EventRule{
			Category:    entry.Category,
			Description: entry.Description,
		}
		if entry.Important {
			ImportantEventIDs[entry.EventID] = struct{}{}
		}
	}

	return nil
}
