package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDemoPath is the crafted incident file used by demo mode, relative
// to the working directory. Used when no demo bundle ships next to the
// binary, e.g. when running from the source tree.
const DefaultDemoPath = "demo/incident.xml"

// DemoIncidentPath resolves the bundled demo incident. The demo directory
// ships alongside the binary, so the executable's own directory is checked
// first; the working directory is the fallback.
func DemoIncidentPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultDemoPath
	}
	bundled := filepath.Join(filepath.Dir(exe), "demo", "incident.xml")
	if _, err := os.Stat(bundled); err == nil {
		return bundled
	}
	return DefaultDemoPath
}

// Config holds the command-line configuration for SecTriage
type Config struct {
	LogName          string // live event log channel to query
	InputPath        string // saved .evtx or incident .xml file
	Demo             bool   // use the bundled demo incident instead of live collection
	MaxEvents        int    // maximum number of recent events to collect
	AllEvents        bool   // show all events instead of only important ones
	EventIDs         string // comma-separated event ID allow-list
	Levels           string // comma-separated level allow-list
	HideSystemLogons bool   // hide 4624 logons for Local System (S-1-5-18)
	RuleFile         string // optional YAML rule file
	OutputPath       string // export file path
	Format           string // export format (csv, jsonl, sqlite)
	Verbose          bool   // enable verbose logging
	Silent           bool   // disable all console output except errors
}

// ParseFlags parses command-line flags and returns a Config
func ParseFlags() (*Config, error) {
	config := &Config{}

	flag.StringVar(&config.LogName, "log-name", "Security", "Event log channel to query (default: Security)")
	flag.StringVar(&config.InputPath, "input", "", "Path to a saved .evtx or incident .xml file instead of live collection")
	flag.BoolVar(&config.Demo, "demo", false, "Use the bundled demo incident instead of live collection")
	flag.IntVar(&config.MaxEvents, "max-events", 500, "Maximum number of recent events to collect")
	flag.BoolVar(&config.AllEvents, "all-events", false, "Show all events instead of only important security events")
	flag.StringVar(&config.EventIDs, "event-ids", "", "Comma-separated event IDs to include (overrides the default important set)")
	flag.StringVar(&config.Levels, "levels", "", "Comma-separated levels to include (verbose,information,warning,error,critical)")
	flag.BoolVar(&config.HideSystemLogons, "hide-system-logons", false, "Hide 4624 logons for Local System (S-1-5-18)")
	flag.StringVar(&config.RuleFile, "rules", "", "YAML rule file merged over the built-in rule table")
	flag.StringVar(&config.OutputPath, "output", "", "Path to export filtered events")
	flag.StringVar(&config.Format, "format", "csv", "Export format (csv, jsonl, sqlite)")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&config.Silent, "silent", false, "Disable all console output except errors")

	flag.Parse()

	if config.Demo && config.InputPath != "" {
		return nil, fmt.Errorf("--demo and --input are mutually exclusive")
	}

	if config.MaxEvents <= 0 {
		config.MaxEvents = 500
	}

	config.Format = strings.ToLower(config.Format)

	return config, nil
}

// PrintUsage prints the usage information for SecTriage
func PrintUsage() {
	fmt.Fprintf(os.Stderr, "SecTriage - security audit log triage\n\n")
	fmt.Fprintf(os.Stderr, "Usage: sectriage [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
