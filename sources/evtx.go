package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/0xrawsec/golang-evtx/evtx"

	"SecTriage/core"
	"SecTriage/internal/logger"
)

// Local path definitions for EVTX elements not in the library
var (
	computerPath = evtx.Path("/Event/System/Computer")
	providerPath = evtx.Path("/Event/System/Provider/Name")
	levelPath    = evtx.Path("/Event/System/Level")

	// Security event data fields worth surfacing in the message. SIDs are
	// included so the Local System logon suppression can see them.
	messageDataPaths = []struct {
		name string
		path evtx.GoEvtxPath
	}{
		{"SubjectUserSid", evtx.Path("/Event/EventData/SubjectUserSid")},
		{"SubjectUserName", evtx.Path("/Event/EventData/SubjectUserName")},
		{"TargetUserSid", evtx.Path("/Event/EventData/TargetUserSid")},
		{"TargetUserName", evtx.Path("/Event/EventData/TargetUserName")},
		{"TargetDomainName", evtx.Path("/Event/EventData/TargetDomainName")},
		{"LogonType", evtx.Path("/Event/EventData/LogonType")},
		{"IpAddress", evtx.Path("/Event/EventData/IpAddress")},
		{"ProcessName", evtx.Path("/Event/EventData/NewProcessName")},
	}
)

// EvtxSource reads events from a binary Windows event log (.evtx) file
type EvtxSource struct {
	Path string
}

// Name returns a human-readable label for logging
func (s *EvtxSource) Name() string {
	return fmt.Sprintf("event log %s", filepath.Base(s.Path))
}

// Load parses the EVTX file and returns normalized events, newest first,
// truncated to max when max > 0.
func (s *EvtxSource) Load(ctx context.Context, max int) ([]*core.SecurityEvent, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer file.Close()

	ef, err := evtx.New(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, s.Path, err)
	}

	events := make([]*core.SecurityEvent, 0, 512)
	for e := range ef.FastEvents() {
		// Keep draining after cancellation so the producing goroutine
		// can finish; conversion stops immediately.
		if ctx.Err() != nil {
			continue
		}
		if event := s.convert(e); event != nil {
			events = append(events, event)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The file is chronological; the bound keeps the most recent records
	sort.Sort(core.Events(events))
	if max > 0 && len(events) > max {
		events = events[:max]
	}

	logger.Info("Loaded %d event(s) from %s", len(events), s.Name())
	return events, nil
}

// convert turns one parsed EVTX record into the canonical event shape.
// Field-level extraction failures degrade to sentinel values.
func (s *EvtxSource) convert(e *evtx.GoEvtxMap) *core.SecurityEvent {
	if e == nil {
		return nil
	}

	timestamp := core.SentinelTime
	if systemTime, err := e.GetTime(&evtx.SystemTimePath); err == nil {
		timestamp = systemTime.UTC()
	}

	eventID := 0
	if eid, err := e.GetInt(&evtx.EventIDPath); err == nil {
		// Legacy records pack qualifier bits into the high word
		eventID = int(eid) & 0xFFFF
	}

	level := core.LevelUnknown
	if code, err := e.GetInt(&levelPath); err == nil {
		level = core.NormalizeLevelCode(int(code))
	} else if name, err := e.GetString(&levelPath); err == nil {
		level = core.NormalizeLevel(name)
	}
	if level == core.LevelUnknown {
		// Security channel records carry audit keywords instead of a level
		level = core.LevelInformation
	}

	provider := ""
	if name, err := e.GetString(&providerPath); err == nil {
		provider = name
	}

	machine := ""
	if computer, err := e.GetString(&computerPath); err == nil {
		machine = computer
	}

	return core.NewSecurityEvent(
		timestamp,
		eventID,
		level,
		provider,
		machine,
		s.buildMessage(e),
	)
}

// buildMessage renders a single-line message from the event data fields
func (s *EvtxSource) buildMessage(e *evtx.GoEvtxMap) string {
	parts := make([]string, 0, len(messageDataPaths))
	for _, field := range messageDataPaths {
		if value, err := e.GetString(&field.path); err == nil {
			value = cleanMessage(value)
			if value != "" && value != "-" {
				parts = append(parts, fmt.Sprintf("%s=%s", field.name, value))
			}
		}
	}
	return strings.Join(parts, " ")
}
