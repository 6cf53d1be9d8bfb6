package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"SecTriage/core"
	"SecTriage/internal/logger"
)

// IncidentXMLSource reads a crafted incident XML file: a root element whose
// children are <Event> elements with six named text fields. Used for demo
// mode and for replaying exported incidents offline.
type IncidentXMLSource struct {
	Path string
}

// incidentXMLEvent is the raw per-event shape of an incident file
type incidentXMLEvent struct {
	TimeCreated string `xml:"TimeCreated"`
	ID          string `xml:"Id"`
	Level       string `xml:"Level"`
	Provider    string `xml:"Provider"`
	MachineName string `xml:"MachineName"`
	Message     string `xml:"Message"`
}

// Name returns a human-readable label for logging
func (s *IncidentXMLSource) Name() string {
	return fmt.Sprintf("incident file %s", filepath.Base(s.Path))
}

// Load parses the incident file and returns normalized events. Missing or
// garbled fields within an event degrade to sentinel values; unparsable
// markup fails the whole load with ErrSourceMalformed. Incident files are
// finite documents, so max is ignored.
func (s *IncidentXMLSource) Load(ctx context.Context, max int) ([]*core.SecurityEvent, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer file.Close()

	events := make([]*core.SecurityEvent, 0, 64)
	decoder := xml.NewDecoder(file)
	fieldProblems := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, s.Path, err)
		}

		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Event" {
			continue
		}

		var raw incidentXMLEvent
		if err := decoder.DecodeElement(&raw, &se); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, s.Path, err)
		}

		event, degraded := s.normalize(&raw)
		if degraded {
			fieldProblems++
		}
		events = append(events, event)
	}

	if fieldProblems > 0 {
		logger.Debug("Incident file %s: %d events had unparsable fields replaced with sentinels", s.Path, fieldProblems)
	}
	logger.Info("Loaded %d event(s) from %s", len(events), s.Name())

	return events, nil
}

// normalize converts one raw incident event into the canonical record,
// reporting whether any field fell back to a sentinel.
func (s *IncidentXMLSource) normalize(raw *incidentXMLEvent) (*core.SecurityEvent, bool) {
	timestamp := core.ParseTimestamp(raw.TimeCreated)
	eventID := core.ParseEventID(raw.ID)
	level := core.NormalizeLevel(raw.Level)

	degraded := timestamp.Equal(core.SentinelTime) ||
		(eventID == 0 && raw.ID != "0") ||
		level == core.LevelUnknown

	event := core.NewSecurityEvent(
		timestamp,
		eventID,
		level,
		raw.Provider,
		raw.MachineName,
		cleanMessage(raw.Message),
	)
	return event, degraded
}
