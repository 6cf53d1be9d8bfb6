package sources

import (
	"context"
	"errors"
	"strings"

	"SecTriage/core"
)

// Common errors
var (
	// ErrSourceUnavailable means the event source could not be opened at
	// all (missing file, insufficient privilege, wrong platform).
	ErrSourceUnavailable = errors.New("event source unavailable")

	// ErrSourceMalformed means the source was opened but its content is
	// not well-formed structured data.
	ErrSourceMalformed = errors.New("event source malformed")
)

// Source defines the interface for all event source adapters. A source
// produces normalized events; field-level problems in individual records
// degrade to sentinel values, while source-level problems fail the load.
type Source interface {
	// Load reads at most max events (most recent first) when max > 0
	// and the source is bounded; file-based incident sources may
	// return the full document regardless. Cancelling the context
	// aborts the read.
	Load(ctx context.Context, max int) ([]*core.SecurityEvent, error)

	// Name returns a human-readable label for logging
	Name() string
}

// messageCleaner collapses line breaks inside event messages so every
// record serializes as a single line.
var messageCleaner = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func cleanMessage(s string) string {
	return strings.TrimSpace(messageCleaner.Replace(s))
}
