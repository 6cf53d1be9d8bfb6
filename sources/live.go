package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"SecTriage/core"
	"SecTriage/internal/logger"
	"SecTriage/internal/retry"
)

// DefaultLogName is the audit channel queried when none is specified
const DefaultLogName = "Security"

// LiveSource reads the operating system's own event log channel. Only
// supported on Windows, where the channel file lives under the winevt
// directory; reading the Security channel requires elevated privileges.
type LiveSource struct {
	LogName string
}

// Name returns a human-readable label for logging
func (s *LiveSource) Name() string {
	return fmt.Sprintf("live log '%s'", s.logName())
}

func (s *LiveSource) logName() string {
	if s.LogName == "" {
		return DefaultLogName
	}
	return s.LogName
}

// Load reads at most max recent events from the live channel
func (s *LiveSource) Load(ctx context.Context, max int) ([]*core.SecurityEvent, error) {
	if runtime.GOOS != "windows" {
		return nil, fmt.Errorf("%w: live collection requires Windows", ErrSourceUnavailable)
	}

	path := s.channelPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s (run elevated to read the audit log)", ErrSourceUnavailable, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	logger.Debug("Reading live channel from %s", path)

	// The OS event log service keeps the channel file open for writing;
	// transient sharing violations are retried until the context is done.
	var events []*core.SecurityEvent
	err := retry.WithRetryContextConfig(ctx, "live event log read", retry.DefaultConfig, func() error {
		var loadErr error
		events, loadErr = (&EvtxSource{Path: path}).Load(ctx, max)
		return loadErr
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// channelPath resolves the on-disk file backing the configured channel
func (s *LiveSource) channelPath() string {
	systemRoot := os.Getenv("SystemRoot")
	if systemRoot == "" {
		systemRoot = `C:\Windows`
	}
	return filepath.Join(systemRoot, "System32", "winevt", "Logs", s.logName()+".evtx")
}
