package output

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"SecTriage/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONLWriter implements the Writer interface for JSON Lines output
type JSONLWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
}

// NewJSONLWriter creates a new JSON Lines writer
func NewJSONLWriter(outputPath string) (*JSONLWriter, error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSONL file: %w", err)
	}

	return &JSONLWriter{
		file:   file,
		writer: bufio.NewWriterSize(file, 64*1024),
	}, nil
}

// Write writes the events to the JSON Lines file
func (w *JSONLWriter) Write(events []*core.SecurityEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, event := range events {
		line, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode event to JSON: %w", err)
		}
		if _, err := w.writer.Write(line); err != nil {
			return fmt.Errorf("%w: %v", ErrWritingFailed, err)
		}
		if err := w.writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %v", ErrWritingFailed, err)
		}
	}

	return nil
}

// Close closes the JSON Lines writer
func (w *JSONLWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush JSONL writer: %w", err)
	}

	return w.file.Close()
}
