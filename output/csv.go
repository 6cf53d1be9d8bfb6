package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"SecTriage/core"
)

// CSVWriter implements the Writer interface for CSV output
type CSVWriter struct {
	mu        sync.Mutex
	file      *os.File
	bufWriter *bufio.Writer
	writer    *csv.Writer
}

// NewCSVWriter creates a new CSV writer
func NewCSVWriter(outputPath string) (*CSVWriter, error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	bufWriter := bufio.NewWriterSize(file, 64*1024)
	writer := csv.NewWriter(bufWriter)

	header := []string{
		"timestamp",
		"event_id",
		"level",
		"provider",
		"machine",
		"category",
		"message",
	}

	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return &CSVWriter{
		file:      file,
		bufWriter: bufWriter,
		writer:    writer,
	}, nil
}

// Write writes the events to the CSV file
func (w *CSVWriter) Write(events []*core.SecurityEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, event := range events {
		record := []string{
			event.Timestamp.Format(time.RFC3339),
			strconv.Itoa(event.EventID),
			string(event.Level),
			event.Provider,
			event.Machine,
			event.Category,
			event.Message,
		}

		if err := w.writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return nil
}

// Close closes the CSV writer
func (w *CSVWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	if err := w.bufWriter.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return w.file.Close()
}
