package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"SecTriage/app"
	"SecTriage/cli"
	"SecTriage/core"
	"SecTriage/internal/logger"
	"SecTriage/internal/logrotate"
	"SecTriage/pipeline"
	"SecTriage/sources"
)

// Exit codes
const (
	ExitSuccess     = 0
	ExitErrorConfig = 1
	ExitErrorFilter = 2
	ExitErrorSource = 3
	ExitErrorExport = 4
)

// Logging flags (the collection flags live in the cli package)
var (
	logFile       = flag.String("log-file", "", "Path to log file (if empty, logs to stdout)")
	logMaxSize    = flag.Int("log-max-size", 50, "Maximum size of log file in megabytes before rotation")
	logMaxAge     = flag.Int("log-max-age", 7, "Maximum age of log file in days before rotation")
	logMaxBackups = flag.Int("log-max-backups", 3, "Maximum number of old log files to retain")
	logCompress   = flag.Bool("log-compress", true, "Compress rotated log files")
)

func main() {
	os.Exit(run())
}

func run() int {
	config, err := cli.ParseFlags()
	if err != nil {
		logger.Error("Invalid arguments: %v", err)
		cli.PrintUsage()
		return ExitErrorConfig
	}

	closeLog := initLogger(config.Verbose, config.Silent)
	defer closeLog()

	application := app.New(cli.ConfigToAppConfig(config))
	if err := application.Initialize(); err != nil {
		if errors.Is(err, core.ErrInvalidFilter) {
			logger.Error("%v", err)
			return ExitErrorFilter
		}
		logger.Error("Invalid configuration: %v", err)
		return ExitErrorConfig
	}
	defer func() {
		if err := application.Cleanup(); err != nil {
			logger.Error("Failed to finalize export: %v", err)
		}
	}()

	// Set up signal handling so an interrupt cancels the collection
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		logger.Info("Received interrupt signal, shutting down...")
		cancel()
	}()

	status, err := application.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Collection was interrupted")
			return ExitErrorSource
		}
		if errors.Is(err, sources.ErrSourceUnavailable) || errors.Is(err, sources.ErrSourceMalformed) {
			logger.Error("%v", err)
			return ExitErrorSource
		}
		logger.Error("%v", err)
		return ExitErrorExport
	}

	if status.EventCount == 0 {
		logger.Warn("No events found with the current filters")
	} else {
		logger.Info("Collected %d event(s) in %d ms", status.EventCount, status.DurationMs)
	}

	printSummary(application.Events())
	return ExitSuccess
}

// initLogger sets up logging, routing through the rotating file writer when
// a log file is configured. Returns a closer for the rotation writer.
func initLogger(verbose, silent bool) func() {
	logger.Init(verbose, silent)

	if *logFile == "" {
		return func() {}
	}

	rotatingWriter := logrotate.NewWriter(*logFile, logrotate.Config{
		MaxSize:    *logMaxSize,
		MaxAge:     *logMaxAge,
		MaxBackups: *logMaxBackups,
		Compress:   *logCompress,
		LocalTime:  true,
	})
	logger.SetOutput(logrotate.MultiWriter(os.Stdout, rotatingWriter))

	return func() {
		if err := rotatingWriter.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}
}

// printSummary prints event totals per category, most frequent first
func printSummary(events []*core.SecurityEvent) {
	if len(events) == 0 || logger.IsSilent() {
		return
	}

	summary := pipeline.Summarize(events)
	categories := make([]string, 0, len(summary.ByCategory))
	for category := range summary.ByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		ci, cj := summary.ByCategory[categories[i]], summary.ByCategory[categories[j]]
		if ci != cj {
			return ci > cj
		}
		return categories[i] < categories[j]
	})

	writeSummary(os.Stdout, summary, categories)
}

func writeSummary(w io.Writer, summary pipeline.Summary, categories []string) {
	fmt.Fprintf(w, "Summary\n")
	fmt.Fprintf(w, "Total events: %d\n", summary.Total)
	for _, category := range categories {
		fmt.Fprintf(w, "- %s: %d\n", category, summary.ByCategory[category])
	}
}
