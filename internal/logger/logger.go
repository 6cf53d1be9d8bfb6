package logger

import (
	"io"
	"log"
	"os"
)

var (
	// Default logger; usable before Init so that library code can log
	defaultLogger = log.New(os.Stdout, "", log.LstdFlags)

	// Verbose mode
	verbose bool

	// Silent mode
	silent bool
)

// Init initializes the logger
func Init(verboseMode bool, silentMode bool) {
	verbose = verboseMode
	silent = silentMode

	defaultLogger = log.New(os.Stdout, "", log.LstdFlags)

	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags)
}

// SetOutput sets the output destination for the logger
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
	log.SetOutput(w)
}

// Info logs an informational message
func Info(format string, v ...interface{}) {
	if !silent {
		defaultLogger.Printf("[INFO] "+format, v...)
	}
}

// Debug logs a debug message (only in verbose mode)
func Debug(format string, v ...interface{}) {
	if verbose && !silent {
		defaultLogger.Printf("[DEBUG] "+format, v...)
	}
}

// Warn logs a warning message
func Warn(format string, v ...interface{}) {
	if !silent {
		defaultLogger.Printf("[WARN] "+format, v...)
	}
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	defaultLogger.Printf("[ERROR] "+format, v...)
}

// Fatal logs a fatal error message and exits
func Fatal(format string, v ...interface{}) {
	defaultLogger.Fatalf("[FATAL] "+format, v...)
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

// IsSilent returns true if silent mode is enabled
func IsSilent() bool {
	return silent
}
