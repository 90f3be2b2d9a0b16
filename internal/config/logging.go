package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quickconvert/quickconvert/internal/logging"
)

const logFileName = "quickconvert.log"

// ToLoggingConfig converts the logging section for internal/logging. A set
// File selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// DefaultLogFile is where the TUI writes logs when no file is configured,
// since it cannot share the terminal it draws on.
func DefaultLogFile() string {
	return filepath.Join(ResolveConfigDir(), "logs", logFileName)
}

// EnsureLogDir creates the directory of the configured log file.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.File
	if file == "" {
		file = DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
