// Package logging builds the application logger. The terminal belongs
// to the wizard UI, so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a logger writing JSON entries to the given file path,
// creating parent directories as needed.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// DefaultPath places the log file next to the user's other app state.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "appealforge.log"
	}
	return filepath.Join(home, ".appealforge", "appealforge.log")
}
