package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/lattice/internal/config"
	"github.com/alexisbeaulieu97/lattice/internal/logger"
	latticeerrors "github.com/alexisbeaulieu97/lattice/pkg/errors"
)

// loadSettings reads the configuration file, if any, and applies flag
// overrides on top of it.
func loadSettings(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger builds the diagnostic logger. The terminal belongs to the UI, so
// without a log file everything is discarded.
func openLogger(cfg config.LogConfig) (*logger.Logger, io.Closer, error) {
	if cfg.File == "" {
		return logger.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := logger.New(logger.Options{Level: cfg.Level, HumanReadable: cfg.HumanReadable, Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, latticeerrors.NewValidationError("log.level", err.Error(), err)
	}
	return log, f, nil
}
