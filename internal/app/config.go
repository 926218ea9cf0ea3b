package app

import (
	"errors"
	"fmt"

	"github.com/vk/nodetree/internal/input"
	"github.com/vk/nodetree/internal/report"
)

// StdinPath is the input path that means "read standard input".
const StdinPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath    string // node document; StdinPath reads stdin
	InputFormat  input.Format
	OutputFormat report.Format
	Interactive  bool // start the menu loop instead of a single run

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" && !cfg.Interactive {
		return nil, errors.New("an input path is required unless running interactively")
	}

	inFormat, err := input.ParseFormat(string(cfg.InputFormat))
	if err != nil {
		return nil, fmt.Errorf("invalid input format: %w", err)
	}
	cfg.InputFormat = inFormat

	outFormat, err := report.ParseFormat(string(cfg.OutputFormat))
	if err != nil {
		return nil, fmt.Errorf("invalid output format: %w", err)
	}
	cfg.OutputFormat = outFormat

	return &cfg, nil
}
