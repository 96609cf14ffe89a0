package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Root     string   // directory tree to sweep
	Pattern  string   // file name suffix to match, e.g. ".py"
	Output   string   // path of the JSON report
	Analyzer string   // analyzer binary
	Args     []string // fixed subcommand and flags for the analyzer
	Context  string   // literal context string passed to every invocation

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("Root is a required configuration field and cannot be empty")
	}
	if cfg.Pattern == "" {
		return nil, errors.New("Pattern is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		return nil, errors.New("Output is a required configuration field and cannot be empty")
	}
	if cfg.Analyzer == "" {
		return nil, errors.New("Analyzer is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
