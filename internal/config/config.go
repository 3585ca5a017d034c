package config

import (
	"errors"
	"os"
	"strings"
)

const DefaultLogFile = "conversion_log.log"

type Config struct {
	Source    string
	TargetDir string
	Batch     bool
	DryRun    bool
	Verbose   bool
	Quiet     bool
	LogFile   string
	RunTests  bool
}

// ApplyArgs merges positional arguments and environment fallbacks into
// the config. Source and target are both optional; the converter derives
// defaults for whatever is missing.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) > 2 {
		return errors.New("at most two positional arguments are allowed")
	}
	if len(args) > 0 {
		c.Source = args[0]
	}
	if len(args) > 1 {
		c.TargetDir = args[1]
	}

	if c.Source == "" {
		c.Source = envOrEmpty("WEBP2PNG_SOURCE")
	}
	if c.TargetDir == "" {
		c.TargetDir = envOrEmpty("WEBP2PNG_TARGET")
	}
	if !c.Verbose {
		c.Verbose = envTruthy("WEBP2PNG_VERBOSE")
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}

	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
