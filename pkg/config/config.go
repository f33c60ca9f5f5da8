// Package config provides configuration management for gncurie.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): env vars > config.yaml > defaults
//
// Converters take their input and output paths only from CLI flags.
// Prefixes, column names and sentinels are compiled into every converter
// and cannot be changed through configuration. The configuration only
// governs logging, parallelism, the malformed row policy and the BioMart
// crawler.
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Log: level, format, destination
//   - Convert: strict
//   - BioMart: url, timeout, retries
//   - General: jobs_number
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNCURIE_ prefix with underscores for nesting:
//
//	GNCURIE_LOG_LEVEL=debug
//	GNCURIE_CONVERT_STRICT=true
//	GNCURIE_BIOMART_URL=http://www.ensembl.org/biomart/martservice
//	GNCURIE_JOBS_NUMBER=4
package config

import (
	"runtime"
)

// Config represents the complete gncurie configuration.
type Config struct {
	// Convert contains settings shared by all converters.
	Convert ConvertConfig `mapstructure:"convert" yaml:"convert"`

	// BioMart contains settings of the Ensembl BioMart crawler.
	BioMart BioMartConfig `mapstructure:"biomart" yaml:"biomart"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of output files a converter writes
	// concurrently.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ConvertConfig contains settings applied to every converter run.
type ConvertConfig struct {
	// Strict makes a row with fewer fields than the input schema a fatal
	// error. When false such rows are skipped and counted.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// BioMartConfig contains Ensembl BioMart connection parameters.
type BioMartConfig struct {
	// URL of the martservice endpoint.
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout of a single HTTP request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// Retries is how many times a failed request is repeated.
	Retries int `mapstructure:"retries" yaml:"retries"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		BioMart: BioMartConfig{
			URL:     "http://www.ensembl.org/biomart/martservice",
			Timeout: 600,
			Retries: 3,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
