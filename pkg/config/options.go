package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptConvertStrict sets the malformed row policy of converters.
// When true, a ragged row aborts the run.
func OptConvertStrict(b bool) Option {
	return func(c *Config) {
		c.Convert.Strict = b
	}
}

// OptBioMartURL sets the martservice endpoint of Ensembl BioMart.
func OptBioMartURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidURL("BioMart URL", s) {
			c.BioMart.URL = s
		}
	}
}

// OptBioMartTimeout sets the timeout of a single BioMart request in seconds.
func OptBioMartTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("BioMart Timeout", i) {
			c.BioMart.Timeout = i
		}
	}
}

// OptBioMartRetries sets how many times a failed BioMart request is
// repeated. Zero disables retries.
func OptBioMartRetries(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("BioMart Retries", i) {
			c.BioMart.Retries = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets how many outputs of one converter are written
// concurrently. Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
