// Package config defines generator configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and TEAMGEN_ env vars.
// - External errors must be wrapped via this package's error sentinels.
package config

import (
	"fmt"
)

// Defaults reproduce the reference fixture: 50 teams in test_teams.csv.
const (
	DefaultOutput               = "test_teams.csv"
	DefaultTeams                = 50
	DefaultMaxAttempts          = 1000
	DefaultFourGamesProbability = 0.8
	DefaultMinMembers           = 3
	DefaultMaxMembers           = 5
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// Output is the CSV fixture path.
	Output string `koanf:"output"`

	// Teams is the number of data rows, champion included.
	Teams int `koanf:"teams"`

	// Seed makes a run reproducible. Zero picks a random seed.
	Seed uint64 `koanf:"seed"`

	// MaxAttempts caps sampling retries before a name gets a numeric suffix.
	MaxAttempts int `koanf:"max_attempts"`

	// FourGamesProbability is the chance a team plays all four games.
	FourGamesProbability float64 `koanf:"four_games_probability"`

	// MinMembers and MaxMembers bound the roster size.
	MinMembers int `koanf:"min_members"`
	MaxMembers int `koanf:"max_members"`

	// CRLF terminates rows with \r\n instead of \n.
	CRLF bool `koanf:"crlf"`

	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Output:               DefaultOutput,
		Teams:                DefaultTeams,
		MaxAttempts:          DefaultMaxAttempts,
		FourGamesProbability: DefaultFourGamesProbability,
		MinMembers:           DefaultMinMembers,
		MaxMembers:           DefaultMaxMembers,
		CRLF:                 true,
	}
}

// Validate reports the first setting that cannot produce a fixture.
func (c *Config) Validate() error {
	switch {
	case c.Output == "":
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	case c.Teams < 1:
		return fmt.Errorf("%w: teams must be at least 1, got %d", ErrInvalidConfig, c.Teams)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	case c.FourGamesProbability < 0 || c.FourGamesProbability > 1:
		return fmt.Errorf("%w: four_games_probability must be within [0,1], got %v", ErrInvalidConfig, c.FourGamesProbability)
	case c.MinMembers < 1:
		return fmt.Errorf("%w: min_members must be at least 1, got %d", ErrInvalidConfig, c.MinMembers)
	case c.MaxMembers < c.MinMembers:
		return fmt.Errorf("%w: max_members (%d) is below min_members (%d)", ErrInvalidConfig, c.MaxMembers, c.MinMembers)
	}
	return nil
}
