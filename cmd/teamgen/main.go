package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/teamgen/internal/app"
	"github.com/okian/teamgen/internal/config"
	"github.com/okian/teamgen/pkg/logger"
)

const usage = `teamgen
=======

Generates a CSV fixture of synthetic competition teams. The first row is
always "The Champions" with perfect scores.

Usage:
  go run ./cmd/teamgen [options]

Options:
  -output string
        Fixture path (default "test_teams.csv")
  -teams int
        Number of teams, champion included (default 50)
  -seed uint
        Seed for a reproducible fixture (default random)
  -config string
        YAML config file (overrides TEAMGEN_CONFIG)
  -metrics-file string
        Write a Prometheus textfile after the run
  -log-level string
        debug, info, warn or error
  -help
        Show this help message

Environment:
  TEAMGEN_CONFIG, TEAMGEN_OUTPUT, TEAMGEN_TEAMS, TEAMGEN_SEED, ...
  Flags win over environment variables, which win over the config file.

Examples:
  # Reference fixture
  go run ./cmd/teamgen

  # Reproducible 200-team fixture
  go run ./cmd/teamgen -teams 200 -seed 42 -output testdata/teams.csv
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stderr))
}

// run parses args, loads configuration and generates one fixture. It returns
// the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("teamgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { _, _ = io.WriteString(stderr, usage) }

	var (
		output      = fs.String("output", "", "Fixture path")
		teams       = fs.Int("teams", 0, "Number of teams")
		seed        = fs.Uint64("seed", 0, "Random seed")
		configFile  = fs.String("config", "", "YAML config file")
		metricsFile = fs.String("metrics-file", "", "Prometheus textfile path")
		logLevel    = fs.String("log-level", "", "Log level")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := logger.Init(logger.WithOutput(stderr)); err != nil {
		_, _ = io.WriteString(stderr, "failed to initialize logging: "+err.Error()+"\n")
		return 1
	}
	defer func() { _ = logger.Sync() }()

	path := *configFile
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}
	cfg, err := config.LoadFile(ctx, path)
	if err != nil {
		_, _ = io.WriteString(stderr, "failed to load config: "+err.Error()+"\n")
		return 1
	}

	// Only flags given on the command line override loaded values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "teams":
			cfg.Teams = *teams
		case "seed":
			cfg.Seed = *seed
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := logger.Init(logger.WithOutput(stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
		logger.Get().Warn(ctx, "invalid log_format; falling back to text", logger.String("log_format", cfg.LogFormat), logger.Error(err))
		_ = logger.Init(logger.WithOutput(stderr))
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if _, err := app.New(cfg).Run(ctx); err != nil {
		logger.Get().Error(ctx, "fixture generation failed", logger.Error(err))
		return 1
	}
	return 0
}
