// Package app runs one fixture generation: configuration in, CSV file out.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/okian/teamgen/internal/config"
	"github.com/okian/teamgen/internal/fixture"
	"github.com/okian/teamgen/internal/generator"
	"github.com/okian/teamgen/pkg/logger"
	"github.com/okian/teamgen/pkg/metrics"
)

// Result describes a completed run.
type Result struct {
	RunID    string
	Seed     uint64
	Path     string
	Records  int
	Bytes    int64
	Duration time.Duration
}

// Runner generates and writes fixtures.
type Runner struct {
	cfg     *config.Config
	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records run metrics on m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// New creates a Runner. The global logger must be initialized unless
// WithLogger is given.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:     cfg,
		metrics: metrics.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get()
	}
	return r
}

// Run generates cfg.Teams records and writes them to cfg.Output.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{
		RunID: uuid.New().String(),
		Seed:  r.cfg.Seed,
		Path:  r.cfg.Output,
	}
	if res.Seed == 0 {
		res.Seed = rand.Uint64()
	}

	r.logger.Info(ctx, "generating team fixture",
		logger.String("runID", res.RunID),
		logger.Uint64("seed", res.Seed),
		logger.Int("teams", r.cfg.Teams),
		logger.String("output", r.cfg.Output))

	gen, err := generator.New(
		generator.WithSeed(res.Seed),
		generator.WithMaxAttempts(r.cfg.MaxAttempts),
		generator.WithFourGamesProbability(r.cfg.FourGamesProbability),
		generator.WithMemberCountRange(r.cfg.MinMembers, r.cfg.MaxMembers),
		generator.WithLogger(r.logger.Named("generator")),
		generator.WithMetrics(r.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	records, err := gen.Dataset(ctx, r.cfg.Teams)
	if err != nil {
		return nil, fmt.Errorf("team generation failed: %w", err)
	}

	written, err := fixture.WriteCSV(ctx, r.cfg.Output, records, fixture.WithCRLF(r.cfg.CRLF))
	if err != nil {
		r.metrics.RecordWriteError()
		return nil, fmt.Errorf("failed to write %s: %w", r.cfg.Output, err)
	}

	res.Records = len(records)
	res.Bytes = written
	res.Duration = time.Since(start)

	r.metrics.RecordWrite(res.Records, res.Bytes)
	r.metrics.RecordGenerationDuration(res.Duration)

	if r.cfg.MetricsFile != "" {
		if err := r.metrics.WriteTextfile(r.cfg.MetricsFile); err != nil {
			r.logger.Warn(ctx, "failed to export metrics", logger.String("metricsFile", r.cfg.MetricsFile), logger.Error(err))
		}
	}

	r.logger.Info(ctx, "team fixture written",
		logger.String("runID", res.RunID),
		logger.String("path", res.Path),
		logger.Int("records", res.Records),
		logger.String("size", humanize.Bytes(uint64(res.Bytes))),
		logger.String("duration", res.Duration.String()))

	return res, nil
}
