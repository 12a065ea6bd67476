package generator

import (
	"math/rand/v2"

	"github.com/okian/teamgen/pkg/logger"
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRand sets the random source. It takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed makes the generator deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = &seed
	}
}

// WithMaxAttempts caps sampling retries per name.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithFourGamesProbability sets the chance a team plays all four games.
func WithFourGamesProbability(p float64) Option {
	return func(g *Generator) {
		if p >= 0 && p <= 1 {
			g.fourGamesProbability = p
		}
	}
}

// WithMemberCountRange bounds roster sizes, inclusive.
func WithMemberCountRange(minCount, maxCount int) Option {
	return func(g *Generator) {
		if minCount > 0 && maxCount >= minCount {
			g.minMembers = minCount
			g.maxMembers = maxCount
		}
	}
}

// WithWordLists replaces the built-in vocabularies.
func WithWordLists(w WordLists) Option {
	return func(g *Generator) {
		g.words = w
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// WithMetrics records generation metrics on r instead of the global manager.
func WithMetrics(r Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.metrics = r
		}
	}
}
