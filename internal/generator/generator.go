// Package generator samples synthetic team records for competition fixtures.
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/okian/teamgen/internal/domain/team"
	"github.com/okian/teamgen/pkg/logger"
	"github.com/okian/teamgen/pkg/metrics"
)

// Score ranges, inclusive.
const (
	iceCreamMin = 30
	iceCreamMax = 95
	dartMin     = 20
	dartMax     = 100
	balloonMin  = 10
	balloonMax  = 80
	faceMin     = 5
	faceMax     = 50
)

// Defaults.
const (
	defaultMaxAttempts          = 1000
	defaultFourGamesProbability = 0.8
	defaultMinMembers           = 3
	defaultMaxMembers           = 5
	firstSuffix                 = 2
	pcgStream                   = 0x7465616d67656e // "teamgen"
)

// Recorder receives generation metrics.
type Recorder interface {
	RecordTeamGenerated()
	RecordNameCollision(kind string)
	RecordNameFallback(kind string)
}

// Generator produces team records. It is not safe for concurrent use.
type Generator struct {
	rng                  *rand.Rand
	seed                 *uint64
	maxAttempts          int
	fourGamesProbability float64
	minMembers           int
	maxMembers           int
	words                WordLists
	log                  logger.Logger
	metrics              Recorder
}

// New creates a Generator. Without WithRand or WithSeed it draws from a
// randomly seeded source.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		maxAttempts:          defaultMaxAttempts,
		fourGamesProbability: defaultFourGamesProbability,
		minMembers:           defaultMinMembers,
		maxMembers:           defaultMaxMembers,
		words:                DefaultWordLists(),
		metrics:              metrics.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.words.empty() {
		return nil, ErrEmptyWordList
	}
	if g.rng == nil {
		seed := rand.Uint64()
		if g.seed != nil {
			seed = *g.seed
		}
		g.rng = rand.New(rand.NewPCG(seed, pcgStream))
	}
	return g, nil
}

// Dataset generates n records. Team names are unique across the set, and the
// first record is always the champion.
func (g *Generator) Dataset(ctx context.Context, n int) ([]team.Record, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	champion := team.Champion()
	used := map[string]struct{}{champion.Name: {}}

	records := make([]team.Record, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled after %d teams: %w", i, err)
		}
		records = append(records, g.Team(used))
	}

	records[0] = champion
	return records, nil
}

// Team generates one record and adds its name to used.
func (g *Generator) Team(used map[string]struct{}) team.Record {
	r := team.Record{Name: g.TeamName(used)}

	r.GamesPlaying = team.ShortGames
	if g.rng.Float64() < g.fourGamesProbability {
		r.GamesPlaying = team.AllGames
	}

	r.Members = g.Members(g.between(g.minMembers, g.maxMembers))

	if r.PlaysIceCreamFight() {
		r.IceCreamFight = g.between(iceCreamMin, iceCreamMax)
	}
	r.DartGame = g.between(dartMin, dartMax)
	r.BalloonBetweenUs = g.between(balloonMin, balloonMax)
	r.FacePainting = g.between(faceMin, faceMax)

	g.metrics.RecordTeamGenerated()
	return r
}

// TeamName returns an "<adjective> <noun>" name absent from used and adds it.
func (g *Generator) TeamName(used map[string]struct{}) string {
	name := g.unique(metrics.KindTeamName, g.words.Adjectives, g.words.Nouns, func(s string) bool {
		_, ok := used[s]
		return ok
	})
	used[name] = struct{}{}
	return name
}

// Members returns count distinct "<first> <last>" names.
func (g *Generator) Members(count int) []string {
	members := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for len(members) < count {
		name := g.unique(metrics.KindMember, g.words.FirstNames, g.words.LastNames, func(s string) bool {
			_, ok := seen[s]
			return ok
		})
		seen[name] = struct{}{}
		members = append(members, name)
	}
	return members
}

// unique samples "<left> <right>" until taken rejects it or the attempt cap
// is reached, then falls back to a numeric suffix on the last candidate.
func (g *Generator) unique(kind string, left, right []string, taken func(string) bool) string {
	var candidate string
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate = g.pick(left) + " " + g.pick(right)
		if !taken(candidate) {
			return candidate
		}
		g.metrics.RecordNameCollision(kind)
	}

	g.metrics.RecordNameFallback(kind)
	name := disambiguate(candidate, taken)
	if g.log != nil {
		g.log.Debug(context.Background(), "name space exhausted, using suffix",
			logger.String("kind", kind),
			logger.String("candidate", candidate),
			logger.String("name", name),
			logger.Int("attempts", g.maxAttempts))
	}
	return name
}

// disambiguate appends the smallest suffix, starting at 2, that is not taken.
func disambiguate(base string, taken func(string) bool) string {
	for n := firstSuffix; ; n++ {
		name := fmt.Sprintf("%s %d", base, n)
		if !taken(name) {
			return name
		}
	}
}

func (g *Generator) pick(words []string) string {
	return words[g.rng.IntN(len(words))]
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
