package generator_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/okian/teamgen/internal/domain/team"
	"github.com/okian/teamgen/internal/generator"
	"github.com/okian/teamgen/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

// countingRecorder captures generator metrics in memory.
type countingRecorder struct {
	teams      int
	collisions map[string]int
	fallbacks  map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{collisions: map[string]int{}, fallbacks: map[string]int{}}
}

func (c *countingRecorder) RecordTeamGenerated()            { c.teams++ }
func (c *countingRecorder) RecordNameCollision(kind string) { c.collisions[kind]++ }
func (c *countingRecorder) RecordNameFallback(kind string)  { c.fallbacks[kind]++ }

func TestDatasetProperties(t *testing.T) {
	ctx := context.Background()

	for seed := uint64(1); seed <= 20; seed++ {
		Convey("Given a dataset of 50 teams from seed "+strconv.FormatUint(seed, 10), t, func() {
			gen, err := generator.New(generator.WithSeed(seed), generator.WithMetrics(newCountingRecorder()))
			So(err, ShouldBeNil)

			records, err := gen.Dataset(ctx, 50)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 50)

			Convey("Then the first record is the champion", func() {
				So(records[0], ShouldResemble, team.Champion())
			})

			Convey("And every other record respects the field ranges", func() {
				for _, r := range records[1:] {
					So(r.GamesPlaying, ShouldBeIn, team.ShortGames, team.AllGames)
					if r.GamesPlaying == team.ShortGames {
						So(r.IceCreamFight, ShouldEqual, 0)
					} else {
						So(r.IceCreamFight, ShouldBeBetweenOrEqual, 30, 95)
					}
					So(r.DartGame, ShouldBeBetweenOrEqual, 20, 100)
					So(r.BalloonBetweenUs, ShouldBeBetweenOrEqual, 10, 80)
					So(r.FacePainting, ShouldBeBetweenOrEqual, 5, 50)
					So(len(r.Members), ShouldBeBetweenOrEqual, 3, 5)
				}
			})

			Convey("And team names are pairwise distinct", func() {
				names := make(map[string]struct{}, len(records))
				for _, r := range records {
					_, dup := names[r.Name]
					So(dup, ShouldBeFalse)
					names[r.Name] = struct{}{}
				}
			})

			Convey("And members are unique within each team", func() {
				for _, r := range records {
					seen := make(map[string]struct{}, len(r.Members))
					for _, m := range team.SplitMembers(team.JoinMembers(r.Members)) {
						_, dup := seen[m]
						So(dup, ShouldBeFalse)
						seen[m] = struct{}{}
					}
				}
			})
		})
	}
}

func TestDatasetDeterminism(t *testing.T) {
	Convey("Given two generators with the same seed", t, func() {
		ctx := context.Background()
		a, err := generator.New(generator.WithSeed(99), generator.WithMetrics(newCountingRecorder()))
		So(err, ShouldBeNil)
		b, err := generator.New(generator.WithRand(rand.New(rand.NewPCG(1, 2))), generator.WithSeed(99), generator.WithMetrics(newCountingRecorder()))
		So(err, ShouldBeNil)
		c, err := generator.New(generator.WithSeed(99), generator.WithMetrics(newCountingRecorder()))
		So(err, ShouldBeNil)

		first, err := a.Dataset(ctx, 30)
		So(err, ShouldBeNil)
		other, err := b.Dataset(ctx, 30)
		So(err, ShouldBeNil)
		second, err := c.Dataset(ctx, 30)
		So(err, ShouldBeNil)

		Convey("Then the same seed yields the same dataset", func() {
			So(second, ShouldResemble, first)
		})

		Convey("And an explicit random source wins over the seed", func() {
			So(other, ShouldNotResemble, first)
		})
	})
}

func TestDatasetEdgeCases(t *testing.T) {
	Convey("Given a default generator", t, func() {
		rec := newCountingRecorder()
		gen, err := generator.New(generator.WithSeed(5), generator.WithMetrics(rec))
		So(err, ShouldBeNil)

		Convey("When asking for zero teams", func() {
			records, err := gen.Dataset(context.Background(), 0)

			Convey("Then ErrInvalidCount is returned", func() {
				So(records, ShouldBeNil)
				So(errors.Is(err, generator.ErrInvalidCount), ShouldBeTrue)
			})
		})

		Convey("When asking for a single team", func() {
			records, err := gen.Dataset(context.Background(), 1)

			Convey("Then it is the champion", func() {
				So(err, ShouldBeNil)
				So(records, ShouldResemble, []team.Record{team.Champion()})
				So(rec.teams, ShouldEqual, 1)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			records, err := gen.Dataset(ctx, 10)

			Convey("Then generation stops with the context error", func() {
				So(records, ShouldBeNil)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given empty word lists", t, func() {
		gen, err := generator.New(generator.WithWordLists(generator.WordLists{}))

		Convey("Then construction fails", func() {
			So(gen, ShouldBeNil)
			So(errors.Is(err, generator.ErrEmptyWordList), ShouldBeTrue)
		})
	})
}

func TestSuffixFallback(t *testing.T) {
	Convey("Given vocabularies with a single combination", t, func() {
		rec := newCountingRecorder()
		gen, err := generator.New(
			generator.WithSeed(1),
			generator.WithMaxAttempts(5),
			generator.WithMemberCountRange(3, 3),
			generator.WithMetrics(rec),
			generator.WithWordLists(generator.WordLists{
				Adjectives: []string{"Solo"},
				Nouns:      []string{"Team"},
				FirstNames: []string{"Ada"},
				LastNames:  []string{"Byron"},
			}),
		)
		So(err, ShouldBeNil)

		Convey("When generating more teams than names exist", func() {
			records, err := gen.Dataset(context.Background(), 4)

			Convey("Then generation terminates with suffixed names", func() {
				So(err, ShouldBeNil)
				names := []string{records[0].Name, records[1].Name, records[2].Name, records[3].Name}
				So(names, ShouldResemble, []string{"The Champions", "Solo Team 2", "Solo Team 3", "Solo Team 4"})
			})

			Convey("And rosters are suffixed the same way", func() {
				So(records[1].Members, ShouldResemble, []string{"Ada Byron", "Ada Byron 2", "Ada Byron 3"})
			})

			Convey("And collisions and fallbacks are recorded", func() {
				So(rec.fallbacks[metrics.KindTeamName], ShouldEqual, 3)
				So(rec.collisions[metrics.KindTeamName], ShouldEqual, 15)
				So(rec.fallbacks[metrics.KindMember], ShouldEqual, 8)
			})
		})
	})
}

func TestTeamName(t *testing.T) {
	Convey("Given a used-name set", t, func() {
		gen, err := generator.New(generator.WithSeed(3), generator.WithMetrics(newCountingRecorder()))
		So(err, ShouldBeNil)
		used := map[string]struct{}{}

		Convey("When drawing every available name", func() {
			for i := 0; i < 225; i++ {
				gen.TeamName(used)
			}

			Convey("Then the accumulator holds each once", func() {
				So(used, ShouldHaveLength, 225)
			})
		})
	})
}

func TestFourGamesProbability(t *testing.T) {
	Convey("Given a generator where every team plays all games", t, func() {
		gen, err := generator.New(generator.WithSeed(8), generator.WithFourGamesProbability(1), generator.WithMetrics(newCountingRecorder()))
		So(err, ShouldBeNil)

		records, err := gen.Dataset(context.Background(), 40)
		So(err, ShouldBeNil)

		Convey("Then nobody sits out the ice cream fight", func() {
			for _, r := range records {
				So(r.PlaysIceCreamFight(), ShouldBeTrue)
			}
		})
	})

	Convey("Given a generator where nobody plays all games", t, func() {
		gen, err := generator.New(generator.WithSeed(8), generator.WithFourGamesProbability(0), generator.WithMetrics(newCountingRecorder()))
		So(err, ShouldBeNil)

		records, err := gen.Dataset(context.Background(), 40)
		So(err, ShouldBeNil)

		Convey("Then every team but the champion carries the sentinel", func() {
			for _, r := range records[1:] {
				So(r.GamesPlaying, ShouldEqual, team.ShortGames)
				So(r.IceCreamFight, ShouldEqual, 0)
			}
		})
	})
}
