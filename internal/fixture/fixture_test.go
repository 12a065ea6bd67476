package fixture_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/teamgen/internal/domain/team"
	"github.com/okian/teamgen/internal/fixture"
	"github.com/okian/teamgen/internal/generator"
)

const wantHeader = "Team Name,Members,Games Playing,Ice Cream Fight,Dart Game,Balloon Between Us,Face Painting"

type nopRecorder struct{}

func (nopRecorder) RecordTeamGenerated()       {}
func (nopRecorder) RecordNameCollision(string) {}
func (nopRecorder) RecordNameFallback(string)  {}

func generate(t *testing.T, seed uint64, n int) []team.Record {
	t.Helper()
	gen, err := generator.New(generator.WithSeed(seed), generator.WithMetrics(nopRecorder{}))
	require.NoError(t, err)
	records, err := gen.Dataset(context.Background(), n)
	require.NoError(t, err)
	return records
}

func TestEncodeQuoting(t *testing.T) {
	records := []team.Record{
		team.Champion(),
		{
			Name:             `Quick "Q" Wolves`,
			Members:          []string{"Rohan Verma"},
			GamesPlaying:     team.ShortGames,
			IceCreamFight:    77,
			DartGame:         20,
			BalloonBetweenUs: 10,
			FacePainting:     5,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, fixture.Encode(&buf, records))

	want := wantHeader + "\r\n" +
		`The Champions,"John Lennon, Paul McCartney, George Harrison, Ringo Starr",4,100,100,100,100` + "\r\n" +
		`"Quick ""Q"" Wolves",Rohan Verma,3,0,20,10,5` + "\r\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeLineEndings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixture.Encode(&buf, []team.Record{team.Champion()}, fixture.WithCRLF(false)))

	assert.NotContains(t, buf.String(), "\r")
	assert.True(t, strings.HasPrefix(buf.String(), wantHeader+"\n"))
}

func TestWriteCSVFiftyTeams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test_teams.csv")
	records := generate(t, 11, 50)

	written, err := fixture.WriteCSV(context.Background(), path, records)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), written)

	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 51)
	assert.Equal(t, wantHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "The Champions,"))
}

func TestRoundTrip(t *testing.T) {
	for _, crlf := range []bool{true, false} {
		path := filepath.Join(t.TempDir(), "teams.csv")
		records := generate(t, 21, 50)

		_, err := fixture.WriteCSV(context.Background(), path, records, fixture.WithCRLF(crlf))
		require.NoError(t, err)
		original, err := os.ReadFile(path)
		require.NoError(t, err)

		parsed, err := fixture.ReadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, records, parsed)

		var again bytes.Buffer
		require.NoError(t, fixture.Encode(&again, parsed, fixture.WithCRLF(crlf)))
		assert.Equal(t, string(original), again.String(), "crlf=%v", crlf)
	}
}

func TestWriteCSVErrors(t *testing.T) {
	t.Run("target is a directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := fixture.WriteCSV(context.Background(), dir, []team.Record{team.Champion()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create file")
	})

	t.Run("parent is a file", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))
		_, err := fixture.WriteCSV(context.Background(), filepath.Join(parent, "teams.csv"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create directory")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		path := filepath.Join(t.TempDir(), "teams.csv")
		_, err := fixture.WriteCSV(ctx, path, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", fixture.ErrHeaderMismatch},
		{"renamed column", strings.Replace(wantHeader, "Dart Game", "Darts", 1) + "\n", fixture.ErrHeaderMismatch},
		{"short header", "Team Name,Members\n", fixture.ErrHeaderMismatch},
		{"non-integer score", wantHeader + "\nAlpha Wolves,Yash Iyer,4,lots,20,10,5\n", fixture.ErrMalformedRow},
		{"missing column", wantHeader + "\nAlpha Wolves,Yash Iyer,4,30,20,10\n", fixture.ErrMalformedRow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := fixture.Decode(strings.NewReader(tc.input))
			assert.Nil(t, records)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := fixture.ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
