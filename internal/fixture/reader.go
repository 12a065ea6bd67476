package fixture

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/okian/teamgen/internal/domain/team"
)

// ReadCSV parses a fixture written by WriteCSV.
func ReadCSV(path string) ([]team.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode parses a header row followed by team rows. Only the shape is
// checked: column count and integer columns.
func Decode(r io.Reader) ([]team.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(team.Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrHeaderMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeaderMismatch, err)
	}
	if !slices.Equal(header, team.Header) {
		return nil, fmt.Errorf("%w: got %q", ErrHeaderMismatch, header)
	}

	var records []team.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (team.Record, error) {
	ints := make([]int, 0, len(row)-2)
	for i, col := range row[2:] {
		v, err := strconv.Atoi(col)
		if err != nil {
			return team.Record{}, fmt.Errorf("column %q: %w", team.Header[i+2], err)
		}
		ints = append(ints, v)
	}

	return team.Record{
		Name:             row[0],
		Members:          team.SplitMembers(row[1]),
		GamesPlaying:     ints[0],
		IceCreamFight:    ints[1],
		DartGame:         ints[2],
		BalloonBetweenUs: ints[3],
		FacePainting:     ints[4],
	}, nil
}
