// Package feedbuild turns the matched-predictions CSV produced by the
// prediction pipeline into the JSON feed served by the site.
package feedbuild

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"Pindexa/internal/domain"
)

const (
	colRank         = "Rank"
	colCountry      = "Country"
	colLeague       = "League"
	colKickoff      = "Kickoff (UTC)"
	colHomeTeam     = "Home Team"
	colAwayTeam     = "Away Team"
	colWinner       = "Predicted Winner"
	colSide         = "Predicted Side"
	colWinnerForm   = "Winner Form (Last 5)"
	colOpponentForm = "Opponent Form (Last 5)"
	colProbability  = "Win Probability %"
	colSportyBet    = "SportyBet League"
	colMatchType    = "Match Type"

	verifiedPrefix = "Full"
)

var requiredColumns = []string{
	colRank, colCountry, colLeague, colKickoff, colHomeTeam, colAwayTeam, colWinner, colProbability,
}

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Convert parses the CSV and builds a feed stamped with now.
func Convert(r io.Reader, now time.Time) (domain.Feed, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Feed{}, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return domain.Feed{}, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return domain.Feed{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	predictions := make([]domain.Prediction, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Feed{}, fmt.Errorf("read line %d: %w", line, err)
		}

		p, err := parseRow(row{record: record, index: index})
		if err != nil {
			return domain.Feed{}, fmt.Errorf("line %d: %w", line, err)
		}
		predictions = append(predictions, p)
	}

	slices.SortStableFunc(predictions, func(a, b domain.Prediction) int {
		return a.Rank - b.Rank
	})

	now = now.UTC()
	return domain.Feed{
		GeneratedAt:      now.Format(domain.MicroTimestampLayout),
		Date:             now.Format(time.DateOnly),
		TotalPredictions: len(predictions),
		Predictions:      predictions,
	}, nil
}

type row struct {
	record []string
	index  map[string]int
}

func (r row) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func parseRow(r row) (domain.Prediction, error) {
	rank, err := decimal.NewFromString(r.get(colRank))
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("rank %q: %w", r.get(colRank), err)
	}
	probability, err := decimal.NewFromString(r.get(colProbability))
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("win probability %q: %w", r.get(colProbability), err)
	}

	home, away, winner := r.get(colHomeTeam), r.get(colAwayTeam), r.get(colWinner)
	matchType := r.get(colMatchType)

	return domain.Prediction{
		Rank:            int(rank.IntPart()),
		Country:         r.get(colCountry),
		League:          r.get(colLeague),
		HomeTeam:        home,
		AwayTeam:        away,
		PredictedWinner: winner,
		PredictedSide:   sideOf(r.get(colSide), winner, home),
		WinProbability:  int(probability.Round(0).IntPart()),
		WinnerForm:      NormalizeForm(r.get(colWinnerForm)),
		OpponentForm:    NormalizeForm(r.get(colOpponentForm)),
		KickoffUTC:      r.get(colKickoff),
		Verified:        strings.HasPrefix(matchType, verifiedPrefix),
		SportyBetLeague: r.get(colSportyBet),
		MatchType:       matchType,
	}, nil
}

func sideOf(raw, winner, home string) domain.Side {
	switch domain.Side(strings.ToLower(raw)) {
	case domain.SideHome:
		return domain.SideHome
	case domain.SideAway:
		return domain.SideAway
	}
	if winner == home {
		return domain.SideHome
	}
	return domain.SideAway
}

// NormalizeForm strips separators from a form string such as "W-D-L-W-W".
func NormalizeForm(form string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(form) {
		switch r {
		case 'W', 'D', 'L':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Encode writes the feed as indented JSON.
func Encode(w io.Writer, feed domain.Feed) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(feed); err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	return nil
}

// WriteFile replaces path atomically so readers never observe a partial feed.
func WriteFile(path string, feed domain.Feed) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".predictions-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, feed); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod feed: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace feed: %w", err)
	}
	return nil
}
