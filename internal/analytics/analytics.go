// Package analytics derives display statistics from a prediction feed.
// Every function is pure and returns zeroed results for an empty sequence.
package analytics

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"Pindexa/internal/domain"
)

const (
	highBandFloor   = 80
	mediumBandFloor = 70

	// StreakLimit is how many form-streak entries are reported.
	StreakLimit = 5
	// CountryLimit is how many country groups are reported.
	CountryLimit = 8
)

// Band is one of three disjoint probability ranges.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// BandOf classifies a win probability.
func BandOf(probability int) Band {
	switch {
	case probability >= highBandFloor:
		return BandHigh
	case probability >= mediumBandFloor:
		return BandMedium
	default:
		return BandLow
	}
}

// BandCounts holds the number of predictions per band.
type BandCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Total is the sum over all bands.
func (b BandCounts) Total() int {
	return b.High + b.Medium + b.Low
}

// BandShares expresses band counts as percentages of the total.
type BandShares struct {
	High   float64 `json:"high"`
	Medium float64 `json:"medium"`
	Low    float64 `json:"low"`
}

// Percentages converts counts to one-decimal percentages; all zero when empty.
func (b BandCounts) Percentages() BandShares {
	total := b.Total()
	return BandShares{
		High:   percent(b.High, total),
		Medium: percent(b.Medium, total),
		Low:    percent(b.Low, total),
	}
}

// CountBands partitions predictions by win probability.
func CountBands(predictions []domain.Prediction) BandCounts {
	var counts BandCounts
	for _, p := range predictions {
		switch BandOf(p.WinProbability) {
		case BandHigh:
			counts.High++
		case BandMedium:
			counts.Medium++
		default:
			counts.Low++
		}
	}
	return counts
}

// MeanProbability is the arithmetic mean rounded to one decimal place.
func MeanProbability(predictions []domain.Prediction) float64 {
	sum := 0
	for _, p := range predictions {
		sum += p.WinProbability
	}
	return ratio(sum, len(predictions), 1)
}

// Streak pairs a prediction with the number of wins in the winner's form.
type Streak struct {
	Prediction domain.Prediction `json:"prediction"`
	Wins       int               `json:"wins"`
}

// FormWins counts 'W' results in a form string.
func FormWins(form string) int {
	return strings.Count(form, "W")
}

// BestFormStreaks ranks predictions by winner form wins, keeping feed order on ties.
func BestFormStreaks(predictions []domain.Prediction, limit int) []Streak {
	streaks := make([]Streak, 0, len(predictions))
	for _, p := range predictions {
		streaks = append(streaks, Streak{Prediction: p, Wins: FormWins(p.WinnerForm)})
	}

	slices.SortStableFunc(streaks, func(a, b Streak) int {
		return b.Wins - a.Wins
	})

	return streaks[:clamp(limit, len(streaks))]
}

// TopN returns the first n predictions; the feed is already probability ranked.
func TopN(predictions []domain.Prediction, n int) []domain.Prediction {
	n = clamp(n, len(predictions))
	return predictions[:n:n]
}

// CountryGroup summarises the predictions of one country.
type CountryGroup struct {
	Country string  `json:"country"`
	Count   int     `json:"count"`
	AvgProb float64 `json:"avgProb"`
}

// GroupByCountry returns the busiest countries first, first-seen order on ties.
func GroupByCountry(predictions []domain.Prediction, limit int) []CountryGroup {
	type acc struct {
		count int
		sum   int
	}

	order := make([]string, 0)
	totals := make(map[string]*acc)
	for _, p := range predictions {
		a, ok := totals[p.Country]
		if !ok {
			a = &acc{}
			totals[p.Country] = a
			order = append(order, p.Country)
		}
		a.count++
		a.sum += p.WinProbability
	}

	groups := make([]CountryGroup, 0, len(order))
	for _, country := range order {
		a := totals[country]
		groups = append(groups, CountryGroup{
			Country: country,
			Count:   a.count,
			AvgProb: ratio(a.sum, a.count, 1),
		})
	}

	slices.SortStableFunc(groups, func(a, b CountryGroup) int {
		return b.Count - a.Count
	})

	return groups[:clamp(limit, len(groups))]
}

// DistinctLeagues counts unique league names.
func DistinctLeagues(predictions []domain.Prediction) int {
	return distinct(predictions, func(p domain.Prediction) string { return p.League })
}

// DistinctCountries counts unique country names.
func DistinctCountries(predictions []domain.Prediction) int {
	return distinct(predictions, func(p domain.Prediction) string { return p.Country })
}

// VerifiedCount counts predictions whose league and teams matched the market catalog.
func VerifiedCount(predictions []domain.Prediction) int {
	n := 0
	for _, p := range predictions {
		if p.Verified {
			n++
		}
	}
	return n
}

// HighestProbability is the maximum win probability, or 0 for an empty feed.
func HighestProbability(predictions []domain.Prediction) int {
	highest := 0
	for _, p := range predictions {
		highest = max(highest, p.WinProbability)
	}
	return highest
}

func distinct(predictions []domain.Prediction, key func(domain.Prediction) string) int {
	seen := make(map[string]struct{}, len(predictions))
	for _, p := range predictions {
		seen[key(p)] = struct{}{}
	}
	return len(seen)
}

func percent(part, total int) float64 {
	return ratio(part*100, total, 1)
}

// ratio divides and rounds half away from zero; a zero denominator yields 0.
func ratio(num, den int, places int32) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(num)).
		Div(decimal.NewFromInt(int64(den))).
		Round(places).
		InexactFloat64()
}

func clamp(n, length int) int {
	if n < 0 {
		return 0
	}
	return min(n, length)
}
