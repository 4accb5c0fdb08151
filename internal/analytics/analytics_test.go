package analytics

import (
	"fmt"
	"testing"

	"Pindexa/internal/domain"
)

func pred(rank int, country, league string, prob int, form string) domain.Prediction {
	return domain.Prediction{
		Rank:           rank,
		Country:        country,
		League:         league,
		WinProbability: prob,
		WinnerForm:     form,
	}
}

func TestCountBandsScenario(t *testing.T) {
	t.Parallel()

	preds := []domain.Prediction{
		pred(1, "England", "Premier League", 85, "WWWWW"),
		pred(2, "Spain", "LaLiga", 72, "WDLWD"),
		pred(3, "Italy", "Serie A", 61, "LLLDW"),
	}

	counts := CountBands(preds)
	if counts != (BandCounts{High: 1, Medium: 1, Low: 1}) {
		t.Fatalf("unexpected band counts: %+v", counts)
	}
	if got := MeanProbability(preds); got != 72.7 {
		t.Fatalf("expected mean 72.7, got %v", got)
	}

	shares := counts.Percentages()
	if shares.High != 33.3 || shares.Medium != 33.3 || shares.Low != 33.3 {
		t.Fatalf("unexpected shares: %+v", shares)
	}
}

func TestBandBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prob int
		want Band
	}{
		{100, BandHigh},
		{80, BandHigh},
		{79, BandMedium},
		{70, BandMedium},
		{69, BandLow},
		{60, BandLow},
	}
	for _, tc := range cases {
		if got := BandOf(tc.prob); got != tc.want {
			t.Fatalf("BandOf(%d) = %s, want %s", tc.prob, got, tc.want)
		}
	}
}

func TestBandCountsSumToTotal(t *testing.T) {
	t.Parallel()

	var preds []domain.Prediction
	for i := 0; i < 41; i++ {
		preds = append(preds, pred(i+1, "X", "Y", 60+i, "WDL"))
	}

	if got := CountBands(preds).Total(); got != len(preds) {
		t.Fatalf("band counts sum to %d, want %d", got, len(preds))
	}
}

func TestEmptyFeedAggregates(t *testing.T) {
	t.Parallel()

	var preds []domain.Prediction

	if got := MeanProbability(preds); got != 0 {
		t.Fatalf("expected mean 0, got %v", got)
	}
	if got := CountBands(preds).Percentages(); got != (BandShares{}) {
		t.Fatalf("expected zero shares, got %+v", got)
	}
	if got := GroupByCountry(preds, CountryLimit); len(got) != 0 {
		t.Fatalf("expected no groups, got %+v", got)
	}
	if got := BestFormStreaks(preds, StreakLimit); len(got) != 0 {
		t.Fatalf("expected no streaks, got %+v", got)
	}
	if got := TopN(preds, 3); len(got) != 0 {
		t.Fatalf("expected no top picks, got %+v", got)
	}
	if DistinctLeagues(preds) != 0 || DistinctCountries(preds) != 0 || HighestProbability(preds) != 0 || VerifiedCount(preds) != 0 {
		t.Fatalf("expected zeroed counters")
	}
}

func TestBestFormStreaks(t *testing.T) {
	t.Parallel()

	if got := FormWins("WDLWD"); got != 2 {
		t.Fatalf("FormWins(WDLWD) = %d, want 2", got)
	}

	preds := []domain.Prediction{
		pred(1, "A", "L1", 90, "WDLWD"),
		pred(2, "B", "L2", 88, "WWWWW"),
		pred(3, "C", "L3", 86, "WWDWW"),
		pred(4, "D", "L4", 84, "DWDWD"),
		pred(5, "E", "L5", 82, "WWLLL"),
		pred(6, "F", "L6", 80, "LLLLL"),
	}

	streaks := BestFormStreaks(preds, StreakLimit)
	if len(streaks) != StreakLimit {
		t.Fatalf("expected %d streaks, got %d", StreakLimit, len(streaks))
	}

	wantRanks := []int{2, 3, 1, 4, 5}
	for i, s := range streaks {
		if s.Prediction.Rank != wantRanks[i] {
			t.Fatalf("position %d: got rank %d, want %d (%+v)", i, s.Prediction.Rank, wantRanks[i], streaks)
		}
	}
	if streaks[0].Wins != 5 || streaks[2].Wins != 2 {
		t.Fatalf("unexpected win counts: %+v", streaks)
	}
}

func TestGroupByCountry(t *testing.T) {
	t.Parallel()

	preds := []domain.Prediction{
		pred(1, "Spain", "LaLiga", 80, ""),
		pred(2, "England", "Premier League", 90, ""),
		pred(3, "England", "Championship", 75, ""),
		pred(4, "Spain", "LaLiga", 71, ""),
		pred(5, "Italy", "Serie A", 66, ""),
		pred(6, "England", "League One", 62, ""),
	}

	groups := GroupByCountry(preds, CountryLimit)
	want := []CountryGroup{
		{Country: "England", Count: 3, AvgProb: 75.7},
		{Country: "Spain", Count: 2, AvgProb: 75.5},
		{Country: "Italy", Count: 1, AvgProb: 66},
	}
	if len(groups) != len(want) {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Fatalf("group %d = %+v, want %+v", i, groups[i], want[i])
		}
	}
}

func TestGroupByCountryTruncatesAndKeepsTieOrder(t *testing.T) {
	t.Parallel()

	var preds []domain.Prediction
	for i := 0; i < 10; i++ {
		preds = append(preds, pred(i+1, fmt.Sprintf("C%d", i), "L", 70, ""))
	}
	preds = append(preds, pred(11, "C9", "L", 70, ""))

	groups := GroupByCountry(preds, CountryLimit)
	if len(groups) != CountryLimit {
		t.Fatalf("expected %d groups, got %d", CountryLimit, len(groups))
	}
	if groups[0].Country != "C9" || groups[0].Count != 2 {
		t.Fatalf("expected busiest country first, got %+v", groups[0])
	}
	for i := 1; i < len(groups); i++ {
		if want := fmt.Sprintf("C%d", i-1); groups[i].Country != want {
			t.Fatalf("group %d = %s, want %s", i, groups[i].Country, want)
		}
	}

	sum := 0
	for _, g := range GroupByCountry(preds, len(preds)) {
		sum += g.Count
	}
	if sum != len(preds) {
		t.Fatalf("untruncated group counts sum to %d, want %d", sum, len(preds))
	}
}

func TestDistinctAndHighlights(t *testing.T) {
	t.Parallel()

	preds := []domain.Prediction{
		pred(1, "England", "Premier League", 88, ""),
		pred(2, "England", "Championship", 74, ""),
		pred(3, "Spain", "LaLiga", 64, ""),
		pred(4, "England", "Premier League", 61, ""),
	}
	preds[0].Verified = true
	preds[2].Verified = true

	if got := DistinctLeagues(preds); got != 3 {
		t.Fatalf("DistinctLeagues = %d, want 3", got)
	}
	if got := DistinctCountries(preds); got != 2 {
		t.Fatalf("DistinctCountries = %d, want 2", got)
	}
	if got := VerifiedCount(preds); got != 2 {
		t.Fatalf("VerifiedCount = %d, want 2", got)
	}
	if got := HighestProbability(preds); got != 88 {
		t.Fatalf("HighestProbability = %d, want 88", got)
	}
	if got := TopN(preds, 3); len(got) != 3 || got[2].Rank != 3 {
		t.Fatalf("unexpected top 3: %+v", got)
	}
	if got := TopN(preds, 10); len(got) != 4 {
		t.Fatalf("TopN beyond length returned %d", len(got))
	}
}
