package usecase

import (
	"context"
	"time"

	"Pindexa/internal/analytics"
	"Pindexa/internal/domain"
	"Pindexa/internal/ports"
	"Pindexa/internal/view"
)

const (
	homeTopPicks     = 3
	insightsTopPicks = 5
)

// FeedLoader yields the current feed; it never fails.
type FeedLoader interface {
	Load(ctx context.Context) domain.Feed
}

// PagesDeps wires the collaborators used to build page models.
type PagesDeps struct {
	Feed   FeedLoader
	League ports.LeagueData
}

// Pages builds render-ready models for every screen. Each call reloads the
// feed so nothing is shared between requests.
type Pages struct {
	feed   FeedLoader
	league ports.LeagueData
}

// NewPages constructs the page model builder.
func NewPages(deps PagesDeps) *Pages {
	return &Pages{feed: deps.Feed, league: deps.League}
}

// FeedMeta is the generation metadata shown next to prediction lists.
type FeedMeta struct {
	GeneratedAt string `json:"generated_at"`
	Date        string `json:"date"`
	Total       int    `json:"total_predictions"`
}

// HomePage is the public landing page.
type HomePage struct {
	FeedMeta
	TopPicks  []domain.Prediction `json:"top_picks"`
	Standings []domain.Standing   `json:"standings"`
	TopScorer domain.TopScorer    `json:"top_scorer"`
	Fixture   domain.Fixture      `json:"next_fixture"`
}

// PredictionsPage is a filtered prediction list.
type PredictionsPage struct {
	FeedMeta
	view.Selection
	Count   view.Count    `json:"-"`
	Show    string        `json:"show"`
	Summary string        `json:"summary"`
	Presets []view.Preset `json:"-"`
}

// OverviewPage is the dashboard landing page.
type OverviewPage struct {
	FeedMeta
	HighestProbability int `json:"highest_probability"`
	Verified           int `json:"verified"`
}

// InsightsPage lists top picks, form streaks and country groups.
type InsightsPage struct {
	FeedMeta
	TopPicks  []domain.Prediction      `json:"top_picks"`
	Streaks   []analytics.Streak       `json:"streaks"`
	Countries []analytics.CountryGroup `json:"countries"`
}

// AnalyticsPage holds the statistical breakdown of the feed.
type AnalyticsPage struct {
	FeedMeta
	Mean      float64              `json:"mean_probability"`
	Leagues   int                  `json:"leagues"`
	Countries int                  `json:"countries"`
	Bands     analytics.BandCounts `json:"bands"`
	Shares    analytics.BandShares `json:"band_percentages"`
}

// Home builds the landing page including decorative league widgets.
func (p *Pages) Home(ctx context.Context) HomePage {
	feed := p.load(ctx)
	page := HomePage{
		FeedMeta: metaOf(feed),
		TopPicks: analytics.TopN(feed.Predictions, homeTopPicks),
	}

	if p.league != nil {
		page.Standings = p.league.Standings(ctx)
		page.TopScorer = p.league.TopScorer(ctx)
		page.Fixture = p.league.NextFixture(ctx)
	}

	return page
}

// Predictions builds a list limited to count.
func (p *Pages) Predictions(ctx context.Context, count view.Count) PredictionsPage {
	feed := p.load(ctx)
	selection := view.Select(feed, count)

	return PredictionsPage{
		FeedMeta:  metaOf(feed),
		Selection: selection,
		Count:     count,
		Show:      count.String(),
		Summary:   selection.Summary(),
		Presets:   view.Presets,
	}
}

// Overview builds the dashboard landing page.
func (p *Pages) Overview(ctx context.Context) OverviewPage {
	feed := p.load(ctx)
	return OverviewPage{
		FeedMeta:           metaOf(feed),
		HighestProbability: analytics.HighestProbability(feed.Predictions),
		Verified:           analytics.VerifiedCount(feed.Predictions),
	}
}

// Insights builds the trending insights page.
func (p *Pages) Insights(ctx context.Context) InsightsPage {
	feed := p.load(ctx)
	return InsightsPage{
		FeedMeta:  metaOf(feed),
		TopPicks:  analytics.TopN(feed.Predictions, insightsTopPicks),
		Streaks:   analytics.BestFormStreaks(feed.Predictions, analytics.StreakLimit),
		Countries: analytics.GroupByCountry(feed.Predictions, analytics.CountryLimit),
	}
}

// Analytics builds the statistics page.
func (p *Pages) Analytics(ctx context.Context) AnalyticsPage {
	feed := p.load(ctx)
	bands := analytics.CountBands(feed.Predictions)
	return AnalyticsPage{
		FeedMeta:  metaOf(feed),
		Mean:      analytics.MeanProbability(feed.Predictions),
		Leagues:   analytics.DistinctLeagues(feed.Predictions),
		Countries: analytics.DistinctCountries(feed.Predictions),
		Bands:     bands,
		Shares:    bands.Percentages(),
	}
}

func (p *Pages) load(ctx context.Context) domain.Feed {
	if p.feed == nil {
		return domain.EmptyFeed(time.Now())
	}
	return p.feed.Load(ctx)
}

func metaOf(feed domain.Feed) FeedMeta {
	return FeedMeta{
		GeneratedAt: feed.GeneratedAt,
		Date:        feed.Date,
		Total:       feed.TotalPredictions,
	}
}
