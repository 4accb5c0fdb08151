package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"Pindexa/internal/domain"
	"Pindexa/internal/infrastructure/footballdata"
	"Pindexa/internal/ports"
)

const (
	standingsKey   = "standings"
	topScorerKey   = "topScorer"
	nextFixtureKey = "nextFixture"

	standingsRows = 6
)

var errNoData = errors.New("empty upstream payload")

// Upstream is the subset of the football-data.org client used here.
type Upstream interface {
	Standings(ctx context.Context) (footballdata.StandingsResponse, error)
	TopScorers(ctx context.Context, limit int) (footballdata.ScorersResponse, error)
	ScheduledMatches(ctx context.Context, limit int) (footballdata.MatchesResponse, error)
}

// Service serves league widgets from a TTL cache in front of Upstream.
// Failures are logged and answered with static fallback values.
type Service struct {
	upstream Upstream
	cache    *Cache
	logger   *slog.Logger
}

var _ ports.LeagueData = (*Service)(nil)

// NewService wires the upstream client and cache.
func NewService(upstream Upstream, cache *Cache, logger *slog.Logger) *Service {
	if cache == nil {
		cache = NewCache(DefaultTTL, nil)
	}
	return &Service{upstream: upstream, cache: cache, logger: logger}
}

// Standings returns the top of the league table.
func (s *Service) Standings(ctx context.Context) []domain.Standing {
	if v, ok := s.cache.Get(standingsKey); ok {
		if table, ok := v.([]domain.Standing); ok {
			return table
		}
	}

	table, err := s.fetchStandings(ctx)
	if err != nil {
		s.warn("standings fetch failed", err)
		return fallbackStandings()
	}

	s.cache.Set(standingsKey, table)
	return table
}

// TopScorer returns the league's leading goalscorer.
func (s *Service) TopScorer(ctx context.Context) domain.TopScorer {
	if v, ok := s.cache.Get(topScorerKey); ok {
		if scorer, ok := v.(domain.TopScorer); ok {
			return scorer
		}
	}

	scorer, err := s.fetchTopScorer(ctx)
	if err != nil {
		s.warn("top scorer fetch failed", err)
		return fallbackScorer()
	}

	s.cache.Set(topScorerKey, scorer)
	return scorer
}

// NextFixture returns the next scheduled match.
func (s *Service) NextFixture(ctx context.Context) domain.Fixture {
	if v, ok := s.cache.Get(nextFixtureKey); ok {
		if fixture, ok := v.(domain.Fixture); ok {
			return fixture
		}
	}

	fixture, err := s.fetchNextFixture(ctx)
	if errors.Is(err, errNoData) {
		return fallbackFixture()
	}
	if err != nil {
		s.warn("next fixture fetch failed", err)
		return fallbackFixture()
	}

	s.cache.Set(nextFixtureKey, fixture)
	return fixture
}

func (s *Service) fetchStandings(ctx context.Context) ([]domain.Standing, error) {
	if s.upstream == nil {
		return nil, errors.New("upstream is not configured")
	}
	resp, err := s.upstream.Standings(ctx)
	if err != nil {
		return nil, err
	}
	if len(resp.Standings) == 0 || len(resp.Standings[0].Table) == 0 {
		return nil, fmt.Errorf("standings: %w", errNoData)
	}

	rows := resp.Standings[0].Table
	if len(rows) > standingsRows {
		rows = rows[:standingsRows]
	}

	table := make([]domain.Standing, 0, len(rows))
	for i, row := range rows {
		table = append(table, domain.Standing{
			Pos:    i + 1,
			Team:   shortName(row.Team.Name),
			Played: row.PlayedGames,
			GD:     signed(row.GoalDifference),
			Points: row.Points,
			Color:  colorOf(row.Team.Name),
		})
	}
	return table, nil
}

func (s *Service) fetchTopScorer(ctx context.Context) (domain.TopScorer, error) {
	if s.upstream == nil {
		return domain.TopScorer{}, errors.New("upstream is not configured")
	}
	resp, err := s.upstream.TopScorers(ctx, 1)
	if err != nil {
		return domain.TopScorer{}, err
	}
	if len(resp.Scorers) == 0 {
		return domain.TopScorer{}, fmt.Errorf("scorers: %w", errNoData)
	}

	scorer := resp.Scorers[0]
	return domain.TopScorer{
		Name:     scorer.Player.Name,
		Team:     shortName(scorer.Team.Name),
		Position: positionCode(scorer.Player.Position),
		Number:   valueOf(scorer.Player.ShirtNumber),
		Stats: []domain.Stat{
			{Label: "Goals", Value: strconv.Itoa(valueOf(scorer.Goals))},
			{Label: "Assists", Value: strconv.Itoa(valueOf(scorer.Assists))},
			{Label: "Matches", Value: strconv.Itoa(valueOf(scorer.PlayedMatches))},
			{Label: "Penalties", Value: strconv.Itoa(valueOf(scorer.Penalties))},
		},
		Form: []string{},
	}, nil
}

func (s *Service) fetchNextFixture(ctx context.Context) (domain.Fixture, error) {
	if s.upstream == nil {
		return domain.Fixture{}, errors.New("upstream is not configured")
	}
	resp, err := s.upstream.ScheduledMatches(ctx, 1)
	if err != nil {
		return domain.Fixture{}, err
	}
	if len(resp.Matches) == 0 {
		return domain.Fixture{}, errNoData
	}

	match := resp.Matches[0]
	return domain.Fixture{
		HomeTeam:   shortName(match.HomeTeam.Name),
		AwayTeam:   shortName(match.AwayTeam.Name),
		HomeAbbrev: abbrevOf(match.HomeTeam.Name, match.HomeTeam.TLA),
		AwayAbbrev: abbrevOf(match.AwayTeam.Name, match.AwayTeam.TLA),
		HomeColor:  colorOf(match.HomeTeam.Name),
		AwayColor:  colorOf(match.AwayTeam.Name),
		Matchweek:  match.Matchday,
		Date:       match.UTCDate.UTC().Format("Mon 2 Jan"),
		Status:     "UPCOMING",
	}, nil
}

func (s *Service) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, slog.Any("error", err))
	}
}

func signed(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func valueOf(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
