package league

import "Pindexa/internal/domain"

// Static values served when football-data.org cannot be reached.
// Each call builds fresh slices so callers cannot corrupt them.

func fallbackStandings() []domain.Standing {
	return []domain.Standing{
		{Pos: 1, Team: "Arsenal", Played: 26, GD: "+32", Points: 57, Color: "#ef0107"},
		{Pos: 2, Team: "Man City", Played: 26, GD: "+30", Points: 53, Color: "#6cabdd"},
		{Pos: 3, Team: "Aston Villa", Played: 26, GD: "+10", Points: 50, Color: "#670e36"},
		{Pos: 4, Team: "Man United", Played: 26, GD: "+10", Points: 45, Color: "#da291c"},
		{Pos: 5, Team: "Chelsea", Played: 26, GD: "+17", Points: 44, Color: "#034694"},
		{Pos: 6, Team: "Liverpool", Played: 26, GD: "+6", Points: 42, Color: "#c8102e"},
	}
}

func fallbackScorer() domain.TopScorer {
	return domain.TopScorer{
		Name:     "Erling Haaland",
		Team:     "Man City",
		Position: "ST",
		Number:   9,
		Stats: []domain.Stat{
			{Label: "Goals", Value: "22"},
			{Label: "Assists", Value: "6"},
			{Label: "Matches", Value: "26"},
			{Label: "Form", Value: "W-W-W"},
		},
		Form: []string{"W", "W", "W", "D", "W"},
	}
}

func fallbackFixture() domain.Fixture {
	return domain.Fixture{
		HomeTeam:   "Arsenal",
		AwayTeam:   "Chelsea",
		HomeAbbrev: "ARS",
		AwayAbbrev: "CHE",
		HomeColor:  "#ef0107",
		AwayColor:  "#034694",
		Matchweek:  27,
		Date:       "Sun 1 Mar",
		Status:     "UPCOMING",
	}
}
