package domain

// Standing is one display row of the league table.
type Standing struct {
	Pos    int    `json:"pos"`
	Team   string `json:"team"`
	Played int    `json:"p"`
	GD     string `json:"gd"`
	Points int    `json:"pts"`
	Color  string `json:"color"`
}

// Stat is a labelled figure shown on the top scorer card.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TopScorer describes the league's leading goalscorer.
type TopScorer struct {
	Name     string   `json:"name"`
	Team     string   `json:"team"`
	Position string   `json:"position"`
	Number   int      `json:"number"`
	Stats    []Stat   `json:"stats"`
	Form     []string `json:"form"`
}

// Fixture is the next scheduled league match.
type Fixture struct {
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	HomeAbbrev string `json:"homeAbbrev"`
	AwayAbbrev string `json:"awayAbbrev"`
	HomeColor  string `json:"homeColor"`
	AwayColor  string `json:"awayColor"`
	Matchweek  int    `json:"matchweek"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}
