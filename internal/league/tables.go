package league

const defaultColor = "#3b82f6"

type club struct {
	short  string
	abbrev string
	color  string
}

// clubs maps football-data.org team names to display attributes.
var clubs = map[string]club{
	"Arsenal FC":                 {"Arsenal", "ARS", "#ef0107"},
	"Manchester City FC":         {"Man City", "MCI", "#6cabdd"},
	"Aston Villa FC":             {"Aston Villa", "AVL", "#670e36"},
	"Manchester United FC":       {"Man United", "MUN", "#da291c"},
	"Chelsea FC":                 {"Chelsea", "CHE", "#034694"},
	"Liverpool FC":               {"Liverpool", "LIV", "#c8102e"},
	"Newcastle United FC":        {"Newcastle", "NEW", "#241f20"},
	"Tottenham Hotspur FC":       {"Spurs", "TOT", "#132257"},
	"Brighton & Hove Albion FC":  {"Brighton", "BHA", "#0057b8"},
	"West Ham United FC":         {"West Ham", "WHU", "#7a263a"},
	"AFC Bournemouth":            {"Bournemouth", "BOU", "#da291c"},
	"Wolverhampton Wanderers FC": {"Wolves", "WOL", "#fdb913"},
	"Fulham FC":                  {"Fulham", "FUL", "#000000"},
	"Crystal Palace FC":          {"Crystal Palace", "CRY", "#1b458f"},
	"Brentford FC":               {"Brentford", "BRE", "#e30613"},
	"Everton FC":                 {"Everton", "EVE", "#003399"},
	"Nottingham Forest FC":       {"Nott'm Forest", "NFO", "#dd0000"},
	"Leicester City FC":          {"Leicester", "LEI", "#003090"},
	"Ipswich Town FC":            {"Ipswich", "IPS", "#0033a0"},
	"Southampton FC":             {"Southampton", "SOU", "#d71920"},
}

func shortName(name string) string {
	if c, ok := clubs[name]; ok {
		return c.short
	}
	return name
}

func abbrevOf(name, tla string) string {
	if c, ok := clubs[name]; ok {
		return c.abbrev
	}
	return tla
}

func colorOf(name string) string {
	if c, ok := clubs[name]; ok {
		return c.color
	}
	return defaultColor
}

var positionCodes = map[string]string{
	"Centre-Forward":     "ST",
	"Right Winger":       "RW",
	"Left Winger":        "LW",
	"Attacking Midfield": "AM",
}

func positionCode(position string) string {
	if code, ok := positionCodes[position]; ok {
		return code
	}
	if position == "" {
		return "FW"
	}
	return position
}
