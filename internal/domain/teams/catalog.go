package teams

import (
	"sort"
	"strings"
)

type catalogEntry struct {
	nbaID         int
	balldontlieID int
	fullName      string
}

// catalog is keyed by upper-case abbreviation. balldontlie ids are alphabetical by abbreviation.
var catalog = map[string]catalogEntry{
	"ATL": {1610612737, 1, "Atlanta Hawks"},
	"BOS": {1610612738, 2, "Boston Celtics"},
	"BKN": {1610612751, 3, "Brooklyn Nets"},
	"CHA": {1610612766, 4, "Charlotte Hornets"},
	"CHI": {1610612741, 5, "Chicago Bulls"},
	"CLE": {1610612739, 6, "Cleveland Cavaliers"},
	"DAL": {1610612742, 7, "Dallas Mavericks"},
	"DEN": {1610612743, 8, "Denver Nuggets"},
	"DET": {1610612765, 9, "Detroit Pistons"},
	"GSW": {1610612744, 10, "Golden State Warriors"},
	"HOU": {1610612745, 11, "Houston Rockets"},
	"IND": {1610612754, 12, "Indiana Pacers"},
	"LAC": {1610612746, 13, "Los Angeles Clippers"},
	"LAL": {1610612747, 14, "Los Angeles Lakers"},
	"MEM": {1610612763, 15, "Memphis Grizzlies"},
	"MIA": {1610612748, 16, "Miami Heat"},
	"MIL": {1610612749, 17, "Milwaukee Bucks"},
	"MIN": {1610612750, 18, "Minnesota Timberwolves"},
	"NOP": {1610612740, 19, "New Orleans Pelicans"},
	"NYK": {1610612752, 20, "New York Knicks"},
	"OKC": {1610612760, 21, "Oklahoma City Thunder"},
	"ORL": {1610612753, 22, "Orlando Magic"},
	"PHI": {1610612755, 23, "Philadelphia 76ers"},
	"PHX": {1610612756, 24, "Phoenix Suns"},
	"POR": {1610612757, 25, "Portland Trail Blazers"},
	"SAC": {1610612758, 26, "Sacramento Kings"},
	"SAS": {1610612759, 27, "San Antonio Spurs"},
	"TOR": {1610612761, 28, "Toronto Raptors"},
	"UTA": {1610612762, 29, "Utah Jazz"},
	"WAS": {1610612764, 30, "Washington Wizards"},
}

func lookup(abbr string) (catalogEntry, bool) {
	entry, ok := catalog[strings.ToUpper(strings.TrimSpace(abbr))]
	return entry, ok
}

// Known reports whether abbr names an NBA team.
func Known(abbr string) bool {
	_, ok := lookup(abbr)
	return ok
}

// NBAID returns the NBA stats/CDN team id.
func NBAID(abbr string) (int, bool) {
	entry, ok := lookup(abbr)
	return entry.nbaID, ok
}

// BalldontlieID returns the upstream balldontlie team id.
func BalldontlieID(abbr string) (int, bool) {
	entry, ok := lookup(abbr)
	return entry.balldontlieID, ok
}

// FullName returns the team's full name, or abbr unchanged when unknown.
func FullName(abbr string) string {
	if entry, ok := lookup(abbr); ok {
		return entry.fullName
	}
	return abbr
}

// Abbreviations returns every catalog abbreviation, sorted.
func Abbreviations() []string {
	out := make([]string, 0, len(catalog))
	for abbr := range catalog {
		out = append(out, abbr)
	}
	sort.Strings(out)
	return out
}
