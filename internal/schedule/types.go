package schedule

// Response is the body of the Stats API /schedule endpoint, reduced to the fields used here.
type Response struct {
	TotalGames int         `json:"totalGames"`
	Dates      []DateEntry `json:"dates"`
}

// DateEntry groups the games played on one calendar date.
type DateEntry struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// Game is one scheduled game. GameDate is an RFC 3339 UTC timestamp such as
// "2025-04-05T17:05:00Z".
type Game struct {
	GamePk   int      `json:"gamePk"`
	GameDate string   `json:"gameDate"`
	Teams    Matchup  `json:"teams"`
	Venue    VenueRef `json:"venue"`
}

// Matchup holds both sides of a game.
type Matchup struct {
	Home Side `json:"home"`
	Away Side `json:"away"`
}

// Side is one team's entry in a matchup.
type Side struct {
	Team TeamRef `json:"team"`
}

// TeamRef is a team as embedded by the "team" hydration.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// VenueRef is a venue as embedded by the "venue" hydration.
type VenueRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GameCount returns the number of games across all dates.
func (r *Response) GameCount() int {
	n := 0
	for _, d := range r.Dates {
		n += len(d.Games)
	}
	return n
}
