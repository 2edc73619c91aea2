// Package filter selects the games worth reporting from a team's schedule.
//
// A game is kept when, in the reference timezone, it falls on the target weekday, the
// queried team is the home team, and it starts strictly before the cutoff hour:
//
//	f := filter.New(time.Saturday, 17, eastern, "ET")
//	records := f.Select(142, resp)
//
// Games are returned in schedule order. Missing timestamps are skipped and missing
// opponent or venue names become "Unknown".
package filter

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/mlb-saturday-games/internal/game"
	"github.com/pfrederiksen/mlb-saturday-games/internal/logger"
	"github.com/pfrederiksen/mlb-saturday-games/internal/schedule"
)

const (
	DateLayout = "2006-01-02"
	// TimeLayout is a zero-padded 12-hour clock, e.g. "01:05 PM".
	TimeLayout = "03:04 PM"
	Unknown    = "Unknown"
)

// Filter holds the selection criteria.
type Filter struct {
	Weekday    time.Weekday
	CutoffHour int
	Location   *time.Location
	ZoneLabel  string
}

// New creates a filter. A nil location means UTC.
func New(weekday time.Weekday, cutoffHour int, loc *time.Location, zoneLabel string) *Filter {
	if loc == nil {
		loc = time.UTC
	}
	return &Filter{
		Weekday:    weekday,
		CutoffHour: cutoffHour,
		Location:   loc,
		ZoneLabel:  zoneLabel,
	}
}

// LocalStart parses the game's UTC timestamp and converts it to the filter's zone.
// ok is false when the timestamp is missing or unparseable.
func (f *Filter) LocalStart(g schedule.Game) (t time.Time, ok bool) {
	if g.GameDate == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, g.GameDate)
	if err != nil {
		logger.Debug("skipping game with unparseable timestamp", logger.Fields{
			"game_pk":   g.GamePk,
			"game_date": g.GameDate,
		})
		return time.Time{}, false
	}
	return parsed.In(f.Location), true
}

// Matches reports whether g is a home game for teamID on the target weekday that
// starts before the cutoff hour.
func (f *Filter) Matches(teamID int, g schedule.Game) bool {
	local, ok := f.LocalStart(g)
	if !ok {
		return false
	}
	if local.Weekday() != f.Weekday {
		return false
	}
	if g.Teams.Home.Team.ID != teamID {
		return false
	}
	return local.Hour() < f.CutoffHour
}

// Record formats g for output. It does not apply the selection criteria.
func (f *Filter) Record(g schedule.Game) game.Record {
	local, _ := f.LocalStart(g)

	clock := local.Format(TimeLayout)
	if f.ZoneLabel != "" {
		clock = fmt.Sprintf("%s %s", clock, f.ZoneLabel)
	}

	return game.Record{
		Date:     local.Format(DateLayout),
		Time:     clock,
		Opponent: orUnknown(g.Teams.Away.Team.Name),
		Venue:    orUnknown(g.Venue.Name),
	}
}

// Select returns a record for every matching game in resp, in schedule order.
// The result is never nil.
func (f *Filter) Select(teamID int, resp *schedule.Response) []game.Record {
	records := []game.Record{}
	if resp == nil {
		return records
	}
	for _, d := range resp.Dates {
		for _, g := range d.Games {
			if f.Matches(teamID, g) {
				records = append(records, f.Record(g))
			}
		}
	}
	return records
}

// DayName is the weekday as printed in report headings, e.g. "Saturday".
func (f *Filter) DayName() string {
	return f.Weekday.String()
}

// String describes the criteria, e.g. "Saturday home games before 17:00 America/New_York".
func (f *Filter) String() string {
	return fmt.Sprintf("%s home games before %02d:00 %s", f.Weekday, f.CutoffHour, f.Location)
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
