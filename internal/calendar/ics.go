// Package calendar renders selected games as an iCalendar (RFC 5545) feed.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/mlb-saturday-games/internal/filter"
	"github.com/pfrederiksen/mlb-saturday-games/internal/game"
)

const (
	ProdID = "-//MLB Saturday Games//mlb-saturday-games//EN"
	// DefaultDuration is a typical nine-inning game.
	DefaultDuration = 3 * time.Hour
	uidDomain       = "mlb-saturday-games"
)

// Options controls how records are placed on the calendar.
type Options struct {
	// Location is the zone the record times are expressed in.
	Location *time.Location
	// ZoneLabel is the suffix stripped from record times, e.g. "ET".
	ZoneLabel string
	Duration  time.Duration
	// Now stamps DTSTAMP; defaults to time.Now.
	Now func() time.Time
}

// StartTime recovers a game's start instant from its formatted date and time.
func StartTime(rec game.Record, loc *time.Location, zoneLabel string) (time.Time, error) {
	clock := strings.TrimSpace(rec.Time)
	if zoneLabel != "" {
		clock = strings.TrimSpace(strings.TrimSuffix(clock, zoneLabel))
	}
	t, err := time.ParseInLocation(filter.DateLayout+" "+filter.TimeLayout, rec.Date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start of %s %s: %w", rec.Date, rec.Time, err)
	}
	return t, nil
}

// GenerateICS builds one VCALENDAR with a VEVENT per record, teams in result-set order.
// Records whose time cannot be parsed are skipped.
func GenerateICS(rs *game.ResultSet, opts Options) string {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stamp := formatICSTime(now())

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", ProdID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, team := range rs.Teams() {
		for _, rec := range rs.Games(team) {
			start, err := StartTime(rec, loc, opts.ZoneLabel)
			if err != nil {
				continue
			}
			writeEvent(&ics, team, rec, start, start.Add(duration), stamp)
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, team string, rec game.Record, start, end time.Time, stamp string) {
	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@%s\r\n", EventID(team, rec), uidDomain))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(fmt.Sprintf("%s at %s", rec.Opponent, team))))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(fmt.Sprintf("%s\n%s vs %s", rec.Time, team, rec.Opponent))))
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(rec.Venue)))
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// EventID is a deterministic identifier for one team's game.
func EventID(team string, rec game.Record) string {
	h := sha1.New()
	h.Write([]byte(team + "|" + rec.Date + "|" + rec.Time + "|" + rec.Opponent))
	return fmt.Sprintf("%x", h.Sum(nil))
}

func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes text values per RFC 5545 section 3.3.11.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
