// Package report renders a result set for the console.
//
// The text format prints, per team in result-set order, either a heading and a grid
// table of games or a single "no games found" line. The json format prints the same
// document that is written to the results file, and the ics format prints a calendar feed.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pfrederiksen/mlb-saturday-games/internal/calendar"
	"github.com/pfrederiksen/mlb-saturday-games/internal/game"
	"github.com/pfrederiksen/mlb-saturday-games/internal/storage"
)

// OutputFormat specifies the console output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatICS:
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", s)
}

// Options carries presentation details that are not part of the result set.
type Options struct {
	// DayName is the weekday used in headings, e.g. "Saturday".
	DayName  string
	Calendar calendar.Options
}

func (o Options) dayName() string {
	if o.DayName == "" {
		return "Saturday"
	}
	return o.DayName
}

// Write renders rs to w in the given format.
func Write(w io.Writer, rs *game.ResultSet, format OutputFormat, opts Options) error {
	switch format {
	case FormatText:
		return WriteText(w, rs, opts)
	case FormatJSON:
		return writeJSON(w, rs)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(rs, opts.Calendar))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, rs *game.ResultSet) error {
	data, err := storage.Encode(rs)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteText prints a heading and table per team, or a one-line notice for teams with no games.
func WriteText(w io.Writer, rs *game.ResultSet, opts Options) error {
	day := opts.dayName()
	for _, team := range rs.Teams() {
		games := rs.Games(team)
		if len(games) == 0 {
			if _, err := fmt.Fprintf(w, "\n%s: No %s afternoon home games found.\n", team, day); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "\n%s %s Afternoon Home Games:\n", team, day); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, RenderTable(games)); err != nil {
			return err
		}
	}
	return nil
}

// RenderTable renders games as a bordered grid with a line between every row.
func RenderTable(games []game.Record) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date", "Time", "Opponent", "Venue"})
	for _, g := range games {
		t.AppendRow(table.Row{g.Date, g.Time, g.Opponent, g.Venue})
	}

	style := table.StyleDefault
	style.Options.SeparateRows = true
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	return t.Render()
}

// WriteSaved prints the confirmation line for the results file.
func WriteSaved(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "\nResults also saved to '%s'\n", path)
	return err
}
