package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/mlb-saturday-games/internal/calendar"
	"github.com/pfrederiksen/mlb-saturday-games/internal/finder"
	"github.com/pfrederiksen/mlb-saturday-games/internal/report"
	"github.com/pfrederiksen/mlb-saturday-games/internal/storage"
)

func reportOptions(f *finder.Finder, loc *time.Location, zoneLabel string) report.Options {
	return report.Options{
		DayName: f.Filter().DayName(),
		Calendar: calendar.Options{
			Location:  loc,
			ZoneLabel: zoneLabel,
		},
	}
}

// writeResults prints the result set in the requested format, then saves the JSON
// results file. Only the text format prints the confirmation line, so json and ics
// output stays machine-readable. A failure to save is returned.
func writeResults(w io.Writer, result *finder.Result, format report.OutputFormat, opts report.Options, outputPath string) (string, error) {
	if err := report.Write(w, result.Games, format, opts); err != nil {
		return "", fmt.Errorf("writing output: %w", err)
	}

	path, err := storage.SaveResults(outputPath, result.Games)
	if err != nil {
		return "", fmt.Errorf("saving results: %w", err)
	}

	if format == report.FormatText {
		if err := report.WriteSaved(w, path); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
	}
	return path, nil
}
