// Package finder runs the fetch-filter pipeline over the configured roster.
//
// Each team's schedule is fetched once. A failed fetch is logged and recorded as an
// empty list so the remaining teams and the results file are unaffected. Teams appear
// in the result set in roster order regardless of the order in which fetches finish.
package finder

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/mlb-saturday-games/internal/config"
	"github.com/pfrederiksen/mlb-saturday-games/internal/filter"
	"github.com/pfrederiksen/mlb-saturday-games/internal/game"
	"github.com/pfrederiksen/mlb-saturday-games/internal/logger"
	"github.com/pfrederiksen/mlb-saturday-games/internal/schedule"
)

const (
	MetricFetch       = "schedule.fetch"
	MetricFetchErrors = "schedule.fetch.errors"
	MetricSelected    = "games.selected"
)

// Fetcher retrieves one team's schedule.
type Fetcher interface {
	FetchTeamSchedule(ctx context.Context, q schedule.Query) (*schedule.Response, error)
}

// Summary counts what happened during a run.
type Summary struct {
	Teams       int
	Games       int
	FailedTeams []string
}

// Result is the outcome of a run.
type Result struct {
	Games   *game.ResultSet
	Summary Summary
}

// Option customizes a Finder.
type Option func(*Finder)

// WithProgress registers a callback invoked once per team after its schedule is processed.
// It may be called from several goroutines when concurrency is above one.
func WithProgress(fn func(team config.Team)) Option {
	return func(f *Finder) { f.onProgress = fn }
}

// WithLogger replaces the package default logger.
func WithLogger(l *logger.Logger) Option {
	return func(f *Finder) { f.log = l }
}

// WithMetrics replaces a fresh metrics tracker.
func WithMetrics(m *logger.Metrics) Option {
	return func(f *Finder) { f.metrics = m }
}

// Finder runs the pipeline for one configuration.
type Finder struct {
	cfg        *config.Config
	fetcher    Fetcher
	filter     *filter.Filter
	log        *logger.Logger
	metrics    *logger.Metrics
	onProgress func(team config.Team)
}

// New validates cfg and prepares a finder.
func New(cfg *config.Config, fetcher Fetcher, opts ...Option) (*Finder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	f := &Finder{
		cfg:     cfg,
		fetcher: fetcher,
		filter:  filter.New(cfg.Day(), cfg.CutoffHour, loc, cfg.ZoneLabel),
		log:     logger.Default(),
		metrics: logger.NewMetrics(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Filter returns the selection criteria in use.
func (f *Finder) Filter() *filter.Filter {
	return f.filter
}

// Metrics returns the tracker the run records into.
func (f *Finder) Metrics() *logger.Metrics {
	return f.metrics
}

// Run fetches and filters every team. It only fails if ctx is done.
func (f *Finder) Run(ctx context.Context) (*Result, error) {
	teams := f.cfg.Teams
	selected := make([][]game.Record, len(teams))
	failed := make([]bool, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.Concurrency)

	for i, team := range teams {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			records, err := f.processTeam(gctx, team)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failed[i] = true
			}
			selected[i] = records
			if f.onProgress != nil {
				f.onProgress(team)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Games: game.NewResultSet()}
	for i, team := range teams {
		result.Games.Add(team.Name, selected[i]...)
		result.Summary.Games += len(selected[i])
		if failed[i] {
			result.Summary.FailedTeams = append(result.Summary.FailedTeams, team.Name)
		}
	}
	result.Summary.Teams = len(teams)

	f.log.Debug("run complete", logger.Fields{
		"teams":        result.Summary.Teams,
		"games":        result.Summary.Games,
		"failed_teams": len(result.Summary.FailedTeams),
		"metrics":      f.metrics.Snapshot(),
	})
	return result, nil
}

// processTeam fetches and filters one team. On error the returned list is empty, not nil.
func (f *Finder) processTeam(ctx context.Context, team config.Team) ([]game.Record, error) {
	fields := logger.Fields{"team": team.Name, "team_id": team.ID}
	f.log.Info("fetching schedule", fields)

	start := time.Now()
	resp, err := f.fetcher.FetchTeamSchedule(ctx, schedule.Query{
		TeamID:   team.ID,
		Season:   f.cfg.Season,
		SportID:  f.cfg.SportID,
		GameType: f.cfg.GameType,
		Hydrate:  f.cfg.Hydrate,
	})
	f.metrics.RecordTiming(MetricFetch, time.Since(start))

	if err != nil {
		f.metrics.IncrCounter(MetricFetchErrors)
		if ctx.Err() == nil {
			warn := logger.Fields{"team": team.Name, "team_id": team.ID, "error": err.Error()}
			if code := schedule.StatusCode(err); code != 0 {
				warn["status"] = code
			}
			if errors.Is(err, schedule.ErrDecode) {
				warn["reason"] = "malformed response"
			}
			f.log.Warn("error fetching schedule", warn)
		}
		return []game.Record{}, err
	}

	records := f.filter.Select(team.ID, resp)
	for range records {
		f.metrics.IncrCounter(MetricSelected)
	}
	f.log.Debug("schedule filtered", logger.Fields{
		"team":     team.Name,
		"games":    resp.GameCount(),
		"selected": len(records),
	})
	return records, nil
}
