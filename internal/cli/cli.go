package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mlb-saturday-games/internal/config"
	"github.com/pfrederiksen/mlb-saturday-games/internal/finder"
	"github.com/pfrederiksen/mlb-saturday-games/internal/logger"
	"github.com/pfrederiksen/mlb-saturday-games/internal/report"
	"github.com/pfrederiksen/mlb-saturday-games/internal/schedule"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is reported by --version.
var Version = "dev"

var (
	flagConfig      string
	flagTeams       []string
	flagSeason      int
	flagTimezone    string
	flagZoneLabel   string
	flagCutoffHour  int
	flagWeekday     string
	flagOutput      string
	flagFormat      string
	flagBaseURL     string
	flagTimeout     time.Duration
	flagConcurrency int
	flagNoProgress  bool
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mlb-saturday-games",
		Short: "Find Saturday afternoon home games for a roster of MLB teams",
		Long: `Fetches each team's regular-season schedule from the MLB Stats API and lists
the home games played on Saturday that start before 5 PM Eastern.
Results are printed per team and saved to a JSON file.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFind,
	}

	def := config.Default()

	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
	cmd.Flags().StringArrayVar(&flagTeams, "team", nil, "Team as Name=ID; repeat to replace the built-in roster")
	cmd.Flags().IntVar(&flagSeason, "season", def.Season, "Season year")
	cmd.Flags().StringVar(&flagTimezone, "timezone", def.Timezone, "IANA timezone used for the weekday and cutoff")
	cmd.Flags().StringVar(&flagZoneLabel, "zone-label", def.ZoneLabel, "Label appended to printed start times")
	cmd.Flags().IntVar(&flagCutoffHour, "cutoff-hour", def.CutoffHour, "Games must start before this local hour")
	cmd.Flags().StringVar(&flagWeekday, "weekday", def.Weekday, "Day of the week to select")
	cmd.Flags().StringVar(&flagOutput, "output", def.OutputPath, "Results file; {season} is replaced by the season year")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or ics")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", def.BaseURL, "Stats API base URL")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", def.Timeout, "Per-request timeout")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", def.Concurrency, "Number of schedules fetched at once")
	cmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "Hide the progress bar")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runFind is the main command logic
func runFind(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client := schedule.NewClient(schedule.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})

	bar := progressbar.NewOptions(len(cfg.Teams),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Fetching schedules"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(!flagNoProgress),
	)

	f, err := finder.New(cfg, client,
		finder.WithLogger(log),
		finder.WithProgress(func(config.Team) { _ = bar.Add(1) }),
	)
	if err != nil {
		return err
	}

	log.Info("starting run", logger.Fields{
		"teams":    len(cfg.Teams),
		"season":   cfg.Season,
		"criteria": f.Filter().String(),
	})

	result, err := f.Run(cmd.Context())
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("fetching schedules: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	opts := reportOptions(f, loc, cfg.ZoneLabel)

	path, err := writeResults(cmd.OutOrStdout(), result, format, opts, cfg.ResolvedOutputPath())
	if err != nil {
		return err
	}

	log.Debug("results saved", logger.Fields{
		"path":    path,
		"games":   result.Summary.Games,
		"metrics": f.Metrics().Snapshot(),
	})
	return nil
}

// applyFlags overrides cfg with every flag set explicitly on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("team") {
		teams, err := config.ParseTeams(flagTeams)
		if err != nil {
			return err
		}
		cfg.Teams = teams
	}
	if flags.Changed("season") {
		cfg.Season = flagSeason
	}
	if flags.Changed("timezone") {
		cfg.Timezone = flagTimezone
	}
	if flags.Changed("zone-label") {
		cfg.ZoneLabel = flagZoneLabel
	}
	if flags.Changed("cutoff-hour") {
		cfg.CutoffHour = flagCutoffHour
	}
	if flags.Changed("weekday") {
		cfg.Weekday = flagWeekday
	}
	if flags.Changed("output") {
		cfg.OutputPath = flagOutput
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = flagBaseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = flagConcurrency
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
