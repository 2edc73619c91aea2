package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	DefaultSeason      = 2025
	DefaultSportID     = 1
	DefaultGameType    = "R"
	DefaultHydrate     = "team,venue"
	DefaultTimezone    = "America/New_York"
	DefaultZoneLabel   = "ET"
	DefaultCutoffHour  = 17
	DefaultOutputPath  = "mlb_saturday_afternoon_home_games_{season}.json"
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 1
)

// Team is one roster entry: a display name and the Stats API team id.
type Team struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

// Config holds every knob of a run.
type Config struct {
	Teams       []Team        `yaml:"teams"`
	Season      int           `yaml:"season"`
	SportID     int           `yaml:"sport_id"`
	GameType    string        `yaml:"game_type"`
	Hydrate     string        `yaml:"hydrate"`
	Timezone    string        `yaml:"timezone"`
	ZoneLabel   string        `yaml:"zone_label"`
	Weekday     string        `yaml:"weekday"`
	CutoffHour  int           `yaml:"cutoff_hour"`
	OutputPath  string        `yaml:"output"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// DefaultTeams is the built-in roster.
func DefaultTeams() []Team {
	return []Team{
		{Name: "Atlanta Braves", ID: 144},
		{Name: "Chicago White Sox", ID: 145},
		{Name: "Milwaukee Brewers", ID: 158},
		{Name: "Minnesota Twins", ID: 142},
		{Name: "Washington Nationals", ID: 120},
		{Name: "St. Louis Cardinals", ID: 138},
		{Name: "Cincinnati Reds", ID: 113},
		{Name: "Cleveland Guardians", ID: 114},
		{Name: "Colorado Rockies", ID: 115},
	}
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Teams:       DefaultTeams(),
		Season:      DefaultSeason,
		SportID:     DefaultSportID,
		GameType:    DefaultGameType,
		Hydrate:     DefaultHydrate,
		Timezone:    DefaultTimezone,
		ZoneLabel:   DefaultZoneLabel,
		Weekday:     time.Saturday.String(),
		CutoffHour:  DefaultCutoffHour,
		OutputPath:  DefaultOutputPath,
		BaseURL:     DefaultBaseURL,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
	}
}

// Load builds a config from defaults, an optional YAML file, and the environment
// (including a .env file in the working directory when one exists).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	// Fields absent from the file keep their current values.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from MLB_* variables looked up through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("MLB_SEASON"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MLB_SEASON: %w", err)
		}
		c.Season = n
	}
	if v := getenv("MLB_CUTOFF_HOUR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MLB_CUTOFF_HOUR: %w", err)
		}
		c.CutoffHour = n
	}
	if v := getenv("MLB_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MLB_CONCURRENCY: %w", err)
		}
		c.Concurrency = n
	}
	if v := getenv("MLB_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MLB_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := getenv("MLB_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := getenv("MLB_ZONE_LABEL"); v != "" {
		c.ZoneLabel = v
	}
	if v := getenv("MLB_WEEKDAY"); v != "" {
		c.Weekday = v
	}
	if v := getenv("MLB_OUTPUT"); v != "" {
		c.OutputPath = v
	}
	if v := getenv("MLB_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	return nil
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Teams) == 0 {
		errs = append(errs, errors.New("team roster is empty"))
	}
	seen := make(map[string]bool, len(c.Teams))
	for _, t := range c.Teams {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("team with id %d has no name", t.ID))
			continue
		}
		if t.ID <= 0 {
			errs = append(errs, fmt.Errorf("team %q has invalid id %d", name, t.ID))
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("team %q listed twice", name))
		}
		seen[name] = true
	}

	if c.Season <= 0 {
		errs = append(errs, fmt.Errorf("invalid season: %d", c.Season))
	}
	if c.CutoffHour < 0 || c.CutoffHour > 24 {
		errs = append(errs, fmt.Errorf("cutoff hour must be between 0 and 24, got %d", c.CutoffHour))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseWeekday(c.Weekday); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if c.BaseURL == "" {
		errs = append(errs, errors.New("base URL is empty"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency))
	}

	return errors.Join(errs...)
}

// Location resolves the reference timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Day returns the configured weekday. Call Validate first; an invalid value yields Saturday.
func (c *Config) Day() time.Weekday {
	d, err := ParseWeekday(c.Weekday)
	if err != nil {
		return time.Saturday
	}
	return d
}

// ResolvedOutputPath returns the output path with {season} replaced by the season year.
func (c *Config) ResolvedOutputPath() string {
	return strings.ReplaceAll(c.OutputPath, "{season}", strconv.Itoa(c.Season))
}
