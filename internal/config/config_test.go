package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if len(cfg.Teams) != 9 {
		t.Errorf("default roster has %d teams, want 9", len(cfg.Teams))
	}
	if cfg.Teams[0] != (Team{Name: "Atlanta Braves", ID: 144}) {
		t.Errorf("first team = %+v, want Atlanta Braves/144", cfg.Teams[0])
	}
	if cfg.Season != 2025 || cfg.CutoffHour != 17 || cfg.Day() != time.Saturday {
		t.Errorf("unexpected defaults: season=%d cutoff=%d day=%v", cfg.Season, cfg.CutoffHour, cfg.Day())
	}
	if got := cfg.ResolvedOutputPath(); got != "mlb_saturday_afternoon_home_games_2025.json" {
		t.Errorf("ResolvedOutputPath() = %q", got)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
teams:
  - name: Minnesota Twins
    id: 142
season: 2024
cutoff_hour: 16
timeout: 5s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("MLB_SEASON", "2026")
	t.Setenv("MLB_WEEKDAY", "sun")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Teams) != 1 || cfg.Teams[0].Name != "Minnesota Twins" {
		t.Errorf("Teams = %+v, want only Minnesota Twins", cfg.Teams)
	}
	if cfg.Season != 2026 {
		t.Errorf("Season = %d, want env override 2026", cfg.Season)
	}
	if cfg.CutoffHour != 16 {
		t.Errorf("CutoffHour = %d, want 16 from file", cfg.CutoffHour)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Timeout)
	}
	if cfg.Day() != time.Sunday {
		t.Errorf("Day() = %v, want Sunday", cfg.Day())
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("Timezone = %q, want default kept", cfg.Timezone)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("season: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MLB_TIMEZONE":    "America/Chicago",
		"MLB_ZONE_LABEL":  "CT",
		"MLB_CUTOFF_HOUR": "18",
		"MLB_OUTPUT":      "out.json",
		"MLB_BASE_URL":    "http://localhost:9999",
		"MLB_TIMEOUT":     "2s",
		"MLB_CONCURRENCY": "4",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Timezone != "America/Chicago" || cfg.ZoneLabel != "CT" || cfg.CutoffHour != 18 ||
		cfg.OutputPath != "out.json" || cfg.BaseURL != "http://localhost:9999" ||
		cfg.Timeout != 2*time.Second || cfg.Concurrency != 4 {
		t.Errorf("ApplyEnv() left %+v", cfg)
	}

	for _, key := range []string{"MLB_SEASON", "MLB_CUTOFF_HOUR", "MLB_CONCURRENCY", "MLB_TIMEOUT"} {
		t.Run(key, func(t *testing.T) {
			err := Default().ApplyEnv(func(k string) string {
				if k == key {
					return "not-a-number"
				}
				return ""
			})
			if err == nil || !strings.Contains(err.Error(), key) {
				t.Errorf("ApplyEnv() error = %v, want mention of %s", err, key)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty roster", func(c *Config) { c.Teams = nil }, "roster is empty"},
		{"duplicate team", func(c *Config) { c.Teams = append(c.Teams, c.Teams[0]) }, "listed twice"},
		{"unnamed team", func(c *Config) { c.Teams = []Team{{ID: 1}} }, "has no name"},
		{"bad id", func(c *Config) { c.Teams = []Team{{Name: "X", ID: 0}} }, "invalid id"},
		{"bad season", func(c *Config) { c.Season = 0 }, "invalid season"},
		{"cutoff too high", func(c *Config) { c.CutoffHour = 25 }, "cutoff hour"},
		{"cutoff negative", func(c *Config) { c.CutoffHour = -1 }, "cutoff hour"},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus_Mons" }, "loading timezone"},
		{"bad weekday", func(c *Config) { c.Weekday = "Funday" }, "invalid weekday"},
		{"empty output", func(c *Config) { c.OutputPath = " " }, "output path"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, "concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolvedOutputPath(t *testing.T) {
	cfg := Default()
	cfg.Season = 2026
	cfg.OutputPath = "out/{season}/games_{season}.json"

	if got := cfg.ResolvedOutputPath(); got != "out/2026/games_2026.json" {
		t.Errorf("ResolvedOutputPath() = %q", got)
	}
}
