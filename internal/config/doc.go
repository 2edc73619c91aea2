// Package config holds the run configuration: team roster, season, reference timezone,
// target weekday, day-game cutoff hour and output path.
//
// Values are layered: built-in defaults, then an optional YAML file, then MLB_* environment
// variables (a .env file is loaded first if present), then command-line flags.
package config
