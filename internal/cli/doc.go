// Package cli implements the command-line interface for mlb-saturday-games.
//
// The root command layers flags over the YAML/environment configuration, runs the
// finder against the Stats API with a progress bar on stderr, prints the results
// (text, json or ics) on stdout and saves the JSON results file.
package cli
