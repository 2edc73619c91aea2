// Package storage writes and reads the results file.
//
// The file is a single JSON object keyed by team name, indented with four spaces, with
// teams in roster order. Writing always replaces the previous file.
package storage
