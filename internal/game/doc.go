// Package game defines the selected-game record and the ordered per-team result set
// that flows from the filter to the console report and the results file.
package game
