package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseWeekday parses a weekday name.
//
// Supported formats:
//   - full names: "Saturday", "saturday"
//   - three-letter abbreviations: "Sat", "sat"
func ParseWeekday(input string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("weekday cannot be empty")
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %s", input)
}

// ParseTeam parses a roster entry of the form "Name=ID", e.g. "Atlanta Braves=144".
// The last '=' separates the id, so names may themselves contain '='.
func ParseTeam(input string) (Team, error) {
	input = strings.TrimSpace(input)
	i := strings.LastIndex(input, "=")
	if i < 0 {
		return Team{}, fmt.Errorf("team %q: expected Name=ID", input)
	}

	name := strings.TrimSpace(input[:i])
	if name == "" {
		return Team{}, fmt.Errorf("team %q: name cannot be empty", input)
	}

	id, err := strconv.Atoi(strings.TrimSpace(input[i+1:]))
	if err != nil || id <= 0 {
		return Team{}, fmt.Errorf("team %q: invalid id %q", input, input[i+1:])
	}

	return Team{Name: name, ID: id}, nil
}

// ParseTeams parses every entry with ParseTeam, stopping at the first error.
func ParseTeams(inputs []string) ([]Team, error) {
	teams := make([]Team, 0, len(inputs))
	for _, in := range inputs {
		t, err := ParseTeam(in)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, nil
}
