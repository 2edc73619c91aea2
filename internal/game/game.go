package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one selected game as it appears in the report and the results file.
type Record struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Opponent string `json:"opponent"`
	Venue    string `json:"venue"`
}

// ResultSet maps team names to their selected games. Teams keep the order in which
// they were first added, and that order is preserved through JSON encoding.
type ResultSet struct {
	order []string
	games map[string][]Record
}

// NewResultSet returns an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{games: make(map[string][]Record)}
}

// Add appends records to a team's list, registering the team if it is new.
// Adding a team with no records still registers it with an empty list.
func (rs *ResultSet) Add(team string, records ...Record) {
	if rs.games == nil {
		rs.games = make(map[string][]Record)
	}
	list, ok := rs.games[team]
	if !ok {
		rs.order = append(rs.order, team)
		list = []Record{}
	}
	rs.games[team] = append(list, records...)
}

// Teams returns team names in insertion order.
func (rs *ResultSet) Teams() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)
	return out
}

// Games returns the records stored for team.
func (rs *ResultSet) Games(team string) []Record {
	return rs.games[team]
}

// Has reports whether team is present, even with an empty list.
func (rs *ResultSet) Has(team string) bool {
	_, ok := rs.games[team]
	return ok
}

// Len returns the number of teams.
func (rs *ResultSet) Len() int {
	return len(rs.order)
}

// TotalGames returns the number of records across all teams.
func (rs *ResultSet) TotalGames() int {
	n := 0
	for _, list := range rs.games {
		n += len(list)
	}
	return n
}

// Equal reports whether both sets hold the same teams, in the same order, with the same games.
func (rs *ResultSet) Equal(other *ResultSet) bool {
	if rs.Len() != other.Len() {
		return false
	}
	for i, team := range rs.order {
		if other.order[i] != team {
			return false
		}
		a, b := rs.games[team], other.games[team]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the set as a JSON object keyed by team name, in insertion order.
func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, team := range rs.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(team)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(rs.games[team])
		if err != nil {
			return nil, fmt.Errorf("encoding games for %s: %w", team, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keyed by team name, keeping the key order of the document.
func (rs *ResultSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("result set: expected object, got %v", tok)
	}

	decoded := NewResultSet()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		team, ok := tok.(string)
		if !ok {
			return fmt.Errorf("result set: expected team name, got %v", tok)
		}
		var records []Record
		if err := dec.Decode(&records); err != nil {
			return fmt.Errorf("result set: decoding games for %s: %w", team, err)
		}
		decoded.Add(team, records...)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*rs = *decoded
	return nil
}
