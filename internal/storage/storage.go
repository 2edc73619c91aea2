package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/mlb-saturday-games/internal/game"
)

// Indent is the indentation used in the results file.
const Indent = "    "

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// Encode renders a result set exactly as it is written to disk.
func Encode(rs *game.ResultSet) ([]byte, error) {
	data, err := json.MarshalIndent(rs, "", Indent)
	if err != nil {
		return nil, fmt.Errorf("encoding results: %w", err)
	}
	return append(data, '\n'), nil
}

// SaveResults writes rs to path, replacing any existing file, and returns the
// expanded path that was written. Missing parent directories are created.
func SaveResults(path string, rs *game.ResultSet) (string, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	data, err := Encode(rs)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing results: %w", err)
	}
	return path, nil
}

// LoadResults reads a results file written by SaveResults.
func LoadResults(path string) (*game.ResultSet, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}

	rs := game.NewResultSet()
	if err := json.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}
	return rs, nil
}
