package judge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Score is the judge's verdict for one image.
type Score struct {
	Score float64 `json:"score"`
}

// ScoreSet maps image ids to judge scores for one inference output file.
type ScoreSet map[string]Score

// MarshalJSON orders entries numerically by image id so score files diff
// cleanly across runs.
func (s ScoreSet) MarshalJSON() ([]byte, error) {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})

	buf := []byte("{")
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s[id])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

// LoadScores reads a score file, returning an empty set when the file does
// not exist.
func LoadScores(path string) (ScoreSet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ScoreSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scores %s: %w", path, err)
	}
	var set ScoreSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse scores %s: %w", path, err)
	}
	return set, nil
}

// Save writes the set as indented JSON, creating parent directories.
func (s ScoreSet) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("failed to write scores %s: %w", path, err)
	}
	return nil
}
