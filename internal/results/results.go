// Package results models inference outputs: an insertion-ordered set of
// per-image records with the JSON shapes the evaluation tooling expects.
package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vlures-harness/internal/benchmark"
)

// Record is the model output for one image. Rationale is only populated for
// the with-rationales settings.
type Record struct {
	ID        string
	Analysis  string
	Rationale string
}

// Set accumulates records in insertion order. The serialized form is a JSON
// object keyed by image id: a bare string per image for the no-rationales
// settings, or an {id, Task_<k>, Rationale_<k>} object for the
// with-rationales settings.
type Set struct {
	task           benchmark.TaskID
	withRationales bool
	order          []string
	items          map[string]Record
}

func NewSet(task benchmark.TaskID, withRationales bool) *Set {
	return &Set{
		task:           task,
		withRationales: withRationales,
		items:          map[string]Record{},
	}
}

func (s *Set) Add(rec Record) {
	if _, exists := s.items[rec.ID]; !exists {
		s.order = append(s.order, rec.ID)
	}
	s.items[rec.ID] = rec
}

func (s *Set) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

func (s *Set) Get(id string) (Record, bool) {
	rec, ok := s.items[id]
	return rec, ok
}

func (s *Set) Len() int {
	return len(s.order)
}

// IDs returns the image ids in insertion order.
func (s *Set) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

func (s *Set) taskKey() string      { return fmt.Sprintf("Task_%d", s.task) }
func (s *Set) rationaleKey() string { return fmt.Sprintf("Rationale_%d", s.task) }

func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		rec := s.items[id]
		var value any
		if s.withRationales {
			value = map[string]string{
				"id":            rec.ID,
				s.taskKey():     rec.Analysis,
				s.rationaleKey(): rec.Rationale,
			}
		} else {
			value = rec.Analysis
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Set) UnmarshalJSON(data []byte) error {
	if s.items == nil {
		s.items = map[string]Record{}
	}
	s.order = nil

	// Token-level decoding so insertion order survives the round trip.
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("results: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		rec, err := decodeRecord(id, raw)
		if err != nil {
			return err
		}
		s.Add(rec)
	}

	_, err = dec.Token() // closing brace
	return err
}

// decodeRecord accepts both serialized shapes: a bare response string, or an
// object carrying Task_<k> / Rationale_<k> fields.
func decodeRecord(id string, raw json.RawMessage) (Record, error) {
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return Record{ID: id, Analysis: plain}, nil
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Record{}, fmt.Errorf("results: entry %q is neither a string nor an object: %w", id, err)
	}

	rec := Record{ID: id}
	for key, value := range fields {
		switch {
		case key == "id":
			rec.ID = value
		case len(key) > 5 && key[:5] == "Task_":
			rec.Analysis = value
		case len(key) > 10 && key[:10] == "Rationale_":
			rec.Rationale = value
		}
	}
	return rec, nil
}

// Load reads a results file. A missing file yields an empty set so callers
// can resume unconditionally.
func Load(path string, task benchmark.TaskID, withRationales bool) (*Set, error) {
	set := NewSet(task, withRationales)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read results file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}
	return set, nil
}

// Save writes the set as indented JSON, creating parent directories as
// needed.
func (s *Set) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", path, err)
	}
	return nil
}
