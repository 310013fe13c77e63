package results_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainSetMarshalsAsStrings(t *testing.T) {
	set := results.NewSet(benchmark.ObjectRecognition, false)
	set.Add(results.Record{ID: "10", Analysis: "a chair"})
	set.Add(results.Record{ID: "2", Analysis: "a table"})

	data, err := json.Marshal(set)
	require.NoError(t, err)

	assert.JSONEq(t, `{"10": "a chair", "2": "a table"}`, string(data))
	// Insertion order, not lexicographic order.
	assert.Less(t, indexOf(data, `"10"`), indexOf(data, `"2"`))
}

func TestRationaleSetMarshalsAsObjects(t *testing.T) {
	set := results.NewSet(benchmark.RelationshipUnderstanding, true)
	set.Add(results.Record{ID: "7", Analysis: "people talking", Rationale: "facing each other"})

	data, err := json.Marshal(set)
	require.NoError(t, err)

	assert.JSONEq(t, `{"7": {"id": "7", "Task_3": "people talking", "Rationale_3": "facing each other"}}`, string(data))
}

func TestRoundTripPreservesOrder(t *testing.T) {
	set := results.NewSet(benchmark.ImageCaptioning, true)
	for _, id := range []string{"3", "1", "2"} {
		set.Add(results.Record{ID: id, Analysis: "analysis " + id, Rationale: "rationale " + id})
	}

	data, err := json.Marshal(set)
	require.NoError(t, err)

	restored := results.NewSet(benchmark.ImageCaptioning, true)
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, []string{"3", "1", "2"}, restored.IDs())
	rec, ok := restored.Get("1")
	require.True(t, ok)
	assert.Equal(t, "analysis 1", rec.Analysis)
	assert.Equal(t, "rationale 1", rec.Rationale)
}

func TestUnmarshalAcceptsBothShapes(t *testing.T) {
	// Files written by older runs mix plain strings and task objects.
	payload := `{
		"1": "plain response",
		"2": {"id": "2", "Task_5": "object response", "Rationale_5": "because"}
	}`

	set := results.NewSet(benchmark.ImageCaptioning, false)
	require.NoError(t, json.Unmarshal([]byte(payload), set))

	rec, ok := set.Get("1")
	require.True(t, ok)
	assert.Equal(t, "plain response", rec.Analysis)

	rec, ok = set.Get("2")
	require.True(t, ok)
	assert.Equal(t, "object response", rec.Analysis)
	assert.Equal(t, "because", rec.Rationale)
}

func TestAddOverwritesWithoutDuplicating(t *testing.T) {
	set := results.NewSet(benchmark.ObjectRecognition, false)
	set.Add(results.Record{ID: "1", Analysis: "first"})
	set.Add(results.Record{ID: "1", Analysis: "second"})

	assert.Equal(t, 1, set.Len())
	rec, _ := set.Get("1")
	assert.Equal(t, "second", rec.Analysis)
}

func TestLoadMissingFileYieldsEmptySet(t *testing.T) {
	set, err := results.Load(filepath.Join(t.TempDir(), "absent.json"), benchmark.ObjectRecognition, false)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ckpt.json")

	set := results.NewSet(benchmark.Unrelatedness, true)
	set.Add(results.Record{ID: "42", Analysis: "unrelated bits", Rationale: "missing from image"})
	require.NoError(t, set.Save(path))

	loaded, err := results.Load(path, benchmark.Unrelatedness, true)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.True(t, loaded.Has("42"))
}

func indexOf(data []byte, sub string) int {
	for i := 0; i+len(sub) <= len(data); i++ {
		if string(data[i:i+len(sub)]) == sub {
			return i
		}
	}
	return -1
}
