package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/database"
	"vlures-harness/internal/judge"
)

func TestAggregate(t *testing.T) {
	key := benchmark.RunKey{
		Model:    "gpt-4o",
		Language: benchmark.English,
		Task:     benchmark.ObjectRecognition,
		Setting:  benchmark.ZeroshotNoRationales,
	}
	scores := judge.ScoreSet{
		"1": {Score: 80},
		"2": {Score: 90},
		"3": {Score: 70},
	}

	cell := Aggregate(key, scores)
	assert.Equal(t, 3, cell.Count)
	assert.InDelta(t, 80.0, cell.Mean, 1e-9)
	assert.Equal(t, 70.0, cell.Min)
	assert.Equal(t, 90.0, cell.Max)
	assert.InDelta(t, 8.1649658, cell.StdDev, 1e-6)
}

func TestAggregateEmpty(t *testing.T) {
	cell := Aggregate(benchmark.RunKey{}, judge.ScoreSet{})
	assert.Equal(t, 0, cell.Count)
	assert.Equal(t, 0.0, cell.Mean)
}

func TestCollectOrdersCells(t *testing.T) {
	dir := t.TempDir()
	keys := []benchmark.RunKey{
		{Model: "gpt-4o", Language: benchmark.Japanese, Task: benchmark.SceneUnderstanding, Setting: benchmark.ZeroshotNoRationales},
		{Model: "gpt-4o", Language: benchmark.English, Task: benchmark.ObjectRecognition, Setting: benchmark.ZeroshotWithRationales},
		{Model: "gpt-4o", Language: benchmark.English, Task: benchmark.ObjectRecognition, Setting: benchmark.ZeroshotNoRationales},
	}
	for _, key := range keys {
		scores := judge.ScoreSet{"1": {Score: 75}}
		require.NoError(t, scores.Save(filepath.Join(dir, key.ScoresFile())))
	}

	cells, err := Collect(dir, "gpt-4o")
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, benchmark.English, cells[0].Key.Language)
	assert.Equal(t, benchmark.ZeroshotNoRationales, cells[0].Key.Setting)
	assert.Equal(t, benchmark.ZeroshotWithRationales, cells[1].Key.Setting)
	assert.Equal(t, benchmark.Japanese, cells[2].Key.Language)
}

func TestCollectNoFiles(t *testing.T) {
	_, err := Collect(t.TempDir(), "gpt-4o")
	assert.ErrorContains(t, err, "no score files")
}

func TestRenderMarkdownTable(t *testing.T) {
	cells := []Cell{
		{
			Key: benchmark.RunKey{
				Model:    "gpt-4o",
				Language: benchmark.Swahili,
				Task:     benchmark.ImageCaptioning,
				Setting:  benchmark.OneshotNoRationales,
			},
			Count: 100, Mean: 72.5, Min: 10, Max: 100, StdDev: 14.2,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "gpt-4o", cells))

	out := buf.String()
	assert.Contains(t, out, "# VLURes scores: gpt-4o")
	assert.Contains(t, out, "Swahili")
	assert.Contains(t, out, "5. Image Captioning")
	assert.Contains(t, out, "72.50")
	assert.Contains(t, out, "| Language")
}

func TestRenderRuns(t *testing.T) {
	runs := []database.InferenceRun{
		{
			Model:        "gpt-4o",
			Language:     "Japanese",
			Task:         3,
			Setting:      "oneshot_no_rationales",
			Status:       database.JobCompleted,
			Processed:    98,
			Skipped:      2,
			Failed:       0,
			CreationTime: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
		},
		{
			Model:        "gpt-4o",
			Language:     "Urdu",
			Task:         6,
			Setting:      "zeroshot_with_rationales",
			Status:       database.JobFailed,
			CreationTime: time.Date(2026, 8, 19, 17, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderRuns(&buf, runs))

	out := buf.String()
	assert.Contains(t, out, "# Run history")
	assert.Contains(t, out, "2026-08-20 09:30:00")
	assert.Contains(t, out, "Japanese")
	assert.Contains(t, out, "oneshot_no_rationales")
	assert.Contains(t, out, database.JobCompleted)
	assert.Contains(t, out, database.JobFailed)
	assert.Contains(t, out, "| Started")
}
