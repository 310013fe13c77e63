package judge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlures-harness/internal/benchmark"
	"vlures-harness/internal/results"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   float64
		ok     bool
	}{
		{"plain", `{"score": 85}`, 85, true},
		{"fenced", "```json\n{\"score\": 70}\n```", 70, true},
		{"clipped high", `{"score": 140}`, 100, true},
		{"clipped low", `{"score": -5}`, 0, true},
		{"fractional", `{"score": 62.5}`, 62.5, true},
		{"not json", "the score is 80", 0, false},
		{"missing field", `{"rating": 80}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScore(tt.output)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(benchmark.ImageCaptioning, benchmark.Swahili, "a cat on a mat")

	assert.Contains(t, prompt, "caption")
	assert.Contains(t, prompt, "Swahili")
	assert.Contains(t, prompt, "a cat on a mat")
	assert.Contains(t, prompt, `{"score": N}`)
}

func TestBuildPromptCoversAllTasks(t *testing.T) {
	for task := benchmark.ObjectRecognition; task <= benchmark.VisualQuestionAnswering; task++ {
		assert.NotEmpty(t, taskInstructions[task], "task %d has no judge instruction", task)
	}
}

// scriptedJudge returns canned scores per response text, failing the first
// failures calls for responses listed in flaky.
type scriptedJudge struct {
	mu     sync.Mutex
	scores map[string]float64
	flaky  map[string]int
	calls  int
}

func (j *scriptedJudge) Score(_ context.Context, prompt string) (float64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls++
	for response, score := range j.scores {
		if strings.Contains(prompt, response) {
			if j.flaky[response] > 0 {
				j.flaky[response]--
				return 0, errors.New("judge unavailable")
			}
			return score, nil
		}
	}
	return 0, errors.New("unknown response")
}

func writeOutputFile(t *testing.T, dir string, key benchmark.RunKey, records map[string]string) string {
	t.Helper()
	set := results.NewSet(key.Task, key.Setting.WithRationales())
	for id, analysis := range records {
		set.Add(results.Record{ID: id, Analysis: analysis})
	}
	path := filepath.Join(dir, key.OutputFile())
	require.NoError(t, set.Save(path))
	return path
}

func TestEvaluateFile(t *testing.T) {
	dir := t.TempDir()
	key := benchmark.RunKey{
		Model:    "gpt-4o",
		Language: benchmark.English,
		Task:     benchmark.ObjectRecognition,
		Setting:  benchmark.ZeroshotNoRationales,
	}
	inputPath := writeOutputFile(t, dir, key, map[string]string{
		"1": "a dog",
		"2": "a tree",
	})

	ev := &Evaluator{
		Judge:   &scriptedJudge{scores: map[string]float64{"a dog": 90, "a tree": 75}},
		Workers: 2,
	}
	summary, err := ev.EvaluateFile(context.Background(), key, inputPath, dir, dir)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Scored)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Defaulted)

	scores, err := LoadScores(summary.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, ScoreSet{"1": {Score: 90}, "2": {Score: 75}}, scores)

	_, err = os.Stat(filepath.Join(dir, key.ScoresCheckpointFile()))
	assert.True(t, os.IsNotExist(err), "checkpoint should be removed after success")
}

func TestEvaluateFileDefaultsAfterRetries(t *testing.T) {
	dir := t.TempDir()
	key := benchmark.RunKey{
		Model:    "gpt-4o",
		Language: benchmark.Japanese,
		Task:     benchmark.SceneUnderstanding,
		Setting:  benchmark.ZeroshotWithRationales,
	}
	inputPath := writeOutputFile(t, dir, key, map[string]string{"1": "a street at night"})

	judge := &scriptedJudge{
		scores: map[string]float64{"a street at night": 80},
		flaky:  map[string]int{"a street at night": 10},
	}
	ev := &Evaluator{Judge: judge, MaxRetries: 2, DefaultScore: 50}

	summary, err := ev.EvaluateFile(context.Background(), key, inputPath, dir, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Defaulted)
	assert.Equal(t, 3, judge.calls)

	scores, err := LoadScores(summary.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, 50.0, scores["1"].Score)
}

func TestEvaluateFileResumesFromCheckpoint(t *testing.T) {
	dir := t.TempDir()
	key := benchmark.RunKey{
		Model:    "gpt-4o",
		Language: benchmark.Urdu,
		Task:     benchmark.ImageCaptioning,
		Setting:  benchmark.OneshotNoRationales,
	}
	inputPath := writeOutputFile(t, dir, key, map[string]string{
		"1": "already judged",
		"2": "still pending",
	})
	require.NoError(t, ScoreSet{"1": {Score: 60}}.Save(filepath.Join(dir, key.ScoresCheckpointFile())))

	judge := &scriptedJudge{scores: map[string]float64{"still pending": 85}}
	ev := &Evaluator{Judge: judge}

	summary, err := ev.EvaluateFile(context.Background(), key, inputPath, dir, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Scored)
	assert.Equal(t, 1, judge.calls, "already-judged id must not be re-scored")

	scores, err := LoadScores(summary.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, ScoreSet{"1": {Score: 60}, "2": {Score: 85}}, scores)
}

func TestEvaluateAll(t *testing.T) {
	dir := t.TempDir()
	keys := []benchmark.RunKey{
		{Model: "gpt-4o", Language: benchmark.English, Task: benchmark.ObjectRecognition, Setting: benchmark.ZeroshotNoRationales},
		{Model: "gpt-4o", Language: benchmark.English, Task: benchmark.SceneUnderstanding, Setting: benchmark.ZeroshotNoRationales},
	}
	for _, key := range keys {
		writeOutputFile(t, dir, key, map[string]string{"1": "response for " + key.String()})
	}
	// A different model's output must not be picked up.
	writeOutputFile(t, dir, benchmark.RunKey{
		Model: "other-model", Language: benchmark.English,
		Task: benchmark.ObjectRecognition, Setting: benchmark.ZeroshotNoRationales,
	}, map[string]string{"1": "ignored"})

	ev := &Evaluator{Judge: &scriptedJudge{scores: map[string]float64{"response for": 70}}}
	summaries, err := ev.EvaluateAll(context.Background(), dir, dir, dir, "gpt-4o", benchmark.English)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	for _, s := range summaries {
		assert.Equal(t, 1, s.Scored)
		assert.FileExists(t, s.OutputPath)
	}
}

func TestScoreSetMarshalOrdersNumerically(t *testing.T) {
	set := ScoreSet{"10": {Score: 1}, "2": {Score: 2}, "1": {Score: 3}}
	data, err := set.MarshalJSON()
	require.NoError(t, err)

	text := string(data)
	assert.Less(t, strings.Index(text, `"1"`), strings.Index(text, `"2"`))
	assert.Less(t, strings.Index(text, `"2"`), strings.Index(text, `"10"`))
}
